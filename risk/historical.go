// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package risk computes backward-looking risk and return statistics from a
// portfolio return series. All functions operate on daily fractional returns.
//
// None of the historical metric functions return errors; degenerate inputs
// degrade to a defined numeric answer. Callers must guard against empty
// series before calling.
package risk

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AnnualizedReturn calculates the annualized arithmetic return of a daily
// return series. The value is signed and may be negative.
func AnnualizedReturn(returns []float64, periodsPerYear int) float64 {
	return stat.Mean(returns, nil) * float64(periodsPerYear)
}

// AnnualizedVolatility calculates annualized volatility from daily returns.
// Formula: population std dev of daily returns × sqrt(periods per year)
func AnnualizedVolatility(returns []float64, periodsPerYear int) float64 {
	return stat.PopStdDev(returns, nil) * math.Sqrt(float64(periodsPerYear))
}

// SharpeRatio is the excess return per unit of volatility. The risk free rate
// is an annual rate. Returns exactly 0 when volatility is 0 rather than
// dividing by zero.
func SharpeRatio(returns []float64, riskFreeRate float64, periodsPerYear int) float64 {
	vol := AnnualizedVolatility(returns, periodsPerYear)
	if vol == 0 {
		return 0
	}
	return (AnnualizedReturn(returns, periodsPerYear) - riskFreeRate) / vol
}

// MaxDrawdown computes the largest peak-to-trough decline of the cumulative
// wealth index built from the return series. The result is 0 or negative;
// it is 0 only when the wealth index never dips below a prior peak.
func MaxDrawdown(returns []float64) float64 {
	cumulative := 1.0
	peak := math.Inf(-1)
	maxDD := 0.0

	for _, r := range returns {
		cumulative *= 1 + r
		peak = math.Max(peak, cumulative)
		dd := (cumulative - peak) / peak
		if dd < maxDD {
			maxDD = dd
		}
	}

	return maxDD
}

// HistoricalCVaR computes the expected shortfall from the empirical return
// distribution: the mean of the worst floor((1-alpha)*n) daily observations,
// scaled by sqrt(periods per year).
//
// The sqrt-time scaling expresses the daily tail loss at an annual horizon; it
// is not a true annualized cumulative loss and intentionally differs from the
// annualization convention used for return and volatility.
//
// When the tail count works out to zero (small n or high alpha) the single
// worst observation is used instead of propagating NaN.
func HistoricalCVaR(returns []float64, alpha float64, periodsPerYear int) float64 {
	if len(returns) == 0 {
		return 0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	tailCount := int((1 - alpha) * float64(len(sorted)))
	if tailCount == 0 {
		tailCount = 1
	}

	return stat.Mean(sorted[:tailCount], nil) * math.Sqrt(float64(periodsPerYear))
}
