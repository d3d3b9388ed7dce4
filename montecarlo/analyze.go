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

package montecarlo

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the terminal value distribution of a simulation run.
type Stats struct {
	// Mean of the terminal values
	Mean float64 `json:"mean"`

	// Median of the terminal values
	Median float64 `json:"median"`

	// ProbabilityOfLoss is the fraction of paths that finished below the loss
	// threshold
	ProbabilityOfLoss float64 `json:"probabilityOfLoss"`

	// CVaR is the mean of the terminal values in the worst (1-alpha) tail of
	// the distribution. Values are already at the simulation horizon so no
	// additional time scaling is applied.
	CVaR float64 `json:"cvar"`
}

// AnalyzeResults derives summary statistics from the terminal values of a
// simulation run. The empirical-tail CVaR convention matches the historical
// CVaR metric; a zero tail count falls back to the single worst path.
func AnalyzeResults(finalValues []float64, alpha float64, lossThreshold float64) Stats {
	sorted := make([]float64, len(finalValues))
	copy(sorted, finalValues)
	sort.Float64s(sorted)

	losses := 0
	for _, v := range finalValues {
		if v < lossThreshold {
			losses++
		}
	}

	tailCount := int((1 - alpha) * float64(len(sorted)))
	if tailCount == 0 {
		tailCount = 1
	}

	return Stats{
		Mean:              stat.Mean(finalValues, nil),
		Median:            median(sorted),
		ProbabilityOfLoss: float64(losses) / float64(len(finalValues)),
		CVaR:              stat.Mean(sorted[:tailCount], nil),
	}
}

// median of an already sorted slice
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
