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

package risk

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInvalidConfidence = errors.New("confidence level must be in (0, 1)")

// ParametricCVaR computes the closed-form Gaussian expected shortfall assuming
// returns are normally distributed with mean and standard deviation estimated
// from the sample:
//
//	CVaR = mean - (std / (1-alpha)) * φ(Φ⁻¹(alpha))
//
// where φ is the standard normal density and Φ⁻¹ the standard normal quantile
// function. Mean and standard deviation are annualized with the same
// conventions as AnnualizedReturn and AnnualizedVolatility. alpha at or
// outside (0, 1) is rejected.
func ParametricCVaR(returns []float64, alpha float64, periodsPerYear int) (float64, error) {
	if alpha <= 0 || alpha >= 1 {
		return 0, fmt.Errorf("%w: %f", ErrInvalidConfidence, alpha)
	}

	mean := AnnualizedReturn(returns, periodsPerYear)
	std := AnnualizedVolatility(returns, periodsPerYear)

	norm := distuv.UnitNormal
	return mean - (std/(1-alpha))*norm.Prob(norm.Quantile(alpha)), nil
}
