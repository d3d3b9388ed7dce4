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
	"math"

	"gonum.org/v1/gonum/stat"
)

// EWMAVolatility computes exponentially weighted annualized volatility using
// the RiskMetrics recursion:
//
//	var ← λ·var + (1-λ)·r²
//
// applied once per observation in chronological order. The variance estimate
// is seeded from the population variance of the entire series before the
// recursive pass begins, so the seed looks ahead over the full sample.
//
// lambda is a decay factor in (0, 1), conventionally 0.94. It is not
// validated; out-of-range values produce a diverging or non-decaying
// recursion.
func EWMAVolatility(returns []float64, lambda float64, periodsPerYear int) float64 {
	variance := stat.PopVariance(returns, nil)

	for _, r := range returns {
		variance = lambda*variance + (1-lambda)*r*r
	}

	return math.Sqrt(variance * float64(periodsPerYear))
}
