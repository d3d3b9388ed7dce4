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

// Package portfolio combines per-asset return series into a single portfolio
// return series by applying a weight vector.
package portfolio

import (
	"errors"
	"fmt"

	"github.com/penny-vault/pv-risk/dataframe"
)

var ErrShapeMismatch = errors.New("weight count does not match asset count")

// AggregateReturns computes the weighted portfolio return for each time step.
// returnRows is row major: one row per trading day, one entry per asset.
// Weights are applied as-is; callers are responsible for normalization.
func AggregateReturns(returnRows [][]float64, weights []float64) ([]float64, error) {
	portRets := make([]float64, len(returnRows))
	for rowIdx, row := range returnRows {
		if len(row) != len(weights) {
			return nil, fmt.Errorf("%w: row %d has %d assets, %d weights given", ErrShapeMismatch, rowIdx, len(row), len(weights))
		}

		ret := 0.0
		for assetIdx, r := range row {
			ret += r * weights[assetIdx]
		}
		portRets[rowIdx] = ret
	}

	return portRets, nil
}

// AggregateFrame computes the weighted portfolio return series from a dataframe
// of per-asset returns. The weight vector must have one entry per column, in
// column order.
func AggregateFrame(df *dataframe.DataFrame, weights []float64) ([]float64, error) {
	if df.ColCount() != len(weights) {
		return nil, fmt.Errorf("%w: %d assets, %d weights given", ErrShapeMismatch, df.ColCount(), len(weights))
	}

	portRets := make([]float64, df.Len())
	for colIdx, col := range df.Vals {
		w := weights[colIdx]
		for rowIdx, r := range col {
			portRets[rowIdx] += r * w
		}
	}

	return portRets, nil
}
