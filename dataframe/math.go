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

package dataframe

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// MulScalar multiplies all columns in dataframe df by the scalar and returns a new dataframe
func (df *DataFrame) MulScalar(scalar float64) *DataFrame {
	df = df.Copy()

	for colIdx := range df.ColNames {
		floats.Scale(scalar, df.Vals[colIdx])
	}
	return df
}

// PctChange computes the fractional change of each column relative to the prior
// row and returns a new dataframe. The first row is undefined and dropped,
// mirroring a price-to-return conversion. A zero prior value yields NaN.
func (df *DataFrame) PctChange() *DataFrame {
	if df.Len() < 2 {
		return &DataFrame{
			Dates:    []time.Time{},
			ColNames: df.ColNames,
			Vals:     make([][]float64, df.ColCount()),
		}
	}

	newVals := make([][]float64, df.ColCount())
	for colIdx, col := range df.Vals {
		newVals[colIdx] = make([]float64, len(col)-1)
		for rowIdx := 1; rowIdx < len(col); rowIdx++ {
			prev := col[rowIdx-1]
			if prev == 0 {
				newVals[colIdx][rowIdx-1] = math.NaN()
				continue
			}
			newVals[colIdx][rowIdx-1] = (col[rowIdx] - prev) / prev
		}
	}

	return &DataFrame{
		Dates:    df.Dates[1:],
		ColNames: df.ColNames,
		Vals:     newVals,
	}
}
