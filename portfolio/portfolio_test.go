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

package portfolio_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pv-risk/dataframe"
	"github.com/penny-vault/pv-risk/portfolio"
	"github.com/penny-vault/pv-risk/risk"
)

var _ = Describe("Aggregate", func() {
	var (
		returnRows [][]float64
		weights    []float64
	)

	BeforeEach(func() {
		returnRows = [][]float64{
			{0.01, -0.01},
			{0.02, 0.0},
			{-0.01, 0.01},
		}
		weights = []float64{0.5, 0.5}
	})

	Describe("when aggregating row-major returns", func() {
		Context("with an equal-weight two asset portfolio", func() {
			It("should average the per-asset returns", func() {
				portRets, err := portfolio.AggregateReturns(returnRows, weights)
				Expect(err).To(BeNil())
				Expect(portRets).To(HaveLen(3))
				Expect(portRets[0]).Should(BeNumerically("~", 0.0, 1e-12))
				Expect(portRets[1]).Should(BeNumerically("~", 0.01, 1e-12))
				Expect(portRets[2]).Should(BeNumerically("~", 0.0, 1e-12))
			})

			It("should feed cleanly into the metric functions", func() {
				portRets, err := portfolio.AggregateReturns(returnRows, weights)
				Expect(err).To(BeNil())
				Expect(risk.AnnualizedReturn(portRets, 252)).Should(BeNumerically("~", 0.84, 1e-9))
			})
		})

		Context("with a single asset portfolio", func() {
			It("should scale the returns by the weight", func() {
				portRets, err := portfolio.AggregateReturns([][]float64{{0.01}, {0.02}}, []float64{2.0})
				Expect(err).To(BeNil())
				Expect(portRets).To(Equal([]float64{0.02, 0.04}))
			})
		})

		Context("with mismatched weights", func() {
			It("should return a shape error", func() {
				_, err := portfolio.AggregateReturns(returnRows, []float64{0.5, 0.3, 0.2})
				Expect(err).To(MatchError(portfolio.ErrShapeMismatch))
			})

			It("should return a shape error when one row is ragged", func() {
				_, err := portfolio.AggregateReturns([][]float64{{0.01, 0.02}, {0.01}}, weights)
				Expect(err).To(MatchError(portfolio.ErrShapeMismatch))
			})
		})

		Context("with no returns", func() {
			It("should produce an empty series", func() {
				portRets, err := portfolio.AggregateReturns([][]float64{}, weights)
				Expect(err).To(BeNil())
				Expect(portRets).To(BeEmpty())
			})
		})
	})

	Describe("when aggregating a dataframe", func() {
		var df *dataframe.DataFrame

		BeforeEach(func() {
			var err error
			dates := []time.Time{
				time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC),
				time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC),
				time.Date(2021, 1, 6, 0, 0, 0, 0, time.UTC),
			}
			df, err = dataframe.New(dates, []string{"SPY", "AGG"}, [][]float64{
				{0.01, 0.02, -0.01},
				{-0.01, 0.0, 0.01},
			})
			Expect(err).To(BeNil())
		})

		It("should match the row-major aggregation", func() {
			fromFrame, err := portfolio.AggregateFrame(df, weights)
			Expect(err).To(BeNil())

			fromRows, err := portfolio.AggregateReturns(returnRows, weights)
			Expect(err).To(BeNil())

			Expect(fromFrame).To(HaveLen(len(fromRows)))
			for idx := range fromFrame {
				Expect(fromFrame[idx]).Should(BeNumerically("~", fromRows[idx], 1e-12))
			}
		})

		It("should return a shape error when weights do not match columns", func() {
			_, err := portfolio.AggregateFrame(df, []float64{1.0})
			Expect(err).To(MatchError(portfolio.ErrShapeMismatch))
		})
	})
})
