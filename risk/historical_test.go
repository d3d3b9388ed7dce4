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

package risk_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pv-risk/risk"
)

var _ = Describe("Historical metrics", func() {
	var (
		zeros  []float64
		sample []float64
	)

	BeforeEach(func() {
		zeros = make([]float64, 20)
		sample = []float64{0.01, 0.02, -0.01}
	})

	Describe("when calculating annualized return", func() {
		Context("with a constant zero return series", func() {
			It("should be 0", func() {
				Expect(risk.AnnualizedReturn(zeros, 252)).To(Equal(0.0))
			})
		})

		Context("with a known return series", func() {
			It("should be the mean scaled by the periods per year", func() {
				Expect(risk.AnnualizedReturn(sample, 252)).Should(BeNumerically("~", 1.68, 1e-9))
			})

			It("should be negative for a losing series", func() {
				Expect(risk.AnnualizedReturn([]float64{-0.01, -0.02}, 252)).Should(BeNumerically("<", 0))
			})
		})
	})

	Describe("when calculating annualized volatility", func() {
		Context("with a constant zero return series", func() {
			It("should be 0", func() {
				Expect(risk.AnnualizedVolatility(zeros, 252)).To(Equal(0.0))
			})
		})

		Context("with a known return series", func() {
			It("should use the population standard deviation", func() {
				Expect(risk.AnnualizedVolatility(sample, 252)).Should(BeNumerically("~", 0.1979910, 1e-4))
			})
		})
	})

	Describe("when calculating the sharpe ratio", func() {
		Context("with zero volatility", func() {
			It("should be exactly 0 rather than dividing by zero", func() {
				Expect(risk.SharpeRatio(zeros, 0.02, 252)).To(Equal(0.0))
			})
		})

		Context("with a known return series", func() {
			It("should be excess return over volatility", func() {
				Expect(risk.SharpeRatio(sample, 0.02, 252)).Should(BeNumerically("~", 8.3842, 1e-3))
			})
		})
	})

	Describe("when calculating max drawdown", func() {
		Context("with a constant zero return series", func() {
			It("should be 0", func() {
				Expect(risk.MaxDrawdown(zeros)).To(Equal(0.0))
			})
		})

		Context("with a monotonically increasing wealth index", func() {
			It("should be 0", func() {
				Expect(risk.MaxDrawdown([]float64{0.01, 0.02, 0.005})).To(Equal(0.0))
			})
		})

		Context("with a known peak-to-trough decline", func() {
			It("should report the decline relative to the peak", func() {
				Expect(risk.MaxDrawdown([]float64{0.1, -0.2, 0.05})).Should(BeNumerically("~", -0.2, 1e-9))
			})

			It("should never be positive", func() {
				Expect(risk.MaxDrawdown([]float64{0.05, -0.01, 0.07, -0.03})).Should(BeNumerically("<=", 0))
			})
		})
	})

	Describe("when calculating historical CVaR", func() {
		Context("with a constant zero return series", func() {
			It("should be 0", func() {
				Expect(risk.HistoricalCVaR(zeros, 0.95, 252)).To(Equal(0.0))
			})
		})

		Context("with an empty return series", func() {
			It("should be 0", func() {
				Expect(risk.HistoricalCVaR([]float64{}, 0.95, 252)).To(Equal(0.0))
			})
		})

		Context("with a tail count of zero", func() {
			It("should fall back to the single worst observation", func() {
				expected := -0.01 * math.Sqrt(252)
				Expect(risk.HistoricalCVaR(sample, 0.95, 252)).Should(BeNumerically("~", expected, 1e-9))
			})
		})

		Context("with increasing confidence levels", func() {
			It("should be monotonically non-increasing", func() {
				series := make([]float64, 100)
				for ii := range series {
					series[ii] = float64(ii%21-10) / 100.0
				}

				cvar90 := risk.HistoricalCVaR(series, 0.90, 252)
				cvar95 := risk.HistoricalCVaR(series, 0.95, 252)
				cvar99 := risk.HistoricalCVaR(series, 0.99, 252)

				Expect(cvar95).Should(BeNumerically("<=", cvar90))
				Expect(cvar99).Should(BeNumerically("<=", cvar95))
			})
		})
	})
})
