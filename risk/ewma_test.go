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

var _ = Describe("EWMA volatility", func() {
	var sample []float64

	BeforeEach(func() {
		sample = []float64{0.01, 0.02, -0.01}
	})

	Context("with a constant zero return series", func() {
		It("should be 0", func() {
			Expect(risk.EWMAVolatility(make([]float64, 20), 0.94, 252)).To(Equal(0.0))
		})
	})

	Context("with the RiskMetrics decay factor", func() {
		It("should match the recursion seeded from the full-series variance", func() {
			Expect(risk.EWMAVolatility(sample, 0.94, 252)).Should(BeNumerically("~", 0.20271, 1e-4))
		})
	})

	Context("as lambda approaches 1", func() {
		It("should converge to the seed volatility", func() {
			ewma := risk.EWMAVolatility(sample, 0.9999, 252)
			Expect(ewma).Should(BeNumerically("~", risk.AnnualizedVolatility(sample, 252), 1e-3))
		})
	})

	Context("as lambda approaches 0", func() {
		It("should be dominated by the most recent observation", func() {
			ewma := risk.EWMAVolatility(sample, 0.0001, 252)
			Expect(ewma).Should(BeNumerically("~", 0.01*math.Sqrt(252), 1e-3))
		})
	})
})
