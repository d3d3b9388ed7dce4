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

package handler_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/penny-vault/pv-risk/handler"
	"github.com/penny-vault/pv-risk/router"
)

func postJSON(app *fiber.App, url string, body any) *http.Response {
	encoded, err := json.Marshal(body)
	Expect(err).To(BeNil())

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	Expect(err).To(BeNil())
	return resp
}

func decodeBody(resp *http.Response, out any) {
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	Expect(err).To(BeNil())
	Expect(json.Unmarshal(raw, out)).To(Succeed())
}

var _ = Describe("API", func() {
	var (
		app        *fiber.App
		returnRows [][]float64
		weights    []float64
	)

	BeforeEach(func() {
		app = fiber.New()
		router.SetupRoutes(app)

		returnRows = [][]float64{
			{0.01, -0.01},
			{0.02, 0.0},
			{-0.01, 0.01},
		}
		weights = []float64{0.5, 0.5}
	})

	Describe("when pinging the API", func() {
		It("should respond with success", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/", nil)
			resp, err := app.Test(req, -1)
			Expect(err).To(BeNil())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var ping handler.PingResponse
			decodeBody(resp, &ping)
			Expect(ping.Status).To(Equal("success"))
			Expect(ping.Message).To(Equal("API is alive"))
		})
	})

	Describe("when requesting risk metrics", func() {
		Context("with a well formed request", func() {
			It("should return the full metric report", func() {
				resp := postJSON(app, "/v1/riskmetrics", handler.RiskMetricsRequest{
					Returns: returnRows,
					Weights: weights,
				})
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				var body handler.RiskMetricsResponse
				decodeBody(resp, &body)
				Expect(body.Metrics).To(HaveLen(7))
				Expect(body.Metrics[0].Name).To(Equal("Annualized Return"))
				Expect(body.Metrics[0].Value).Should(BeNumerically("~", 0.84, 1e-9))
			})

			It("should honor a requested confidence level", func() {
				resp := postJSON(app, "/v1/riskmetrics", handler.RiskMetricsRequest{
					Returns:         returnRows,
					Weights:         weights,
					ConfidenceLevel: 0.99,
				})
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				var body handler.RiskMetricsResponse
				decodeBody(resp, &body)
				Expect(body.Metrics[4].Name).To(Equal("Historical CVaR (99%)"))
			})
		})

		Context("with a defective request", func() {
			It("should reject a non-JSON body", func() {
				req := httptest.NewRequest(http.MethodPost, "/v1/riskmetrics", bytes.NewReader([]byte("not json")))
				resp, err := app.Test(req, -1)
				Expect(err).To(BeNil())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject an empty return matrix", func() {
				resp := postJSON(app, "/v1/riskmetrics", handler.RiskMetricsRequest{
					Weights: weights,
				})
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject mismatched weights", func() {
				resp := postJSON(app, "/v1/riskmetrics", handler.RiskMetricsRequest{
					Returns: returnRows,
					Weights: []float64{1.0},
				})
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject an out of range confidence level", func() {
				resp := postJSON(app, "/v1/riskmetrics", handler.RiskMetricsRequest{
					Returns:         returnRows,
					Weights:         weights,
					ConfidenceLevel: 1.5,
				})
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("when requesting a simulation", func() {
		Context("with a well formed request", func() {
			It("should return calibration and terminal statistics", func() {
				resp := postJSON(app, "/v1/simulation", handler.SimulationRequest{
					Returns: returnRows,
					Weights: weights,
					Days:    20,
					Paths:   50,
					Seed:    42,
				})
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				var body handler.SimulationResponse
				decodeBody(resp, &body)
				Expect(body.ID).ToNot(BeEmpty())
				Expect(body.Mu).Should(BeNumerically("~", 0.84, 1e-9))
				Expect(body.Sigma).Should(BeNumerically(">", 0))
				Expect(body.Stats.Mean).Should(BeNumerically(">", 0))
				Expect(body.FinalValues).To(BeEmpty())
				Expect(body.Paths).To(BeEmpty())
			})

			It("should include the terminal sample when requested", func() {
				resp := postJSON(app, "/v1/simulation", handler.SimulationRequest{
					Returns:            returnRows,
					Weights:            weights,
					Days:               20,
					Paths:              50,
					Seed:               42,
					IncludeFinalValues: true,
				})
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				var body handler.SimulationResponse
				decodeBody(resp, &body)
				Expect(body.FinalValues).To(HaveLen(50))
			})

			It("should include the full path matrix when requested", func() {
				resp := postJSON(app, "/v1/simulation", handler.SimulationRequest{
					Returns:      returnRows,
					Weights:      weights,
					Days:         20,
					Paths:        50,
					Seed:         42,
					IncludePaths: true,
				})
				Expect(resp.StatusCode).To(Equal(http.StatusOK))

				var body handler.SimulationResponse
				decodeBody(resp, &body)
				Expect(body.Paths).To(HaveLen(21))
				Expect(body.Paths[0]).To(HaveLen(50))
			})

			It("should return identical statistics for the same seed", func() {
				request := handler.SimulationRequest{
					Returns: returnRows,
					Weights: weights,
					Days:    20,
					Paths:   50,
					Seed:    42,
				}

				var first, second handler.SimulationResponse
				decodeBody(postJSON(app, "/v1/simulation", request), &first)
				decodeBody(postJSON(app, "/v1/simulation", request), &second)

				Expect(first.Stats).To(Equal(second.Stats))
				Expect(first.ID).ToNot(Equal(second.ID))
			})
		})

		Context("with a defective request", func() {
			It("should reject an empty return matrix", func() {
				resp := postJSON(app, "/v1/simulation", handler.SimulationRequest{
					Weights: weights,
				})
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject mismatched weights", func() {
				resp := postJSON(app, "/v1/simulation", handler.SimulationRequest{
					Returns: returnRows,
					Weights: []float64{1.0},
				})
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})

			It("should reject an out of range confidence level", func() {
				resp := postJSON(app, "/v1/simulation", handler.SimulationRequest{
					Returns:         returnRows,
					Weights:         weights,
					ConfidenceLevel: 1.5,
				})
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			})
		})
	})
})
