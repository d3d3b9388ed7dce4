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

package handler

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/penny-vault/pv-risk/observability/opentelemetry"
	"github.com/penny-vault/pv-risk/portfolio"
	"github.com/penny-vault/pv-risk/risk"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
)

// RiskMetricsRequest carries an aligned return matrix (rows = trading days,
// columns = assets) and a weight vector with one entry per asset. Analysis
// settings are optional and fall back to the configured defaults.
type RiskMetricsRequest struct {
	Returns [][]float64 `json:"returns"`
	Weights []float64   `json:"weights"`

	PeriodsPerYear  int     `json:"periodsPerYear"`
	RiskFreeRate    float64 `json:"riskFreeRate"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
	EWMALambda      float64 `json:"ewmaLambda"`
}

// Config builds a risk.Config from the request, falling back to the viper
// defaults for unset fields.
func (req *RiskMetricsRequest) Config() risk.Config {
	cfg := risk.Config{
		PeriodsPerYear:  viper.GetInt("risk.periods_per_year"),
		RiskFreeRate:    viper.GetFloat64("risk.risk_free_rate"),
		ConfidenceLevel: viper.GetFloat64("risk.confidence_level"),
		EWMALambda:      viper.GetFloat64("risk.ewma_lambda"),
	}

	if req.PeriodsPerYear != 0 {
		cfg.PeriodsPerYear = req.PeriodsPerYear
	}
	if req.RiskFreeRate != 0 {
		cfg.RiskFreeRate = req.RiskFreeRate
	}
	if req.ConfidenceLevel != 0 {
		cfg.ConfidenceLevel = req.ConfidenceLevel
	}
	if req.EWMALambda != 0 {
		cfg.EWMALambda = req.EWMALambda
	}

	return cfg
}

type RiskMetricsResponse struct {
	Metrics risk.Report `json:"metrics"`
}

// RiskMetrics computes the full risk report for the posted return matrix and
// weight vector
func RiskMetrics(c *fiber.Ctx) error {
	_, span := otel.Tracer(opentelemetry.Name).Start(c.UserContext(), "handler.RiskMetrics")
	span.SetAttributes(opentelemetry.SpanAttributesFromFiber(c)...)
	defer span.End()

	var req RiskMetricsRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		log.Warn().Err(err).Msg("could not unmarshal risk metrics request")
		return fiber.ErrBadRequest
	}

	if len(req.Returns) == 0 {
		log.Warn().Msg("risk metrics request contains no returns")
		return fiber.ErrBadRequest
	}

	portRets, err := portfolio.AggregateReturns(req.Returns, req.Weights)
	if err != nil {
		log.Warn().Err(err).Msg("could not aggregate portfolio returns")
		return fiber.ErrBadRequest
	}

	report, err := risk.BuildReport(portRets, req.Config())
	if err != nil {
		if errors.Is(err, risk.ErrInvalidConfidence) {
			log.Warn().Err(err).Msg("invalid confidence level")
			return fiber.ErrBadRequest
		}
		log.Error().Err(err).Msg("could not build risk report")
		return fiber.ErrInternalServerError
	}

	return c.JSON(RiskMetricsResponse{Metrics: report})
}
