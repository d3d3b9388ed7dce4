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
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/penny-vault/pv-risk/montecarlo"
	"github.com/penny-vault/pv-risk/observability/opentelemetry"
	"github.com/penny-vault/pv-risk/portfolio"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
)

// SimulationRequest carries the historical return matrix and weight vector the
// simulation is calibrated from, plus optional simulation settings. Setting
// IncludeFinalValues or IncludePaths returns the raw terminal sample or the
// full path matrix for downstream visualization.
type SimulationRequest struct {
	Returns [][]float64 `json:"returns"`
	Weights []float64   `json:"weights"`

	Days            int     `json:"days"`
	Paths           int     `json:"paths"`
	InitialValue    float64 `json:"initialValue"`
	PeriodsPerYear  int     `json:"periodsPerYear"`
	Seed            int64   `json:"seed"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
	LossThreshold   float64 `json:"lossThreshold"`

	IncludeFinalValues bool `json:"includeFinalValues"`
	IncludePaths       bool `json:"includePaths"`
}

type SimulationResponse struct {
	ID          string           `json:"id"`
	Mu          float64          `json:"mu"`
	Sigma       float64          `json:"sigma"`
	Stats       montecarlo.Stats `json:"stats"`
	FinalValues []float64        `json:"finalValues,omitempty"`
	Paths       [][]float64      `json:"paths,omitempty"`
}

// Simulation runs a Monte Carlo projection for the posted return matrix and
// weight vector
func Simulation(c *fiber.Ctx) error {
	_, span := otel.Tracer(opentelemetry.Name).Start(c.UserContext(), "handler.Simulation")
	span.SetAttributes(opentelemetry.SpanAttributesFromFiber(c)...)
	defer span.End()

	var req SimulationRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		log.Warn().Err(err).Msg("could not unmarshal simulation request")
		return fiber.ErrBadRequest
	}

	if len(req.Returns) == 0 {
		log.Warn().Msg("simulation request contains no returns")
		return fiber.ErrBadRequest
	}

	portRets, err := portfolio.AggregateReturns(req.Returns, req.Weights)
	if err != nil {
		log.Warn().Err(err).Msg("could not aggregate portfolio returns")
		return fiber.ErrBadRequest
	}

	cfg := montecarlo.Config{
		Days:           req.Days,
		Paths:          req.Paths,
		InitialValue:   req.InitialValue,
		PeriodsPerYear: req.PeriodsPerYear,
		Seed:           req.Seed,
	}
	if cfg.Days == 0 {
		cfg.Days = viper.GetInt("simulation.days")
	}
	if cfg.Paths == 0 {
		cfg.Paths = viper.GetInt("simulation.paths")
	}
	if cfg.InitialValue == 0 {
		cfg.InitialValue = viper.GetFloat64("simulation.initial_value")
	}
	if cfg.PeriodsPerYear == 0 {
		cfg.PeriodsPerYear = viper.GetInt("risk.periods_per_year")
	}

	alpha := req.ConfidenceLevel
	if alpha == 0 {
		alpha = viper.GetFloat64("risk.confidence_level")
	}
	if alpha <= 0 || alpha >= 1 {
		log.Warn().Float64("ConfidenceLevel", alpha).Msg("invalid confidence level")
		return fiber.ErrBadRequest
	}

	lossThreshold := req.LossThreshold
	if lossThreshold == 0 {
		lossThreshold = cfg.InitialValue
	}

	sim := montecarlo.New(cfg)
	result, err := sim.Run(portRets)
	if err != nil {
		log.Warn().Err(err).Msg("could not run simulation")
		return fiber.ErrBadRequest
	}

	resp := SimulationResponse{
		ID:    uuid.New().String(),
		Mu:    result.Mu,
		Sigma: result.Sigma,
		Stats: montecarlo.AnalyzeResults(result.FinalValues(), alpha, lossThreshold),
	}
	if req.IncludeFinalValues {
		resp.FinalValues = result.FinalValues()
	}
	if req.IncludePaths {
		resp.Paths = result.Values
	}

	return c.JSON(resp)
}
