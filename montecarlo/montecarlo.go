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

// Package montecarlo projects forward portfolio value distributions by
// simulating Geometric Brownian Motion paths calibrated from historical
// returns.
package montecarlo

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/penny-vault/pv-risk/risk"
)

var ErrNoReturns = errors.New("cannot calibrate simulation from an empty return series")

// Config collects the simulation settings. Zero fields are replaced with the
// conventional defaults by New.
type Config struct {
	// Days is the simulation horizon in trading days
	Days int

	// Paths is the number of independent paths to simulate
	Paths int

	// InitialValue is the starting portfolio value for every path
	InitialValue float64

	// PeriodsPerYear is the annualization factor used during calibration and
	// as the reciprocal of the simulation time step
	PeriodsPerYear int

	// Seed for the random source; 0 selects a time-based seed
	Seed int64
}

// Simulator runs GBM path simulations. Each call to Run is an independent
// batch computation; the simulator holds no state other than its random
// source.
type Simulator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a simulator, filling in default settings for zero config fields
// and seeding the random source.
func New(cfg Config) *Simulator {
	if cfg.Days == 0 {
		cfg.Days = 252
	}
	if cfg.Paths == 0 {
		cfg.Paths = 1000
	}
	if cfg.InitialValue == 0 {
		cfg.InitialValue = 1000
	}
	if cfg.PeriodsPerYear == 0 {
		cfg.PeriodsPerYear = 252
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Simulator{
		cfg: cfg,
		rng: rng,
	}
}

// Result holds the simulated value matrix for one run. Values has Days+1
// rows and Paths columns; row 0 is fixed to the initial portfolio value.
type Result struct {
	// Mu is the annualized drift estimated from the historical series
	Mu float64

	// Sigma is the annualized volatility estimated from the historical series
	Sigma float64

	// Values is the simulated value matrix, row major: Values[day][path]
	Values [][]float64
}

// FinalValues returns the terminal row of the value matrix.
func (r *Result) FinalValues() []float64 {
	return r.Values[len(r.Values)-1]
}

// Run simulates forward portfolio value paths. Drift and volatility are
// calibrated from the supplied historical portfolio return series, not user
// supplied. Every path starts at the configured initial value; each
// subsequent day applies the exact-solution GBM update
//
//	value = prev * exp((μ - σ²/2)·dt + σ·sqrt(dt)·Z)
//
// with dt = 1/periodsPerYear and Z an independent standard normal shock.
func (s *Simulator) Run(portRets []float64) (*Result, error) {
	if len(portRets) == 0 {
		return nil, ErrNoReturns
	}

	mu := risk.AnnualizedReturn(portRets, s.cfg.PeriodsPerYear)
	sigma := risk.AnnualizedVolatility(portRets, s.cfg.PeriodsPerYear)

	dt := 1.0 / float64(s.cfg.PeriodsPerYear)
	drift := (mu - 0.5*sigma*sigma) * dt
	diffusion := sigma * math.Sqrt(dt)

	values := make([][]float64, s.cfg.Days+1)
	values[0] = make([]float64, s.cfg.Paths)
	for path := range values[0] {
		values[0][path] = s.cfg.InitialValue
	}

	for day := 1; day <= s.cfg.Days; day++ {
		values[day] = make([]float64, s.cfg.Paths)
		for path := 0; path < s.cfg.Paths; path++ {
			z := s.rng.NormFloat64()
			values[day][path] = values[day-1][path] * math.Exp(drift+diffusion*z)
		}
	}

	return &Result{
		Mu:     mu,
		Sigma:  sigma,
		Values: values,
	}, nil
}
