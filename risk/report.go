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
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Config collects the analysis settings recognized by the metric functions.
type Config struct {
	PeriodsPerYear  int     `json:"periodsPerYear"`
	RiskFreeRate    float64 `json:"riskFreeRate"`
	ConfidenceLevel float64 `json:"confidenceLevel"`
	EWMALambda      float64 `json:"ewmaLambda"`
}

// DefaultConfig returns the conventional settings: 252 trading days, 2% risk
// free rate, 95% confidence, 0.94 decay.
func DefaultConfig() Config {
	return Config{
		PeriodsPerYear:  252,
		RiskFreeRate:    0.02,
		ConfidenceLevel: 0.95,
		EWMALambda:      0.94,
	}
}

// Metric is a single named statistic. Percent controls display formatting
// only; Value is always the raw fraction or ratio.
type Metric struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent bool    `json:"percent"`
}

// Report is an ordered collection of metrics, produced fresh on each call.
type Report []Metric

// BuildReport computes the full set of risk metrics for a portfolio return
// series. Metric order matches the canonical report layout.
func BuildReport(portRets []float64, cfg Config) (Report, error) {
	paramCVaR, err := ParametricCVaR(portRets, cfg.ConfidenceLevel, cfg.PeriodsPerYear)
	if err != nil {
		return nil, err
	}

	cvarName := fmt.Sprintf("Historical CVaR (%.0f%%)", cfg.ConfidenceLevel*100)
	paramCVaRName := fmt.Sprintf("Parametric CVaR (%.0f%%)", cfg.ConfidenceLevel*100)

	return Report{
		{Name: "Annualized Return", Value: AnnualizedReturn(portRets, cfg.PeriodsPerYear), Percent: true},
		{Name: "Volatility", Value: AnnualizedVolatility(portRets, cfg.PeriodsPerYear), Percent: true},
		{Name: "Sharpe Ratio", Value: SharpeRatio(portRets, cfg.RiskFreeRate, cfg.PeriodsPerYear)},
		{Name: "Max Drawdown", Value: MaxDrawdown(portRets), Percent: true},
		{Name: cvarName, Value: HistoricalCVaR(portRets, cfg.ConfidenceLevel, cfg.PeriodsPerYear), Percent: true},
		{Name: paramCVaRName, Value: paramCVaR, Percent: true},
		{Name: "EWMA Volatility", Value: EWMAVolatility(portRets, cfg.EWMALambda, cfg.PeriodsPerYear), Percent: true},
	}, nil
}

// Table renders the report as an ASCII table
func (r Report) Table() string {
	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(false)

	for _, m := range r {
		if m.Percent {
			table.Append([]string{m.Name, fmt.Sprintf("%.2f%%", m.Value*100)})
		} else {
			table.Append([]string{m.Name, fmt.Sprintf("%.2f", m.Value)})
		}
	}

	table.Render()
	return s.String()
}
