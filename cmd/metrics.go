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

package cmd

import (
	"fmt"

	"github.com/penny-vault/pv-risk/common"
	"github.com/penny-vault/pv-risk/risk"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var metricsFromPrices bool

func init() {
	rootCmd.AddCommand(metricsCmd)

	metricsCmd.Flags().BoolVar(&metricsFromPrices, "prices", false, "treat the input file as prices and convert to returns")
}

var metricsCmd = &cobra.Command{
	Use:        "metrics [flags] returnsFile weight [weight...]",
	Short:      "Compute risk metrics for a weighted portfolio",
	Long:       `Compute annualized return, volatility, Sharpe ratio, max drawdown, CVaR and EWMA volatility from a CSV of daily returns and a weight vector (one weight per asset column).`,
	Args:       cobra.MinimumNArgs(2),
	ArgAliases: []string{"returnsFile"},
	Run: func(cmd *cobra.Command, args []string) {
		common.SetupLogging()

		portRets := loadPortfolioReturns(args, metricsFromPrices)

		cfg := risk.Config{
			PeriodsPerYear:  viper.GetInt("risk.periods_per_year"),
			RiskFreeRate:    viper.GetFloat64("risk.risk_free_rate"),
			ConfidenceLevel: viper.GetFloat64("risk.confidence_level"),
			EWMALambda:      viper.GetFloat64("risk.ewma_lambda"),
		}

		report, err := risk.BuildReport(portRets, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("could not build risk report")
		}

		fmt.Println(report.Table())
	},
}
