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
	"os"

	"github.com/penny-vault/pv-risk/common"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	common.RegisterDefaults()

	// Logging configuration
	viper.BindEnv("log.level", "PV_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.BindEnv("log.report_caller", "PV_LOG_REPORT_CALLER")
	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	viper.BindPFlag("log.report_caller", rootCmd.PersistentFlags().Lookup("log-report-caller"))

	viper.BindEnv("log.output", "PV_LOG_OUTPUT")
	rootCmd.PersistentFlags().String("log-output", "stdout", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	rootCmd.PersistentFlags().Bool("log-pretty", false, "Print logs on the console")
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))

	// Analysis settings
	viper.BindEnv("risk.risk_free_rate", "PV_RISK_FREE_RATE")
	rootCmd.PersistentFlags().Float64("risk-free-rate", 0.02, "Annual risk free rate used for the Sharpe ratio")
	viper.BindPFlag("risk.risk_free_rate", rootCmd.PersistentFlags().Lookup("risk-free-rate"))

	rootCmd.PersistentFlags().Float64("confidence-level", 0.95, "Confidence level for CVaR metrics")
	viper.BindPFlag("risk.confidence_level", rootCmd.PersistentFlags().Lookup("confidence-level"))

	rootCmd.PersistentFlags().Int("periods-per-year", 252, "Number of trading periods per year")
	viper.BindPFlag("risk.periods_per_year", rootCmd.PersistentFlags().Lookup("periods-per-year"))

	rootCmd.PersistentFlags().Float64("ewma-lambda", 0.94, "Decay factor for EWMA volatility")
	viper.BindPFlag("risk.ewma_lambda", rootCmd.PersistentFlags().Lookup("ewma-lambda"))
}

var rootCmd = &cobra.Command{
	Use:     "pvrisk",
	Version: common.CurrentVersion.String(),
	Short:   "Penny Vault risk is a portfolio risk analysis package",
	Long:    `Compute standardized risk metrics for a weighted portfolio of assets and project future value distributions with Monte Carlo simulation.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
