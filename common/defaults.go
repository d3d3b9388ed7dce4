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

package common

import "github.com/spf13/viper"

// RegisterDefaults installs the default values for every analysis setting the
// engine recognizes. Settings may be overridden by the config file, environment
// variables, or command line flags.
func RegisterDefaults() {
	viper.SetDefault("risk.periods_per_year", 252)
	viper.SetDefault("risk.risk_free_rate", 0.02)
	viper.SetDefault("risk.confidence_level", 0.95)
	viper.SetDefault("risk.ewma_lambda", 0.94)

	viper.SetDefault("simulation.days", 252)
	viper.SetDefault("simulation.paths", 1000)
	viper.SetDefault("simulation.initial_value", 1000.0)

	viper.SetDefault("server.allow_origins", "http://localhost:8080")

	viper.SetDefault("log.level", "warning")
	viper.SetDefault("log.output", "stdout")
}
