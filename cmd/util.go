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
	"strconv"

	"github.com/penny-vault/pv-risk/data"
	"github.com/penny-vault/pv-risk/dataframe"
	"github.com/penny-vault/pv-risk/portfolio"
	"github.com/rs/zerolog/log"
)

// loadPortfolioReturns reads the returns file named by args[0], parses the
// remaining args as the weight vector and aggregates the portfolio return
// series. When prices is set the file is treated as a price table and
// converted to returns first.
func loadPortfolioReturns(args []string, prices bool) []float64 {
	var err error

	fn := args[0]
	weights := make([]float64, len(args)-1)
	for idx, arg := range args[1:] {
		weights[idx], err = strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatal().Err(err).Str("Weight", arg).Msg("could not parse weight")
		}
	}

	var df *dataframe.DataFrame
	if prices {
		df, err = data.LoadPricesCSV(fn)
	} else {
		df, err = data.LoadReturnsCSV(fn)
	}
	if err != nil {
		log.Fatal().Err(err).Str("FileName", fn).Msg("could not load returns")
	}

	log.Info().Int("NumDays", df.Len()).Int("NumAssets", df.ColCount()).
		Time("Start", df.Start()).Time("End", df.End()).Msg("loaded return data")

	portRets, err := portfolio.AggregateFrame(df, weights)
	if err != nil {
		log.Fatal().Err(err).Msg("could not aggregate portfolio returns")
	}

	return portRets
}
