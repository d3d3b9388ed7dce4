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

// Package data loads aligned return and price tables from CSV files. The
// expected layout is a header row of "Date" followed by one column per asset,
// with ISO dates and fractional values in the body.
package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/penny-vault/pv-risk/dataframe"
	"github.com/rs/zerolog/log"
)

var (
	ErrEmptyFile   = errors.New("file contains no data rows")
	ErrNoAssetCols = errors.New("file contains no asset columns")
)

// LoadReturnsCSV reads an aligned table of daily fractional returns.
func LoadReturnsCSV(fn string) (*dataframe.DataFrame, error) {
	fh, err := os.Open(fn)
	if err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("could not open returns file")
		return nil, err
	}
	defer fh.Close()

	return readFrame(csv.NewReader(fh))
}

// LoadPricesCSV reads an aligned table of prices and converts it to daily
// fractional returns; rows with undefined changes are dropped.
func LoadPricesCSV(fn string) (*dataframe.DataFrame, error) {
	prices, err := LoadReturnsCSV(fn)
	if err != nil {
		return nil, err
	}

	return prices.PctChange().Drop(math.NaN()), nil
}

func readFrame(r *csv.Reader) (*dataframe.DataFrame, error) {
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, err
	}

	if len(header) < 2 {
		return nil, ErrNoAssetCols
	}

	colNames := header[1:]
	dates := make([]time.Time, 0, 252)
	vals := make([][]float64, len(colNames))

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: could not parse date %q: %w", len(dates)+1, record[0], err)
		}
		dates = append(dates, date)

		for idx, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %s: could not parse value %q: %w", len(dates), colNames[idx], field, err)
			}
			vals[idx] = append(vals[idx], v)
		}
	}

	if len(dates) == 0 {
		return nil, ErrEmptyFile
	}

	df, err := dataframe.New(dates, colNames, vals)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("NumRows", df.Len()).Int("NumAssets", df.ColCount()).Msg("loaded data file")
	return df, nil
}
