// Copyright 2025 Maruf Hossain
// This file is part of the Monte-Carlo-Estimator toolkit.
//
// mcpi is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mcpi is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with mcpi. If not, see <http://www.gnu.org/licenses/>.

package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator/statistics"
)

// csvHeader is the column layout expected by downstream plotting tools.
var csvHeader = []string{"Sample_Count", "Pi_Estimate", "Error"}

// WriteTraceCSV writes one row per intermediate estimate to the given path.
func WriteTraceCSV(path string, points []estimator.Point) error {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, csvRow(p.SampleCount, p.Estimate))
	}
	return writeCSV(path, rows)
}

// WriteResultCSV writes a single row with the final result to the given path.
func WriteResultCSV(path string, res estimator.Result) error {
	return writeCSV(path, [][]string{csvRow(res.Samples, res.Pi)})
}

func writeCSV(path string, rows [][]string) (err error) {
	f, cErr := os.Create(path)
	if cErr != nil {
		return fmt.Errorf("cannot create output file %v; %w", path, cErr)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

// csvRow formats one data row with fixed-point notation and 10 decimals for
// the estimate and its error.
func csvRow(sampleCount uint64, estimate float64) []string {
	return []string{
		strconv.FormatUint(sampleCount, 10),
		strconv.FormatFloat(estimate, 'f', 10, 64),
		strconv.FormatFloat(statistics.AbsoluteError(estimate), 'f', 10, 64),
	}
}
