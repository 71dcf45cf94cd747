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

package utils

import "github.com/urfave/cli/v2"

var (
	// NumSamplesFlag sets the number of random samples drawn per run.
	NumSamplesFlag = cli.Uint64Flag{
		Name:    "num-samples",
		Aliases: []string{"n"},
		Usage:   "number of random samples drawn from the unit square",
		Value:   1_000_000,
	}

	// TrackProgressFlag enables progress notifications at every 10% of a run.
	TrackProgressFlag = cli.BoolFlag{
		Name:    "progress",
		Aliases: []string{"p"},
		Usage:   "log the running estimate whenever the run crosses a 10% boundary",
	}

	// OutputFlag sets the CSV output file.
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"s"},
		Usage:   "write results as CSV to the given path",
	}

	// IntermediateFlag switches the CSV output from the final result to the
	// sequence of intermediate estimates.
	IntermediateFlag = cli.BoolFlag{
		Name:    "intermediate",
		Aliases: []string{"i"},
		Usage:   "write intermediate estimates instead of the final result (default output: " + DefaultOutputFile + ")",
	}

	// StepSizeFlag sets the sample interval between intermediate estimates.
	StepSizeFlag = cli.Uint64Flag{
		Name:  "step-size",
		Usage: "samples between intermediate estimates (default: num-samples/1000)",
	}

	// RandomSeedFlag seeds the random generator for reproducible runs.
	RandomSeedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed for the random generator (default: time-based)",
		Value: -1,
	}

	// ChartFileFlag renders the convergence trace as an HTML chart.
	ChartFileFlag = cli.PathFlag{
		Name:  "chart",
		Usage: "render the convergence trace as an HTML chart to the given path (requires --intermediate)",
	}
)
