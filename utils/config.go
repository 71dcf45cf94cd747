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

import (
	"fmt"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/logger"
	"github.com/urfave/cli/v2"
)

// DefaultOutputFile receives the results when --intermediate is requested
// without an explicit output path.
const DefaultOutputFile = "monte_carlo_pi_results.csv"

// Config holds the parameters of one estimation run.
type Config struct {
	NumSamples    uint64 // number of samples drawn from the unit square
	TrackProgress bool   // log the running estimate at every 10% boundary
	Output        string // CSV output path, empty for console-only runs
	Intermediate  bool   // write the convergence trace instead of the final result
	StepSize      uint64 // samples between two intermediate estimates
	RandomSeed    int64  // seed for the random generator, negative for time-based
	ChartFile     string // HTML chart output path, empty to skip rendering
	LogLevel      string
}

// NewConfig assembles a Config from the cli flags and validates it.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		NumSamples:    ctx.Uint64(NumSamplesFlag.Name),
		TrackProgress: ctx.Bool(TrackProgressFlag.Name),
		Output:        ctx.Path(OutputFlag.Name),
		Intermediate:  ctx.Bool(IntermediateFlag.Name),
		StepSize:      ctx.Uint64(StepSizeFlag.Name),
		RandomSeed:    ctx.Int64(RandomSeedFlag.Name),
		ChartFile:     ctx.Path(ChartFileFlag.Name),
		LogLevel:      ctx.String(logger.LogLevelFlag.Name),
	}

	if cfg.NumSamples == 0 {
		return nil, estimator.ErrNoSamples
	}
	if cfg.ChartFile != "" && !cfg.Intermediate {
		return nil, fmt.Errorf("--%v requires --%v", ChartFileFlag.Name, IntermediateFlag.Name)
	}

	if cfg.Intermediate && cfg.Output == "" {
		cfg.Output = DefaultOutputFile
	}
	if cfg.StepSize == 0 {
		cfg.StepSize = estimator.DefaultStepSize(cfg.NumSamples)
	}
	return cfg, nil
}
