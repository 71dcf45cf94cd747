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

package main

import (
	"math/rand"
	"time"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator/statistics"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/logger"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/report"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/utils"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/visualizer"
	"github.com/urfave/cli/v2"
)

// run executes one estimation according to the cli flags.
func run(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "mcpi")

	seed := cfg.RandomSeed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	rg := rand.New(rand.NewSource(seed))
	log.Noticef("using random seed %d", seed)

	est := estimator.NewEstimator(rg, log)
	if cfg.Intermediate {
		return runTrace(cfg, est, log)
	}
	return runEstimate(cfg, est, log)
}

// runEstimate computes the final estimate once, reports it to the console,
// and optionally writes the same result to CSV. A failing file write cannot
// lose the result since the console report precedes it.
func runEstimate(cfg *utils.Config, est *estimator.Estimator, log logger.Logger) error {
	var progress estimator.ProgressFunc
	if cfg.TrackProgress {
		progress = utils.NewProgressTracker(cfg.NumSamples, log).PrintProgress
	}

	res, err := est.EstimateWithProgress(cfg.NumSamples, progress)
	if err != nil {
		return err
	}

	report.PrintResult(log, res)
	if lo, hi, ciErr := statistics.ConfidenceInterval(res, 0.95); ciErr == nil {
		log.Noticef("95%% confidence interval: [%.10f, %.10f]", lo, hi)
	}

	if cfg.Output != "" {
		if err := report.WriteResultCSV(cfg.Output, res); err != nil {
			return err
		}
		log.Noticef("results saved to %v", cfg.Output)
	}
	return nil
}

// runTrace records the convergence of the running estimate and writes it to
// CSV, optionally rendering it as an HTML chart.
func runTrace(cfg *utils.Config, est *estimator.Estimator, log logger.Logger) error {
	points, err := est.Trace(cfg.NumSamples, cfg.StepSize)
	if err != nil {
		return err
	}

	summary := statistics.Summarize(points)
	log.Noticef("trace: %v intermediate estimates, mean %.10f, stddev %.10f",
		summary.Points, summary.Mean, summary.StdDev)

	if err := report.WriteTraceCSV(cfg.Output, points); err != nil {
		return err
	}
	log.Noticef("results saved to %v", cfg.Output)

	if cfg.ChartFile != "" {
		if err := visualizer.RenderToFile(cfg.ChartFile, points); err != nil {
			return err
		}
		log.Noticef("convergence chart written to %v", cfg.ChartFile)
	}
	return nil
}
