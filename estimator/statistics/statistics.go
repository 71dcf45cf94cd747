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

// Package statistics provides error metrics and summary statistics for
// Monte Carlo π estimates. All functions are pure; the reference constant is
// used only for error computation, never for sampling.
package statistics

import (
	"fmt"
	"math"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// PiReference is the fixed high-precision reference value of π.
const PiReference = 3.14159265358979323846

// AbsoluteError returns |estimate - π|.
func AbsoluteError(estimate float64) float64 {
	return math.Abs(estimate - PiReference)
}

// RelativeError returns the absolute error as a percentage of π.
func RelativeError(estimate float64) float64 {
	return 100 * AbsoluteError(estimate) / PiReference
}

// Summary describes the intermediate estimates of a convergence trace.
type Summary struct {
	Points int     // number of intermediate estimates
	Mean   float64 // mean of the intermediate estimates
	StdDev float64 // standard deviation of the intermediate estimates
}

// Summarize computes summary statistics over a convergence trace.
func Summarize(points []estimator.Point) Summary {
	if len(points) == 0 {
		return Summary{}
	}
	estimates := make([]float64, len(points))
	for i, p := range points {
		estimates[i] = p.Estimate
	}
	s := Summary{
		Points: len(points),
		Mean:   stat.Mean(estimates, nil),
	}
	if len(estimates) > 1 {
		s.StdDev = stat.StdDev(estimates, nil)
	}
	return s
}

// ConfidenceInterval returns the normal-approximation confidence interval of
// a final estimate for the given level (e.g. 0.95). The standard error of
// the estimate is 4*sqrt(p*(1-p)/n) with p the fraction of points inside.
func ConfidenceInterval(res estimator.Result, level float64) (lo, hi float64, err error) {
	if res.Samples == 0 {
		return 0, 0, estimator.ErrNoSamples
	}
	if level <= 0 || level >= 1 {
		return 0, 0, fmt.Errorf("confidence level (%v) is not in interval (0,1)", level)
	}
	p := float64(res.PointsInside) / float64(res.Samples)
	se := 4 * math.Sqrt(p*(1-p)/float64(res.Samples))
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.5 + level/2)
	return res.Pi - z*se, res.Pi + z*se, nil
}
