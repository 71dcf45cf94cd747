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

// Package report turns estimation results into console and CSV output. It
// only consumes results; it never triggers a computation of its own.
package report

import (
	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator/statistics"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/logger"
)

// PrintResult writes the final-run report through the logger.
func PrintResult(log logger.Logger, res estimator.Result) {
	log.Notice("=== Monte Carlo π Estimation Results ===")
	log.Noticef("Number of samples: %d", res.Samples)
	log.Noticef("Points inside circle: %d", res.PointsInside)
	log.Noticef("Estimated π: %.10f", res.Pi)
	log.Noticef("Reference π: %.10f", statistics.PiReference)
	log.Noticef("Absolute error: %.10f", statistics.AbsoluteError(res.Pi))
	log.Noticef("Relative error: %.6f%%", statistics.RelativeError(res.Pi))
	log.Noticef("Computation time: %d ms", res.Elapsed.Milliseconds())
}
