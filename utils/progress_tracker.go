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
	"time"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/logger"
)

// reportFraction divides a run into the intervals at which progress is
// reported.
const reportFraction = 10

// ProgressTracker logs the running estimate whenever the cumulative sample
// count crosses a 10% boundary of the run. It observes the counters only and
// never mutates the estimation state.
type ProgressTracker struct {
	target   uint64 // total number of samples of the run
	interval uint64 // samples between two reports
	next     uint64 // next boundary to report at
	start    time.Time
	log      logger.Logger
}

// NewProgressTracker creates a tracker for a run of target samples. Runs
// shorter than reportFraction samples produce no reports.
func NewProgressTracker(target uint64, log logger.Logger) *ProgressTracker {
	interval := target / reportFraction
	return &ProgressTracker{
		target:   target,
		interval: interval,
		next:     interval,
		start:    time.Now(),
		log:      log,
	}
}

// PrintProgress reports the running estimate once per crossed boundary. It
// satisfies estimator.ProgressFunc.
func (pt *ProgressTracker) PrintProgress(samplesDrawn, pointsInside uint64) {
	if pt.interval == 0 || samplesDrawn < pt.next {
		return
	}
	estimate := 4 * float64(pointsInside) / float64(samplesDrawn)
	percent := 100 * float64(samplesDrawn) / float64(pt.target)
	hours, minutes, seconds := logger.ParseTime(time.Since(pt.start))
	pt.log.Infof("Progress: %.1f%% - elapsed time: %d:%02d:%02d; current π estimate: %.6f (%v samples)",
		percent, hours, minutes, seconds, estimate, samplesDrawn)
	pt.next += pt.interval
}
