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

package estimator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/logger"
)

// ErrNoSamples is returned when an estimation is requested with zero samples.
// The estimate 4*inside/samples is undefined in that case and must never
// surface as NaN.
var ErrNoSamples = errors.New("number of samples must be greater than zero")

// Result holds the aggregate outcome of one estimation run.
type Result struct {
	Samples      uint64        // total number of samples drawn
	PointsInside uint64        // samples landing inside the unit circle
	Pi           float64       // final estimate 4*inside/samples
	Elapsed      time.Duration // wall-clock time of the sampling loop
}

// ProgressFunc observes the running counters of the sampling loop. It is
// called once per drawn sample and must not mutate the estimation state.
type ProgressFunc func(samplesDrawn, pointsInside uint64)

// Estimator draws independent uniform 2D points in [-1,1]x[-1,1] and
// classifies each against the inscribed unit circle. It owns its random
// generator exclusively; consecutive calls continue the generator's stream,
// so no drawn point is ever reused between calls.
type Estimator struct {
	rg  *rand.Rand
	log logger.Logger
}

// NewEstimator creates an estimator for the given random generator.
func NewEstimator(rg *rand.Rand, log logger.Logger) *Estimator {
	return &Estimator{rg: rg, log: log}
}

// Estimate draws numSamples points and returns the final estimate.
func (e *Estimator) Estimate(numSamples uint64) (Result, error) {
	return e.EstimateWithProgress(numSamples, nil)
}

// EstimateWithProgress draws numSamples points and returns the final
// estimate. A non-nil progress function is invoked after every draw with the
// running counters; it is read-only over the state and cannot alter the
// numeric result.
func (e *Estimator) EstimateWithProgress(numSamples uint64, progress ProgressFunc) (Result, error) {
	if numSamples == 0 {
		return Result{}, ErrNoSamples
	}
	e.log.Debugf("drawing %v samples", numSamples)

	var pointsInside uint64
	start := time.Now()
	for i := uint64(0); i < numSamples; i++ {
		x := e.rg.Float64()*2 - 1
		y := e.rg.Float64()*2 - 1
		if insideUnitCircle(x, y) {
			pointsInside++
		}
		if progress != nil {
			progress(i+1, pointsInside)
		}
	}
	elapsed := time.Since(start)

	return Result{
		Samples:      numSamples,
		PointsInside: pointsInside,
		Pi:           4 * float64(pointsInside) / float64(numSamples),
		Elapsed:      elapsed,
	}, nil
}

// insideUnitCircle classifies a sample. Points exactly on the circle count
// as inside.
func insideUnitCircle(x, y float64) bool {
	return x*x+y*y <= 1.0
}
