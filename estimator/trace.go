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

import "errors"

// ErrNoStepSize is returned when a trace is requested with a zero step size.
var ErrNoStepSize = errors.New("step size must be greater than zero")

// Point is an immutable snapshot of the running estimate at a fixed
// sample-count checkpoint.
type Point struct {
	SampleCount uint64
	Estimate    float64
}

// tracePointCap limits the default number of trace points per run.
const tracePointCap = 1000

// DefaultStepSize returns the step size capping a trace at roughly
// tracePointCap points.
func DefaultStepSize(numSamples uint64) uint64 {
	return max(1, numSamples/tracePointCap)
}

// Trace draws numSamples fresh points and records the running estimate at
// every exact multiple of stepSize, in increasing sample-count order. If
// numSamples is not a multiple of stepSize, the trailing partial segment is
// dropped and no point is emitted for it.
func (e *Estimator) Trace(numSamples, stepSize uint64) ([]Point, error) {
	if numSamples == 0 {
		return nil, ErrNoSamples
	}
	if stepSize == 0 {
		return nil, ErrNoStepSize
	}
	e.log.Debugf("tracing %v samples with step size %v", numSamples, stepSize)

	points := make([]Point, 0, numSamples/stepSize)
	var pointsInside uint64
	for i := uint64(0); i < numSamples; i++ {
		x := e.rg.Float64()*2 - 1
		y := e.rg.Float64()*2 - 1
		if insideUnitCircle(x, y) {
			pointsInside++
		}
		if (i+1)%stepSize == 0 {
			points = append(points, Point{
				SampleCount: i + 1,
				Estimate:    4 * float64(pointsInside) / float64(i+1),
			})
		}
	}
	return points, nil
}
