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

// Package visualizer renders convergence traces as self-contained HTML line
// charts.
package visualizer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator"
	"github.com/MarufHossain14/Monte-Carlo-Estimator/estimator/statistics"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const chartTitle = "Convergence of the Monte Carlo π Estimate"

// convertTraceData converts trace points to chart points.
func convertTraceData(points []estimator.Point) []opts.LineData {
	items := []opts.LineData{}
	for _, p := range points {
		items = append(items, opts.LineData{Value: [2]float64{float64(p.SampleCount), p.Estimate}})
	}
	return items
}

// referenceData produces a constant π baseline over the trace's sample range.
func referenceData(points []estimator.Point) []opts.LineData {
	items := []opts.LineData{}
	for _, p := range points {
		items = append(items, opts.LineData{Value: [2]float64{float64(p.SampleCount), statistics.PiReference}})
	}
	return items
}

// NewConvergenceChart creates a line chart of the running estimate over the
// sample count, with the reference π as a baseline series.
func NewConvergenceChart(points []estimator.Point) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: chartTitle,
		}))
	chart.AddSeries("Estimate", convertTraceData(points)).AddSeries("Reference π", referenceData(points))

	return chart
}

// Render writes the convergence chart for the given trace to w.
func Render(w io.Writer, points []estimator.Point) error {
	if len(points) == 0 {
		return errors.New("no intermediate estimates to render")
	}
	return NewConvergenceChart(points).Render(w)
}

// RenderToFile writes the convergence chart to an HTML file at the given
// path.
func RenderToFile(path string, points []estimator.Point) (err error) {
	f, cErr := os.Create(path)
	if cErr != nil {
		return fmt.Errorf("cannot create chart file %v; %w", path, cErr)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return Render(f, points)
}
