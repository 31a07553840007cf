// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package plot draws projections and their combs as PNG charts, to see why a
// page was cut the way it was.
package plot

import (
	"errors"
	"fmt"
	"io"

	pdftables "github.com/sassoftware/viya-pdf-tables"
	chart "github.com/wcharczuk/go-chart"
)

var ErrTooFewPoints = errors.New("projection needs at least two coordinates to plot")

// WriteProjection renders p as a line chart to w in PNG format. Each cut of comb
// is drawn as a vertical bar reaching the highest count.
func WriteProjection(w io.Writer, title string, p pdftables.Projection, comb pdftables.Comb) error {
	coords, counts := p.Span()
	if len(coords) < 2 {
		return ErrTooFewPoints
	}

	xs := make([]float64, len(coords))
	ys := make([]float64, len(counts))
	peak := 1.0
	for i := range coords {
		xs[i] = float64(coords[i])
		ys[i] = float64(counts[i])
		peak = max(peak, ys[i])
	}

	series := []chart.Series{
		chart.ContinuousSeries{Name: "boxes", XValues: xs, YValues: ys},
	}
	for i, cut := range comb {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("cut %d", i),
			XValues: []float64{cut, cut},
			YValues: []float64{0, peak},
		})
	}

	c := chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{Show: true},
		XAxis:      chart.XAxis{Name: "coordinate", Style: chart.Style{Show: true}},
		YAxis:      chart.YAxis{Name: "boxes", Style: chart.Style{Show: true}},
		Series:     series,
	}
	if err := c.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render %s: %w", title, err)
	}
	return nil
}

// WriteAnalysis renders the row and column projections of a into two writers.
func WriteAnalysis(rows, columns io.Writer, name string, a *pdftables.Analysis) error {
	if a == nil || a.RowProjection == nil || a.ColumnProjection == nil {
		return fmt.Errorf("%s: %w", name, ErrTooFewPoints)
	}
	if err := WriteProjection(rows, name+" rows", a.RowProjection, a.RowComb); err != nil {
		return err
	}
	return WriteProjection(columns, name+" columns", a.ColumnProjection, a.ColumnComb)
}
