// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"fmt"
	"strings"

	"github.com/sassoftware/viya-pdf-tables/logger"
)

// Hints are text fragments marking the first and last rows of a table. A text
// line containing Top fixes the top of the table region, one containing Bottom
// fixes its bottom. Empty hints are ignored.
type Hints struct {
	Top    string `mapstructure:"top" yaml:"top"`
	Bottom string `mapstructure:"bottom" yaml:"bottom"`
}

// Bounds is the rectangular region of a page believed to hold a table.
// Found is false when nothing on the page looks like a table.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Found      bool
}

func (b Bounds) String() string {
	if !b.Found {
		return "bounds{none}"
	}
	return fmt.Sprintf("bounds{x=[%.1f %.1f] y=[%.1f %.1f]}", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// FindTableBounds returns the table region of a page. The horizontal extent is that
// of every box. Vertically the region runs from the lowest bottom edge shared by
// enough text lines to the highest such top edge; a page of short, aligned lines
// is a table. Hints override either vertical edge when a matching line exists.
func FindTableBounds(boxes BoxList, hints Hints, th Thresholds) (Bounds, error) {
	extent, err := boxes.Extent()
	if err != nil {
		return Bounds{}, fmt.Errorf("table bounds: %w", err)
	}
	b := Bounds{
		MinX: extent.Left,
		MaxX: extent.Right,
		MinY: extent.Bottom,
		MaxY: extent.Top,
	}

	lines := boxes.FilterByKind(KindTextLine)
	bottoms := ThresholdAbove(lines.Histogram(Bottom).Round(th.BoundsRounding), th.TableColumnCount)
	tops := ThresholdAbove(lines.Histogram(Top).Round(th.BoundsRounding), th.TableColumnCount)

	haveMin, haveMax := false, false
	if len(bottoms) > 0 && len(tops) > 0 {
		b.MinY, b.MaxY = bottoms[0], tops[len(tops)-1]
		haveMin, haveMax = true, true
	}

	if minY, ok := hintedBottom(lines, hints.Bottom); ok {
		b.MinY, haveMin = minY, true
	}
	if maxY, ok := hintedTop(lines, hints.Top); ok {
		b.MaxY, haveMax = maxY, true
	}

	// an edge left undefined keeps the page extent
	b.Found = haveMin || haveMax
	if !haveMin {
		b.MinY = extent.Bottom
	}
	if !haveMax {
		b.MaxY = extent.Top
	}

	logger.Debug(fmt.Sprintf("table bounds: %s lines=%d", b, len(lines)))
	return b, nil
}

func hintedTop(lines BoxList, hint string) (float64, bool) {
	if hint == "" {
		return 0, false
	}
	for _, l := range lines {
		if strings.Contains(l.Text(), hint) {
			return l.Top(), true
		}
	}
	return 0, false
}

func hintedBottom(lines BoxList, hint string) (float64, bool) {
	if hint == "" {
		return 0, false
	}
	for _, l := range lines {
		if strings.Contains(l.Text(), hint) {
			return l.Bottom(), true
		}
	}
	return 0, false
}
