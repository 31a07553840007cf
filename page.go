// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"fmt"
	"slices"

	"github.com/sassoftware/viya-pdf-tables/logger"
)

// Options control the analysis of a single page.
type Options struct {
	// Atomise allocates individual characters rather than whole text lines and
	// trims the resulting cells. Characters resolve columns more finely.
	Atomise bool
	// ExtendY stretches the row comb to the full height of the page so that
	// blank rows above and below the detected region are recovered.
	ExtendY bool
	// Normalize applies NormalizeCells to the allocated cells.
	Normalize  bool
	Hints      Hints
	Thresholds Thresholds
}

// DefaultOptions returns the options the document processor uses by default.
func DefaultOptions() Options {
	return Options{Atomise: true, ExtendY: true, Normalize: true, Thresholds: DefaultThresholds()}
}

// Stage is how far the analysis of a page progressed.
type Stage int

const (
	StageUnfiltered Stage = iota
	StageBounded
	StageProjected
	StageCombed
	StageExtended
	StageAllocated
	StageCropped
)

var stageNames = [...]string{"unfiltered", "bounded", "projected", "combed", "extended", "allocated", "cropped"}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Analysis records the intermediate products of AnalysePage.
type Analysis struct {
	Stage  Stage
	Bounds Bounds

	Erosion          int
	RowProjection    Projection
	ColumnProjection Projection

	RowComb    Comb // top to bottom
	ColumnComb Comb // left to right

	Rows [][]string // allocated, not cropped
}

// AnalysePage detects the table on page and allocates its text to cells.
// When the page shows no table region the analysis stops at StageBounded with
// no rows. The returned Analysis is non-nil whenever page is a page node, even
// on error, and tells how far the analysis got.
func AnalysePage(page Node, opts Options) (*Analysis, error) {
	if isNil(page) {
		return nil, fmt.Errorf("nil node: %w", ErrInvalidPage)
	}
	if ParseKind(page.Type()) != KindPage {
		return nil, fmt.Errorf("node type %q: %w", page.Type(), ErrInvalidPage)
	}
	th := opts.Thresholds
	a := &Analysis{Stage: StageUnfiltered}

	kinds := []Kind{KindPage, KindTextLine}
	if opts.Atomise {
		kinds = append(kinds, KindChar)
	}
	boxes := Flatten(page, kinds...).PurgeEmptyText()

	bounds, err := FindTableBounds(boxes, opts.Hints, th)
	if err != nil {
		return a, err
	}
	a.Bounds, a.Stage = bounds, StageBounded
	if !bounds.Found {
		logger.Debug("no table region on page", true)
		return a, nil
	}

	// text lines have served the bounds; characters resolve columns better
	if opts.Atomise {
		boxes = boxes.FilterByKind(KindPage, KindChar)
	}

	inside := boxes.
		FilterByPosition(bounds.MinY, bounds.MaxY, Midline).
		FilterByPosition(bounds.MinX, bounds.MaxX, Centerline)
	logger.Debug(fmt.Sprintf("boxes in table region: %d of %d", len(inside), len(boxes)), true)

	if a.ColumnProjection, err = Project(inside, AxisColumn, 0); err != nil {
		return a, err
	}
	a.Erosion = ErosionFor(inside)
	if a.RowProjection, err = Project(inside, AxisRow, a.Erosion); err != nil {
		return a, err
	}
	a.Stage = StageProjected

	if a.RowComb, err = CombFromProjection(a.RowProjection, th.RowComb, th.RowCutTolerance); err != nil {
		return a, fmt.Errorf("row comb: %w", err)
	}
	slices.Reverse(a.RowComb)
	if a.ColumnComb, err = CombFromProjection(a.ColumnProjection, th.ColumnComb, th.ColumnCutTolerance); err != nil {
		return a, fmt.Errorf("column comb: %w", err)
	}
	a.ColumnComb[0] = bounds.MinX
	a.ColumnComb[len(a.ColumnComb)-1] = bounds.MaxX
	a.Stage = StageCombed
	logger.Debug(fmt.Sprintf("combs: rows=%v columns=%v erosion=%d", a.RowComb, a.ColumnComb, a.Erosion), true)

	if opts.ExtendY {
		extent, err := boxes.Extent()
		if err != nil {
			return a, err
		}
		if a.RowComb, err = ExtendComb(a.RowComb, extent.Bottom, extent.Top); err != nil {
			return a, fmt.Errorf("extend row comb: %w", err)
		}
		a.Stage = StageExtended
	}

	if a.Rows, err = ApplyCombs(boxes, a.ColumnComb, a.RowComb); err != nil {
		return a, err
	}
	if opts.Normalize {
		NormalizeCells(a.Rows)
	}
	if opts.Atomise {
		trimCells(a.Rows)
	}
	a.Stage = StageAllocated
	logger.Debug(fmt.Sprintf("allocated %d rows x %d columns", a.RowComb.Cells(), a.ColumnComb.Cells()), true)
	return a, nil
}

// PageToTable returns the cropped cell grid of the table on page, or no rows when
// the page shows no table region.
func PageToTable(page Node, opts Options) ([][]string, error) {
	a, err := AnalysePage(page, opts)
	if err != nil {
		return nil, err
	}
	return a.Crop(), nil
}

// Crop drops the blank rows at the top and bottom of the allocated grid.
func (a *Analysis) Crop() [][]string {
	a.Rows = CropRows(a.Rows)
	a.Stage = StageCropped
	return a.Rows
}

// ContainsTable is a cheap test for whether page may hold a table: more than
// TableRowCount distinct top edges must each be shared by more than
// TableColumnCount page or text-line boxes.
func ContainsTable(page Node, th Thresholds) bool {
	boxes := Flatten(page, KindPage, KindTextLine)
	tops := ThresholdAbove(boxes.Histogram(Top).Round(th.PrecheckRounding), th.TableColumnCount)
	return len(tops) > th.TableRowCount
}
