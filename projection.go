// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"fmt"
	"math"
	"sort"
)

// Axis selects which pair of box edges a projection uses.
type Axis int

const (
	// AxisRow projects bottom and top edges onto the vertical axis.
	AxisRow Axis = iota
	// AxisColumn projects left and right edges onto the horizontal axis.
	AxisColumn
)

func (a Axis) String() string {
	if a == AxisColumn {
		return "column"
	}
	return "row"
}

func (a Axis) edges(b Box) (lower, upper float64) {
	if a == AxisColumn {
		return b.Left(), b.Right()
	}
	return b.Bottom(), b.Top()
}

// A Projection maps each integer coordinate along an axis to the number of boxes
// covering it. Every coordinate of the padded extent is present, possibly with a
// zero count.
type Projection map[int]int

// Project counts, for each integer coordinate, the boxes whose extent along axis
// covers it. Each box covers [round(lower)+erosion, round(upper)-erosion); a box
// eroded to nothing contributes nothing.
func Project(boxes BoxList, axis Axis, erosion int) (Projection, error) {
	if len(boxes) == 0 {
		return nil, fmt.Errorf("project %s: %w", axis, ErrNoBoxes)
	}

	minEdge, maxEdge := math.Inf(1), math.Inf(-1)
	for _, b := range boxes {
		lower, upper := axis.edges(b)
		minEdge = math.Min(minEdge, lower)
		maxEdge = math.Max(maxEdge, upper)
	}

	p := make(Projection)
	// ensure some overlap
	for i := int(math.Round(minEdge)) - 2; i < int(math.Round(maxEdge))+2; i++ {
		p[i] = 0
	}
	for _, b := range boxes {
		lower, upper := axis.edges(b)
		for i := int(math.Round(lower)) + erosion; i < int(math.Round(upper))-erosion; i++ {
			p[i]++
		}
	}
	return p, nil
}

// Above returns, ascending, the coordinates whose count is strictly greater than threshold.
func (p Projection) Above(threshold int) []int {
	var above []int
	for k, v := range p {
		if v > threshold {
			above = append(above, k)
		}
	}
	sort.Ints(above)
	return above
}

// Span returns every coordinate of p in ascending order with its count.
func (p Projection) Span() (coords []int, counts []int) {
	coords = make([]int, 0, len(p))
	for k := range p {
		coords = append(coords, k)
	}
	sort.Ints(coords)
	counts = make([]int, len(coords))
	for i, k := range coords {
		counts[i] = p[k]
	}
	return coords, counts
}

// ErosionFor returns the row erosion for boxes: a quarter of the modal text height,
// rounded down. It opens a gap in the row projection between adjacent text lines.
func ErosionFor(boxes BoxList) int {
	return int(math.Floor(boxes.ModalHeight() / 4))
}
