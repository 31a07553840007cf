// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"fmt"
	"math"
	"slices"
)

// NotFound is the index Locate returns for a value outside every interval.
const NotFound = -1

// A Comb is a monotonic list of boundaries partitioning an axis into cells.
// Column combs run left to right; row combs are kept top to bottom by callers.
type Comb []float64

// Cells returns the number of intervals the comb defines.
func (c Comb) Cells() int {
	if len(c) < 2 {
		return 0
	}
	return len(c) - 1
}

func (c Comb) descending() bool {
	return len(c) > 1 && c[0] > c[len(c)-1]
}

func (c Comb) sorted() bool {
	asc, desc := true, true
	for i := 1; i < len(c); i++ {
		if c[i] < c[i-1] {
			asc = false
		}
		if c[i] > c[i-1] {
			desc = false
		}
	}
	return asc || desc
}

func (c Comb) clone() Comb {
	return slices.Clone(c)
}

// CombFromProjection derives the cell boundaries along one axis from projection p.
// Coordinates with a count above threshold are grouped into runs of adjacent
// values; neighbouring runs further apart than tol are split at the least dense
// coordinate between them, closer runs are merged. The comb is returned ascending.
func CombFromProjection(p Projection, threshold, tol int) (Comb, error) {
	above := p.Above(threshold)
	if len(above) == 0 {
		return nil, ErrEmptyProjection
	}

	// lowers are the first coordinate of each run, uppers the last
	lowers := []float64{float64(above[0])}
	var uppers []float64
	for i := 1; i < len(above); i++ {
		if above[i] > above[i-1]+1 {
			uppers = append(uppers, float64(above[i-1]))
			lowers = append(lowers, float64(above[i]))
		}
	}
	uppers = append(uppers, float64(above[len(above)-1]))

	comb, err := combFromUppersAndLowers(uppers, lowers, float64(tol), p)
	if err != nil {
		return nil, err
	}
	slices.Reverse(comb)
	return comb, nil
}

// combFromUppersAndLowers builds a comb from the highest coordinate downwards.
// Raising tol above 1 for rows merges lines that should stay apart.
func combFromUppersAndLowers(uppers, lowers []float64, tol float64, p Projection) (Comb, error) {
	if len(uppers) != len(lowers) {
		return nil, fmt.Errorf("%d uppers, %d lowers: %w", len(uppers), len(lowers), ErrCombMismatch)
	}
	if len(uppers) == 0 {
		return nil, ErrEmptyProjection
	}

	uppers = slices.Clone(uppers)
	lowers = slices.Clone(lowers)
	slices.SortFunc(uppers, descending)
	slices.SortFunc(lowers, descending)

	comb := Comb{uppers[0]}
	for i := 1; i < len(uppers); i++ {
		if lowers[i-1]-uppers[i] > tol {
			comb = append(comb, findMinima(lowers[i-1], uppers[i], p))
		}
	}
	return append(comb, lowers[len(lowers)-1]), nil
}

func descending(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

// findMinima returns the least dense coordinate in [upper, lower), the first one
// on ties. Without a projection it returns the midpoint.
func findMinima(lower, upper float64, p Projection) float64 {
	if len(p) == 0 {
		return (lower + upper) / 2
	}
	idx, least := upper, math.MaxInt
	for i := int(upper); i < int(lower); i++ {
		if v := p[i]; v < least {
			idx, least = float64(i), v
		}
	}
	return idx
}

// ExtendComb extrapolates comb with its average spacing so that it stretches
// towards minv and maxv. Generated boundaries stop short of the targets, as with a
// half-open range. The orientation of comb is preserved and comb itself is not
// modified.
func ExtendComb(comb Comb, minv, maxv float64) (Comb, error) {
	if !comb.sorted() {
		return nil, ErrCombNotSorted
	}
	if len(comb) < 2 {
		return comb.clone(), nil
	}

	asc := comb.clone()
	reversed := asc.descending()
	if reversed {
		slices.Reverse(asc)
	}
	minc, maxc := asc[0], asc[len(asc)-1]
	spacing := (maxc - minc) / float64(len(asc)-1)
	if spacing <= 0 {
		return comb.clone(), nil
	}

	var out Comb
	if minv < minc {
		n := int(math.Ceil((minc - minv) / spacing))
		for k := n - 1; k >= 1; k-- {
			out = append(out, minc-float64(k)*spacing)
		}
	}
	out = append(out, asc...)
	if maxv > maxc {
		n := int(math.Ceil((maxv - maxc) / spacing))
		for k := 1; k < n; k++ {
			out = append(out, maxc+float64(k)*spacing)
		}
	}

	if reversed {
		slices.Reverse(out)
	}
	return out, nil
}

// Locate returns the index of the comb interval holding value, or NotFound.
// Intervals include both ends; a value on a shared boundary belongs to the
// interval met first in comb order. The comb may be ascending or descending.
func Locate(comb Comb, value float64) (int, error) {
	if !comb.sorted() {
		return NotFound, ErrCombNotSorted
	}
	if comb.descending() {
		for i := 1; i < len(comb); i++ {
			if comb[i-1] >= value && value >= comb[i] {
				return i - 1, nil
			}
		}
		return NotFound, nil
	}
	for i := 1; i < len(comb); i++ {
		if comb[i-1] <= value && value <= comb[i] {
			return i - 1, nil
		}
	}
	return NotFound, nil
}
