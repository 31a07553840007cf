// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"math"
	"sort"
)

// A Histogram counts occurrences of coordinate values.
type Histogram map[float64]int

// Round re-buckets the keys of h to the nearest multiple of tol, summing the
// counts of keys that collide. Halves round away from zero. h is not modified.
func (h Histogram) Round(tol float64) Histogram {
	out := make(Histogram, len(h))
	for k, v := range h {
		out[math.Round(k/tol)*tol] += v
	}
	return out
}

// ThresholdAbove returns, in ascending order, the keys of h whose count is
// strictly greater than threshold.
func ThresholdAbove(h Histogram, threshold int) []float64 {
	var above []float64
	for k, v := range h {
		if v > threshold {
			above = append(above, k)
		}
	}
	sort.Float64s(above)
	return above
}
