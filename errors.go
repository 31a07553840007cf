// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import "errors"

var (
	// ErrNoBoxes is returned when a computation needs geometry but the box list is empty.
	ErrNoBoxes = errors.New("pdftables: no boxes")

	// ErrEmptyProjection is returned when no projection coordinate clears the comb threshold.
	ErrEmptyProjection = errors.New("pdftables: projection has no coordinates above threshold")

	// ErrCombNotSorted is returned by Locate and ExtendComb for a non-monotonic comb.
	ErrCombNotSorted = errors.New("pdftables: comb is not sorted")

	// ErrCombMismatch is returned when the upper and lower run edges differ in number.
	ErrCombMismatch = errors.New("pdftables: uppers and lowers differ in length")

	// ErrInvalidPage is returned when the root of a layout tree is not a page.
	ErrInvalidPage = errors.New("pdftables: layout root is not a page")
)

// IsTableless reports whether err only means that a page holds no detectable table.
// Callers treat such pages as empty rather than failed.
func IsTableless(err error) bool {
	return errors.Is(err, ErrNoBoxes) || errors.Is(err, ErrEmptyProjection)
}
