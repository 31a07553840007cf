// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ApplyCombs allocates the text of every box to the cell holding its centre.
// The grid has xComb.Cells() columns and yComb.Cells() rows. Text landing in an
// occupied cell is appended in traversal order; boxes outside the grid are dropped.
func ApplyCombs(boxes BoxList, xComb, yComb Comb) ([][]string, error) {
	rows := make([][]string, yComb.Cells())
	for i := range rows {
		rows[i] = make([]string, xComb.Cells())
	}
	if len(rows) == 0 || xComb.Cells() == 0 {
		return rows, nil
	}

	for _, b := range boxes {
		row, err := Locate(yComb, math.Round(b.Midline()))
		if err != nil {
			return nil, fmt.Errorf("row comb: %w", err)
		}
		col, err := Locate(xComb, math.Round(b.Centerline()))
		if err != nil {
			return nil, fmt.Errorf("column comb: %w", err)
		}
		if row == NotFound || col == NotFound {
			continue
		}
		rows[row][col] += strings.TrimRight(b.Text(), "\r\n")
	}
	return rows, nil
}

// NormalizeCells puts every cell in Unicode normalization form C, in place, so
// that a base letter and its separately drawn accent compare equal to the
// precomposed letter.
func NormalizeCells(rows [][]string) {
	for _, row := range rows {
		for j, cell := range row {
			row[j] = norm.NFC.String(cell)
		}
	}
}

// trimCells strips leading and trailing white space from every cell in place.
func trimCells(rows [][]string) {
	for _, row := range rows {
		for j, cell := range row {
			row[j] = strings.TrimSpace(cell)
		}
	}
}
