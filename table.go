// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import "strings"

// A Table is the grid of cell texts found on one page.
type Table struct {
	Rows [][]string `json:"rows"`

	PageNumber  int `json:"page"`        // 1-based
	TotalPages  int `json:"total_pages"` // pages in the document
	TableIndex  int `json:"table_index"` // 1-based index on the page
	TotalTables int `json:"total_tables"`
}

// Dimensions returns the column and row counts of the table.
func (t Table) Dimensions() (columns, rows int) {
	return Dimensions(t.Rows)
}

// Crop returns a copy of t without blank rows at the top and bottom.
func (t Table) Crop() Table {
	t.Rows = CropRows(t.Rows)
	return t
}

// CropRows returns rows without its leading and trailing blank rows. A row is
// blank when every cell is empty or white space. Blank rows between non-blank
// rows are kept. The result shares its rows with the input.
func CropRows(rows [][]string) [][]string {
	first := 0
	for first < len(rows) && blankRow(rows[first]) {
		first++
	}
	last := len(rows)
	for last > first && blankRow(rows[last-1]) {
		last--
	}
	return rows[first:last:last]
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
