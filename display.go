// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// A WidthFunc measures how many columns a cell takes when printed.
type WidthFunc func(string) int

var (
	// TerminalWidth counts East Asian wide and full-width runes as two
	// columns and every other rune as one.
	TerminalWidth WidthFunc = displayWidth
	// ByteWidth counts bytes, which lines up only for ASCII cells.
	ByteWidth WidthFunc = func(s string) int { return len(s) }
)

// ToString renders rows as a fixed-width text grid for terminals.
func ToString(rows [][]string) string {
	return Render(rows, TerminalWidth)
}

// Render renders rows as a fixed-width text grid, measuring cells with w.
func Render(rows [][]string, w WidthFunc) string {
	var b strings.Builder

	columns, n := Dimensions(rows)
	fmt.Fprintf(&b, "     %d columns, %d rows\n", columns, n)

	widths := columnWidths(rows, w)
	total := len(widths) + 2
	for _, cw := range widths {
		total += cw
	}
	hbar := "    " + strings.Repeat("-", total) + "\n"

	header := make([]string, len(widths))
	for i, cw := range widths {
		header[i] = padLeft(strconv.Itoa(i), cw, w)
	}
	fmt.Fprintf(&b, "      %s\n", strings.Join(header, " "))

	b.WriteString(hbar)
	for i, row := range rows {
		cells := make([]string, 0, len(widths))
		for j, cell := range row {
			if j >= len(widths) {
				break
			}
			cells = append(cells, padLeft(cell, widths[j], w))
		}
		fmt.Fprintf(&b, "%3d | %s|\n", i, strings.Join(cells, "|"))
	}
	b.WriteString(hbar)
	return b.String()
}

// Dimensions returns the number of columns, the longest row's length, and the
// number of rows.
func Dimensions(rows [][]string) (columns, n int) {
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	return columns, len(rows)
}

// ColumnWidths returns the widest cell of each column in terminal cells.
func ColumnWidths(rows [][]string) []int {
	return columnWidths(rows, TerminalWidth)
}

func columnWidths(rows [][]string, w WidthFunc) []int {
	columns, _ := Dimensions(rows)
	widths := make([]int, columns)
	for _, row := range rows {
		for j, cell := range row {
			widths[j] = max(widths[j], w(cell))
		}
	}
	return widths
}

// displayWidth counts East Asian wide and full-width runes as two cells.
func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func padLeft(s string, n int, w WidthFunc) string {
	if pad := n - w(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}
