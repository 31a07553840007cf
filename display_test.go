// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	rows := [][]string{{"foo", "goodbye"}, {"llama", "bar"}}
	want := "" +
		"     2 columns, 2 rows\n" +
		"          0       1\n" +
		"    ----------------\n" +
		"  0 |   foo|goodbye|\n" +
		"  1 | llama|    bar|\n" +
		"    ----------------\n"
	assert.Equal(t, want, ToString(rows))
}

func TestToString_Empty(t *testing.T) {
	want := "" +
		"     0 columns, 0 rows\n" +
		"      \n" +
		"    --\n" +
		"    --\n"
	assert.Equal(t, want, ToString(nil))
}

func TestDimensions(t *testing.T) {
	columns, n := Dimensions([][]string{{"foo", "goodbye"}, {"llama", "bar"}})
	assert.Equal(t, 2, columns)
	assert.Equal(t, 2, n)

	columns, n = Dimensions([][]string{{"row1", "apple", "llama"}, {"row2", "banana"}})
	assert.Equal(t, 3, columns)
	assert.Equal(t, 2, n)

	columns, n = Dimensions(nil)
	assert.Zero(t, columns)
	assert.Zero(t, n)
}

func TestColumnWidths(t *testing.T) {
	assert.Equal(t, []int{5, 7}, ColumnWidths([][]string{{"foo", "goodbye"}, {"llama", "bar"}}))
	// wide runes take two cells
	assert.Equal(t, []int{4, 1}, ColumnWidths([][]string{{"表格", "a"}}))
	assert.Empty(t, ColumnWidths(nil))
}

func TestRender_ByteWidth(t *testing.T) {
	rows := [][]string{{"表", "a"}, {"ab", "b"}}

	want := "" +
		"     2 columns, 2 rows\n" +
		"        0 1\n" +
		"    --------\n" +
		"  0 | 表|a|\n" +
		"  1 |  ab|b|\n" +
		"    --------\n"
	assert.Equal(t, want, Render(rows, ByteWidth))
	assert.Equal(t, ToString(rows), Render(rows, TerminalWidth))
}
