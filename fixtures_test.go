// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"fmt"
)

func rect(l, b, r, t float64) Rect {
	return Rect{Left: l, Bottom: b, Right: r, Top: t}
}

func pageElement(w, h float64) *Element {
	return &Element{Tag: "page", Box: &[4]float64{0, 0, w, h}}
}

// twoByTwoPage is a 90x120 page holding A1 B1 above A2 B2.
func twoByTwoPage() *Element {
	return pageElement(90, 120).Add(
		NewElement("textline", rect(10, 100, 40, 110), "A1"),
		NewElement("textline", rect(50, 100, 80, 110), "B1"),
		NewElement("textline", rect(10, 80, 40, 90), "A2"),
		NewElement("textline", rect(50, 80, 80, 90), "B2"),
	)
}

// smallThresholds suit twoByTwoPage.
func smallThresholds() Thresholds {
	return Thresholds{
		TableRowCount:      1,
		TableColumnCount:   1,
		ColumnComb:         1,
		RowComb:            1,
		RowCutTolerance:    1,
		ColumnCutTolerance: 3,
		BoundsRounding:     2,
		PrecheckRounding:   1,
	}
}

func gridCell(row, col int) string {
	return fmt.Sprintf("%c%03d", 'A'+col, row+1)
}

// gridPage lays out 6 rows of 4 text lines of 10pt, 40pt wide cells on a
// 600x700 page. With chars each line also holds its characters, 10pt apart.
func gridPage(chars bool) *Element {
	page := pageElement(600, 700)
	for r := 0; r < 6; r++ {
		bottom := 500 - 20*float64(r)
		for c := 0; c < 4; c++ {
			left := 50 + 100*float64(c)
			text := gridCell(r, c)
			line := NewElement("textline", rect(left, bottom, left+40, bottom+10), text+"\n")
			if chars {
				for i, ch := range text {
					x := left + 10*float64(i)
					line.Add(NewElement("char", rect(x, bottom, x+10, bottom+10), string(ch)))
				}
			}
			page.Add(line)
		}
	}
	return page
}

func gridRows() [][]string {
	rows := make([][]string, 6)
	for r := range rows {
		rows[r] = make([]string, 4)
		for c := range rows[r] {
			rows[r][c] = gridCell(r, c)
		}
	}
	return rows
}

// raggedPage has four rows of lines sharing their top edges but not their
// bottom edges: it passes ContainsTable while FindTableBounds finds nothing.
func raggedPage() *Element {
	page := pageElement(600, 700)
	for r := 0; r < 4; r++ {
		top := 500 - 20*float64(r)
		for c := 0; c < 4; c++ {
			left := 50 + 100*float64(c)
			page.Add(NewElement("textline", rect(left, top-10-3*float64(c), left+40, top), "x"))
		}
	}
	return page
}

// prosePage is a page of full-width lines of running text.
func prosePage() *Element {
	page := pageElement(600, 700)
	for r := 0; r < 10; r++ {
		bottom := 600 - 14*float64(r)
		page.Add(NewElement("textline", rect(72, bottom, 520, bottom+10), "Lorem ipsum dolor sit amet\n"))
	}
	return page
}
