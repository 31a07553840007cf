// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"fmt"
	"testing"

	pdftables "github.com/sassoftware/viya-pdf-tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var media = pdftables.Rect{Right: 200, Top: 100}

func mkGlyph(text string, left, bottom float64) Glyph {
	return Glyph{Text: text, Rect: pdftables.Rect{Left: left, Bottom: bottom, Right: left + 10, Top: bottom + 10}}
}

func lineTexts(page *pdftables.Element) []string {
	var out []string
	for _, k := range page.Kids {
		s, _ := k.Text()
		out = append(out, s)
	}
	return out
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name       string
		glyphs     []Glyph
		wordMargin float64
		want       []string
	}{
		{
			name:   "adjacent glyphs share a line",
			glyphs: []Glyph{mkGlyph("a", 0, 50), mkGlyph("b", 10, 50)},
			want:   []string{"ab\n"},
		},
		{
			name:   "word gap is ignored without a word margin",
			glyphs: []Glyph{mkGlyph("a", 0, 50), mkGlyph("b", 10, 50), mkGlyph("c", 22, 50)},
			want:   []string{"abc\n"},
		},
		{
			name:       "word gap inserts a space",
			glyphs:     []Glyph{mkGlyph("a", 0, 50), mkGlyph("b", 10, 50), mkGlyph("c", 22, 50)},
			wordMargin: 0.1,
			want:       []string{"ab c\n"},
		},
		{
			name:   "blank glyph is kept",
			glyphs: []Glyph{mkGlyph("a", 0, 50), mkGlyph(" ", 10, 50), mkGlyph("b", 20, 50)},
			want:   []string{"a b\n"},
		},
		{
			name:       "blank glyph is not doubled by the word margin",
			glyphs:     []Glyph{mkGlyph("a", 0, 50), mkGlyph(" ", 12, 50), mkGlyph("b", 24, 50)},
			wordMargin: 0.1,
			want:       []string{"a b\n"},
		},
		{
			name: "zero width blank inserts a space",
			glyphs: []Glyph{
				mkGlyph("a", 0, 50),
				{Text: " ", Rect: pdftables.Rect{Left: 10, Bottom: 50, Right: 10, Top: 60}},
				mkGlyph("b", 10, 50),
			},
			want: []string{"a b\n"},
		},
		{
			name:   "blank across a column gap is dropped",
			glyphs: []Glyph{mkGlyph("a", 0, 50), mkGlyph(" ", 40, 50), mkGlyph("b", 60, 50)},
			want:   []string{"a\n", "b\n"},
		},
		{
			name:   "column gap splits",
			glyphs: []Glyph{mkGlyph("a", 0, 50), mkGlyph("b", 40, 50)},
			want:   []string{"a\n", "b\n"},
		},
		{
			name:   "new baseline splits",
			glyphs: []Glyph{mkGlyph("a", 0, 50), mkGlyph("b", 10, 30)},
			want:   []string{"a\n", "b\n"},
		},
		{
			name:   "small vertical shift is tolerated",
			glyphs: []Glyph{mkGlyph("a", 0, 50), mkGlyph("b", 10, 52)},
			want:   []string{"ab\n"},
		},
		{
			name:   "leading blank is dropped",
			glyphs: []Glyph{mkGlyph(" ", 0, 50), mkGlyph("a", 10, 50)},
			want:   []string{"a\n"},
		},
		{
			name: "no glyphs",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.WordMargin = tt.wordMargin
			page := Build(media, tt.glyphs, p)
			assert.Equal(t, TagPage, page.Type())
			assert.Equal(t, tt.want, lineTexts(page))
		})
	}
}

func TestBuild_Tree(t *testing.T) {
	p := DefaultParams()
	p.WordMargin = 0.1
	page := Build(media, []Glyph{mkGlyph("a", 0, 50), mkGlyph("b", 10, 52), mkGlyph("c", 22, 50)}, p)

	r, ok := page.BBox()
	require.True(t, ok)
	assert.Equal(t, media, r)
	_, ok = page.Text()
	assert.False(t, ok)

	require.Len(t, page.Kids, 1)
	line := page.Kids[0]
	assert.Equal(t, TagTextLine, line.Type())
	r, _ = line.BBox()
	assert.Equal(t, pdftables.Rect{Left: 0, Bottom: 50, Right: 32, Top: 62}, r)

	require.Len(t, line.Kids, 4)
	assert.Equal(t, TagAnon, line.Kids[2].Type())
	_, ok = line.Kids[2].BBox()
	assert.False(t, ok)

	boxes := pdftables.Flatten(page, pdftables.KindChar)
	assert.Len(t, boxes, 3)
	assert.Equal(t, pdftables.KindTextLine, pdftables.ParseKind(line.Type()))
}

func TestBuild_BlankGlyphIsCharacter(t *testing.T) {
	space := Glyph{Text: " ", Rect: pdftables.Rect{Left: 10, Bottom: 50, Right: 13, Top: 60}}
	page := Build(media, []Glyph{mkGlyph("a", 0, 50), space, mkGlyph("b", 13, 50)}, DefaultParams())

	require.Len(t, page.Kids, 1)
	line := page.Kids[0]
	require.Len(t, line.Kids, 3)
	assert.Equal(t, TagChar, line.Kids[1].Type())
	r, ok := line.Kids[1].BBox()
	require.True(t, ok)
	assert.Equal(t, space.Rect, r)

	boxes := pdftables.Flatten(page, pdftables.KindChar)
	require.Len(t, boxes, 3)
	assert.Equal(t, " ", boxes[1].Text())
}

// spacedGrid draws 4 columns by 6 rows of cells such as "A 1", where the space
// is a narrow glyph of its own.
func spacedGrid() []Glyph {
	var glyphs []Glyph
	for r := 0; r < 6; r++ {
		bottom := float64(500 - 20*r)
		for c := 0; c < 4; c++ {
			left := float64(50 + 100*c)
			glyphs = append(glyphs,
				Glyph{Text: string(rune('A' + c)), Rect: pdftables.Rect{Left: left, Bottom: bottom, Right: left + 10, Top: bottom + 10}},
				Glyph{Text: " ", Rect: pdftables.Rect{Left: left + 10, Bottom: bottom, Right: left + 13, Top: bottom + 10}},
				Glyph{Text: fmt.Sprint(r + 1), Rect: pdftables.Rect{Left: left + 13, Bottom: bottom, Right: left + 23, Top: bottom + 10}},
			)
		}
	}
	return glyphs
}

func TestBuild_SpacedCells(t *testing.T) {
	page := Build(pdftables.Rect{Right: 600, Top: 700}, spacedGrid(), DefaultParams())

	t.Run("atomised", func(t *testing.T) {
		rows, err := pdftables.PageToTable(page, pdftables.DefaultOptions())
		require.NoError(t, err)
		require.Len(t, rows, 6)
		assert.Equal(t, []string{"A 1", "B 1", "C 1", "D 1"}, rows[0])
		assert.Equal(t, []string{"A 6", "B 6", "C 6", "D 6"}, rows[5])
	})

	t.Run("text lines", func(t *testing.T) {
		opts := pdftables.DefaultOptions()
		opts.Atomise = false
		rows, err := pdftables.PageToTable(page, opts)
		require.NoError(t, err)
		require.Len(t, rows, 6)
		assert.Equal(t, []string{"A 1", "B 1", "C 1", "D 1"}, rows[0])
	})
}

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Params)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Params) {}},
		{name: "word margin", modify: func(p *Params) { p.WordMargin = 0.1 }},
		{name: "zero char margin", modify: func(p *Params) { p.CharMargin = 0 }, wantErr: true},
		{name: "line overlap above one", modify: func(p *Params) { p.LineOverlap = 1.5 }, wantErr: true},
		{name: "negative word margin", modify: func(p *Params) { p.WordMargin = -1 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
