// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	pdftables "github.com/sassoftware/viya-pdf-tables"
)

// Type tags of the elements built by this package.
const (
	TagPage     = "page"
	TagTextLine = "textline"
	TagChar     = "char"
	TagAnon     = "anon" // white space inserted between words, without a rectangle
)

// A Glyph is one character drawn on a page.
type Glyph struct {
	Text string
	Rect pdftables.Rect
}

func (g Glyph) width() float64  { return g.Rect.Right - g.Rect.Left }
func (g Glyph) height() float64 { return g.Rect.Top - g.Rect.Bottom }

func (g Glyph) blank() bool { return strings.TrimSpace(g.Text) == "" }

// positioned reports whether g occupies room on the page. Blank glyphs that do
// are kept as characters so they project and land in cells like any other.
func (g Glyph) positioned() bool { return g.width() > 0 && g.height() > 0 }

// Params tune how glyphs are grouped into text lines. Margins are relative to the
// size of the glyphs involved.
type Params struct {
	// CharMargin is the largest horizontal gap, in glyph widths, between two
	// glyphs of the same line. Wider gaps, such as those between table
	// columns, start a new line.
	CharMargin float64 `mapstructure:"char_margin" validate:"gt=0"`
	// LineOverlap is the fraction of the smaller glyph height two glyphs must
	// overlap vertically to share a line.
	LineOverlap float64 `mapstructure:"line_overlap" validate:"gte=0,lte=1"`
	// WordMargin is the gap, in glyph sizes, above which a space is inserted.
	// Zero turns space insertion off.
	WordMargin float64 `mapstructure:"word_margin" validate:"gte=0"`
}

func DefaultParams() Params {
	return Params{CharMargin: 2.0, LineOverlap: 0.5}
}

func (p Params) Validate() error {
	return validator.New().Struct(p)
}

// Build groups glyphs, given in drawing order, into text lines and returns the
// page element holding them. Consecutive glyphs share a line while they overlap
// vertically and sit close together horizontally.
func Build(mediaBox pdftables.Rect, glyphs []Glyph, p Params) *pdftables.Element {
	page := &pdftables.Element{
		Tag: TagPage,
		Box: &[4]float64{mediaBox.Left, mediaBox.Bottom, mediaBox.Right, mediaBox.Top},
	}

	var line *lineBuilder
	for _, g := range glyphs {
		if g.blank() {
			// white space never starts a line
			switch {
			case line == nil:
			case g.positioned() && line.accepts(g, p):
				line.add(g, p)
			default:
				line.pendingSpace = true
			}
			continue
		}
		if line != nil && line.accepts(g, p) {
			line.add(g, p)
			continue
		}
		if line != nil {
			page.Add(line.element())
		}
		line = newLine(g)
	}
	if line != nil {
		page.Add(line.element())
	}
	return page
}

type lineBuilder struct {
	rect         pdftables.Rect
	last         Glyph
	text         strings.Builder
	kids         []*pdftables.Element
	pendingSpace bool
}

func newLine(g Glyph) *lineBuilder {
	l := &lineBuilder{rect: g.Rect}
	l.push(g)
	return l
}

func (l *lineBuilder) accepts(g Glyph, p Params) bool {
	a, b := l.last.Rect, g.Rect
	overlap := math.Min(a.Top, b.Top) - math.Max(a.Bottom, b.Bottom)
	if overlap <= 0 || overlap <= math.Min(l.last.height(), g.height())*p.LineOverlap {
		return false
	}
	return hdistance(a, b) < math.Max(l.last.width(), g.width())*p.CharMargin
}

func hdistance(a, b pdftables.Rect) float64 {
	if a.Left <= b.Right && b.Left <= a.Right {
		return 0
	}
	return math.Min(math.Abs(a.Left-b.Right), math.Abs(a.Right-b.Left))
}

func (l *lineBuilder) add(g Glyph, p Params) {
	gap := g.Rect.Left - l.last.Rect.Right
	wide := p.WordMargin > 0 && gap > p.WordMargin*math.Max(g.width(), g.height())
	if !g.blank() && !l.last.blank() && (l.pendingSpace || wide) {
		space := " "
		l.kids = append(l.kids, &pdftables.Element{Tag: TagAnon, Content: &space})
		l.text.WriteByte(' ')
	}
	l.pendingSpace = false

	l.rect.Left = math.Min(l.rect.Left, g.Rect.Left)
	l.rect.Bottom = math.Min(l.rect.Bottom, g.Rect.Bottom)
	l.rect.Right = math.Max(l.rect.Right, g.Rect.Right)
	l.rect.Top = math.Max(l.rect.Top, g.Rect.Top)
	l.push(g)
}

func (l *lineBuilder) push(g Glyph) {
	l.kids = append(l.kids, pdftables.NewElement(TagChar, g.Rect, g.Text))
	l.text.WriteString(g.Text)
	l.last = g
}

// element returns the finished line. Its text ends in a newline like the text of
// a decoded line does.
func (l *lineBuilder) element() *pdftables.Element {
	return pdftables.NewElement(TagTextLine, l.rect, l.text.String()+"\n").Add(l.kids...)
}
