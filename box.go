// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"fmt"
	"math"
	"strings"
)

// A Rect is an axis-aligned rectangle in page coordinates.
// Y increases from the bottom of the page to the top.
type Rect struct {
	Left   float64
	Bottom float64
	Right  float64
	Top    float64
}

// Kind is the type tag of a layout element.
type Kind int

const (
	KindOther Kind = iota
	KindPage
	KindTextLine
	KindChar
)

func (k Kind) String() string {
	switch k {
	case KindPage:
		return "page"
	case KindTextLine:
		return "textline"
	case KindChar:
		return "char"
	default:
		return "other"
	}
}

// ParseKind maps a decoder type tag to a Kind. Both the short names used by this
// package and the pdfminer class names are understood; anything else is KindOther.
func ParseKind(tag string) Kind {
	switch tag {
	case "page", "LTPage":
		return KindPage
	case "textline", "LTTextLineHorizontal":
		return KindTextLine
	case "char", "LTChar":
		return KindChar
	default:
		return KindOther
	}
}

// A Box is one positioned element of a page: a rectangle, a kind and its text.
// Boxes are immutable once built.
type Box struct {
	rect Rect
	kind Kind
	text string
}

// NewBox builds a Box from a raw rectangle, kind and text.
func NewBox(r Rect, kind Kind, text string) Box {
	return Box{rect: r, kind: kind, text: text}
}

func (b Box) Rect() Rect   { return b.rect }
func (b Box) Kind() Kind   { return b.kind }
func (b Box) Text() string { return b.text }

func (b Box) Left() float64   { return b.rect.Left }
func (b Box) Right() float64  { return b.rect.Right }
func (b Box) Top() float64    { return b.rect.Top }
func (b Box) Bottom() float64 { return b.rect.Bottom }
func (b Box) Width() float64  { return b.rect.Right - b.rect.Left }
func (b Box) Height() float64 { return b.rect.Top - b.rect.Bottom }

// Midline is the vertical centre of the box.
func (b Box) Midline() float64 { return (b.rect.Top + b.rect.Bottom) / 2 }

// Centerline is the horizontal centre of the box.
func (b Box) Centerline() float64 { return (b.rect.Left + b.rect.Right) / 2 }

func (b Box) String() string {
	return fmt.Sprintf("%s[%.1f %.1f %.1f %.1f] %q", b.kind,
		b.rect.Left, b.rect.Bottom, b.rect.Right, b.rect.Top, b.text)
}

// A BoxList is an ordered list of boxes in traversal order.
type BoxList []Box

// FilterByKind keeps the boxes whose kind is one of kinds, preserving order.
// With no kinds the receiver is returned as is.
func (l BoxList) FilterByKind(kinds ...Kind) BoxList {
	if len(kinds) == 0 {
		return l
	}
	out := make(BoxList, 0, len(l))
	for _, b := range l {
		for _, k := range kinds {
			if b.kind == k {
				out = append(out, b)
				break
			}
		}
	}
	return out
}

// PurgeEmptyText drops text lines with blank text. Boxes of every other kind are
// kept, so the characters of a dropped line survive.
func (l BoxList) PurgeEmptyText() BoxList {
	out := make(BoxList, 0, len(l))
	for _, b := range l {
		if b.kind == KindTextLine && strings.TrimSpace(b.text) == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Histogram counts the value of fn over every box.
func (l BoxList) Histogram(fn func(Box) float64) Histogram {
	h := make(Histogram)
	for _, b := range l {
		h[fn(b)]++
	}
	return h
}

// FilterByPosition keeps the boxes for which fn lies in [min, max].
func (l BoxList) FilterByPosition(min, max float64, fn func(Box) float64) BoxList {
	out := make(BoxList, 0, len(l))
	for _, b := range l {
		if v := fn(b); v >= min && v <= max {
			out = append(out, b)
		}
	}
	return out
}

// ModalHeight returns the most frequent rounded height of the text lines and
// characters in the list. Ties go to the height seen first; 0 when there are none.
func (l BoxList) ModalHeight() float64 {
	counts := make(map[float64]int)
	var order []float64
	for _, b := range l {
		if b.kind != KindTextLine && b.kind != KindChar {
			continue
		}
		h := math.Round(b.Height())
		if _, seen := counts[h]; !seen {
			order = append(order, h)
		}
		counts[h]++
	}
	var modal float64
	best := 0
	for _, h := range order {
		if counts[h] > best {
			modal, best = h, counts[h]
		}
	}
	return modal
}

// Extent returns the rectangle covering every box in the list.
func (l BoxList) Extent() (Rect, error) {
	if len(l) == 0 {
		return Rect{}, ErrNoBoxes
	}
	r := l[0].rect
	for _, b := range l[1:] {
		r.Left = math.Min(r.Left, b.rect.Left)
		r.Bottom = math.Min(r.Bottom, b.rect.Bottom)
		r.Right = math.Max(r.Right, b.rect.Right)
		r.Top = math.Max(r.Top, b.rect.Top)
	}
	return r, nil
}

// CountByKind returns how many boxes of each kind the list holds.
func (l BoxList) CountByKind() map[Kind]int {
	m := make(map[Kind]int)
	for _, b := range l {
		m[b.kind]++
	}
	return m
}

// Accessors usable with Histogram and FilterByPosition.
var (
	Left       = Box.Left
	Right      = Box.Right
	Top        = Box.Top
	Bottom     = Box.Bottom
	Midline    = Box.Midline
	Centerline = Box.Centerline
)
