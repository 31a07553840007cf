// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package layout reads page layouts dumped as YAML or JSON and builds layout trees
// from positioned glyphs.
//
// A dump lists pages. A page either spells out its tree:
//
//	pages:
//	  - type: page
//	    bbox: [0, 0, 612, 792]
//	    children:
//	      - type: textline
//	        bbox: [72, 700, 140, 712]
//	        text: "Total\n"
//
// or lists its glyphs, which are grouped into lines with Build:
//
//	pages:
//	  - bbox: [0, 0, 612, 792]
//	    glyphs:
//	      - {text: "T", bbox: [72, 700, 79, 712]}
package layout

import (
	"errors"
	"fmt"
	"io"
	"os"

	pdftables "github.com/sassoftware/viya-pdf-tables"
	"gopkg.in/yaml.v3"
)

var ErrBadBBox = errors.New("bbox must hold 4 numbers")

type dump struct {
	Pages []node `yaml:"pages"`
}

type node struct {
	Type     string    `yaml:"type,omitempty"`
	BBox     []float64 `yaml:"bbox,omitempty,flow"`
	Text     *string   `yaml:"text,omitempty"`
	Children []node    `yaml:"children,omitempty"`
	Glyphs   []glyph   `yaml:"glyphs,omitempty"`
}

type glyph struct {
	Text string    `yaml:"text"`
	BBox []float64 `yaml:"bbox,flow"`
}

func rect(bbox []float64) (pdftables.Rect, error) {
	if len(bbox) != 4 {
		return pdftables.Rect{}, fmt.Errorf("%w, got %d", ErrBadBBox, len(bbox))
	}
	return pdftables.Rect{Left: bbox[0], Bottom: bbox[1], Right: bbox[2], Top: bbox[3]}, nil
}

func (n node) element(p Params) (*pdftables.Element, error) {
	if len(n.Glyphs) > 0 {
		media, err := rect(n.BBox)
		if err != nil {
			return nil, fmt.Errorf("page: %w", err)
		}
		glyphs := make([]Glyph, 0, len(n.Glyphs))
		for i, g := range n.Glyphs {
			r, err := rect(g.BBox)
			if err != nil {
				return nil, fmt.Errorf("glyph %d: %w", i, err)
			}
			glyphs = append(glyphs, Glyph{Text: g.Text, Rect: r})
		}
		return Build(media, glyphs, p), nil
	}

	e := &pdftables.Element{Tag: n.Type, Content: n.Text}
	if e.Tag == "" {
		e.Tag = TagPage
	}
	if len(n.BBox) > 0 {
		r, err := rect(n.BBox)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Tag, err)
		}
		e.Box = &[4]float64{r.Left, r.Bottom, r.Right, r.Top}
	}
	for _, c := range n.Children {
		kid, err := c.element(p)
		if err != nil {
			return nil, err
		}
		e.Add(kid)
	}
	return e, nil
}

// Load reads a layout dump from r and returns its pages in order. JSON dumps
// are read as well, JSON being a subset of YAML.
func Load(r io.Reader, p Params) ([]*pdftables.Element, error) {
	var d dump
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode layout: %w", err)
	}
	pages := make([]*pdftables.Element, 0, len(d.Pages))
	for i, n := range d.Pages {
		page, err := n.element(p)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// LoadFile reads the layout dump stored at path.
func LoadFile(path string, p Params) ([]*pdftables.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, p)
}

// Dump writes pages to w in the form Load reads.
func Dump(w io.Writer, pages []*pdftables.Element) error {
	d := dump{Pages: make([]node, 0, len(pages))}
	for _, page := range pages {
		d.Pages = append(d.Pages, fromElement(page))
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}

func fromElement(e *pdftables.Element) node {
	n := node{Type: e.Tag, Text: e.Content}
	if e.Box != nil {
		n.BBox = e.Box[:]
	}
	for _, k := range e.Kids {
		if k != nil {
			n.Children = append(n.Children, fromElement(k))
		}
	}
	return n
}
