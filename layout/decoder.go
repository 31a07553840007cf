// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package layout

import (
	"context"
	"fmt"

	pdftables "github.com/sassoftware/viya-pdf-tables"
)

// Decoder opens layout dump files. Passwords are ignored.
type Decoder struct {
	Params Params
}

func NewDecoder() *Decoder {
	return &Decoder{Params: DefaultParams()}
}

func (d *Decoder) Open(ctx context.Context, path, _ string) (pdftables.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pages, err := LoadFile(path, d.Params)
	if err != nil {
		return nil, fmt.Errorf("open layout %s: %w", path, err)
	}
	return &Document{pages: pages}, nil
}

// Document is a layout dump held in memory.
type Document struct {
	pages []*pdftables.Element
}

// NewDocument wraps pages already in memory.
func NewDocument(pages ...*pdftables.Element) *Document {
	return &Document{pages: pages}
}

func (d *Document) NumPages() int { return len(d.pages) }

func (d *Document) Page(ctx context.Context, num int) (pdftables.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if num < 1 || num > len(d.pages) {
		return nil, fmt.Errorf("%w: page %d of %d", pdftables.ErrInvalidPage, num, len(d.pages))
	}
	return d.pages[num-1], nil
}

func (d *Document) Close() error { return nil }
