// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package unidoc decodes PDF files into layout trees with UniPDF.
package unidoc

import (
	"context"
	"errors"
	"fmt"
	"os"

	pdftables "github.com/sassoftware/viya-pdf-tables"
	"github.com/sassoftware/viya-pdf-tables/layout"
	"github.com/sassoftware/viya-pdf-tables/logger"
	"github.com/unidoc/unipdf/v3/common"
	"github.com/unidoc/unipdf/v3/common/license"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

var ErrWrongPassword = errors.New("pdf is encrypted and the password does not open it")

// Decoder opens PDF files. The zero value uses the default layout parameters.
type Decoder struct {
	Params *layout.Params
}

// SetLicense installs a UniPDF license key. It must be called before the first
// document is opened.
func SetLicense(key, customer string) error {
	if err := license.SetLicenseKey(key, customer); err != nil {
		return fmt.Errorf("unipdf license: %w", err)
	}
	return nil
}

// Verbose routes UniPDF's own diagnostics to the console.
func Verbose(debug bool) {
	level := common.LogLevelInfo
	if debug {
		level = common.LogLevelDebug
	}
	common.SetLogger(common.NewConsoleLogger(level))
}

// SetDebug switches UniPDF's diagnostics to debug level.
func (d *Decoder) SetDebug(on bool) { Verbose(on) }

var _ pdftables.DebugSetter = (*Decoder)(nil)

func (d *Decoder) params() layout.Params {
	if d.Params != nil {
		return *d.Params
	}
	return layout.DefaultParams()
}

func (d *Decoder) Open(ctx context.Context, path, password string) (pdftables.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	reader, err := model.NewPdfReaderLazy(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read pdf %s: %w", path, err)
	}
	if err := unlock(reader, password); err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	n, err := reader.GetNumPages()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("count pages of %s: %w", path, err)
	}
	logger.Debug(fmt.Sprintf("Opened pdf: path=%s pages=%d", path, n), true)
	return &Document{file: f, reader: reader, pages: n, params: d.params()}, nil
}

func unlock(reader *model.PdfReader, password string) error {
	encrypted, err := reader.IsEncrypted()
	if err != nil {
		return err
	}
	if !encrypted {
		return nil
	}
	ok, err := reader.Decrypt([]byte(password))
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongPassword
	}
	return nil
}

// Document is an open PDF file.
type Document struct {
	file   *os.File
	reader *model.PdfReader
	pages  int
	params layout.Params
}

func (d *Document) NumPages() int { return d.pages }

// Page extracts the text marks of page num and groups them into lines.
func (d *Document) Page(ctx context.Context, num int) (pdftables.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if num < 1 || num > d.pages {
		return nil, fmt.Errorf("%w: page %d of %d", pdftables.ErrInvalidPage, num, d.pages)
	}
	page, err := d.reader.GetPage(num)
	if err != nil {
		return nil, err
	}
	mbox, err := page.GetMediaBox()
	if err != nil {
		return nil, err
	}
	ex, err := extractor.New(page)
	if err != nil {
		return nil, err
	}
	pageText, _, _, err := ex.ExtractPageText()
	if err != nil {
		return nil, err
	}
	marks := pageText.Marks()
	return layout.Build(toRect(*mbox), glyphs(marks.Elements()), d.params), nil
}

func (d *Document) Close() error {
	return d.file.Close()
}

func toRect(r model.PdfRectangle) pdftables.Rect {
	return pdftables.Rect{Left: r.Llx, Bottom: r.Lly, Right: r.Urx, Top: r.Ury}
}

// glyphs converts text marks to glyphs, splitting marks that carry several
// characters, such as ligatures, evenly across their box.
func glyphs(marks []extractor.TextMark) []layout.Glyph {
	out := make([]layout.Glyph, 0, len(marks))
	for _, m := range marks {
		runes := []rune(m.Text)
		r := toRect(m.BBox)
		if len(runes) <= 1 {
			out = append(out, layout.Glyph{Text: m.Text, Rect: r})
			continue
		}
		step := (r.Right - r.Left) / float64(len(runes))
		for i, c := range runes {
			g := r
			g.Left = r.Left + float64(i)*step
			g.Right = g.Left + step
			out = append(out, layout.Glyph{Text: string(c), Rect: g})
		}
	}
	return out
}
