// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package unidoc

import (
	"context"
	"path/filepath"
	"testing"

	pdftables "github.com/sassoftware/viya-pdf-tables"
	"github.com/sassoftware/viya-pdf-tables/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

func TestGlyphs(t *testing.T) {
	marks := []extractor.TextMark{
		{Text: "A", BBox: model.PdfRectangle{Llx: 10, Lly: 100, Urx: 18, Ury: 110}},
		{Text: "ﬁx", BBox: model.PdfRectangle{Llx: 18, Lly: 100, Urx: 30, Ury: 110}},
		{Text: " ", BBox: model.PdfRectangle{Llx: 30, Lly: 100, Urx: 33, Ury: 110}},
	}

	got := glyphs(marks)
	require.Len(t, got, 4)
	assert.Equal(t, layout.Glyph{Text: "A", Rect: pdftables.Rect{Left: 10, Bottom: 100, Right: 18, Top: 110}}, got[0])
	assert.Equal(t, "ﬁ", got[1].Text)
	assert.Equal(t, 18.0, got[1].Rect.Left)
	assert.Equal(t, 24.0, got[1].Rect.Right)
	assert.Equal(t, "x", got[2].Text)
	assert.Equal(t, 24.0, got[2].Rect.Left)
	assert.Equal(t, 30.0, got[2].Rect.Right)
	assert.Equal(t, " ", got[3].Text)

	page := layout.Build(toRect(model.PdfRectangle{Urx: 612, Ury: 792}), got, layout.DefaultParams())
	require.Len(t, page.Kids, 1)
	text, _ := page.Kids[0].Text()
	assert.Equal(t, "Aﬁx \n", text)
	assert.Len(t, page.Kids[0].Kids, 4)
}

func TestDecoder_Open_Missing(t *testing.T) {
	dec := &Decoder{}
	_, err := dec.Open(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), "")
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dec.Open(ctx, "any.pdf", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecoder_Params(t *testing.T) {
	assert.Equal(t, layout.DefaultParams(), (&Decoder{}).params())

	p := layout.Params{CharMargin: 1, LineOverlap: 0.2}
	assert.Equal(t, p, (&Decoder{Params: &p}).params())
}
