// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package store

import (
	"context"
	"os"
	"testing"
	"time"

	pdftables "github.com/sassoftware/viya-pdf-tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDocuments(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	tables := []pdftables.Table{
		{Rows: [][]string{{"a", "b"}, {"c", "d"}}, PageNumber: 2, TotalPages: 4, TableIndex: 1, TotalTables: 1},
		{Rows: [][]string{}, PageNumber: 3, TotalPages: 4, TableIndex: 1, TotalTables: 1},
	}

	docs := documents("report.pdf", tables, now)
	require.Len(t, docs, 2)

	first, ok := docs[0].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "report.pdf", first["source"])
	assert.Equal(t, 2, first["page"])
	assert.Equal(t, 4, first["total_pages"])
	assert.Equal(t, 2, first["columns"])
	assert.Equal(t, 2, first["row_count"])
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, first["rows"])
	assert.Equal(t, now, first["extracted_at"])

	second := docs[1].(bson.M)
	assert.Equal(t, 0, second["columns"])
	assert.Equal(t, 0, second["row_count"])

	assert.Empty(t, documents("empty.pdf", nil, now))
}

// TestStore_SaveTables needs a server, e.g. PDFTABLES_TEST_MONGO=mongodb://localhost:27017.
func TestStore_SaveTables(t *testing.T) {
	uri := os.Getenv("PDFTABLES_TEST_MONGO")
	if uri == "" {
		t.Skip("PDFTABLES_TEST_MONGO not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := New(ctx, uri, "pdftables_test", "tables")
	require.NoError(t, err)
	defer s.Close(ctx)

	n, err := s.SaveTables(ctx, "report.pdf", []pdftables.Table{{Rows: [][]string{{"a"}}, PageNumber: 1, TotalPages: 1, TableIndex: 1, TotalTables: 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.SaveTables(ctx, "empty.pdf", nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
