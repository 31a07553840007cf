// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package store saves extracted tables to MongoDB, one document per table.
package store

import (
	"context"
	"fmt"
	"time"

	pdftables "github.com/sassoftware/viya-pdf-tables"
	"github.com/sassoftware/viya-pdf-tables/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultDatabase   = "pdftables"
	DefaultCollection = "tables"
)

// Store writes tables to a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// New connects to the server at uri. Empty database and collection names fall
// back to the defaults.
func New(ctx context.Context, uri, database, collection string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if database == "" {
		database = DefaultDatabase
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return &Store{client: client, coll: client.Database(database).Collection(collection)}, nil
}

// SaveTables inserts the tables found in source and returns how many were
// written.
func (s *Store) SaveTables(ctx context.Context, source string, tables []pdftables.Table) (int, error) {
	docs := documents(source, tables, time.Now().UTC())
	if len(docs) == 0 {
		return 0, nil
	}
	res, err := s.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert tables of %s: %w", source, err)
	}
	logger.Debug(fmt.Sprintf("Saved tables: source=%s count=%d", source, len(res.InsertedIDs)), true)
	return len(res.InsertedIDs), nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func documents(source string, tables []pdftables.Table, now time.Time) []interface{} {
	docs := make([]interface{}, 0, len(tables))
	for _, t := range tables {
		columns, n := t.Dimensions()
		docs = append(docs, bson.M{
			"source":       source,
			"page":         t.PageNumber,
			"total_pages":  t.TotalPages,
			"table_index":  t.TableIndex,
			"total_tables": t.TotalTables,
			"columns":      columns,
			"row_count":    n,
			"rows":         t.Rows,
			"extracted_at": now,
		})
	}
	return docs
}
