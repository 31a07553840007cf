// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"context"
	"errors"
	"fmt"

	"github.com/sassoftware/viya-pdf-tables/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Decoder opens documents and decodes their pages into layout trees.
type Decoder interface {
	Open(ctx context.Context, path, password string) (Document, error)
}

// Document is an open document. Pages are decoded one at a time; a Document is
// not safe for concurrent use.
type Document interface {
	NumPages() int
	// Page decodes page num, counting from 1.
	Page(ctx context.Context, num int) (Node, error)
	Close() error
}

// DebugSetter is implemented by decoders that can report their own
// diagnostics. NewProcessor hands them Config.DebugOn.
type DebugSetter interface {
	SetDebug(on bool)
}

// Extractor defines the contract for extracting tables from a document file.
type Extractor interface {
	GetTables(ctx context.Context, path string) ([]Table, error)
}

// PageStrategy defines how the tables of a single page are extracted.
// Different strategies handle errors differently (strict vs. best-effort).
type PageStrategy interface {
	ExtractPage(ctx context.Context, doc Document, num int, opts Options) ([][]string, error)
}

var (
	// errNotCandidate marks a page rejected by ContainsTable.
	errNotCandidate = errors.New("page is not a table candidate")
	// errSkipPage marks a page dropped by the best-effort strategy.
	errSkipPage = errors.New("page skipped")
)

// StrictStrategy enforces strict parsing.
// If any page fails, the entire extraction fails.
type StrictStrategy struct{}

func (s *StrictStrategy) ExtractPage(ctx context.Context, doc Document, num int, opts Options) ([][]string, error) {
	return extractPage(ctx, doc, num, opts)
}

// BestEffortStrategy tolerates errors.
// If a page fails, it simply skips that page.
type BestEffortStrategy struct{}

func (b *BestEffortStrategy) ExtractPage(ctx context.Context, doc Document, num int, opts Options) ([][]string, error) {
	rows, err := extractPage(ctx, doc, num, opts)
	if err != nil && !errors.Is(err, errNotCandidate) {
		logger.Debug("BestEffortStrategy: failed to extract page table, skipping page", "page", num, "err", err, true)
		return nil, errSkipPage
	}
	return rows, err
}

// extractPage decodes page num and returns its cropped table. A page that passes
// the pre-check but shows no table yields an empty table.
func extractPage(ctx context.Context, doc Document, num int, opts Options) ([][]string, error) {
	page, err := doc.Page(ctx, num)
	if err != nil {
		return nil, fmt.Errorf("decode page %d: %w", num, err)
	}
	if !ContainsTable(page, opts.Thresholds) {
		return nil, errNotCandidate
	}
	rows, err := PageToTable(page, opts)
	if IsTableless(err) {
		logger.Debug(fmt.Sprintf("page %d treated as tableless: %v", num, err), true)
		return [][]string{}, nil
	}
	return rows, err
}

// Processor manages table extraction with concurrency control across documents
// and delegates page-level work to the chosen PageStrategy.
type Processor struct {
	cfg      *Config
	sem      *semaphore.Weighted
	strategy PageStrategy
	decoder  Decoder
}

// NewProcessor validates the config and creates a new Processor reading documents
// with dec. Selects the correct PageStrategy (Strict or BestEffort).
// It panics when cfg is invalid.
func NewProcessor(cfg *Config, dec Decoder) *Processor {
	//Select PageStrategy
	var strategy PageStrategy
	switch cfg.ParsingMode {
	case Strict:
		strategy = &StrictStrategy{}
	case BestEffort:
		strategy = &BestEffortStrategy{}
	}

	//Validate the config object
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	//Set the logger function
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}

	if d, ok := dec.(DebugSetter); ok {
		d.SetDebug(cfg.DebugOn)
	}

	logger.Debug(fmt.Sprintf("Processor initialized: parsing_mode=%v, max_concurrent_docs=%d, atomise=%v, extend_y=%v, debug=%v",
		cfg.ParsingMode, cfg.MaxConcurrentDocs, cfg.Atomise, cfg.ExtendY, cfg.DebugOn), true)

	return &Processor{
		cfg:      cfg,
		sem:      semaphore.NewWeighted(int64(cfg.MaxConcurrentDocs)),
		strategy: strategy,
		decoder:  dec,
	}
}

// GetTables returns the tables of the document at path, at most one per page, in
// page order. Pages are decoded and analysed one after the other.
func (p *Processor) GetTables(ctx context.Context, path string) ([]Table, error) {
	logger.Debug(fmt.Sprintf("Starting extraction: path=%s", path), true)

	if err := p.acquireSlot(ctx); err != nil {
		logger.Debug(fmt.Sprintf("Failed to acquire slot: err=%v", err), true)
		return nil, err
	}
	defer p.sem.Release(1)

	doc, err := p.decoder.Open(ctx, path, p.cfg.Password)
	if err != nil {
		logger.Debug(fmt.Sprintf("Failed to open document: path=%s err=%v", path, err), true)
		return nil, err
	}
	defer func() {
		if err := doc.Close(); err != nil {
			logger.Error("failed to close document", "path", path, "err", err)
		}
	}()

	total := doc.NumPages()
	logger.Debug(fmt.Sprintf("Total pages detected: path=%s pages=%d", path, total), true)

	opts := p.cfg.PageOptions()
	var tables []Table
	for num := 1; num <= total; num++ {
		if err := ctx.Err(); err != nil {
			logger.Debug("Context cancelled between pages", true)
			return nil, err
		}

		rows, err := p.strategy.ExtractPage(ctx, doc, num, opts)
		switch {
		case errors.Is(err, errNotCandidate):
			logger.Debug(fmt.Sprintf("Page is not a table candidate: page=%d", num))
			continue
		case errors.Is(err, errSkipPage):
			continue
		case err != nil:
			logger.Debug(fmt.Sprintf("Strict mode error, stopping extraction: page=%d err=%v", num, err), true)
			return nil, fmt.Errorf("strict mode failed on page %d: %w", num, err)
		}

		tables = append(tables, Table{
			Rows:        rows,
			PageNumber:  num,
			TotalPages:  total,
			TableIndex:  1,
			TotalTables: 1,
		})
		logger.Debug(fmt.Sprintf("Table extracted: page=%d rows=%d", num, len(rows)), true)
	}

	logger.Debug(fmt.Sprintf("Extraction completed: path=%s tables=%d", path, len(tables)), true)
	return tables, nil
}

var _ Extractor = (*Processor)(nil)

// DocumentTables holds the outcome of extracting one document.
type DocumentTables struct {
	Path   string
	Tables []Table
	Err    error
}

// ExtractFiles extracts the tables of several documents, at most
// Config.MaxConcurrentDocs at a time. Results keep the order of paths. In
// strict mode the first failing document cancels the others and its error is
// returned; in best-effort mode failures are only recorded in the results.
func (p *Processor) ExtractFiles(ctx context.Context, paths []string) ([]DocumentTables, error) {
	results := make([]DocumentTables, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			tables, err := p.GetTables(ctx, path)
			results[i] = DocumentTables{Path: path, Tables: tables, Err: err}
			if err != nil {
				logger.Error("document extraction failed", "path", path, "err", err)
				if p.cfg.ParsingMode == Strict {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			return nil
		})
	}
	err := g.Wait()
	return results, err
}

func (p *Processor) acquireSlot(ctx context.Context) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire slot: %w", err)
	}
	logger.Debug("Slot acquired successfully", true)
	return nil
}
