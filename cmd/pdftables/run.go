// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar"
	pdftables "github.com/sassoftware/viya-pdf-tables"
	"github.com/sassoftware/viya-pdf-tables/layout"
	"github.com/sassoftware/viya-pdf-tables/plot"
	"github.com/sassoftware/viya-pdf-tables/store"
	"github.com/sassoftware/viya-pdf-tables/tracer"
	"github.com/sassoftware/viya-pdf-tables/unidoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func runTables(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	paths, err := expand(args)
	if err != nil {
		return err
	}
	cfg, err := configFromViper()
	if err != nil {
		return err
	}
	dec, err := newDecoder()
	if err != nil {
		return err
	}

	var st *store.Store
	if url := viper.GetString(flagMongoURL); url != "" {
		if st, err = store.New(ctx, url, viper.GetString(flagMongoDB), ""); err != nil {
			return err
		}
		defer func() {
			if err := st.Close(context.Background()); err != nil {
				zap.L().Warn("closing mongo client", zap.Error(err))
			}
		}()
	}

	proc := pdftables.NewProcessor(cfg, dec)
	results, runErr := proc.ExtractFiles(ctx, paths)

	out := cmd.OutOrStdout()
	n := 0
	for _, r := range results {
		if r.Err != nil {
			zap.L().Error("extraction failed", zap.String("path", r.Path), zap.Error(r.Err))
			if viper.GetBool(flagTrace) {
				if err := tracer.Flush(cmd.ErrOrStderr()); err != nil {
					zap.L().Warn("writing trace", zap.Error(err))
				}
			}
			continue
		}
		n = printTables(out, r.Tables, n, displayWidth())

		if st != nil {
			if _, err := st.SaveTables(ctx, r.Path, r.Tables); err != nil {
				return err
			}
		}
		if dir := viper.GetString(flagPlotDir); dir != "" {
			if err := plotDocument(ctx, dec, cfg, r.Path, dir); err != nil {
				zap.L().Warn("plotting projections", zap.String("path", r.Path), zap.Error(err))
			}
		}
	}
	return runErr
}

// displayWidth returns the cell measure for --display, or nil for plain
// tab-separated output.
func displayWidth() pdftables.WidthFunc {
	switch {
	case !viper.GetBool(flagDisplay):
		return nil
	case viper.GetBool(flagByteWidth):
		return pdftables.ByteWidth
	default:
		return pdftables.TerminalWidth
	}
}

// printTables writes tables to w numbering them from n+1 and returns the last
// number used. Tables are rendered as grids when width is not nil.
func printTables(w io.Writer, tables []pdftables.Table, n int, width pdftables.WidthFunc) int {
	for _, t := range tables {
		n++
		fmt.Fprintf(w, "TABLE %d:\n", n)
		if width != nil {
			fmt.Fprint(w, pdftables.Render(t.Rows, width))
			continue
		}
		for _, row := range t.Rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
	}
	return n
}

func configFromViper() (*pdftables.Config, error) {
	cfg := pdftables.NewDefaultConfig()
	cfg.Password = viper.GetString(flagPassword)
	cfg.Atomise = viper.GetBool(flagAtomise)
	cfg.ExtendY = viper.GetBool(flagExtendY)
	cfg.Normalize = viper.GetBool(flagNormalize)
	cfg.Hints = pdftables.Hints{
		Top:    viper.GetString(flagHintTop),
		Bottom: viper.GetString(flagHintBottom),
	}
	cfg.ParsingMode = pdftables.ParsingMode(viper.GetString(flagMode))
	cfg.MaxConcurrentDocs = viper.GetInt(flagMaxDocs)
	cfg.DebugOn = viper.GetBool(flagDebug)
	if err := viper.UnmarshalKey("thresholds", &cfg.Thresholds); err != nil {
		return nil, fmt.Errorf("thresholds: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func layoutParams() (layout.Params, error) {
	p := layout.DefaultParams()
	if err := viper.UnmarshalKey("layout_params", &p); err != nil {
		return p, fmt.Errorf("layout_params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid layout_params: %w", err)
	}
	return p, nil
}

func newDecoder() (pdftables.Decoder, error) {
	p, err := layoutParams()
	if err != nil {
		return nil, err
	}
	if viper.GetBool(flagLayout) {
		return &layout.Decoder{Params: p}, nil
	}
	if key := viper.GetString(flagLicense); key != "" {
		if err := unidoc.SetLicense(key, viper.GetString(flagCustomer)); err != nil {
			return nil, err
		}
	}
	return &unidoc.Decoder{Params: &p}, nil
}

// expand resolves each argument as a doublestar pattern. An argument matching
// nothing is kept, so that opening it reports the problem.
func expand(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, arg := range args {
		matches, err := doublestar.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

// plotDocument charts the projections of every table candidate page of path.
func plotDocument(ctx context.Context, dec pdftables.Decoder, cfg *pdftables.Config, path, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	doc, err := dec.Open(ctx, path, cfg.Password)
	if err != nil {
		return err
	}
	defer doc.Close()

	opts := cfg.PageOptions()
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for num := 1; num <= doc.NumPages(); num++ {
		page, err := doc.Page(ctx, num)
		if err != nil {
			return err
		}
		if !pdftables.ContainsTable(page, opts.Thresholds) {
			continue
		}
		a, err := pdftables.AnalysePage(page, opts)
		if err != nil || a.RowProjection == nil {
			continue
		}
		name := fmt.Sprintf("%s-p%d", base, num)
		if err := writePlots(a, name, dir); err != nil {
			return err
		}
	}
	return nil
}

func writePlots(a *pdftables.Analysis, name, dir string) (err error) {
	rows, err := os.Create(filepath.Join(dir, name+"-rows.png"))
	if err != nil {
		return err
	}
	defer closeFile(rows, &err)
	columns, err := os.Create(filepath.Join(dir, name+"-columns.png"))
	if err != nil {
		return err
	}
	defer closeFile(columns, &err)
	return plot.WriteAnalysis(rows, columns, name, a)
}

func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
