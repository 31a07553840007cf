// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdftables

import (
	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/viya-pdf-tables/logger"
)

type ParsingMode string

const (
	Strict     ParsingMode = "strict"
	BestEffort ParsingMode = "best-effort"
)

// Thresholds are the empirically tuned constants of table detection.
type Thresholds struct {
	// A page is a table candidate when more than TableRowCount top edges are
	// each shared by more than TableColumnCount text lines.
	TableRowCount    int `mapstructure:"table_row_count" validate:"min=0"`
	TableColumnCount int `mapstructure:"table_column_count" validate:"min=0"`

	ColumnComb         int `mapstructure:"column_comb" validate:"min=0"`
	RowComb            int `mapstructure:"row_comb" validate:"min=0"`
	RowCutTolerance    int `mapstructure:"row_cut_tolerance" validate:"min=0"`
	ColumnCutTolerance int `mapstructure:"column_cut_tolerance" validate:"min=0"`

	// Rounding applied to edge histograms by FindTableBounds and ContainsTable.
	// They are tuned separately.
	BoundsRounding   float64 `mapstructure:"bounds_rounding" validate:"gt=0"`
	PrecheckRounding float64 `mapstructure:"precheck_rounding" validate:"gt=0"`
}

// DefaultThresholds returns the values tuned on text-line layouts.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TableRowCount:      3,
		TableColumnCount:   3,
		ColumnComb:         5,
		RowComb:            3,
		RowCutTolerance:    1,
		ColumnCutTolerance: 3,
		BoundsRounding:     2,
		PrecheckRounding:   1,
	}
}

type Config struct {
	MaxConcurrentDocs int         `validate:"min=1,max=10"`
	ParsingMode       ParsingMode `validate:"oneof=strict best-effort"`
	Atomise           bool
	ExtendY           bool
	Normalize         bool
	Hints             Hints
	Thresholds        Thresholds
	Password          string
	DebugOn           bool
	Logger            logger.LogFunc
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentDocs: 4,
		ParsingMode:       BestEffort,
		Atomise:           true,
		ExtendY:           true,
		Normalize:         true,
		Thresholds:        DefaultThresholds(),
		DebugOn:           false,
	}
}

func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}

// PageOptions returns the per-page analysis options described by cfg.
func (cfg *Config) PageOptions() Options {
	return Options{
		Atomise:    cfg.Atomise,
		ExtendY:    cfg.ExtendY,
		Normalize:  cfg.Normalize,
		Hints:      cfg.Hints,
		Thresholds: cfg.Thresholds,
	}
}
