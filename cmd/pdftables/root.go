// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"os"
	"strings"

	"github.com/sassoftware/viya-pdf-tables/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagConfig     = "config"
	flagPassword   = "password"
	flagDisplay    = "display"
	flagAtomise    = "atomise"
	flagExtendY    = "extend-y"
	flagNormalize  = "normalize"
	flagByteWidth  = "byte-width"
	flagHintTop    = "hint-top"
	flagHintBottom = "hint-bottom"
	flagMode       = "mode"
	flagMaxDocs    = "max-docs"
	flagLayout     = "layout"
	flagMongoURL   = "mongo-url"
	flagMongoDB    = "mongo-db"
	flagPlotDir    = "plot-dir"
	flagTrace      = "trace"
	flagDebug      = "debug"
	flagLicense    = "unipdf-license"
	flagCustomer   = "unipdf-customer"
)

var rootCmd = &cobra.Command{
	Use:          "pdftables [flags] <file patterns...>",
	Short:        "Extract tables from PDF pages by the position of their text",
	Args:         cobra.MinimumNArgs(1),
	RunE:         runTables,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig, setupZap)

	pf := rootCmd.PersistentFlags()
	pf.String(flagConfig, "", "config file (default .pdftables.yaml in the working or home directory)")
	pf.StringP(flagPassword, "p", "", "password of encrypted PDFs")
	pf.Bool(flagLayout, false, "read YAML or JSON layout dumps instead of PDFs")
	pf.Bool(flagDebug, false, "debug logging")
	pf.String(flagLicense, "", "UniPDF license key")
	pf.String(flagCustomer, "", "UniPDF license customer name")

	f := rootCmd.Flags()
	f.BoolP(flagDisplay, "d", false, "render each table as a text grid")
	f.Bool(flagAtomise, true, "allocate single characters rather than whole text lines")
	f.Bool(flagExtendY, true, "extend the row comb to the full page height")
	f.Bool(flagNormalize, true, "put cell text in Unicode normalization form C")
	f.Bool(flagByteWidth, false, "measure cells in bytes when rendering with --display")
	f.String(flagHintTop, "", "text marking the first row of the table")
	f.String(flagHintBottom, "", "text marking the last row of the table")
	f.String(flagMode, "best-effort", "page failure handling: strict or best-effort")
	f.Int(flagMaxDocs, 4, "documents processed at once")
	f.String(flagMongoURL, "", "MongoDB URL to save tables to")
	f.String(flagMongoDB, "", "MongoDB database name")
	f.String(flagPlotDir, "", "directory for PNG plots of each page's projections")
	f.Bool(flagTrace, false, "print the extraction trace when a document fails")

	cobra.CheckErr(viper.BindPFlags(pf))
	cobra.CheckErr(viper.BindPFlags(f))

	rootCmd.AddCommand(dumpCmd)
}

func initConfig() {
	if cfgFile := viper.GetString(flagConfig); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pdftables")
	}

	viper.SetEnvPrefix("PDFTABLES")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cobra.CheckErr(err)
		}
	}
}

func setupZap() {
	var (
		l   *zap.Logger
		err error
	)
	if viper.GetBool(flagDebug) {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	cobra.CheckErr(err)
	zap.ReplaceGlobals(l)
	logger.SetLogger(zapLogFunc(l))
}

// zapLogFunc forwards library log records to l.
func zapLogFunc(l *zap.Logger) logger.LogFunc {
	s := l.Sugar()
	return func(level logger.LogLevel, msg string, keyvals ...interface{}) {
		switch level {
		case logger.ErrorLevel:
			s.Errorw(msg, keyvals...)
		case logger.InfoLevel:
			s.Infow(msg, keyvals...)
		default:
			s.Debugw(msg, keyvals...)
		}
	}
}
