// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"

	pdftables "github.com/sassoftware/viya-pdf-tables"
	"github.com/sassoftware/viya-pdf-tables/layout"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <pdf>",
	Short: "Write the decoded page layout of a PDF as YAML",
	Long: "Write the decoded page layout of a PDF as YAML. The output can be edited and\n" +
		"read back with --layout, which helps to tune thresholds on a difficult page.",
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringP("output", "o", "", "output file (default standard output)")
}

func runDump(cmd *cobra.Command, args []string) (err error) {
	ctx := cmd.Context()
	dec, err := newDecoder()
	if err != nil {
		return err
	}
	if d, ok := dec.(pdftables.DebugSetter); ok {
		d.SetDebug(viper.GetBool(flagDebug))
	}
	doc, err := dec.Open(ctx, args[0], viper.GetString(flagPassword))
	if err != nil {
		return err
	}
	defer doc.Close()

	pages := make([]*pdftables.Element, 0, doc.NumPages())
	for num := 1; num <= doc.NumPages(); num++ {
		page, err := doc.Page(ctx, num)
		if err != nil {
			return err
		}
		e, ok := page.(*pdftables.Element)
		if !ok {
			return fmt.Errorf("page %d: unexpected node type %T", num, page)
		}
		pages = append(pages, e)
	}

	out := cmd.OutOrStdout()
	if name, _ := cmd.Flags().GetString("output"); name != "" {
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = f
	}
	return layout.Dump(out, pages)
}
