// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tdelacour/vcd/analysis"
)

func newAnalyzeCmd() *cobra.Command {
	var names []string
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Report transition statistics for selected signals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(names) == 0 {
				return errors.New("at least one --signal is required")
			}
			d, err := parseDump(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				rep, err := analysis.Analyze(d, name)
				if err != nil {
					// A missing signal is reported, not fatal; keep going
					// with the rest of the batch.
					if errors.Cause(err) == analysis.ErrNotFound {
						fmt.Fprintf(out, "signal %s: not found\n", name)
						continue
					}
					return err
				}
				printReport(out, rep)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&names, "signal", nil, "signal name to analyze (repeatable)")
	return cmd
}

func printReport(w io.Writer, r *analysis.Report) {
	fmt.Fprintf(w, "=== %s ===\n", r.Name)
	fmt.Fprintf(w, "kind: %s  width: %d bit  transitions: %d\n", r.Kind, r.Width, r.Transitions)
	for _, c := range r.Leading {
		fmt.Fprintf(w, "  %8d ps: %s\n", c.Time, c.Value)
	}
	if r.Clock != nil {
		fmt.Fprintf(w, "clock period: %d ps (%.2f MHz)\n", r.Clock.Period, r.Clock.FrequencyMHz)
	}
}
