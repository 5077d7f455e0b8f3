// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSignalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signals <file>",
		Short: "List the signals declared in a VCD file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDump(args[0])
			if err != nil {
				return err
			}
			for _, s := range d.Registry.Signals() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-24s %3d bit %-6s %6d changes\n",
					s.Symbol, s.Name, s.Width, s.Kind, len(s.History))
			}
			return nil
		},
	}
}
