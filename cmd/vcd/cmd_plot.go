// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tdelacour/vcd/render"
)

func newPlotCmd() *cobra.Command {
	var (
		names      []string
		maxTime    uint64
		columns    int
		noColor    bool
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "plot <file>",
		Short: "Render step waveforms for selected signals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := render.Options{MaxTime: maxTime, Columns: columns, NoColor: noColor}
			if configPath != "" {
				cfg, err := loadPlotConfig(configPath)
				if err != nil {
					return err
				}
				// Flags win over the config file.
				if len(names) == 0 {
					names = cfg.Signals
				}
				if !cmd.Flags().Changed("max-time") {
					opt.MaxTime = cfg.MaxTime
				}
				if !cmd.Flags().Changed("columns") {
					opt.Columns = cfg.Columns
				}
			}
			if len(names) == 0 {
				return errors.New("no signals selected: pass --signal or a --config file")
			}
			d, err := parseDump(args[0])
			if err != nil {
				return err
			}
			out, err := render.Waveform(d, names, opt)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&names, "signal", nil, "signal name to plot (repeatable)")
	cmd.Flags().Uint64Var(&maxTime, "max-time", 0, "cut traces off at this simulation time (0 = all)")
	cmd.Flags().IntVar(&columns, "columns", 0, "trace width in terminal cells")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML plot description")
	return cmd
}
