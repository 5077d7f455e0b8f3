// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command vcd inspects, analyzes and plots VCD waveform dumps.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tdelacour/vcd"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:          "vcd",
		Short:        "Inspect, analyze and plot VCD waveform dumps",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parse progress")
	root.AddCommand(newSignalsCmd(), newAnalyzeCmd(), newPlotCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseDump parses the input file, wiring up progress logging when
// --verbose is set.
func parseDump(path string) (*vcd.Dump, error) {
	p := &vcd.Parser{}
	if verbose {
		p.Observer = progressObserver{}
	}
	return p.ParseFile(path)
}
