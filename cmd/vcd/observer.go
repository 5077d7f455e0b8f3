// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"log"

	"github.com/tdelacour/vcd"
)

// progressObserver logs parse progress. The parser itself never prints;
// this is the CLI's end of the observability hook.
type progressObserver struct{}

func (progressObserver) SignalDeclared(s *vcd.Signal) {
	log.Printf("found signal: %s (symbol %q, width %d)", s.Name, s.Symbol, s.Width)
}

func (progressObserver) DefinitionsDone(signals int) {
	log.Printf("definitions done: %d signals, reading value changes", signals)
}

func (progressObserver) Done(signals, times int) {
	log.Printf("parse complete: %d signals, %d time points", signals, times)
}
