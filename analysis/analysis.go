// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package analysis derives per-signal statistics from a parsed dump.
//
package analysis

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tdelacour/vcd"
)

// ErrNotFound is returned (wrapped) when the requested signal name is not
// in the registry. Batch callers should report it and move on.
var ErrNotFound = errors.New("signal not found")

// leadingChanges is how many history entries a Report carries for display.
const leadingChanges = 10

// A ClockEstimate is a period/frequency estimate for a clock-like signal,
// computed from the first two high entries in its history.
//
type ClockEstimate struct {
	Period       uint64  // simulation time units, implicitly picoseconds
	FrequencyMHz float64 // 1e6 / Period
}

// A Report summarizes one signal's recorded behavior.
//
type Report struct {
	Name        string
	Kind        string
	Width       int
	Transitions int            // total recorded changes
	Leading     []vcd.Change   // first changes, at most leadingChanges
	Clock       *ClockEstimate // nil unless the signal looks like a clock
}

// Analyze builds a Report for the named signal. The cause of the returned
// error is ErrNotFound when the name is absent from the registry.
//
func Analyze(d *vcd.Dump, name string) (*Report, error) {
	s, ok := d.Registry.Lookup(name)
	if !ok {
		return nil, errors.Wrap(ErrNotFound, name)
	}
	r := &Report{
		Name:        s.Name,
		Kind:        s.Kind,
		Width:       s.Width,
		Transitions: len(s.History),
		Clock:       clockEstimate(s),
	}
	n := len(s.History)
	if n > leadingChanges {
		n = leadingChanges
	}
	r.Leading = append([]vcd.Change(nil), s.History[:n]...)
	return r, nil
}

// clockEstimate returns a period estimate for signals whose name contains
// "clk" (case-insensitive) and whose history holds at least two '1'
// entries. The period is the gap between the first two; a zero gap (both
// in the same time bucket) yields no estimate.
//
func clockEstimate(s *vcd.Signal) *ClockEstimate {
	if !strings.Contains(strings.ToLower(s.Name), "clk") {
		return nil
	}
	var rises []uint64
	for _, c := range s.History {
		if c.Value.Level() {
			rises = append(rises, c.Time)
			if len(rises) == 2 {
				break
			}
		}
	}
	if len(rises) < 2 || rises[1] == rises[0] {
		return nil
	}
	period := rises[1] - rises[0]
	return &ClockEstimate{Period: period, FrequencyMHz: 1e6 / float64(period)}
}
