// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package render draws parsed waveforms as step traces in a terminal.
//
// Single-bit signals render as a two-level step line, multi-bit signals as
// a stepped numeric trace with decoded values at each change. All traces
// share one time axis so edges line up across signals.
//
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/tdelacour/vcd"
)

// defaultColumns is the trace width used when Options.Columns is zero.
const defaultColumns = 72

// Options control waveform rendering.
//
type Options struct {
	// MaxTime cuts the traces off at the given simulation time. Zero means
	// render the full recorded span.
	MaxTime uint64
	// Columns is the trace width in terminal cells.
	Columns int
	// NoColor disables styling.
	NoColor bool
}

// Waveform renders the named signals from d as stacked step traces.
//
// A requested name missing from the registry is reported inline and does
// not prevent the remaining signals from rendering. An error is returned
// only when no names are given at all.
//
func Waveform(d *vcd.Dump, names []string, opt Options) (string, error) {
	if len(names) == 0 {
		return "", errors.New("no signals selected")
	}
	cols := opt.Columns
	if cols <= 0 {
		cols = defaultColumns
	}

	var sigs []*vcd.Signal
	missing := make(map[string]bool)
	for _, name := range names {
		s, ok := d.Registry.Lookup(name)
		if !ok {
			missing[name] = true
			continue
		}
		sigs = append(sigs, s)
	}
	end := span(sigs, opt.MaxTime)

	var b strings.Builder
	for _, name := range names {
		if missing[name] {
			b.WriteString(render(styles.Missing, "signal "+name+" not found", opt.NoColor))
			b.WriteByte('\n')
		}
	}
	for _, s := range sigs {
		label := s.Name + " (" + strconv.Itoa(s.Width) + " bit)"
		b.WriteString(render(styles.Label, label, opt.NoColor))
		b.WriteByte('\n')
		if s.Width == 1 {
			b.WriteString(render(styles.Scalar, scalarTrace(s, end, cols), opt.NoColor))
		} else {
			b.WriteString(render(styles.Vector, vectorTrace(s, end, cols), opt.NoColor))
		}
		b.WriteByte('\n')
	}
	if len(sigs) > 0 {
		b.WriteString(render(styles.Axis, axis(end, cols), opt.NoColor))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// span returns the time covered by the traces: the cutoff when set, else
// the latest recorded change among the selected signals.
//
func span(sigs []*vcd.Signal, maxTime uint64) uint64 {
	if maxTime > 0 {
		return maxTime
	}
	var end uint64
	for _, s := range sigs {
		if n := len(s.History); n > 0 && s.History[n-1].Time > end {
			end = s.History[n-1].Time
		}
	}
	if end == 0 {
		end = 1
	}
	return end
}

// sampleAt returns the index in h of the change in effect at time t, or -1
// before the first change.
//
func sampleAt(h []vcd.Change, t uint64) int {
	idx := -1
	for i, c := range h {
		if c.Time > t {
			break
		}
		idx = i
	}
	return idx
}

// colTime maps a column to its sample time on the [0, end] axis.
//
func colTime(c, cols int, end uint64) uint64 {
	if cols <= 1 {
		return 0
	}
	return end * uint64(c) / uint64(cols-1)
}

// scalarTrace draws a two-level step line: low runs as ▁, high runs as ▔,
// a │ at each edge. Unknown and high-impedance samples draw low. Columns
// before the first change stay blank.
//
func scalarTrace(s *vcd.Signal, end uint64, cols int) string {
	row := make([]rune, 0, cols)
	prev := -1
	for c := 0; c < cols; c++ {
		idx := sampleAt(s.History, colTime(c, cols, end))
		switch {
		case idx < 0:
			row = append(row, ' ')
		case prev >= 0 && s.History[idx].Value.Level() != s.History[prev].Value.Level():
			row = append(row, '│')
		case s.History[idx].Value.Level():
			row = append(row, '▔')
		default:
			row = append(row, '▁')
		}
		if idx >= 0 {
			prev = idx
		}
	}
	return string(row)
}

// vectorTrace draws a numeric step trace: ═ fill, a ╳ mark at each change
// followed by the value decoded as an unsigned binary integer. Values that
// do not decode (x, z) draw as 0.
//
func vectorTrace(s *vcd.Signal, end uint64, cols int) string {
	row := make([]rune, 0, cols)
	var pending []rune
	prev := -1
	for c := 0; c < cols; c++ {
		idx := sampleAt(s.History, colTime(c, cols, end))
		if idx != prev && idx >= 0 {
			n, err := s.History[idx].Value.Uint()
			if err != nil {
				n = 0
			}
			pending = []rune("╳" + strconv.FormatUint(n, 10))
			prev = idx
		}
		switch {
		case len(pending) > 0:
			row = append(row, pending[0])
			pending = pending[1:]
		case idx < 0:
			row = append(row, ' ')
		default:
			row = append(row, '═')
		}
	}
	return string(row)
}

// axis draws the shared time scale under the traces.
//
func axis(end uint64, cols int) string {
	left := "0"
	right := strconv.FormatUint(end, 10) + " ps"
	pad := cols - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat("─", pad) + right
}

func render(st lipgloss.Style, s string, noColor bool) string {
	if noColor {
		return s
	}
	return st.Render(s)
}
