// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package render

import "github.com/charmbracelet/lipgloss"

// Waveform color palette.
var (
	ColorScalar  = lipgloss.Color("#2ECC71") // green scalar traces
	ColorVector  = lipgloss.Color("#3498DB") // blue vector traces
	ColorLabel   = lipgloss.Color("#ECF0F1") // signal name labels
	ColorAxis    = lipgloss.Color("#7F8C8D") // time axis, muted
	ColorMissing = lipgloss.Color("#E74C3C") // not-found notices
)

// Pre-configured styles for the waveform blocks.
var styles = struct {
	Scalar  lipgloss.Style
	Vector  lipgloss.Style
	Label   lipgloss.Style
	Axis    lipgloss.Style
	Missing lipgloss.Style
}{
	Scalar:  lipgloss.NewStyle().Foreground(ColorScalar),
	Vector:  lipgloss.NewStyle().Foreground(ColorVector),
	Label:   lipgloss.NewStyle().Bold(true).Foreground(ColorLabel),
	Axis:    lipgloss.NewStyle().Foreground(ColorAxis),
	Missing: lipgloss.NewStyle().Foreground(ColorMissing),
}
