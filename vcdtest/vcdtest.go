// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vcdtest provides utility functions for building VCD sources in
// tests.
//
package vcdtest

import (
	"io"
	"strconv"
	"strings"
)

// A Builder assembles a VCD source line by line. Methods return the
// receiver so declarations and changes chain fluently:
//
//	src := vcdtest.New().
//		Var("wire", 1, "!", "clk").
//		EndDefinitions().
//		At(0).Scalar("!", '1').
//		At(5).Scalar("!", '0').
//		String()
//
type Builder struct {
	b strings.Builder
}

// New returns an empty Builder.
//
func New() *Builder {
	return &Builder{}
}

// Var appends a $var declaration line.
//
func (b *Builder) Var(kind string, width int, symbol, name string) *Builder {
	return b.Raw("$var " + kind + " " + strconv.Itoa(width) + " " + symbol + " " + name + " $end")
}

// EndDefinitions appends the end-of-definitions marker.
//
func (b *Builder) EndDefinitions() *Builder {
	return b.Raw("$enddefinitions $end")
}

// At appends a timestamp line.
//
func (b *Builder) At(t uint64) *Builder {
	return b.Raw("#" + strconv.FormatUint(t, 10))
}

// Scalar appends a single-bit change line, value and symbol concatenated.
//
func (b *Builder) Scalar(symbol string, value byte) *Builder {
	return b.Raw(string(value) + symbol)
}

// Vector appends a b-prefixed vector change line.
//
func (b *Builder) Vector(symbol, bits string) *Builder {
	return b.Raw("b" + bits + " " + symbol)
}

// Raw appends an arbitrary line verbatim. Useful for malformed input.
//
func (b *Builder) Raw(line string) *Builder {
	b.b.WriteString(line)
	b.b.WriteByte('\n')
	return b
}

// String returns the accumulated VCD text.
//
func (b *Builder) String() string {
	return b.b.String()
}

// Reader returns a reader over the accumulated VCD text.
//
func (b *Builder) Reader() io.Reader {
	return strings.NewReader(b.b.String())
}
