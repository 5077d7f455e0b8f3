// Package scan classifies trimmed VCD lines and extracts their fields.
// It knows nothing about parser phases; the vcd package drives it.
package scan

import (
	"strconv"
	"strings"
)

// Kind classifies a trimmed VCD line.
type Kind uint8

// Line kinds.
const (
	Blank Kind = iota
	Var            // $var declaration
	EndDefinitions // $enddefinitions marker
	Directive      // any other $-directive; inert
	Timestamp      // #<time>
	Scalar         // single-bit change, value and symbol concatenated
	Vector         // b-prefixed binary change, symbol after whitespace
	Other          // unrecognized; inert
)

// Classify returns the kind of a trimmed line. It only looks at the line
// head; field-level validation is left to the Parse/Split functions.
//
func Classify(line string) Kind {
	switch {
	case line == "":
		return Blank
	case strings.HasPrefix(line, "$var"):
		return Var
	case strings.HasPrefix(line, "$enddefinitions"):
		return EndDefinitions
	case line[0] == '$':
		return Directive
	case line[0] == '#':
		return Timestamp
	case line[0] == 'b':
		return Vector
	case len(line) >= 2 && IsScalarValue(line[0]):
		return Scalar
	}
	return Other
}

// IsScalarValue reports whether b is a legal single-bit value character.
//
func IsScalarValue(b byte) bool {
	switch b {
	case '0', '1', 'x', 'X', 'z', 'Z':
		return true
	}
	return false
}

// A VarDecl is the payload of a $var line.
//
type VarDecl struct {
	Kind   string // variable classification, e.g. "wire" or "reg"
	Width  int    // bit count
	Symbol string // identifier token
	Name   string // declared signal name
}

// ParseVar extracts a declaration from a $var line:
//
//	$var wire 8 # m_data $end
//
// It reports false when the line has fewer than five fields or the width
// field is not a positive integer. Trailing fields ($end, array indices)
// are ignored.
//
func ParseVar(line string) (VarDecl, bool) {
	f := strings.Fields(line)
	if len(f) < 5 {
		return VarDecl{}, false
	}
	w, err := strconv.Atoi(f[2])
	if err != nil || w <= 0 {
		return VarDecl{}, false
	}
	return VarDecl{Kind: f[1], Width: w, Symbol: f[3], Name: f[4]}, true
}

// ParseTimestamp extracts the simulation time from a #-line.
//
func ParseTimestamp(line string) (uint64, bool) {
	t, err := strconv.ParseUint(line[1:], 10, 64)
	if err != nil {
		return 0, false
	}
	return t, true
}

// SplitScalar splits a scalar change line into its value character and
// symbol. The symbol is the remainder of the line, with no separator:
//
//	1!   ->  '1', "!"
//	x"b  ->  'x', "\"b"
//
func SplitScalar(line string) (value byte, symbol string, ok bool) {
	if len(line) < 2 || !IsScalarValue(line[0]) {
		return 0, "", false
	}
	return line[0], line[1:], true
}

// SplitVector splits a vector change line into its binary digit string
// (marker stripped) and symbol:
//
//	b00001010 #  ->  "00001010", "#"
//
// A line with no symbol token reports false.
//
func SplitVector(line string) (value, symbol string, ok bool) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return "", "", false
	}
	return f[0][1:], f[1], true
}
