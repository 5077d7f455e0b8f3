// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vcd

import (
	"strconv"

	"github.com/pkg/errors"
)

// ValueKind discriminates the two value encodings found in a VCD stream.
//
type ValueKind uint8

// Value kinds.
const (
	ScalarValue ValueKind = iota // single bit: one of 0 1 x X z Z
	VectorValue                  // multi bit: binary digit string
)

// A Value is one decoded value-change payload. The raw text is kept verbatim
// (x/z are not normalized, vectors are not zero-extended to the declared
// width); numeric interpretation is deferred to consumers.
//
type Value struct {
	Kind ValueKind
	Raw  string
}

// ScalarOf returns the scalar Value for a single-bit value character.
//
func ScalarOf(c byte) Value {
	return Value{Kind: ScalarValue, Raw: string(c)}
}

// VectorOf returns the vector Value for a binary digit string, marker
// already stripped.
//
func VectorOf(bits string) Value {
	return Value{Kind: VectorValue, Raw: bits}
}

// Level reports whether the value drives the line high. Anything other
// than '1' (0, x, z) counts as low.
//
func (v Value) Level() bool {
	return v.Raw == "1"
}

// Uint decodes the value as an unsigned binary integer. Short vectors are
// implicitly left-zero-extended by the decode. Unknown (x) and
// high-impedance (z) values, and any non-binary token, do not decode.
//
func (v Value) Uint() (uint64, error) {
	n, err := strconv.ParseUint(v.Raw, 2, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "value %q is not binary", v.Raw)
	}
	return n, nil
}

func (v Value) String() string { return v.Raw }
