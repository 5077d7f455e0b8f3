// Copyright 2026 Thomas Delacour <tdelacour.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package vcd

// A Change is one entry in a signal's history: the value the signal took at
// a given simulation time. Times are unit-less; the unit is whatever the
// source file's timescale implies.
//
type Change struct {
	Time  uint64
	Value Value
}

// A Signal is a declared VCD variable together with its accumulated value
// changes. History is append-only, non-decreasing in time, and preserves
// file order for changes sharing a timestamp.
//
type Signal struct {
	Symbol  string // identifier token used in the value-change section
	Name    string // declared name; not necessarily unique across symbols
	Width   int    // bit count, >= 1
	Kind    string // variable classification as found in the source, e.g. "wire"
	History []Change
}

// An Event pairs a symbol with the value it changed to at some instant.
//
type Event struct {
	Symbol string
	Value  Value
}

// A Timeline maps a simulation time to the changes recorded at that
// instant, in file order. It is the cross-signal view of the same event
// stream that each Signal's History records per signal.
//
type Timeline map[uint64][]Event

// A Registry maps VCD symbols to their declared signals. It keeps
// declaration order so that name lookups are deterministic when several
// symbols share a name.
//
type Registry struct {
	signals map[string]*Signal
	order   []string
}

// NewRegistry returns an empty Registry.
//
func NewRegistry() *Registry {
	return &Registry{signals: make(map[string]*Signal)}
}

// Declare establishes the signal record for a symbol. A re-declaration
// wins: metadata is replaced and the history is reset to empty, but the
// symbol keeps its original declaration-order slot.
//
func (r *Registry) Declare(symbol, name string, width int, kind string) *Signal {
	s, ok := r.signals[symbol]
	if !ok {
		s = &Signal{Symbol: symbol}
		r.signals[symbol] = s
		r.order = append(r.order, symbol)
	}
	s.Name = name
	s.Width = width
	s.Kind = kind
	s.History = nil
	return s
}

// Record appends a change to the named symbol's history. Changes for
// undeclared symbols are dropped; Record reports whether the change was
// kept.
//
func (r *Registry) Record(symbol string, t uint64, v Value) bool {
	s, ok := r.signals[symbol]
	if !ok {
		return false
	}
	s.History = append(s.History, Change{Time: t, Value: v})
	return true
}

// Get returns the signal declared under the given symbol.
//
func (r *Registry) Get(symbol string) (*Signal, bool) {
	s, ok := r.signals[symbol]
	return s, ok
}

// Lookup returns the first signal, in declaration order, declared with the
// given name.
//
func (r *Registry) Lookup(name string) (*Signal, bool) {
	for _, sym := range r.order {
		if s := r.signals[sym]; s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Signals returns all declared signals in declaration order.
//
func (r *Registry) Signals() []*Signal {
	out := make([]*Signal, len(r.order))
	for i, sym := range r.order {
		out[i] = r.signals[sym]
	}
	return out
}

// Len returns the number of declared signals.
//
func (r *Registry) Len() int { return len(r.order) }

// A Dump is the immutable result of a parse: the signal registry and the
// time-indexed view of all changes. It is safe to share between read-only
// consumers without synchronization.
//
type Dump struct {
	Registry *Registry
	Timeline Timeline
}

// record writes one decoded change into both views. Orphan changes
// (undeclared symbol) touch neither.
//
func (d *Dump) record(symbol string, t uint64, v Value) bool {
	if !d.Registry.Record(symbol, t, v) {
		return false
	}
	d.Timeline[t] = append(d.Timeline[t], Event{Symbol: symbol, Value: v})
	return true
}
