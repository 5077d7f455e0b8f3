/*
Package vcd reads Value Change Dump (VCD) waveform files and rebuilds, per
signal, the ordered history of value changes over simulated time.

The parser is a single-pass, line-oriented state machine. It walks the
definitions section to learn which symbol stands for which signal (name, bit
width, variable kind), then decodes the value-change section into two views of
the same event stream: each Signal's chronological history, and a Timeline
indexed by simulation time. Both views preserve file order.

Only the subset of the VCD grammar needed for flat waveform extraction is
consumed: $var declarations, $enddefinitions, timestamps, and scalar/vector
binary value changes. Scopes, timescale directives and real/string values are
inert. Malformed lines are skipped rather than failing the parse; only an I/O
failure on the input stream is fatal.

The analysis and render subpackages are read-only consumers of the parsed
model.

*/
package vcd
