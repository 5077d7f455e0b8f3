package vcd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tdelacour/vcd/internal/scan"
)

// An Observer receives parser progress notifications. All methods are
// called synchronously from the parse loop; a nil Observer is silent.
// It replaces ad-hoc printing so the core stays decoupled from any output
// channel.
//
type Observer interface {
	// SignalDeclared is called once per accepted $var line.
	SignalDeclared(s *Signal)
	// DefinitionsDone is called on the $enddefinitions transition with the
	// number of signals declared so far.
	DefinitionsDone(signals int)
	// Done is called on successful completion with the number of declared
	// signals and distinct time points.
	Done(signals, times int)
}

// A Parser reads VCD text into a Dump. The zero value is ready to use.
//
type Parser struct {
	// Observer, when non-nil, is notified of parse progress.
	Observer Observer
}

// Parse reads a VCD stream with a default Parser.
//
func Parse(r io.Reader) (*Dump, error) {
	return (&Parser{}).Parse(r)
}

// ParseFile opens and parses the named VCD file. The file is closed before
// ParseFile returns, on success and failure alike.
//
func ParseFile(name string) (*Dump, error) {
	return (&Parser{}).ParseFile(name)
}

// ParseFile opens and parses the named VCD file.
//
func (p *Parser) ParseFile(name string) (*Dump, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open VCD file")
	}
	defer f.Close()
	d, err := p.Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", name)
	}
	return d, nil
}

// Parse reads a VCD stream and returns the populated Dump.
//
// The stream is consumed in a single pass. Declarations are only honored
// before $enddefinitions, timestamps and value changes only after.
// Malformed lines and changes referencing undeclared symbols are skipped;
// only a read failure on r is an error.
//
func (p *Parser) Parse(r io.Reader) (*Dump, error) {
	d := &Dump{
		Registry: NewRegistry(),
		Timeline: make(Timeline),
	}

	var (
		inDefs = true
		now    uint64
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch scan.Classify(line) {
		case scan.Var:
			// Not phase-gated: a late declaration still (re)establishes
			// its record.
			v, ok := scan.ParseVar(line)
			if !ok {
				break
			}
			s := d.Registry.Declare(v.Symbol, v.Name, v.Width, v.Kind)
			if p.Observer != nil {
				p.Observer.SignalDeclared(s)
			}
		case scan.EndDefinitions:
			if !inDefs {
				break
			}
			inDefs = false
			if p.Observer != nil {
				p.Observer.DefinitionsDone(d.Registry.Len())
			}
		case scan.Timestamp:
			if inDefs {
				break
			}
			if t, ok := scan.ParseTimestamp(line); ok {
				now = t
			}
		case scan.Scalar:
			if inDefs {
				break
			}
			if c, sym, ok := scan.SplitScalar(line); ok {
				d.record(sym, now, ScalarOf(c))
			}
		case scan.Vector:
			if inDefs {
				break
			}
			if bits, sym, ok := scan.SplitVector(line); ok {
				d.record(sym, now, VectorOf(bits))
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read VCD stream")
	}
	if p.Observer != nil {
		p.Observer.Done(d.Registry.Len(), len(d.Timeline))
	}
	return d, nil
}
