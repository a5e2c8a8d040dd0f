// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/samber/lo"

	"github.com/s7a9/aiger-fast-reader/z"
)

// Circuit is a decoded binary aiger file.  It is immutable: accessors
// returning slices or maps return copies.
type Circuit struct {
	hdr         Header
	latchNexts  []z.Lit
	latchResets []z.Lit
	outputs     []z.Lit
	bad         []z.Lit
	constraints []z.Lit
	justice     [][]z.Lit
	fair        []z.Lit
	ands        map[z.Lit]Delta
}

// ParseFile opens and decodes the binary aiger file at path.  The file is
// closed before ParseFile returns, whatever the outcome.
func ParseFile(path string, opts ...Option) (*Circuit, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, &Error{Kind: KindIO, Phase: PhaseOpen, Index: -1, Err: e}
	}
	defer f.Close()
	return Parse(f, opts...)
}

// Parse decodes a binary aiger file from r.  Parse returns either a
// complete *Circuit and a nil error or a nil *Circuit and an *Error; there
// are no partial results.  Bytes following the and gates (symbols,
// comments) are left unread.
func Parse(r io.Reader, opts ...Option) (*Circuit, error) {
	cfg := makeConfig(opts)
	rdr := newReader(r)
	log := cfg.log

	hdr, err := rdr.readHeader()
	if err != nil {
		return nil, err
	}
	log.Debug().Stringer("header", hdr).Int64("offset", rdr.off).Msg("read header")

	c := &Circuit{hdr: *hdr}
	c.latchNexts, c.latchResets, err = rdr.readLatches(hdr.Latches, cfg)
	if err != nil {
		return nil, err
	}
	if c.outputs, err = rdr.readLits(PhaseOutputs, hdr.Outputs, cfg); err != nil {
		return nil, err
	}
	if c.bad, err = rdr.readLits(PhaseBad, hdr.Bad, cfg); err != nil {
		return nil, err
	}
	if c.constraints, err = rdr.readLits(PhaseConstraints, hdr.Constraints, cfg); err != nil {
		return nil, err
	}
	if c.justice, err = rdr.readJustice(hdr.Justice, cfg); err != nil {
		return nil, err
	}
	if c.fair, err = rdr.readLits(PhaseFair, hdr.Fair, cfg); err != nil {
		return nil, err
	}
	log.Debug().
		Int("latches", len(c.latchNexts)).
		Int("outputs", len(c.outputs)).
		Int64("offset", rdr.off).
		Msg("read literal tables")

	if c.ands, err = rdr.readBinaryAnds(hdr, cfg); err != nil {
		return nil, err
	}
	log.Debug().Int("ands", len(c.ands)).Int64("offset", rdr.off).Msg("read and gates")
	return c, nil
}

// Header returns the header counts.
func (c *Circuit) Header() Header { return c.hdr }

// MaxVar returns M, the total node count of the header.
func (c *Circuit) MaxVar() uint32 { return c.hdr.MaxVar }

// NumInputs returns I.
func (c *Circuit) NumInputs() uint32 { return c.hdr.Inputs }

// NumLatches returns L.
func (c *Circuit) NumLatches() uint32 { return c.hdr.Latches }

// NumOutputs returns O.
func (c *Circuit) NumOutputs() uint32 { return c.hdr.Outputs }

// NumAnds returns A.
func (c *Circuit) NumAnds() uint32 { return c.hdr.Ands }

// Inputs returns the synthesized input literals 0, 2, ..., 2*(I-1).  They
// are not stored; each call builds a fresh slice.
func (c *Circuit) Inputs() []z.Lit {
	return lo.Times(int(c.hdr.Inputs), func(i int) z.Lit {
		return z.Lit(2 * i)
	})
}

// LatchNexts returns the next state literal of each latch, in file order.
func (c *Circuit) LatchNexts() []z.Lit { return slices.Clone(c.latchNexts) }

// LatchResets returns the raw reset literal of each latch: 0, 1, or the
// latch's own literal for an uninitialized latch.
func (c *Circuit) LatchResets() []z.Lit { return slices.Clone(c.latchResets) }

// Outputs returns the output literals in file order.
func (c *Circuit) Outputs() []z.Lit { return slices.Clone(c.outputs) }

// Bad returns the bad state literals.
func (c *Circuit) Bad() []z.Lit { return slices.Clone(c.bad) }

// Constraints returns the invariant constraint literals.
func (c *Circuit) Constraints() []z.Lit { return slices.Clone(c.constraints) }

// Fair returns the fairness constraint literals.
func (c *Circuit) Fair() []z.Lit { return slices.Clone(c.fair) }

// Justice returns the literal list of each justice property.
func (c *Circuit) Justice() [][]z.Lit {
	return lo.Map(c.justice, func(ms []z.Lit, _ int) []z.Lit {
		return slices.Clone(ms)
	})
}

// Ands returns the and gates as a map from gate literal to raw deltas.
func (c *Circuit) Ands() map[z.Lit]Delta {
	res := make(map[z.Lit]Delta, len(c.ands))
	for m, d := range c.ands {
		res[m] = d
	}
	return res
}

// And returns the raw deltas of the gate with literal lhs.
func (c *Circuit) And(lhs z.Lit) (Delta, bool) {
	d, ok := c.ands[lhs]
	return d, ok
}

// AndLits returns the gate literals in increasing order, which is also
// file order.
func (c *Circuit) AndLits() []z.Lit {
	ms := lo.Keys(c.ands)
	slices.Sort(ms)
	return ms
}

// Resolve gives the absolute input literals of the gate lhs.
func (c *Circuit) Resolve(lhs z.Lit) (rhs0, rhs1 z.Lit, err error) {
	d, ok := c.ands[lhs]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrNotAnd, lhs)
	}
	rhs0, rhs1, err = d.Resolve(lhs)
	if err != nil {
		return 0, 0, fmt.Errorf("gate %s: %w", lhs, err)
	}
	return rhs0, rhs1, nil
}
