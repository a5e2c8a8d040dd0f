// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import "github.com/s7a9/aiger-fast-reader/z"

// readLits reads n ascii literals in file order.  Literals are not range
// checked.  Blanks trailing a literal are skipped up to and including the
// end of line, as on header and latch lines, so that no line ending is left
// in front of the binary and gates.
func (r *reader) readLits(ph Phase, n uint32, cfg *config) ([]z.Lit, error) {
	res := make([]z.Lit, 0, cfg.capFor(n))
	var i uint32
	for i = 0; i < n; i++ {
		u, d, e := r.readUint()
		if e != nil {
			return nil, r.fail(ph, int(i), e)
		}
		if isBlank(d) {
			if _, e = r.skipBlanks(); e != nil {
				return nil, r.fail(ph, int(i), e)
			}
		}
		res = append(res, z.Lit(u))
	}
	return res, nil
}

// readLatches reads one line per latch: the next state literal and, as
// allowed since aiger 1.9, an optional reset literal on the same line.
// Absent resets are 0.
func (r *reader) readLatches(n uint32, cfg *config) (nexts, resets []z.Lit, err error) {
	nexts = make([]z.Lit, 0, cfg.capFor(n))
	resets = make([]z.Lit, 0, cfg.capFor(n))
	var i uint32
	for i = 0; i < n; i++ {
		nxt, d, e := r.readUint()
		if e != nil {
			return nil, nil, r.fail(PhaseLatches, int(i), e)
		}
		var ini uint32
		if isBlank(d) {
			eol, e := r.skipBlanks()
			if e != nil {
				return nil, nil, r.fail(PhaseLatches, int(i), e)
			}
			if !eol {
				ini, _, e = r.readUint()
				if e != nil {
					return nil, nil, r.fail(PhaseLatches, int(i), e)
				}
			}
		}
		nexts = append(nexts, z.Lit(nxt))
		resets = append(resets, z.Lit(ini))
	}
	return nexts, resets, nil
}

// readJustice reads the justice sizes and then each justice property's
// literals.  Errors in the second part are indexed by property.
func (r *reader) readJustice(n uint32, cfg *config) ([][]z.Lit, error) {
	sizes, err := r.readLits(PhaseJustice, n, cfg)
	if err != nil {
		return nil, err
	}
	res := make([][]z.Lit, 0, len(sizes))
	for i, sz := range sizes {
		ms, err := r.readLits(PhaseJustice, uint32(sz), cfg)
		if err != nil {
			err.(*Error).Index = i
			return nil, err
		}
		res = append(res, ms)
	}
	return res, nil
}
