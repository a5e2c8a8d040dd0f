// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import "github.com/s7a9/aiger-fast-reader/z"

// andLit gives the literal of the i'th (0 based) and gate.
func andLit(hdr *Header, i uint32) z.Lit {
	return z.Lit(2 * (hdr.Inputs + hdr.Latches + i + 1))
}

// readBinaryAnds reads one delta pair per and gate.  Keys advance
// monotonically with the gate index so no entry is overwritten.
func (r *reader) readBinaryAnds(hdr *Header, cfg *config) (map[z.Lit]Delta, error) {
	ands := make(map[z.Lit]Delta, cfg.capFor(hdr.Ands))
	var i uint32
	for i = 0; i < hdr.Ands; i++ {
		delta0, err0 := r.read7()
		if err0 != nil {
			return nil, r.fail(PhaseAnds, int(i), err0)
		}
		delta1, err1 := r.read7()
		if err1 != nil {
			return nil, r.fail(PhaseAnds, int(i), err1)
		}
		ands[andLit(hdr, i)] = Delta{delta0, delta1}
	}
	return ands, nil
}
