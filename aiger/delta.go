// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import "github.com/s7a9/aiger-fast-reader/z"

// A uint32 needs at most 5 groups of 7 bits.
const maxDeltaLen = 5

// Delta is the pair (delta0, delta1) coding an and gate's inputs relative
// to the gate's own literal.
type Delta [2]uint32

// Resolve gives the absolute input literals of the gate lhs coded by d,
// rhs0 = lhs - delta0 and rhs1 = rhs0 - delta1, so that lhs >= rhs0 >= rhs1.
func (d Delta) Resolve(lhs z.Lit) (rhs0, rhs1 z.Lit, err error) {
	if d[0] > uint32(lhs) {
		return 0, 0, ErrBadDelta
	}
	rhs0 = lhs - z.Lit(d[0])
	if d[1] > uint32(rhs0) {
		return 0, 0, ErrBadDelta
	}
	return rhs0, rhs0 - z.Lit(d[1]), nil
}

// read7 decodes one binary aiger delta.  Continuation bytes (high bit set)
// contribute their low 7 bits; the terminal byte is or'ed in whole at the
// current shift.
func (r *reader) read7() (uint32, error) {
	var x uint32
	for i := 0; i < maxDeltaLen; i++ {
		b, e := r.readByte()
		if e != nil {
			return 0, e
		}
		if b&0x80 == 0 {
			if i == maxDeltaLen-1 && b > 0x0f {
				return 0, errDeltaOverflow
			}
			return x | uint32(b)<<uint(7*i), nil
		}
		x |= uint32(b&0x7f) << uint(7*i)
	}
	return 0, errDeltaOverflow
}
