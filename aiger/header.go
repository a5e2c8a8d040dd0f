// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"fmt"
	"io"
	"math"
)

// Magic is the token opening every binary aiger file.
const Magic = "aig"

// Header holds the counts of a binary aiger file, version 1.9.  Bad,
// Constraints, Justice and Fair are zero for files written in the
// original five field form.
type Header struct {
	MaxVar      uint32 // M, total number of variables
	Inputs      uint32 // I
	Latches     uint32 // L
	Outputs     uint32 // O
	Ands        uint32 // A
	Bad         uint32 // B
	Constraints uint32 // C
	Justice     uint32 // J
	Fair        uint32 // F
}

func (h *Header) String() string {
	s := fmt.Sprintf("%s %d %d %d %d %d", Magic, h.MaxVar, h.Inputs, h.Latches, h.Outputs, h.Ands)
	if h.Bad|h.Constraints|h.Justice|h.Fair != 0 {
		s += fmt.Sprintf(" %d %d %d %d", h.Bad, h.Constraints, h.Justice, h.Fair)
	}
	return s
}

// consistent checks M == I + L + A without wrapping around.
func (h *Header) consistent() bool {
	return uint64(h.MaxVar) == uint64(h.Inputs)+uint64(h.Latches)+uint64(h.Ands)
}

// readHeader reads the magic token, its delimiter and the header counts,
// leaving the cursor on the first byte after the header line.
func (r *reader) readHeader() (*Header, error) {
	var magic [len(Magic)]byte
	n, e := io.ReadFull(r.br, magic[:])
	r.off += int64(n)
	if e != nil {
		return nil, r.fail(PhaseHeader, -1, e)
	}
	if string(magic[:]) != Magic {
		return nil, &Error{
			Kind:   KindBadMagic,
			Phase:  PhaseHeader,
			Index:  -1,
			Offset: r.off,
			Err:    fmt.Errorf("got %q", magic[:])}
	}
	d, e := r.readByte()
	if e != nil {
		return nil, r.fail(PhaseHeader, -1, e)
	}
	if !isWS(d) {
		return nil, r.fail(PhaseHeader, -1, errMagicDelim)
	}

	var counts [9]uint32
	for i := 0; i < 5; i++ {
		counts[i], d, e = r.readUint()
		if e != nil {
			return nil, r.fail(PhaseHeader, i, e)
		}
	}
	// aiger 1.9 adds optional B C J F on the same line
	for i := 5; isBlank(d); i++ {
		eol, e := r.skipBlanks()
		if e != nil {
			return nil, r.fail(PhaseHeader, i, e)
		}
		if eol {
			break
		}
		if i == len(counts) {
			return nil, r.fail(PhaseHeader, i, errHeaderFields)
		}
		counts[i], d, e = r.readUint()
		if e != nil {
			return nil, r.fail(PhaseHeader, i, e)
		}
	}
	hdr := &Header{
		MaxVar:      counts[0],
		Inputs:      counts[1],
		Latches:     counts[2],
		Outputs:     counts[3],
		Ands:        counts[4],
		Bad:         counts[5],
		Constraints: counts[6],
		Justice:     counts[7],
		Fair:        counts[8]}
	if !hdr.consistent() {
		return nil, &Error{
			Kind:   KindInconsistentCounts,
			Phase:  PhaseHeader,
			Index:  -1,
			Offset: r.off,
			Err:    fmt.Errorf("%d != %d + %d + %d", hdr.MaxVar, hdr.Inputs, hdr.Latches, hdr.Ands)}
	}
	// literals go up to 2*M+1
	if hdr.MaxVar > math.MaxUint32>>1 {
		return nil, r.fail(PhaseHeader, 0, errUintOverflow)
	}
	return hdr, nil
}
