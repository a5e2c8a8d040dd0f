// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"io"
	"math"
)

// reader is the single cursor shared by all decoding phases.  It counts
// consumed bytes so errors can report an offset.
type reader struct {
	br  *bufio.Reader
	off int64
}

func newReader(r io.Reader) *reader {
	return &reader{br: bufio.NewReaderSize(r, 64*1024)}
}

func (r *reader) readByte() (byte, error) {
	b, e := r.br.ReadByte()
	if e != nil {
		return 0, e
	}
	r.off++
	return b, nil
}

func (r *reader) peekByte() (byte, error) {
	bs, e := r.br.Peek(1)
	if e != nil {
		return 0, e
	}
	return bs[0], nil
}

func (r *reader) fail(ph Phase, index int, err error) *Error {
	return &Error{
		Kind:   kindOf(err),
		Phase:  ph,
		Index:  index,
		Offset: r.off,
		Err:    err}
}

func isWS(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

// readUint reads a decimal uint32 preceded by optional white space and
// terminated by exactly one white space delimiter, which is consumed and
// returned.  A "\r\n" delimiter is consumed as a unit and reported as '\n'.
func (r *reader) readUint() (uint32, byte, error) {
	b, e := r.readByte()
	for e == nil && isWS(b) {
		b, e = r.readByte()
	}
	if e != nil {
		return 0, 0, e
	}
	var result uint64
	first := true
	for {
		if b >= '0' && b <= '9' {
			result = result*10 + uint64(b-'0')
			if result > math.MaxUint32 {
				return 0, 0, errUintOverflow
			}
			first = false
			b, e = r.readByte()
			if e != nil {
				return 0, 0, e
			}
			continue
		}
		if first || !isWS(b) {
			return 0, b, errNotDigit
		}
		break
	}
	if b == '\r' {
		if nb, pe := r.peekByte(); pe == nil && nb == '\n' {
			r.readByte()
			b = '\n'
		}
	}
	return uint32(result), b, nil
}

// skipBlanks consumes spaces and tabs.  If it then finds an end of line,
// that is consumed too and eol is true.
func (r *reader) skipBlanks() (eol bool, err error) {
	for {
		b, e := r.peekByte()
		if e != nil {
			return false, e
		}
		switch {
		case isBlank(b):
			r.readByte()
		case b == '\n':
			r.readByte()
			return true, nil
		case b == '\r':
			r.readByte()
			if nb, pe := r.peekByte(); pe == nil && nb == '\n' {
				r.readByte()
			}
			return true, nil
		default:
			return false, nil
		}
	}
}
