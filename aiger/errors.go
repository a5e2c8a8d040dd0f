// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Errors related to IO and formatting.  Every error returned by Parse is
// an *Error which unwraps to exactly one of the first five.
var (
	ErrIO                 = errors.New("read error")
	ErrBadMagic           = errors.New("not a binary aiger file")
	ErrTruncated          = errors.New("premature EOF")
	ErrInconsistentCounts = errors.New("M != I + L + A")
	ErrMalformedInteger   = errors.New("malformed integer")
	ErrBadDelta           = errors.New("bad delta encoding")
	ErrNotAnd             = errors.New("literal is not an and gate")
)

// causes, reported through Error.Err
var (
	errNotDigit      = errors.New("unexpected char")
	errUintOverflow  = errors.New("integer overflows uint32")
	errDeltaOverflow = errors.New("delta overflows uint32")
	errHeaderFields  = errors.New("too many header fields")
	errMagicDelim    = errors.New("magic not followed by white space")
)

// Kind classifies decoding failures.
type Kind int

const (
	KindIO Kind = iota
	KindBadMagic
	KindTruncated
	KindInconsistentCounts
	KindMalformedInteger
)

var kindErrs = [...]error{
	KindIO:                 ErrIO,
	KindBadMagic:           ErrBadMagic,
	KindTruncated:          ErrTruncated,
	KindInconsistentCounts: ErrInconsistentCounts,
	KindMalformedInteger:   ErrMalformedInteger}

var kindNames = [...]string{
	KindIO:                 "IoError",
	KindBadMagic:           "BadMagic",
	KindTruncated:          "Truncated",
	KindInconsistentCounts: "InconsistentCounts",
	KindMalformedInteger:   "MalformedInteger"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Sentinel returns the package level error value for k.
func (k Kind) Sentinel() error {
	if k < 0 || int(k) >= len(kindErrs) {
		return ErrIO
	}
	return kindErrs[k]
}

// Phase names the section of the file being decoded when an error
// occurred.
type Phase string

const (
	PhaseOpen        Phase = "open"
	PhaseHeader      Phase = "header"
	PhaseLatches     Phase = "latches"
	PhaseOutputs     Phase = "outputs"
	PhaseBad         Phase = "bad"
	PhaseConstraints Phase = "constraints"
	PhaseJustice     Phase = "justice"
	PhaseFair        Phase = "fair"
	PhaseAnds        Phase = "and gates"
)

// Error describes a failed decode.  Index is the position within the
// phase (the latch, output or gate number, or the header field), or -1.
// Offset is the number of bytes consumed when the failure was detected.
type Error struct {
	Kind   Kind
	Phase  Phase
	Index  int
	Offset int64
	Err    error
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "aiger: %s: %s", e.Phase, e.Kind.Sentinel())
	if e.Index >= 0 {
		fmt.Fprintf(&sb, " at index %d", e.Index)
	}
	fmt.Fprintf(&sb, " (offset %d)", e.Offset)
	if e.Err != nil && e.Err != e.Kind.Sentinel() && e.Err != io.EOF {
		fmt.Fprintf(&sb, ": %s", e.Err)
	}
	return sb.String()
}

// Unwrap gives both the kind's sentinel and the underlying cause, so
// errors.Is(err, ErrTruncated) and errors.Is(err, fs.ErrNotExist) both work.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind.Sentinel()}
	}
	return []error{e.Kind.Sentinel(), e.Err}
}

// kindOf classifies a low level read error.
func kindOf(err error) Kind {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return KindTruncated
	case errors.Is(err, errNotDigit), errors.Is(err, errUintOverflow),
		errors.Is(err, errDeltaOverflow), errors.Is(err, errHeaderFields):
		return KindMalformedInteger
	case errors.Is(err, errMagicDelim):
		return KindBadMagic
	}
	return KindIO
}
