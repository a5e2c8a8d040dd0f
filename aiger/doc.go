// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aiger implements a fast reader for binary aiger ("aig") files.
//
// Parse decodes the header, the latch and output literal tables, the
// optional aiger 1.9 property sections and the delta coded and gates, and
// returns an immutable *Circuit.  And gates are exposed as the raw
// (delta0, delta1) pairs found on disk, keyed by the gate's own literal;
// Delta.Resolve recovers the absolute input literals when needed.
//
// Input literals are not stored in binary files, they are synthesized:
// the i'th input has literal 2*i.
//
// Symbol tables and comments following the and gates are not read.
package aiger
