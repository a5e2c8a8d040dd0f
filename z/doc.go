// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides the literal and variable types shared by the aiger
// decoder and its consumers.
//
// A literal packs a variable index and a polarity bit into one uint32, the
// same way binary AIGER files do: literal = 2*variable + polarity.  Variable 0
// is the constant, so Lit 0 is false and Lit 1 is true.
package z
