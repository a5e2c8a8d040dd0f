// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Lit is an AIGER literal.
type Lit uint32

const (
	LitFalse Lit = 0
	LitTrue  Lit = 1
)

// MaxLit gives the largest literal a circuit with maxVar variables can
// reference.
func MaxLit(maxVar uint32) Lit {
	return Lit(2*maxVar + 1)
}

// Var returns the variable underlying m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// IsPos returns whether m is not inverted.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// IsConst returns whether m is one of the constants.
func (m Lit) IsConst() bool {
	return m.Var() == VarConst
}

// Sign returns 1 if m is positive and -1 otherwise.
func (m Lit) Sign() int {
	if m.IsPos() {
		return 1
	}
	return -1
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("%d", uint32(m))
	}
	return fmt.Sprintf("%d(-v%d)", uint32(m), uint32(m.Var()))
}
