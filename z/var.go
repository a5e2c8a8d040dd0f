// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Var is an AIGER variable index.
type Var uint32

// VarConst is the variable reserved for the constants.
const VarConst Var = 0

// Pos returns the positive (non-inverted) literal of v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the inverted literal of v.
func (v Var) Neg() Lit {
	return Lit(v<<1 | 1)
}

func (v Var) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}
