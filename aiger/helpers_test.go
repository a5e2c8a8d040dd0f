// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bytes"
	"strings"
)

// write7 is the encoder matching read7, used only to build test inputs.
func write7(w *bytes.Buffer, val uint32) {
	for val&^0x7f != 0 {
		w.WriteByte(byte(val&0x7f) | 0x80)
		val >>= 7
	}
	w.WriteByte(byte(val))
}

// binFile builds a binary aiger file from a header line (without magic),
// the ascii literal lines and the and gate deltas.
func binFile(hdr string, lines []string, ds ...Delta) []byte {
	var buf bytes.Buffer
	buf.WriteString(Magic + " " + hdr + "\n")
	for _, ln := range lines {
		buf.WriteString(ln + "\n")
	}
	for _, d := range ds {
		write7(&buf, d[0])
		write7(&buf, d[1])
	}
	return buf.Bytes()
}

// scenario is 10 variables: 5 inputs, 2 latches, 1 output and 3 ands.
func scenario() []byte {
	return binFile("10 5 2 1 3",
		strings.Fields("18 3 20"),
		Delta{6, 2}, Delta{2, 8}, Delta{4, 1})
}
