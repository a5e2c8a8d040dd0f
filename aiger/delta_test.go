// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bytes"
	"errors"
	"io"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s7a9/aiger-fast-reader/z"
)

func TestRead7RoundTrip(t *testing.T) {
	N := 4096
	var buf bytes.Buffer
	ds := []uint32{0, 1, 0x7f, 0x80, 0x3fff, 0x4000, 1 << 28, math.MaxUint32 - 1, math.MaxUint32}
	for i := 0; i < N; i++ {
		ds = append(ds, rand.Uint32()>>uint(rand.Intn(32)))
	}
	for _, d := range ds {
		write7(&buf, d)
	}
	r := newReader(&buf)
	for _, d := range ds {
		v, e := r.read7()
		require.NoError(t, e)
		if v != d {
			t.Fatalf("write/read %d/%d", d, v)
		}
	}
	_, e := r.read7()
	assert.ErrorIs(t, e, io.EOF)
}

func TestRead7Bytes(t *testing.T) {
	cases := []struct {
		in   []byte
		want uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x05}, 5},
		{[]byte{0x81, 0x01}, 129},
		{[]byte{0xff, 0x7f}, 0x3fff},
		{[]byte{0x80, 0x80, 0x01}, 1 << 14},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, math.MaxUint32}}
	for _, c := range cases {
		r := newReader(bytes.NewReader(c.in))
		v, e := r.read7()
		require.NoError(t, e, "% x", c.in)
		assert.Equal(t, c.want, v, "% x", c.in)
		assert.Equal(t, int64(len(c.in)), r.off)
	}
}

func TestRead7Errors(t *testing.T) {
	for _, in := range [][]byte{{}, {0x80}, {0xff, 0xff}} {
		_, e := newReader(bytes.NewReader(in)).read7()
		assert.Equal(t, KindTruncated, kindOf(e), "% x", in)
	}
	for _, in := range [][]byte{
		{0xff, 0xff, 0xff, 0xff, 0x10},
		{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}} {
		_, e := newReader(bytes.NewReader(in)).read7()
		assert.True(t, errors.Is(e, errDeltaOverflow), "% x", in)
		assert.Equal(t, KindMalformedInteger, kindOf(e))
	}
}

func TestDeltaResolve(t *testing.T) {
	rhs0, rhs1, err := Delta{2, 2}.Resolve(6)
	require.NoError(t, err)
	assert.Equal(t, z.Lit(4), rhs0)
	assert.Equal(t, z.Lit(2), rhs1)

	rhs0, rhs1, err = Delta{0, 0}.Resolve(8)
	require.NoError(t, err)
	assert.Equal(t, z.Lit(8), rhs0)
	assert.Equal(t, z.Lit(8), rhs1)

	_, _, err = Delta{7, 0}.Resolve(6)
	assert.ErrorIs(t, err, ErrBadDelta)
	_, _, err = Delta{2, 5}.Resolve(6)
	assert.ErrorIs(t, err, ErrBadDelta)
}
