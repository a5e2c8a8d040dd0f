// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import "github.com/rs/zerolog"

// DefaultMaxPrealloc bounds the number of slice or map entries allocated
// up front from header counts.
const DefaultMaxPrealloc = 1 << 20

type config struct {
	log         zerolog.Logger
	maxPrealloc int
}

// Option configures Parse and ParseFile.
type Option func(*config)

// WithLogger sets a logger receiving debug events at each phase boundary.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithMaxPrealloc caps up front allocation driven by header counts.  The
// result still grows to the announced size as data is read; the cap only
// keeps a lying header from forcing a huge allocation.  n <= 0 restores the
// default.
func WithMaxPrealloc(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = DefaultMaxPrealloc
		}
		c.maxPrealloc = n
	}
}

func makeConfig(opts []Option) *config {
	c := &config{
		log:         zerolog.Nop(),
		maxPrealloc: DefaultMaxPrealloc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) capFor(n uint32) int {
	if uint64(n) > uint64(c.maxPrealloc) {
		return c.maxPrealloc
	}
	return int(n)
}
