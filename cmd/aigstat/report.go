// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/s7a9/aiger-fast-reader/aiger"
	"github.com/s7a9/aiger-fast-reader/z"
)

type gate struct {
	Lhs    z.Lit  `json:"lhs"`
	Delta0 uint32 `json:"delta0"`
	Delta1 uint32 `json:"delta1"`
	Rhs0   *z.Lit `json:"rhs0,omitempty"`
	Rhs1   *z.Lit `json:"rhs1,omitempty"`
	Bad    string `json:"bad,omitempty"`
}

type summary struct {
	Path        string  `json:"path"`
	Error       string  `json:"error,omitempty"`
	MaxVar      uint32  `json:"maxvar"`
	Inputs      uint32  `json:"inputs"`
	Latches     uint32  `json:"latches"`
	Outputs     uint32  `json:"outputs"`
	Ands        uint32  `json:"ands"`
	Bad         uint32  `json:"bad,omitempty"`
	Constraints uint32  `json:"constraints,omitempty"`
	Justice     uint32  `json:"justice,omitempty"`
	Fair        uint32  `json:"fair,omitempty"`
	Gates       []gate  `json:"gates,omitempty"`
	Millis      float64 `json:"ms"`
}

func makeSummary(res result, cfg Config) summary {
	s := summary{
		Path:   res.Path,
		Millis: float64(res.Dur.Microseconds()) / 1000}
	if res.Err != nil {
		s.Error = res.Err.Error()
		return s
	}
	c := res.Circuit
	hdr := c.Header()
	s.MaxVar, s.Inputs, s.Latches, s.Outputs, s.Ands = hdr.MaxVar, hdr.Inputs, hdr.Latches, hdr.Outputs, hdr.Ands
	s.Bad, s.Constraints, s.Justice, s.Fair = hdr.Bad, hdr.Constraints, hdr.Justice, hdr.Fair
	if !cfg.Gates {
		return s
	}
	s.Gates = lo.Map(c.AndLits(), func(m z.Lit, _ int) gate {
		d, _ := c.And(m)
		g := gate{Lhs: m, Delta0: d[0], Delta1: d[1]}
		if cfg.Resolve {
			rhs0, rhs1, err := d.Resolve(m)
			if err != nil {
				g.Bad = err.Error()
			} else {
				g.Rhs0, g.Rhs1 = &rhs0, &rhs1
			}
		}
		return g
	})
	return s
}

func writeReport(w io.Writer, s summary, format string) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(s)
	}
	bw := bufio.NewWriter(w)
	if s.Error != "" {
		fmt.Fprintf(bw, "%s: %s\n", s.Path, s.Error)
		return bw.Flush()
	}
	hdr := aiger.Header{
		MaxVar: s.MaxVar, Inputs: s.Inputs, Latches: s.Latches, Outputs: s.Outputs, Ands: s.Ands,
		Bad: s.Bad, Constraints: s.Constraints, Justice: s.Justice, Fair: s.Fair}
	fmt.Fprintf(bw, "%s: %s\n", s.Path, hdr.String())
	fmt.Fprintf(bw, "  inputs  %d\n", s.Inputs)
	fmt.Fprintf(bw, "  latches %d\n", s.Latches)
	fmt.Fprintf(bw, "  outputs %d\n", s.Outputs)
	fmt.Fprintf(bw, "  ands    %d\n", s.Ands)
	for _, g := range s.Gates {
		fmt.Fprintf(bw, "  %d %d %d", g.Lhs, g.Delta0, g.Delta1)
		switch {
		case g.Bad != "":
			fmt.Fprintf(bw, " (%s)", g.Bad)
		case g.Rhs0 != nil:
			fmt.Fprintf(bw, " = and(%d, %d)", *g.Rhs0, *g.Rhs1)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
