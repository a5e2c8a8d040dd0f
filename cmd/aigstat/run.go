// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/s7a9/aiger-fast-reader/aiger"
)

type result struct {
	Path    string
	Circuit *aiger.Circuit
	Err     error
	Dur     time.Duration
}

func decodeOne(p string, log zerolog.Logger) (res result) {
	res.Path = p
	start := time.Now()
	defer func() {
		res.Dur = time.Since(start)
	}()
	r, e := path2Reader(p)
	if e != nil {
		res.Err = e
		return res
	}
	defer r.Close()
	res.Circuit, res.Err = aiger.Parse(r, aiger.WithLogger(log.With().Str("path", p).Logger()))
	return res
}

// decodeAll decodes paths with at most jobs workers.  Results are in the
// order of paths.
func decodeAll(paths []string, jobs int, log zerolog.Logger) []result {
	res := make([]result, len(paths))
	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < jobs && w < len(paths); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				res[i] = decodeOne(paths[i], log)
			}
		}()
	}
	for i := range paths {
		work <- i
	}
	close(work)
	wg.Wait()
	return res
}

// run decodes paths, writes a report for each to w and returns the exit
// status.
func run(w io.Writer, paths []string, cfg Config, log zerolog.Logger) int {
	status := 0
	for _, res := range decodeAll(paths, cfg.Jobs, log) {
		if res.Err != nil {
			log.Error().Err(res.Err).Str("path", res.Path).Msg("decode failed")
			status = 1
		} else {
			log.Info().
				Str("path", res.Path).
				Uint32("ands", res.Circuit.NumAnds()).
				Dur("dur", res.Dur).
				Msg("decoded")
		}
		if err := writeReport(w, makeSummary(res, cfg), cfg.Format); err != nil {
			log.Error().Err(err).Msg("write failed")
			return 1
		}
	}
	return status
}
