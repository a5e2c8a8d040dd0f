// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

var (
	cfgFile = flag.String("config", "", "JSON settings file")
	format  = flag.String("format", "text", "output format, text or json")
	gates   = flag.Bool("gates", false, "list and gates (default false)")
	resolve = flag.Bool("resolve", false, "resolve gate deltas to input literals, implies -gates (default false)")
	jobs    = flag.Int("j", 0, "number of files decoded concurrently (default #cpus)")
	verbose = flag.Bool("v", false, "log phase level debug events (default false)")
)

func newLogger(verbose bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if verbose {
		lvl = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(lvl).
		With().Timestamp().Logger()
}

func main() {
	flag.Usage = func() {
		p := os.Args[0]
		_, p = filepath.Split(p)
		fmt.Fprintf(os.Stderr, usage, p, p, p, p, p)
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	cfg, err := configure(flag.CommandLine, *cfgFile, Config{
		Format:  *format,
		Gates:   *gates,
		Resolve: *resolve,
		Jobs:    *jobs,
		Verbose: *verbose})
	log := newLogger(cfg.Verbose)
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	os.Exit(run(os.Stdout, flag.Args(), cfg, log))
}
