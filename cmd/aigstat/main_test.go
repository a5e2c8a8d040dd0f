// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s7a9/aiger-fast-reader/aiger"
)

// halfAnd is and(input 0, input 1) written with the deltas of literal 6
// over inputs 4 and 2.
var halfAnd = []byte("aig 3 2 0 1 1\n6\n\x02\x02")

func writeInputs(t *testing.T) (plain, gz, bad string) {
	dir := t.TempDir()
	plain = filepath.Join(dir, "half.aig")
	require.NoError(t, os.WriteFile(plain, halfAnd, 0644))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(halfAnd)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	gz = filepath.Join(dir, "half.aig.gz")
	require.NoError(t, os.WriteFile(gz, buf.Bytes(), 0644))

	bad = filepath.Join(dir, "half.aag")
	require.NoError(t, os.WriteFile(bad, []byte("aag 3 2 0 1 1\n2\n4\n6\n6 2 4\n"), 0644))
	return plain, gz, bad
}

func TestRunText(t *testing.T) {
	plain, gz, _ := writeInputs(t)
	var out bytes.Buffer
	cfg := Config{Format: "text", Resolve: true, Jobs: 2}
	require.NoError(t, cfg.validate())
	status := run(&out, []string{plain, gz}, cfg, zerolog.Nop())
	assert.Equal(t, 0, status)
	s := out.String()
	assert.Contains(t, s, plain+": aig 3 2 0 1 1\n")
	assert.Contains(t, s, gz+": aig 3 2 0 1 1\n")
	assert.Contains(t, s, "  6 2 2 = and(4, 2)\n")
	assert.Less(t, strings.Index(s, plain+":"), strings.Index(s, gz+":"))
}

func TestRunJSON(t *testing.T) {
	plain, _, bad := writeInputs(t)
	var out bytes.Buffer
	cfg := Config{Format: "json", Gates: true, Jobs: 1}
	status := run(&out, []string{plain, bad, filepath.Join(t.TempDir(), "none.aig")}, cfg, zerolog.Nop())
	assert.Equal(t, 1, status)

	dec := json.NewDecoder(&out)
	var ss []summary
	for dec.More() {
		var s summary
		require.NoError(t, dec.Decode(&s))
		ss = append(ss, s)
	}
	require.Len(t, ss, 3)
	assert.Equal(t, uint32(2), ss[0].Inputs)
	assert.Equal(t, uint32(1), ss[0].Ands)
	require.Len(t, ss[0].Gates, 1)
	assert.Equal(t, gate{Lhs: 6, Delta0: 2, Delta1: 2}, ss[0].Gates[0])
	assert.Contains(t, ss[1].Error, aiger.ErrBadMagic.Error())
	assert.NotEmpty(t, ss[2].Error)
}

func TestPath2ReaderTruncatedGzip(t *testing.T) {
	_, gz, _ := writeInputs(t)
	bs, err := os.ReadFile(gz)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(gz, bs[:len(bs)/2], 0644))
	res := decodeOne(gz, zerolog.Nop())
	assert.Nil(t, res.Circuit)
	assert.Error(t, res.Err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"format": "json", "resolve": true, "jobs": "3"}`), 0644))
	cfg := defaultConfig()
	require.NoError(t, loadConfig(p, &cfg))
	require.NoError(t, cfg.validate())
	assert.Equal(t, Config{Format: "json", Gates: true, Resolve: true, Jobs: 3}, cfg)

	require.NoError(t, os.WriteFile(p, []byte(`{"colour": "red"}`), 0644))
	assert.Error(t, loadConfig(p, &cfg))

	require.NoError(t, os.WriteFile(p, []byte(`{`), 0644))
	assert.Error(t, loadConfig(p, &cfg))
}

func TestConfigureFlagsOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"format": "json", "jobs": 3}`), 0644))

	fs := flag.NewFlagSet("aigstat", flag.ContinueOnError)
	f := fs.String("format", "text", "")
	j := fs.Int("j", 0, "")
	require.NoError(t, fs.Parse([]string{"-format", "text"}))
	cfg, err := configure(fs, p, Config{Format: *f, Jobs: *j})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 3, cfg.Jobs)

	require.NoError(t, fs.Parse([]string{"-format", "xml"}))
	_, err = configure(fs, "", Config{Format: *f})
	assert.Error(t, err)
}
