// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var validFormats = []string{"text", "json"}

// Config holds the settings of a run.
type Config struct {
	Format  string `mapstructure:"format"`
	Gates   bool   `mapstructure:"gates"`
	Resolve bool   `mapstructure:"resolve"`
	Jobs    int    `mapstructure:"jobs"`
	Verbose bool   `mapstructure:"verbose"`
}

func defaultConfig() Config {
	return Config{
		Format: "text",
		Jobs:   runtime.NumCPU()}
}

// loadConfig decodes the JSON object in file over cfg.  Unknown keys are
// an error.
func loadConfig(file string, cfg *Config) error {
	bs, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(bs, &raw); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           cfg})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}

func (c *Config) validate() error {
	if !lo.Contains(validFormats, c.Format) {
		return fmt.Errorf("%q is not a valid format, want one of %v", c.Format, validFormats)
	}
	if c.Jobs < 1 {
		c.Jobs = 1
	}
	if c.Resolve {
		c.Gates = true
	}
	return nil
}

// configure builds the run's Config from the defaults, the -config file
// and then the flags explicitly set on fs.
func configure(fs *flag.FlagSet, cfgFile string, flagged Config) (Config, error) {
	cfg := defaultConfig()
	if cfgFile != "" {
		if err := loadConfig(cfgFile, &cfg); err != nil {
			return cfg, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = flagged.Format
		case "gates":
			cfg.Gates = flagged.Gates
		case "resolve":
			cfg.Resolve = flagged.Resolve
		case "j":
			cfg.Jobs = flagged.Jobs
		case "v":
			cfg.Verbose = flagged.Verbose
		}
	})
	return cfg, cfg.validate()
}
