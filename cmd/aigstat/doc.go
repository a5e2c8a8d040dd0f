// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command aigstat decodes binary aiger files and prints their counts and,
// optionally, their and gates.
//
// Inputs may be gzipped or bzip2ed; '-' reads stdin.  Several inputs are
// decoded concurrently, each by one worker owning its own file.
//
// Settings may also come from a JSON file given by -config, for example
//
//	{"format": "json", "gates": true, "resolve": true, "jobs": 4}
//
// Flags given on the command line take precedence over the file.
package main
