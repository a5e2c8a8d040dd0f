// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

var usage = `%s usage: %s [options] <input> <input> ...
%s reads binary aiger (aig) files and prints a summary of each.  The
inputs may be gzipped or bzip2ed.  If an input is '-', %s reads from stdin.

The exit status is 1 if any input failed to decode.

%s has the following options:

`
