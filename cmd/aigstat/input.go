// Copyright 2026 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"
)

// multiCloser closes a decompressor and the file under it.
type multiCloser struct {
	io.Reader
	cs []io.Closer
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.cs {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// path2Reader opens p, decompressing by suffix.  "-" is stdin.
func path2Reader(p string) (io.ReadCloser, error) {
	if p == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, e := os.Open(p)
	if e != nil {
		return nil, e
	}
	if strings.HasSuffix(p, ".gz") {
		r, e := gzip.NewReader(f)
		if e != nil {
			f.Close()
			return nil, e
		}
		return &multiCloser{Reader: r, cs: []io.Closer{r, f}}, nil
	}
	if strings.HasSuffix(p, ".bz2") {
		return &multiCloser{Reader: bzip2.NewReader(f), cs: []io.Closer{f}}, nil
	}
	return f, nil
}
