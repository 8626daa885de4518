// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bxli2015/scl/aig"
	"github.com/bxli2015/scl/genlib"
	"github.com/bxli2015/scl/ntk"
)

type format int

const (
	yamlFmt format = 1 + iota
	aagFmt
	aigFmt
)

type readCloser struct {
	io.Reader
	f *os.File
}

func (r readCloser) Close() error {
	return r.f.Close()
}

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
		return readCloser{r, f}, nil
	}
	if strings.HasSuffix(p, ".bz2") {
		return readCloser{bzip2.NewReader(f), f}, nil
	}
	return f, nil
}

func path2Format(p string) (format, error) {
	q := p
	if strings.HasSuffix(p, ".gz") {
		q = p[:len(p)-3]
	}
	if strings.HasSuffix(p, ".bz2") {
		q = p[:len(p)-4]
	}
	switch {
	case p == "-", strings.HasSuffix(q, ".yaml"), strings.HasSuffix(q, ".yml"):
		return yamlFmt, nil
	case strings.HasSuffix(q, ".aag"):
		return aagFmt, nil
	case strings.HasSuffix(q, ".aig"):
		return aigFmt, nil
	}
	return 0, fmt.Errorf("path extension of %q isn't .yaml, .aag or .aig", p)
}

func readNtk(p string, gl *genlib.Library, opts aig.Options) (*ntk.Ntk, error) {
	f, err := path2Format(p)
	if err != nil {
		return nil, err
	}
	r, err := path2Reader(p)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	switch f {
	case yamlFmt:
		return ntk.ReadYAML(r, gl)
	case aagFmt:
		return aig.Read(r, false, gl, opts)
	case aigFmt:
		return aig.Read(r, true, gl, opts)
	default:
		panic(fmt.Sprintf("invalid format %d\n", f))
	}
}
