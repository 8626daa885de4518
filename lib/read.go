// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package lib

import (
	"io"
	"os"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

// File is the on-disk form of a library.
type File struct {
	Name   string     `json:"name"`
	Buffer string     `json:"buffer,omitempty"`
	Cells  []FileCell `json:"cells"`
}

// FileCell is the on-disk form of a cell.
type FileCell struct {
	Name   string  `json:"name"`
	Class  string  `json:"class,omitempty"`
	Inputs int     `json:"inputs"`
	Area   float64 `json:"area"`
	Order  int     `json:"order"`
}

// Read reads a YAML library from r.  It returns the library and the name
// of the buffer cell declared by the file, which may be empty.
func Read(r io.Reader) (*Lib, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", errors.Wrap(err, "reading library")
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, "", errors.Wrap(err, "parsing library yaml")
	}
	cells := make([]Cell, len(f.Cells))
	for i, fc := range f.Cells {
		cells[i] = Cell{
			Name:  fc.Name,
			Class: fc.Class,
			NIn:   fc.Inputs,
			Area:  fc.Area,
			Order: fc.Order}
	}
	l, err := New(f.Name, cells)
	if err != nil {
		return nil, "", err
	}
	if f.Buffer != "" {
		if _, ok := l.Find(f.Buffer); !ok {
			return nil, "", errors.Wrapf(ErrBadCell, "buffer %q is not a cell", f.Buffer)
		}
	}
	return l, f.Buffer, nil
}

// ReadFile is like Read but reads from the file at path.
func ReadFile(path string) (*Lib, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	l, buf, err := Read(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "%s", path)
	}
	return l, buf, nil
}
