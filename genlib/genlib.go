// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package genlib holds the gate handles a network is bound to outside of a
// sizing pass.
//
// A Library is owned by the caller of a pass.  Gates are identified by
// name; the sizing passes look them up with ReadGateByName when converting
// cell ids back to handles.
package genlib

import (
	"github.com/pkg/errors"

	"github.com/bxli2015/scl/lib"
)

// Errors related to gate libraries.
var (
	ErrDupGate = errors.New("duplicate gate name")
	ErrNoGate  = errors.New("no such gate")
)

// Gate is a handle to a library gate.
type Gate struct {
	Name string
	NIn  int
	Area float64
}

// Library is a set of gates with an optional distinguished buffer.
type Library struct {
	name   string
	gates  []*Gate
	byName map[string]*Gate
	buf    *Gate
}

// New creates a gate library.  If buf is not empty, it names the buffer
// gate, which must be among gates and have one input.
func New(name string, gates []Gate, buf string) (*Library, error) {
	g := &Library{
		name:   name,
		gates:  make([]*Gate, 0, len(gates)),
		byName: make(map[string]*Gate, len(gates))}
	for i := range gates {
		h := gates[i]
		if _, dup := g.byName[h.Name]; dup {
			return nil, errors.Wrapf(ErrDupGate, "%q", h.Name)
		}
		g.gates = append(g.gates, &h)
		g.byName[h.Name] = &h
	}
	if buf == "" {
		return g, nil
	}
	b := g.byName[buf]
	if b == nil {
		return nil, errors.Wrapf(ErrNoGate, "buffer %q", buf)
	}
	if b.NIn != 1 {
		return nil, errors.Errorf("buffer %q has %d inputs", buf, b.NIn)
	}
	g.buf = b
	return g, nil
}

// FromLib creates a gate library with one gate per cell of l, leaving out
// the cells named in skip.
func FromLib(l *lib.Lib, buf string, skip ...string) (*Library, error) {
	omit := make(map[string]bool, len(skip))
	for _, s := range skip {
		omit[s] = true
	}
	gates := make([]Gate, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		c := l.Cell(i)
		if omit[c.Name] {
			continue
		}
		gates = append(gates, Gate{Name: c.Name, NIn: c.NIn, Area: c.Area})
	}
	if omit[buf] {
		buf = ""
	}
	return New(l.Name(), gates, buf)
}

// Name returns the library name.
func (g *Library) Name() string {
	return g.name
}

// Gates returns the gates of g.  The result must not be modified.
func (g *Library) Gates() []*Gate {
	return g.gates
}

// ReadGateByName returns the gate called name, or nil if there is none.
func (g *Library) ReadGateByName(name string) *Gate {
	return g.byName[name]
}

// Buf returns the buffer gate, or nil if the library has none.
func (g *Library) Buf() *Gate {
	return g.buf
}
