// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aig maps and-inverter graphs onto gate networks.
//
// Every and gate of the graph becomes a node bound to a two input and
// gate, every complemented edge goes through an inverter node, which is
// shared among all uses of the same complemented literal.  Only the
// logic in the cone of the outputs is mapped.
package aig

import (
	"io"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/logic/aiger"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/bxli2015/scl/genlib"
	"github.com/bxli2015/scl/ntk"
)

// Errors related to mapping.
var (
	ErrSequential  = errors.New("graph has latches")
	ErrConstOutput = errors.New("output is constant")
	ErrNoGate      = errors.New("gate not in library")
)

// Options controls mapping.
type Options struct {
	And     string // two input and gate
	Inv     string // inverter
	BarBufs bool   // place a barrier buffer before each output
}

// DefaultOptions are the options used when none are given.
var DefaultOptions = Options{And: "AND2_X1", Inv: "INV_X1"}

// Circuit is an and-inverter graph in topological order, as implemented
// by *logic.C and *logic.S.
type Circuit interface {
	Len() int
	At(i int) z.Lit
	Ins(m z.Lit) (z.Lit, z.Lit)
}

type mapper struct {
	c     Circuit
	n     *ntk.Ntk
	and   *genlib.Gate
	inv   *genlib.Gate
	konst z.Var
	ids   []int // ntk id of var, -1 if unmapped
	invs  []int // ntk id of inverted var, -1 if none
}

// Map maps the cone of outs in c onto a network over gl.  ins are the
// inputs of c; they become the primary inputs of the result in order,
// whether or not they are in the cone.  konst is the literal c uses for
// true.
func Map(c Circuit, konst z.Lit, ins, outs []z.Lit, gl *genlib.Library, opts Options) (*ntk.Ntk, error) {
	and := gl.ReadGateByName(opts.And)
	if and == nil || and.NIn != 2 {
		return nil, errors.Wrapf(ErrNoGate, "and gate %q", opts.And)
	}
	inv := gl.ReadGateByName(opts.Inv)
	if inv == nil || inv.NIn != 1 {
		return nil, errors.Wrapf(ErrNoGate, "inverter %q", opts.Inv)
	}
	p := &mapper{
		c:     c,
		n:     ntk.New(gl),
		and:   and,
		inv:   inv,
		konst: konst.Var(),
		ids:   make([]int, c.Len()),
		invs:  make([]int, c.Len())}
	for i := range p.ids {
		p.ids[i] = -1
		p.invs[i] = -1
	}
	for _, m := range ins {
		p.ids[m.Var()] = p.n.AddPi()
	}
	for i, m := range outs {
		if m.Var() == p.konst {
			return nil, errors.Wrapf(ErrConstOutput, "output %d", i)
		}
		p.vis(m)
	}
	for _, m := range outs {
		id := p.lit(m)
		if opts.BarBufs {
			id = p.n.AddBarBuf(id)
		}
		p.n.AddPo(id)
	}
	return p.n, nil
}

func (p *mapper) vis(m z.Lit) {
	v := m.Var()
	if p.ids[v] != -1 {
		return
	}
	if v == p.konst {
		panic("constant in and gate")
	}
	a, b := p.c.Ins(m)
	if a == z.LitNull {
		// input not declared in ins
		p.ids[v] = p.n.AddPi()
		return
	}
	p.vis(a)
	p.vis(b)
	p.ids[v] = p.n.AddNode(p.and, p.lit(a), p.lit(b))
}

func (p *mapper) lit(m z.Lit) int {
	v := m.Var()
	if m.IsPos() {
		return p.ids[v]
	}
	if p.invs[v] == -1 {
		p.invs[v] = p.n.AddNode(p.inv, p.ids[v])
	}
	return p.invs[v]
}

// FromAiger maps the outputs of a combinational aiger object.
func FromAiger(a *aiger.T, gl *genlib.Library, opts Options) (*ntk.Ntk, error) {
	if len(a.Latches) != 0 {
		return nil, errors.Wrapf(ErrSequential, "%d latches", len(a.Latches))
	}
	return Map(a.S, a.S.T, a.Inputs, a.Outputs, gl, opts)
}

// FromC maps the cone of outs in c.
func FromC(c *logic.C, ins, outs []z.Lit, gl *genlib.Library, opts Options) (*ntk.Ntk, error) {
	return Map(c, c.T, ins, outs, gl, opts)
}

// Read reads an aiger file from r, in binary format if binary is set and
// in ascii format otherwise, and maps it.
func Read(r io.Reader, binary bool, gl *genlib.Library, opts Options) (*ntk.Ntk, error) {
	var a *aiger.T
	var err error
	if binary {
		a, err = aiger.ReadBinary(r)
	} else {
		a, err = aiger.ReadAscii(r)
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading aiger")
	}
	return FromAiger(a, gl, opts)
}
