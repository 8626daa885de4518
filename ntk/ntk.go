// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package ntk implements mapped combinational networks.
//
// A network is a dense array of objects in topological order: an object's
// fanins always have smaller ids.  Logic nodes are bound to a gate of the
// network's gate library.  Barrier buffers are structural pass-through
// placeholders which are normally left unbound.
//
// The binding of logic nodes has two mutually exclusive forms.  Outside of
// a sizing pass every node refers to a *genlib.Gate.  During a pass, a
// dense cell id array is attached to the network with AttachCells and
// removed again with DetachCells; while it is attached the gate handles
// are stale.
package ntk

import (
	"fmt"

	"github.com/bxli2015/scl/genlib"
)

// Type is the kind of a network object.
type Type int

// Object kinds.
const (
	Pi Type = iota
	Po
	Node
	BarBuf
)

func (t Type) String() string {
	switch t {
	case Pi:
		return "pi"
	case Po:
		return "po"
	case Node:
		return "node"
	case BarBuf:
		return "barbuf"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

type obj struct {
	typ    Type
	fanins []int
	gate   *genlib.Gate
}

// Ntk is a mapped network.
type Ntk struct {
	objs     []obj
	glib     *genlib.Library
	nBarBufs int
	cells    []int // cell ids, non-nil iff in cell form
}

// New creates an empty network whose nodes are bound to gates of glib.
func New(glib *genlib.Library) *Ntk {
	return &Ntk{glib: glib, objs: make([]obj, 0, 128)}
}

// Library returns the gate library of n.
func (n *Ntk) Library() *genlib.Library {
	return n.glib
}

// ObjNumMax returns one more than the largest object id.
func (n *Ntk) ObjNumMax() int {
	return len(n.objs)
}

func (n *Ntk) add(t Type, g *genlib.Gate, fanins []int) int {
	id := len(n.objs)
	for _, f := range fanins {
		if f < 0 || f >= id {
			panic(fmt.Sprintf("fanin %d of object %d is not defined", f, id))
		}
		if n.objs[f].typ == Po {
			panic(fmt.Sprintf("fanin %d of object %d is an output", f, id))
		}
	}
	fs := make([]int, len(fanins))
	copy(fs, fanins)
	n.objs = append(n.objs, obj{typ: t, fanins: fs, gate: g})
	if n.cells != nil {
		n.cells = append(n.cells, -1)
	}
	return id
}

// AddPi adds a primary input.
func (n *Ntk) AddPi() int {
	return n.add(Pi, nil, nil)
}

// AddPo adds a primary output driven by fanin.
func (n *Ntk) AddPo(fanin int) int {
	return n.add(Po, nil, []int{fanin})
}

// AddNode adds a logic node bound to g.  It panics if g does not have one
// input per fanin.
func (n *Ntk) AddNode(g *genlib.Gate, fanins ...int) int {
	if g != nil && g.NIn != len(fanins) {
		panic(fmt.Sprintf("gate %s has %d inputs, node has %d fanins", g.Name, g.NIn, len(fanins)))
	}
	return n.add(Node, g, fanins)
}

// AddBarBuf adds an unbound barrier buffer driven by fanin.
func (n *Ntk) AddBarBuf(fanin int) int {
	n.nBarBufs++
	return n.add(BarBuf, nil, []int{fanin})
}

// Type returns the kind of object id.
func (n *Ntk) Type(id int) Type {
	return n.objs[id].typ
}

// FaninNum returns the number of fanins of id.
func (n *Ntk) FaninNum(id int) int {
	return len(n.objs[id].fanins)
}

// Fanins returns the fanins of id.  The result must not be modified.
func (n *Ntk) Fanins(id int) []int {
	return n.objs[id].fanins
}

// Gate returns the gate bound to id, or nil if it is unbound.
func (n *Ntk) Gate(id int) *genlib.Gate {
	return n.objs[id].gate
}

// SetGate binds id to g.  A nil g unbinds id.
func (n *Ntk) SetGate(id int, g *genlib.Gate) {
	n.objs[id].gate = g
}

// BarBufNum returns the number of barrier buffers in n.
func (n *Ntk) BarBufNum() int {
	return n.nBarBufs
}

// Nodes places the ids of all logic nodes of n, excluding barrier buffers,
// in dst in increasing order.  The result is placed in dst if there is
// space.
func (n *Ntk) Nodes(dst []int) []int {
	return n.collect(Node, dst)
}

// BarBufs places the ids of all barrier buffers of n in dst in increasing
// order.  The result is placed in dst if there is space.
func (n *Ntk) BarBufs(dst []int) []int {
	return n.collect(BarBuf, dst)
}

// Pos places the ids of all primary outputs in dst.
func (n *Ntk) Pos(dst []int) []int {
	return n.collect(Po, dst)
}

func (n *Ntk) collect(t Type, dst []int) []int {
	dst = dst[:0]
	for i := range n.objs {
		if n.objs[i].typ == t {
			dst = append(dst, i)
		}
	}
	return dst
}

// AttachCells switches n to cell form with the cell id array cells, which
// must have one entry per object id.  It panics if n is already in cell
// form.
func (n *Ntk) AttachCells(cells []int) {
	if n.cells != nil {
		panic("network already in cell form")
	}
	if len(cells) != len(n.objs) {
		panic(fmt.Sprintf("cell array has %d entries for %d objects", len(cells), len(n.objs)))
	}
	n.cells = cells
}

// DetachCells removes and returns the cell id array.  It panics if n is
// not in cell form.
func (n *Ntk) DetachCells() []int {
	if n.cells == nil {
		panic("network not in cell form")
	}
	cells := n.cells
	n.cells = nil
	return cells
}

// Cells returns the attached cell id array, which may be modified in place.
// It panics if n is not in cell form.
func (n *Ntk) Cells() []int {
	if n.cells == nil {
		panic("network not in cell form")
	}
	return n.cells
}

// InCellForm returns whether a cell id array is attached to n.
func (n *Ntk) InCellForm() bool {
	return n.cells != nil
}
