// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scl

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/bxli2015/scl/lib"
	"github.com/bxli2015/scl/ntk"
)

// Errors which abort a pass.
var (
	ErrNoBuffer    = errors.New("cannot find buffer in the current library")
	ErrUnknownCell = errors.New("gate has no cell in the library")
)

// ToCells converts the gate handles of the logic nodes of n into cell ids
// of l and attaches them to n.  Entries of objects which are not logic
// nodes are -1.
//
// The gate library of n must have a buffer that is also a cell of l.  If
// some node's gate is not a cell of l, ToCells returns an error and n is
// left in gate form.
func ToCells(l *lib.Lib, n *ntk.Ntk) error {
	buf := n.Library().Buf()
	if buf == nil {
		log.Warn(ErrNoBuffer)
		return ErrNoBuffer
	}
	if _, ok := l.Find(buf.Name); !ok {
		return errors.Wrapf(ErrUnknownCell, "buffer %q", buf.Name)
	}
	cells := make([]int, n.ObjNumMax())
	for i := range cells {
		cells[i] = -1
	}
	for _, id := range n.Nodes(nil) {
		g := n.Gate(id)
		if g == nil {
			return errors.Wrapf(ErrUnknownCell, "node %d is unbound", id)
		}
		c, ok := l.Find(g.Name)
		if !ok {
			return errors.Wrapf(ErrUnknownCell, "node %d gate %q", id, g.Name)
		}
		cells[id] = c
	}
	n.AttachCells(cells)
	return nil
}

// ToGates binds every logic node of n to the gate named like its cell of l
// and switches n back to gate form.  It returns the number of nodes whose
// cell has no gate in the gate library of n; those nodes are left unbound.
//
// ToGates panics if n is not in cell form or if a cell's arity differs
// from the node's fanin count.
func ToGates(l *lib.Lib, n *ntk.Ntk) int {
	cells := n.Cells()
	glib := n.Library()
	missing, all := 0, 0
	for _, id := range n.Nodes(nil) {
		c := l.Cell(cells[id])
		if c.NIn != n.FaninNum(id) {
			panic(fmt.Sprintf("cell %s has %d inputs, node %d has %d fanins",
				c.Name, c.NIn, id, n.FaninNum(id)))
		}
		g := glib.ReadGateByName(c.Name)
		n.SetGate(id, g)
		if g == nil {
			missing++
		}
		all++
	}
	if missing != 0 {
		log.Warnf("could not find %d (out of %d) gates in the current library", missing, all)
	}
	n.DetachCells()
	return missing
}
