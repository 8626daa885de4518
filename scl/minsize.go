// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scl

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bxli2015/scl/lib"
	"github.com/bxli2015/scl/ntk"
)

// FindMaxAreaCell returns the member of the ring starting at head with the
// largest area.  Among members of equal area the first one met wins.
func FindMaxAreaCell(l *lib.Lib, head int) int {
	best := head
	area := l.Cell(head).Area
	for i := l.Next(head); i != head; i = l.Next(i) {
		if a := l.Cell(i).Area; area < a {
			area = a
			best = i
		}
	}
	return best
}

// FindMinAreas maps each cell of l to the representative of its class:
// the head of its ring, or with useMax the largest member.
func FindMinAreas(l *lib.Lib, useMax bool) []int {
	reprs := make([]int, l.Len())
	for i := range reprs {
		reprs[i] = -1
	}
	var ring []int
	for _, head := range l.Classes() {
		best := head
		if useMax {
			best = FindMaxAreaCell(l, head)
		}
		ring = l.Ring(head, ring)
		for _, id := range ring {
			reprs[id] = best
		}
	}
	return reprs
}

// Minsize binds every logic node of n to the representative of its cell's
// class as given by FindMinAreas.  It returns the number of nodes whose new
// cell has no gate in the gate library of n, see ToGates.
func Minsize(l *lib.Lib, n *ntk.Ntk, useMax bool) (int, error) {
	reprs := FindMinAreas(l, useMax)
	if err := ToCells(l, n); err != nil {
		return 0, err
	}
	cells := n.Cells()
	changed := 0
	for _, id := range n.Nodes(nil) {
		c := cells[id]
		checkCell(l, c)
		r := reprs[c]
		checkCell(l, r)
		if r != c {
			changed++
		}
		cells[id] = r
	}
	log.Debugf("minsize: resized %d gates", changed)
	return ToGates(l, n), nil
}

// CountMinSize returns the number of logic nodes of n whose cell is already
// the representative of its class.  n must be in cell form, see ToCells,
// and is left in cell form; the caller converts back with ToGates.
func CountMinSize(l *lib.Lib, n *ntk.Ntk, useMax bool) int {
	reprs := FindMinAreas(l, useMax)
	cells := n.Cells()
	count := 0
	for _, id := range n.Nodes(nil) {
		c := cells[id]
		if reprs[c] == c {
			count++
		}
	}
	return count
}

func checkCell(l *lib.Lib, c int) {
	if c < 0 || c >= l.Len() {
		panic(fmt.Sprintf("cell id %d out of range [0, %d)", c, l.Len()))
	}
}
