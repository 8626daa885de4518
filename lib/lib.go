// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package lib

import (
	"sort"

	"github.com/pkg/errors"
)

// MaxOrder bounds the size rank of a cell.
const MaxOrder = 64

// Errors related to library construction.
var (
	ErrDupCell       = errors.New("duplicate cell name")
	ErrBadCell       = errors.New("invalid cell")
	ErrArityMismatch = errors.New("class members differ in arity")
)

// Cell is one entry of the library.
type Cell struct {
	ID    int     // dense id, index into the library
	Name  string  // unique name
	Class string  // function class, empty for a class of its own
	NIn   int     // number of inputs
	Area  float64 // positive area
	Order int     // size rank within [0, MaxOrder)
}

// Lib is a standard-cell library partitioned into rings.
type Lib struct {
	name    string
	cells   []Cell
	next    []int // next member in ring
	head    []int // head of ring
	classes []int // heads, in first declaration order
	byName  map[string]int
}

// classKey names a ring.  Cells without a class form their own ring,
// keyed apart from explicit class names.
type classKey struct {
	name    string
	unnamed bool
}

func keyOf(c *Cell) classKey {
	if c.Class == "" {
		return classKey{name: c.Name, unnamed: true}
	}
	return classKey{name: c.Class}
}

// New creates a library from cells.  Cell ids are assigned by position in
// cells; any ID set by the caller is overwritten.  Members of a class are
// linked into a ring by ascending area, equal areas in the order they
// appear, so the head of each ring is its smallest cell.
func New(name string, cells []Cell) (*Lib, error) {
	n := len(cells)
	l := &Lib{
		name:   name,
		cells:  make([]Cell, n),
		next:   make([]int, n),
		head:   make([]int, n),
		byName: make(map[string]int, n)}
	copy(l.cells, cells)
	var keys []classKey
	members := make(map[classKey][]int)
	for i := range l.cells {
		c := &l.cells[i]
		c.ID = i
		if err := check(c); err != nil {
			return nil, err
		}
		if _, dup := l.byName[c.Name]; dup {
			return nil, errors.Wrapf(ErrDupCell, "%q", c.Name)
		}
		l.byName[c.Name] = i
		k := keyOf(c)
		if _, seen := members[k]; !seen {
			keys = append(keys, k)
		}
		members[k] = append(members[k], i)
	}
	for _, k := range keys {
		ring := members[k]
		sort.SliceStable(ring, func(a, b int) bool {
			return l.cells[ring[a]].Area < l.cells[ring[b]].Area
		})
		h := ring[0]
		for j, id := range ring {
			if l.cells[id].NIn != l.cells[h].NIn {
				return nil, errors.Wrapf(ErrArityMismatch, "%q has %d inputs, %q has %d",
					l.cells[id].Name, l.cells[id].NIn, l.cells[h].Name, l.cells[h].NIn)
			}
			l.head[id] = h
			l.next[id] = ring[(j+1)%len(ring)]
		}
		l.classes = append(l.classes, h)
	}
	return l, nil
}

func check(c *Cell) error {
	switch {
	case c.Name == "":
		return errors.Wrapf(ErrBadCell, "cell %d has no name", c.ID)
	case c.NIn < 0:
		return errors.Wrapf(ErrBadCell, "%q: negative arity %d", c.Name, c.NIn)
	case !(c.Area > 0):
		return errors.Wrapf(ErrBadCell, "%q: area %g is not positive", c.Name, c.Area)
	case c.Order < 0 || c.Order >= MaxOrder:
		return errors.Wrapf(ErrBadCell, "%q: order %d out of range", c.Name, c.Order)
	}
	return nil
}

// Name returns the name of the library.
func (l *Lib) Name() string {
	return l.name
}

// Len returns the number of cells in l.
func (l *Lib) Len() int {
	return len(l.cells)
}

// Find returns the id of the cell called name.
func (l *Lib) Find(name string) (int, bool) {
	id, ok := l.byName[name]
	return id, ok
}

// Cell returns the cell with id id.
func (l *Lib) Cell(id int) *Cell {
	return &l.cells[id]
}

// Classes returns the heads of all rings, one per class, in order of the
// first declared member of each class.  The result must not be modified.
func (l *Lib) Classes() []int {
	return l.classes
}

// Next returns the member following id in its ring.
func (l *Lib) Next(id int) int {
	return l.next[id]
}

// Head returns the head of the ring containing id.
func (l *Lib) Head(id int) int {
	return l.head[id]
}

// Ring places the members of the ring containing id in dst, starting
// at id and following the ring order.  The result is placed in dst if
// there is space.
func (l *Lib) Ring(id int, dst []int) []int {
	dst = dst[:0]
	i := id
	for {
		dst = append(dst, i)
		i = l.next[i]
		if i == id {
			return dst
		}
	}
}
