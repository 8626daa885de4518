// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import (
	"strings"
	"testing"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bxli2015/scl/genlib"
	"github.com/bxli2015/scl/lib"
	"github.com/bxli2015/scl/ntk"
	"github.com/bxli2015/scl/scl"
)

func testLibs(t *testing.T) (*lib.Lib, *genlib.Library) {
	l, err := lib.New("aig", []lib.Cell{
		{Name: "BUF_X1", Class: "buf", NIn: 1, Area: 1, Order: 0},
		{Name: "INV_X1", Class: "inv", NIn: 1, Area: 0.5, Order: 0},
		{Name: "INV_X2", Class: "inv", NIn: 1, Area: 1, Order: 1},
		{Name: "AND2_X1", Class: "and2", NIn: 2, Area: 1.5, Order: 0},
		{Name: "AND2_X2", Class: "and2", NIn: 2, Area: 2.5, Order: 1}})
	require.NoError(t, err)
	gl, err := genlib.FromLib(l, "BUF_X1")
	require.NoError(t, err)
	return l, gl
}

func count(n *ntk.Ntk, name string) int {
	k := 0
	for _, id := range n.Nodes(nil) {
		if n.Gate(id).Name == name {
			k++
		}
	}
	return k
}

// !(a & !b)
const nimpl = "aag 3 2 0 1 1\n2\n4\n7\n6 2 5\n"

func TestReadAscii(t *testing.T) {
	_, gl := testLibs(t)
	n, err := Read(strings.NewReader(nimpl), false, gl, DefaultOptions)
	require.NoError(t, err)
	assert.Equal(t, 1, count(n, "AND2_X1"))
	assert.Equal(t, 2, count(n, "INV_X1"))
	pos := n.Pos(nil)
	require.Len(t, pos, 1)
	drv := n.Fanins(pos[0])[0]
	assert.Equal(t, "INV_X1", n.Gate(drv).Name)
	assert.Equal(t, ntk.Pi, n.Type(0))
	assert.Equal(t, ntk.Pi, n.Type(1))

	_, err = Read(strings.NewReader(nimpl), true, gl, DefaultOptions)
	assert.Error(t, err)
}

func TestFromC(t *testing.T) {
	l, gl := testLibs(t)
	c := logic.NewC()
	a, b, d := c.Lit(), c.Lit(), c.Lit()
	x := c.Xor(a, b)
	y := c.And(x, d.Not())
	opts := DefaultOptions
	opts.BarBufs = true
	n, err := FromC(c, []z.Lit{a, b, d}, []z.Lit{x, y}, gl, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, n.BarBufNum())
	assert.Len(t, n.Pos(nil), 2)
	for _, id := range n.Nodes(nil) {
		assert.Equal(t, n.Gate(id).NIn, n.FaninNum(id))
	}

	bufs, err := scl.ExtractBarBufs(n)
	require.NoError(t, err)
	missing, err := scl.Minsize(l, n, true)
	require.NoError(t, err)
	assert.Equal(t, 0, missing)
	scl.InsertBarBufs(n, bufs)
	assert.Equal(t, 0, count(n, "AND2_X1"))
	assert.Equal(t, 0, count(n, "INV_X1"))
	for _, id := range n.BarBufs(nil) {
		assert.Nil(t, n.Gate(id))
	}
}

func TestMapErrors(t *testing.T) {
	_, gl := testLibs(t)
	c := logic.NewC()
	a := c.Lit()

	_, err := FromC(c, []z.Lit{a}, []z.Lit{c.T}, gl, DefaultOptions)
	assert.Equal(t, ErrConstOutput, errors.Cause(err))

	_, err = FromC(c, []z.Lit{a}, []z.Lit{a}, gl, Options{And: "NAND2", Inv: "INV_X1"})
	assert.Equal(t, ErrNoGate, errors.Cause(err))
	_, err = FromC(c, []z.Lit{a}, []z.Lit{a}, gl, Options{And: "AND2_X1", Inv: "AND2_X1"})
	assert.Equal(t, ErrNoGate, errors.Cause(err))

	seq := "aag 1 0 1 1 0\n2 3\n2\n"
	_, err = Read(strings.NewReader(seq), false, gl, DefaultOptions)
	assert.Equal(t, ErrSequential, errors.Cause(err))
}
