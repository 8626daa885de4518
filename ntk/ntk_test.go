// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ntk

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bxli2015/scl/genlib"
)

func testLib(t *testing.T) *genlib.Library {
	g, err := genlib.New("t", []genlib.Gate{
		{Name: "BUF", NIn: 1, Area: 1},
		{Name: "AND2", NIn: 2, Area: 2}}, "BUF")
	require.NoError(t, err)
	return g
}

func TestBuild(t *testing.T) {
	gl := testLib(t)
	n := New(gl)
	a, b := n.AddPi(), n.AddPi()
	g := n.AddNode(gl.ReadGateByName("AND2"), a, b)
	bb := n.AddBarBuf(g)
	o := n.AddPo(bb)

	assert.Equal(t, 5, n.ObjNumMax())
	assert.Equal(t, []int{g}, n.Nodes(nil))
	assert.Equal(t, []int{bb}, n.BarBufs(nil))
	assert.Equal(t, []int{o}, n.Pos(nil))
	assert.Equal(t, 1, n.BarBufNum())
	assert.Equal(t, 2, n.FaninNum(g))
	assert.Equal(t, BarBuf, n.Type(bb))
	assert.Nil(t, n.Gate(bb))

	assert.Panics(t, func() { n.AddNode(gl.ReadGateByName("AND2"), a) })
	assert.Panics(t, func() { n.AddPo(7) })
	assert.Panics(t, func() { n.AddBarBuf(o) })
}

func TestCellForm(t *testing.T) {
	gl := testLib(t)
	n := New(gl)
	a := n.AddPi()
	n.AddNode(gl.ReadGateByName("BUF"), a)

	assert.False(t, n.InCellForm())
	assert.Panics(t, func() { n.Cells() })
	assert.Panics(t, func() { n.DetachCells() })
	assert.Panics(t, func() { n.AttachCells([]int{-1}) })

	n.AttachCells([]int{-1, 3})
	assert.True(t, n.InCellForm())
	assert.Panics(t, func() { n.AttachCells([]int{-1, 3}) })
	n.Cells()[1] = 4
	assert.Equal(t, []int{-1, 4}, n.DetachCells())
	assert.False(t, n.InCellForm())
}

const ntkYAML = `
library: t
objs:
- type: pi
- type: pi
- {type: node, fanins: [0, 1], gate: AND2}
- {type: barbuf, fanins: [2]}
- {type: po, fanins: [3]}
`

func TestYAMLRoundTrip(t *testing.T) {
	gl := testLib(t)
	n, err := ReadYAML(strings.NewReader(ntkYAML), gl)
	require.NoError(t, err)
	assert.Equal(t, 5, n.ObjNumMax())
	assert.Equal(t, "AND2", n.Gate(2).Name)

	var buf bytes.Buffer
	require.NoError(t, n.WriteYAML(&buf))
	m, err := ReadYAML(&buf, gl)
	require.NoError(t, err)
	require.Equal(t, n.ObjNumMax(), m.ObjNumMax())
	for i := 0; i < n.ObjNumMax(); i++ {
		assert.Equal(t, n.Type(i), m.Type(i))
		assert.Equal(t, n.Gate(i), m.Gate(i))
		assert.Equal(t, n.Fanins(i), m.Fanins(i))
	}

	n.AttachCells(make([]int, n.ObjNumMax()))
	assert.Equal(t, ErrCellForm, n.WriteYAML(&buf))
}

func TestReadYAMLErrors(t *testing.T) {
	gl := testLib(t)
	cases := []struct {
		src string
		err error
	}{
		{"objs:\n- {type: wire}\n", ErrBadType},
		{"objs:\n- {type: po, fanins: [0]}\n", ErrBadFanin},
		{"objs:\n- {type: pi}\n- {type: node, fanins: [0], gate: NOT}\n", ErrNoGate},
		{"objs:\n- {type: pi}\n- {type: node, fanins: [0], gate: AND2}\n", ErrBadFanins},
		{"objs:\n- {type: pi, fanins: [0]}\n", ErrBadFanin},
		{"objs:\n- {type: pi}\n- {type: po}\n", ErrBadFanins},
		{"objs:\n- {type: pi}\n- {type: barbuf, fanins: [0], gate: BUF}\n", ErrBoundBuf},
	}
	for i, c := range cases {
		_, err := ReadYAML(strings.NewReader(c.src), gl)
		if errors.Cause(err) != c.err {
			t.Errorf("case %d: got %v, want %v", i, err, c.err)
		}
	}
}
