// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/bxli2015/scl/genlib"
	"github.com/bxli2015/scl/lib"
	"github.com/bxli2015/scl/ntk"
)

/// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// BufName is the name of the buffer cell of libraries made by RandLib.
const BufName = "BUF_X1"

// RandLib generates a library with a buffer class and n further classes of
// 1 to maxSize members each.  Areas are multiples of 0.5, so classes often
// contain members of equal area.
func RandLib(n, maxSize int) (*lib.Lib, error) {
	mu.Lock() // for package rng
	defer mu.Unlock()
	cells := []lib.Cell{
		{Name: BufName, Class: "buf", NIn: 1, Area: 1, Order: 0},
		{Name: "BUF_X2", Class: "buf", NIn: 1, Area: 2, Order: 1}}
	for k := 0; k < n; k++ {
		nin := rng.Intn(4)
		m := 1 + rng.Intn(maxSize)
		for j := 0; j < m && j < lib.MaxOrder; j++ {
			cells = append(cells, lib.Cell{
				Name:  fmt.Sprintf("F%d_X%d", k, j+1),
				Class: fmt.Sprintf("f%d", k),
				NIn:   nin,
				Area:  float64(rng.Intn(8)+1) * 0.5,
				Order: j})
		}
	}
	return lib.New(fmt.Sprintf("rand%d", n), cells)
}

// RandNtk generates a network over gl with nPis inputs, nNodes logic
// nodes bound to random cells of l and nBufs unbound barrier buffers.
// Every gate of l must be in gl and nPis must be positive.
func RandNtk(l *lib.Lib, gl *genlib.Library, nPis, nNodes, nBufs int) *ntk.Ntk {
	if nPis <= 0 {
		panic("RandNtk needs at least one input")
	}
	mu.Lock()
	defer mu.Unlock()
	n := ntk.New(gl)
	srcs := make([]int, 0, nPis+nNodes+nBufs)
	for i := 0; i < nPis; i++ {
		srcs = append(srcs, n.AddPi())
	}
	for nNodes > 0 || nBufs > 0 {
		if nBufs > 0 && (nNodes == 0 || rng.Intn(nNodes+nBufs) < nBufs) {
			nBufs--
			srcs = append(srcs, n.AddBarBuf(srcs[rng.Intn(len(srcs))]))
			continue
		}
		c := l.Cell(rng.Intn(l.Len()))
		fs := make([]int, c.NIn)
		for i := range fs {
			fs[i] = srcs[rng.Intn(len(srcs))]
		}
		g := gl.ReadGateByName(c.Name)
		if g == nil {
			panic(fmt.Sprintf("gate %s not in %s", c.Name, gl.Name()))
		}
		srcs = append(srcs, n.AddNode(g, fs...))
		nNodes--
	}
	for _, id := range srcs[nPis:] {
		if rng.Intn(4) == 0 {
			n.AddPo(id)
		}
	}
	return n
}
