// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scl

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bxli2015/scl/ntk"
)

// ExtractBarBufs binds every barrier buffer of n to the buffer of its gate
// library and returns their ids for InsertBarBufs.  It panics if a barrier
// buffer is already bound.
func ExtractBarBufs(n *ntk.Ntk) ([]int, error) {
	buf := n.Library().Buf()
	if buf == nil {
		log.Warn(ErrNoBuffer)
		return nil, ErrNoBuffer
	}
	bufs := n.BarBufs(make([]int, 0, n.BarBufNum()))
	for _, id := range bufs {
		if g := n.Gate(id); g != nil {
			panic(fmt.Sprintf("barrier buffer %d already bound to %s", id, g.Name))
		}
		n.SetGate(id, buf)
	}
	return bufs, nil
}

// InsertBarBufs unbinds the barrier buffers listed in bufs.
func InsertBarBufs(n *ntk.Ntk, bufs []int) {
	for _, id := range bufs {
		n.SetGate(id, nil)
	}
}
