// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scl

import (
	"fmt"

	"github.com/bxli2015/scl/ntk"
)

// TransferGates binds every logic node of old to the gate of its copy in
// sized, a copy of old without barrier buffers.  copies[i] is the id in
// sized of object i of old, or -1 if object i was not copied.
func TransferGates(old, sized *ntk.Ntk, copies []int) {
	if old.BarBufNum() == 0 {
		panic("network has no barrier buffers")
	}
	if sized.BarBufNum() != 0 {
		panic("sized copy has barrier buffers")
	}
	for _, id := range old.Nodes(nil) {
		c := copies[id]
		if c < 0 {
			continue
		}
		if c >= sized.ObjNumMax() || sized.Type(c) != ntk.Node {
			panic(fmt.Sprintf("copy %d of node %d is not a node of the sized copy", c, id))
		}
		old.SetGate(id, sized.Gate(c))
	}
}
