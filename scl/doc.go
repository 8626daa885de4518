// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package scl implements gate sizing passes over mapped networks.
//
// A pass converts the gate handles of a network into cell ids of a
// standard-cell library (ToCells), works on the cell ids only, and converts
// back (ToGates).  Minsize replaces every gate by the smallest, or largest,
// member of its library class.  GateSizes reports how the gates of a
// network are distributed over size ranks.
//
// Barrier buffers are placeholders that are not bound to a gate.  When they
// must carry a gate during a pass, ExtractBarBufs binds them to the library
// buffer and InsertBarBufs undoes exactly that binding.
//
// None of the functions in this package are safe for concurrent use on the
// same network.
package scl
