// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package lib implements a read-only standard-cell library index.
//
// Cells are kept in a dense arena indexed by id.  Cells implementing the
// same Boolean function at different drive strengths form a class, which is
// represented as a ring: each cell stores the id of the next member of its
// class, and following next from any member visits every member exactly
// once before returning.  The first declared member of a class is the head
// of its ring.
//
// Libraries are built once with New or read from YAML with Read and are
// never mutated afterwards.
package lib
