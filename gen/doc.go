// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for random cell libraries and
// mapped networks.
//
// The generators share a package random number generator which may be
// seeded with Seed, so that runs are reproducible.
package gen
