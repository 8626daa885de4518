// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command scl runs gate sizing passes on mapped networks.
//
//	scl --lib cells.yaml <cmd> [options] args
//	<cmd> may be
//		minsize   resize every gate to the smallest (or --max largest) cell of its class
//		sizes     print the distribution of gates over cell sizes
//		constr    read a timing constraint file and print the result
//
// Networks are read from .yaml files or mapped from .aag/.aig and-inverter
// graphs; any of them may be compressed with gzip (.gz) or bzip2 (.bz2).
// A path of "-" reads yaml from standard input.
package main
