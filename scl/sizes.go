// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package scl

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bxli2015/scl/lib"
	"github.com/bxli2015/scl/ntk"
)

// SizeReport gives the number and area of gates per cell size rank.
type SizeReport struct {
	Gates  int
	Area   float64
	Counts [lib.MaxOrder]int
	Areas  [lib.MaxOrder]float64
}

// Bucket is one non-empty size rank of a SizeReport.
type Bucket struct {
	Order int
	Count int
	Area  float64
}

// GateSizes computes the size report of the logic nodes of n, where cells
// gives the cell id of each node.
func GateSizes(l *lib.Lib, n *ntk.Ntk, cells []int) *SizeReport {
	r := &SizeReport{}
	for _, id := range n.Nodes(nil) {
		c := l.Cell(cells[id])
		if c.Order >= lib.MaxOrder {
			panic(fmt.Sprintf("cell %s has order %d", c.Name, c.Order))
		}
		r.Counts[c.Order]++
		r.Areas[c.Order] += c.Area
		r.Area += c.Area
		r.Gates++
	}
	return r
}

// Buckets returns the non-empty size ranks in increasing order.
func (r *SizeReport) Buckets() []Bucket {
	var bs []Bucket
	for i, k := range r.Counts {
		if k == 0 {
			continue
		}
		bs = append(bs, Bucket{Order: i, Count: k, Area: r.Areas[i]})
	}
	return bs
}

// WriteTo writes r as a table to w.
func (r *SizeReport) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Total gates = %d.  Total area = %.1f\n", r.Gates, r.Area)
	for _, b := range r.Buckets() {
		fmt.Fprintf(&buf, "Cell size = %d.  ", b.Order)
		fmt.Fprintf(&buf, "Count = %6d  ", b.Count)
		fmt.Fprintf(&buf, "(%5.1f %%)   ", 100.0*float64(b.Count)/float64(r.Gates))
		fmt.Fprintf(&buf, "Area = %12.1f  ", b.Area)
		fmt.Fprintf(&buf, "(%5.1f %%)  \n", 100.0*b.Area/r.Area)
	}
	return buf.WriteTo(w)
}

// PrintGateSizes computes the size report of n and writes it to w.  n is
// converted to cell form and back, see ToCells.
func PrintGateSizes(l *lib.Lib, n *ntk.Ntk, w io.Writer) (*SizeReport, error) {
	if err := ToCells(l, n); err != nil {
		return nil, err
	}
	r := GateSizes(l, n, n.Cells())
	ToGates(l, n)
	if _, err := r.WriteTo(w); err != nil {
		return nil, err
	}
	return r, nil
}
