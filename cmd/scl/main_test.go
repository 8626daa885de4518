// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cellsYAML = `name: t
buffer: BUF_X1
cells:
- {name: BUF_X1, class: buf, inputs: 1, area: 1, order: 0}
- {name: INV_X1, class: inv, inputs: 1, area: 0.5, order: 0}
- {name: INV_X2, class: inv, inputs: 1, area: 1, order: 1}
- {name: AND2_X1, class: and2, inputs: 2, area: 1.5, order: 0}
- {name: AND2_X2, class: and2, inputs: 2, area: 2.5, order: 1}
`

const netYAML = `objs:
- type: pi
- type: pi
- {type: node, fanins: [0, 1], gate: AND2_X2}
- {type: node, fanins: [2], gate: INV_X2}
- {type: barbuf, fanins: [3]}
- {type: po, fanins: [4]}
`

func write(t *testing.T, dir, name, data string) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMinsizeCmd(t *testing.T) {
	dir := t.TempDir()
	libPath := write(t, dir, "cells.yaml", cellsYAML)
	netPath := write(t, dir, "net.yaml", netYAML)

	out, err := run(t, "--lib", libPath, "minsize", netPath)
	require.NoError(t, err)
	assert.Contains(t, out, "AND2_X1")
	assert.Contains(t, out, "INV_X1")
	assert.NotContains(t, out, "AND2_X2")
	assert.NotContains(t, out, "BUF_X1")

	resized := filepath.Join(dir, "out.yaml")
	_, err = run(t, "--lib", libPath, "minsize", "--max", "-o", resized, netPath)
	require.NoError(t, err)
	data, err := os.ReadFile(resized)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AND2_X2")
	assert.Contains(t, string(data), "INV_X2")
}

func nimplGz(t *testing.T) string {
	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, err := w.Write([]byte("aag 3 2 0 1 1\n2\n4\n7\n6 2 5\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return gz.String()
}

func TestSizesCmd(t *testing.T) {
	dir := t.TempDir()
	libPath := write(t, dir, "cells.yaml", cellsYAML)
	netPath := write(t, dir, "nimpl.aag.gz", nimplGz(t))

	out, err := run(t, "--lib", libPath, "sizes", netPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Total gates = 3.  Total area = 2.5\n"), out)
	assert.Contains(t, out, "Cell size = 0.  Count =      3  (100.0 %)")
}

func TestSizesCmdSymlink(t *testing.T) {
	dir := t.TempDir()
	libPath := write(t, dir, "cells.yaml", cellsYAML)
	target := write(t, dir, "nimpl.data", nimplGz(t))
	link := filepath.Join(dir, "nimpl.aag.gz")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	out, err := run(t, "--lib", libPath, "sizes", link)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Total gates = 3.  Total area = 2.5\n"), out)
}

func TestCmdErrors(t *testing.T) {
	dir := t.TempDir()
	netPath := write(t, dir, "net.yaml", netYAML)
	_, err := run(t, "minsize", netPath)
	assert.Error(t, err)

	libPath := write(t, dir, "cells.yaml", cellsYAML)
	_, err = run(t, "--lib", libPath, "sizes", write(t, dir, "net.blif", ""))
	assert.Error(t, err)

	bound := write(t, dir, "bound.yaml", "objs:\n- type: pi\n- {type: barbuf, fanins: [0], gate: BUF_X1}\n- {type: po, fanins: [1]}\n")
	assert.NotPanics(t, func() {
		_, err = run(t, "--lib", libPath, "minsize", bound)
	})
	assert.Error(t, err)
}

func TestConstrCmd(t *testing.T) {
	dir := t.TempDir()
	p := write(t, dir, "design.sdc", "create_clock -period 4 [get_ports clk]\nset_max_fanout 8 [current_design]\n")
	out, err := run(t, "constr", "--sdc", p)
	require.NoError(t, err)
	assert.Equal(t, "clockPeriod: 4\nmaxFanout: 8\n", out)

	p = write(t, dir, "design.constr", "set_driving_cell INV_X1\n")
	out, err = run(t, "constr", p)
	require.NoError(t, err)
	assert.Equal(t, "drivingCell: INV_X1\n", out)
}
