// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bxli2015/scl/lib"
	"github.com/bxli2015/scl/ntk"
	"github.com/bxli2015/scl/scl"
)

type minsizeResult struct {
	nodes   int
	before  int
	after   int
	missing int
}

// minsize runs a complete resizing pass on n, binding its barrier buffers
// for the duration of the pass.
func minsize(l *lib.Lib, n *ntk.Ntk, useMax bool) (*minsizeResult, error) {
	bufs, err := scl.ExtractBarBufs(n)
	if err != nil {
		return nil, err
	}
	defer scl.InsertBarBufs(n, bufs)
	res := &minsizeResult{nodes: len(n.Nodes(nil))}
	if err := scl.ToCells(l, n); err != nil {
		return nil, err
	}
	res.before = scl.CountMinSize(l, n, useMax)
	scl.ToGates(l, n)
	res.missing, err = scl.Minsize(l, n, useMax)
	if err != nil {
		return nil, err
	}
	if err := scl.ToCells(l, n); err != nil {
		return nil, err
	}
	res.after = scl.CountMinSize(l, n, useMax)
	scl.ToGates(l, n)
	return res, nil
}

func newMinsizeCmd(e *env) *cobra.Command {
	var useMax bool
	var out string
	cmd := &cobra.Command{
		Use:   "minsize [flags] network",
		Short: "resize each gate to the smallest cell of its class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.load(); err != nil {
				return err
			}
			n, err := readNtk(args[0], e.glib, e.opts)
			if err != nil {
				return err
			}
			res, err := minsize(e.lib, n, useMax)
			if err != nil {
				return err
			}
			log.Infof("%d gates, %d at target size before, %d after", res.nodes, res.before, res.after)
			if res.missing != 0 {
				log.Warnf("%d gates left unbound", res.missing)
			}
			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return n.WriteYAML(w)
		},
	}
	cmd.Flags().BoolVar(&useMax, "max", false, "use the largest cell of each class instead")
	cmd.Flags().StringVarP(&out, "output", "o", "", "write the resized network here (default stdout)")
	return cmd
}
