// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/bxli2015/scl/scl"
)

func newSizesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sizes network",
		Short: "print the distribution of gates over cell sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.load(); err != nil {
				return err
			}
			n, err := readNtk(args[0], e.glib, e.opts)
			if err != nil {
				return err
			}
			_, err = scl.PrintGateSizes(e.lib, n, cmd.OutOrStdout())
			return err
		},
	}
}
