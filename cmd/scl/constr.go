// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"os"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"

	"github.com/bxli2015/scl/constr"
)

func newConstrCmd() *cobra.Command {
	var sdc bool
	cmd := &cobra.Command{
		Use:   "constr [--sdc] file",
		Short: "read timing constraints and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			var c constr.Constraints
			if sdc {
				err = constr.ReadSDC(f, &c)
			} else {
				err = constr.ReadTimingConstr(f, &c)
			}
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(&c)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&sdc, "sdc", false, "read SDC commands instead of the plain format")
	return cmd
}
