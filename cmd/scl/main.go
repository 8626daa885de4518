// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bxli2015/scl/aig"
	"github.com/bxli2015/scl/genlib"
	"github.com/bxli2015/scl/lib"
)

// env is what every command needs: the cell library, the gate library
// derived from it and the options for mapping aiger inputs.
type env struct {
	libPath string
	opts    aig.Options
	lib     *lib.Lib
	glib    *genlib.Library
}

func (e *env) load() error {
	if e.libPath == "" {
		return errors.New("no cell library, use --lib")
	}
	l, buf, err := lib.ReadFile(e.libPath)
	if err != nil {
		return err
	}
	gl, err := genlib.FromLib(l, buf)
	if err != nil {
		return err
	}
	log.Debugf("read library %s: %d cells in %d classes", l.Name(), l.Len(), len(l.Classes()))
	e.lib, e.glib = l, gl
	return nil
}

func newRootCmd() *cobra.Command {
	e := &env{opts: aig.DefaultOptions}
	rootCmd := &cobra.Command{
		Use:           "scl",
		Short:         "gate sizing on mapped networks",
		Long:          `Resize and report the standard cells of mapped combinational networks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.Bool("debug", false, "enable debug logging")
	pf.StringVar(&e.libPath, "lib", "", "cell library (yaml)")
	addMapFlags(pf, &e.opts)

	rootCmd.AddCommand(newMinsizeCmd(e), newSizesCmd(e), newConstrCmd())
	return rootCmd
}

func addMapFlags(fs *pflag.FlagSet, opts *aig.Options) {
	fs.StringVar(&opts.And, "and", opts.And, "and gate used when mapping aiger files")
	fs.StringVar(&opts.Inv, "inv", opts.Inv, "inverter used when mapping aiger files")
	fs.BoolVar(&opts.BarBufs, "barbufs", opts.BarBufs, "put a barrier buffer before each output when mapping aiger files")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
