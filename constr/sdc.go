// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package constr

import (
	"bufio"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ReadSDC reads the SDC commands create_clock, set_max_fanout,
// set_max_transition, set_driving_cell and set_load from r into c.
// set_input_delay and set_output_delay are accepted and ignored, other
// commands are reported and skipped.  Lines ending in a backslash continue
// on the next line and '#' starts a comment.
//
// Object lists are not supported: a value applies to the whole design.
func ReadSDC(r io.Reader, c *Constraints) error {
	sc := bufio.NewScanner(r)
	line, start := 0, 0
	var cmd strings.Builder
	for sc.Scan() {
		line++
		text := sc.Text()
		if cmd.Len() == 0 {
			start = line
		}
		if strings.HasSuffix(text, "\\") {
			cmd.WriteString(strings.TrimSuffix(text, "\\"))
			cmd.WriteByte(' ')
			continue
		}
		cmd.WriteString(text)
		err := sdcCommand(cmd.String(), start, c)
		cmd.Reset()
		if err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return sdcCommand(cmd.String(), start, c)
}

func sdcCommand(text string, line int, c *Constraints) error {
	args, err := shlex.Split(text)
	if err != nil {
		return errors.Wrapf(err, "line %d", line)
	}
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "create_clock":
		i := option(args, "-period")
		if i < 0 {
			return errors.Wrapf(ErrMissingArg, "line %d: create_clock -period", line)
		}
		v, err := number(args, i+1, line)
		if err != nil {
			return err
		}
		c.ClockPeriod = v
		log.Debugf("setting clock period to be %f", v)
	case "set_max_fanout":
		v, err := number(args, 1, line)
		if err != nil {
			return err
		}
		c.MaxFanout = v
	case "set_max_transition":
		v, err := number(args, 1, line)
		if err != nil {
			return err
		}
		c.MaxTrans = v
	case "set_load":
		v, err := number(args, 1, line)
		if err != nil {
			return err
		}
		c.MaxLoad = v
	case "set_driving_cell":
		i := option(args, "-lib_cell")
		if i < 0 || i+1 >= len(args) {
			return errors.Wrapf(ErrMissingArg, "line %d: set_driving_cell -lib_cell", line)
		}
		c.DrivingCell = args[i+1]
	case "set_input_delay", "set_output_delay":
	default:
		log.Infof("line %d: unsupported SDC command %q", line, args[0])
	}
	return nil
}

func option(args []string, name string) int {
	for i, a := range args {
		if a == name {
			return i
		}
	}
	return -1
}
