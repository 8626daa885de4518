// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package constr reads timing constraints into a Constraints value.
//
// Two formats are supported: a plain format of one "keyword value" pair
// per line (ReadTimingConstr) and a subset of SDC commands (ReadSDC).
// Constraints are recorded for use by later passes; nothing in this
// module interprets them.
package constr

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Errors related to reading constraints.
var (
	ErrMissingArg = errors.New("missing argument")
	ErrBadNumber  = errors.New("malformed number")
)

// Constraints holds the constraints of one synthesis run.
type Constraints struct {
	ClockPeriod float64 `json:"clockPeriod,omitempty"`
	MaxFanout   float64 `json:"maxFanout,omitempty"`
	MaxTrans    float64 `json:"maxTransition,omitempty"`
	DrivingCell string  `json:"drivingCell,omitempty"`
	MaxLoad     float64 `json:"maxLoad,omitempty"`
}

// ReadTimingConstr reads lines of the form
//
//	set_driving_cell NAME
//	set_load VALUE
//
// from r into c.  Blank lines are skipped; lines with other keywords are
// reported and skipped.
func ReadTimingConstr(r io.Reader, c *Constraints) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fs := strings.Fields(sc.Text())
		if len(fs) == 0 {
			continue
		}
		switch fs[0] {
		case "set_driving_cell":
			if len(fs) < 2 {
				return errors.Wrapf(ErrMissingArg, "line %d: %s", line, fs[0])
			}
			c.DrivingCell = fs[1]
			log.Debugf("setting driving cell to be %q", c.DrivingCell)
		case "set_load":
			v, err := number(fs, 1, line)
			if err != nil {
				return err
			}
			c.MaxLoad = v
			log.Debugf("setting output load to be %f", c.MaxLoad)
		default:
			log.Infof("unrecognized token %q", fs[0])
		}
	}
	return sc.Err()
}

func number(args []string, i, line int) (float64, error) {
	if len(args) <= i {
		return 0, errors.Wrapf(ErrMissingArg, "line %d: %s", line, args[0])
	}
	v, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return 0, errors.Wrapf(ErrBadNumber, "line %d: %s %q", line, args[0], args[i])
	}
	return v, nil
}
