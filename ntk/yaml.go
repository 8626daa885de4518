// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package ntk

import (
	"io"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/bxli2015/scl/genlib"
)

// Errors related to reading networks.
var (
	ErrBadType   = errors.New("unknown object type")
	ErrBadFanin  = errors.New("fanin not defined")
	ErrNoGate    = errors.New("gate not in library")
	ErrCellForm  = errors.New("network is in cell form")
	ErrBadFanins = errors.New("wrong number of fanins")
	ErrBoundBuf  = errors.New("barrier buffer bound to a gate")
)

// File is the on-disk form of a network.
type File struct {
	Library string    `json:"library,omitempty"`
	Objs    []FileObj `json:"objs"`
}

// FileObj is the on-disk form of a network object.  Objects are listed in
// id order.
type FileObj struct {
	Type   string `json:"type"`
	Fanins []int  `json:"fanins,omitempty"`
	Gate   string `json:"gate,omitempty"`
}

// ReadYAML reads a network from r, binding nodes to gates of glib.
func ReadYAML(r io.Reader, glib *genlib.Library) (*Ntk, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading network")
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "parsing network yaml")
	}
	n := New(glib)
	for i, o := range f.Objs {
		for _, fi := range o.Fanins {
			if fi < 0 || fi >= i || f.Objs[fi].Type == Po.String() {
				return nil, errors.Wrapf(ErrBadFanin, "object %d fanin %d", i, fi)
			}
		}
		switch o.Type {
		case Pi.String():
			if len(o.Fanins) != 0 {
				return nil, errors.Wrapf(ErrBadFanins, "object %d", i)
			}
			n.AddPi()
		case Po.String(), BarBuf.String():
			if len(o.Fanins) != 1 {
				return nil, errors.Wrapf(ErrBadFanins, "object %d", i)
			}
			if o.Type == Po.String() {
				n.AddPo(o.Fanins[0])
				break
			}
			if o.Gate != "" {
				return nil, errors.Wrapf(ErrBoundBuf, "object %d gate %q", i, o.Gate)
			}
			n.AddBarBuf(o.Fanins[0])
		case Node.String():
			g := glib.ReadGateByName(o.Gate)
			if g == nil {
				return nil, errors.Wrapf(ErrNoGate, "object %d gate %q", i, o.Gate)
			}
			if g.NIn != len(o.Fanins) {
				return nil, errors.Wrapf(ErrBadFanins, "object %d has %d fanins, gate %q has %d inputs",
					i, len(o.Fanins), g.Name, g.NIn)
			}
			n.AddNode(g, o.Fanins...)
		default:
			return nil, errors.Wrapf(ErrBadType, "object %d type %q", i, o.Type)
		}
	}
	return n, nil
}

// WriteYAML writes n to w.  Unbound nodes are written without a gate.
func (n *Ntk) WriteYAML(w io.Writer) error {
	if n.cells != nil {
		return ErrCellForm
	}
	f := File{Library: n.glib.Name(), Objs: make([]FileObj, len(n.objs))}
	for i := range n.objs {
		o := &n.objs[i]
		f.Objs[i] = FileObj{Type: o.typ.String(), Fanins: o.fanins}
		if o.gate != nil {
			f.Objs[i].Gate = o.gate.Name
		}
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
