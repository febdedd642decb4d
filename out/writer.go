// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out writes the extended-XYZ trajectory stream (spec.md section 6).
// It is adapted from the teacher's FEM post-processing package (which wrote
// node/element result files); here it has a single, much narrower job:
// serialise one frame at a time to the file gofem's own fileio.go calls
// save_file — build the frame in a buffer, then issue one Write so a
// disk error never leaves a half-written frame behind (spec.md section 7).
package out

import (
	"bytes"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/universe"
)

// metreToAngstrom converts a live position (metres) back to Angstroms for
// the trajectory file, the inverse of inp's angstromToMetre.
const metreToAngstrom = 1e10

// Writer is the trajectory sink (an opaque output handle in spec.md's
// terms). It owns the underlying file and is released by Close.
type Writer struct {
	f *os.File
}

// NewWriter opens path for writing, truncating any existing file.
func NewWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, chk.Err("IOOpenError: cannot open output file %q: %v", path, err)
	}
	return &Writer{f: f}, nil
}

// WriteFrame emits one extended-XYZ frame: atom count, iteration index,
// then one "<symbol> <x> <y> <z>" line per live atom, in Angstroms.
func (w *Writer) WriteFrame(u *universe.Universe) error {
	var buf bytes.Buffer
	io.Ff(&buf, "%d\n%d\n", len(u.Atoms), u.Iter)
	for _, a := range u.Atoms {
		io.Ff(&buf, "%s\t%f\t%f\t%f\n",
			model.Symbol(a.Element),
			a.Pos.X*metreToAngstrom,
			a.Pos.Y*metreToAngstrom,
			a.Pos.Z*metreToAngstrom,
		)
	}
	if _, err := w.f.Write(buf.Bytes()); err != nil {
		return chk.Err("IOWriteError: cannot write frame to output file: %v", err)
	}
	return nil
}

// Close releases the underlying file handle. Safe to call more than once.
func (w *Writer) Close() error {
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	if err != nil {
		return chk.Err("IOWriteError: %v", err)
	}
	return nil
}
