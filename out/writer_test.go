// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

func TestWriteFrameFormat(tst *testing.T) {

	chk.PrintTitle("write frame format")

	path := tst.TempDir() + "/traj.xyz"
	w, err := NewWriter(path)
	if err != nil {
		tst.Fatalf("NewWriter failed: %v", err)
	}

	consts := phys.DefaultConstants()
	ref := []universe.Atom{{Element: model.Hydrogen}}
	u, err := universe.New("m", "a", "c", ref, 1, 300, 1e5, consts)
	if err != nil {
		tst.Fatalf("universe.New failed: %v", err)
	}
	u.Atoms[0].Pos = vec3.Vector{X: 1e-10, Y: 2e-10, Z: 3e-10}
	u.Iter = 5

	if err := w.WriteFrame(u); err != nil {
		tst.Fatalf("WriteFrame failed: %v", err)
	}
	if err := w.Close(); err != nil {
		tst.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		tst.Fatalf("second Close should be a no-op, got: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("ReadFile failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) != 3 {
		tst.Fatalf("expected 3 lines (count, iter, atom), got %d: %q", len(lines), raw)
	}
	if lines[0] != "1" {
		tst.Errorf("atom count line = %q, want \"1\"", lines[0])
	}
	if lines[1] != "5" {
		tst.Errorf("iteration line = %q, want \"5\"", lines[1])
	}
	if !strings.HasPrefix(lines[2], "H\t") {
		tst.Errorf("atom line = %q, want it to start with \"H\\t\"", lines[2])
	}
}
