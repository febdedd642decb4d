// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// TestFreeParticleMovesInStraightLine checks that two far-apart, neutral,
// non-interacting atoms (forces effectively zero) advance at constant
// velocity under Step, matching the textbook free-particle solution.
func TestFreeParticleMovesInStraightLine(tst *testing.T) {

	chk.PrintTitle("free particle moves in a straight line")

	consts := phys.DefaultConstants()
	ref := []universe.Atom{{Element: model.Hydrogen}, {Element: model.Hydrogen}}
	u, err := universe.New("m", "a", "c", ref, 1, 300, 1e5, consts)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	u.Atoms[0] = universe.Atom{Element: model.Hydrogen, Pos: vec3.Vector{X: 0.1 * u.Box}, Vel: vec3.Vector{X: 10}}
	u.Atoms[1] = universe.Atom{Element: model.Hydrogen, Pos: vec3.Vector{X: 0.9 * u.Box}}

	dt := 1e-16
	Step(u, dt, consts, phys.Analytical())

	wantX := 0.1*u.Box + 10*dt
	chk.Scalar(tst, "atom0.Pos.X", 1e-20, u.Atoms[0].Pos.X, wantX)
	chk.Scalar(tst, "atom0.Vel.X", 1e-6, u.Atoms[0].Vel.X, 10)
}

// TestStepWrapsPositionsIntoBox checks that an atom crossing the boundary
// during the position update is folded back into [0, Box).
func TestStepWrapsPositionsIntoBox(tst *testing.T) {

	chk.PrintTitle("step wraps positions into the box")

	consts := phys.DefaultConstants()
	ref := []universe.Atom{{Element: model.Hydrogen}, {Element: model.Hydrogen}}
	u, err := universe.New("m", "a", "c", ref, 1, 300, 1e5, consts)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	u.Atoms[0] = universe.Atom{Element: model.Hydrogen, Pos: vec3.Vector{X: u.Box - 1e-11}, Vel: vec3.Vector{X: 1e6}}
	u.Atoms[1] = universe.Atom{Element: model.Hydrogen, Pos: vec3.Vector{X: 0.5 * u.Box}}

	Step(u, 1e-16, consts, phys.Analytical())

	if u.Atoms[0].Pos.X < 0 || u.Atoms[0].Pos.X >= u.Box {
		tst.Errorf("atom0.Pos.X = %v, want in [0, %v)", u.Atoms[0].Pos.X, u.Box)
	}
}
