// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package montecarlo

import (
	"math/rand"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/potential"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// TestRunNeverRaisesTheEnergy checks the core greedy property of the
// minimizer: a sweep can only lower, never raise, the system's total
// potential energy, since every proposal is rejected unless it is an
// improvement (spec.md section 4.H).
func TestRunNeverRaisesTheEnergy(tst *testing.T) {

	chk.PrintTitle("montecarlo run never raises the energy")

	consts := phys.DefaultConstants()
	ref := []universe.Atom{
		{Element: model.Oxygen, Charge: -2e-19, Epsilon: 2e-21, Sigma: 3.2e-10},
		{Element: model.Hydrogen, Charge: 1e-19, Epsilon: 1e-21, Sigma: 3e-10},
		{Element: model.Hydrogen, Charge: 1e-19, Epsilon: 1e-21, Sigma: 3e-10},
	}
	u, err := universe.New("m", "a", "c", ref, 3, 300, 1e5, consts)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}

	rng := rand.New(rand.NewSource(11))
	for i := range u.Atoms {
		dir := vec3.Marsaglia(rng)
		u.Atoms[i] = universe.Atom{
			Element: ref[i%len(ref)].Element,
			Charge:  ref[i%len(ref)].Charge,
			Epsilon: ref[i%len(ref)].Epsilon,
			Sigma:   ref[i%len(ref)].Sigma,
			Pos:     vec3.Scale(dir, rng.Float64()*u.Box),
		}
	}

	before := potential.TotalSystem(u, consts)
	Run(u, rng, consts)
	after := potential.TotalSystem(u, consts)

	if after > before+1e-30 {
		tst.Errorf("energy rose from %v to %v", before, after)
	}
}

func TestSweepOneAcceptsOnlyImprovingMoves(tst *testing.T) {

	chk.PrintTitle("sweepOne accepts only improving moves")

	consts := phys.DefaultConstants()
	ref := []universe.Atom{{Element: model.Hydrogen}, {Element: model.Oxygen}}
	u, err := universe.New("m", "a", "c", ref, 1, 300, 1e5, consts)
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	u.Atoms[0] = universe.Atom{Element: model.Hydrogen, Charge: 1e-19, Epsilon: 1e-21, Sigma: 3e-10}
	u.Atoms[1] = universe.Atom{Element: model.Oxygen, Charge: -1e-19, Epsilon: 2e-21, Sigma: 3.2e-10, Pos: vec3.Vector{X: 4e-10}}

	rng := rand.New(rand.NewSource(5))
	before := potential.TotalSystem(u, consts)
	sweepOne(u, 0, rng, consts)
	after := potential.TotalSystem(u, consts)

	if after > before+1e-30 {
		tst.Errorf("sweepOne raised the energy from %v to %v", before, after)
	}
}
