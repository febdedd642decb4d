// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package montecarlo implements the greedy Monte-Carlo pre-minimizer
// (component H): a single linear sweep over the atoms, proposing random
// displacements and keeping only the ones that lower the system's total
// potential energy.
package montecarlo

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/potential"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// initialStep is the starting displacement magnitude, 1 nm, per spec.md
// section 4.H.
const initialStep = 1e-9

// refinementInterval is the rejection count after which the step is
// shrunk by a factor of 10 and the rejection counter resets.
const refinementInterval = 50

// maxTriesPerAtom bounds the sweep so a pathological atom that can never
// lower the system's potential does not spin forever, resolving
// SPEC_FULL.md section 11's open question 4 (the source has no such cap).
// If the cap is hit, the atom is left at whichever position was active
// when the cap was reached (the last rejected proposal is always rolled
// back first, so this is "unchanged from the pre-sweep position").
const maxTriesPerAtom = 10000

// Run performs one sweep: for each atom in order, propose random
// displacements of shrinking magnitude until one lowers the system's total
// potential energy, then move on (spec.md section 4.H). It returns the
// number of atoms that hit maxTriesPerAtom without finding an improving
// move, so callers can decide whether to warn.
func Run(u *universe.Universe, rng vec3.Source, c phys.Constants) int {
	stalled := 0
	for atomIdx := range u.Atoms {
		if !sweepOne(u, atomIdx, rng, c) {
			stalled++
		}
	}
	if stalled > 0 {
		io.Pfyel("montecarlo: %d atom(s) reached the retry cap without an improving move\n", stalled)
	}
	return stalled
}

// sweepOne runs the accept-only-if-improving loop for a single atom. It
// returns false if maxTriesPerAtom was exhausted without an accepted move.
func sweepOne(u *universe.Universe, atomIdx int, rng vec3.Source, c phys.Constants) bool {
	step := initialStep
	rejections := 0

	currentEnergy := potential.TotalSystem(u, c)
	for tries := 0; tries < maxTriesPerAtom; tries++ {
		backup := u.Atoms[atomIdx].Pos

		offset := vec3.Scale(vec3.Marsaglia(rng), step)
		u.Atoms[atomIdx].Pos = vec3.Add(u.Atoms[atomIdx].Pos, offset)
		u.EnforcePBCOne(atomIdx)

		newEnergy := potential.TotalSystem(u, c)
		if newEnergy < currentEnergy {
			return true
		}

		u.Atoms[atomIdx].Pos = backup

		rejections++
		if rejections >= refinementInterval {
			step *= 0.1
			rejections = 0
		}
	}
	return false
}
