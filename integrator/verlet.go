// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator implements the Velocity-Verlet step (component F):
// position update, periodic-boundary enforcement, force recomputation, and
// the staggered acceleration/velocity update, as three separate whole-array
// passes per spec.md section 4.F (force on atom i depends on every atom's
// position, so positions, forces, accelerations, and velocities can never
// be advanced atom-by-atom in a single interleaved pass).
package integrator

import (
	"github.com/cpmech/mdsim/force"
	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// Step advances the universe by one timestep dt under the given force mode.
func Step(u *universe.Universe, dt float64, c phys.Constants, mode phys.ForceMode) {

	// 1. position update, using the acceleration computed on the previous
	// step (zero on the very first call, since genesis never sets it).
	for i := range u.Atoms {
		a := &u.Atoms[i]
		a.Pos = vec3.Add(a.Pos, vec3.Add(vec3.Scale(a.Vel, dt), vec3.Scale(a.Acc, 0.5*dt*dt)))
	}

	// 2. enforce periodic boundary conditions on every atom.
	u.EnforcePBC()

	// 3. force update, reading every atom's (now current) position.
	for i := range u.Atoms {
		force.Update(u, i, c, mode)
	}

	// 4. acceleration update, remembering the pre-step value so step 5 can
	// average old and new (a+ = 1/2(a_old + a_new)).
	oldAcc := make([]vec3.Vector, len(u.Atoms))
	for i := range u.Atoms {
		oldAcc[i] = u.Atoms[i].Acc
		m := model.Mass(u.Atoms[i].Element)
		if m > 0 {
			u.Atoms[i].Acc = vec3.Scale(u.Atoms[i].Force, 1/m)
		} else {
			u.Atoms[i].Acc = vec3.Vector{}
		}
	}

	// 5. velocity update.
	for i := range u.Atoms {
		a := &u.Atoms[i]
		aPlus := vec3.Scale(vec3.Add(oldAcc[i], a.Acc), 0.5)
		a.Vel = vec3.Add(a.Vel, vec3.Scale(aPlus, dt))
	}
}
