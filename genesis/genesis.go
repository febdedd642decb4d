// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package genesis implements initialization (component G): load the
// reference molecule, replicate it into the periodic box, and assign
// thermal velocities. It is the only component that calls both inp (to
// load the molecule) and out (to open the trajectory sink), since it is
// the one that produces a fully-formed Universe for the driver to run.
package genesis

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mdsim/inp"
	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/out"
	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// Init performs the full sequence of spec.md section 4.G: parse the input
// file, allocate the universe and its box, replicate the reference
// molecule into K copies, enforce PBC, and assign thermal velocities. It
// also opens the trajectory sink and attaches both I/O handles to the
// returned Universe, per spec.md section 5's ownership rule.
func Init(cfg inp.RunConfig, consts phys.Constants, rng vec3.Source) (*universe.Universe, error) {
	mol, inputHandle, err := inp.LoadMolecule(cfg.Path)
	if err != nil {
		return nil, err
	}

	u, err := universe.New(mol.Name, mol.Author, mol.Comment, mol.Atoms, cfg.Copies, cfg.Temperature, cfg.Pressure, consts)
	if err != nil {
		inputHandle.Close()
		return nil, err
	}

	Populate(u, rng)
	u.EnforcePBC()
	SetVelocities(u, rng, consts)

	writer, err := out.NewWriter(cfg.OutPath)
	if err != nil {
		inputHandle.Close()
		return nil, err
	}
	u.SetHandles(inputHandle, writer)

	return u, nil
}

// Populate replicates the reference molecule into u.CopyCount copies
// (spec.md section 4.G step 5). Copy i occupies live-atom indices
// [i*R, (i+1)*R); its placement offset is X*u with X ~ Uniform[0, Box)
// and u a fresh Marsaglia unit vector, the documented resolution of
// SPEC_FULL.md section 11's open question 1 (the source's cos(rand())
// placement bug). Bond partner indices are translated by i*R so the
// bond graph of each copy never reaches into another copy (invariant 4
// of spec.md section 3).
func Populate(u *universe.Universe, rng vec3.Source) {
	r := u.RefCount
	for i := 0; i < u.CopyCount; i++ {
		dir := vec3.Marsaglia(rng)
		radius := rng.Float64() * u.Box
		offset := vec3.Scale(dir, radius)

		for ii := 0; ii < r; ii++ {
			ref := u.RefAtoms[ii]
			live := &u.Atoms[i*r+ii]

			live.Element = ref.Element
			live.Charge = ref.Charge
			live.Epsilon = ref.Epsilon
			live.Sigma = ref.Sigma
			live.Pos = vec3.Add(ref.Pos, offset)
			live.Vel = ref.Vel
			live.Acc = ref.Acc
			live.Force = ref.Force

			live.Bonds = make([]universe.Bond, len(ref.Bonds))
			for k, b := range ref.Bonds {
				live.Bonds[k] = universe.Bond{
					Partner:   b.Partner + i*r,
					Stiffness: b.Stiffness,
					D0:        b.D0,
				}
			}
		}
	}
}

// SetVelocities assigns each live atom a thermal velocity: magnitude
// sqrt(3*k_B*T/m_mol), where m_mol is the reference molecule's total mass,
// in a fresh Marsaglia-sampled direction per atom (spec.md section 4.G
// step 7).
func SetVelocities(u *universe.Universe, rng vec3.Source, consts phys.Constants) {
	var massMol float64
	for _, ref := range u.RefAtoms {
		massMol += model.Mass(ref.Element)
	}
	if massMol <= 0 {
		chk.Panic("genesis.SetVelocities: reference molecule has zero total mass")
	}
	speed := math.Sqrt(3 * consts.Boltzmann * u.TargetTemperature / massMol)
	for i := range u.Atoms {
		dir := vec3.Marsaglia(rng)
		u.Atoms[i].Vel = vec3.Scale(dir, speed)
	}
}
