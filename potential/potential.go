// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package potential implements the hybrid force field's energy terms
// (component D): harmonic bonded, Coulomb, and Lennard-Jones, each under
// the minimum-image convention, plus the per-atom and whole-system
// reductions used by the force evaluator and the Monte-Carlo minimizer.
package potential

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// IsBonded reports whether an atom's bond list contains partner index j.
func IsBonded(bonds []universe.Bond, j int) bool {
	for _, b := range bonds {
		if b.Partner == j {
			return true
		}
	}
	return false
}

// Bonded returns the harmonic bonded contribution to atom i's potential:
// sum over i's bond list of 1/2 * k_ij * (d - d0_ij)^2, with d the
// minimum-image separation between the live atoms and d0_ij the cached
// reference-molecule equilibrium length (spec.md section 4.D).
func Bonded(u *universe.Universe, i int, c phys.Constants) float64 {
	a := &u.Atoms[i]
	var total float64
	for _, b := range a.Bonds {
		dr := u.MinImage(a.Pos, u.Atoms[b.Partner].Pos)
		d := vec3.Magnitude(dr)
		if d < c.EpsFloor {
			continue
		}
		delta := d - b.D0
		total += 0.5 * b.Stiffness * delta * delta
	}
	return total
}

// Coulomb returns atom i's electrostatic potential against every
// non-bonded atom j != i: sum of k_e*q_i*q_j/d under the minimum image.
func Coulomb(u *universe.Universe, i int, c phys.Constants) float64 {
	a := &u.Atoms[i]
	var total float64
	for j := range u.Atoms {
		if j == i || IsBonded(a.Bonds, j) {
			continue
		}
		d := vec3.Magnitude(u.MinImage(a.Pos, u.Atoms[j].Pos))
		if d < c.EpsFloor {
			continue
		}
		total += c.Coulomb * a.Charge * u.Atoms[j].Charge / d
	}
	return total
}

// LennardJones returns atom i's dispersion/repulsion potential against
// every non-bonded atom j != i, with combined parameters eps_ij =
// sqrt(eps_i*eps_j), sigma_ij = (sigma_i+sigma_j)/2.
func LennardJones(u *universe.Universe, i int, c phys.Constants) float64 {
	a := &u.Atoms[i]
	var total float64
	for j := range u.Atoms {
		if j == i || IsBonded(a.Bonds, j) {
			continue
		}
		other := &u.Atoms[j]
		d := vec3.Magnitude(u.MinImage(a.Pos, other.Pos))
		if d < c.EpsFloor {
			continue
		}
		epsIJ := math.Sqrt(a.Epsilon * other.Epsilon)
		sigIJ := 0.5 * (a.Sigma + other.Sigma)
		sr6 := math.Pow(sigIJ/d, 6)
		total += 4 * epsIJ * (sr6*sr6 - sr6)
	}
	return total
}

// Total returns atom i's total potential U_i, the sum of the three terms.
// Angular/torsional terms are absent by design (spec.md section 4.D).
func Total(u *universe.Universe, i int, c phys.Constants) float64 {
	return Bonded(u, i, c) + Coulomb(u, i, c) + LennardJones(u, i, c)
}

// TotalSystem returns sum_i U_i over every live atom. Bonded, non-bonded
// Coulomb, and LJ pairs each contribute to both endpoints' per-atom totals,
// so a pair's energy is counted twice here, matching the reference
// implementation's own universe_energy_potential.
func TotalSystem(u *universe.Universe, c phys.Constants) float64 {
	terms := make([]float64, len(u.Atoms))
	for i := range u.Atoms {
		terms[i] = Total(u, i, c)
	}
	return floats.Sum(terms)
}
