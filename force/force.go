// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package force implements the two interchangeable force-evaluation modes
// of spec.md section 4.E: numerical (central difference on the potential)
// and analytical (closed-form pairwise gradients). Both write the result
// into the atom's Force field; they do not touch velocity or acceleration.
package force

import (
	"math"

	"github.com/cpmech/gosl/num"

	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/potential"
	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// Update computes atom i's net force using the selected mode.
func Update(u *universe.Universe, i int, c phys.Constants, mode phys.ForceMode) {
	if mode.Numerical {
		numerical(u, i, c, mode.H)
		return
	}
	analytical(u, i, c)
}

// numerical approximates F_i = -grad_i U_i by central differences, axis by
// axis (x, then y, then z), fully restoring the atom's position between
// axes (spec.md section 4.E). num.DerivCentral is the teacher's own
// central-difference routine (shp/testing.go uses it to check
// shape-function gradients the same way).
func numerical(u *universe.Universe, i int, c phys.Constants, h float64) {
	a := &u.Atoms[i]
	x0, y0, z0 := a.Pos.X, a.Pos.Y, a.Pos.Z

	dUdx, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
		a.Pos.X = t
		return potential.Total(u, i, c)
	}, x0, h)
	a.Pos.X = x0

	dUdy, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
		a.Pos.Y = t
		return potential.Total(u, i, c)
	}, y0, h)
	a.Pos.Y = y0

	dUdz, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
		a.Pos.Z = t
		return potential.Total(u, i, c)
	}, z0, h)
	a.Pos.Z = z0

	a.Force = vec3.Vector{X: -dUdx, Y: -dUdy, Z: -dUdz}
}

// analytical sums the closed-form gradient of each term, pair by pair
// (spec.md section 4.E). Signs are chosen so bonded pairs are attractive
// toward equilibrium and non-bonded pairs follow Coulomb's law / LJ
// repulsion-then-dispersion.
func analytical(u *universe.Universe, i int, c phys.Constants) {
	a := &u.Atoms[i]
	var f vec3.Vector

	for _, b := range a.Bonds {
		other := u.Atoms[b.Partner]
		dr := u.MinImage(a.Pos, other.Pos) // r_j - r_i
		d := vec3.Magnitude(dr)
		if d < c.EpsFloor {
			continue
		}
		coef := b.Stiffness * (d - b.D0) / d
		f = vec3.Add(f, vec3.Scale(dr, coef))
	}

	for j := range u.Atoms {
		if j == i || potential.IsBonded(a.Bonds, j) {
			continue
		}
		other := &u.Atoms[j]
		dr := u.MinImage(a.Pos, other.Pos)
		d := vec3.Magnitude(dr)
		if d < c.EpsFloor {
			continue
		}

		coefElec := -c.Coulomb * a.Charge * other.Charge / (d * d * d)
		f = vec3.Add(f, vec3.Scale(dr, coefElec))

		epsIJ := math.Sqrt(a.Epsilon * other.Epsilon)
		sigIJ := 0.5 * (a.Sigma + other.Sigma)
		s12 := math.Pow(sigIJ, 12) / math.Pow(d, 13)
		s6 := math.Pow(sigIJ, 6) / math.Pow(d, 7)
		coefLJ := -24 * epsIJ * (2*s12 - s6) / d
		f = vec3.Add(f, vec3.Scale(dr, coefLJ))
	}

	a.Force = f
}
