// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package universe implements the simulation state (component C): the
// owned atom/bond graph, the periodic box, the simulation clock, and the
// read/mutate surface used by the integrator, the Monte-Carlo minimizer,
// and the trajectory writer. There is no locking: ownership of the state
// is exclusive to whichever goroutine is driving the simulation (there is
// only ever one, per spec.md section 5).
package universe

import (
	"io"
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"

	"github.com/cpmech/mdsim/model"
	"github.com/cpmech/mdsim/phys"
	"github.com/cpmech/mdsim/vec3"
)

// Bond records one harmonic covalent partner of an atom. Bonds are stored
// symmetrically: if atom i holds a Bond{Partner: j}, atom j holds a
// Bond{Partner: i} with the same Stiffness (invariant 2 of spec.md section 3).
type Bond struct {
	Partner   int     // index of the partner atom, in the same atom list this Bond lives in
	Stiffness float64 // harmonic force constant k_ij, N/m
	D0        float64 // cached equilibrium length, the reference-molecule separation, m
}

// Atom is a single classical particle: kinematics (position, velocity,
// acceleration, net force), identity (species, charge, LJ parameters), and
// connectivity (its bond list).
type Atom struct {
	Pos, Vel, Acc, Force vec3.Vector

	Element uint8
	Charge  float64 // C
	Epsilon float64 // LJ epsilon, J
	Sigma   float64 // LJ sigma, m

	Bonds []Bond
}

// Universe is the simulation state: box, clock, thermodynamic targets, the
// reference molecule, the live particle list, metadata, and I/O handles.
type Universe struct {
	Box    float64 // cubic box edge length L, m; the volume is [0,L)^3
	Time   float64 // simulated time, s
	Iter   int     // iteration counter
	TargetTemperature float64 // K, fixed at init
	TargetPressure    float64 // Pa, fixed at init

	RefAtoms []Atom // reference molecule, R atoms, positions already in metres
	Atoms    []Atom // live particles, length RefCount*CopyCount

	RefCount  int // R
	CopyCount int // K

	Name, Author, Comment string

	input  io.Closer
	output Sink
}

// Sink is the trajectory output surface the driver writes frames through.
// out.Writer satisfies it; defining it here (rather than importing out)
// keeps universe a leaf package relative to out.
type Sink interface {
	io.Closer
	WriteFrame(u *Universe) error
}

// New allocates a Universe from a parsed reference molecule and a run
// configuration. It performs steps 3-4 of spec.md section 4.G: allocate
// R*K live atoms (zero-valued; genesis.Populate fills them in) and compute
// the box size from the ideal-gas relation (invariant 5 of spec.md
// section 3): L = cbrt(k_B * K * T / P).
func New(name, author, comment string, refAtoms []Atom, copies int, temperature, pressure float64, consts phys.Constants) (*Universe, error) {
	if copies < 1 {
		return nil, chk.Err("universe.New: copies must be >= 1, got %d", copies)
	}
	if temperature <= 0 || pressure <= 0 {
		return nil, chk.Err("universe.New: temperature and pressure must be positive, got T=%g P=%g", temperature, pressure)
	}
	r := len(refAtoms)
	if r == 0 {
		return nil, chk.Err("universe.New: reference molecule has no atoms")
	}
	u := &Universe{
		TargetTemperature: temperature,
		TargetPressure:    pressure,
		RefAtoms:          refAtoms,
		RefCount:          r,
		CopyCount:         copies,
		Name:              name,
		Author:            author,
		Comment:           comment,
	}
	u.Box = math.Cbrt(consts.Boltzmann * float64(copies) * temperature / pressure)
	u.Atoms = make([]Atom, r*copies)
	return u, nil
}

// SetHandles attaches the input source and trajectory sink whose lifetime
// the Universe now owns; Close releases both.
func (u *Universe) SetHandles(input io.Closer, output Sink) {
	u.input = input
	u.output = output
}

// WriteFrame emits the current state through the attached trajectory sink.
// It is a no-op if no sink has been attached.
func (u *Universe) WriteFrame() error {
	if u.output == nil {
		return nil
	}
	return u.output.WriteFrame(u)
}

// Close releases the reference/live atom storage's file handles. It is
// idempotent: calling it twice is safe, matching the "release then null
// out" discipline of spec.md section 5.
func (u *Universe) Close() error {
	var ferr error
	if u.input != nil {
		if err := u.input.Close(); err != nil && ferr == nil {
			ferr = err
		}
		u.input = nil
	}
	if u.output != nil {
		if err := u.output.Close(); err != nil && ferr == nil {
			ferr = err
		}
		u.output = nil
	}
	return ferr
}

// WrapComponent folds one coordinate into [0, L) (step 2 of the
// Velocity-Verlet sequence, spec.md section 4.F).
func WrapComponent(c, box float64) float64 {
	c = math.Mod(c, box)
	if c < 0 {
		c += box
	}
	return c
}

// EnforcePBC wraps every live atom's position into [0, Box)^3 (invariant 1
// of spec.md section 3).
func (u *Universe) EnforcePBC() {
	for i := range u.Atoms {
		a := &u.Atoms[i]
		a.Pos.X = WrapComponent(a.Pos.X, u.Box)
		a.Pos.Y = WrapComponent(a.Pos.Y, u.Box)
		a.Pos.Z = WrapComponent(a.Pos.Z, u.Box)
	}
}

// EnforcePBCOne wraps a single live atom's position, used by the
// Monte-Carlo minimizer which moves one atom at a time.
func (u *Universe) EnforcePBCOne(i int) {
	a := &u.Atoms[i]
	a.Pos.X = WrapComponent(a.Pos.X, u.Box)
	a.Pos.Y = WrapComponent(a.Pos.Y, u.Box)
	a.Pos.Z = WrapComponent(a.Pos.Z, u.Box)
}

// MinImage returns the minimum-image displacement r_j - r_i, wrapping each
// component into (-L/2, L/2].
func (u *Universe) MinImage(ri, rj vec3.Vector) vec3.Vector {
	d := vec3.Sub(rj, ri)
	return vec3.Vector{
		X: minImageComponent(d.X, u.Box),
		Y: minImageComponent(d.Y, u.Box),
		Z: minImageComponent(d.Z, u.Box),
	}
}

func minImageComponent(c, box float64) float64 {
	return c - box*math.Round(c/box)
}

// KineticEnergy returns the live system's total kinetic energy,
// sum_i 1/2 m_i |v_i|^2 (supplemental; see SPEC_FULL.md section 10).
func (u *Universe) KineticEnergy() float64 {
	terms := make([]float64, len(u.Atoms))
	for i, a := range u.Atoms {
		v := vec3.Magnitude(a.Vel)
		terms[i] = 0.5 * model.Mass(a.Element) * v * v
	}
	return floats.Sum(terms)
}

// TotalEnergy combines the kinetic energy with a caller-supplied potential
// energy (component D's reduction lives in package potential, which already
// depends on universe, so the sum is composed here rather than imported)
// into the conserved quantity spec.md section 8 checks the integrator
// against.
func (u *Universe) TotalEnergy(potentialTotal float64) float64 {
	return u.KineticEnergy() + potentialTotal
}
