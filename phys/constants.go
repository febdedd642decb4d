// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package phys holds the physical constants and numerical defaults shared
// by the simulation kernel. Every component that needs a constant receives
// a Constants value explicitly; nothing here is package-level mutable state.
package phys

// Constants groups the physical constants and numerical defaults used
// throughout the kernel.
type Constants struct {
	Boltzmann float64 // k_B, J/K
	Coulomb   float64 // k_e, N.m^2/C^2
	EpsFloor  float64 // minimum pair distance before a bonded or non-bonded term is skipped, m
	FDStep    float64 // default central-difference step h, m
}

// DefaultConstants returns the standard SI constants and the kernel's
// default numerical tolerances.
func DefaultConstants() Constants {
	return Constants{
		Boltzmann: 1.380649e-23,
		Coulomb:   8.99e9,
		EpsFloor:  1e-12,
		FDStep:    1e-12,
	}
}

// ForceMode selects the force-evaluation strategy (component E). It is a
// tagged variant rather than a bare boolean so the finite-difference step
// is explicit wherever numerical mode is selected.
type ForceMode struct {
	Numerical bool    // true: central-difference on the potential; false: closed-form gradient
	H         float64 // finite-difference step; only meaningful when Numerical is true
}

// Analytical builds a ForceMode selecting the closed-form gradient evaluator.
func Analytical() ForceMode {
	return ForceMode{Numerical: false}
}

// Numeric builds a ForceMode selecting the central-difference evaluator with step h.
func Numeric(h float64) ForceMode {
	return ForceMode{Numerical: true, H: h}
}
