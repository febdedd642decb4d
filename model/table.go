// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model holds the element lookup tables (component B): element
// code to atomic mass, and element code to display symbol. Both are total
// functions over uint8; unrecognised codes return the documented zero value
// rather than an error, since the calling code (bond/pair loops) has no
// sensible recovery path other than to treat an unknown species as inert.
package model

// Element codes recognised by this table. Using the atomic number directly
// keeps the input-file element column self-explanatory.
const (
	Hydrogen uint8 = 1
	Carbon   uint8 = 6
	Nitrogen uint8 = 7
	Oxygen   uint8 = 8
)

// atomicMassUnit is one unified atomic mass unit in kilograms.
const atomicMassUnit = 1.66053906660e-27

var masses = map[uint8]float64{
	Hydrogen: 1.008 * atomicMassUnit,
	Carbon:   12.011 * atomicMassUnit,
	Nitrogen: 14.007 * atomicMassUnit,
	Oxygen:   15.999 * atomicMassUnit,
}

var symbols = map[uint8]string{
	Hydrogen: "H",
	Carbon:   "C",
	Nitrogen: "N",
	Oxygen:   "O",
}

// Mass returns the atomic mass, in kilograms, of the given element code.
// Unknown codes return 0.
func Mass(element uint8) float64 {
	return masses[element]
}

// Symbol returns the display symbol of the given element code. Unknown
// codes return "?".
func Symbol(element uint8) string {
	if s, ok := symbols[element]; ok {
		return s
	}
	return "?"
}
