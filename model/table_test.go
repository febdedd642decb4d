// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestMassAndSymbol(tst *testing.T) {

	chk.PrintTitle("mass and symbol")

	chk.Scalar(tst, "mass(H)", 1e-30, Mass(Hydrogen), 1.008*atomicMassUnit)
	chk.Scalar(tst, "mass(C)", 1e-30, Mass(Carbon), 12.011*atomicMassUnit)
	chk.Scalar(tst, "mass(N)", 1e-30, Mass(Nitrogen), 14.007*atomicMassUnit)
	chk.Scalar(tst, "mass(O)", 1e-30, Mass(Oxygen), 15.999*atomicMassUnit)
	chk.Scalar(tst, "mass(unknown)", 1e-30, Mass(99), 0)

	if Symbol(Hydrogen) != "H" {
		tst.Errorf("Symbol(Hydrogen) = %q, want H", Symbol(Hydrogen))
	}
	if Symbol(Carbon) != "C" {
		tst.Errorf("Symbol(Carbon) = %q, want C", Symbol(Carbon))
	}
	if Symbol(99) != "?" {
		tst.Errorf("Symbol(99) = %q, want ?", Symbol(99))
	}
}
