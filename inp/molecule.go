// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp decodes the two text formats this kernel consumes: the
// reference-molecule input file (this file) and the run configuration read
// from the command line (config.go). It plays the role spec.md section 6
// assigns to the "input-file tokenizer" and "argument parser" external
// collaborators, adapted from the teacher's own inp package, which
// originally decoded a FEM .sim JSON file instead of a molecule/bond text
// block.
package inp

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/mdsim/universe"
	"github.com/cpmech/mdsim/vec3"
)

// angstromToMetre converts a position read from the input file (Angstroms)
// to the metre units the rest of the kernel works in (spec.md section 4.G
// step 2).
const angstromToMetre = 1e-10

// Molecule is the reference molecule parsed from an input file: metadata
// plus the reference atoms (with their bond tables, indices local to this
// molecule).
type Molecule struct {
	Name, Author, Comment string
	Atoms                 []universe.Atom
}

// LoadMolecule opens path, parses it per the input-file grammar of
// spec.md section 6, and returns the reference molecule. The returned
// io.Closer is the open file handle; the caller (genesis.Init) owns its
// lifetime via Universe.SetHandles, per spec.md section 5's exclusive
// ownership rule.
func LoadMolecule(path string) (*Molecule, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, chk.Err("IOOpenError: cannot open input file %q: %v", path, err)
	}
	mol, err := ParseMolecule(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return mol, f, nil
}

// ParseMolecule decodes the molecule/bond text grammar from r:
//
//	<name>
//	<author>
//	<comment>
//	<ref_atom_count> <ref_bond_count>
//	<x> <y> <z> <element> <charge> <epsilon> <sigma>   (x ref_atom_count)
//	<atom_index_1> <atom_index_2> <bond_strength>       (x ref_bond_count, 1-based)
func ParseMolecule(r io.Reader) (*Molecule, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	line, err := nextLine(sc)
	if err != nil {
		return nil, err
	}
	name := line

	line, err = nextLine(sc)
	if err != nil {
		return nil, err
	}
	author := line

	line, err = nextLine(sc)
	if err != nil {
		return nil, err
	}
	comment := line

	line, err = nextLine(sc)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, chk.Err("ParseError: expected \"<ref_atom_count> <ref_bond_count>\", got %q", line)
	}
	refAtomCount, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, chk.Err("ParseError: non-numeric ref_atom_count %q", fields[0])
	}
	refBondCount, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, chk.Err("ParseError: non-numeric ref_bond_count %q", fields[1])
	}
	if refAtomCount <= 0 {
		return nil, chk.Err("ParseError: ref_atom_count must be positive, got %d", refAtomCount)
	}

	atoms := make([]universe.Atom, refAtomCount)
	for i := 0; i < refAtomCount; i++ {
		line, err = nextLine(sc)
		if err != nil {
			return nil, err
		}
		fields = strings.Fields(line)
		if len(fields) != 7 {
			return nil, chk.Err("ParseError: atom record %d: expected 7 fields, got %d (%q)", i, len(fields), line)
		}
		x, e1 := strconv.ParseFloat(fields[0], 64)
		y, e2 := strconv.ParseFloat(fields[1], 64)
		z, e3 := strconv.ParseFloat(fields[2], 64)
		element, e4 := strconv.ParseUint(fields[3], 10, 8)
		charge, e5 := strconv.ParseFloat(fields[4], 64)
		epsilon, e6 := strconv.ParseFloat(fields[5], 64)
		sigma, e7 := strconv.ParseFloat(fields[6], 64)
		if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil || e6 != nil || e7 != nil {
			return nil, chk.Err("ParseError: atom record %d: non-numeric field in %q", i, line)
		}
		atoms[i] = universe.Atom{
			Pos:     vec3.Scale(vec3.Vector{X: x, Y: y, Z: z}, angstromToMetre),
			Element: uint8(element),
			Charge:  charge,
			Epsilon: epsilon,
			Sigma:   sigma,
		}
	}

	type bondRecord struct {
		a, b     int
		strength float64
	}
	bonds := make([]bondRecord, refBondCount)
	for i := 0; i < refBondCount; i++ {
		line, err = nextLine(sc)
		if err != nil {
			return nil, err
		}
		fields = strings.Fields(line)
		if len(fields) != 3 {
			return nil, chk.Err("ParseError: bond record %d: expected 3 fields, got %d (%q)", i, len(fields), line)
		}
		a, e1 := strconv.Atoi(fields[0])
		b, e2 := strconv.Atoi(fields[1])
		k, e3 := strconv.ParseFloat(fields[2], 64)
		if e1 != nil || e2 != nil || e3 != nil {
			return nil, chk.Err("ParseError: bond record %d: non-numeric field in %q", i, line)
		}
		if a < 1 || a > refAtomCount || b < 1 || b > refAtomCount {
			return nil, chk.Err("ParseError: bond record %d: atom index out of range in %q", i, line)
		}
		bonds[i] = bondRecord{a: a - 1, b: b - 1, strength: k}
	}

	// Store bonds symmetrically, caching each bond's equilibrium length from
	// the reference positions just parsed (spec.md section 9, open question
	// 5: cache d0 once at load time instead of recomputing it every call).
	for _, b := range bonds {
		d0 := vec3.Magnitude(vec3.Sub(atoms[b.b].Pos, atoms[b.a].Pos))
		atoms[b.a].Bonds = append(atoms[b.a].Bonds, universe.Bond{Partner: b.b, Stiffness: b.strength, D0: d0})
		atoms[b.b].Bonds = append(atoms[b.b].Bonds, universe.Bond{Partner: b.a, Stiffness: b.strength, D0: d0})
	}

	return &Molecule{Name: name, Author: author, Comment: comment, Atoms: atoms}, nil
}

func nextLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", chk.Err("IOReadError: %v", err)
		}
		return "", chk.Err("ParseError: unexpected end of input")
	}
	return sc.Text(), nil
}
