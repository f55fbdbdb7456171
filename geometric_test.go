/*
 * geometric_test.go, part of gopocket
 *
 * Copyright 2025 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package pocket

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestDist(Te *testing.T) {
	a := r3.Vec{X: 1, Y: 2, Z: 3}
	b := r3.Vec{X: 4, Y: 6, Z: 3}
	if d := Dist(a, a); d != 0 {
		Te.Errorf("Dist(a,a) = %f, want 0", d)
	}
	if Dist(a, b) != Dist(b, a) {
		Te.Error("Dist is not symmetric")
	}
	if d := Dist(a, b); math.Abs(d-5) > 1e-12 {
		Te.Errorf("Dist = %f, want 5", d)
	}
}

//At exactly the cutoff, the inclusive predicate counts a contact and the
//exclusive one doesn't. Both agree everywhere else.
func TestInContactInclusivity(Te *testing.T) {
	a := r3.Vec{}
	b := r3.Vec{X: 5}
	if !InContact(a, b, 5.0, true) {
		Te.Error("inclusive predicate missed a contact at exactly the cutoff")
	}
	if InContact(a, b, 5.0, false) {
		Te.Error("exclusive predicate counted a contact at exactly the cutoff")
	}
	if !InContact(a, b, 5.001, false) || InContact(a, b, 4.999, true) {
		Te.Error("predicates disagree away from the boundary")
	}
}

func TestResidueNearAndMinDist(Te *testing.T) {
	res := &Residue{Name: "LYS", Chain: "A", ID: 2, Atoms: []*Atom{
		{Name: "N", Pos: r3.Vec{X: 6}},
		{Name: "NZ", Pos: r3.Vec{X: 4}},
	}}
	ref := []*Atom{
		{Name: "C1", Pos: r3.Vec{}},
		{Name: "C2", Pos: r3.Vec{X: 1}},
	}
	if !ResidueNear(res, ref, 5.0, true) {
		Te.Error("residue with an atom at 3 A not near under cutoff 5")
	}
	if ResidueNear(res, ref, 2.0, true) {
		Te.Error("residue near under cutoff 2, closest atom is at 3 A")
	}
	if d := MinDist(res, ref); math.Abs(d-3) > 1e-12 {
		Te.Errorf("MinDist = %f, want 3", d)
	}
}

func TestCentroid(Te *testing.T) {
	atoms := []*Atom{
		{Pos: r3.Vec{X: 1, Y: 0, Z: 0}},
		{Pos: r3.Vec{X: -1, Y: 2, Z: 4}},
	}
	c := Centroid(atoms)
	if c.X != 0 || c.Y != 1 || c.Z != 2 {
		Te.Errorf("Centroid = %v, want {0 1 2}", c)
	}
	zero := Centroid(nil)
	if zero.X != 0 || zero.Y != 0 || zero.Z != 0 {
		Te.Errorf("Centroid of no atoms = %v, want the zero vector", zero)
	}
}

func TestHydrophobicityTable(Te *testing.T) {
	if len(kyteDoolittle) != 20 {
		Te.Fatalf("Kyte-Doolittle table has %d entries, want 20", len(kyteDoolittle))
	}
	if v, ok := Hydrophobicity("ILE"); !ok || v != 4.5 {
		Te.Errorf("ILE = %f %v, want 4.5 true", v, ok)
	}
	if v, ok := Hydrophobicity("ARG"); !ok || v != -4.5 {
		Te.Errorf("ARG = %f %v, want -4.5 true", v, ok)
	}
	if _, ok := Hydrophobicity("ATP"); ok {
		Te.Error("a ligand name is in the hydropathy scale")
	}
}
