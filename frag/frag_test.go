/*
 * frag_test.go, part of gopocket
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

package frag

import (
	"testing"

	pocket "github.com/rmera/gopocket"
	"github.com/rmera/gopocket/site"
	"gonum.org/v1/gonum/spatial/r3"
)

//backboneRes builds a residue with the conventional N, CA, C, O backbone
//followed by a CB, all laid out along x starting at x0.
func backboneRes(name string, id int, x0 float64) *pocket.Residue {
	names := []string{"N", "CA", "C", "O", "CB"}
	res := &pocket.Residue{Name: name, Chain: "A", ID: id}
	for i, n := range names {
		res.Atoms = append(res.Atoms, &pocket.Atom{
			Name:   n,
			Symbol: n[0:1],
			Pos:    r3.Vec{X: x0 + float64(i)},
		})
	}
	return res
}

//ligandRes builds an n-atom het residue along y.
func ligandRes(n int) *pocket.Residue {
	res := &pocket.Residue{Name: "ATP", Chain: "A", ID: 100, Ligand: true}
	symbols := []string{"C", "N", "O", "P"}
	for i := 0; i < n; i++ {
		res.Atoms = append(res.Atoms, &pocket.Atom{
			Name:   "X",
			Symbol: symbols[i%len(symbols)],
			Het:    true,
			Pos:    r3.Vec{Y: float64(i)},
		})
	}
	return res
}

//A 13-atom ligand and 5 pocket residues can feed up to
//23 atoms; the default cap of 20 keeps all 13 ligand atoms, then backbone
//pairs in pocket order, cut from the end.
func TestExtractTruncation(Te *testing.T) {
	lig := ligandRes(13)
	bs := &site.BindingSite{
		LigandID: "ATP_A_100",
		Residues: []*pocket.Residue{
			backboneRes("ALA", 1, 10),
			backboneRes("LYS", 2, 20),
			backboneRes("GLU", 3, 30),
			backboneRes("ASP", 4, 40),
			backboneRes("VAL", 5, 50),
		},
	}
	f := Extract(bs, lig)
	if f.Len() != 20 {
		Te.Fatalf("fragment has %d atoms, want 20", f.Len())
	}
	if !f.Ready() {
		Te.Errorf("20-atom fragment flagged %q", f.Status)
	}
	for i := 0; i < 13; i++ {
		if f.Atoms[i].Symbol != lig.Atoms[i].Symbol || f.Atoms[i].Pos != lig.Atoms[i].Pos {
			Te.Errorf("fragment atom %d is not ligand atom %d", i, i)
		}
	}
	//then N and CA of ALA, LYS, GLU, and only the N of ASP; VAL is cut.
	wantX := []float64{10, 11, 20, 21, 30, 31, 40}
	for i, x := range wantX {
		at := f.Atoms[13+i]
		if at.Pos.X != x {
			Te.Errorf("backbone atom %d at x=%f, want %f", i, at.Pos.X, x)
		}
	}
}

func TestExtractBackboneSelection(Te *testing.T) {
	//An atom order that interleaves side chain and backbone: the first two
	//backbone atoms in residue order must win, whatever comes between.
	res := &pocket.Residue{Name: "SER", Chain: "A", ID: 7, Atoms: []*pocket.Atom{
		{Name: "OG", Symbol: "O", Pos: r3.Vec{X: 1}},
		{Name: "CA", Symbol: "C", Pos: r3.Vec{X: 2}},
		{Name: "CB", Symbol: "C", Pos: r3.Vec{X: 3}},
		{Name: "O", Symbol: "O", Pos: r3.Vec{X: 4}},
		{Name: "C", Symbol: "C", Pos: r3.Vec{X: 5}},
	}}
	lig := ligandRes(2)
	bs := &site.BindingSite{Residues: []*pocket.Residue{res}}
	f := Extract(bs, lig)
	if f.Len() != 4 {
		Te.Fatalf("fragment has %d atoms, want 4", f.Len())
	}
	if f.Atoms[2].Pos.X != 2 || f.Atoms[3].Pos.X != 4 { //CA, then O
		Te.Errorf("wrong backbone atoms: %+v", f.Atoms[2:])
	}
}

func TestExtractStatus(Te *testing.T) {
	lig := ligandRes(3)
	f := Extract(&site.BindingSite{}, lig)
	if f.Len() != 3 || f.Status != StatusInsufficient {
		Te.Errorf("3-atom fragment: len %d status %q", f.Len(), f.Status)
	}
	o := DefaultOptions()
	if def := o.MinAtoms(2); def != 4 {
		Te.Errorf("default MinAtoms = %d, want 4", def)
	}
	f = Extract(&site.BindingSite{}, lig, o)
	if !f.Ready() {
		Te.Errorf("3-atom fragment with MinAtoms=2 flagged %q", f.Status)
	}
}

func TestExtractBounds(Te *testing.T) {
	lig := ligandRes(30)
	o := DefaultOptions()
	o.MaxAtoms(8)
	f := Extract(nil, lig, o)
	if f.Len() != 8 {
		Te.Errorf("fragment has %d atoms, want 8", f.Len())
	}
	for i, at := range f.Atoms { //the first 8 ligand atoms, untouched order
		if at.Pos.Y != float64(i) {
			Te.Errorf("fragment reordered: atom %d at y=%f", i, at.Pos.Y)
		}
	}
	f = Extract(nil, nil)
	if f.Len() != 0 || f.Ready() {
		Te.Errorf("empty extraction: len %d status %q", f.Len(), f.Status)
	}
}
