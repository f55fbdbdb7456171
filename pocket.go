/*
 * pocket.go, part of gopocket
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
	"gonum.org/v1/gonum/spatial/r3"
)

//Atom contains the data for one atom as read from an ATOM or HETATM record.
//Unlike a trajectory-oriented library, this one keeps the coordinates on the
//atom itself: there is only ever one "frame" per structure.
type Atom struct {
	Name      string //PDB name, trimmed ("CA", "OE1"...)
	ID        int    //the serial number in the file
	AltLoc    byte   //alternate-location marker, 0 when absent
	MolName   string //3-letter residue name
	MolName1  byte   //the 1-letter name, 0 for non-aminoacids
	MolID     int    //residue sequence number
	Chain     string
	Occupancy float64
	Bfactor   float64
	Mass      float64 //0 if the symbol is not in the mass table
	Symbol    string
	Het       bool //did the atom come from a HETATM record?
	Pos       r3.Vec
}

//Copy returns a copy of the Atom.
func (A *Atom) Copy() *Atom {
	at := *A
	return &at
}

//Residue is a group of atoms sharing the (chain, sequence number, name) key.
//Atoms keep the order in which they appeared in the input.
type Residue struct {
	Name   string
	Chain  string
	ID     int
	Atoms  []*Atom
	Ligand bool //at least one HETATM atom, and not a water
}

//Len returns the number of atoms in the residue.
func (R *Residue) Len() int { return len(R.Atoms) }

//Atom returns the atom corresponding to the index i in the residue.
//Panics if out of range.
func (R *Residue) Atom(i int) *Atom {
	if i >= R.Len() {
		panic("Residue: requested Atom out of bounds")
	}
	return R.Atoms[i]
}

//Water returns whether the residue is named as a water.
func (R *Residue) Water() bool {
	return IsWaterName(R.Name)
}

//Chain is an ordered set of protein residues sharing a chain identifier.
//Ligands and waters are kept out of chains.
type Chain struct {
	ID       string
	Residues []*Residue
}

//Len returns the number of residues in the chain.
func (C *Chain) Len() int { return len(C.Residues) }

//Sequence returns the 1-letter aminoacidic sequence of the chain.
//Residues without a 1-letter name become "X".
func (C *Chain) Sequence() string {
	seq := make([]byte, 0, len(C.Residues))
	for _, r := range C.Residues {
		one, ok := three2OneLetter[r.Name]
		if !ok {
			one = 'X'
		}
		seq = append(seq, one)
	}
	return string(seq)
}

//Structure holds everything read from one PDB document. It is built once by
//NewStructure and not modified afterwards.
type Structure struct {
	Header  string
	Title   string
	Chains  []*Chain
	Ligands []*Residue
	Waters  []*Atom
}

//Len returns the total number of atoms in the structure, waters included.
func (S *Structure) Len() int {
	n := len(S.Waters)
	for _, c := range S.Chains {
		for _, r := range c.Residues {
			n += r.Len()
		}
	}
	for _, l := range S.Ligands {
		n += l.Len()
	}
	return n
}

//ProteinResidues returns the protein residues of every chain, flattened,
//chains in their first-seen order and residues in order within each chain.
func (S *Structure) ProteinResidues() []*Residue {
	ret := make([]*Residue, 0, 30)
	for _, c := range S.Chains {
		ret = append(ret, c.Residues...)
	}
	return ret
}

//LigandByName returns the first ligand residue with the given 3-letter name,
//or nil if the structure has no such ligand.
func (S *Structure) LigandByName(name string) *Residue {
	for _, l := range S.Ligands {
		if l.Name == name {
			return l
		}
	}
	return nil
}

//resKey is the identity key for residue grouping. Two atoms with the same
//key always belong to the same residue, whatever their order in the input.
type resKey struct {
	chain string
	id    int
	name  string
}

//NewStructure groups the given atoms into residues, classifies them and
//partitions the protein ones into chains. It never fails: no atoms just
//means an empty structure.
//
//Grouping is done with an explicit key-to-index table over an ordered slice,
//rather than by iterating a map, so the output order is deterministic:
//residues appear in the order their first atom appeared, and so do chains.
func NewStructure(atoms []*Atom, header, title string) *Structure {
	ret := &Structure{Header: header, Title: title}
	residues := make([]*Residue, 0, len(atoms)/4)
	key2res := make(map[resKey]int, len(atoms)/4)
	for _, at := range atoms {
		k := resKey{chain: at.Chain, id: at.MolID, name: at.MolName}
		i, ok := key2res[k]
		if !ok {
			i = len(residues)
			key2res[k] = i
			residues = append(residues, &Residue{Name: at.MolName, Chain: at.Chain, ID: at.MolID})
		}
		res := residues[i]
		res.Atoms = append(res.Atoms, at)
		if at.Het {
			res.Ligand = true
		}
	}
	chains := make([]*Chain, 0, 1)
	id2chain := make(map[string]int, 1)
	for _, res := range residues {
		switch {
		case res.Water():
			//waters are stored as bare atoms, and never reach
			//the chains or the ligand list.
			res.Ligand = false
			ret.Waters = append(ret.Waters, res.Atoms...)
		case res.Ligand:
			ret.Ligands = append(ret.Ligands, res)
		default:
			i, ok := id2chain[res.Chain]
			if !ok {
				i = len(chains)
				id2chain[res.Chain] = i
				chains = append(chains, &Chain{ID: res.Chain})
			}
			chains[i].Residues = append(chains[i].Residues, res)
		}
	}
	ret.Chains = chains
	return ret
}
