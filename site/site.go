/*
 * site.go, part of gopocket
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

//Package site locates the binding pocket around a ligand and derives the
//geometric and physicochemical descriptors used to judge its druggability.
package site

import (
	"fmt"

	pocket "github.com/rmera/gopocket"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

//Empirical calibration constants for the pocket-volume heuristic. They are
//tunable values, not physical law: PaddingVdW approximates the van der Waals
//envelope around the bounding box and PackingFactor the fraction of the box
//actually occupied. Change them and the volumes lose comparability with
//previously computed ones.
const (
	PaddingVdW    = 3.0
	PackingFactor = 0.52
)

//DefaultCutoff is the pocket selection cutoff, in A, used when no Options
//are given.
const DefaultCutoff = 5.0

//Options holds the parameters for the pocket analysis.
type Options struct {
	cutoff float64
}

//DefaultOptions returns an Options with the default values.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cutoff = DefaultCutoff
	return ret
}

//Cutoff returns the pocket selection cutoff, in A, and sets it
//to the given value, if a valid one is given.
func (o *Options) Cutoff(cutoff ...float64) float64 {
	ret := o.cutoff
	if len(cutoff) > 0 && cutoff[0] > 0 {
		o.cutoff = cutoff[0]
	}
	return ret
}

//BindingSite describes the protein environment of one ligand. It is derived
//data, computed on demand by Analyze and not mutated afterwards.
type BindingSite struct {
	LigandID string //"NAME_CHAIN_RESID"
	//The pocket residues, in chain order, and the shortest distance
	//from each to the ligand, as a parallel slice.
	Residues  []*pocket.Residue
	Distances []float64
	//Volume is a bounding-box estimate in cubic A. It systematically
	//overestimates elongated pockets; see boxVolume.
	Volume float64
	//Centroid of the ligand atoms themselves, not of the pocket.
	Centroid r3.Vec
	//Fraction of pocket residues that are hydrophobic on the
	//Kyte-Doolittle scale. Always in [0,1].
	HydrophobicFrac float64
	//Number of N and O atoms among the pocket residues. A coarse proxy
	//for hydrogen-bonding capacity, not a donor/acceptor assignment.
	HBondSites int
}

//Len returns the number of residues in the pocket.
func (B *BindingSite) Len() int { return len(B.Residues) }

//Analyze computes the binding site of lig within mol: every protein-chain
//residue with at least one atom within the cutoff of any ligand atom
//(distances compared inclusively) belongs to the pocket. Degenerate inputs
//(empty ligand, no pocket residues) yield zero-valued descriptors, not an
//error; the only errors are nil arguments.
func Analyze(mol *pocket.Structure, lig *pocket.Residue, options ...*Options) (*BindingSite, error) {
	if mol == nil || lig == nil {
		return nil, CError{"nil structure or ligand", []string{"site.Analyze"}}
	}
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	ret := new(BindingSite)
	ret.LigandID = fmt.Sprintf("%s_%s_%d", lig.Name, lig.Chain, lig.ID)
	for _, res := range mol.ProteinResidues() {
		if pocket.ResidueNear(res, lig.Atoms, o.cutoff, true) {
			ret.Residues = append(ret.Residues, res)
			ret.Distances = append(ret.Distances, pocket.MinDist(res, lig.Atoms))
		}
	}
	ret.Centroid = pocket.Centroid(lig.Atoms)
	ret.Volume = boxVolume(lig, ret.Residues)
	hydro := 0
	for _, res := range ret.Residues {
		if kd, ok := pocket.Hydrophobicity(res.Name); ok && kd > 0 {
			hydro++
		}
		for _, at := range res.Atoms {
			if at.Symbol == "N" || at.Symbol == "O" {
				ret.HBondSites++
			}
		}
	}
	if len(ret.Residues) > 0 {
		ret.HydrophobicFrac = float64(hydro) / float64(len(ret.Residues))
	}
	return ret, nil
}

//boxVolume estimates the pocket volume from the axis-aligned bounding box of
//the ligand and pocket atoms: each extent is padded by PaddingVdW and the
//padded box volume is scaled by PackingFactor. This is a deliberate, literal
//heuristic kept for compatibility with previous results, not a geometric
//volume: elongated pockets come out too large.
func boxVolume(lig *pocket.Residue, pocketres []*pocket.Residue) float64 {
	n := len(lig.Atoms)
	for _, res := range pocketres {
		n += len(res.Atoms)
	}
	if n == 0 {
		return 0
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	zs := make([]float64, 0, n)
	gather := func(atoms []*pocket.Atom) {
		for _, at := range atoms {
			xs = append(xs, at.Pos.X)
			ys = append(ys, at.Pos.Y)
			zs = append(zs, at.Pos.Z)
		}
	}
	gather(lig.Atoms)
	for _, res := range pocketres {
		gather(res.Atoms)
	}
	vol := PackingFactor
	for _, axis := range [][]float64{xs, ys, zs} {
		vol *= floats.Max(axis) - floats.Min(axis) + PaddingVdW
	}
	return vol
}
