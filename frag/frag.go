/*
 * frag.go, part of gopocket
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

//Package frag cuts a size-bounded atomic fragment out of a binding site, to
//be handed to an external energy-estimation program. The fragment is just an
//ordered list of element symbols and positions; what the consumer computes
//with it is its own business.
package frag

import (
	pocket "github.com/rmera/gopocket"
	"github.com/rmera/gopocket/site"
	"gonum.org/v1/gonum/spatial/r3"
)

//Advisory fragment states. An "insufficient" fragment is still returned
//whole; the status only tells the consumer it is below the configured
//minimum size.
const (
	StatusReady        = "ready"
	StatusInsufficient = "insufficient"
)

//Per pocket residue, at most this many backbone atoms enter the fragment.
const backbonePerResidue = 2

//Options holds the size bounds for fragment extraction.
type Options struct {
	maxAtoms int
	minAtoms int
}

//DefaultOptions returns an Options with the default size bounds.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.maxAtoms = 20
	ret.minAtoms = 4
	return ret
}

//MaxAtoms returns the maximum number of atoms in a fragment and sets it,
//if a valid value is given.
func (o *Options) MaxAtoms(max ...int) int {
	ret := o.maxAtoms
	if len(max) > 0 && max[0] > 0 {
		o.maxAtoms = max[0]
	}
	return ret
}

//MinAtoms returns the number of atoms under which a fragment is flagged
//"insufficient" and sets it, if a valid value is given.
func (o *Options) MinAtoms(min ...int) int {
	ret := o.minAtoms
	if len(min) > 0 && min[0] > 0 {
		o.minAtoms = min[0]
	}
	return ret
}

//FragAtom is one atom of a fragment: an element symbol and a position in A.
type FragAtom struct {
	Symbol string
	Pos    r3.Vec
}

//Fragment is an ordered, size-bounded list of atoms plus an advisory status.
type Fragment struct {
	Atoms  []FragAtom
	Status string
}

//Len returns the number of atoms in the fragment.
func (F *Fragment) Len() int { return len(F.Atoms) }

//Ready returns whether the fragment reached the configured minimum size.
func (F *Fragment) Ready() bool { return F.Status == StatusReady }

//Extract builds the fragment for a binding site: every ligand atom first, in
//its original order, then, per pocket residue in pocket order, up to 2
//backbone atoms (N, CA, C or O, in the residue's own atom order). The
//concatenated list is truncated from the end, never reordered, to the
//maximum atom count. Extract never fails; a nil site or ligand just
//contributes nothing.
func Extract(bs *site.BindingSite, lig *pocket.Residue, options ...*Options) *Fragment {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	ret := new(Fragment)
	ret.Atoms = make([]FragAtom, 0, o.maxAtoms)
	if lig != nil {
		for _, at := range lig.Atoms {
			ret.Atoms = append(ret.Atoms, FragAtom{Symbol: at.Symbol, Pos: at.Pos})
		}
	}
	if bs != nil {
		for _, res := range bs.Residues {
			taken := 0
			for _, at := range res.Atoms {
				if taken >= backbonePerResidue {
					break
				}
				if pocket.IsBackbone(at.Name) {
					ret.Atoms = append(ret.Atoms, FragAtom{Symbol: at.Symbol, Pos: at.Pos})
					taken++
				}
			}
		}
	}
	if len(ret.Atoms) > o.maxAtoms {
		ret.Atoms = ret.Atoms[:o.maxAtoms]
	}
	ret.Status = StatusInsufficient
	if len(ret.Atoms) >= o.minAtoms {
		ret.Status = StatusReady
	}
	return ret
}
