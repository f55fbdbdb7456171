/*
 * geometric.go, part of gopocket
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

//Dist returns the Euclidean distance between a and b, in A.
func Dist(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

//InContact returns whether a and b lie within cutoff of each other. The
//inclusivity of the comparison is an explicit parameter because both
//conventions are legitimately in use: pocket-residue selection counts a
//contact at exactly the cutoff (inclusive), while clash-style overlap
//detection does not (exclusive).
func InContact(a, b r3.Vec, cutoff float64, inclusive bool) bool {
	d := Dist(a, b)
	if inclusive {
		return d <= cutoff
	}
	return d < cutoff
}

//ResidueNear returns whether any atom of res satisfies the contact
//predicate against any atom of the reference set.
func ResidueNear(res *Residue, ref []*Atom, cutoff float64, inclusive bool) bool {
	if res == nil {
		return false
	}
	for _, at := range res.Atoms {
		for _, rat := range ref {
			if InContact(at.Pos, rat.Pos, cutoff, inclusive) {
				return true
			}
		}
	}
	return false
}

//MinDist returns the shortest distance between any atom of res and any atom
//of the reference set. This is probably not a very efficient way to do it,
//but at pocket scale (tens to low hundreds of atoms) it doesn't matter.
func MinDist(res *Residue, ref []*Atom) float64 {
	dclosest := 100000.0 //some crazy large value, immediately replaced by the first real distance.
	for _, at := range res.Atoms {
		for _, rat := range ref {
			if d := Dist(at.Pos, rat.Pos); d < dclosest {
				dclosest = d
			}
		}
	}
	return dclosest
}

//Centroid returns the mean position of the given atoms, or the zero vector
//if there are none.
func Centroid(atoms []*Atom) r3.Vec {
	var c r3.Vec
	if len(atoms) == 0 {
		return c
	}
	for _, at := range atoms {
		c = r3.Add(c, at.Pos)
	}
	return r3.Scale(1/float64(len(atoms)), c)
}
