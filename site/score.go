/*
 * score.go, part of gopocket
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

package site

import "math"

//The three druggability ratings.
const (
	RatingHigh        = "Highly druggable"
	RatingModerate    = "Moderately druggable"
	RatingChallenging = "Challenging target"
)

//The scoring bands. Like the volume heuristic constants, these are
//empirical calibration values reproduced literally for compatibility.
//Inner bands score 1.0, outer bands 0.5, everything else 0.
const (
	volInnerLo = 300.0
	volInnerHi = 1500.0
	volOuterLo = 200.0
	volOuterHi = 2000.0

	hydroInnerLo = 0.3
	hydroInnerHi = 0.7
	hydroOuterLo = 0.2
	hydroOuterHi = 0.8

	hbondInnerLo = 3.0
	hbondInnerHi = 15.0
	hbondOuterLo = 1.0 //no outer upper bound
)

//DrugScore is the druggability assessment of a binding site.
type DrugScore struct {
	VolumeScore float64
	HydroScore  float64
	HBondScore  float64
	Total       float64 //mean of the three, in [0,1]
	Rating      string
}

//bandScore maps v to 1.0 inside the inner band, 0.5 inside the outer band
//and 0 elsewhere. Band edges belong to their band.
func bandScore(v, innerLo, innerHi, outerLo, outerHi float64) float64 {
	switch {
	case v >= innerLo && v <= innerHi:
		return 1.0
	case v >= outerLo && v <= outerHi:
		return 0.5
	}
	return 0.0
}

//Druggability scores a pocket from its three descriptors. It is a pure
//function: two pockets with the same volume, hydrophobic fraction and
//hydrogen-bond site count always score the same, whatever else differs
//between them.
func Druggability(volume, hydrophobicFrac float64, hbondSites int) *DrugScore {
	ret := new(DrugScore)
	ret.VolumeScore = bandScore(volume, volInnerLo, volInnerHi, volOuterLo, volOuterHi)
	ret.HydroScore = bandScore(hydrophobicFrac, hydroInnerLo, hydroInnerHi, hydroOuterLo, hydroOuterHi)
	ret.HBondScore = bandScore(float64(hbondSites), hbondInnerLo, hbondInnerHi, hbondOuterLo, math.Inf(1))
	ret.Total = (ret.VolumeScore + ret.HydroScore + ret.HBondScore) / 3
	switch {
	case ret.Total >= 0.8:
		ret.Rating = RatingHigh
	case ret.Total >= 0.5:
		ret.Rating = RatingModerate
	default:
		ret.Rating = RatingChallenging
	}
	return ret
}

//Druggability scores the receiver. Only the volume, hydrophobic fraction
//and hydrogen-bond site count take part in the score.
func (B *BindingSite) Druggability() *DrugScore {
	return Druggability(B.Volume, B.HydrophobicFrac, B.HBondSites)
}
