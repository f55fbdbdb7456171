/*
 * atomicdata.go, part of gopocket
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

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map between 3-letter names for aminoacidic residues and the corresponding
//1-letter names.
var three2OneLetter = map[string]byte{
	"SER": 'S',
	"THR": 'T',
	"ASN": 'N',
	"GLN": 'Q',
	"SEC": 'U', //Selenocysteine!
	"CYS": 'C',
	"GLY": 'G',
	"PRO": 'P',
	"ALA": 'A',
	"VAL": 'V',
	"ILE": 'I',
	"LEU": 'L',
	"MET": 'M',
	"PHE": 'F',
	"TYR": 'Y',
	"TRP": 'W',
	"ARG": 'R',
	"HIS": 'H',
	"LYS": 'K',
	"ASP": 'D',
	"GLU": 'E',
}

//The Kyte-Doolittle hydropathy scale for the 20 standard aminoacids
//(DOI:10.1016/0022-2836(82)90515-0). Positive values mean hydrophobic.
var kyteDoolittle = map[string]float64{
	"ILE": 4.5,
	"VAL": 4.2,
	"LEU": 3.8,
	"PHE": 2.8,
	"CYS": 2.5,
	"MET": 1.9,
	"ALA": 1.8,
	"GLY": -0.4,
	"THR": -0.7,
	"SER": -0.8,
	"TRP": -0.9,
	"TYR": -1.3,
	"PRO": -1.6,
	"HIS": -3.2,
	"GLU": -3.5,
	"GLN": -3.5,
	"ASP": -3.5,
	"ASN": -3.5,
	"LYS": -3.9,
	"ARG": -4.5,
}

//Hydrophobicity returns the Kyte-Doolittle hydropathy value for a 3-letter
//residue name, and whether the name is in the scale at all. Names absent
//from the scale (waters, ligands, modified residues) get 0 and false.
func Hydrophobicity(resname string) (float64, bool) {
	v, ok := kyteDoolittle[resname]
	return v, ok
}

//Residue names that are taken to be water.
var waterNames = []string{"HOH", "WAT"}

//IsWaterName returns whether the given 3-letter residue name is one of the
//recognized water names.
func IsWaterName(resname string) bool {
	return isInString(waterNames, resname)
}

//The atom names forming the protein backbone, in their conventional order.
var backboneNames = []string{"N", "CA", "C", "O"}

//IsBackbone returns whether the given PDB atom name belongs to the protein
//backbone.
func IsBackbone(atname string) bool {
	return isInString(backboneNames, atname)
}

//NOTE: To be replaced when the generic functions
//make it to Go's stdlib.

//isInString returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
