/*
 * pdb.go, part of gopocket
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//titlePrefixLen is the width of the fixed prefix of a TITLE record
//(record name plus continuation field); the free text starts after it.
const titlePrefixLen = 10

//ParseAtomLine parses one fixed-column ATOM or HETATM record and returns the
//atom and true. Lines shorter than 54 characters, lines of any other record
//type and lines whose mandatory numeric fields (serial, residue number,
//coordinates) don't parse are rejected by returning (nil, false): a broken
//line is dropped, it never aborts the read around it.
//
//Occupancy and b-factor are optional; if their columns are missing or
//unparsable they default to 1.0 and 0.0 respectively. The element symbol is
//taken from its own columns when present, falling back to the first
//character of the atom name.
func ParseAtomLine(line string) (*Atom, bool) {
	if len(line) < 54 {
		return nil, false
	}
	rec := strings.TrimSpace(line[0:6])
	if rec != "ATOM" && rec != "HETATM" {
		return nil, false
	}
	at := new(Atom)
	at.Het = rec == "HETATM"
	var err error
	at.ID, err = strconv.Atoi(strings.TrimSpace(line[6:11]))
	if err != nil {
		return nil, false
	}
	at.Name = strings.TrimSpace(line[12:16])
	if line[16] != ' ' {
		at.AltLoc = line[16]
	}
	//PDB says that pos. 17 is for other thing but it is
	//used for the residue name in many real files.
	at.MolName = strings.TrimSpace(line[17:20])
	at.MolName1 = three2OneLetter[at.MolName]
	at.Chain = string(line[21])
	at.MolID, err = strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return nil, false
	}
	//We shouldn't need TrimSpace here, but not everybody uses
	//the full width of the coordinate fields when writing a PDB.
	at.Pos.X, err = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	if err != nil {
		return nil, false
	}
	at.Pos.Y, err = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	if err != nil {
		return nil, false
	}
	at.Pos.Z, err = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	if err != nil {
		return nil, false
	}
	at.Occupancy = 1.0
	if len(line) >= 60 {
		if occ, err := strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64); err == nil {
			at.Occupancy = occ
		}
	}
	if len(line) >= 66 {
		if bfac, err := strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64); err == nil {
			at.Bfactor = bfac
		}
	}
	if len(line) >= 78 {
		at.Symbol = strings.TrimSpace(line[76:78])
	}
	if at.Symbol == "" && at.Name != "" {
		at.Symbol = at.Name[0:1]
	}
	at.Mass = symbolMass[at.Symbol] //0 for unknown symbols, not an error
	return at, true
}

//ReadPDB reads a PDB document from r and assembles a Structure from its
//ATOM, HETATM, HEADER and TITLE records. All other record types, and any
//broken atom line, are ignored. The only errors returned are those of the
//reader itself.
func ReadPDB(r io.Reader) (*Structure, error) {
	buf := bufio.NewReader(r)
	atoms := make([]*Atom, 0, 100)
	header := ""
	titles := make([]string, 0, 1)
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, CError{fmt.Sprintf("failed reading PDB text: %s", err.Error()), []string{"ReadPDB"}}
		}
		line = strings.TrimRight(line, "\r\n")
		if at, ok := ParseAtomLine(line); ok {
			atoms = append(atoms, at)
		} else if strings.HasPrefix(line, "HEADER") && header == "" {
			header = strings.TrimRight(line, " \t\r\n")
		} else if strings.HasPrefix(line, "TITLE") {
			if len(line) > titlePrefixLen {
				if t := strings.TrimSpace(line[titlePrefixLen:]); t != "" {
					titles = append(titles, t)
				}
			}
		}
		if err == io.EOF {
			break
		}
	}
	return NewStructure(atoms, header, strings.Join(titles, " ")), nil
}

//PDBFileRead reads the PDB file with the given name and returns the
//assembled Structure. Files ending in ".gz" are decompressed on the fly.
func PDBFileRead(pdbname string) (*Structure, error) {
	pdbfile, err := os.Open(pdbname)
	if err != nil {
		return nil, err
	}
	defer pdbfile.Close()
	var r io.Reader = pdbfile
	if strings.HasSuffix(pdbname, ".gz") {
		gz, err := gzip.NewReader(pdbfile)
		if err != nil {
			return nil, CError{fmt.Sprintf("failed to gunzip %s: %s", pdbname, err.Error()), []string{"PDBFileRead"}}
		}
		defer gz.Close()
		r = gz
	}
	mol, err := ReadPDB(r)
	if err != nil {
		return nil, errDecorate(err, "PDBFileRead")
	}
	return mol, nil
}

//WritePDB writes the structure to w in fixed-column PDB format: protein
//chains first (with a TER after each), then ligands, then waters. The
//columns written match the ones ParseAtomLine reads, so a structure survives
//a write/read round trip.
func WritePDB(w io.Writer, mol *Structure) error {
	if mol == nil {
		return CError{"nil structure", []string{"WritePDB"}}
	}
	for _, chain := range mol.Chains {
		for _, res := range chain.Residues {
			if err := writeResidue(w, "ATOM", res); err != nil {
				return errDecorate(err, "WritePDB")
			}
		}
		if _, err := fmt.Fprintln(w, "TER"); err != nil {
			return CError{err.Error(), []string{"WritePDB"}}
		}
	}
	for _, lig := range mol.Ligands {
		if err := writeResidue(w, "HETATM", lig); err != nil {
			return errDecorate(err, "WritePDB")
		}
	}
	for _, at := range mol.Waters {
		if err := writeAtom(w, "HETATM", at); err != nil {
			return errDecorate(err, "WritePDB")
		}
	}
	_, err := fmt.Fprintln(w, "END")
	if err != nil {
		return CError{err.Error(), []string{"WritePDB"}}
	}
	return nil
}

func writeResidue(w io.Writer, rec string, res *Residue) error {
	for _, at := range res.Atoms {
		if err := writeAtom(w, rec, at); err != nil {
			return err
		}
	}
	return nil
}

func writeAtom(w io.Writer, rec string, at *Atom) error {
	var err error
	if len(at.Name) < 4 {
		_, err = fmt.Fprintf(w, "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n",
			rec, at.ID, at.Name, at.MolName, at.Chain, at.MolID,
			at.Pos.X, at.Pos.Y, at.Pos.Z, at.Occupancy, at.Bfactor, at.Symbol)
	} else if len(at.Name) == 4 {
		//4-char names take the extra column to the left.
		_, err = fmt.Fprintf(w, "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n",
			rec, at.ID, at.Name, at.MolName, at.Chain, at.MolID,
			at.Pos.X, at.Pos.Y, at.Pos.Z, at.Occupancy, at.Bfactor, at.Symbol)
	} else {
		err = CError{fmt.Sprintf("can't print PDB line for atom %d %s", at.ID, at.Name), []string{"writeAtom"}}
	}
	if err != nil {
		if _, ok := err.(Error); ok {
			return err
		}
		return CError{err.Error(), []string{"writeAtom"}}
	}
	return nil
}
