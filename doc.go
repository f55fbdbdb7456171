/*
 * doc.go, part of gopocket
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

/*Package pocket reads macromolecular structures from PDB-formatted text and
provides the structural types (atoms, residues, chains) and the geometric
primitives on which the binding-site analyses of the sub-packages are built.

The parser is deliberately forgiving: a line that is too short, has an
unknown record type or carries broken coordinates is skipped, never aborting
the read. Only ATOM, HETATM, HEADER and TITLE records are interpreted;
everything else in the file is ignored. The worst a malformed input can
produce is a structure with fewer atoms than expected.

Sub-packages:

site: locates the protein residues surrounding a ligand and derives the
pocket descriptors (volume, hydropathy, hydrogen-bond sites) and a
druggability score from them.

frag: cuts a size-bounded atomic fragment (ligand plus pocket backbone)
meant to be handed to an external energy-estimation program.

chemplot: plots binding-site profiles.
*/
package pocket
