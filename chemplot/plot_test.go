/*
 * plot_test.go, part of gopocket
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

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	pocket "github.com/rmera/gopocket"
	"github.com/rmera/gopocket/site"
)

//TestSiteProfile draws a profile for a hand-made pocket and checks that a
//non-empty file comes out.
func TestSiteProfile(Te *testing.T) {
	bs := &site.BindingSite{
		LigandID: "ATP_A_100",
		Residues: []*pocket.Residue{
			{Name: "LYS", Chain: "A", ID: 2},
			{Name: "GLU", Chain: "A", ID: 3},
			{Name: "VAL", Chain: "A", ID: 5},
			{Name: "UNK", Chain: "A", ID: 9}, //not in the scale, skipped
		},
		Distances: []float64{3.0, 3.5, 4.8, 2.2},
	}
	name := filepath.Join(Te.TempDir(), "profile.png")
	if err := SiteProfile(bs, "Test site profile", name); err != nil {
		Te.Fatal(err)
	}
	fi, err := os.Stat(name)
	if err != nil {
		Te.Fatal(err)
	}
	if fi.Size() == 0 {
		Te.Error("profile plot is empty")
	}
}
