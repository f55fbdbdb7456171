/*
 * plot.go, part of gopocket
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

//Package chemplot draws binding-site profiles. It is a convenience layer on
//top of gonum/plot; nothing in the analysis packages depends on it.
package chemplot

import (
	"image/color"

	pocket "github.com/rmera/gopocket"
	"github.com/rmera/gopocket/site"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//SiteProfile plots, one point per pocket residue, the shortest distance to
//the ligand (X) against the residue's Kyte-Doolittle hydropathy (Y), and
//saves the plot to plotname (the extension selects the format, e.g. .png).
//Residues outside the Kyte-Doolittle scale are left out of the plot.
func SiteProfile(bs *site.BindingSite, title, plotname string) error {
	if bs == nil {
		panic("Given nil binding site")
	}
	pts := make(plotter.XYs, 0, bs.Len())
	for i, res := range bs.Residues {
		kd, ok := pocket.Hydrophobicity(res.Name)
		if !ok {
			continue
		}
		pts = append(pts, plotter.XY{X: bs.Distances[i], Y: kd})
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance to ligand (A)"
	p.Y.Label.Text = "Kyte-Doolittle hydropathy"
	//Constant hydropathy axis, so profiles of different sites
	//can be compared side by side.
	p.Y.Min = -4.5
	p.Y.Max = 4.5
	p.Add(plotter.NewGrid())
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(s)
	return p.Save(10*vg.Centimeter, 10*vg.Centimeter, plotname)
}
