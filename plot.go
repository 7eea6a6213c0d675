/*
 * plot.go, part of the computational-chemistry library.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mm

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//EnergyTrace plots the potential, kinetic and total energies of the
//given evaluations against their index (i.e. the simulation step) and
//saves the figure to filename. The format follows the extension, as in
//gonum/plot.
func EnergyTrace(es []Energies, filename string) error {
	if len(es) == 0 {
		return errorf("EnergyTrace: no energies to plot")
	}
	p := plot.New()
	p.Title.Text = "Energy trace"
	p.X.Label.Text = "Step"
	p.Y.Label.Text = "Energy (kcal/mol)"
	p.Add(plotter.NewGrid())

	series := []struct {
		name string
		col  color.Color
		val  func(*Energies) float64
	}{
		{"Potential", color.RGBA{R: 255, A: 255}, func(e *Energies) float64 { return e.Potential }},
		{"Kinetic", color.RGBA{B: 255, A: 255}, func(e *Energies) float64 { return e.Kinetic }},
		{"Total", color.RGBA{G: 160, A: 255}, func(e *Energies) float64 { return e.Total }},
	}
	for _, s := range series {
		pts := make(plotter.XYs, len(es))
		for i := range es {
			pts[i].X = float64(i)
			pts[i].Y = s.val(&es[i])
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return errDecorate(err, "EnergyTrace")
		}
		l.LineStyle.Color = s.col
		p.Add(l)
		p.Legend.Add(s.name, l)
	}
	if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return errDecorate(err, "EnergyTrace")
	}
	return nil
}
