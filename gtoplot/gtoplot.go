/*
 * gtoplot.go, part of pyscf.
 *
 * Copyright 2024 The pyscf developers
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

//Package gtoplot renders atomic-orbital values along a straight line
//through space, a quick visual check of a basis before running anything
//expensive on it.
package gtoplot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	gto "github.com/maxnus/pyscf"
)

// Line is a straight probe through space: npoints points from a to b.
type Line struct {
	A, B    [3]float64
	NPoints int
}

// Grid materializes the probe as a gonum matrix of grid coordinates.
func (ln *Line) Grid() *mat.Dense {
	n := ln.NPoints
	g := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		for c := 0; c < 3; c++ {
			g.Set(i, c, ln.A[c]+t*(ln.B[c]-ln.A[c]))
		}
	}
	return g
}

// Profile evaluates the given orbitals (by spherical AO index) along the
// line and writes a PNG plot to filename.
func Profile(shells []*gto.Shell, ln *Line, aos []int, title, filename string) error {
	if ln.NPoints < 2 {
		return fmt.Errorf("pyscf/gtoplot: need at least 2 points on the line")
	}
	grid := ln.Grid()
	vals, err := gto.EvalSph("val", shells, grid, nil)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "position along line (Bohr)"
	p.Y.Label.Text = "AO value"
	p.Add(plotter.NewGrid())
	length := 0.0
	for c := 0; c < 3; c++ {
		d := ln.B[c] - ln.A[c]
		length += d * d
	}
	length = math.Sqrt(length)
	for _, mu := range aos {
		if mu < 0 || mu >= vals.NAO {
			return fmt.Errorf("pyscf/gtoplot: AO index %d out of range", mu)
		}
		pts := make(plotter.XYs, ln.NPoints)
		for i := range pts {
			pts[i].X = length * float64(i) / float64(ln.NPoints-1)
			pts[i].Y = vals.At(0, mu, i)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("AO %d", mu), line)
	}
	return p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename)
}
