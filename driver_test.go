/*
 * driver_test.go, part of pyscf.
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

package gto

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// testShells is a small water-like fake with s, sp-split and d shells,
// enough to exercise offsets, contractions and the spherical transform.
func testShells() []*Shell {
	return []*Shell{
		{L: 0, R: [3]float64{0, 0, 0.22},
			Exp:   []float64{130.7, 23.81, 6.444},
			Coeff: []float64{0.8, 1.2, 0.9}},
		{L: 0, R: [3]float64{0, 0, 0.22},
			Exp:   []float64{5.033, 1.17, 0.38},
			Coeff: []float64{-0.1, 0.4, 0.7, 0.9, 0.2, -0.3}},
		{L: 1, R: [3]float64{0, 0, 0.22},
			Exp:   []float64{5.033, 1.17, 0.38},
			Coeff: []float64{0.16, 0.61, 0.39}},
		{L: 2, R: [3]float64{0, 1.43, -0.89},
			Exp:   []float64{0.8},
			Coeff: []float64{1}},
	}
}

// testGrid spreads ngrids points over a box around the shells, spanning
// several blocks when ngrids is large enough.
func testGrid(ngrids int) *mat.Dense {
	g := mat.NewDense(ngrids, 3, nil)
	for i := 0; i < ngrids; i++ {
		t := float64(i)
		g.Set(i, 0, 2.5*math.Sin(0.7*t))
		g.Set(i, 1, 2.5*math.Cos(1.3*t))
		g.Set(i, 2, 2.0*math.Sin(0.4*t+1))
	}
	return g
}

// TestCartVsConcurrent: the concurrent driver must reproduce the serial
// one bit for bit, for a grid spanning full and partial blocks.
func TestCartVsConcurrent(Te *testing.T) {
	shells := testShells()
	grid := testGrid(130)
	for _, name := range []string{"val", "ip", "ipig", "sp", "iprc"} {
		serial, err := EvalCart(name, shells, grid, nil)
		if err != nil {
			Te.Fatal(err)
		}
		conc, err := EvalCartConcurrent(name, shells, grid, nil, 3)
		if err != nil {
			Te.Fatal(err)
		}
		for i := range serial.Data {
			if serial.Data[i] != conc.Data[i] {
				Te.Fatalf("%s: serial and concurrent differ at %d: %g vs %g",
					name, i, serial.Data[i], conc.Data[i])
			}
		}
	}
}

func TestSphVsConcurrent(Te *testing.T) {
	shells := testShells()
	grid := testGrid(61)
	serial, err := EvalSph("ip", shells, grid, nil)
	if err != nil {
		Te.Fatal(err)
	}
	conc, err := EvalSphConcurrent("ip", shells, grid, nil, 4)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range serial.Data {
		if serial.Data[i] != conc.Data[i] {
			Te.Fatalf("sph serial and concurrent differ at %d: %g vs %g",
				i, serial.Data[i], conc.Data[i])
		}
	}
}

// TestValDriverClosedForm: the full driver applies the common angular
// factor, so an s primitive evaluates to the normalized real spherical
// harmonic times the radial part.
func TestValDriverClosedForm(Te *testing.T) {
	shells := []*Shell{{L: 0, Exp: []float64{1}, Coeff: []float64{1}}}
	grid := testGrid(9)
	ao, err := EvalCart("val", shells, grid, nil)
	if err != nil {
		Te.Fatal(err)
	}
	for g := 0; g < 9; g++ {
		x, y, z := grid.At(g, 0), grid.At(g, 1), grid.At(g, 2)
		want := CommonFacSp(0) * math.Exp(-(x*x + y*y + z*z))
		if got := ao.At(0, 0, g); math.Abs(got-want) > 1e-15 {
			Te.Errorf("val point %d: got %g want %g", g, got, want)
		}
	}
}

// TestMultiShellOffsets: each shell's rows in a multi-shell evaluation
// match its single-shell evaluation.
func TestMultiShellOffsets(Te *testing.T) {
	shells := testShells()
	grid := testGrid(17)
	ao, err := EvalCart("ip", shells, grid, nil)
	if err != nil {
		Te.Fatal(err)
	}
	off := 0
	for si, sh := range shells {
		solo, err := EvalCart("ip", []*Shell{sh}, grid, nil)
		if err != nil {
			Te.Fatal(err)
		}
		for w := 0; w < 3; w++ {
			for mu := 0; mu < sh.NCart(); mu++ {
				for g := 0; g < 17; g++ {
					if ao.At(w, off+mu, g) != solo.At(w, mu, g) {
						Te.Errorf("shell %d comp %d mu %d g %d: %g vs solo %g",
							si, w, mu, g, ao.At(w, off+mu, g), solo.At(w, mu, g))
					}
				}
			}
		}
		off += sh.NCart()
	}
	if off != ao.NAO {
		Te.Errorf("offset bookkeeping: ended at %d, NAO is %d", off, ao.NAO)
	}
}

// TestSphPShell: for l<=1 the spherical transform is the identity, so the
// spherical driver must reproduce the Cartesian one exactly.
func TestSphPShell(Te *testing.T) {
	shells := []*Shell{
		{L: 0, R: [3]float64{0.3, 0, -0.1}, Exp: []float64{1.4, 0.5}, Coeff: []float64{0.7, 0.4}},
		{L: 1, R: [3]float64{-0.2, 0.6, 0}, Exp: []float64{0.9}, Coeff: []float64{1}},
	}
	grid := testGrid(23)
	sph, err := EvalSph("val", shells, grid, nil)
	if err != nil {
		Te.Fatal(err)
	}
	cart, err := EvalCart("val", shells, grid, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if sph.NAO != cart.NAO {
		Te.Fatalf("s+p basis sizes differ: sph %d cart %d", sph.NAO, cart.NAO)
	}
	for i := range sph.Data {
		if sph.Data[i] != cart.Data[i] {
			Te.Fatalf("sph and cart differ at %d for l<=1: %g vs %g", i, sph.Data[i], cart.Data[i])
		}
	}
}

// TestSphDShell checks the d-shell spherical driver against an explicit
// matrix product with the transform coefficients.
func TestSphDShell(Te *testing.T) {
	shells := []*Shell{{L: 2, R: [3]float64{0.1, -0.3, 0.2}, Exp: []float64{0.8, 2.1}, Coeff: []float64{0.9, 0.35}}}
	grid := testGrid(11)
	sph, err := EvalSph("val", shells, grid, nil)
	if err != nil {
		Te.Fatal(err)
	}
	cart, err := EvalCart("val", shells, grid, nil)
	if err != nil {
		Te.Fatal(err)
	}
	co := C2S(2)
	for m := 0; m < 5; m++ {
		for g := 0; g < 11; g++ {
			want := 0.0
			for c := 0; c < 6; c++ {
				want += co.At(m, c) * cart.At(0, c, g)
			}
			got := sph.At(0, m, g)
			if math.Abs(got-want) > 1e-14*math.Max(1, math.Abs(want)) {
				Te.Errorf("sph d m=%d g=%d: got %g want %g", m, g, got, want)
			}
		}
	}
}

func TestDriverErrors(Te *testing.T) {
	grid := testGrid(4)
	shells := testShells()
	if _, err := EvalCart("nabla", shells, grid, nil); err == nil {
		Te.Error("unknown operator accepted")
	}
	if _, err := EvalCart("val", nil, grid, nil); err == nil {
		Te.Error("empty shell list accepted")
	}
	bad := mat.NewDense(4, 2, nil)
	if _, err := EvalCart("val", shells, bad, nil); err == nil {
		Te.Error("2-column grid accepted")
	}
	tooHigh := []*Shell{{L: MaxL + 1, Exp: []float64{1}, Coeff: []float64{1}}}
	if _, err := EvalSph("val", tooHigh, grid, nil); err == nil {
		Te.Error("angular momentum beyond the table height accepted")
	}
	if _, err := EvalCart("nabla", shells, grid, nil); err != nil {
		deco := err.(Error).Decorate("")
		if len(deco) == 0 {
			Te.Error("error carries no call trace")
		}
	}
}
