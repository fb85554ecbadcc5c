/*
 * cart2sph_test.go, part of pyscf.
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
)

// TestC2SP: the p transform is a permutation-free diagonal, the plain
// sqrt(3/(4 pi)) on x, y and z in order.
func TestC2SP(Te *testing.T) {
	co := C2S(1)
	want := [3][3]float64{
		{0, 0.488602511902920, 0}, // m=-1 picks y
		{0, 0, 0.488602511902920}, // m=0 picks z
		{0.488602511902920, 0, 0}, // m=1 picks x
	}
	for m := 0; m < 3; m++ {
		for d := 0; d < 3; d++ {
			if math.Abs(co.At(m, d)-want[m][d]) > 1e-14 {
				Te.Errorf("p transform (%d,%d): got %.15f want %.15f", m, d, co.At(m, d), want[m][d])
			}
		}
	}
}

// TestC2SD pins the d-shell coefficients to the reference values of the
// raw-monomial convention.
func TestC2SD(Te *testing.T) {
	const (
		a = 1.092548430592079
		b = 0.630783130505040
		c = -0.315391565252520
		d = 0.546274215296040
	)
	// Columns follow CartComponents(2): xx, xy, xz, yy, yz, zz.
	want := [5][6]float64{
		{0, a, 0, 0, 0, 0}, // m=-2
		{0, 0, 0, 0, a, 0}, // m=-1
		{c, 0, 0, c, 0, b}, // m=0
		{0, 0, a, 0, 0, 0}, // m=1
		{d, 0, 0, -d, 0, 0}, // m=2
	}
	co := C2S(2)
	for m := 0; m < 5; m++ {
		for col := 0; col < 6; col++ {
			if math.Abs(co.At(m, col)-want[m][col]) > 1e-13 {
				Te.Errorf("d transform (%d,%d): got %.15f want %.15f", m, col, co.At(m, col), want[m][col])
			}
		}
	}
}

// TestC2SHarmonic: every transformed polynomial must solve the Laplace
// equation, which pins the relative coefficients for all shells at once.
func TestC2SHarmonic(Te *testing.T) {
	for l := 2; l <= 6; l++ {
		comp := CartComponents(l)
		co := C2S(l)
		for m := 0; m < 2*l+1; m++ {
			// Laplacian coefficients in the monomial basis of degree l-2.
			lap := map[[3]int]float64{}
			for d, c := range comp {
				v := co.At(m, d)
				if v == 0 {
					continue
				}
				for ax := 0; ax < 3; ax++ {
					n := c[ax]
					if n < 2 {
						continue
					}
					key := c
					key[ax] -= 2
					lap[key] += v * float64(n*(n-1))
				}
			}
			for key, v := range lap {
				if math.Abs(v) > 1e-10 {
					Te.Errorf("l=%d m=%d: Laplacian term %v = %g, want 0", l, m-l, key, v)
				}
			}
		}
	}
}

// TestC2SCache: repeated calls hand back the same matrix.
func TestC2SCache(Te *testing.T) {
	if C2S(4) != C2S(4) {
		Te.Error("transform matrix not cached")
	}
}
