/*
 * cart2sph.go, part of pyscf.
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

//cart2sph.go transforms Cartesian-component values to real spherical
//harmonics. The coefficient matrices are generated from the closed form of
//Schlegel and Frisch (Int J Quantum Chem 54, 83, 1995), rescaled from their
//normalized-Cartesian convention to the raw monomial values the kernel
//produces. l=0 and l=1 are trivial here because their angular factors are
//folded into the primitive exponentials by the drivers; p components keep
//the x,y,z order, higher shells run m from -l to l.

package gto

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

var (
	c2sMu    sync.Mutex
	c2sCache = map[int]*mat.Dense{}
)

// C2S returns the (2l+1) x degen coefficient matrix turning the canonical
// Cartesian components of a shell into real spherical harmonics, rows
// ordered m=-l..l. The drivers bypass it for l<2, where the transform
// reduces to a copy with the angular factor folded into the exponentials.
// The matrix is cached; callers must treat it as read-only.
func C2S(l int) *mat.Dense {
	c2sMu.Lock()
	defer c2sMu.Unlock()
	if co, ok := c2sCache[l]; ok {
		return co
	}
	comp := CartComponents(l)
	co := mat.NewDense(2*l+1, len(comp), nil)
	for m := -l; m <= l; m++ {
		for d, c := range comp {
			co.Set(m+l, d, sphCoeff(l, m, c[0], c[1], c[2]))
		}
	}
	c2sCache[l] = co
	return co
}

// sphCoeff is the coefficient of the monomial x^lx y^ly z^lz in the real
// spherical harmonic Y_lm, m>=0 the cosine branch and m<0 the sine branch.
func sphCoeff(l, m, lx, ly, lz int) float64 {
	ma := m
	if ma < 0 {
		ma = -ma
	}
	j2 := lx + ly - ma
	if j2 < 0 || j2%2 != 0 {
		return 0
	}
	j := j2 / 2

	pref := math.Sqrt(fact(2*lx) * fact(2*ly) * fact(2*lz) * fact(l) * fact(l-ma) /
		(fact(lx) * fact(ly) * fact(lz) * fact(2*l) * fact(l+ma)))
	pref /= math.Ldexp(fact(l), l)

	outer := 0.0
	for i := j; 2*i <= l-ma; i++ {
		t := float64(combin.Binomial(l, i)*combin.Binomial(i, j)) *
			fact(2*l-2*i) / fact(l-ma-2*i)
		if i%2 == 1 {
			t = -t
		}
		outer += t
	}

	inner := 0.0
	for k := 0; k <= j; k++ {
		b := lx - 2*k
		if b < 0 || b > ma {
			continue
		}
		parity := ma - b // ma - lx + 2k, always >= 0 here
		t := float64(combin.Binomial(j, k) * combin.Binomial(ma, b))
		if m >= 0 {
			if parity%2 != 0 {
				continue
			}
			if (parity/2)%2 == 1 {
				t = -t
			}
		} else {
			if parity%2 == 0 {
				continue
			}
			if ((parity-1)/2)%2 == 1 {
				t = -t
			}
		}
		inner += t
	}

	c := pref * outer * inner
	if m != 0 {
		c *= math.Sqrt2
	}
	// From normalized-Cartesian to raw monomials, plus the harmonic
	// normalization itself.
	c *= math.Sqrt(dfact(2*l-1) / (dfact(2*lx-1) * dfact(2*ly-1) * dfact(2*lz-1)))
	c *= math.Sqrt(float64(2*l+1) / (4 * math.Pi))
	return c
}

// sphTransform applies C2S to the Cartesian scratch of one shell and one
// operator component: src holds nc*degen rows of bg values, dst the
// corresponding nc*(2l+1) rows with the full-grid stride ngrids.
func sphTransform(l int, dst []float64, ngrids int, src []float64, bg, nc int) {
	degen := (l + 1) * (l + 2) / 2
	if l < 2 {
		for n := 0; n < nc*degen; n++ {
			copy(dst[n*ngrids:n*ngrids+bg], src[n*bg:(n+1)*bg])
		}
		return
	}
	co := C2S(l)
	nsph := 2*l + 1
	for j := 0; j < nc; j++ {
		for m := 0; m < nsph; m++ {
			row := dst[(j*nsph+m)*ngrids:]
			for i := 0; i < bg; i++ {
				row[i] = 0
			}
			for d := 0; d < degen; d++ {
				cmd := co.At(m, d)
				if cmd == 0 {
					continue
				}
				s := src[(j*degen+d)*bg:]
				for i := 0; i < bg; i++ {
					row[i] += cmd * s[i]
				}
			}
		}
	}
}

func fact(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func dfact(n int) float64 {
	f := 1.0
	for i := n; i > 1; i -= 2 {
		f *= float64(i)
	}
	return f
}
