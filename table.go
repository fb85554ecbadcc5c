/*
 * table.go, part of pyscf.
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

//table.go builds the per-chunk monomial power tables and their shifted
//variants. Each axis carries up to four tables of tableHeight powers and
//simdd lanes each; table 0 is the plain monomial recurrence in the
//center-relative coordinate, tables 1..3 are produced from it by the shift
//steps an operator declares. The Gaussian exponential is never part of a
//table; it is multiplied in at combination time.

package gto

// axisTables is the scratch for one coordinate axis: four power tables of
// simdd lanes, sized for the worst-case operator of the catalogue.
type axisTables [4 * tableHeight * simdd]float64

// tab returns the sub-slice of table t starting at power p.
func (f *axisTables) tab(t, p int) []float64 {
	return f[(t*tableHeight+p)*simdd:]
}

// shiftKind selects the recurrence a table step applies.
type shiftKind int

const (
	// shiftRecenter multiplies by the absolute coordinate: the
	// center-relative table raised one power plus the center times the
	// table itself.
	shiftRecenter shiftKind = iota
	// shiftCommon multiplies by the coordinate relative to the common
	// origin of the calculation.
	shiftCommon
	// shiftRaw multiplies by the center-relative coordinate itself, a
	// pure power raise kept as a separate table copy.
	shiftRaw
	// shiftDeriv differentiates with respect to the coordinate: the
	// polynomial-derivative recurrence on the source table, with the
	// Gaussian factor's own derivative folded in as -2*alpha times the
	// power-raised source.
	shiftDeriv
)

// tableStep is one table derivation: dst = kind(src), for powers 0..l+topOff.
type tableStep struct {
	kind     shiftKind
	dst, src int
	topOff   int
}

// buildBase fills table 0 of each axis with powers 0..top of the chunk
// coordinates, one lane per grid point. O(top) multiplications per lane.
func buildBase(fx, fy, fz *axisTables, x, y, z []float64, top int) {
	for n := 0; n < simdd; n++ {
		fx[n] = 1
		fy[n] = 1
		fz[n] = 1
	}
	for p := 1; p <= top; p++ {
		for n := 0; n < simdd; n++ {
			fx[p*simdd+n] = fx[(p-1)*simdd+n] * x[n]
			fy[p*simdd+n] = fy[(p-1)*simdd+n] * y[n]
			fz[p*simdd+n] = fz[(p-1)*simdd+n] * z[n]
		}
	}
}

// applyStep derives one shifted table on all three axes. ri is the shell
// center, dri the center relative to the common origin, a2 is 2*alpha of
// the current primitive.
func applyStep(st tableStep, fx, fy, fz *axisTables, l int, a2 float64, ri, dri *[3]float64) {
	top := l + st.topOff
	switch st.kind {
	case shiftRecenter:
		shiftMul(fx.tab(st.dst, 0), fx.tab(st.src, 0), ri[0], top)
		shiftMul(fy.tab(st.dst, 0), fy.tab(st.src, 0), ri[1], top)
		shiftMul(fz.tab(st.dst, 0), fz.tab(st.src, 0), ri[2], top)
	case shiftCommon:
		shiftMul(fx.tab(st.dst, 0), fx.tab(st.src, 0), dri[0], top)
		shiftMul(fy.tab(st.dst, 0), fy.tab(st.src, 0), dri[1], top)
		shiftMul(fz.tab(st.dst, 0), fz.tab(st.src, 0), dri[2], top)
	case shiftRaw:
		shiftUp(fx.tab(st.dst, 0), fx.tab(st.src, 0), top)
		shiftUp(fy.tab(st.dst, 0), fy.tab(st.src, 0), top)
		shiftUp(fz.tab(st.dst, 0), fz.tab(st.src, 0), top)
	case shiftDeriv:
		diff(fx.tab(st.dst, 0), fx.tab(st.src, 0), a2, top)
		diff(fy.tab(st.dst, 0), fy.tab(st.src, 0), a2, top)
		diff(fz.tab(st.dst, 0), fz.tab(st.src, 0), a2, top)
	}
}

// dst_p = src_{p+1} + c*src_p, i.e. multiplication by the center-relative
// coordinate plus the constant c.
func shiftMul(dst, src []float64, c float64, top int) {
	for p := 0; p <= top; p++ {
		for n := 0; n < simdd; n++ {
			dst[p*simdd+n] = src[(p+1)*simdd+n] + c*src[p*simdd+n]
		}
	}
}

// dst_p = src_{p+1}: multiplication by the center-relative coordinate.
func shiftUp(dst, src []float64, top int) {
	for p := 0; p <= top; p++ {
		for n := 0; n < simdd; n++ {
			dst[p*simdd+n] = src[(p+1)*simdd+n]
		}
	}
}

// dst_p = p*src_{p-1} - 2alpha*src_{p+1}: the derivative of x^p times a
// Gaussian, with the exponential factor left out.
func diff(dst, src []float64, a2 float64, top int) {
	for n := 0; n < simdd; n++ {
		dst[n] = -a2 * src[simdd+n]
	}
	for p := 1; p <= top; p++ {
		for n := 0; n < simdd; n++ {
			dst[p*simdd+n] = float64(p)*src[(p-1)*simdd+n] - a2*src[(p+1)*simdd+n]
		}
	}
}
