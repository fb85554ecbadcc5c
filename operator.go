/*
 * operator.go, part of pyscf.
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

//operator.go holds the operator catalogue. Every grid operator is the same
//evaluation pipeline instantiated with different data: how many shifted
//tables to derive and in which order, which table-index triple builds each
//raw tensor entry, and which fixed linear combination turns the raw tensor
//into output components. Keeping the catalogue as data avoids one
//hand-written kernel per operator.

package gto

// combineFunc maps the raw derivative tensor s (one simdd-lane group per
// tensor entry) to the operator's output components in buf. c is the
// negated shell center, consumed only by the cross-product combiners.
type combineFunc func(buf, s []float64, c *[3]float64)

// Operator describes one member of the grid-operator catalogue. NComp is
// the output width W, MaxOrder the highest power above l the base monomial
// table must reach, Steps the shifted-table derivation sequence, Tensor the
// table-index triple (x,y,z) of each raw tensor entry, and Fac the scalar
// prefactor the drivers fold into the primitive exponentials.
type Operator struct {
	Name     string
	NComp    int
	MaxOrder int
	Steps    []tableStep
	Tensor   [][3]int
	combine  combineFunc
	needC    bool
	Fac      float64
}

// The raw-tensor layouts shared across the catalogue: one entry per
// operator direction for first-order operators, nine entries (three per
// gradient direction) for the gradients of first-order operators.
var (
	tensor1 = [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	tensor2 = [][3]int{
		{3, 0, 0}, {2, 1, 0}, {2, 0, 1},
		{1, 2, 0}, {0, 3, 0}, {0, 2, 1},
		{1, 0, 2}, {0, 1, 2}, {0, 0, 3},
	}
	tensor0 = [][3]int{{0, 0, 0}}
)

// crossCombine builds the signed cross product of c with each group of
// three tensor entries: buf_x = -c_y*s_z + c_z*s_y and cyclic.
func crossCombine(groups int) combineFunc {
	return func(buf, s []float64, c *[3]float64) {
		for d := 0; d < groups; d++ {
			b := buf[d*3*simdd:]
			sv := s[d*3*simdd:]
			for n := 0; n < simdd; n++ {
				b[0*simdd+n] = -c[1]*sv[2*simdd+n] + c[2]*sv[1*simdd+n]
				b[1*simdd+n] = -c[2]*sv[0*simdd+n] + c[0]*sv[2*simdd+n]
				b[2*simdd+n] = -c[0]*sv[1*simdd+n] + c[1]*sv[0*simdd+n]
			}
		}
	}
}

// sigmaCombine negates each group of three tensor entries and pads a zero
// fourth component, the structural placeholder the two-component spinor
// algebra expects.
func sigmaCombine(groups int) combineFunc {
	return func(buf, s []float64, c *[3]float64) {
		for d := 0; d < groups; d++ {
			b := buf[d*4*simdd:]
			sv := s[d*3*simdd:]
			for n := 0; n < simdd; n++ {
				b[0*simdd+n] = -sv[0*simdd+n]
				b[1*simdd+n] = -sv[1*simdd+n]
				b[2*simdd+n] = -sv[2*simdd+n]
				b[3*simdd+n] = 0
			}
		}
	}
}

// copyCombine passes the raw tensor through unchanged.
func copyCombine(ncomp int) combineFunc {
	return func(buf, s []float64, c *[3]float64) {
		for m := 0; m < ncomp*simdd; m++ {
			buf[m] = s[m]
		}
	}
}

// The catalogue. Names follow the original convention: ip marks a nabla,
// ig the GIAO gauge operator, sp sigma-dot-p, r the position relative to
// the shell center and rc the position relative to the common origin.
var (
	// Val evaluates the plain orbital values.
	Val = &Operator{Name: "val", NComp: 1, MaxOrder: 0,
		Tensor: tensor0, combine: copyCombine(1), Fac: 1}

	// ValIp evaluates the three gradient components.
	ValIp = &Operator{Name: "ip", NComp: 3, MaxOrder: 1,
		Steps:  []tableStep{{shiftDeriv, 1, 0, 0}},
		Tensor: tensor1, combine: copyCombine(3), Fac: 1}

	// ValR weights the values with the position relative to the shell
	// center.
	ValR = &Operator{Name: "r", NComp: 3, MaxOrder: 1,
		Steps:  []tableStep{{shiftRaw, 1, 0, 0}},
		Tensor: tensor1, combine: copyCombine(3), Fac: 1}

	// ValIg evaluates the GIAO gauge operator, a signed cross product of
	// the shell center with the position-weighted values.
	ValIg = &Operator{Name: "ig", NComp: 3, MaxOrder: 1,
		Steps:  []tableStep{{shiftRecenter, 1, 0, 0}},
		Tensor: tensor1, combine: crossCombine(1), needC: true, Fac: 0.5}

	// ValIpIg evaluates the gradient of the GIAO gauge operator.
	ValIpIg = &Operator{Name: "ipig", NComp: 9, MaxOrder: 2,
		Steps: []tableStep{
			{shiftRecenter, 1, 0, 0},
			{shiftDeriv, 2, 0, 1},
			{shiftRecenter, 3, 2, 0},
		},
		Tensor: tensor2, combine: crossCombine(3), needC: true, Fac: 0.5}

	// ValSp evaluates sigma-dot-p, three negated gradient components plus
	// a zero spinor placeholder.
	ValSp = &Operator{Name: "sp", NComp: 4, MaxOrder: 1,
		Steps:  []tableStep{{shiftDeriv, 1, 0, 0}},
		Tensor: tensor1, combine: sigmaCombine(1), Fac: 1}

	// ValIpSp evaluates the gradient of sigma-dot-p.
	ValIpSp = &Operator{Name: "ipsp", NComp: 12, MaxOrder: 2,
		Steps: []tableStep{
			{shiftDeriv, 1, 0, 0},
			{shiftDeriv, 2, 0, 1},
			{shiftDeriv, 3, 2, 0},
		},
		Tensor: tensor2, combine: sigmaCombine(3), Fac: 1}

	// ValIpRC evaluates the gradient of the position relative to the
	// common origin, times the orbital.
	ValIpRC = &Operator{Name: "iprc", NComp: 9, MaxOrder: 2,
		Steps: []tableStep{
			{shiftCommon, 1, 0, 0},
			{shiftDeriv, 2, 0, 1},
			{shiftCommon, 3, 2, 0},
		},
		Tensor: tensor2, combine: copyCombine(9), Fac: 1}

	// ValIpR evaluates the gradient of the center-relative position times
	// the orbital.
	ValIpR = &Operator{Name: "ipr", NComp: 9, MaxOrder: 2,
		Steps: []tableStep{
			{shiftRaw, 1, 0, 0},
			{shiftDeriv, 2, 0, 1},
			{shiftRaw, 3, 2, 0},
		},
		Tensor: tensor2, combine: copyCombine(9), Fac: 1}
)

// Operators resolves an operator by catalogue name.
var Operators = map[string]*Operator{
	"val":  Val,
	"ip":   ValIp,
	"r":    ValR,
	"ig":   ValIg,
	"ipig": ValIpIg,
	"sp":   ValSp,
	"ipsp": ValIpSp,
	"iprc": ValIpRC,
	"ipr":  ValIpR,
}
