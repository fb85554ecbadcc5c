/*
 * gto.go, part of pyscf.
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

const (
	// BLKSIZE is the number of grid points processed per block.
	BLKSIZE = 56
	// simdd is the lane width of the blocked inner loops. BLKSIZE must be
	// a multiple of it.
	simdd = 4
	// NPRIMAX is the largest primitive count a shell may carry.
	NPRIMAX = 40
	// MaxL is the largest supported angular momentum. The scratch tables
	// hold powers up to tableHeight-1 and second-order operators need
	// powers up to l+2.
	MaxL = 12

	// tableHeight is the power-table stride, sized for MaxL plus the
	// highest derivative order plus slack, as in the reference kernels.
	tableHeight = 16
)

// Shell is an immutable contracted-shell descriptor: all basis functions
// sharing one center and one set of primitive exponents. Coeff holds the
// contraction coefficients as nc rows of np columns, row-major, so that
// Coeff[j*np+k] scales primitive k in contracted function j. The evaluation
// kernels read shells, never write them.
type Shell struct {
	L     int
	R     [3]float64
	Exp   []float64
	Coeff []float64
}

// NPrim returns the number of primitives in the shell.
func (s *Shell) NPrim() int { return len(s.Exp) }

// NCtr returns the number of contracted functions in the shell.
func (s *Shell) NCtr() int { return len(s.Coeff) / len(s.Exp) }

// Degen returns the number of degenerate Cartesian components, (l+1)(l+2)/2.
func (s *Shell) Degen() int { return (s.L + 1) * (s.L + 2) / 2 }

// NCart returns the number of Cartesian basis functions in the shell.
func (s *Shell) NCart() int { return s.NCtr() * s.Degen() }

// NSph returns the number of spherical-harmonic basis functions.
func (s *Shell) NSph() int { return s.NCtr() * (2*s.L + 1) }

// Env carries the per-calculation global settings shared by every shell,
// such as the common gauge/reference origin consumed by the iprc operator.
type Env struct {
	CommonOrigin [3]float64
}

// CartComponents returns the canonical ordered Cartesian angular components
// for angular momentum l: lx descending from l, then ly descending from
// l-lx, with lz fixed by the total. Every downstream component layout
// (spherical transforms included) depends on this exact order.
func CartComponents(l int) [][3]int {
	comp := make([][3]int, 0, (l+1)*(l+2)/2)
	for lx := l; lx >= 0; lx-- {
		for ly := l - lx; ly >= 0; ly-- {
			comp = append(comp, [3]int{lx, ly, l - lx - ly})
		}
	}
	return comp
}

// AOValues is the output tensor of an evaluation: NComp operator components,
// each an NAO x NGrids matrix of basis-function values, stored contiguously.
// The grid stride is the total grid size, not the block size, so a kernel
// invocation writes a sub-range of each component.
type AOValues struct {
	Data   []float64
	NComp  int
	NAO    int
	NGrids int
}

// NewAOValues allocates a zeroed value tensor.
func NewAOValues(ncomp, nao, ngrids int) *AOValues {
	return &AOValues{
		Data:   make([]float64, ncomp*nao*ngrids),
		NComp:  ncomp,
		NAO:    nao,
		NGrids: ngrids,
	}
}

// Comp returns the w-th operator component as an NAO*NGrids slice, a view
// into the shared backing array.
func (ao *AOValues) Comp(w int) []float64 {
	n := ao.NAO * ao.NGrids
	return ao.Data[w*n : (w+1)*n]
}

// At returns the value of basis function mu at grid point g for operator
// component w.
func (ao *AOValues) At(w, mu, g int) float64 {
	return ao.Data[(w*ao.NAO+mu)*ao.NGrids+g]
}

// NCartBas returns the total number of Cartesian basis functions in a
// shell list.
func NCartBas(shells []*Shell) int {
	n := 0
	for _, s := range shells {
		n += s.NCart()
	}
	return n
}

// NSphBas returns the total number of spherical basis functions in a
// shell list.
func NSphBas(shells []*Shell) int {
	n := 0
	for _, s := range shells {
		n += s.NSph()
	}
	return n
}
