/*
 * grid.go, part of pyscf.
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

	"gonum.org/v1/gonum/mat"
)

// expCutoff is the primitive screening threshold in natural-log units:
// a primitive exponential is zeroed where alpha*r^2 exceeds the cutoff
// plus the log of the largest contraction coefficient of the primitive.
const expCutoff = 60

// GridBlock holds one block of up to BLKSIZE grid points shifted to a
// shell center, plus the screened exponential factors of every primitive
// over the block. Lanes past N stay zero so the fixed-width chunks of the
// kernel can read them freely.
type GridBlock struct {
	X, Y, Z [BLKSIZE]float64
	Exps    []float64
	N       int
}

// NewGridBlock allocates a block with room for np primitives.
func NewGridBlock(np int) *GridBlock {
	return &GridBlock{Exps: make([]float64, np*BLKSIZE)}
}

// Fill loads n grid points starting at row off of grid into the block,
// shifted to the center of sh. Panics with ErrBlockSize if n exceeds
// BLKSIZE; shorter fills zero the tail lanes.
func (blk *GridBlock) Fill(sh *Shell, grid *mat.Dense, off, n int) {
	if n > BLKSIZE {
		panic(ErrBlockSize)
	}
	raw := grid.RawMatrix()
	for i := 0; i < n; i++ {
		row := raw.Data[(off+i)*raw.Stride:]
		blk.X[i] = row[0] - sh.R[0]
		blk.Y[i] = row[1] - sh.R[1]
		blk.Z[i] = row[2] - sh.R[2]
	}
	for i := n; i < BLKSIZE; i++ {
		blk.X[i] = 0
		blk.Y[i] = 0
		blk.Z[i] = 0
	}
	blk.N = n
}

// PrimExp fills the per-primitive exponential factors fac*exp(-alpha*r^2)
// over the block, zeroing any value below the screening cutoff. The cutoff
// test is shifted by the log of the largest contraction coefficient of the
// primitive, so heavily weighted primitives survive farther out. Reports
// whether any factor survived; on false the whole shell contributes nothing
// to this block.
func (blk *GridBlock) PrimExp(sh *Shell, fac float64) bool {
	np := sh.NPrim()
	nc := sh.NCtr()
	var logc [NPRIMAX]float64
	for k := 0; k < np; k++ {
		maxc := 0.0
		for j := 0; j < nc; j++ {
			if c := math.Abs(sh.Coeff[j*np+k]); c > maxc {
				maxc = c
			}
		}
		logc[k] = math.Log(maxc)
	}
	var rr [BLKSIZE]float64
	for i := 0; i < blk.N; i++ {
		rr[i] = blk.X[i]*blk.X[i] + blk.Y[i]*blk.Y[i] + blk.Z[i]*blk.Z[i]
	}
	notzero := false
	for k := 0; k < np; k++ {
		alpha := sh.Exp[k]
		row := blk.Exps[k*BLKSIZE : (k+1)*BLKSIZE]
		for i := 0; i < blk.N; i++ {
			arr := alpha * rr[i]
			if arr-logc[k] < expCutoff {
				row[i] = math.Exp(-arr) * fac
				notzero = true
			} else {
				row[i] = 0
			}
		}
		for i := blk.N; i < BLKSIZE; i++ {
			row[i] = 0
		}
	}
	return notzero
}

// nonzeroIn reports whether any of the factors is live. The skip decision
// of the blocking loop hangs on this.
func nonzeroIn(e []float64) bool {
	for _, v := range e {
		if v != 0 {
			return true
		}
	}
	return false
}

// CommonFacSp is the common angular normalization factor folded into the
// primitive exponentials: 1/sqrt(4 pi) for s shells, sqrt(3/(4 pi)) for p
// shells, one otherwise. The spherical transform matrices for l=0 and l=1
// are trivial because these factors live here.
func CommonFacSp(l int) float64 {
	switch l {
	case 0:
		return 0.282094791773878143
	case 1:
		return 0.488602511902919921
	}
	return 1
}
