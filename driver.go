/*
 * driver.go, part of pyscf.
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

//driver.go iterates grid blocks and shells, preparing the per-block data
//the kernel consumes and assembling the full AO value tensor. Blocks write
//disjoint column ranges, so the concurrent drivers fan blocks out over
//goroutines with no locking.

package gto

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// EvalCart evaluates the named operator for every shell over the grid, one
// row per grid point, producing Cartesian-component AO values. The operator
// prefactor and the common angular factor are folded into the primitive
// exponentials, as the reference implementation does.
func EvalCart(opName string, shells []*Shell, grid *mat.Dense, env *Env) (*AOValues, error) {
	op, ngrids, err := evalSetup(opName, shells, grid, "EvalCart")
	if err != nil {
		return nil, err
	}
	ao := NewAOValues(op.NComp, NCartBas(shells), ngrids)
	blk := NewGridBlock(maxPrim(shells))
	for b := 0; b < ngrids; b += BLKSIZE {
		evalCartBlock(op, shells, grid, env, ao, blk, b)
	}
	return ao, nil
}

// EvalCartConcurrent is EvalCart with the blocks distributed over gorut
// goroutines. Zero or negative gorut means one per CPU. The result is
// bit-identical to the serial driver: block boundaries, not scheduling,
// fix the accumulation order.
func EvalCartConcurrent(opName string, shells []*Shell, grid *mat.Dense, env *Env, gorut int) (*AOValues, error) {
	op, ngrids, err := evalSetup(opName, shells, grid, "EvalCartConcurrent")
	if err != nil {
		return nil, err
	}
	ao := NewAOValues(op.NComp, NCartBas(shells), ngrids)
	if gorut <= 0 {
		gorut = runtime.NumCPU()
	}
	np := maxPrim(shells)
	var wg sync.WaitGroup
	for w := 0; w < gorut; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			blk := NewGridBlock(np)
			for b := start; b < ngrids; b += gorut * BLKSIZE {
				evalCartBlock(op, shells, grid, env, ao, blk, b)
			}
		}(w * BLKSIZE)
	}
	wg.Wait()
	return ao, nil
}

// EvalSph evaluates the named operator in the real-spherical-harmonic
// component order: each shell is evaluated into Cartesian scratch and
// transformed per block.
func EvalSph(opName string, shells []*Shell, grid *mat.Dense, env *Env) (*AOValues, error) {
	op, ngrids, err := evalSetup(opName, shells, grid, "EvalSph")
	if err != nil {
		return nil, err
	}
	ao := NewAOValues(op.NComp, NSphBas(shells), ngrids)
	blk := NewGridBlock(maxPrim(shells))
	cart := make([]float64, op.NComp*maxCart(shells)*BLKSIZE)
	for b := 0; b < ngrids; b += BLKSIZE {
		evalSphBlock(op, shells, grid, env, ao, blk, cart, b)
	}
	return ao, nil
}

// EvalSphConcurrent is EvalSph with the blocks distributed over gorut
// goroutines, one per CPU when gorut is not positive.
func EvalSphConcurrent(opName string, shells []*Shell, grid *mat.Dense, env *Env, gorut int) (*AOValues, error) {
	op, ngrids, err := evalSetup(opName, shells, grid, "EvalSphConcurrent")
	if err != nil {
		return nil, err
	}
	ao := NewAOValues(op.NComp, NSphBas(shells), ngrids)
	if gorut <= 0 {
		gorut = runtime.NumCPU()
	}
	np := maxPrim(shells)
	ncart := maxCart(shells)
	var wg sync.WaitGroup
	for w := 0; w < gorut; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			blk := NewGridBlock(np)
			cart := make([]float64, op.NComp*ncart*BLKSIZE)
			for b := start; b < ngrids; b += gorut * BLKSIZE {
				evalSphBlock(op, shells, grid, env, ao, blk, cart, b)
			}
		}(w * BLKSIZE)
	}
	wg.Wait()
	return ao, nil
}

func evalSetup(opName string, shells []*Shell, grid *mat.Dense, caller string) (*Operator, int, error) {
	op, ok := Operators[opName]
	if !ok {
		return nil, 0, CError{fmt.Sprintf("pyscf/gto: unknown grid operator %q", opName), []string{caller}}
	}
	if len(shells) == 0 {
		return nil, 0, CError{"pyscf/gto: no shells to evaluate", []string{caller}}
	}
	ngrids, cols := grid.Dims()
	if cols != 3 {
		return nil, 0, CError{fmt.Sprintf("pyscf/gto: grid must have 3 columns, got %d", cols), []string{caller}}
	}
	for _, sh := range shells {
		if sh.L > MaxL {
			return nil, 0, CError{fmt.Sprintf("pyscf/gto: angular momentum %d beyond the supported %d", sh.L, MaxL), []string{caller}}
		}
	}
	return op, ngrids, nil
}

func evalCartBlock(op *Operator, shells []*Shell, grid *mat.Dense, env *Env, ao *AOValues, blk *GridBlock, b int) {
	ngrids := ao.NGrids
	bg := ngrids - b
	if bg > BLKSIZE {
		bg = BLKSIZE
	}
	aoOff := 0
	for _, sh := range shells {
		blk.Fill(sh, grid, b, bg)
		if blk.PrimExp(sh, op.Fac*CommonFacSp(sh.L)) {
			op.EvalShell(ao.Data[aoOff*ngrids+b:], sh, blk, env, ao.NAO, ngrids)
		} else {
			zeroSub(ao, aoOff, sh.NCart(), b, bg)
		}
		aoOff += sh.NCart()
	}
}

func evalSphBlock(op *Operator, shells []*Shell, grid *mat.Dense, env *Env, ao *AOValues, blk *GridBlock, cart []float64, b int) {
	ngrids := ao.NGrids
	bg := ngrids - b
	if bg > BLKSIZE {
		bg = BLKSIZE
	}
	aoOff := 0
	for _, sh := range shells {
		blk.Fill(sh, grid, b, bg)
		if blk.PrimExp(sh, op.Fac*CommonFacSp(sh.L)) {
			nd := sh.NCart()
			op.EvalShell(cart, sh, blk, env, nd, bg)
			for w := 0; w < op.NComp; w++ {
				dst := ao.Data[(w*ao.NAO+aoOff)*ngrids+b:]
				src := cart[w*nd*bg:]
				sphTransform(sh.L, dst, ngrids, src, bg, sh.NCtr())
			}
		} else {
			zeroSub(ao, aoOff, sh.NSph(), b, bg)
		}
		aoOff += sh.NSph()
	}
}

// zeroSub clears the rows of a fully screened-out shell; the output
// contract promises zeros, not stale memory.
func zeroSub(ao *AOValues, aoOff, nfunc, b, bg int) {
	for w := 0; w < ao.NComp; w++ {
		for n := 0; n < nfunc; n++ {
			row := ao.Data[(w*ao.NAO+aoOff+n)*ao.NGrids+b:]
			for i := 0; i < bg; i++ {
				row[i] = 0
			}
		}
	}
}

func maxPrim(shells []*Shell) int {
	m := 0
	for _, s := range shells {
		if s.NPrim() > m {
			m = s.NPrim()
		}
	}
	return m
}

func maxCart(shells []*Shell) int {
	m := 0
	for _, s := range shells {
		if s.NCart() > m {
			m = s.NCart()
		}
	}
	return m
}
