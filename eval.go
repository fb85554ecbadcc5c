/*
 * eval.go, part of pyscf.
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

//eval.go is the per-shell evaluation kernel: one contracted shell, one grid
//block, one operator of the catalogue. The kernel zeroes its output
//sub-range, walks the block in simdd-wide chunks plus one remainder chunk,
//skips primitives whose exponentials vanished over a chunk, and accumulates
//primitive-major into the shared output tensor. It is pure with respect to
//its inputs and assumes exclusive ownership of the sub-range it writes.

package gto

// evalScratch is the per-invocation working memory of the kernel, sized for
// the widest operator of the catalogue so the hot loop never allocates.
type evalScratch struct {
	fx, fy, fz axisTables
	s          [9 * simdd]float64
	buf        [12 * simdd]float64
}

// EvalShell evaluates the operator for one shell over one grid block. out
// is the kernel's view of the output tensor, positioned at the shell's
// first function and the block's first point: operator component w of
// contracted function j, angular component a, lane i lives at
// out[w*nao*ngrids + (j*degen+a)*ngrids + i]. The sub-range is zeroed
// first; everything after is accumulation, so re-running on identical
// inputs reproduces the output bit for bit. env supplies the common origin
// for the common-shift operators; nil means the coordinate origin.
func (op *Operator) EvalShell(out []float64, sh *Shell, blk *GridBlock, env *Env, nao, ngrids int) {
	l := sh.L
	nc := sh.NCtr()
	degen := (l + 1) * (l + 2) / 2
	bgrids := blk.N

	var c, dri [3]float64
	if op.needC {
		c[0] = -sh.R[0]
		c[1] = -sh.R[1]
		c[2] = -sh.R[2]
	}
	if env != nil {
		dri[0] = sh.R[0] - env.CommonOrigin[0]
		dri[1] = sh.R[1] - env.CommonOrigin[1]
		dri[2] = sh.R[2] - env.CommonOrigin[2]
	} else {
		dri = sh.R
	}

	for w := 0; w < op.NComp; w++ {
		pg := out[w*nao*ngrids:]
		for n := 0; n < degen*nc; n++ {
			row := pg[n*ngrids : n*ngrids+bgrids]
			for i := range row {
				row[i] = 0
			}
		}
	}

	var scr evalScratch
	i := 0
	for ; i < bgrids+1-simdd; i += simdd {
		op.evalChunk(out, sh, blk, &scr, &c, &dri, i, simdd, nao, ngrids)
	}
	if i < bgrids {
		op.evalChunk(out, sh, blk, &scr, &c, &dri, i, bgrids-i, nao, ngrids)
	}
}

// evalChunk processes one chunk of count lanes starting at grid offset i.
// The tables are always built over full simdd lanes; only the contraction
// accumulation is trimmed to count, which is what distinguishes the
// remainder pass.
func (op *Operator) evalChunk(out []float64, sh *Shell, blk *GridBlock, scr *evalScratch, c, dri *[3]float64, i, count, nao, ngrids int) {
	l := sh.L
	np := sh.NPrim()
	nc := sh.NCtr()
	degen := (l + 1) * (l + 2) / 2
	top := l + op.MaxOrder

	for k := 0; k < np; k++ {
		e := blk.Exps[k*BLKSIZE+i:]
		if !nonzeroIn(e[:count]) {
			continue
		}
		buildBase(&scr.fx, &scr.fy, &scr.fz, blk.X[i:], blk.Y[i:], blk.Z[i:], top)
		a2 := 2 * sh.Exp[k]
		for _, st := range op.Steps {
			applyStep(st, &scr.fx, &scr.fy, &scr.fz, l, a2, &sh.R, dri)
		}
		l1 := 0
		for lx := l; lx >= 0; lx-- {
			for ly := l - lx; ly >= 0; ly-- {
				lz := l - lx - ly
				for m, t := range op.Tensor {
					tx := scr.fx.tab(t[0], lx)
					ty := scr.fy.tab(t[1], ly)
					tz := scr.fz.tab(t[2], lz)
					sm := scr.s[m*simdd:]
					for n := 0; n < simdd; n++ {
						sm[n] = e[n] * tx[n] * ty[n] * tz[n]
					}
				}
				op.combine(scr.buf[:], scr.s[:], c)
				for j := 0; j < nc; j++ {
					cf := sh.Coeff[j*np+k]
					j1 := j*degen + l1
					for w := 0; w < op.NComp; w++ {
						g := out[w*nao*ngrids+j1*ngrids+i:]
						bw := scr.buf[w*simdd:]
						for n := 0; n < count; n++ {
							g[n] += bw[n] * cf
						}
					}
				}
				l1++
			}
		}
	}
}
