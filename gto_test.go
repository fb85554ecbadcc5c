/*
 * gto_test.go, part of pyscf.
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

import "testing"

func TestShellCounts(Te *testing.T) {
	sh := &Shell{L: 2, Exp: []float64{1, 2, 3}, Coeff: make([]float64, 6)}
	if sh.NPrim() != 3 {
		Te.Errorf("NPrim: got %d want 3", sh.NPrim())
	}
	if sh.NCtr() != 2 {
		Te.Errorf("NCtr: got %d want 2", sh.NCtr())
	}
	if sh.Degen() != 6 {
		Te.Errorf("Degen: got %d want 6", sh.Degen())
	}
	if sh.NCart() != 12 {
		Te.Errorf("NCart: got %d want 12", sh.NCart())
	}
	if sh.NSph() != 10 {
		Te.Errorf("NSph: got %d want 10", sh.NSph())
	}
	lst := []*Shell{sh, {L: 0, Exp: []float64{1}, Coeff: []float64{1}}}
	if NCartBas(lst) != 13 || NSphBas(lst) != 11 {
		Te.Errorf("basis totals: cart %d sph %d", NCartBas(lst), NSphBas(lst))
	}
}

func TestAOValuesLayout(Te *testing.T) {
	ao := NewAOValues(2, 3, 5)
	if len(ao.Data) != 30 {
		Te.Fatalf("backing size: got %d want 30", len(ao.Data))
	}
	ao.Data[(1*3+2)*5+4] = 7
	if ao.At(1, 2, 4) != 7 {
		Te.Error("At does not match the documented layout")
	}
	comp := ao.Comp(1)
	if len(comp) != 15 || comp[2*5+4] != 7 {
		Te.Error("Comp view does not match the documented layout")
	}
}

func TestOperatorCatalogue(Te *testing.T) {
	widths := map[string]int{
		"val": 1, "ip": 3, "r": 3, "ig": 3,
		"sp": 4, "iprc": 9, "ipr": 9, "ipig": 9, "ipsp": 12,
	}
	if len(Operators) != len(widths) {
		Te.Errorf("catalogue size: got %d want %d", len(Operators), len(widths))
	}
	for name, w := range widths {
		op, ok := Operators[name]
		if !ok {
			Te.Errorf("operator %q missing", name)
			continue
		}
		if op.NComp != w {
			Te.Errorf("operator %q: NComp %d want %d", name, op.NComp, w)
		}
		if op.Name != name {
			Te.Errorf("operator %q: Name field says %q", name, op.Name)
		}
		if len(op.Tensor)*simdd > len((&evalScratch{}).s) {
			Te.Errorf("operator %q: tensor wider than the scratch", name)
		}
	}
}

func TestErrorDecorate(Te *testing.T) {
	var err Error = CError{"boom", nil}
	deco := err.Decorate("EvalCart")
	if len(deco) != 1 || deco[0] != "EvalCart" {
		Te.Errorf("Decorate: got %v", deco)
	}
	if err.Error() != "boom" {
		Te.Errorf("Error: got %q", err.Error())
	}
}
