/*
 * basis.go, part of pyscf.
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

//Package basis reads Gaussian94-format basis sets and materializes the
//gto.Shell values of a molecule. A small STO-3G subset for light elements
//is built in; anything else is loaded from plain or gzipped files.
package basis

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/exp/slices"

	gto "github.com/maxnus/pyscf"
)

// Error is the error type of the package, following the library convention.
type Error struct {
	msg  string
	deco []string
}

func (err Error) Error() string { return err.msg }

func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// symbols indexes element symbols by atomic number; index 0 is the dummy
// center.
var symbols = []string{"X",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
}

// AtomicNumber resolves an element symbol, case-insensitively. Returns -1
// for unknown symbols.
func AtomicNumber(symbol string) int {
	return slices.IndexFunc(symbols, func(s string) bool {
		return strings.EqualFold(s, symbol)
	})
}

// shellLetters orders the shell-type letters of the basis format by
// angular momentum.
var shellLetters = []string{"S", "P", "D", "F", "G", "H", "I"}

// RawShell is one shell of a basis set before placement on an atom:
// angular momentum, primitive exponents, and the nc x np contraction
// coefficients, not yet normalized.
type RawShell struct {
	L     int
	Exp   []float64
	Coeff []float64
}

// Set maps element symbols to their shells.
type Set map[string][]RawShell

// Load reads a Gaussian94-format basis set from a file. Files ending in
// .gz are decompressed on the fly.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error{fmt.Sprintf("pyscf/basis: cannot open basis file: %v", err), []string{"Load"}}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{fmt.Sprintf("pyscf/basis: cannot decompress basis file: %v", err), []string{"Load"}}
		}
		defer gz.Close()
		r = gz
	}
	set, err2 := Parse(r)
	if err2 != nil {
		if derr, ok := err2.(Error); ok {
			derr.Decorate("Load: " + path)
		}
		return nil, err2
	}
	return set, nil
}

// Parse reads a Gaussian94-format basis set: blocks separated by ****
// lines, each opening with "Symbol 0" followed by shell headers
// "Type NPrim Scale" and NPrim rows of one exponent plus one coefficient
// per contraction. SP shells are split into an s and a p shell sharing
// exponents. Lines starting with ! are comments.
func Parse(r io.Reader) (Set, error) {
	set := Set{}
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, Error{fmt.Sprintf("pyscf/basis: read failed: %v", err), []string{"Parse"}}
	}
	i := 0
	for i < len(lines) {
		if lines[i] == "****" {
			i++
			continue
		}
		words := strings.Fields(lines[i])
		sym := words[0]
		if AtomicNumber(sym) < 0 {
			return nil, Error{"pyscf/basis: unknown element symbol " + sym, []string{"Parse"}}
		}
		i++
		var shells []RawShell
		for i < len(lines) && lines[i] != "****" {
			head := strings.Fields(lines[i])
			if len(head) < 2 {
				return nil, Error{"pyscf/basis: malformed shell header " + lines[i], []string{"Parse"}}
			}
			stype := strings.ToUpper(head[0])
			np, err := strconv.Atoi(head[1])
			if err != nil {
				return nil, Error{"pyscf/basis: malformed primitive count in " + lines[i], []string{"Parse"}}
			}
			scale := 1.0
			if len(head) > 2 {
				if scale, err = strconv.ParseFloat(head[2], 64); err != nil {
					return nil, Error{"pyscf/basis: malformed scale factor in " + lines[i], []string{"Parse"}}
				}
			}
			i++
			ncol := len(stype) // SP rows carry one coefficient per letter
			exp := make([]float64, np)
			coef := make([][]float64, ncol)
			for c := range coef {
				coef[c] = make([]float64, np)
			}
			for k := 0; k < np; k++ {
				if i >= len(lines) {
					return nil, Error{"pyscf/basis: truncated shell block for " + sym, []string{"Parse"}}
				}
				row := strings.Fields(strings.ReplaceAll(lines[i], "D", "E"))
				if len(row) != ncol+1 {
					return nil, Error{"pyscf/basis: malformed primitive row " + lines[i], []string{"Parse"}}
				}
				if exp[k], err = strconv.ParseFloat(row[0], 64); err != nil {
					return nil, Error{"pyscf/basis: malformed exponent " + row[0], []string{"Parse"}}
				}
				exp[k] *= scale * scale
				for c := 0; c < ncol; c++ {
					if coef[c][k], err = strconv.ParseFloat(row[c+1], 64); err != nil {
						return nil, Error{"pyscf/basis: malformed coefficient " + row[c+1], []string{"Parse"}}
					}
				}
				i++
			}
			for c, letter := range stype {
				l := slices.Index(shellLetters, string(letter))
				if l < 0 {
					return nil, Error{"pyscf/basis: unknown shell type " + stype, []string{"Parse"}}
				}
				shells = append(shells, RawShell{L: l, Exp: exp, Coeff: coef[c]})
			}
		}
		set[sym] = shells
	}
	return set, nil
}

// STO3G returns the built-in STO-3G subset (H, He, C, N, O).
func STO3G() Set {
	set, err := Parse(strings.NewReader(sto3g))
	if err != nil {
		panic(err) // the embedded data is fixed
	}
	return set
}

// PrimNorm is the normalization constant of a primitive Gaussian of
// angular momentum l and exponent alpha, such that the x^l-type component
// has unit radial norm.
func PrimNorm(l int, alpha float64) float64 {
	num := math.Pow(2, float64(2*l+3)) * fact(l+1) * math.Pow(2*alpha, float64(l)+1.5)
	den := fact(2*l+2) * math.Sqrt(math.Pi)
	return math.Sqrt(num / den)
}

// Shells places the basis on a molecule: one gto.Shell per raw shell per
// atom, with primitive normalization folded into the contraction
// coefficients. Coordinates are Bohr.
func Shells(set Set, atoms []string, coords [][3]float64) ([]*gto.Shell, error) {
	if len(atoms) != len(coords) {
		return nil, Error{"pyscf/basis: atom and coordinate counts differ", []string{"Shells"}}
	}
	var shells []*gto.Shell
	for a, sym := range atoms {
		raw, ok := set[sym]
		if !ok {
			return nil, Error{"pyscf/basis: no basis for element " + sym, []string{"Shells"}}
		}
		for _, rs := range raw {
			np := len(rs.Exp)
			nc := len(rs.Coeff) / np
			sh := &gto.Shell{
				L:     rs.L,
				R:     coords[a],
				Exp:   append([]float64(nil), rs.Exp...),
				Coeff: make([]float64, len(rs.Coeff)),
			}
			for j := 0; j < nc; j++ {
				for k := 0; k < np; k++ {
					sh.Coeff[j*np+k] = rs.Coeff[j*np+k] * PrimNorm(rs.L, rs.Exp[k])
				}
			}
			shells = append(shells, sh)
		}
	}
	return shells, nil
}

func fact(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
