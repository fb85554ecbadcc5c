/*
 * errors.go, part of pyscf.
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

// Error is the interface for errors that the packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error as it travels up the calling stack, without changing its type or
// wrapping it around something else. If passed an empty string, Decorate
// just returns the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of the library. deco collects the names
// of the functions the error has passed through, plus any extra information.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

func (err CError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// PanicMsg is a message used for panics on programmer errors. It does
// satisfy the error interface.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

// Errors for the panic messages.
const (
	ErrMaxAng    = PanicMsg("pyscf/gto: angular momentum beyond the supported maximum")
	ErrNilShells = PanicMsg("pyscf/gto: nil or empty shell list")
	ErrBlockSize = PanicMsg("pyscf/gto: grid block longer than BLKSIZE")
)
