/*
 * doc.go, part of pyscf.
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

/*
Package gto evaluates contracted Gaussian-type orbitals, and operator-weighted
derivatives of them, on batches of spatial grid points. The values feed
numerical integration, typically density-functional-theory quadrature.


	**Capabilities**

    Evaluates every shell of a basis over an arbitrary grid, in Cartesian
	or real-spherical-harmonic component order.

    Carries a catalogue of grid operators: plain values, gradients,
	angular-momentum-like (GIAO) operators and their gradients, spin-orbit
	sigma-dot-p operators and their gradients, and position-weighted
	gradients against the shell center or a common reference origin.

    Screens negligible primitive exponentials per block of grid points,
	the dominant cost saving on diffuse grids.

    Processes grid points in fixed-width lanes with an explicit remainder
	path, keeping the floating-point accumulation order exactly
	reproducible between runs.

    Evaluates blocks concurrently across goroutines; distinct blocks write
	disjoint column ranges of the output, so no locking is involved.

The subpackage basis reads Gaussian94-format basis sets and materializes
Shell values for a molecule; the subpackage gtoplot renders orbital profiles.

Grid coordinates are gonum Dense matrices with one row per point. The
output of an evaluation is an AOValues tensor addressed as
[component][orbital][grid point].

The evaluation kernel itself performs no validation: shells are assumed
well-formed and within the supported angular momentum range. Malformed
metadata is a caller contract violation, not a recoverable error.
*/
package gto
