/*
 * doc.go, part of govsim.
 *
 * Copyright 2024 The govsim developers
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

/*Package vsim reads and writes atomistic structures in the V_Sim 3.5+ ascii
format, and provides the small set of crystallographic utilities that format
needs.


	**govsim capabilities**

    Reads/writes V_Sim ascii structure files (cell, positions, keyword
	flags), plain or gzip/zstd compressed, honoring the reduced/angstroem/
	bohr/angdeg keyword semantics of the format.

    Converts between the six cell parameters (a, b, c, alpha, beta, gamma)
	and a 3x3 lattice-vector matrix, including the canonical triangular
	form used by ascii headers.

    Converts between fractional and cartesian coordinates.

    Reads/writes XYZ files.

    Encodes/decodes structures as JSON for interop with scripting and
	plotting front ends.

    Draws 2D renditions of a structure, optionally with a scalar-field
	slice and an iso-level contour (package render).

    A small command-line tool (cmd/vsim) exposes inspection, conversion
	and rendering.

All lengths in an in-memory Structure are in angstroems; whatever length
unit the source file declares is resolved at read time.
*/
package vsim
