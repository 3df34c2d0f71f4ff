/*
 * vsim.go, part of govsim.
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

package vsim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/**Note: some funcitons here panic instead of returning errors. This is because they are "fundamental"
 * functions: if something goes wrong in them, the calling program is way-most likely wrong and should
 * crash. The panics are related to calling the function on a nil object or accessing out-of-bounds
 * fields.**/

//Atom contains the per-atom information read from a structure file, except
//for the coordinates, which are kept in a separate matrix.
type Atom struct {
	Symbol string //species label, case preserved as read
	Id     int    //position in the file, starting from 1
	Mass   float64
	Tag    int //for whatever the caller wants to keep that is not a float
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Symbol = A.Symbol
	Newat.Id = A.Id
	Newat.Mass = A.Mass
	Newat.Tag = A.Tag
	return Newat
}

//Structure is a fully-resolved atomistic structure: a unit cell, an ordered
//set of atoms with cartesian coordinates in angstroems, the periodicity of
//the cell and the keyword flags the source file carried, if any.
type Structure struct {
	Atoms    []*Atom
	Coords   *mat.Dense //NAtoms x 3, cartesian, angstroem. nil when there are no atoms.
	Cell     *mat.Dense //3x3, rows are the lattice vectors, angstroem.
	PBC      [3]bool
	Keywords []string //lowercased, in order of appearance in the file
}

//NewStructure makes a Structure with the given atoms, coordinates and cell,
//and returns it. It returns an error if atoms and coordinates are
//inconsistent, or if the cell is not 3x3. coords may be nil only if atoms is
//empty.
func NewStructure(atoms []*Atom, coords, cell *mat.Dense) (*Structure, error) {
	S := new(Structure)
	S.Atoms = atoms
	S.Coords = coords
	S.Cell = cell
	if err := S.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewStructure")
	}
	return S, nil
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Structure. Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	if i >= S.Len() {
		panic("Structure: Requested Atom out of bounds")
	}
	return S.Atoms[i]
}

//Coord returns the cartesian coordinates for the atom i, in angstroems.
//Panics if out of range.
func (S *Structure) Coord(i int) []float64 {
	if S.Coords == nil || i >= S.Len() {
		panic("Structure: Requested coordinates out of bounds")
	}
	return mat.Row(nil, i, S.Coords)
}

//HasKeyword returns whether the (lowercased) keyword kw was present in the
//file the structure was read from.
func (S *Structure) HasKeyword(kw string) bool {
	for _, v := range S.Keywords {
		if v == kw {
			return true
		}
	}
	return false
}

//CellPars returns the six cell parameters a, b, c (angstroem) and
//alpha, beta, gamma (degrees) of the structure's cell.
func (S *Structure) CellPars() []float64 {
	return VecsToCellPars(S.Cell)
}

//Masses returns a slice with the masses of all atoms, and an error if
//any of them is unknown (i.e. zero).
func (S *Structure) Masses() ([]float64, error) {
	masses := make([]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		if at.Mass == 0 {
			return nil, Error{kind: ErrMalformedInput, message: fmt.Sprintf("no mass known for atom %d (%s)", i, at.Symbol), critical: true}
		}
		masses[i] = at.Mass
	}
	return masses, nil
}

//Copy returns a deep copy of the structure.
func (S *Structure) Copy() *Structure {
	if err := S.Corrupted(); err != nil {
		panic(err.Error())
	}
	N := new(Structure)
	N.Atoms = make([]*Atom, S.Len())
	for key, val := range S.Atoms {
		N.Atoms[key] = val.Copy()
	}
	if S.Coords != nil {
		N.Coords = mat.DenseCopyOf(S.Coords)
	}
	N.Cell = mat.DenseCopyOf(S.Cell)
	N.PBC = S.PBC
	N.Keywords = append([]string{}, S.Keywords...)
	return N
}

//Corrupted checks whether the structure is corrupted, i.e. the coordinates
//don't match the number of atoms, the coordinate matrix doesn't have 3
//columns, or the cell is not a 3x3 matrix.
func (S *Structure) Corrupted() error {
	if S == nil {
		return Error{kind: ErrMalformedInput, message: "nil structure", critical: true}
	}
	if S.Cell == nil {
		return Error{kind: ErrMalformedInput, message: "structure without a cell", critical: true}
	}
	if r, c := S.Cell.Dims(); r != 3 || c != 3 {
		return Error{kind: ErrMalformedInput, message: fmt.Sprintf("cell must be 3x3, got %dx%d", r, c), critical: true}
	}
	if S.Coords == nil {
		if S.Len() != 0 {
			return Error{kind: ErrMalformedInput, message: fmt.Sprintf("%d atoms but nil coordinates", S.Len()), critical: true}
		}
		return nil
	}
	if r, c := S.Coords.Dims(); r != S.Len() || c != 3 {
		return Error{kind: ErrMalformedInput, message: fmt.Sprintf("inconsistent coordinates/atoms: atoms %d, coords %dx%d", S.Len(), r, c), critical: true}
	}
	return nil
}
