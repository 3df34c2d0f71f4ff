/*
 * json.go, part of govsim.
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
	"encoding/json"
	"io"

	"gonum.org/v1/gonum/mat"
)

//Ready-to-serialize containers for a structure. Scripting and plotting
//front ends get the whole thing in one object.

//JSONAtom is a ready-to-serialize container for one atom.
type JSONAtom struct {
	Symbol string    `json:"symbol"`
	Coords []float64 `json:"coords"`
}

//JSONStructure is a ready-to-serialize container for a Structure.
type JSONStructure struct {
	Cell     []float64  `json:"cell"` //row major, 9 values
	PBC      [3]bool    `json:"pbc"`
	Keywords []string   `json:"keywords,omitempty"`
	Atoms    []JSONAtom `json:"atoms"`
}

//EncodeJSON serializes the structure S into w.
func EncodeJSON(w io.Writer, S *Structure) error {
	if err := S.Corrupted(); err != nil {
		return errDecorate(err, "EncodeJSON")
	}
	cell := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		cell = append(cell, mat.Row(nil, i, S.Cell)...)
	}
	J := JSONStructure{
		Cell:     cell,
		PBC:      S.PBC,
		Keywords: S.Keywords,
		Atoms:    make([]JSONAtom, S.Len()),
	}
	for i := 0; i < S.Len(); i++ {
		J.Atoms[i] = JSONAtom{Symbol: S.Atom(i).Symbol, Coords: S.Coord(i)}
	}
	if err := json.NewEncoder(w).Encode(J); err != nil {
		return Error{kind: ErrIO, message: err.Error(), critical: true}
	}
	return nil
}

//DecodeJSON reads a JSON-serialized structure from r.
func DecodeJSON(r io.Reader) (*Structure, error) {
	var J JSONStructure
	if err := json.NewDecoder(r).Decode(&J); err != nil {
		return nil, Error{kind: ErrMalformedInput, message: err.Error(), critical: true}
	}
	if len(J.Cell) != 9 {
		return nil, Error{kind: ErrMalformedInput, message: "json: cell must carry 9 values", critical: true}
	}
	atoms := make([]*Atom, len(J.Atoms))
	var raw []float64
	for i, a := range J.Atoms {
		if len(a.Coords) != 3 {
			return nil, Error{kind: ErrMalformedInput, message: "json: every atom needs 3 coordinates", critical: true}
		}
		atoms[i] = &Atom{Symbol: a.Symbol, Id: i + 1, Mass: symbolMass[a.Symbol]}
		raw = append(raw, a.Coords...)
	}
	var coords *mat.Dense
	if len(atoms) > 0 {
		coords = mat.NewDense(len(atoms), 3, raw)
	}
	S := &Structure{
		Atoms:    atoms,
		Coords:   coords,
		Cell:     mat.NewDense(3, 3, J.Cell),
		PBC:      J.PBC,
		Keywords: J.Keywords,
	}
	return S, nil
}
