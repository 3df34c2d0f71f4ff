/*
 * xyz.go, part of govsim.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//XYZ files carry no cell, so structures read from them get a zero cell and
//no periodicity, and only the cartesian information survives a write.

//XYZReaderRead reads an XYZ-formatted structure from r.
func XYZReaderRead(r io.Reader) (*Structure, error) {
	return xyzRead(bufio.NewReader(r), "")
}

//XYZRead reads the XYZ file name.
func XYZRead(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{kind: ErrIO, message: err.Error(), filename: name, critical: true}
	}
	defer f.Close()
	S, err := xyzRead(bufio.NewReader(f), name)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return S, nil
}

func xyzRead(in *bufio.Reader, filename string) (*Structure, error) {
	fail := func(kind ErrKind, format string, args ...interface{}) error {
		return Error{kind: kind, message: fmt.Sprintf(format, args...), filename: filename, critical: true}
	}
	line, eof, err := nextLine(in)
	if err != nil {
		return nil, fail(ErrIO, "header: %v", err)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, fail(ErrMalformedInput, "header: can't parse the number of atoms from %q", line)
	}
	if !eof {
		_, eof, err = nextLine(in) //the comment line
		if err != nil {
			return nil, fail(ErrIO, "header: %v", err)
		}
	}
	atoms := make([]*Atom, 0, natoms)
	raw := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		if eof {
			return nil, fail(ErrMalformedInput, "body: %d atoms declared, stream ends after %d", natoms, i)
		}
		line, eof, err = nextLine(in)
		if err != nil {
			return nil, fail(ErrIO, "body: %v", err)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fail(ErrMalformedInput, "body: atom line %d ill formed: %q", i, line)
		}
		for j := 1; j < 4; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fail(ErrMalformedInput, "body: can't parse coordinate %q in atom line %d", fields[j], i)
			}
			raw = append(raw, v)
		}
		atoms = append(atoms, &Atom{Symbol: fields[0], Id: i + 1, Mass: symbolMass[fields[0]]})
	}
	var coords *mat.Dense
	if natoms > 0 {
		coords = mat.NewDense(natoms, 3, raw)
	}
	return &Structure{Atoms: atoms, Coords: coords, Cell: mat.NewDense(3, 3, nil)}, nil
}

//XYZWriterWrite writes the structure S to w in XYZ format. The cell and
//periodicity, which XYZ cannot carry, are silently dropped.
func XYZWriterWrite(w io.Writer, S *Structure) error {
	if err := S.Corrupted(); err != nil {
		return errDecorate(err, "XYZWriterWrite")
	}
	if _, err := fmt.Fprintf(w, "%-4d\n\n", S.Len()); err != nil {
		return Error{kind: ErrIO, message: err.Error(), critical: true}
	}
	for i := 0; i < S.Len(); i++ {
		c := S.Coord(i)
		if _, err := fmt.Fprintf(w, "%-2s  %8.3f%8.3f%8.3f \n", S.Atom(i).Symbol, c[0], c[1], c[2]); err != nil {
			return Error{kind: ErrIO, message: err.Error(), critical: true}
		}
	}
	return nil
}

//XYZWrite writes the structure S to the XYZ file name, which will be
//created for that. If the file exists it will be overwritten.
func XYZWrite(name string, S *Structure) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{kind: ErrIO, message: err.Error(), filename: name, critical: true}
	}
	defer f.Close()
	if err := XYZWriterWrite(f, S); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	return nil
}
