/*
 * ascii.go, part of govsim.
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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//The ascii format is line oriented:
//
//	<title line, free text>
//	<xx> <yx> <yy>
//	<zx> <zy> <zz>
//	[ "#keyword: " <tokens> ]*
//	[ <x> <y> <z> <species> ]*
//
//Comment lines may start with # or ! after leading whitespace; only the
//ones whose body starts with "keyword:" carry meaning. Commas inside a
//keyword line count as whitespace and matching is case-insensitive, except
//for species labels.

//lineClass tags a classified body line.
type lineClass int

const (
	lineIgnored lineClass = iota
	lineKeywords
	lineNode
)

type bodyLine struct {
	class  lineClass
	tokens []string //keyword tokens (lowercased) or the raw node fields
}

//classifyLine tags a body line as a keyword-carrying comment, a node
//(position + species) line, or an ignored line. A node line has at least
//four whitespace-separated fields; whether its first three parse as numbers
//is checked by the caller.
func classifyLine(line string) bodyLine {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
		body := strings.ToLower(strings.ReplaceAll(trimmed[1:], ",", " "))
		body = strings.TrimLeft(body, " \t")
		if strings.HasPrefix(body, "keyword:") {
			return bodyLine{class: lineKeywords, tokens: strings.Fields(body[len("keyword:"):])}
		}
		return bodyLine{class: lineIgnored}
	}
	fields := strings.Fields(line)
	if len(fields) >= 4 {
		return bodyLine{class: lineNode, tokens: fields}
	}
	return bodyLine{class: lineIgnored}
}

//keywordSet accumulates the keyword tokens of a file, preserving the order
//in which they first appear.
type keywordSet struct {
	order []string
	seen  map[string]bool
}

func newKeywordSet() *keywordSet {
	return &keywordSet{seen: make(map[string]bool)}
}

func (k *keywordSet) Add(tokens ...string) {
	for _, t := range tokens {
		if !k.seen[t] {
			k.seen[t] = true
			k.order = append(k.order, t)
		}
	}
}

func (k *keywordSet) Has(token string) bool {
	return k.seen[token]
}

//the Bohr-family keywords all declare atomic length units.
func (k *keywordSet) bohr() bool {
	return k.Has("bohr") || k.Has("bohrd0") || k.Has("atomic") || k.Has("atomicd0")
}

//nextLine returns the next line without its terminator, whether the stream
//is exhausted, and any genuine i/o error. A final line without a newline is
//still returned.
func nextLine(in *bufio.Reader) (string, bool, error) {
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), err == io.EOF, nil
}

//ASCIIReaderRead reads a V_Sim ascii structure from r. The stream is read
//once, forward only; the returned structure is fully resolved (cartesian
//coordinates in angstroems) regardless of the units and coordinate
//representation the file declares.
func ASCIIReaderRead(r io.Reader) (*Structure, error) {
	return asciiRead(bufio.NewReader(r), "")
}

//ASCIIRead reads the V_Sim ascii file name. Files ending in .gz or
//.zst/.zstd are transparently decompressed.
func ASCIIRead(name string) (*Structure, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{kind: ErrIO, message: err.Error(), filename: name, critical: true}
	}
	defer f.Close()
	var in io.Reader = f
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		g, err := gzip.NewReader(f)
		if err != nil {
			return nil, Error{kind: ErrIO, message: err.Error(), filename: name, critical: true}
		}
		defer g.Close()
		in = g
	case ".zst", ".zstd":
		z, err := zstd.NewReader(f)
		if err != nil {
			return nil, Error{kind: ErrIO, message: err.Error(), filename: name, critical: true}
		}
		defer z.Close()
		in = z
	}
	S, err := asciiRead(bufio.NewReader(in), name)
	if err != nil {
		return nil, errDecorate(err, "ASCIIRead")
	}
	return S, nil
}

func asciiRead(in *bufio.Reader, filename string) (*Structure, error) {
	fail := func(kind ErrKind, format string, args ...interface{}) error {
		return Error{kind: kind, message: fmt.Sprintf(format, args...), filename: filename, critical: true}
	}
	//The first line is a free-form title, discarded.
	_, eof, err := nextLine(in)
	if err != nil {
		return nil, fail(ErrIO, "header: %v", err)
	}
	//The next two lines jointly carry the box numbers.
	var header [2]string
	for i := 0; i < 2; i++ {
		if eof {
			return nil, fail(ErrMalformedInput, "header: file ends before the two box lines")
		}
		header[i], eof, err = nextLine(in)
		if err != nil {
			return nil, fail(ErrIO, "header: %v", err)
		}
	}
	fields := strings.Fields(header[0] + " " + header[1])
	box := make([]float64, len(fields))
	for i, v := range fields {
		box[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fail(ErrMalformedInput, "header: can't parse box value %q", v)
		}
	}
	if len(box) < 6 {
		return nil, fail(ErrMalformedInput, "header: expected 6 box values, got %d", len(box))
	}
	//Body scan. Raw coordinates and species are accumulated first; the
	//cell, and with it any deferred fractional resolution, comes after EOF.
	keys := newKeywordSet()
	var raw []float64
	var symbols []string
	for !eof {
		var line string
		line, eof, err = nextLine(in)
		if err != nil {
			return nil, fail(ErrIO, "body: %v", err)
		}
		if eof && line == "" {
			break
		}
		cl := classifyLine(line)
		switch cl.class {
		case lineKeywords:
			keys.Add(cl.tokens...)
		case lineNode:
			//The unit is resolved per node line, from the keywords seen so
			//far. Fractional coordinates stay raw until the cell is known.
			unit := 1.0
			if !keys.Has("reduced") && keys.bohr() {
				unit = Bohr2A
			}
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(cl.tokens[i], 64)
				if err != nil {
					return nil, fail(ErrMalformedInput, "body: can't parse coordinate %q in line %q", cl.tokens[i], line)
				}
				raw = append(raw, unit*v)
			}
			symbols = append(symbols, cl.tokens[3])
		}
	}
	if keys.Has("surface") {
		return nil, fail(ErrUnsupportedFeature, "unit-resolution: the surface boundary condition cannot be read yet")
	}
	//Cell resolution. An angdeg cell is never unit-scaled; a plain
	//triangular cell is. This asymmetry is part of the format as deployed.
	var cell *mat.Dense
	if keys.Has("angdeg") {
		cell, err = CellParsToVecs(box)
		if err != nil {
			return nil, errDecorate(err, "asciiRead")
		}
	} else {
		unit := 1.0
		if keys.bohr() {
			unit = Bohr2A
		}
		cell = mat.NewDense(3, 3, []float64{
			box[0] * unit, 0, 0,
			box[1] * unit, box[2] * unit, 0,
			box[3] * unit, box[4] * unit, box[5] * unit,
		})
	}
	var coords *mat.Dense
	if len(symbols) > 0 {
		coords = mat.NewDense(len(symbols), 3, raw)
		if keys.Has("reduced") {
			coords = ScaledToCartesian(coords, cell)
		}
	}
	atoms := make([]*Atom, len(symbols))
	for i, s := range symbols {
		atoms[i] = &Atom{Symbol: s, Id: i + 1, Mass: symbolMass[s]}
	}
	S := &Structure{Atoms: atoms, Coords: coords, Cell: cell, Keywords: keys.order}
	if keys.Has("periodic") {
		S.PBC = [3]bool{true, true, true}
	}
	return S, nil
}

//ASCIIWriterWrite writes the structure S to w in V_Sim ascii format. The
//cell is first normalized to the canonical triangular form (lengths and
//angles preserved, absolute orientation not), and positions are written as
//fractions of the cell, in the original atom order. Only fully periodic,
//fully free and [true,false,true] surface boundaries can be expressed by
//the format; anything else is an error.
func ASCIIWriterWrite(w io.Writer, S *Structure) error {
	return asciiWrite(w, S, "")
}

//ASCIIWrite writes the structure S to the file name, creating or
//overwriting it. A .gz or .zst/.zstd suffix selects transparent
//compression.
func ASCIIWrite(name string, S *Structure) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{kind: ErrIO, message: err.Error(), filename: name, critical: true}
	}
	defer f.Close()
	return asciiWriteTo(f, strings.ToLower(filepath.Ext(name)), S, name)
}

//asciiWriteTo wraps w in the compressor the extension asks for, writes the
//structure and closes the compressor. The compressor flushes its trailer on
//Close, which can still fail; swallowing that would report success over a
//truncated file.
func asciiWriteTo(w io.Writer, ext string, S *Structure, name string) error {
	out := w
	var comp io.Closer
	switch ext {
	case ".gz":
		g := gzip.NewWriter(w)
		out, comp = g, g
	case ".zst", ".zstd":
		z, err := zstd.NewWriter(w)
		if err != nil {
			return Error{kind: ErrIO, message: err.Error(), filename: name, critical: true}
		}
		out, comp = z, z
	}
	if err := asciiWrite(out, S, name); err != nil {
		if comp != nil {
			comp.Close()
		}
		return errDecorate(err, "ASCIIWrite")
	}
	if comp != nil {
		if err := comp.Close(); err != nil {
			return Error{kind: ErrIO, message: err.Error(), filename: name, critical: true}
		}
	}
	return nil
}

func asciiWrite(w io.Writer, S *Structure, filename string) error {
	if err := S.Corrupted(); err != nil {
		return errDecorate(err, "asciiWrite")
	}
	var boundary string
	switch S.PBC {
	case [3]bool{true, true, true}:
		boundary = "periodic"
	case [3]bool{false, false, false}:
		boundary = "freeBC"
	case [3]bool{true, false, true}:
		boundary = "surface"
	default:
		return Error{kind: ErrUnsupportedBoundary,
			message:  fmt.Sprintf("only fully periodic, fully free and [true,false,true] surface boundaries can be written, got %v", S.PBC),
			filename: filename, critical: true}
	}
	cell, err := Triangularize(S.Cell)
	if err != nil {
		return errDecorate(err, "asciiWrite")
	}
	var frac *mat.Dense
	if S.Len() > 0 {
		//Fractions are taken against the original cell; they are the same
		//fractions the canonical cell reproduces, since triangularization
		//only reorients the lattice.
		frac, err = CartesianToScaled(S.Coords, S.Cell)
		if err != nil {
			return errDecorate(err, "asciiWrite")
		}
	}
	write := func(format string, args ...interface{}) error {
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			return Error{kind: ErrIO, message: err.Error(), filename: filename, critical: true}
		}
		return nil
	}
	if err := write("===== v_sim input file written by govsim =====\n"); err != nil {
		return err
	}
	if err := write("%v %v %v\n", cell.At(0, 0), cell.At(1, 0), cell.At(1, 1)); err != nil {
		return err
	}
	if err := write("%v %v %v\n", cell.At(2, 0), cell.At(2, 1), cell.At(2, 2)); err != nil {
		return err
	}
	for _, kw := range []string{"reduced", "angstroem", boundary} {
		if err := write("#keyword: %s\n", kw); err != nil {
			return err
		}
	}
	for i := 0; i < S.Len(); i++ {
		if err := write("%v %v %v %s\n", frac.At(i, 0), frac.At(i, 1), frac.At(i, 2), S.Atom(i).Symbol); err != nil {
			return err
		}
	}
	return nil
}
