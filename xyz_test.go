/*
 * xyz_test.go, part of govsim.
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
	"strings"
	"testing"
)

func TestXYZIO(Te *testing.T) {
	S, err := XYZRead("test/sample.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if S.Len() != 3 || S.Atom(0).Symbol != "O" {
		Te.Fatalf("unexpected content in sample.xyz: %d atoms", S.Len())
	}
	if err := XYZWrite("test/sampleIO.xyz", S); err != nil {
		Te.Fatal(err)
	}
	R, err := XYZRead("test/sampleIO.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	//the writer keeps 3 decimals, which the sample already has
	sameCoords(Te, R.Coords, S.Coords, 1e-9)
}

func TestXYZMalformed(Te *testing.T) {
	cases := []string{
		"2\n\nH 0 0 0\n",    //atoms declared, too few given
		"nope\n\nH 0 0 0\n", //unparsable count
		"1\n\nH 0 zero 0\n", //unparsable coordinate
	}
	for i, file := range cases {
		if _, err := XYZReaderRead(strings.NewReader(file)); !IsKind(err, ErrMalformedInput) {
			Te.Fatalf("case %d: expected a malformed-input error, got %v", i, err)
		}
	}
}
