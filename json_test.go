/*
 * json_test.go, part of govsim.
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
	"bytes"
	"strings"
	"testing"
)

func TestJSONRoundTrip(Te *testing.T) {
	S, err := ASCIIRead("test/sample.ascii")
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, S); err != nil {
		Te.Fatal(err)
	}
	R, err := DecodeJSON(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	sameCoords(Te, R.Coords, S.Coords, 1e-12)
	sameCoords(Te, R.Cell, S.Cell, 1e-12)
	if R.PBC != S.PBC {
		Te.Fatalf("periodicity lost: %v vs %v", R.PBC, S.PBC)
	}
	for i := 0; i < S.Len(); i++ {
		if R.Atom(i).Symbol != S.Atom(i).Symbol {
			Te.Fatalf("species %d lost in the round trip", i)
		}
	}
}

func TestJSONBadInput(Te *testing.T) {
	cases := []string{
		`{"cell":[1,2,3],"pbc":[false,false,false],"atoms":[]}`,
		`{"cell":[1,0,0,0,1,0,0,0,1],"pbc":[false,false,false],"atoms":[{"symbol":"H","coords":[1,2]}]}`,
		`not json at all`,
	}
	for i, in := range cases {
		if _, err := DecodeJSON(strings.NewReader(in)); !IsKind(err, ErrMalformedInput) {
			Te.Fatalf("case %d: expected a malformed-input error, got %v", i, err)
		}
	}
}
