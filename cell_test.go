/*
 * cell_test.go, part of govsim.
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
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestCellParsRoundTrip(Te *testing.T) {
	pars := []float64{4, 5, 6, 60, 70, 80}
	cell, err := CellParsToVecs(pars)
	if err != nil {
		Te.Fatal(err)
	}
	//structural zeros of the triangular form
	for _, ij := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		if cell.At(ij[0], ij[1]) != 0 {
			Te.Fatalf("entry (%d,%d) should be structurally zero, got %v", ij[0], ij[1], cell.At(ij[0], ij[1]))
		}
	}
	back := VecsToCellPars(cell)
	for i := range pars {
		if !close2(back[i], pars[i], 1e-8) {
			Te.Fatalf("cell parameter %d did not survive the round trip: %v vs %v", i, back[i], pars[i])
		}
	}
}

func TestCellParsRightAngles(Te *testing.T) {
	cell, err := CellParsToVecs([]float64{3, 4, 5, 90, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	want := mat.NewDense(3, 3, []float64{3, 0, 0, 0, 4, 0, 0, 0, 5})
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if cell.At(i, j) != want.At(i, j) {
				Te.Fatalf("orthorhombic cell must be exactly diagonal, got %v at (%d,%d)", cell.At(i, j), i, j)
			}
		}
	}
}

func TestCellParsImpossible(Te *testing.T) {
	if _, err := CellParsToVecs([]float64{3, 3, 3, 10, 170, 90}); !IsKind(err, ErrMalformedInput) {
		Te.Fatalf("impossible angles should fail, got %v", err)
	}
	if _, err := CellParsToVecs([]float64{1, 2, 3}); !IsKind(err, ErrMalformedInput) {
		Te.Fatalf("a short parameter list should fail, got %v", err)
	}
}

func TestTriangularizePreservesShape(Te *testing.T) {
	//a triclinic cell in an arbitrary orientation
	cell := mat.NewDense(3, 3, []float64{
		2.1, 3.3, 0.4,
		-1.2, 2.8, 0.9,
		0.3, -0.5, 4.7,
	})
	canon, err := Triangularize(cell)
	if err != nil {
		Te.Fatal(err)
	}
	a := VecsToCellPars(cell)
	b := VecsToCellPars(canon)
	for i := range a {
		if !close2(a[i], b[i], 1e-8) {
			Te.Fatalf("parameter %d changed under triangularization: %v vs %v", i, a[i], b[i])
		}
	}
	if canon.At(0, 1) != 0 || canon.At(0, 2) != 0 || canon.At(1, 2) != 0 {
		Te.Fatalf("canonical form is not triangular: %v", mat.Formatted(canon))
	}
}

func TestScaledConversions(Te *testing.T) {
	cell := mat.NewDense(3, 3, []float64{4, 0, 0, 1, 3, 0, 0.5, 0.25, 5})
	frac := mat.NewDense(2, 3, []float64{0.25, 0.5, 0.75, 0, 0, 0})
	cart := ScaledToCartesian(frac, cell)
	back, err := CartesianToScaled(cart, cell)
	if err != nil {
		Te.Fatal(err)
	}
	sameCoords(Te, back, frac, 1e-10)
}

func TestScaledSingularCell(Te *testing.T) {
	cart := mat.NewDense(1, 3, []float64{1, 1, 1})
	if _, err := CartesianToScaled(cart, mat.NewDense(3, 3, nil)); !IsKind(err, ErrMalformedInput) {
		Te.Fatalf("a singular cell should fail, got %v", err)
	}
}
