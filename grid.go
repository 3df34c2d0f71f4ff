/*
 * grid.go, part of govsim.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//Grid is a scalar field sampled on a regular nx x ny x nz mesh spanning a
//cell, point (i,j,k) sitting at fractional position (i/nx, j/ny, k/nz).
//It is the shape of data a renderer consumes together with a structure;
//this package only builds grids in memory, it does not parse density files.
type Grid struct {
	Cell *mat.Dense
	data []float64
	nx   int
	ny   int
	nz   int
}

//NewGrid returns an empty grid with the given mesh over cell.
func NewGrid(cell *mat.Dense, nx, ny, nz int) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, Error{kind: ErrMalformedInput, message: fmt.Sprintf("grid: mesh sizes must be positive, got %d %d %d", nx, ny, nz), critical: true}
	}
	if cell == nil {
		return nil, Error{kind: ErrMalformedInput, message: "grid: nil cell", critical: true}
	}
	if r, c := cell.Dims(); r != 3 || c != 3 {
		return nil, Error{kind: ErrMalformedInput, message: fmt.Sprintf("grid: cell must be 3x3, got %dx%d", r, c), critical: true}
	}
	return &Grid{Cell: cell, data: make([]float64, nx*ny*nz), nx: nx, ny: ny, nz: nz}, nil
}

//Dims returns the mesh sizes of the grid.
func (G *Grid) Dims() (int, int, int) {
	return G.nx, G.ny, G.nz
}

func (G *Grid) index(i, j, k int) int {
	if i < 0 || j < 0 || k < 0 || i >= G.nx || j >= G.ny || k >= G.nz {
		panic("Grid: index out of range")
	}
	return (i*G.ny+j)*G.nz + k
}

//At returns the value at mesh point (i,j,k). Panics if out of range.
func (G *Grid) At(i, j, k int) float64 {
	return G.data[G.index(i, j, k)]
}

//Set sets the value at mesh point (i,j,k). Panics if out of range.
func (G *Grid) Set(i, j, k int, v float64) {
	G.data[G.index(i, j, k)] = v
}

//MinMax returns the smallest and largest values in the grid.
func (G *Grid) MinMax() (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range G.data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

//Fill evaluates f at the cartesian location of every mesh point and stores
//the result.
func (G *Grid) Fill(f func(x, y, z float64) float64) {
	for i := 0; i < G.nx; i++ {
		for j := 0; j < G.ny; j++ {
			for k := 0; k < G.nz; k++ {
				fx := float64(i) / float64(G.nx)
				fy := float64(j) / float64(G.ny)
				fz := float64(k) / float64(G.nz)
				x := fx*G.Cell.At(0, 0) + fy*G.Cell.At(1, 0) + fz*G.Cell.At(2, 0)
				y := fx*G.Cell.At(0, 1) + fy*G.Cell.At(1, 1) + fz*G.Cell.At(2, 1)
				z := fx*G.Cell.At(0, 2) + fy*G.Cell.At(1, 2) + fz*G.Cell.At(2, 2)
				G.Set(i, j, k, f(x, y, z))
			}
		}
	}
}
