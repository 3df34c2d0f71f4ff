/*
 * cell.go, part of govsim.
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

//right angles are snapped to make the structural zeros of the
//triangular form exact.
const angleEps = 1e-10

//sinCosDeg returns sine and cosine of an angle in degrees, with the
//90-degree family snapped to exact values.
func sinCosDeg(angle float64) (float64, float64) {
	switch {
	case math.Abs(angle-90) < angleEps:
		return 1, 0
	case math.Abs(angle+90) < angleEps:
		return -1, 0
	case math.Abs(math.Abs(angle)-180) < angleEps:
		return 0, -1
	}
	s, c := math.Sincos(angle * Deg2Rad)
	return s, c
}

//CellParsToVecs builds the 3x3 lattice-vector matrix corresponding to the
//cell parameters a, b, c (lengths) and alpha, beta, gamma (angles between
//b and c, a and c, and a and b, in degrees). The first vector is placed
//along x, the second in the xy plane, and the third wherever it must go to
//satisfy the three angles, so the result is always lower triangular.
//Only the first six elements of par are used. It returns an error if fewer
//than six parameters are given or if the angles are geometrically
//impossible.
func CellParsToVecs(par []float64) (*mat.Dense, error) {
	if len(par) < 6 {
		return nil, Error{kind: ErrMalformedInput, message: fmt.Sprintf("cell: need 6 cell parameters, got %d", len(par)), critical: true}
	}
	a, b, c := par[0], par[1], par[2]
	_, cosAlpha := sinCosDeg(par[3])
	_, cosBeta := sinCosDeg(par[4])
	sinGamma, cosGamma := sinCosDeg(par[5])
	cx := cosBeta
	var cy float64
	if sinGamma != 0 {
		cy = (cosAlpha - cosBeta*cosGamma) / sinGamma
	}
	czsq := 1 - cx*cx - cy*cy
	if czsq < 0 {
		if czsq < -angleEps {
			return nil, Error{kind: ErrMalformedInput, message: fmt.Sprintf("cell: impossible cell angles %v %v %v", par[3], par[4], par[5]), critical: true}
		}
		czsq = 0
	}
	cz := math.Sqrt(czsq)
	cell := mat.NewDense(3, 3, []float64{
		a, 0, 0,
		b * cosGamma, b * sinGamma, 0,
		c * cx, c * cy, c * cz,
	})
	return cell, nil
}

//VecsToCellPars derives the six cell parameters, three lengths in the unit
//of the cell and three angles in degrees, from a 3x3 lattice-vector matrix
//(rows are the vectors). The angle involving a zero-length vector is
//reported as 90.
func VecsToCellPars(cell *mat.Dense) []float64 {
	var v [3][]float64
	var l [3]float64
	for i := 0; i < 3; i++ {
		v[i] = mat.Row(nil, i, cell)
		l[i] = math.Hypot(math.Hypot(v[i][0], v[i][1]), v[i][2])
	}
	angle := func(i, j int) float64 {
		if l[i] == 0 || l[j] == 0 {
			return 90
		}
		dot := (v[i][0]*v[j][0] + v[i][1]*v[j][1] + v[i][2]*v[j][2]) / (l[i] * l[j])
		//guard against rounding pushing the ratio out of acos' domain
		dot = math.Max(-1, math.Min(1, dot))
		return math.Acos(dot) * Rad2Deg
	}
	return []float64{l[0], l[1], l[2], angle(1, 2), angle(0, 2), angle(0, 1)}
}

//Triangularize returns the canonical lower-triangular form of the given
//lattice matrix, obtained by a round trip through the cell parameters.
//Lengths and angles are preserved; the absolute orientation of the lattice
//is not.
func Triangularize(cell *mat.Dense) (*mat.Dense, error) {
	canon, err := CellParsToVecs(VecsToCellPars(cell))
	if err != nil {
		return nil, errDecorate(err, "Triangularize")
	}
	return canon, nil
}

//ScaledToCartesian resolves fractional (reduced) coordinates against a cell,
//returning cartesian coordinates in the unit of the cell. frac must be an
//n x 3 matrix.
func ScaledToCartesian(frac, cell *mat.Dense) *mat.Dense {
	cart := new(mat.Dense)
	cart.Mul(frac, cell)
	return cart
}

//CartesianToScaled expresses cartesian coordinates as fractions of the
//lattice vectors of cell. It returns an error if the cell is singular.
func CartesianToScaled(cart, cell *mat.Dense) (*mat.Dense, error) {
	inv := new(mat.Dense)
	if err := inv.Inverse(cell); err != nil {
		return nil, Error{kind: ErrMalformedInput, message: "cell: can't derive fractional coordinates from a singular lattice matrix: " + err.Error(), critical: true}
	}
	frac := new(mat.Dense)
	frac.Mul(cart, inv)
	return frac, nil
}
