/*
 * render.go, part of govsim.
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

//Package render draws 2D renditions of a structure: atoms projected along
//a cartesian axis, the projected cell outline, and optionally one slice of
//a scalar-field grid as a heatmap with a contour at an iso level. The
//output is an image file; there is no 3D scene, no isosurface extraction.
package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	vsim "github.com/vsimio/govsim"
)

//Options enumerates the named knobs of a rendition. The zero value is not
//usable; start from DefaultOptions.
type Options struct {
	CanvasWidth  vg.Length
	CanvasHeight vg.Length
	Axis         int     //projection axis: 0, 1 or 2; drawing happens on the plane normal to it
	Slice        int     //grid slice index along Axis; negative picks the middle
	Rotation     float64 //in-plane rotation of atoms and cell outline, degrees
	AtomRadius   vg.Length
	ShowCell     bool
	Title        string
}

//DefaultOptions returns the settings for a plain rendition: projection
//along z, middle slice, no rotation, cell outline on.
func DefaultOptions() *Options {
	return &Options{
		CanvasWidth:  12 * vg.Centimeter,
		CanvasHeight: 12 * vg.Centimeter,
		Axis:         2,
		Slice:        -1,
		AtomRadius:   vg.Points(4),
		ShowCell:     true,
	}
}

//Rough CPK-style colors. Species not in the map get the default.
var symbolColor = map[string]color.RGBA{
	"H":  {R: 220, G: 220, B: 220, A: 255},
	"C":  {R: 80, G: 80, B: 80, A: 255},
	"N":  {R: 48, G: 80, B: 248, A: 255},
	"O":  {R: 255, G: 13, B: 13, A: 255},
	"S":  {R: 255, G: 200, B: 50, A: 255},
	"P":  {R: 255, G: 128, B: 0, A: 255},
	"Cl": {R: 31, G: 240, B: 31, A: 255},
	"Na": {R: 171, G: 92, B: 242, A: 255},
	"Mg": {R: 138, G: 255, B: 0, A: 255},
	"Fe": {R: 224, G: 102, B: 51, A: 255},
	"Ni": {R: 80, G: 208, B: 80, A: 255},
}

func elementColor(symbol string) color.RGBA {
	if c, ok := symbolColor[symbol]; ok {
		return c
	}
	return color.RGBA{R: 255, G: 105, B: 180, A: 255}
}

//gridSlice adapts one slice of a Grid to the plotter.GridXYZ interface.
//The in-plane axes are mapped to the lengths of the corresponding lattice
//vectors, which is exact for orthorhombic cells.
type gridSlice struct {
	g     *vsim.Grid
	axis  int
	index int
	nu    int
	nv    int
	lu    float64
	lv    float64
}

func newGridSlice(g *vsim.Grid, axis, index int) (*gridSlice, error) {
	n := [3]int{}
	n[0], n[1], n[2] = g.Dims()
	if axis < 0 || axis > 2 {
		return nil, fmt.Errorf("render: projection axis must be 0, 1 or 2, got %d", axis)
	}
	if index < 0 {
		index = n[axis] / 2
	}
	if index >= n[axis] {
		return nil, fmt.Errorf("render: slice %d out of range along axis %d (%d points)", index, axis, n[axis])
	}
	u, v := (axis+1)%3, (axis+2)%3
	pars := vsim.VecsToCellPars(g.Cell)
	return &gridSlice{g: g, axis: axis, index: index, nu: n[u], nv: n[v], lu: pars[u], lv: pars[v]}, nil
}

func (s *gridSlice) Dims() (int, int) { return s.nu, s.nv }

func (s *gridSlice) X(c int) float64 { return s.lu * float64(c) / float64(s.nu) }

func (s *gridSlice) Y(r int) float64 { return s.lv * float64(r) / float64(s.nv) }

func (s *gridSlice) Z(c, r int) float64 {
	var ijk [3]int
	ijk[s.axis] = s.index
	ijk[(s.axis+1)%3] = c
	ijk[(s.axis+2)%3] = r
	return s.g.At(ijk[0], ijk[1], ijk[2])
}

//project maps a cartesian point to the drawing plane of o.
func project(o *Options, p []float64) (float64, float64) {
	u := p[(o.Axis+1)%3]
	v := p[(o.Axis+2)%3]
	if o.Rotation == 0 {
		return u, v
	}
	s, c := math.Sincos(o.Rotation * vsim.Deg2Rad)
	return c*u - s*v, s*u + c*v
}

//Render draws the structure S, optionally a slice of the grid g contoured
//at cutoff, and saves the image to name (the extension picks the format,
//.png being the usual choice). A nil g renders atoms and cell only; a nil
//o means DefaultOptions.
func Render(S *vsim.Structure, g *vsim.Grid, cutoff float64, o *Options, name string) error {
	if o == nil {
		o = DefaultOptions()
	}
	if err := S.Corrupted(); err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = o.Title
	axes := [3]string{"x", "y", "z"}
	p.X.Label.Text = axes[(o.Axis+1)%3] + " (A)"
	p.Y.Label.Text = axes[(o.Axis+2)%3] + " (A)"
	p.Add(plotter.NewGrid())

	if g != nil {
		sl, err := newGridSlice(g, o.Axis, o.Slice)
		if err != nil {
			return err
		}
		p.Add(plotter.NewHeatMap(sl, palette.Heat(12, 1)))
		levels := []float64{cutoff}
		p.Add(plotter.NewContour(sl, levels, palette.Rainbow(1, palette.Blue, palette.Blue, 1, 1, 1)))
	}

	//one scatter per species, so each gets its own color and legend entry
	bySymbol := make(map[string]plotter.XYs)
	var order []string
	for i := 0; i < S.Len(); i++ {
		sym := S.Atom(i).Symbol
		if _, ok := bySymbol[sym]; !ok {
			order = append(order, sym)
		}
		x, y := project(o, S.Coord(i))
		bySymbol[sym] = append(bySymbol[sym], plotter.XY{X: x, Y: y})
	}
	for _, sym := range order {
		sc, err := plotter.NewScatter(bySymbol[sym])
		if err != nil {
			return err
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = o.AtomRadius
		sc.GlyphStyle.Color = elementColor(sym)
		p.Add(sc)
		p.Legend.Add(sym, sc)
	}
	p.Legend.Top = true

	if o.ShowCell {
		u := mat3Row(S, (o.Axis+1)%3)
		v := mat3Row(S, (o.Axis+2)%3)
		corners := [][]float64{{0, 0, 0}, u, add(u, v), v, {0, 0, 0}}
		outline := make(plotter.XYs, len(corners))
		for i, c := range corners {
			outline[i].X, outline[i].Y = project(o, c)
		}
		l, err := plotter.NewLine(outline)
		if err != nil {
			return err
		}
		l.LineStyle.Color = color.RGBA{A: 255}
		l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(l)
	}

	return p.Save(o.CanvasWidth, o.CanvasHeight, name)
}

func mat3Row(S *vsim.Structure, i int) []float64 {
	return []float64{S.Cell.At(i, 0), S.Cell.At(i, 1), S.Cell.At(i, 2)}
}

func add(a, b []float64) []float64 {
	return []float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
