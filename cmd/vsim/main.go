/*
 * main.go, part of govsim.
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

//vsim inspects, converts and renders V_Sim ascii structure files.
package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	vsim "github.com/vsimio/govsim"
	"github.com/vsimio/govsim/render"
)

//readAny picks a reader from the file extension: .xyz, .json, or (the
//default) V_Sim ascii, compressed or not.
func readAny(name string) (*vsim.Structure, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xyz":
		return vsim.XYZRead(name)
	case ".json":
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return vsim.DecodeJSON(f)
	default:
		return vsim.ASCIIRead(name)
	}
}

func writeAny(name string, S *vsim.Structure) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xyz":
		return vsim.XYZWrite(name, S)
	case ".json":
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		defer f.Close()
		return vsim.EncodeJSON(f, S)
	default:
		return vsim.ASCIIWrite(name, S)
	}
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print the cell, periodicity and composition of a structure file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := readAny(args[0])
			if err != nil {
				return err
			}
			pars := S.CellPars()
			fmt.Printf("%s: %d atoms\n", args[0], S.Len())
			fmt.Printf("cell: a=%.4f b=%.4f c=%.4f A  alpha=%.2f beta=%.2f gamma=%.2f deg\n",
				pars[0], pars[1], pars[2], pars[3], pars[4], pars[5])
			fmt.Printf("periodic: %v\n", S.PBC)
			if len(S.Keywords) > 0 {
				fmt.Printf("keywords: %s\n", strings.Join(S.Keywords, " "))
			}
			counts := make(map[string]int)
			var order []string
			for i := 0; i < S.Len(); i++ {
				sym := S.Atom(i).Symbol
				if counts[sym] == 0 {
					order = append(order, sym)
				}
				counts[sym]++
			}
			for _, sym := range order {
				fmt.Printf("  %-3s %d\n", sym, counts[sym])
			}
			return nil
		},
	}
}

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert between ascii (plain/gz/zst), xyz and json by file extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := readAny(args[0])
			if err != nil {
				return err
			}
			return writeAny(args[1], S)
		},
	}
}

func renderCmd() *cobra.Command {
	var out string
	var cutoff, rotation, sigma float64
	var axis, slice, gridN int
	var width, height float64
	c := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a 2D rendition of a structure as a PNG",
		Long: `Draw a 2D rendition of a structure as a PNG. With --grid N, a demo
scalar field (a sum of Gaussians centered on the atoms) is sampled on an
N x N x N mesh and drawn as a heatmap with a contour at --cutoff.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			S, err := readAny(args[0])
			if err != nil {
				return err
			}
			o := render.DefaultOptions()
			o.Axis = axis
			o.Slice = slice
			o.Rotation = rotation
			o.CanvasWidth = vg.Length(width) * vg.Millimeter
			o.CanvasHeight = vg.Length(height) * vg.Millimeter
			o.Title = filepath.Base(args[0])
			var g *vsim.Grid
			if gridN > 0 {
				g, err = vsim.NewGrid(S.Cell, gridN, gridN, gridN)
				if err != nil {
					return err
				}
				g.Fill(func(x, y, z float64) float64 {
					var sum float64
					for i := 0; i < S.Len(); i++ {
						c := S.Coord(i)
						d2 := (x-c[0])*(x-c[0]) + (y-c[1])*(y-c[1]) + (z-c[2])*(z-c[2])
						sum += math.Exp(-d2 / (2 * sigma * sigma))
					}
					return sum
				})
			}
			if out == "" {
				out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			return render.Render(S, g, cutoff, o, out)
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "output image (default: input name with .png)")
	c.Flags().Float64Var(&cutoff, "cutoff", 0.15, "iso level for the grid contour")
	c.Flags().Float64Var(&rotation, "rotation", 0, "in-plane rotation in degrees")
	c.Flags().IntVar(&axis, "axis", 2, "projection axis (0=x, 1=y, 2=z)")
	c.Flags().IntVar(&slice, "slice", -1, "grid slice index along the axis (-1 = middle)")
	c.Flags().IntVar(&gridN, "grid", 0, "sample a demo Gaussian field on an NxNxN mesh (0 = atoms only)")
	c.Flags().Float64Var(&sigma, "sigma", 0.8, "width of the demo Gaussians, in angstroems")
	c.Flags().Float64Var(&width, "width", 120, "canvas width in mm")
	c.Flags().Float64Var(&height, "height", 120, "canvas height in mm")
	return c
}

func main() {
	root := &cobra.Command{
		Use:           "vsim",
		Short:         "Inspect, convert and render V_Sim ascii structure files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(infoCmd(), convertCmd(), renderCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vsim:", err)
		os.Exit(1)
	}
}
