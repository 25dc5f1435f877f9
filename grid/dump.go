// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package grid

import (
	"fmt"
	"io"
)

// WriteDump writes a plain-text diagnostic dump: dimensions/origin,
// the full weight array, the heightmap, per-cell areas, empty-column
// count, total surface area, and area per particle.
func WriteDump(w io.Writer, g *Grid, natoms int) error {
	if _, err := fmt.Fprintf(w, "Grid points: dimx = %d, dimy = %d, dimz = %d\n", g.DimX, g.DimY, g.DimZ); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Grid cell width = %f\n", g.CellWidth); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Lattice origin: minx = %f, miny = %f, minz = %f\n",
		g.Origin.X, g.Origin.Y, g.Origin.Z); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "\nWeights ([x][y]: z weights):"); err != nil {
		return err
	}
	for x := 0; x < g.DimX; x++ {
		for y := 0; y < g.DimY; y++ {
			if _, err := fmt.Fprintf(w, "\n[%d][%d]: ", x, y); err != nil {
				return err
			}
			for z := 0; z < g.DimZ; z++ {
				if _, err := fmt.Fprintf(w, "%f ", g.Weights[x*g.DimY*g.DimZ+y*g.DimZ+z]); err != nil {
					return err
				}
			}
		}
	}

	if _, err := fmt.Fprint(w, "\n\nHeightmap (max weight z indexes, x rows by y columns):\n"); err != nil {
		return err
	}
	for x := 0; x < g.DimX; x++ {
		for y := 0; y < g.DimY; y++ {
			if _, err := fmt.Fprintf(w, "%d\t", g.Heightmap[x*g.DimY+y]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\nGrid cell areas (cell with origin indices [x][y]: area):\n"); err != nil {
		return err
	}
	for x := 0; x < g.DimX-1; x++ {
		for y := 0; y < g.DimY-1; y++ {
			if _, err := fmt.Fprintf(w, "Cell [%d][%d]: %f\n", x, y, g.Areas[x*(g.DimY-1)+y]); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "\n%d heightmap column(s) are empty; grid cells with an empty corner are excluded from tessellation.\n", g.NumEmpty); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total tessellated surface area: %f\n", g.SurfaceArea); err != nil {
		return err
	}
	area := g.SurfaceArea / float64(natoms)
	_, err := fmt.Fprintf(w, "Tessellated surface area per particle: %f\n", area)
	return err
}
