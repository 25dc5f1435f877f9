// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package grid

import "github.com/golang/geo/r3"

// tessellate computes the area of each grid cell by splitting its quad
// into two triangles along the corner[0]->corner[3] diagonal and
// summing the cross-product areas, then sums all cell areas into the
// total surface area.
//
// A cell is excluded (area 0) if any of its four corner columns is
// empty (heightmap value -1).
func tessellate(g *Grid) {
	cw := g.CellWidth
	total := 0.0

	for x := 0; x < g.DimX-1; x++ {
		for y := 0; y < g.DimY-1; y++ {
			h00 := g.Heightmap[x*g.DimY+y]
			h01 := g.Heightmap[x*g.DimY+y+1]
			h10 := g.Heightmap[(x+1)*g.DimY+y]
			h11 := g.Heightmap[(x+1)*g.DimY+y+1]

			if h00 < 0 || h01 < 0 || h10 < 0 || h11 < 0 {
				g.Areas[x*(g.DimY-1)+y] = 0
				continue
			}

			c0 := r3.Vector{X: 0, Y: 0, Z: float64(h00) * cw}
			c1 := r3.Vector{X: 0, Y: cw, Z: float64(h01) * cw}
			c2 := r3.Vector{X: cw, Y: 0, Z: float64(h10) * cw}
			c3 := r3.Vector{X: cw, Y: cw, Z: float64(h11) * cw}

			ab := c1.Sub(c0)
			ac := c2.Sub(c0)
			ad := c3.Sub(c0)

			cellArea := ab.Cross(ad).Norm()/2 + ad.Cross(ac).Norm()/2

			total += cellArea
			g.Areas[x*(g.DimY-1)+y] = cellArea
		}
	}

	g.SurfaceArea = total
}
