// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package grid

// genHeightmap picks the max-weight z for each (x, y) column, recording
// -1 for columns whose peak weight never clears the noise floor.
func genHeightmap(g *Grid) {
	dimyz := g.DimY * g.DimZ
	numEmpty := 0

	for x := 0; x < g.DimX; x++ {
		for y := 0; y < g.DimY; y++ {
			maxZ := -1
			maxWeight := 2 * epsReal
			for z := 0; z < g.DimZ; z++ {
				w := g.Weights[x*dimyz+y*g.DimZ+z]
				if w > maxWeight {
					maxWeight = w
					maxZ = z
				}
			}
			g.Heightmap[x*g.DimY+y] = maxZ
			if maxZ < 0 {
				numEmpty++
			}
		}
	}

	g.NumEmpty = numEmpty
}
