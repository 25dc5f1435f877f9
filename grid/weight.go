// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package grid

import "github.com/golang/geo/r3"

// loadWeights accumulates each atom's influence into the 8 lattice
// corners of its enclosing cell, for every atom in every frame.
func loadWeights(g *Grid, frames [][]r3.Vector, fweight WeightFunc) {
	dimyz := g.DimY * g.DimZ
	cw := g.CellWidth

	for _, frame := range frames {
		for _, pos := range frame {
			xi := int((pos.X - g.Origin.X) / cw)
			yi := int((pos.Y - g.Origin.Y) / cw)
			zi := int((pos.Z - g.Origin.Z) / cw)

			corner := r3.Vector{
				X: g.Origin.X + float64(xi)*cw,
				Y: g.Origin.Y + float64(yi)*cw,
				Z: g.Origin.Z + float64(zi)*cw,
			}

			// Corner-visit order mirrors the original: incremental
			// moves on a single axis at a time to minimize recomputation.
			idx := xi*dimyz + yi*g.DimZ + zi
			g.Weights[idx] += fweight(pos, corner)

			corner.Z += cw
			g.Weights[idx+1] += fweight(pos, corner)

			corner.Y += cw
			corner.Z -= cw
			g.Weights[idx+g.DimZ] += fweight(pos, corner)

			corner.Z += cw
			g.Weights[idx+g.DimZ+1] += fweight(pos, corner)

			corner.X += cw
			corner.Y -= cw
			corner.Z -= cw
			g.Weights[idx+dimyz] += fweight(pos, corner)

			corner.Z += cw
			g.Weights[idx+dimyz+1] += fweight(pos, corner)

			corner.Y += cw
			corner.Z -= cw
			g.Weights[idx+dimyz+g.DimZ] += fweight(pos, corner)

			corner.Z += cw
			g.Weights[idx+dimyz+g.DimZ+1] += fweight(pos, corner)
		}
	}
}
