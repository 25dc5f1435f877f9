// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package grid

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"

	"github.com/memsurf/tessellate/internal/testutil"
)

func TestBuild_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		frames    [][]r3.Vector
		cellWidth float64
	}{
		{"no frames", nil, 1.0},
		{"empty frame", [][]r3.Vector{{}}, 1.0},
		{"zero cell width", [][]r3.Vector{{{X: 0, Y: 0, Z: 0}}}, 0},
		{"negative cell width", [][]r3.Vector{{{X: 0, Y: 0, Z: 0}}}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.frames, tt.cellWidth, LinearWeight(tt.cellWidth)); err == nil {
				t.Errorf("Build() error = nil, want non-nil")
			}
		})
	}
}

func TestBuild_FlatSinglePlane(t *testing.T) {
	// A single flat frame of four atoms at the corners of a 2x2 square,
	// all at z=0: only the cell around each atom has four populated
	// columns, so the surface area is positive but well below the 2x2
	// footprint, and AreaPerAtom is SurfaceArea divided by the atom count.
	frame := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 2, Z: 0},
		{X: 2, Y: 2, Z: 0},
	}
	cellWidth := 0.5

	g, err := Build([][]r3.Vector{frame}, cellWidth, LinearWeight(cellWidth))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.SurfaceArea <= 0 {
		t.Errorf("SurfaceArea = %v, want > 0", g.SurfaceArea)
	}
	if g.AreaPerAtom != g.SurfaceArea/float64(len(frame)) {
		t.Errorf("AreaPerAtom = %v, want SurfaceArea/NAtoms", g.AreaPerAtom)
	}
}

func TestBuild_SquareWeightKernel(t *testing.T) {
	frames := testutil.RandomTrajectory(3, 20, 10, 0.5, 7)
	cellWidth := 1.0

	g, err := Build(frames, cellWidth, SquareWeight(cellWidth))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.SurfaceArea < 0 {
		t.Errorf("SurfaceArea = %v, want >= 0", g.SurfaceArea)
	}

	wantEmpty := 0
	for _, h := range g.Heightmap {
		if h < 0 {
			wantEmpty++
		}
	}
	if g.NumEmpty != wantEmpty {
		t.Errorf("NumEmpty = %d, want %d (count of -1 heightmap columns)", g.NumEmpty, wantEmpty)
	}
}

// TestBuild_GridWithVoid is scenario S6 / property 10 (heightmap
// boundary): atoms placed only at the far corners of a wide footprint
// leave a genuinely untouched interior column, which must come back
// -1 in the heightmap and force zero area on every cell that
// references it as a corner.
func TestBuild_GridWithVoid(t *testing.T) {
	frame := []r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 0, Y: 10, Z: 0},
		{X: 10, Y: 10, Z: 0},
	}
	cellWidth := 1.0

	g, err := Build([][]r3.Vector{frame}, cellWidth, LinearWeight(cellWidth))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NumEmpty <= 0 {
		t.Fatalf("NumEmpty = %d, want > 0", g.NumEmpty)
	}

	gx, gy := 5, 5
	if h := g.Heightmap[gx*g.DimY+gy]; h != -1 {
		t.Fatalf("Heightmap[%d][%d] = %d, want -1 (empty)", gx, gy, h)
	}

	for _, cell := range [][2]int{{gx - 1, gy - 1}, {gx - 1, gy}, {gx, gy - 1}, {gx, gy}} {
		cx, cy := cell[0], cell[1]
		if cx < 0 || cy < 0 || cx > g.DimX-2 || cy > g.DimY-2 {
			t.Fatalf("test fixture bug: cell (%d,%d) out of grid range", cx, cy)
		}
		if got := g.Areas[cx*(g.DimY-1)+cy]; got != 0 {
			t.Errorf("Areas[%d][%d] = %v, want 0 (references empty column [%d][%d])", cx, cy, got, gx, gy)
		}
	}
}

func TestLinearWeight_DecreasesWithDistance(t *testing.T) {
	f := LinearWeight(1.0)
	corner := r3.Vector{X: 0, Y: 0, Z: 0}
	near := f(r3.Vector{X: 0.1, Y: 0, Z: 0}, corner)
	far := f(r3.Vector{X: 0.9, Y: 0, Z: 0}, corner)
	if near <= far {
		t.Errorf("weight(near) = %v, want > weight(far) = %v", near, far)
	}
}

func TestSquareWeight_DecreasesWithDistance(t *testing.T) {
	f := SquareWeight(1.0)
	corner := r3.Vector{X: 0, Y: 0, Z: 0}
	near := f(r3.Vector{X: 0.1, Y: 0, Z: 0}, corner)
	far := f(r3.Vector{X: 0.9, Y: 0, Z: 0}, corner)
	if near <= far {
		t.Errorf("weight(near) = %v, want > weight(far) = %v", near, far)
	}
}

func TestBuild_DeterministicAcrossRuns(t *testing.T) {
	frames := testutil.RandomTrajectory(2, 12, 8, 0.3, 99)
	cellWidth := 1.0

	g1, err := Build(frames, cellWidth, LinearWeight(cellWidth))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g2, err := Build(frames, cellWidth, LinearWeight(cellWidth))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if math.Abs(g1.SurfaceArea-g2.SurfaceArea) > 1e-12 {
		t.Errorf("SurfaceArea not deterministic: %v vs %v", g1.SurfaceArea, g2.SurfaceArea)
	}
}
