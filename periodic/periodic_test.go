// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package periodic

import (
	"testing"

	"github.com/memsurf/tessellate/delaunay"
	"github.com/memsurf/tessellate/internal/testutil"
)

func TestCorrectArea_TooFewPoints(t *testing.T) {
	if _, err := CorrectArea([]delaunay.Point{{X: 0, Y: 0}}); err == nil {
		t.Fatal("CorrectArea() error = nil, want error for too few points")
	}
}

func TestCorrectArea_SquareLattice(t *testing.T) {
	pts := []delaunay.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10},
		{X: 5, Y: 5},
	}
	result, err := CorrectArea(pts)
	if err != nil {
		t.Fatalf("CorrectArea: %v", err)
	}
	if result.NAtoms != len(pts) {
		t.Errorf("NAtoms = %d, want %d", result.NAtoms, len(pts))
	}
	if result.Area1 <= 0 {
		t.Errorf("Area1 = %v, want > 0", result.Area1)
	}
	if result.Area2 <= 0 {
		t.Errorf("Area2 = %v, want > 0", result.Area2)
	}
	if got, want := result.Area, 2*result.Area1-result.Area2; got != want {
		t.Errorf("Area = %v, want 2*Area1 - Area2 = %v", got, want)
	}
}

func TestCorrectArea_RandomSet(t *testing.T) {
	pts := testutil.RandomPlanarPoints(40, 50, 3)
	if _, err := CorrectArea(pts); err != nil {
		t.Fatalf("CorrectArea: %v", err)
	}
}
