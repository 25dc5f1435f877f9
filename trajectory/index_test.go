// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trajectory

import (
	"strings"
	"testing"

	"github.com/golang/geo/r3"
)

func TestReadIndexGroup(t *testing.T) {
	ndx := "[ Protein ]\n1 2 3\n4\n\n[ Water ]\n5 6\n"

	group, err := ReadIndexGroup(strings.NewReader(ndx), "Protein")
	if err != nil {
		t.Fatalf("ReadIndexGroup: %v", err)
	}
	want := IndexGroup{0, 1, 2, 3}
	if len(group) != len(want) {
		t.Fatalf("group = %v, want %v", group, want)
	}
	for i := range want {
		if group[i] != want[i] {
			t.Errorf("group[%d] = %d, want %d", i, group[i], want[i])
		}
	}
}

func TestReadIndexGroup_NotFound(t *testing.T) {
	ndx := "[ Protein ]\n1 2\n"
	if _, err := ReadIndexGroup(strings.NewReader(ndx), "Water"); err == nil {
		t.Fatal("ReadIndexGroup() error = nil, want error for missing group")
	}
}

func TestFilterByIndex(t *testing.T) {
	traj := &Trajectory{
		Frames: []Frame{
			{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}, {X: 2, Y: 2, Z: 2}},
		},
		NAtoms: 3,
	}
	filtered, err := FilterByIndex(traj, IndexGroup{0, 2})
	if err != nil {
		t.Fatalf("FilterByIndex: %v", err)
	}
	if filtered.NAtoms != 2 {
		t.Fatalf("NAtoms = %d, want 2", filtered.NAtoms)
	}
	want := r3.Vector{X: 2, Y: 2, Z: 2}
	if filtered.Frames[0][1] != want {
		t.Errorf("Frames[0][1] = %v, want %v", filtered.Frames[0][1], want)
	}
}

func TestFilterByIndex_OutOfRange(t *testing.T) {
	traj := &Trajectory{Frames: []Frame{{{X: 0, Y: 0, Z: 0}}}, NAtoms: 1}
	if _, err := FilterByIndex(traj, IndexGroup{5}); err == nil {
		t.Fatal("FilterByIndex() error = nil, want error for out-of-range index")
	}
}
