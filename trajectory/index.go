// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package trajectory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IndexGroup is a set of 0-based atom indices selecting a subset of a
// trajectory's atoms, the Go analogue of a GROMACS .ndx group.
type IndexGroup []int

// FilterByIndex projects every frame of traj down to the atoms named
// by group, mirroring ndx_filter_traj/filter_vecs in
// original_source/extern/gkut/include/gkut_io.h.
func FilterByIndex(traj *Trajectory, group IndexGroup) (*Trajectory, error) {
	for _, idx := range group {
		if idx < 0 || idx >= traj.NAtoms {
			return nil, fmt.Errorf("trajectory: index %d out of range [0, %d)", idx, traj.NAtoms)
		}
	}

	frames := make([]Frame, len(traj.Frames))
	for i, f := range traj.Frames {
		filtered := make(Frame, len(group))
		for j, idx := range group {
			filtered[j] = f[idx]
		}
		frames[i] = filtered
	}

	return &Trajectory{Frames: frames, NAtoms: len(group)}, nil
}

// ReadIndexGroup parses a single named group out of a GROMACS-style
// .ndx file: a "[ name ]" header followed by whitespace-separated
// 1-based atom indices, terminated by the next header or EOF. Indices
// are converted to 0-based before being returned.
func ReadIndexGroup(r io.Reader, name string) (IndexGroup, error) {
	scanner := bufio.NewScanner(r)

	var group IndexGroup
	inGroup := false
	found := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			header := strings.TrimSpace(strings.Trim(line, "[]"))
			if inGroup {
				break // next group started, we're done
			}
			inGroup = header == name
			if inGroup {
				found = true
			}
			continue
		}
		if !inGroup {
			continue
		}
		for _, f := range strings.Fields(line) {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("trajectory: parsing index group %q: %w", name, err)
			}
			group = append(group, n-1)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("trajectory: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("trajectory: index group %q not found", name)
	}

	return group, nil
}
