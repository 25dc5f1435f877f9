// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package trajectory provides the external collaborator the grid
// engine depends on: delivering per-frame atom positions, optionally
// filtered down to an index group.
//
// Full binary trajectory formats (GROMACS XTC/TRR and friends) are out
// of scope; this package instead reads a simple multi-frame text
// format, which is enough to exercise the same contract the grid
// engine expects from a real trajectory reader.
package trajectory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// Frame is the set of atom positions at a single point in the
// trajectory.
type Frame []r3.Vector

// Trajectory is a sequence of frames, each with the same atom count.
type Trajectory struct {
	Frames []Frame
	NAtoms int
}

// Positions returns the trajectory reshaped as [][]r3.Vector, the
// shape grid.Build expects.
func (t *Trajectory) Positions() [][]r3.Vector {
	out := make([][]r3.Vector, len(t.Frames))
	for i, f := range t.Frames {
		out[i] = []r3.Vector(f)
	}
	return out
}

// Reader produces a Trajectory, the collaborator contract the grid
// engine's caller relies on.
type Reader interface {
	ReadTrajectory() (*Trajectory, error)
}

// xyzReader reads the simplified multi-frame text format: each frame
// is natoms lines of "x y z", frames separated by a blank line.
type xyzReader struct {
	r io.Reader
}

// NewXYZReader returns a Reader for the simplified multi-frame XYZ-like
// text trajectory format, standing in for the original's GROMACS
// trajectory reader (original_source/extern/gkut/include/gkut_io.h's
// read_traj).
func NewXYZReader(r io.Reader) Reader {
	return &xyzReader{r: r}
}

func (x *xyzReader) ReadTrajectory() (*Trajectory, error) {
	scanner := bufio.NewScanner(x.r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	var frames []Frame
	var cur Frame

	flush := func() {
		if len(cur) > 0 {
			frames = append(frames, cur)
			cur = nil
		}
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("trajectory: line %d: want 3 fields, got %d", lineNo, len(fields))
		}
		var v [3]float64
		for i, f := range fields {
			val, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("trajectory: line %d: %w", lineNo, err)
			}
			v[i] = val
		}
		cur = append(cur, r3.Vector{X: v[0], Y: v[1], Z: v[2]})
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("trajectory: %w", err)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("trajectory: no frames read")
	}
	natoms := len(frames[0])
	for i, f := range frames {
		if len(f) != natoms {
			return nil, fmt.Errorf("trajectory: frame %d has %d atoms, want %d", i, len(f), natoms)
		}
	}

	return &Trajectory{Frames: frames, NAtoms: natoms}, nil
}
