// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package polyhedron generates polyhedron vertex data in the raw,
// per-face form emitted for rendering, and reduces it back to
// the set of distinct corners.
package polyhedron

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is a non-indexed triangle polyhedron.
type Mesh struct {

	// Corners are the distinct corner positions, scaled to the circumradius.
	Corners []mgl64.Vec3

	// Faces are the polygonal faces as loops of indexes into Corners,
	// wound counter-clockwise when seen from outside.
	Faces [][]int

	// Positions is the flat triangle list: every triangle stores its own
	// copy of each corner, so shared corners repeat with identical bits.
	Positions []mgl64.Vec3
}

// golden ratio
var phi = (1 + math.Sqrt(5)) / 2

// dodecahedronCorners are the unscaled corners: the 8 cube corners
// followed by the three golden rectangles.
var dodecahedronCorners = []mgl64.Vec3{
	{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
	{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},

	{0, -1 / phi, -phi}, {0, -1 / phi, phi}, {0, 1 / phi, -phi}, {0, 1 / phi, phi},

	{-1 / phi, -phi, 0}, {-1 / phi, phi, 0}, {1 / phi, -phi, 0}, {1 / phi, phi, 0},

	{-phi, 0, -1 / phi}, {phi, 0, -1 / phi}, {-phi, 0, 1 / phi}, {phi, 0, 1 / phi},
}

// dodecahedronFaces are the 12 pentagons. Each one is emitted as a
// triangle fan around its first corner.
var dodecahedronFaces = [][]int{
	{3, 11, 7, 15, 13},
	{7, 19, 17, 6, 15},
	{17, 4, 8, 10, 6},
	{8, 0, 16, 2, 10},
	{0, 12, 1, 18, 16},
	{6, 10, 2, 13, 15},
	{2, 16, 18, 3, 13},
	{18, 1, 9, 11, 3},
	{4, 14, 12, 0, 8},
	{11, 9, 5, 19, 7},
	{19, 5, 14, 4, 17},
	{1, 12, 14, 5, 9},
}

// Dodecahedron returns a regular dodecahedron centered at the origin
// whose corners all lie at the given circumradius.
func Dodecahedron(radius float64) *Mesh {
	return newMesh(dodecahedronCorners, dodecahedronFaces, radius)
}

func newMesh(corners []mgl64.Vec3, faces [][]int, radius float64) *Mesh {
	ms := &Mesh{Faces: faces}
	ms.Corners = make([]mgl64.Vec3, len(corners))
	for i, c := range corners {
		ms.Corners[i] = c.Normalize().Mul(radius)
	}
	for _, f := range faces {
		for i := 1; i+1 < len(f); i++ {
			ms.Positions = append(ms.Positions, ms.Corners[f[0]], ms.Corners[f[i]], ms.Corners[f[i+1]])
		}
	}
	return ms
}

// NumTriangles returns the number of triangles in [Mesh.Positions].
func (ms *Mesh) NumTriangles() int {
	return len(ms.Positions) / 3
}

// FaceNormal returns the outward unit normal of face fi.
func (ms *Mesh) FaceNormal(fi int) mgl64.Vec3 {
	f := ms.Faces[fi]
	a, b, c := ms.Corners[f[0]], ms.Corners[f[1]], ms.Corners[f[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Flat returns the positions as a flat x, y, z float32 array,
// the layout used by GPU vertex buffers.
func (ms *Mesh) Flat() []float32 {
	flat := make([]float32, 0, 3*len(ms.Positions))
	for _, p := range ms.Positions {
		flat = append(flat, float32(p[0]), float32(p[1]), float32(p[2]))
	}
	return flat
}
