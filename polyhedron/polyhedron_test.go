// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhedron

import (
	"math"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDodecahedron(t *testing.T) {
	ms := Dodecahedron(1)
	assert.Len(t, ms.Corners, 20)
	assert.Len(t, ms.Faces, 12)
	assert.Equal(t, 36, ms.NumTriangles())
	assert.Len(t, ms.Positions, 108)

	for _, c := range ms.Corners {
		tolassert.EqualTol(t, 1, c.Len(), 1e-12)
	}
	for _, p := range ms.Positions {
		assert.NotEqual(t, -1, VertexSet(ms.Corners).Index(p))
	}

	edges := map[[2]int]int{}
	for fi, f := range ms.Faces {
		var ctr mgl64.Vec3
		for i, c := range f {
			ctr = ctr.Add(ms.Corners[c])
			a, b := c, f[(i+1)%len(f)]
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}]++
		}
		assert.Greater(t, ms.FaceNormal(fi).Dot(ctr), 0.0, "face %d not outward", fi)
	}
	assert.Len(t, edges, 30)
	for e, n := range edges {
		assert.Equal(t, 2, n, "edge %v", e)
	}
}

func TestDodecahedronRadius(t *testing.T) {
	ms := Dodecahedron(2.5)
	for _, c := range ms.Corners {
		tolassert.EqualTol(t, 2.5, c.Len(), 1e-12)
	}
}

func TestDedupeDodecahedron(t *testing.T) {
	ms := Dodecahedron(1)
	vs := Dedupe(ms.Positions)
	require.Len(t, vs, 20)

	order := []int{3, 11, 7, 15, 13, 19, 17, 6, 4, 8, 10, 0, 16, 2, 12, 1, 18, 9, 14, 5}
	for i, ci := range order {
		assert.Equal(t, ms.Corners[ci], vs[i])
	}

	flat := DedupeFlat(ms.Flat())
	assert.Len(t, flat, 20)
}

func TestDedupeRepeated(t *testing.T) {
	var corners []mgl64.Vec3
	for i := range 20 {
		corners = append(corners, mgl64.Vec3{float64(i), float64(-i), 0.5})
	}
	var pos []mgl64.Vec3
	for range 3 {
		pos = append(pos, corners...)
	}
	require.Len(t, pos, 60)
	vs := Dedupe(pos)
	assert.Equal(t, VertexSet(corners), vs)
}

func TestDedupeProperties(t *testing.T) {
	in := []mgl64.Vec3{
		{1, 2, 3}, {0, 0, 0}, {1, 2, 3}, {1, 2, 3.0000001}, {0, 0, 0}, {-1, 0, 0},
	}
	vs := Dedupe(in)
	assert.Equal(t, VertexSet{{1, 2, 3}, {0, 0, 0}, {1, 2, 3.0000001}, {-1, 0, 0}}, vs)

	// idempotent
	assert.Equal(t, vs, Dedupe(vs))

	// complete
	for _, p := range in {
		assert.NotEqual(t, -1, vs.Index(p))
	}
	// unique
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			assert.NotEqual(t, vs[i], vs[j])
		}
	}
}

func TestDedupeExactEquality(t *testing.T) {
	negZero := math.Copysign(0, -1)
	nan := math.NaN()
	vs := Dedupe([]mgl64.Vec3{{0, 0, 0}, {negZero, 0, 0}, {nan, 0, 0}, {nan, 0, 0}})
	// -0 == +0, and NaN never equals itself
	assert.Len(t, vs, 3)
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
	assert.Empty(t, DedupeFlat([]float32{1, 2}))
}
