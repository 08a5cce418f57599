// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polyhedron

import "github.com/go-gl/mathgl/mgl64"

// VertexSet is an ordered list of distinct positions.
// Its length is fixed once built.
type VertexSet []mgl64.Vec3

// Dedupe returns the distinct positions in order of first occurrence.
// Equality is exact component-wise float equality with no tolerance,
// which holds for meshes that repeat shared corners bit for bit.
func Dedupe(positions []mgl64.Vec3) VertexSet {
	vs := VertexSet{}
	// map float keys compare with ==: +0 and -0 collide and NaN never matches,
	// the same as a linear scan.
	seen := make(map[mgl64.Vec3]struct{}, len(positions))
	for _, p := range positions {
		if _, has := seen[p]; has {
			continue
		}
		seen[p] = struct{}{}
		vs = append(vs, p)
	}
	return vs
}

// DedupeFlat is [Dedupe] for a flat x, y, z array as stored in a
// vertex buffer. A trailing partial triple is ignored.
func DedupeFlat(flat []float32) VertexSet {
	n := len(flat) / 3
	pos := make([]mgl64.Vec3, n)
	for i := range n {
		pos[i] = mgl64.Vec3{float64(flat[3*i]), float64(flat[3*i+1]), float64(flat[3*i+2])}
	}
	return Dedupe(pos)
}

// Index returns the index of p in the set, or -1.
func (vs VertexSet) Index(p mgl64.Vec3) int {
	for i, v := range vs {
		if v == p {
			return i
		}
	}
	return -1
}
