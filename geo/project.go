// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Places is the number of decimal places projected coordinates are rounded to.
const Places = 2

// ProjectPoint returns the coordinate of world-space point w as seen from
// the center of a sphere of the given radius, with +Z as the pole.
//
// The polar angle is acos(w.z / radius), so a point whose |z| exceeds the
// radius has no defined latitude and yields NaN, unless clamp is set, in
// which case the ratio is clamped to [-1, 1]. Keeping the point inside the
// sphere is the caller's job: whatever scales the points must scale the
// radius by the same factor.
func ProjectPoint(w mgl64.Vec3, radius float64, clamp bool) Coordinate {
	theta := math.Atan2(w.Y(), w.X())
	ratio := w.Z() / radius
	if clamp {
		ratio = mgl64.Clamp(ratio, -1, 1)
	}
	phi := math.Acos(ratio)
	lon := Round(mgl64.RadToDeg(theta), Places)
	if lon == -180 {
		lon = 180
	}
	return Coordinate{
		Lat: unsignedZero(Round(90-mgl64.RadToDeg(phi), Places)),
		Lon: unsignedZero(lon),
	}
}

// unsignedZero maps -0 to 0, so that small negative values
// rounded to zero never print as -0.00.
func unsignedZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

// Project transforms each local-space vertex by world and returns its
// coordinate on a sphere of the given radius centered at the origin.
// The i-th result corresponds to the i-th vertex.
func Project(vertices []mgl64.Vec3, world mgl64.Mat4, radius float64) []Coordinate {
	cs := make([]Coordinate, len(vertices))
	project(cs, vertices, world, radius, false)
	return cs
}

func project(cs []Coordinate, vertices []mgl64.Vec3, world mgl64.Mat4, radius float64, clamp bool) {
	for i, v := range vertices {
		w := world.Mul4x1(v.Vec4(1)).Vec3()
		cs[i] = ProjectPoint(w, radius, clamp)
	}
}

// Projector owns the coordinates for a fixed vertex list and
// recomputes them in place, once per frame.
type Projector struct {

	// Vertices are the local-space vertices, fixed after construction.
	Vertices []mgl64.Vec3

	// Coords are the results of the last [Projector.Update],
	// one per vertex in the same order.
	Coords []Coordinate

	// Clamp clamps the acos ratio to [-1, 1] so that a polyhedron
	// extending past the sphere pins to the poles instead of producing NaN.
	Clamp bool
}

// NewProjector returns a projector for the given vertices.
func NewProjector(vertices []mgl64.Vec3) *Projector {
	return &Projector{
		Vertices: vertices,
		Coords:   make([]Coordinate, len(vertices)),
	}
}

// Update recomputes [Projector.Coords] for the given world transform and
// sphere radius, overwriting the previous results.
func (pr *Projector) Update(world mgl64.Mat4, radius float64) []Coordinate {
	project(pr.Coords, pr.Vertices, world, radius, pr.Clamp)
	return pr.Coords
}

// NumInvalid returns how many of the current coordinates are NaN or out of range.
func (pr *Projector) NumInvalid() int {
	n := 0
	for _, c := range pr.Coords {
		if !c.IsValid() {
			n++
		}
	}
	return n
}
