// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// MinSize is the smallest uniform scale.
	MinSize = 0.1

	// MaxSize is the largest uniform scale.
	MaxSize = 5.0

	// MaxRotation is the upper bound of each rotation angle, in radians.
	MaxRotation = 2 * math.Pi
)

// Placement is the pose of the polyhedron group: a uniform scale
// and a rotation, with no translation.
type Placement struct {

	// Size is the uniform scale on all three axes.
	// The globe is always scaled by the same amount.
	Size float64

	// Rotation is the Euler rotation in radians, applied in XYZ order.
	Rotation mgl64.Vec3
}

// Matrix returns the local to world transform Rx * Ry * Rz * S,
// the same composition the xyz Pose uses for Euler angles.
func (pl *Placement) Matrix() mgl64.Mat4 {
	s := pl.Size
	return mgl64.HomogRotate3DX(pl.Rotation[0]).
		Mul4(mgl64.HomogRotate3DY(pl.Rotation[1])).
		Mul4(mgl64.HomogRotate3DZ(pl.Rotation[2])).
		Mul4(mgl64.Scale3D(s, s, s))
}

// SetSize sets the size, clamped to [MinSize, MaxSize].
func (pl *Placement) SetSize(size float64) {
	pl.Size = mgl64.Clamp(size, MinSize, MaxSize)
}

// SetRotation sets the rotation around one axis (0 = X, 1 = Y, 2 = Z),
// clamped to [0, MaxRotation].
func (pl *Placement) SetRotation(axis int, angle float64) {
	pl.Rotation[axis] = mgl64.Clamp(angle, 0, MaxRotation)
}
