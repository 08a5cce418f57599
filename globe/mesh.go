// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/globe/polyhedron"
)

// NewPolyhedronMesh adds a flat-shaded mesh for ms to the scene.
// Every triangle keeps its own corners so that each face gets its own normal.
func NewPolyhedronMesh(sc *xyz.Scene, name string, ms *polyhedron.Mesh) *xyz.GenMesh {
	gm := &xyz.GenMesh{}
	gm.Name = name
	gm.Vertex = ms.Flat()
	gm.TexCoord = make(math32.ArrayF32, 2*len(ms.Positions))
	gm.Normal = make(math32.ArrayF32, 0, 3*len(ms.Positions))
	for fi, f := range ms.Faces {
		n := ms.FaceNormal(fi)
		for range 3 * (len(f) - 2) {
			gm.Normal = append(gm.Normal, float32(n[0]), float32(n[1]), float32(n[2]))
		}
	}
	gm.Index = make(math32.ArrayU32, len(ms.Positions))
	for i := range gm.Index {
		gm.Index[i] = uint32(i)
	}
	sc.SetMesh(gm)
	return gm
}

// NewEdgeMeshes adds one closed line loop per face of ms to the scene.
func NewEdgeMeshes(sc *xyz.Scene, name string, ms *polyhedron.Mesh, width float32) []*xyz.Lines {
	lns := make([]*xyz.Lines, len(ms.Faces))
	for fi, f := range ms.Faces {
		pts := make([]math32.Vector3, len(f))
		for i, ci := range f {
			c := ms.Corners[ci]
			pts[i] = math32.Vec3(float32(c[0]), float32(c[1]), float32(c[2]))
		}
		lns[fi] = xyz.NewLines(sc, fmt.Sprintf("%s-%d", name, fi), pts, math32.Vec2(width, width), xyz.CloseLines)
	}
	return lns
}
