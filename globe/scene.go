// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
)

// edgeWidth is the thickness of the dodecahedron edge lines.
const edgeWidth = 0.01

// Build adds the 3D view and the control panel to b, and starts
// updating the vertex coordinates on every paint tick.
func (v *Viewer) Build(b *core.Body) {
	sp := core.NewSplits(b)
	panel := core.NewFrame(sp)
	v.SceneEditor = xyzcore.NewSceneEditor(sp)
	v.SceneEditor.UpdateWidget()
	v.XYZ = v.SceneEditor.SceneXYZ()
	sp.SetSplits(.25, .75)

	v.makeScene()
	v.makePanel(panel)
	v.Reset()

	b.AddTopBar(func(bar *core.Frame) {
		core.NewToolbar(bar).Maker(v.MakeToolbar)
	})

	// the scene widget handles resizing of the render frame itself
	v.SceneEditor.SceneWidget().Animate(func(a *core.Animation) {
		v.Update()
	})
}

// makeScene configures the camera and lights and adds the globe
// and the dodecahedron group.
func (v *Viewer) makeScene() {
	sc := v.XYZ
	xyz.NewAmbient(sc, "ambient", 0.8, xyz.DirectSun)
	dir := xyz.NewDirectional(sc, "dir", 0.5, xyz.DirectSun)
	dir.Pos.Set(0, 2, 1)

	sc.Camera.FOV = 75
	sc.Camera.Near = 0.1
	sc.Camera.Far = 1000
	sc.Camera.Pose.Pos.Set(0, 0, 5)
	sc.Camera.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
	sc.SaveCamera("default")

	radius := float32(v.Config.Radius)
	sphm := xyz.NewSphere(sc, "globe", radius, 32)
	v.Globe = xyz.NewSolid(sc).SetMesh(sphm).SetColor(colors.White)
	v.Globe.SetName("globe")
	if img, err := LoadTexture(v.Config.Texture, v.Config.MaxTextureWidth); err != nil {
		errors.Log(fmt.Errorf("globe: texture %q: %w", v.Config.Texture, err))
	} else {
		tx := &xyz.TextureBase{Name: "world", Transparent: true, RGBA: img}
		sc.SetTexture(tx)
		v.Globe.SetTexture(tx)
	}

	v.Group = xyz.NewGroup(sc)
	v.Group.SetName("dodecahedron")
	dm := NewPolyhedronMesh(sc, "dodecahedron", v.Mesh)
	xyz.NewSolid(v.Group).SetMesh(dm).SetColor(colors.Red)
	for _, ln := range NewEdgeMeshes(sc, "edge", v.Mesh, edgeWidth) {
		xyz.NewSolid(v.Group).SetMesh(ln).SetColor(colors.Black)
	}
	slog.Info("globe: scene ready", "vertices", len(v.Vertices), "faces", len(v.Mesh.Faces))
}
