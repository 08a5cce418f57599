// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package globe shows a dodecahedron inside a translucent textured globe,
// with a panel reporting where each dodecahedron vertex falls on the
// globe in latitude and longitude.
package globe

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"cogentcore.org/core/core"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/globe/export"
	"cogentcore.org/globe/geo"
	"cogentcore.org/globe/polyhedron"
	"github.com/go-gl/mathgl/mgl64"
)

// Viewer holds everything one globe scene needs: the pose controls,
// the vertex projection, the 3D nodes and the panel widgets.
// It is owned by the frame loop and only touched from the GUI thread.
type Viewer struct {

	// Config has the initial settings.
	Config *Config

	// Placement is the current pose of the dodecahedron group.
	// Its Size also scales the globe.
	Placement Placement

	// Opacity is the current globe opacity.
	Opacity float64

	// Mesh is the dodecahedron geometry.
	Mesh *polyhedron.Mesh

	// Vertices are the distinct dodecahedron corners in local space.
	Vertices polyhedron.VertexSet

	// Projector maps Vertices onto the globe each frame.
	Projector *geo.Projector

	// SceneEditor is the 3D view widget.
	SceneEditor *xyzcore.SceneEditor

	// XYZ is the 3D scene.
	XYZ *xyz.Scene

	// Globe is the sphere solid.
	Globe *xyz.Solid

	// Group holds the dodecahedron faces and edges.
	Group *xyz.Group

	// panel widgets, created once in makePanel
	sizeSlider    *core.Slider
	opacitySlider *core.Slider
	rotSliders    [3]*core.Slider
	vertexText    []*core.Text

	// coordinates currently displayed in vertexText
	shown []geo.Coordinate
}

// NewViewer returns a viewer for the given config, with the vertex set
// and projector built. Call [Viewer.Build] to add the GUI.
func NewViewer(cfg *Config) *Viewer {
	v := &Viewer{Config: cfg}
	v.Mesh = polyhedron.Dodecahedron(cfg.Radius)
	v.Vertices = polyhedron.Dedupe(v.Mesh.Positions)
	v.Projector = geo.NewProjector(v.Vertices)
	v.Projector.Clamp = cfg.Clamp
	v.shown = make([]geo.Coordinate, len(v.Vertices))
	v.Reset()
	slog.Debug("globe: vertices", "positions", len(v.Mesh.Positions), "unique", len(v.Vertices))
	return v
}

// Reset restores the pose and opacity from the config.
func (v *Viewer) Reset() {
	v.Placement.SetSize(v.Config.Size)
	v.Placement.SetRotation(0, v.Config.RotX)
	v.Placement.SetRotation(1, v.Config.RotY)
	v.Placement.SetRotation(2, v.Config.RotZ)
	v.Opacity = mgl64.Clamp(v.Config.Opacity, 0, 1)
	v.applyPose()
	v.applyOpacity()
	v.updateSliders()
}

// SphereRadius is the radius of the globe as currently scaled.
func (v *Viewer) SphereRadius() float64 {
	return v.Config.Radius * v.Placement.Size
}

// Project recomputes the vertex coordinates for the current pose.
func (v *Viewer) Project() []geo.Coordinate {
	return v.Projector.Update(v.Placement.Matrix(), v.SphereRadius())
}

// SetSize scales the globe and the dodecahedron together.
func (v *Viewer) SetSize(size float64) {
	v.Placement.SetSize(size)
	v.applyPose()
}

// SetRotation sets the dodecahedron rotation around one axis (0 = X, 1 = Y, 2 = Z).
func (v *Viewer) SetRotation(axis int, angle float64) {
	v.Placement.SetRotation(axis, angle)
	v.applyPose()
}

// SetOpacity sets the globe opacity, clamped to [0, 1].
func (v *Viewer) SetOpacity(opacity float64) {
	v.Opacity = mgl64.Clamp(opacity, 0, 1)
	v.applyOpacity()
}

// applyPose copies the placement onto the scene nodes.
// Globe and group always get the same scale.
func (v *Viewer) applyPose() {
	if v.XYZ == nil {
		return
	}
	s := float32(v.Placement.Size)
	v.Globe.Pose.Scale.SetScalar(s)
	v.Group.Pose.Scale.SetScalar(s)
	r := v.Placement.Rotation
	v.Group.Pose.SetEulerRotationRad(float32(r[0]), float32(r[1]), float32(r[2]))
	v.XYZ.SetNeedsUpdate()
	v.SceneEditor.NeedsRender()
}

func (v *Viewer) applyOpacity() {
	if v.XYZ == nil {
		return
	}
	v.Globe.Material.Color.A = uint8(math.Round(v.Opacity * 255))
	v.XYZ.SetNeedsRender()
	v.SceneEditor.NeedsRender()
}

// Update is called once per frame: it projects the vertices for the
// current pose and refreshes only the vertex labels that changed.
func (v *Viewer) Update() {
	cs := v.Project()
	for i, c := range cs {
		if c == v.shown[i] {
			continue
		}
		v.shown[i] = c
		if v.vertexText != nil {
			v.vertexText[i].SetText(vertexLabel(i, c)).UpdateRender()
		}
	}
}

// Snapshot returns the current state for export.
func (v *Viewer) Snapshot() export.Snapshot {
	return export.NewSnapshot(v.Placement.Size, v.Opacity, v.Placement.Rotation, v.Projector.Coords)
}

// WriteSnapshot projects the current pose and writes it to w.
func (v *Viewer) WriteSnapshot(w io.Writer, f export.Format) error {
	v.Project()
	if n := v.Projector.NumInvalid(); n > 0 {
		slog.Warn("globe: vertices have no valid coordinate", "count", n, "size", v.Placement.Size)
	}
	return export.Write(w, v.Snapshot(), f)
}

// SaveSnapshot writes the snapshot to the named file in the configured format.
func (v *Viewer) SaveSnapshot(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := v.WriteSnapshot(f, v.Config.Format); err != nil {
		return fmt.Errorf("globe: saving %s: %w", filename, err)
	}
	return nil
}

func vertexLabel(i int, c geo.Coordinate) string {
	return fmt.Sprintf("Vertex %d: %s", i+1, c)
}
