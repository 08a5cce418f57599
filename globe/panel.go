// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
)

// makePanel adds the controls and the vertex coordinate list to fr.
// All widgets are made here once; [Viewer.Update] only changes their text.
func (v *Viewer) makePanel(fr *core.Frame) {
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Overflow.Y = styles.OverflowAuto
	})

	v.sizeSlider = newSlider(fr, "Size", MinSize, MaxSize, v.SetSize)
	v.opacitySlider = newSlider(fr, "Globe Opacity", 0, 1, v.SetOpacity)

	core.NewText(fr).SetText("Dodecahedron").SetType(core.TextTitleMedium)
	for axis, label := range []string{"Rotation X", "Rotation Y", "Rotation Z"} {
		v.rotSliders[axis] = newSlider(fr, label, 0, MaxRotation, func(angle float64) {
			v.SetRotation(axis, angle)
		})
	}

	core.NewText(fr).SetText("Vertices").SetType(core.TextTitleMedium)
	v.vertexText = make([]*core.Text, len(v.Vertices))
	for i := range v.vertexText {
		v.vertexText[i] = core.NewText(fr).SetText(vertexLabel(i, v.shown[i]))
	}
}

// newSlider adds a labeled slider over [lo, hi] that calls set while dragging.
func newSlider(par *core.Frame, label string, lo, hi float64, set func(v float64)) *core.Slider {
	row := core.NewFrame(par)
	row.Styler(func(s *styles.Style) {
		s.Align.Items = styles.Center
	})
	core.NewText(row).SetText(label)
	sl := core.NewSlider(row).SetMin(float32(lo)).SetMax(float32(hi)).SetStep(0.01)
	sl.OnInput(func(e events.Event) {
		set(float64(sl.Value))
	})
	return sl
}

// updateSliders shows the current pose in the sliders.
func (v *Viewer) updateSliders() {
	if v.sizeSlider == nil {
		return
	}
	v.sizeSlider.SetValue(float32(v.Placement.Size)).UpdateRender()
	v.opacitySlider.SetValue(float32(v.Opacity)).UpdateRender()
	for axis, sl := range v.rotSliders {
		sl.SetValue(float32(v.Placement.Rotation[axis])).UpdateRender()
	}
}

// MakeToolbar adds the viewer actions to the top bar.
func (v *Viewer) MakeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.Button) {
		w.SetText("Reset").SetIcon(icons.Update).
			SetTooltip("Restore the configured size, opacity, and rotation").
			OnClick(func(e events.Event) {
				v.Reset()
			})
	})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Export").SetIcon(icons.Save).
			SetTooltip("Save the current vertex coordinates to a file").
			OnClick(func(e events.Event) {
				fn := v.snapshotFilename()
				if errors.Log(v.SaveSnapshot(fn)) == nil {
					core.MessageSnackbar(w, "Saved "+fn)
				}
			})
	})
}

// snapshotFilename is the configured output file, or vertices
// with the extension of the configured format.
func (v *Viewer) snapshotFilename() string {
	if v.Config.Output != "" {
		return v.Config.Output
	}
	return "vertices" + v.Config.Format.Ext()
}
