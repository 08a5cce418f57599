// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package globe

import "cogentcore.org/globe/export"

// Config has the settings for the globe viewer and the report command.
type Config struct {

	// Texture is the equirectangular world map image drawn on the globe.
	Texture string `default:"earth-lg.jpg"`

	// MaxTextureWidth is the widest texture sent to the GPU;
	// wider images are downsized keeping their aspect ratio. 0 means no limit.
	MaxTextureWidth int `default:"4096"`

	// Radius is the unscaled radius of the globe, which is also
	// the circumradius of the dodecahedron.
	Radius float64 `default:"1"`

	// Size is the uniform scale applied to both the globe and the dodecahedron.
	// It is clamped to [MinSize, MaxSize].
	Size float64 `default:"1"`

	// Opacity is the opacity of the globe, clamped to [0, 1].
	Opacity float64 `default:"0.5"`

	// RotX is the initial rotation of the dodecahedron around X, in radians.
	RotX float64

	// RotY is the initial rotation of the dodecahedron around Y, in radians.
	RotY float64

	// RotZ is the initial rotation of the dodecahedron around Z, in radians.
	RotZ float64

	// Clamp clamps the polar angle input to [-1, 1], so that vertices
	// outside the globe report a pole instead of NaN.
	Clamp bool

	// Format is the output format of the report command:
	// geojson, json, yaml, or toml.
	Format export.Format `default:"geojson"`

	// Output is the file the report is written to; standard output if empty.
	Output string
}
