// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes snapshots of projected vertex coordinates
// in GeoJSON, JSON, YAML, or TOML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/globe/geo"
	"github.com/paulmach/go.geojson"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an output format name.
type Format string

const (
	// GeoJSON is a FeatureCollection with one Point feature per vertex.
	GeoJSON Format = "geojson"

	// JSON is the [Snapshot] as plain JSON.
	JSON Format = "json"

	// YAML is the [Snapshot] as YAML.
	YAML Format = "yaml"

	// TOML is the [Snapshot] as TOML.
	TOML Format = "toml"
)

// Formats are all supported formats.
var Formats = []Format{GeoJSON, JSON, YAML, TOML}

// ParseFormat returns the format with the given name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, ff := range Formats {
		if f == ff {
			return f, nil
		}
	}
	return "", fmt.Errorf("export: unknown format %q (want one of %v)", s, Formats)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + strings.ToLower(string(f))
}

// Vertex is one projected vertex.
type Vertex struct {

	// Index is the position of the vertex in the deduplicated vertex list.
	Index int `json:"index" yaml:"index" toml:"index"`

	geo.Coordinate `yaml:",inline"`
}

// Snapshot is the state of the scene at one frame.
type Snapshot struct {

	// Size is the uniform scale of the globe and the polyhedron.
	Size float64 `json:"size" yaml:"size" toml:"size"`

	// Opacity is the opacity of the globe.
	Opacity float64 `json:"opacity" yaml:"opacity" toml:"opacity"`

	// Rotation is the XYZ Euler rotation of the polyhedron, in radians.
	Rotation [3]float64 `json:"rotation" yaml:"rotation,flow" toml:"rotation"`

	// Vertices are the projected vertices in order.
	Vertices []Vertex `json:"vertices" yaml:"vertices" toml:"vertices"`
}

// NewSnapshot returns a snapshot of the given coordinates, indexed in order.
func NewSnapshot(size, opacity float64, rotation [3]float64, coords []geo.Coordinate) Snapshot {
	s := Snapshot{Size: size, Opacity: opacity, Rotation: rotation}
	s.Vertices = make([]Vertex, len(coords))
	for i, c := range coords {
		s.Vertices[i] = Vertex{Index: i, Coordinate: c}
	}
	return s
}

// Write encodes the snapshot to w in the given format.
func Write(w io.Writer, s Snapshot, f Format) error {
	f, err := ParseFormat(string(f))
	if err != nil {
		return err
	}
	switch f {
	case GeoJSON:
		b, err := FeatureCollection(s).MarshalJSON()
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(s)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(s)
	}
	return nil
}

// FeatureCollection returns the vertices as GeoJSON points.
// GeoJSON positions are [longitude, latitude].
func FeatureCollection(s Snapshot) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, v := range s.Vertices {
		ft := geojson.NewPointFeature([]float64{v.Lon, v.Lat})
		ft.SetProperty("index", v.Index)
		ft.SetProperty("lat", v.Lat)
		ft.SetProperty("lon", v.Lon)
		fc.AddFeature(ft)
	}
	return fc
}
