// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"cogentcore.org/globe/geo"
	"github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testSnapshot() Snapshot {
	return NewSnapshot(2, 0.5, [3]float64{0.1, 0.2, 0.3}, []geo.Coordinate{
		{Lat: 35.26, Lon: 135},
		{Lat: -20.91, Lon: -90},
	})
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" GeoJSON ")
	assert.NoError(t, err)
	assert.Equal(t, GeoJSON, f)

	_, err = ParseFormat("kml")
	assert.Error(t, err)

	assert.Equal(t, ".yaml", YAML.Ext())
}

func TestNewSnapshot(t *testing.T) {
	s := testSnapshot()
	require.Len(t, s.Vertices, 2)
	assert.Equal(t, 1, s.Vertices[1].Index)
	assert.Equal(t, -90.0, s.Vertices[1].Lon)
}

func TestWriteGeoJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&b, testSnapshot(), GeoJSON))

	fc, err := geojson.UnmarshalFeatureCollection(b.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	pt := fc.Features[0].Geometry
	assert.True(t, pt.IsPoint())
	assert.Equal(t, []float64{135, 35.26}, pt.Point)
	assert.Equal(t, -20.91, fc.Features[1].Properties["lat"])
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&b, testSnapshot(), "JSON"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	vs := got["vertices"].([]any)
	require.Len(t, vs, 2)
	v0 := vs[0].(map[string]any)
	assert.Equal(t, 35.26, v0["lat"])
	assert.Equal(t, 135.0, v0["lon"])
	assert.Equal(t, 0.0, v0["index"])
}

func TestWriteYAML(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&b, testSnapshot(), YAML))

	var got Snapshot
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, testSnapshot(), got)
}

func TestWriteTOML(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write(&b, testSnapshot(), TOML))
	out := b.String()
	assert.Contains(t, out, "[[vertices]]")
	assert.Contains(t, out, "lat = 35.26")
	assert.Contains(t, out, "lon = -90.0")
}

func TestWriteErrors(t *testing.T) {
	var b bytes.Buffer
	assert.Error(t, Write(&b, testSnapshot(), "csv"))
	assert.Zero(t, b.Len())

	// JSON has no NaN
	s := NewSnapshot(5, 1, [3]float64{}, []geo.Coordinate{{Lat: math.NaN()}})
	assert.Error(t, Write(&b, s, JSON))
	assert.NoError(t, Write(&b, s, YAML))
}
