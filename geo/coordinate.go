// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo projects 3D points onto latitude and longitude
// relative to the center of a reference sphere.
package geo

import (
	"fmt"
	"math"
)

// Coordinate is a position on the sphere in degrees.
// Lat is in [-90, 90] and Lon in (-180, 180].
type Coordinate struct {

	// Lat is the latitude in degrees, positive toward +Z.
	Lat float64 `json:"lat" yaml:"lat" toml:"lat"`

	// Lon is the longitude in degrees, measured in the XY plane from +X toward +Y.
	Lon float64 `json:"lon" yaml:"lon" toml:"lon"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("lat: %.2f, lon: %.2f", c.Lat, c.Lon)
}

// IsValid returns false if either angle is NaN or out of range.
func (c Coordinate) IsValid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon > -180 && c.Lon <= 180
}

// Round returns v rounded to the given number of decimal places,
// with halves rounded away from zero.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
