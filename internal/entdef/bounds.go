// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package entdef

import (
	"fmt"
)

// Vec3 is a point in map space.
type Vec3 [3]float64

func (v Vec3) String() string {
	return fmt.Sprintf("%g %g %g", v[0], v[1], v[2])
}

// Scaled returns the vector multiplied by s.
func (v Vec3) Scaled(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min Vec3
	Max Vec3
}

// DefaultBounds is the bounding box assigned to point entities whose class
// does not declare a size.
var DefaultBounds = Bounds{Min: Vec3{-8, -8, -8}, Max: Vec3{8, 8, 8}}

func (b Bounds) String() string {
	return fmt.Sprintf("(%s) (%s)", b.Min, b.Max)
}
