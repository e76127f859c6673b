// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

// Package defparse resolves parsed class declarations into entity
// definitions. It deduplicates declared classes, resolves the multi-parent
// inheritance hierarchy among them, and builds the immutable definitions the
// editor consumes.
package defparse

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mapsmith/mapsmith/internal/entdef"
)

// ClassType is the kind of a declared entity class.
type ClassType int

const (
	// PointClass entities are placed as points in the map.
	PointClass ClassType = iota
	// BrushClass entities take their shape from map geometry.
	BrushClass
	// BaseClass declarations exist only to be inherited from.
	BaseClass
)

func (t ClassType) String() string {
	switch t {
	case PointClass:
		return "point"
	case BrushClass:
		return "brush"
	case BaseClass:
		return "base"
	}
	return "unknown"
}

// Location is the position of a declaration in its definition file, used for
// diagnostics.
type Location struct {
	Line   int
	Column int
}

// ClassInfo is one declared entity class as produced by a definition-file
// parser, before inheritance resolution. A ClassInfo is mutable while the
// resolver accumulates inherited attributes into a copy of it.
//
// Property entries are shared across copies; the resolver only ever replaces
// whole entries, never mutates one through the shared pointer.
type ClassInfo struct {
	Name        string
	Type        ClassType
	Location    Location
	Description *string
	Color       *colorful.Color
	Size        *entdef.Bounds
	Properties  []*entdef.PropertyDefinition
	Model       *entdef.ModelDefinition
	Decal       *entdef.DecalDefinition

	// SuperClasses lists the declared super-class names in declaration
	// order. Earlier names take precedence during resolution.
	SuperClasses []string
}

// property returns the class's property definition for the given key along
// with its index, or (nil, -1).
func (c *ClassInfo) property(key string) (*entdef.PropertyDefinition, int) {
	for i, definition := range c.Properties {
		if definition.Key == key {
			return definition, i
		}
	}
	return nil, -1
}
