// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package entdef

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Definition is a fully resolved, immutable entity definition. Concrete
// implementations are PointDefinition and BrushDefinition.
type Definition interface {
	Name() string
	Color() colorful.Color
	Description() string
	Properties() []*PropertyDefinition

	// Property returns the definition for the given key, or nil.
	Property(key string) *PropertyDefinition
}

type definitionBase struct {
	name        string
	color       colorful.Color
	description string
	properties  []*PropertyDefinition
}

func (d *definitionBase) Name() string                      { return d.name }
func (d *definitionBase) Color() colorful.Color             { return d.color }
func (d *definitionBase) Description() string               { return d.description }
func (d *definitionBase) Properties() []*PropertyDefinition { return d.properties }

func (d *definitionBase) Property(key string) *PropertyDefinition {
	for _, property := range d.properties {
		if property.Key == key {
			return property
		}
	}
	return nil
}

// PointDefinition describes an entity placed as a point in the map, with a
// bounding box and optional model and decal placement.
type PointDefinition struct {
	definitionBase
	bounds Bounds
	model  ModelDefinition
	decal  DecalDefinition
}

// NewPointDefinition builds an immutable point entity definition.
func NewPointDefinition(
	name string,
	color colorful.Color,
	bounds Bounds,
	description string,
	properties []*PropertyDefinition,
	model ModelDefinition,
	decal DecalDefinition,
) *PointDefinition {
	return &PointDefinition{
		definitionBase: definitionBase{
			name:        name,
			color:       color,
			description: description,
			properties:  properties,
		},
		bounds: bounds,
		model:  model,
		decal:  decal,
	}
}

// Bounds returns the entity's bounding box.
func (d *PointDefinition) Bounds() Bounds { return d.bounds }

// Model returns the model placement chain.
func (d *PointDefinition) Model() ModelDefinition { return d.model }

// Decal returns the decal placement chain.
func (d *PointDefinition) Decal() DecalDefinition { return d.decal }

// BrushDefinition describes an entity whose shape is supplied by map
// geometry. It carries no size or placement definitions.
type BrushDefinition struct {
	definitionBase
}

// NewBrushDefinition builds an immutable brush entity definition.
func NewBrushDefinition(
	name string,
	color colorful.Color,
	description string,
	properties []*PropertyDefinition,
) *BrushDefinition {
	return &BrushDefinition{
		definitionBase: definitionBase{
			name:        name,
			color:       color,
			description: description,
			properties:  properties,
		},
	}
}
