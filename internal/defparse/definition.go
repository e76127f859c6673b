// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package defparse

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mapsmith/mapsmith/internal/entdef"
)

// CreateDefinitions resolves the given class declarations and builds an
// entity definition for every resolved point and brush class. Base classes
// contribute attributes to their subclasses but never appear in the result.
func CreateDefinitions(
	status ParserStatus,
	classInfos []ClassInfo,
	defaultColor colorful.Color,
) []entdef.Definition {
	resolved := ResolveInheritance(status, classInfos)

	result := make([]entdef.Definition, 0, len(resolved))
	for _, classInfo := range resolved {
		if definition := createDefinition(classInfo, defaultColor); definition != nil {
			result = append(result, definition)
		}
	}
	return result
}

// createDefinition converts one resolved class into an immutable definition,
// applying defaults for attributes the hierarchy never supplied. Base
// classes produce nil.
func createDefinition(classInfo ClassInfo, defaultColor colorful.Color) entdef.Definition {
	color := defaultColor
	if classInfo.Color != nil {
		color = *classInfo.Color
	}
	bounds := entdef.DefaultBounds
	if classInfo.Size != nil {
		bounds = *classInfo.Size
	}
	var description string
	if classInfo.Description != nil {
		description = *classInfo.Description
	}
	var model entdef.ModelDefinition
	if classInfo.Model != nil {
		model = *classInfo.Model
	}
	var decal entdef.DecalDefinition
	if classInfo.Decal != nil {
		decal = *classInfo.Decal
	}

	switch classInfo.Type {
	case PointClass:
		return entdef.NewPointDefinition(
			classInfo.Name, color, bounds, description, classInfo.Properties, model, decal)
	case BrushClass:
		return entdef.NewBrushDefinition(
			classInfo.Name, color, description, classInfo.Properties)
	case BaseClass:
		return nil
	}
	panic(fmt.Sprintf("defparse: unexpected class type %d", classInfo.Type))
}
