// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package defparse

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapsmith/mapsmith/internal/entdef"
)

var testDefaultColor = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

func TestCreateDefinitions_AppliesDefaults(t *testing.T) {
	classInfo := mkClass("light", PointClass, 1)

	definitions := CreateDefinitions(&CollectingStatus{}, []ClassInfo{classInfo}, testDefaultColor)

	require.Len(t, definitions, 1)
	point, ok := definitions[0].(*entdef.PointDefinition)
	require.True(t, ok)

	assert.Equal(t, "light", point.Name())
	assert.Equal(t, testDefaultColor, point.Color())
	assert.Equal(t, entdef.DefaultBounds, point.Bounds())
	assert.Equal(t, "", point.Description())
	assert.True(t, point.Model().Empty())
	assert.True(t, point.Decal().Empty())
}

func TestCreateDefinitions_KeepsDeclaredAttributes(t *testing.T) {
	yellow := colorful.Color{R: 1, G: 1, B: 0}
	bounds := entdef.Bounds{Min: entdef.Vec3{-16, -16, 0}, Max: entdef.Vec3{16, 16, 32}}

	classInfo := mkClass("item_cells", PointClass, 1)
	classInfo.Color = &yellow
	classInfo.Size = &bounds
	classInfo.Description = strPtr("Cells")
	classInfo.Model = &entdef.ModelDefinition{Expressions: []string{`"maps/b_batt0.bsp"`}}
	classInfo.Properties = []*entdef.PropertyDefinition{mkStringProp("target", "")}

	definitions := CreateDefinitions(&CollectingStatus{}, []ClassInfo{classInfo}, testDefaultColor)

	require.Len(t, definitions, 1)
	point := definitions[0].(*entdef.PointDefinition)

	assert.Equal(t, yellow, point.Color())
	assert.Equal(t, bounds, point.Bounds())
	assert.Equal(t, "Cells", point.Description())
	assert.Equal(t, []string{`"maps/b_batt0.bsp"`}, point.Model().Expressions)
	require.NotNil(t, point.Property("target"))
	assert.Nil(t, point.Property("missing"))
}

func TestCreateDefinitions_BrushClass(t *testing.T) {
	classInfo := mkClass("func_door", BrushClass, 1)
	classInfo.Description = strPtr("Basic door")

	definitions := CreateDefinitions(&CollectingStatus{}, []ClassInfo{classInfo}, testDefaultColor)

	require.Len(t, definitions, 1)
	brush, ok := definitions[0].(*entdef.BrushDefinition)
	require.True(t, ok)
	assert.Equal(t, "func_door", brush.Name())
	assert.Equal(t, "Basic door", brush.Description())
}

func TestCreateDefinitions_BaseClassesNeverMaterialize(t *testing.T) {
	base := mkClass("Targetname", BaseClass, 1)
	base.Properties = []*entdef.PropertyDefinition{mkStringProp("targetname", "")}

	child := mkClass("light", PointClass, 2)
	child.SuperClasses = []string{"Targetname"}

	definitions := CreateDefinitions(&CollectingStatus{}, []ClassInfo{base, child}, testDefaultColor)

	require.Len(t, definitions, 1)
	assert.Equal(t, "light", definitions[0].Name())
	assert.NotNil(t, definitions[0].Property("targetname"))
}
