// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package fgd

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapsmith/mapsmith/internal/defparse"
	"github.com/mapsmith/mapsmith/internal/entdef"
)

const sampleFGD = `
// Sample definitions covering the supported syntax.
@baseclass = Appearflags [
	spawnflags(flags) =
	[
		256 : "Not on Easy" : 0
		512 : "Not on Normal" : 1
	]
]

@baseclass size(-8 -8 -8, 8 8 8) color(80 0 200) = Ammo [
	targetname(target_source) : "Name"
]

@PointClass base(Appearflags, Ammo) model(":maps/b_batt0.bsp") = item_cells : "Cells" [
	light(integer) : "Light level" : 300 : "How bright the cells glow."
	style(choices) : "Style" : 0 =
	[
		0 : "Normal"
		1 : "Flicker"
	]
	wait(float) : "Wait" : 1.5
	message(string) : "Message"
	pose(sequence) : "Pose"
	rendercolor(color255) : "Render color" : "255 128 0"
	angle(float) readonly : "Angle"
]

@SolidClass = func_door : "Door" []
`

func parseSample(t *testing.T) ([]defparse.ClassInfo, *defparse.CollectingStatus) {
	t.Helper()
	status := &defparse.CollectingStatus{}
	classInfos, err := NewParser("sample.fgd", sampleFGD).ParseClassInfos(status)
	require.NoError(t, err)
	return classInfos, status
}

func propertyByKey(t *testing.T, classInfo defparse.ClassInfo, key string) *entdef.PropertyDefinition {
	t.Helper()
	for _, property := range classInfo.Properties {
		if property.Key == key {
			return property
		}
	}
	t.Fatalf("property %q not found in class %q", key, classInfo.Name)
	return nil
}

func TestParseClassInfos_ClassShapes(t *testing.T) {
	classInfos, status := parseSample(t)

	require.Len(t, classInfos, 4)
	assert.Equal(t, "Appearflags", classInfos[0].Name)
	assert.Equal(t, defparse.BaseClass, classInfos[0].Type)
	assert.Equal(t, "Ammo", classInfos[1].Name)
	assert.Equal(t, "item_cells", classInfos[2].Name)
	assert.Equal(t, defparse.PointClass, classInfos[2].Type)
	assert.Equal(t, "func_door", classInfos[3].Name)
	assert.Equal(t, defparse.BrushClass, classInfos[3].Type)

	// One warning for the unknown "sequence" property type.
	require.Len(t, status.Diagnostics, 1)
	assert.Equal(t, defparse.SeverityWarning, status.Diagnostics[0].Severity)
	assert.Contains(t, status.Diagnostics[0].Message, "sequence")
}

func TestParseClassInfos_ClassAttributes(t *testing.T) {
	classInfos, _ := parseSample(t)

	ammo := classInfos[1]
	require.NotNil(t, ammo.Size)
	assert.Equal(t, entdef.Bounds{
		Min: entdef.Vec3{-8, -8, -8},
		Max: entdef.Vec3{8, 8, 8},
	}, *ammo.Size)

	require.NotNil(t, ammo.Color)
	assert.InDelta(t, 80.0/255.0, ammo.Color.R, 1e-9)
	assert.InDelta(t, 0, ammo.Color.G, 1e-9)
	assert.InDelta(t, 200.0/255.0, ammo.Color.B, 1e-9)

	cells := classInfos[2]
	assert.Equal(t, []string{"Appearflags", "Ammo"}, cells.SuperClasses)
	require.NotNil(t, cells.Model)
	assert.Equal(t, []string{`":maps/b_batt0.bsp"`}, cells.Model.Expressions)
	require.NotNil(t, cells.Description)
	assert.Equal(t, "Cells", *cells.Description)
}

func TestParseClassInfos_Spawnflags(t *testing.T) {
	classInfos, _ := parseSample(t)

	spawnflags := propertyByKey(t, classInfos[0], "spawnflags")
	flags, ok := spawnflags.Value.(entdef.FlagsValue)
	require.True(t, ok)
	require.Len(t, flags.Flags, 2)

	easy, ok := flags.Flag(256)
	require.True(t, ok)
	assert.Equal(t, "Not on Easy", easy.ShortDescription)
	assert.False(t, easy.IsDefault)

	normal, ok := flags.Flag(512)
	require.True(t, ok)
	assert.True(t, normal.IsDefault)
	assert.Equal(t, 512, flags.Default)
}

func TestParseClassInfos_PropertyKinds(t *testing.T) {
	classInfos, _ := parseSample(t)
	cells := classInfos[2]

	light := propertyByKey(t, cells, "light")
	assert.Equal(t, "Light level", light.ShortDescription)
	assert.Equal(t, "How bright the cells glow.", light.LongDescription)
	integer, ok := light.Value.(entdef.IntegerValue)
	require.True(t, ok)
	require.NotNil(t, integer.Default)
	assert.Equal(t, 300, *integer.Default)

	style := propertyByKey(t, cells, "style")
	choice, ok := style.Value.(entdef.ChoiceValue)
	require.True(t, ok)
	require.NotNil(t, choice.Default)
	assert.Equal(t, "0", *choice.Default)
	assert.Equal(t, []entdef.ChoiceOption{
		{Value: "0", Description: "Normal"},
		{Value: "1", Description: "Flicker"},
	}, choice.Options)

	wait := propertyByKey(t, cells, "wait")
	float, ok := wait.Value.(entdef.FloatValue)
	require.True(t, ok)
	require.NotNil(t, float.Default)
	assert.Equal(t, 1.5, *float.Default)

	message := propertyByKey(t, cells, "message")
	str, ok := message.Value.(entdef.StringValue)
	require.True(t, ok)
	assert.Nil(t, str.Default)

	pose := propertyByKey(t, cells, "pose")
	_, ok = pose.Value.(entdef.UnknownValue)
	assert.True(t, ok)

	target := propertyByKey(t, classInfos[1], "targetname")
	_, ok = target.Value.(entdef.TargetSource)
	assert.True(t, ok)

	angle := propertyByKey(t, cells, "angle")
	assert.True(t, angle.ReadOnly)
}

func TestParseClassInfos_ColorProperty(t *testing.T) {
	classInfos, _ := parseSample(t)

	rendercolor := propertyByKey(t, classInfos[2], "rendercolor")
	color, ok := rendercolor.Value.(entdef.ColorValue)
	require.True(t, ok)
	require.Len(t, color.Components, 3)

	assert.Equal(t, entdef.ColorRoleRed, color.Components[0].Role)
	assert.Equal(t, entdef.ColorValueByte, color.Components[0].ValueType)
	require.NotNil(t, color.Components[0].Default)
	assert.Equal(t, 255.0, *color.Components[0].Default)
	require.NotNil(t, color.Components[1].Default)
	assert.Equal(t, 128.0, *color.Components[1].Default)
	require.NotNil(t, color.Components[2].Default)
	assert.Equal(t, 0.0, *color.Components[2].Default)

	rendered, ok := rendercolor.DefaultValue()
	require.True(t, ok)
	assert.Equal(t, "255.000000 128.000000 0.000000", rendered)
}

func TestParseClassInfos_SyntaxErrorIsFatal(t *testing.T) {
	status := &defparse.CollectingStatus{}
	_, err := NewParser("broken.fgd", "@PointClass = [").ParseClassInfos(status)
	require.Error(t, err)
}

func TestParseClassInfos_UnknownClassTypeSkipped(t *testing.T) {
	source := `
@WeirdClass = thing : "?" []
@PointClass = light : "Light" []
`
	status := &defparse.CollectingStatus{}
	classInfos, err := NewParser("weird.fgd", source).ParseClassInfos(status)
	require.NoError(t, err)

	require.Len(t, classInfos, 1)
	assert.Equal(t, "light", classInfos[0].Name)
	require.Len(t, status.Diagnostics, 1)
	assert.Equal(t, defparse.SeverityError, status.Diagnostics[0].Severity)
	assert.Contains(t, status.Diagnostics[0].Message, "WeirdClass")
}

func TestFullPipeline(t *testing.T) {
	status := &defparse.CollectingStatus{}
	parser := defparse.NewParser(
		NewParser("sample.fgd", sampleFGD),
		colorful.Color{R: 0.5, G: 0.5, B: 0.5},
	)

	definitions, err := parser.ParseDefinitions(status)
	require.NoError(t, err)

	// Base classes never materialize as definitions.
	require.Len(t, definitions, 2)
	assert.Equal(t, "item_cells", definitions[0].Name())
	assert.Equal(t, "func_door", definitions[1].Name())

	cells, ok := definitions[0].(*entdef.PointDefinition)
	require.True(t, ok)

	// Attributes inherited through the base chain.
	assert.Equal(t, entdef.Bounds{
		Min: entdef.Vec3{-8, -8, -8},
		Max: entdef.Vec3{8, 8, 8},
	}, cells.Bounds())
	assert.NotNil(t, cells.Property("spawnflags"))
	assert.NotNil(t, cells.Property("targetname"))
	assert.Equal(t, []string{`":maps/b_batt0.bsp"`}, cells.Model().Expressions)
}
