// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package fgd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/oops"

	"github.com/mapsmith/mapsmith/internal/defparse"
	"github.com/mapsmith/mapsmith/internal/entdef"
)

// colorComponentCount is the minimum number of components a color property
// declares. Defaults beyond the declared count extend the component list.
const colorComponentCount = 3

// Parser parses one FGD source into class declarations. It implements
// defparse.ClassInfoParser.
type Parser struct {
	filename string
	source   string
}

// NewParser builds a parser over FGD source text. The filename is used in
// parse error messages only.
func NewParser(filename, source string) *Parser {
	return &Parser{filename: filename, source: source}
}

// ParseClassInfos parses the source into class declarations in file order.
// Syntax errors are fatal and abort the whole load; malformed attributes and
// unknown property types are reported through the status sink and the load
// continues.
func (p *Parser) ParseClassInfos(status defparse.ParserStatus) ([]defparse.ClassInfo, error) {
	file, err := parser.ParseString(p.filename, p.source)
	if err != nil {
		return nil, oops.With("file", p.filename).Wrapf(err, "parsing FGD source")
	}

	var classInfos []defparse.ClassInfo
	for _, decl := range file.Classes {
		if classInfo, ok := p.convertClass(status, decl); ok {
			classInfos = append(classInfos, classInfo)
		}
	}
	return classInfos, nil
}

func (p *Parser) convertClass(status defparse.ParserStatus, decl *classDecl) (defparse.ClassInfo, bool) {
	location := toLocation(decl.Pos)

	classType, ok := classTypeOf(decl.Kind)
	if !ok {
		status.Error(location, fmt.Sprintf("Unknown class type '@%s'", decl.Kind))
		return defparse.ClassInfo{}, false
	}

	classInfo := defparse.ClassInfo{
		Name:        decl.Name,
		Type:        classType,
		Location:    location,
		Description: decl.Description,
	}

	for _, attribute := range decl.Attributes {
		p.applyClassAttribute(status, &classInfo, attribute)
	}

	for _, property := range decl.Properties {
		classInfo.Properties = append(classInfo.Properties, p.convertProperty(status, property))
	}

	return classInfo, true
}

func classTypeOf(kind string) (defparse.ClassType, bool) {
	switch strings.ToLower(kind) {
	case "pointclass":
		return defparse.PointClass, true
	case "solidclass", "brushclass":
		return defparse.BrushClass, true
	case "baseclass":
		return defparse.BaseClass, true
	}
	return 0, false
}

func (p *Parser) applyClassAttribute(
	status defparse.ParserStatus,
	classInfo *defparse.ClassInfo,
	attribute *classAttribute,
) {
	location := toLocation(attribute.Pos)

	switch strings.ToLower(attribute.Name) {
	case "base":
		for _, group := range attribute.Groups {
			for _, value := range group.Values {
				if value.Ident == nil {
					status.Warn(location, fmt.Sprintf(
						"Ignoring malformed super class reference %s", value.text()))
					continue
				}
				classInfo.SuperClasses = append(classInfo.SuperClasses, *value.Ident)
			}
		}
	case "color":
		if color, ok := parseColor(attribute); ok {
			classInfo.Color = &color
		} else {
			status.Warn(location, "Ignoring malformed color() attribute")
		}
	case "size":
		if bounds, ok := parseSize(attribute); ok {
			classInfo.Size = &bounds
		} else {
			status.Warn(location, "Ignoring malformed size() attribute")
		}
	case "model", "studio", "sprite", "iconsprite":
		if classInfo.Model == nil {
			classInfo.Model = &entdef.ModelDefinition{}
		}
		classInfo.Model.Expressions = append(classInfo.Model.Expressions, attributeText(attribute))
	case "decal":
		if classInfo.Decal == nil {
			classInfo.Decal = &entdef.DecalDefinition{}
		}
		classInfo.Decal.Expressions = append(classInfo.Decal.Expressions, attributeText(attribute))
	default:
		status.Warn(location, fmt.Sprintf("Ignoring unknown class attribute '%s'", attribute.Name))
	}
}

// parseColor accepts color(r g b) with components in 0-255 or 0-1 range; any
// component above 1 switches the whole attribute to byte scale.
func parseColor(attribute *classAttribute) (colorful.Color, bool) {
	values := numericArgs(attribute)
	if len(values) != 3 {
		return colorful.Color{}, false
	}

	scale := 1.0
	for _, v := range values {
		if v > 1 {
			scale = 255.0
			break
		}
	}
	return colorful.Color{R: values[0] / scale, G: values[1] / scale, B: values[2] / scale}, true
}

// parseSize accepts size(min, max) with two corner vectors, or size(extent)
// with a single vector describing a box centered on the origin.
func parseSize(attribute *classAttribute) (entdef.Bounds, bool) {
	switch len(attribute.Groups) {
	case 1:
		extent, ok := vectorArg(attribute.Groups[0])
		if !ok {
			return entdef.Bounds{}, false
		}
		return entdef.Bounds{Min: extent.Scaled(-0.5), Max: extent.Scaled(0.5)}, true
	case 2:
		min, okMin := vectorArg(attribute.Groups[0])
		max, okMax := vectorArg(attribute.Groups[1])
		if !okMin || !okMax {
			return entdef.Bounds{}, false
		}
		return entdef.Bounds{Min: min, Max: max}, true
	}
	return entdef.Bounds{}, false
}

func vectorArg(group *argGroup) (entdef.Vec3, bool) {
	if len(group.Values) != 3 {
		return entdef.Vec3{}, false
	}
	var v entdef.Vec3
	for i, value := range group.Values {
		if value.Num == nil {
			return entdef.Vec3{}, false
		}
		v[i] = *value.Num
	}
	return v, true
}

func numericArgs(attribute *classAttribute) []float64 {
	var values []float64
	for _, group := range attribute.Groups {
		for _, value := range group.Values {
			if value.Num == nil {
				return nil
			}
			values = append(values, *value.Num)
		}
	}
	return values
}

// attributeText rebuilds an attribute's argument list as opaque expression
// text for model and decal chains.
func attributeText(attribute *classAttribute) string {
	parts := make([]string, len(attribute.Groups))
	for i, group := range attribute.Groups {
		parts[i] = group.text()
	}
	return strings.Join(parts, ", ")
}

func (p *Parser) convertProperty(
	status defparse.ParserStatus,
	decl *propertyDecl,
) *entdef.PropertyDefinition {
	location := toLocation(decl.Pos)

	definition := &entdef.PropertyDefinition{
		Key:      decl.Key,
		ReadOnly: decl.ReadOnly,
	}
	if decl.Short != nil {
		definition.ShortDescription = *decl.Short
	}
	if decl.Long != nil {
		definition.LongDescription = *decl.Long
	}

	switch strings.ToLower(decl.Type) {
	case "target_source":
		definition.Value = entdef.TargetSource{}
	case "target_destination":
		definition.Value = entdef.TargetDestination{}
	case "string":
		definition.Value = entdef.StringValue{Default: stringDefault(decl)}
	case "integer":
		definition.Value = entdef.IntegerValue{Default: p.integerDefault(status, decl)}
	case "float":
		definition.Value = entdef.FloatValue{Default: p.floatDefault(status, decl)}
	case "boolean":
		definition.Value = entdef.BooleanValue{Default: p.booleanDefault(status, decl)}
	case "choices":
		definition.Value = p.convertChoices(decl)
	case "flags":
		definition.Value = p.convertFlags(status, decl)
	case "color1":
		definition.Value = convertColor(decl, entdef.ColorValueFloat)
	case "color255":
		definition.Value = convertColor(decl, entdef.ColorValueByte)
	default:
		status.Warn(location, fmt.Sprintf(
			"Unknown property definition type '%s' for property '%s'", decl.Type, decl.Key))
		definition.Value = entdef.UnknownValue{Default: stringDefault(decl)}
	}

	return definition
}

func stringDefault(decl *propertyDecl) *string {
	if decl.Default == nil {
		return nil
	}
	s := decl.Default.plain()
	return &s
}

func (p *Parser) integerDefault(status defparse.ParserStatus, decl *propertyDecl) *int {
	if decl.Default == nil {
		return nil
	}
	if decl.Default.Num != nil {
		num := *decl.Default.Num
		if num != math.Trunc(num) {
			status.Warn(toLocation(decl.Pos), fmt.Sprintf(
				"Truncating default value %g of integer property '%s'", num, decl.Key))
		}
		i := int(num)
		return &i
	}
	if i, err := strconv.Atoi(decl.Default.plain()); err == nil {
		return &i
	}
	status.Warn(toLocation(decl.Pos), fmt.Sprintf(
		"Ignoring malformed default value of integer property '%s'", decl.Key))
	return nil
}

func (p *Parser) floatDefault(status defparse.ParserStatus, decl *propertyDecl) *float64 {
	if decl.Default == nil {
		return nil
	}
	if decl.Default.Num != nil {
		return decl.Default.Num
	}
	if f, err := strconv.ParseFloat(decl.Default.plain(), 64); err == nil {
		return &f
	}
	status.Warn(toLocation(decl.Pos), fmt.Sprintf(
		"Ignoring malformed default value of float property '%s'", decl.Key))
	return nil
}

func (p *Parser) booleanDefault(status defparse.ParserStatus, decl *propertyDecl) *bool {
	if decl.Default == nil {
		return nil
	}
	switch strings.ToLower(decl.Default.plain()) {
	case "0", "false", "no":
		b := false
		return &b
	case "1", "true", "yes":
		b := true
		return &b
	}
	status.Warn(toLocation(decl.Pos), fmt.Sprintf(
		"Ignoring malformed default value of boolean property '%s'", decl.Key))
	return nil
}

func (p *Parser) convertChoices(decl *propertyDecl) entdef.ChoiceValue {
	value := entdef.ChoiceValue{Default: stringDefault(decl)}
	for _, option := range decl.Options {
		choice := entdef.ChoiceOption{Value: option.Value.plain()}
		if option.Description != nil {
			choice.Description = *option.Description
		}
		value.Options = append(value.Options, choice)
	}
	return value
}

func (p *Parser) convertFlags(status defparse.ParserStatus, decl *propertyDecl) entdef.FlagsValue {
	var value entdef.FlagsValue
	for _, option := range decl.Options {
		if option.Value.Num == nil || *option.Value.Num != math.Trunc(*option.Value.Num) {
			status.Warn(toLocation(option.Pos), fmt.Sprintf(
				"Ignoring flag with non-integer value %s of property '%s'",
				option.Value.text(), decl.Key))
			continue
		}

		flag := entdef.Flag{Value: int(*option.Value.Num)}
		if option.Description != nil {
			flag.ShortDescription = *option.Description
		}
		if option.Default != nil && option.Default.Num != nil && *option.Default.Num != 0 {
			flag.IsDefault = true
			value.Default |= flag.Value
		}
		value.Flags = append(value.Flags, flag)
	}
	return value
}

// convertColor builds a color property with red, green and blue components.
// Component defaults come from the space-separated default value; components
// beyond the default's values have no default.
func convertColor(decl *propertyDecl, valueType entdef.ColorValueType) entdef.ColorValue {
	roles := []entdef.ColorRole{entdef.ColorRoleRed, entdef.ColorRoleGreen, entdef.ColorRoleBlue}

	var defaults []*float64
	if decl.Default != nil {
		for _, field := range strings.Fields(decl.Default.plain()) {
			if f, err := strconv.ParseFloat(field, 64); err == nil {
				v := f
				defaults = append(defaults, &v)
			} else {
				defaults = append(defaults, nil)
			}
		}
	}

	count := max(colorComponentCount, len(defaults))
	value := entdef.ColorValue{Components: make([]entdef.ColorComponent, count)}
	for i := range value.Components {
		component := entdef.ColorComponent{ValueType: valueType, Role: entdef.ColorRoleOther}
		if i < len(roles) {
			component.Role = roles[i]
		}
		if i < len(defaults) {
			component.Default = defaults[i]
		}
		value.Components[i] = component
	}
	return value
}

func toLocation(pos lexer.Position) defparse.Location {
	return defparse.Location{Line: pos.Line, Column: pos.Column}
}
