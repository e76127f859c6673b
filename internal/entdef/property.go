// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

// Package entdef holds the entity definition model: the closed set of
// property value kinds a definition file can declare, the property
// definitions built on them, and the immutable entity definitions produced
// by the resolver.
package entdef

import (
	"strconv"
	"strings"
)

// SpawnflagsKey is the canonical key of the spawnflags property. It is the
// only property key whose definitions are merged across the inheritance
// hierarchy instead of shadowed.
const SpawnflagsKey = "spawnflags"

// PropertyValue is the closed set of value kinds a property definition can
// have. Exactly one kind is active per property. The marker method keeps the
// set sealed so that DefaultValue and the flags merge stay exhaustive.
type PropertyValue interface {
	isPropertyValue()
}

// TargetSource marks a property whose value names this entity as a target.
type TargetSource struct{}

// TargetDestination marks a property whose value references a target name.
type TargetDestination struct{}

// StringValue is a free-form string property.
type StringValue struct {
	Default *string
}

// BooleanValue is a true/false property.
type BooleanValue struct {
	Default *bool
}

// IntegerValue is a whole-number property.
type IntegerValue struct {
	Default *int
}

// FloatValue is a floating-point property.
type FloatValue struct {
	Default *float64
}

// ChoiceOption is one selectable value of a ChoiceValue.
type ChoiceOption struct {
	Value       string
	Description string
}

// ChoiceValue is a property restricted to an enumerated set of options.
type ChoiceValue struct {
	Options []ChoiceOption
	Default *string
}

// Flag is a single bit of a FlagsValue.
type Flag struct {
	Value            int
	ShortDescription string
	LongDescription  string
	IsDefault        bool
}

// FlagsValue is a bitmask property. Default is the mask of bits that are set
// by default; it stays consistent with the IsDefault markers on the flags.
type FlagsValue struct {
	Flags   []Flag
	Default int
}

// Flag returns the flag declared for the given bit value.
func (f FlagsValue) Flag(bitValue int) (Flag, bool) {
	for _, flag := range f.Flags {
		if flag.Value == bitValue {
			return flag, true
		}
	}
	return Flag{}, false
}

// IsDefault reports whether the given bit value is set in the default mask.
func (f FlagsValue) IsDefault(bitValue int) bool {
	return f.Default&bitValue != 0
}

// ColorValueType describes how a color component's numeric value is encoded.
type ColorValueType int

const (
	ColorValueAny ColorValueType = iota
	ColorValueFloat
	ColorValueByte
)

func (t ColorValueType) String() string {
	switch t {
	case ColorValueAny:
		return "any"
	case ColorValueFloat:
		return "float"
	case ColorValueByte:
		return "byte"
	}
	return "unknown"
}

// ColorRole is the meaning of one component of a color property.
type ColorRole int

const (
	ColorRoleRed ColorRole = iota
	ColorRoleGreen
	ColorRoleBlue
	ColorRoleAlpha
	ColorRoleBrightness
	ColorRoleOther
)

func (r ColorRole) String() string {
	switch r {
	case ColorRoleRed:
		return "red"
	case ColorRoleGreen:
		return "green"
	case ColorRoleBlue:
		return "blue"
	case ColorRoleAlpha:
		return "alpha"
	case ColorRoleBrightness:
		return "brightness"
	case ColorRoleOther:
		return "other"
	}
	return "unknown"
}

// ColorComponent is one component of a structured color property.
type ColorComponent struct {
	ValueType ColorValueType
	Role      ColorRole
	Default   *float64
}

// ColorValue is a structured color property made of ordered components.
type ColorValue struct {
	Components []ColorComponent
}

// UnknownValue carries a property whose declared type the parser did not
// recognize. The raw default is kept verbatim.
type UnknownValue struct {
	Default *string
}

func (TargetSource) isPropertyValue()      {}
func (TargetDestination) isPropertyValue() {}
func (StringValue) isPropertyValue()       {}
func (BooleanValue) isPropertyValue()      {}
func (IntegerValue) isPropertyValue()      {}
func (FloatValue) isPropertyValue()        {}
func (ChoiceValue) isPropertyValue()       {}
func (FlagsValue) isPropertyValue()        {}
func (ColorValue) isPropertyValue()        {}
func (UnknownValue) isPropertyValue()      {}

// TypeName returns the definition-file name of a property value kind.
func TypeName(value PropertyValue) string {
	switch value.(type) {
	case TargetSource:
		return "target_source"
	case TargetDestination:
		return "target_destination"
	case StringValue:
		return "string"
	case BooleanValue:
		return "boolean"
	case IntegerValue:
		return "integer"
	case FloatValue:
		return "float"
	case ChoiceValue:
		return "choices"
	case FlagsValue:
		return "flags"
	case ColorValue:
		return "color"
	case UnknownValue:
		return "unknown"
	}
	panic("entdef: unhandled property value kind")
}

// PropertyDefinition describes one named property of an entity class. Merge
// identity is the key alone, independent of the value kind.
type PropertyDefinition struct {
	Key              string
	Value            PropertyValue
	ShortDescription string
	LongDescription  string
	ReadOnly         bool
}

// DefaultValue renders the property's default uniformly as a string. The
// second return value is false when the kind has no default set.
//
// Color defaults join the component defaults in declared order and stop at
// the first component without one; if no component contributes, there is no
// default. Flags defaults render only a nonzero mask.
func (d *PropertyDefinition) DefaultValue() (string, bool) {
	switch value := d.Value.(type) {
	case TargetSource, TargetDestination:
		return "", false
	case StringValue:
		return deref(value.Default)
	case BooleanValue:
		if value.Default == nil {
			return "", false
		}
		return strconv.FormatBool(*value.Default), true
	case IntegerValue:
		if value.Default == nil {
			return "", false
		}
		return strconv.Itoa(*value.Default), true
	case FloatValue:
		if value.Default == nil {
			return "", false
		}
		return formatFloat(*value.Default), true
	case ChoiceValue:
		return deref(value.Default)
	case FlagsValue:
		if value.Default == 0 {
			return "", false
		}
		return strconv.Itoa(value.Default), true
	case ColorValue:
		var parts []string
		for _, component := range value.Components {
			if component.Default == nil {
				break
			}
			parts = append(parts, formatFloat(*component.Default))
		}
		if len(parts) == 0 {
			return "", false
		}
		return strings.Join(parts, " "), true
	case UnknownValue:
		return deref(value.Default)
	}
	panic("entdef: unhandled property value kind")
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// formatFloat matches the fixed six-decimal rendering used by the original
// definition files.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
