// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package entdef

// ModelDefinition is an ordered fallback chain of model placement
// expressions. The expressions themselves are opaque to the resolver; the
// renderer evaluates them in order until one yields a model.
type ModelDefinition struct {
	Expressions []string
}

// Append adds the other definition's expressions after this one's. Inherited
// expressions act as fallbacks for the inheriting class's own.
func (d *ModelDefinition) Append(other ModelDefinition) {
	d.Expressions = append(d.Expressions, other.Expressions...)
}

// Empty reports whether the chain has no expressions.
func (d ModelDefinition) Empty() bool {
	return len(d.Expressions) == 0
}

// DecalDefinition is an ordered fallback chain of decal placement
// expressions, with the same semantics as ModelDefinition.
type DecalDefinition struct {
	Expressions []string
}

// Append adds the other definition's expressions after this one's.
func (d *DecalDefinition) Append(other DecalDefinition) {
	d.Expressions = append(d.Expressions, other.Expressions...)
}

// Empty reports whether the chain has no expressions.
func (d DecalDefinition) Empty() bool {
	return len(d.Expressions) == 0
}
