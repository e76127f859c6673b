// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package defparse

import (
	"fmt"
	"slices"

	"github.com/mapsmith/mapsmith/internal/entdef"
)

// spawnflagsBits is the number of bit positions considered when merging
// spawnflags declarations across the hierarchy.
const spawnflagsBits = 24

// findClassInfos returns all accepted classes declared under a name.
type findClassInfos func(name string) []*ClassInfo

// ResolveInheritance filters redundant declarations and resolves the
// inheritance hierarchy of every non-base class, preserving input order. Each
// returned ClassInfo is a self-contained copy with all inherited attributes
// merged in.
//
// Resolution is best-effort: unresolved super-class names and cycles are
// reported through the status sink, but every non-base class that survives
// filtering still yields a result.
func ResolveInheritance(status ParserStatus, classInfos []ClassInfo) []ClassInfo {
	filtered := FilterRedundant(status, classInfos)

	find := func(name string) []*ClassInfo {
		var matches []*ClassInfo
		for i := range filtered {
			if filtered[i].Name == name {
				matches = append(matches, &filtered[i])
			}
		}
		return matches
	}

	var resolved []ClassInfo
	for i := range filtered {
		if filtered[i].Type == BaseClass {
			continue
		}
		resolved = append(resolved, resolveClass(status, filtered[i], find))
	}
	return resolved
}

// resolveClass resolves the hierarchy induced by one inheriting class. Super
// classes are explored depth first, in declaration order. An attribute
// inherited from one super class takes precedence over the same attribute in
// any super class visited later, so closer ancestors win over farther ones
// and earlier-declared parents win over later-declared ones.
//
// The visited set tracks the names on the current path only; it is fresh per
// top-level class, and names are removed on backtrack so that a shared
// ancestor reached along two independent paths (a diamond) is merged along
// each path without a false cycle report.
func resolveClass(status ParserStatus, inheriting ClassInfo, find findClassInfos) ClassInfo {
	inheriting.Properties = slices.Clone(inheriting.Properties)
	inheriting.Model = cloneModel(inheriting.Model)
	inheriting.Decal = cloneDecal(inheriting.Decal)

	visited := map[string]struct{}{}
	inheritSuperClasses(status, &inheriting, inheriting.SuperClasses, inheriting.Location, find, visited)
	return inheriting
}

// inheritSuperClasses selects a super class for each declared name and
// inherits from it. superClasses and location belong to the class currently
// supplying the names, which is the inheriting class itself at the top level
// and an ancestor during recursion.
func inheritSuperClasses(
	status ParserStatus,
	inheriting *ClassInfo,
	superClasses []string,
	location Location,
	find findClassInfos,
	visited map[string]struct{},
) {
	for _, name := range superClasses {
		super := selectSuperClass(inheriting.Type, find(name))
		if super == nil {
			status.Error(location, fmt.Sprintf("No matching super class found for '%s'", name))
			continue
		}
		inheritAndRecurse(status, inheriting, super, find, visited)
	}
}

// inheritAndRecurse merges the super class's attributes into the inheriting
// class and then descends into the super class's own super classes. A name
// already on the current path means the hierarchy contains a cycle; the
// error is reported at the inheriting class's location and the branch is
// abandoned.
func inheritAndRecurse(
	status ParserStatus,
	inheriting *ClassInfo,
	super *ClassInfo,
	find findClassInfos,
	visited map[string]struct{},
) {
	if _, onPath := visited[super.Name]; onPath {
		status.Error(inheriting.Location, "Entity definition class hierarchy contains a cycle")
		return
	}

	visited[super.Name] = struct{}{}
	inheritAttributes(inheriting, super)
	inheritSuperClasses(status, inheriting, super.SuperClasses, super.Location, find, visited)
	delete(visited, super.Name)
}

// selectSuperClass disambiguates among same-named candidates. A candidate of
// the inheriting class's own type wins; otherwise a non-base inheriting
// class falls back to a base-class candidate. Returns nil when no candidate
// qualifies.
func selectSuperClass(inheritingType ClassType, candidates []*ClassInfo) *ClassInfo {
	if len(candidates) == 1 {
		return candidates[0]
	}
	if len(candidates) > 1 {
		if classInfo := findWithType(candidates, inheritingType); classInfo != nil {
			return classInfo
		}
		if inheritingType != BaseClass {
			if classInfo := findWithType(candidates, BaseClass); classInfo != nil {
				return classInfo
			}
		}
	}
	return nil
}

func findWithType(candidates []*ClassInfo, classType ClassType) *ClassInfo {
	for _, candidate := range candidates {
		if candidate.Type == classType {
			return candidate
		}
	}
	return nil
}

// inheritAttributes copies the super class's attributes into the inheriting
// class. Scalar attributes are inherited only if absent. Properties are
// appended unless the key is already present, in which case only spawnflags
// are merged and everything else keeps the inheriting class's entry. Model
// and decal chains adopt the super class's expressions as fallbacks.
func inheritAttributes(inheriting *ClassInfo, super *ClassInfo) {
	if inheriting.Description == nil {
		inheriting.Description = super.Description
	}
	if inheriting.Color == nil {
		inheriting.Color = super.Color
	}
	if inheriting.Size == nil {
		inheriting.Size = super.Size
	}

	for _, attribute := range super.Properties {
		existing, i := inheriting.property(attribute.Key)
		if existing == nil {
			inheriting.Properties = append(inheriting.Properties, attribute)
		} else if merged := mergeProperties(existing, attribute); merged != nil {
			inheriting.Properties[i] = merged
		}
	}

	if inheriting.Model == nil {
		inheriting.Model = cloneModel(super.Model)
	} else if super.Model != nil {
		inheriting.Model.Append(*super.Model)
	}

	if inheriting.Decal == nil {
		inheriting.Decal = cloneDecal(super.Decal)
	} else if super.Decal != nil {
		inheriting.Decal.Append(*super.Decal)
	}
}

// mergeProperties merges a super-class property into a same-keyed property
// of the inheriting class. Only spawnflags declarations merge: the bits
// defined by the inheriting class win, and the super class fills the bits it
// leaves undefined. Returns nil when the pair does not merge, leaving the
// inheriting class's entry untouched.
func mergeProperties(classAttribute, superAttribute *entdef.PropertyDefinition) *entdef.PropertyDefinition {
	classFlags, classOK := classAttribute.Value.(entdef.FlagsValue)
	superFlags, superOK := superAttribute.Value.(entdef.FlagsValue)
	if !classOK || !superOK ||
		classAttribute.Key != entdef.SpawnflagsKey ||
		superAttribute.Key != entdef.SpawnflagsKey {
		return nil
	}

	var merged entdef.FlagsValue
	for i := range spawnflagsBits {
		bitValue := 1 << i
		if flag, ok := classFlags.Flag(bitValue); ok {
			addFlag(&merged, flag)
		} else if flag, ok := superFlags.Flag(bitValue); ok {
			addFlag(&merged, flag)
		}
	}

	return &entdef.PropertyDefinition{Key: classAttribute.Key, Value: merged}
}

func addFlag(flags *entdef.FlagsValue, flag entdef.Flag) {
	flags.Flags = append(flags.Flags, flag)
	if flag.IsDefault {
		flags.Default |= flag.Value
	}
}

// cloneModel copies a model chain so that appending to the copy never
// mutates a shared ancestor.
func cloneModel(model *entdef.ModelDefinition) *entdef.ModelDefinition {
	if model == nil {
		return nil
	}
	return &entdef.ModelDefinition{Expressions: slices.Clone(model.Expressions)}
}

func cloneDecal(decal *entdef.DecalDefinition) *entdef.DecalDefinition {
	if decal == nil {
		return nil
	}
	return &entdef.DecalDefinition{Expressions: slices.Clone(decal.Expressions)}
}
