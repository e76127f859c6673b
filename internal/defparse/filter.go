// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package defparse

import (
	"fmt"
)

// FilterRedundant drops duplicate and redundant class declarations,
// preserving the relative order of the survivors.
//
// A declaration is a duplicate if a class with the same name and type was
// already accepted. It is redundant if a base class already claimed the
// name, or if it is itself a base class and any type already claimed the
// name. The effect is that a point class and a brush class may overload one
// name, or a single base class may claim it, but nothing else coexists.
func FilterRedundant(status ParserStatus, classInfos []ClassInfo) []ClassInfo {
	result := make([]ClassInfo, 0, len(classInfos))

	typeMask := func(t ClassType) int { return 1 << int(t) }
	baseMask := typeMask(BaseClass)

	seen := map[string]int{}
	for _, classInfo := range classInfos {
		seenMask := seen[classInfo.Name]
		classMask := typeMask(classInfo.Type)

		switch {
		case classMask&seenMask != 0:
			status.Warn(classInfo.Location, fmt.Sprintf("Duplicate class info '%s'", classInfo.Name))
		case seenMask&baseMask != 0 || (seenMask != 0 && classMask&baseMask != 0):
			status.Warn(classInfo.Location, fmt.Sprintf("Redundant class info '%s'", classInfo.Name))
		default:
			result = append(result, classInfo)
			seen[classInfo.Name] = seenMask | classMask
		}
	}

	return result
}
