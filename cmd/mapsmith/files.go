// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package main

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

const globMeta = `*?[{`

// expandArgs turns command-line arguments into a list of definition files.
// Plain paths pass through unchanged; arguments containing glob
// metacharacters are matched against the files under their static prefix
// directory.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, globMeta) {
			files = append(files, arg)
			continue
		}

		pattern := filepath.ToSlash(arg)
		matcher, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, oops.With("pattern", arg).Wrapf(err, "compiling glob pattern")
		}

		matched := false
		root := staticPrefix(pattern)
		err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !entry.IsDir() && matcher.Match(filepath.ToSlash(path)) {
				files = append(files, path)
				matched = true
			}
			return nil
		})
		if err != nil {
			return nil, oops.With("pattern", arg).Wrapf(err, "expanding glob pattern")
		}
		if !matched {
			return nil, oops.With("pattern", arg).Errorf("no files match pattern")
		}
	}
	return files, nil
}

// staticPrefix returns the directory portion of a glob pattern before its
// first metacharacter, to bound the filesystem walk.
func staticPrefix(pattern string) string {
	i := strings.IndexAny(pattern, globMeta)
	if i < 0 {
		return filepath.Dir(pattern)
	}
	prefix := pattern[:i]
	if j := strings.LastIndex(prefix, "/"); j >= 0 {
		return prefix[:j+1]
	}
	return "."
}
