// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package defparse

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/oops"

	"github.com/mapsmith/mapsmith/internal/entdef"
)

// ClassInfoParser produces the raw class declarations from a definition
// file. Implementations report recoverable problems through the status sink
// and return an error only when no declarations can be produced at all.
type ClassInfoParser interface {
	ParseClassInfos(status ParserStatus) ([]ClassInfo, error)
}

// Parser drives the full definition pipeline: textual parsing, redundancy
// filtering, inheritance resolution, and definition construction.
type Parser struct {
	classInfos   ClassInfoParser
	defaultColor colorful.Color
}

// NewParser builds a Parser over the given class-info source. The default
// color is assigned to definitions whose hierarchy declares none.
func NewParser(classInfos ClassInfoParser, defaultColor colorful.Color) *Parser {
	return &Parser{classInfos: classInfos, defaultColor: defaultColor}
}

// ParseDefinitions parses and resolves all entity definitions. A failure of
// the underlying textual parser aborts the load and is returned as a single
// error; all other problems are reported through the status sink while the
// load continues.
func (p *Parser) ParseDefinitions(status ParserStatus) ([]entdef.Definition, error) {
	classInfos, err := p.classInfos.ParseClassInfos(status)
	if err != nil {
		return nil, oops.Wrapf(err, "parsing entity definitions")
	}
	return CreateDefinitions(status, classInfos, p.defaultColor), nil
}
