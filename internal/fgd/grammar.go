// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

// Package fgd parses FGD game-configuration definition files into the class
// declarations consumed by the defparse resolver.
//
// The supported syntax covers classic FGD dialects: @PointClass, @SolidClass
// (or @BrushClass) and @BaseClass declarations with base(), color(), size(),
// model(), sprite(), studio(), iconsprite() and decal() attributes, class
// descriptions, and property blocks with string, integer, float, boolean,
// choices, flags, color and target property types. The brace expression
// syntax for model() found in newer dialects is not supported; model
// arguments are captured as opaque expression text.
package fgd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var fgdLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `//[^\n]*`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Number", Pattern: `[-+]?(\d+\.\d*|\.\d+|\d+)`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[@()\[\]=:,]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// fgdFile is the root of the grammar: a sequence of class declarations.
type fgdFile struct {
	Classes []*classDecl `parser:"@@*"`
}

// classDecl matches: "@" kind attribute* "=" name [ ":" description ]
// [ "[" property* "]" ]
type classDecl struct {
	Pos         lexer.Position
	Kind        string            `parser:"'@' @Ident"`
	Attributes  []*classAttribute `parser:"@@*"`
	Name        string            `parser:"'=' @Ident"`
	Description *string           `parser:"(':' @String)?"`
	Properties  []*propertyDecl   `parser:"('[' @@* ']')?"`
}

// classAttribute matches: name "(" argGroup ("," argGroup)* ")". Groups
// separate comma-delimited argument lists, as in size(-16 -16 0, 16 16 32).
type classAttribute struct {
	Pos    lexer.Position
	Name   string      `parser:"@Ident"`
	Groups []*argGroup `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
}

type argGroup struct {
	Values []*literalVal `parser:"@@+"`
}

// propertyDecl matches:
// key "(" type ")" ["readonly"] [ ":" short [ ":" [default] [ ":" long ] ] ]
// [ "=" "[" option* "]" ]
type propertyDecl struct {
	Pos      lexer.Position
	Key      string        `parser:"@Ident"`
	Type     string        `parser:"'(' @Ident ')'"`
	ReadOnly bool          `parser:"@'readonly'?"`
	Short    *string       `parser:"(':' @String)?"`
	Default  *literalVal   `parser:"(':' @@?)?"`
	Long     *string       `parser:"(':' @String)?"`
	Options  []*optionDecl `parser:"('=' '[' @@* ']')?"`
}

// optionDecl matches one choices or flags entry:
// value [ ":" description [ ":" default ] ]
type optionDecl struct {
	Pos         lexer.Position
	Value       literalVal  `parser:"@@"`
	Description *string     `parser:"(':' @String)?"`
	Default     *literalVal `parser:"(':' @@)?"`
}

// literalVal is a quoted string, a number, or a bare identifier.
type literalVal struct {
	Str   *string  `parser:"  @String"`
	Num   *float64 `parser:"| @Number"`
	Ident *string  `parser:"| @Ident"`
}

// text renders the literal back into definition-file form, keeping strings
// quoted. Used to rebuild opaque model and decal expressions.
func (v *literalVal) text() string {
	switch {
	case v.Str != nil:
		return strconv.Quote(*v.Str)
	case v.Num != nil:
		return strconv.FormatFloat(*v.Num, 'g', -1, 64)
	case v.Ident != nil:
		return *v.Ident
	}
	return ""
}

// plain renders the literal as an unquoted value, as used for choice values
// and defaults.
func (v *literalVal) plain() string {
	switch {
	case v.Str != nil:
		return *v.Str
	case v.Num != nil:
		return strconv.FormatFloat(*v.Num, 'g', -1, 64)
	case v.Ident != nil:
		return *v.Ident
	}
	return ""
}

func (g *argGroup) text() string {
	parts := make([]string, len(g.Values))
	for i, value := range g.Values {
		parts[i] = value.text()
	}
	return strings.Join(parts, " ")
}

// parser is the singleton participle parser instance.
var parser *participle.Parser[fgdFile]

func init() {
	var err error
	parser, err = newParser()
	if err != nil {
		panic(fmt.Sprintf("failed to build FGD parser: %v", err))
	}
}

// newParser constructs a participle parser for the FGD grammar.
func newParser() (*participle.Parser[fgdFile], error) {
	return participle.Build[fgdFile](
		participle.Lexer(fgdLexer),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
}
