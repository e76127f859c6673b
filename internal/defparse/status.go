// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package defparse

import (
	"fmt"
	"log/slog"
)

// ParserStatus receives diagnostics produced while parsing and resolving
// entity definitions. Errors reported here are not fatal: they exclude the
// offending declaration or relationship from the result, and the load
// continues.
type ParserStatus interface {
	Warn(location Location, message string)
	Error(location Location, message string)
}

// Severity classifies a collected diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one collected warning or error.
type Diagnostic struct {
	Severity Severity
	Location Location
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Location.Line, d.Location.Column, d.Severity, d.Message)
}

// CollectingStatus records diagnostics in order. It is the sink used by the
// lint command and by tests that assert on reported diagnostics.
type CollectingStatus struct {
	Diagnostics []Diagnostic
}

func (s *CollectingStatus) Warn(location Location, message string) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{SeverityWarning, location, message})
}

func (s *CollectingStatus) Error(location Location, message string) {
	s.Diagnostics = append(s.Diagnostics, Diagnostic{SeverityError, location, message})
}

// HasErrors reports whether any error-severity diagnostic was collected.
func (s *CollectingStatus) HasErrors() bool {
	for _, d := range s.Diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// LogStatus forwards diagnostics to a structured logger, tagged with the
// definition file they originate from.
type LogStatus struct {
	Logger *slog.Logger
	File   string
}

func (s *LogStatus) Warn(location Location, message string) {
	s.Logger.Warn(message, s.attrs(location)...)
}

func (s *LogStatus) Error(location Location, message string) {
	s.Logger.Error(message, s.attrs(location)...)
}

func (s *LogStatus) attrs(location Location) []any {
	return []any{
		"file", s.File,
		"line", location.Line,
		"column", location.Column,
	}
}
