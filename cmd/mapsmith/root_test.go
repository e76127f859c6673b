// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	output, err := execute(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"show", "lint"} {
		assert.Contains(t, output, sub, "help missing %q command", sub)
	}
}

func TestShowCommand(t *testing.T) {
	output, err := execute(t, "show", "testdata/quake.fgd")
	require.NoError(t, err)

	assert.Contains(t, output, "monster_army")
	assert.Contains(t, output, "func_door")
	assert.Contains(t, output, "point")
	assert.Contains(t, output, "brush")
	// Base classes never appear in the listing.
	assert.NotContains(t, output, "Targetname")
	assert.NotContains(t, output, "Appearflags")
}

func TestShowCommand_Glob(t *testing.T) {
	output, err := execute(t, "show", "testdata/qu*.fgd")
	require.NoError(t, err)
	assert.Contains(t, output, "monster_army")
}

func TestLintCommand_CleanFile(t *testing.T) {
	output, err := execute(t, "lint", "testdata/quake.fgd")
	require.NoError(t, err)
	assert.NotContains(t, output, "error")
}

func TestLintCommand_ReportsErrors(t *testing.T) {
	output, err := execute(t, "lint", "testdata/broken.fgd")
	require.Error(t, err)
	assert.Contains(t, output, "No matching super class found for 'DoesNotExist'")
	assert.Contains(t, output, "testdata/broken.fgd:1:1")
}
