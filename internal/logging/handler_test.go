// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSONIncludesIdentity(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := Setup("mapsmith", "1.2.3", "json", buf)

	logger.Info("resolved definitions", "count", 7)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "mapsmith", record["service"])
	assert.Equal(t, "1.2.3", record["version"])
	assert.Equal(t, "resolved definitions", record["msg"])
	assert.Equal(t, float64(7), record["count"])
}

func TestSetup_TextFormat(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := Setup("mapsmith", "dev", "text", buf)

	logger.Warn("duplicate class info")

	output := buf.String()
	assert.Contains(t, output, "duplicate class info")
	assert.Contains(t, output, "service=mapsmith")
}

func TestSetup_DefaultsToText(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := Setup("mapsmith", "dev", "", buf)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
