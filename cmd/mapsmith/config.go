// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mapsmith Contributors

package main

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Config holds the settings shared by all mapsmith commands. Values are
// layered: flag defaults, then the optional config file, then flags passed
// on the command line.
type Config struct {
	LogFormat    string `koanf:"log-format"`
	DefaultColor string `koanf:"default-color"`
}

// LoadConfig builds the configuration from the given config file (skipped
// when empty) and flag set.
func LoadConfig(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.With("path", path).Wrapf(err, "loading config file")
		}
	}

	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return nil, oops.Wrapf(err, "loading flags")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Wrapf(err, "unmarshaling config")
	}
	return &cfg, nil
}
