// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
)

// Default values applied by [configBuilder.withDefaults]. With no
// environment overrides the tool writes "en" to <cwd>/.vscode/settings.json.
const (
	DefaultSettingsDir  = ".vscode"
	DefaultSettingsFile = "settings.json"
	DefaultLanguage     = "en"
	DefaultLogLevel     = "warn"
)

// envPrefix is prepended to every env tag of [StructuredConfig].
const envPrefix = "SETLANG_"

// StructuredConfig is the top-level configuration container for setlang.
// It is populated by merging the built-in defaults with values read from
// environment variables.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Settings locates the editor settings document.
	Settings Settings `envPrefix:"SETTINGS_"`

	// Language holds language-code settings.
	Language Language

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`
}

// Settings locates the editor settings document relative to the working
// directory.
type Settings struct {
	// Dir is the directory holding the settings file. A relative Dir is
	// resolved against the working directory.
	Dir string `env:"DIR"`

	// File is the settings file name inside Dir.
	File string `env:"FILE"`
}

// Language holds language-code settings.
type Language struct {
	// Default is written when no positional argument is given.
	Default string `env:"DEFAULT_LANGUAGE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name: debug, info, warn, error, ...
	Level string `env:"LEVEL"`
}

// GetStructuredConfig builds and validates the configuration from the
// built-in defaults and the environment, in that order of precedence
// (environment wins).
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	return cfg, nil
}

// SettingsPath returns the absolute settings file path for the working
// directory cwd.
func (cfg *StructuredConfig) SettingsPath(cwd string) string {
	dir := cfg.Settings.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cwd, dir)
	}

	return filepath.Join(dir, cfg.Settings.File)
}
