// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings patches the editor settings document read by the rfsuite
// deploy tasks.
//
// A [Patcher] loads <dir>/settings.json (or starts from an empty object when
// it is missing), sets one key, and writes the whole document back with
// two-space indentation. Every other key passes through untouched.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/MKhiriev/rfsuite-setlang/internal/logger"
)

// LanguageKey is the settings key holding the deployment language.
const LanguageKey = "rfsuite.deploy.language"

// Patcher merges single keys into a settings document on a [Store].
type Patcher struct {
	store Store
	log   *logger.Logger
}

// NewPatcher returns a Patcher working on store.
func NewPatcher(store Store, log *logger.Logger) *Patcher {
	return &Patcher{
		store: store,
		log:   log,
	}
}

// ApplyLanguage sets [LanguageKey] to code in the settings file at
// settingsPath. Any string is accepted, the empty string included.
func (p *Patcher) ApplyLanguage(code, settingsPath string) error {
	return p.ApplyString(settingsPath, LanguageKey, code)
}

// ApplyString sets key to the JSON string value in the settings file at
// path.
//
// The file is parsed before anything is created or written, so a malformed
// document aborts with [ErrParseSettings] and leaves the disk untouched.
// Filesystem failures are reported as [ErrSettingsIO].
func (p *Patcher) ApplyString(path, key, value string) error {
	doc, err := p.load(path)
	if err != nil {
		return err
	}

	prev, hadPrev := doc.GetString(key)
	doc.SetString(key, value)

	data, err := doc.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err = p.store.MkdirAll(dir); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", ErrSettingsIO, dir, err)
	}

	if err = p.store.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrSettingsIO, path, err)
	}

	p.log.Debug().
		Str("path", path).
		Str("key", key).
		Str("value", value).
		Bool("replaced", hadPrev).
		Str("previous", prev).
		Int("keys", doc.Len()).
		Msg("settings written")

	return nil
}

func (p *Patcher) load(path string) (*Document, error) {
	data, err := p.store.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		p.log.Debug().Str("path", path).Msg("settings file not found, starting from an empty document")
		return NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSettingsIO, path, err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return doc, nil
}
