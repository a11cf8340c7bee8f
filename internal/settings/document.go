// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// indent is the per-level indentation of a written settings file.
const indent = "  "

// Document is a flat JSON object that remembers the order of its keys.
//
// Values are kept as raw JSON, so keys the tool does not touch are written
// back with the same content (numbers keep their precision, strings their
// escapes); only whitespace is normalized.
type Document struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{values: make(map[string]json.RawMessage)}
}

// ParseDocument decodes data as a single JSON object. For a key that occurs
// more than once the last value wins and the first position is kept.
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrParseSettings)
		}
		return nil, fmt.Errorf("%w: %w", ErrParseSettings, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value is %s, not an object", ErrParseSettings, describeToken(tok))
	}

	doc := NewDocument()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseSettings, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected object key %v", ErrParseSettings, keyTok)
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %w", ErrParseSettings, key, err)
		}

		var compact bytes.Buffer
		if err = json.Compact(&compact, raw); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %w", ErrParseSettings, key, err)
		}
		doc.setRaw(key, compact.Bytes())
	}

	// closing brace
	if _, err = dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseSettings, err)
	}

	if tok, err = dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseSettings, err)
		}
		return nil, fmt.Errorf("%w: unexpected %s after top-level object", ErrParseSettings, describeToken(tok))
	}

	return doc, nil
}

// Len returns the number of keys.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the keys in document order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Get returns the raw JSON value stored under key.
func (d *Document) Get(key string) (json.RawMessage, bool) {
	v, ok := d.values[key]
	return v, ok
}

// GetString returns the value under key if it is a JSON string.
func (d *Document) GetString(key string) (string, bool) {
	raw, ok := d.values[key]
	if !ok {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Set stores v under key. An existing key keeps its position, a new key is
// appended.
func (d *Document) Set(key string, v any) error {
	raw, err := marshalNoEscape(v)
	if err != nil {
		return fmt.Errorf("error encoding value of %q: %w", key, err)
	}

	d.setRaw(key, raw)
	return nil
}

// SetString stores the JSON string s under key.
func (d *Document) SetString(key, s string) {
	// a string always encodes
	raw, _ := marshalNoEscape(s)
	d.setRaw(key, raw)
}

func (d *Document) setRaw(key string, raw json.RawMessage) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = raw
}

// MarshalJSON returns the compact encoding of the document in key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		rawKey, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		buf.Write(rawKey)
		buf.WriteByte(':')
		buf.Write(d.values[key])
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Encode returns the document indented by two spaces and terminated by a
// newline, the on-disk form of a settings file.
func (d *Document) Encode() ([]byte, error) {
	compact, err := d.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("error encoding settings: %w", err)
	}

	var buf bytes.Buffer
	if err = json.Indent(&buf, compact, "", indent); err != nil {
		return nil, fmt.Errorf("error indenting settings: %w", err)
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// marshalNoEscape is json.Marshal without HTML escaping and without the
// encoder's trailing newline.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "an array"
		}
		return fmt.Sprintf("%q", v.String())
	case string:
		return "a string"
	case float64, json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
