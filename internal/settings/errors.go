package settings

import "errors"

var (
	// ErrParseSettings is returned when an existing settings file is not a
	// JSON object: malformed JSON, an empty file, or a top-level value of
	// another kind.
	ErrParseSettings = errors.New("settings file is not a valid JSON object")

	// ErrSettingsIO is returned when reading the settings file, creating its
	// directory or writing it fails. The underlying *fs.PathError is kept in
	// the chain, so errors.Is(err, fs.ErrPermission) works as well.
	ErrSettingsIO = errors.New("settings file i/o failure")
)
