package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidSettingsConfig indicates an empty settings directory or file
	// name.
	ErrInvalidSettingsConfig = errors.New("invalid settings location configuration")
	// ErrInvalidLogLevel indicates a log level zerolog does not recognize.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
