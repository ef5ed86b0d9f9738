package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid API settings
	// (for example, missing server or version, or a negative timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidOutputConfigs indicates an unsupported output format.
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidLogConfigs indicates negative log rotation limits.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
