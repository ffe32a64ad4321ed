package config

import "errors"

// Sentinel errors for configuration handling. Callers branch on these with
// errors.Is, so they are exported package variables rather than ad-hoc
// fmt.Errorf values.
var (
	// ErrConfigNotFound is returned when the configuration file does not
	// exist. Whether that is fatal depends on whether the user asked for
	// the file explicitly.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidConfig is returned when a configuration value is out of
	// range.
	ErrInvalidConfig = errors.New("invalid configuration")
)
