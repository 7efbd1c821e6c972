package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates an unrecognised runtime environment
	// label.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (for example, a missing token sign key in production).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
