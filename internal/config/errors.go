package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unsupported driver or empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing application secrets.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidValidationConfigs indicates a non-positive concurrency.
	ErrInvalidValidationConfigs = errors.New("invalid validation configuration")
	// ErrInvalidClientConfigs indicates a missing server URL or timeout.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrUnsupportedConfigFile indicates a config file extension other
	// than .json, .yaml or .yml.
	ErrUnsupportedConfigFile = errors.New("unsupported config file format")
)
