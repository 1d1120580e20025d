// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged config can start the server.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.LookupRetries < 0 {
		return fmt.Errorf("%w: negative lookup retries", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Validation.Concurrency < 1 {
		return ErrInvalidValidationConfigs
	}

	return nil
}

// validateClient checks that the merged config can start the admin client.
func (cfg *StructuredConfig) validateClient() error {
	if cfg.Client.Address == "" || cfg.Client.Timeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
