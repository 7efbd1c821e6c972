// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.Environment != EnvDevelopment && cfg.App.Environment != EnvProduction {
		return ErrInvalidAppConfigs
	}

	// An empty sign key is tolerated outside production: the auth service
	// substitutes a fixed development key and logs a warning.
	if cfg.App.Environment == EnvProduction && cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
