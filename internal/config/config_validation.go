// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniel Marquez

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing secret has no safe default and must always come from
// configuration; the same holds for the database DSN.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.App.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	if cfg.Storage.Files.UploadsDir == "" {
		return ErrNoUploadsDir
	}

	return nil
}
