package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrNoTokenSignKey indicates that no token signing secret was provided
	// by any configuration source. Tokens cannot be issued or verified
	// without it.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidTokenDuration indicates a zero or negative token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrNoDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
	// ErrNoUploadsDir indicates that the evidence uploads directory is empty.
	ErrNoUploadsDir = errors.New("uploads directory is not configured")
)
