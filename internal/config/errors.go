package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrTokenSignKeyTooShort indicates a missing or short token signing
	// key. Raised at startup; the server must not come up with a weak key.
	ErrTokenSignKeyTooShort = errors.New("token signing key must be at least 16 bytes")

	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty cache DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
