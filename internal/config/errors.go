package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unsupported storage engine name.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSecretsConfigs indicates an unsupported secrets mode, or a
	// static mode left without the values the service cannot run without.
	ErrInvalidSecretsConfigs = errors.New("invalid secrets configuration")
)
