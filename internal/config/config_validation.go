// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, and fills in the
// defaults for fields no source supplied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Address == "" {
		cfg.Server.Address = defaultAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Engine == "" {
		cfg.Storage.Engine = EngineDynamoDB
	}
	if cfg.Secrets.Mode == "" {
		cfg.Secrets.Mode = SecretsSSM
	}

	switch cfg.Storage.Engine {
	case EngineDynamoDB, EngineMemory:
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidStorageConfigs, cfg.Storage.Engine)
	}

	switch cfg.Secrets.Mode {
	case SecretsSSM:
	case SecretsStatic:
		s := cfg.Secrets.Static
		if s.AdminUsername == "" || s.AdminPassword == "" || s.JWTSecretKey == "" ||
			s.JWTMinutesToLive <= 0 || s.TableName == "" {
			return fmt.Errorf("%w: static mode requires every static value", ErrInvalidSecretsConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidSecretsConfigs, cfg.Secrets.Mode)
	}

	return nil
}
