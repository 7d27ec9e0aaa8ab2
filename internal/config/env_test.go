// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "warn")
	t.Setenv("STORAGE_ENGINE", "memory")
	t.Setenv("STORAGE_DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("STORAGE_DYNAMODB_REGION", "us-east-1")
	t.Setenv("SECRETS_MODE", "static")
	t.Setenv("SECRETS_STATIC_ADMIN_USERNAME", "admin")
	t.Setenv("SECRETS_STATIC_JWT_MINUTES_TO_LIVE", "15")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8081")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "20s")
	t.Setenv("CONFIG", "/etc/userservice/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, EngineMemory, cfg.Storage.Engine)
	assert.Equal(t, "http://localhost:8000", cfg.Storage.DynamoDB.Endpoint)
	assert.Equal(t, "us-east-1", cfg.Storage.DynamoDB.Region)
	assert.Equal(t, SecretsStatic, cfg.Secrets.Mode)
	assert.Equal(t, "admin", cfg.Secrets.Static.AdminUsername)
	assert.Equal(t, 15, cfg.Secrets.Static.JWTMinutesToLive)
	assert.Equal(t, "0.0.0.0:8081", cfg.Server.Address)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/etc/userservice/config.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.Storage.Engine)
	assert.Empty(t, cfg.Secrets.Mode)
	assert.Zero(t, cfg.Server.RequestTimeout)
}
