// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ShortURL Platform

package config

import (
	"time"
)

// Supported values for [Storage.Engine].
const (
	EngineDynamoDB = "dynamodb"
	EngineMemory   = "memory"
)

// Supported values for [Secrets.Mode].
const (
	SecretsSSM    = "ssm"
	SecretsStatic = "static"
)

// Defaults applied by validate when a field is left unset.
const (
	defaultAddress        = ":8080"
	defaultRequestTimeout = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the user
// service. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the credential store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Secrets selects and configures the secrets provider that supplies the
	// administrator credentials, the JWT signing key, and the table name.
	Secrets Secrets `envPrefix:"SECRETS_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	// Unrecognized values fall back to "info".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage selects and configures the credential store backend.
type Storage struct {
	// Engine names the store implementation: "dynamodb" for the production
	// DynamoDB-backed store, or "memory" for the in-process store used in
	// local development and tests.
	// Env: STORAGE_ENGINE
	Engine string `env:"ENGINE"`

	// DynamoDB holds the DynamoDB client settings. Only consulted when
	// Engine is "dynamodb".
	DynamoDB DynamoDB `envPrefix:"DYNAMODB_"`
}

// DynamoDB holds connection settings for the DynamoDB backend.
type DynamoDB struct {
	// Endpoint overrides the SDK's endpoint resolution, e.g.
	// "http://localhost:8000" when running against a local emulator.
	// Leave empty in the cloud.
	// Env: STORAGE_DYNAMODB_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Region is the AWS region. When empty the SDK's default resolution
	// chain applies (AWS_REGION, shared config, instance metadata).
	// Env: STORAGE_DYNAMODB_REGION
	Region string `env:"REGION"`
}

// Secrets selects and configures the secrets provider.
type Secrets struct {
	// Mode names the provider: "ssm" reads the AWS Systems Manager
	// Parameter Store, "static" uses the fixed values below.
	// Env: SECRETS_MODE
	Mode string `env:"MODE"`

	// Static holds the fixed secret values used when Mode is "static".
	Static Static `envPrefix:"STATIC_"`
}

// Static holds the fixed secret values for the static secrets provider.
// These mirror the parameters the SSM provider reads from the Parameter
// Store.
type Static struct {
	// Env: SECRETS_STATIC_ADMIN_USERNAME
	AdminUsername string `env:"ADMIN_USERNAME"`

	// Env: SECRETS_STATIC_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// JWTSecretKey signs and verifies every issued token. Must be kept
	// confidential.
	// Env: SECRETS_STATIC_JWT_SECRET_KEY
	JWTSecretKey string `env:"JWT_SECRET_KEY"`

	// JWTMinutesToLive is the token lifetime in minutes.
	// Env: SECRETS_STATIC_JWT_MINUTES_TO_LIVE
	JWTMinutesToLive int `env:"JWT_MINUTES_TO_LIVE"`

	// TableName is the credential store table name.
	// Env: SECRETS_STATIC_TABLE_NAME
	TableName string `env:"TABLE_NAME"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
