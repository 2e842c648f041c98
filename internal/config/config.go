// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other configuration source.
const (
	DefaultHTTPAddress         = "localhost:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultRateLimit           = 100
	DefaultHealthCheckInterval = 15 * time.Second
)

// RateLimitDisabled switches rate limiting off. Zero cannot be used for
// that: a zero field means "not set" and keeps the value of an earlier
// source.
const RateLimitDisabled = -1

// StructuredConfig is the users API server configuration, merged from
// defaults, environment, flags and an optional JSON file. Nested groups
// take their environment prefix from the envPrefix tag.
type StructuredConfig struct {
	// App holds application-level settings such as the version and the
	// log level.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the user repository backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and rate limit settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level that is emitted
	// (e.g. "debug", "info"). Empty keeps debug.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backends. At most one
// backend is used: Redis when its address is set, otherwise the database
// named by DB.DSN, otherwise the in-memory repository.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the Redis connection settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name of the database. The scheme selects the
	// driver: "postgres://" or "postgresql://" for PostgreSQL (pgx),
	// "sqlite://" or "file:" for SQLite. Empty selects the in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the Redis backend.
type Redis struct {
	// Address is the "host:port" of the Redis server.
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`

	// Password is the optional Redis AUTH password.
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`

	// DB is the Redis logical database index.
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens. Empty disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of requests per minute accepted from a single
	// client IP. RateLimitDisabled (-1) turns the limiter off.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthCheckInterval is the period of the repository health probe
	// that feeds the gRPC health service.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			RateLimit:      DefaultRateLimit,
		},
		Workers: Workers{
			HealthCheckInterval: DefaultHealthCheckInterval,
		},
	}
}

// RateLimitEnabled reports whether the per IP limiter should be installed.
func (s Server) RateLimitEnabled() bool {
	return s.RateLimit > 0
}
