// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.RateLimit < RateLimitDisabled {
		return ErrInvalidServerConfigs
	}

	dsn := cfg.Storage.DB.DSN
	if dsn != "" && DriverFromDSN(dsn) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Redis.DB < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.GRPCAddress != "" && cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// Database driver names as registered in database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DriverFromDSN returns the database/sql driver name for dsn, or an empty
// string when the scheme is not supported.
func DriverFromDSN(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		return DriverSQLite
	default:
		return ""
	}
}
