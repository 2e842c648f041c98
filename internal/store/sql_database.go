package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/migrations"
)

// DB wraps a database/sql connection together with the driver-specific
// pieces the SQL repository needs.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the database named by cfg.DSN using the driver its
// scheme selects.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch config.DriverFromDSN(cfg.DSN) {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DSN)
	}
}

// Migrate brings the schema up to date using the dialect of the driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// statementBuilder returns a squirrel builder using the placeholder syntax
// of the driver.
func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
