package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

// NewStorages initialises the storage layer selected by cfg:
//  1. Redis when cfg.Redis.Address is set;
//  2. PostgreSQL or SQLite when cfg.DB.DSN is set, after running the
//     embedded migrations;
//  3. the in-memory repository otherwise.
//
// The returned [Repositories] must be closed by the caller.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Repositories, error) {
	logger.Info().Msg("creating new storages...")

	switch {
	case cfg.Redis.Address != "":
		client, err := NewConnectRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}

		logger.Info().Str("backend", "redis").Msg("storage selected")
		return &Repositories{
			UserRepository: NewRedisUserRepository(client, logger),
			closer:         client.Close,
			logger:         logger,
		}, nil

	case cfg.DB.DSN != "":
		db, err := NewConnectDB(ctx, cfg.DB, logger)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		logger.Info().Str("backend", db.driver).Msg("storage selected")
		return &Repositories{
			UserRepository: NewUserRepository(db, logger),
			closer:         db.Close,
			logger:         logger,
		}, nil

	default:
		logger.Info().Str("backend", "memory").Msg("storage selected")
		return &Repositories{
			UserRepository: NewMemoryUserRepository(logger),
			logger:         logger,
		}, nil
	}
}
