package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

func TestNewStorages_DefaultsToMemory(t *testing.T) {
	repos, err := NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	defer repos.Close()

	assert.IsType(t, &memoryUserRepository{}, repos.UserRepository)
}

func TestNewStorages_SQLite(t *testing.T) {
	cfg := config.Storage{DB: config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "users.db")}}

	repos, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer repos.Close()

	require.IsType(t, &userRepository{}, repos.UserRepository)

	ok, err := repos.UserRepository.Save(context.Background(), models.User{ID: 1, Name: "Alice Silva", Age: 25})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewStorages_RedisWinsOverDSN(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Storage{
		DB:    config.DB{DSN: "postgres://nobody@127.0.0.1:1/none"},
		Redis: config.Redis{Address: mr.Addr()},
	}

	repos, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer repos.Close()

	assert.IsType(t, &redisUserRepository{}, repos.UserRepository)
}

func TestNewStorages_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewStorages(context.Background(), config.Storage{Redis: config.Redis{Address: addr}}, logger.Nop())

	assert.ErrorIs(t, err, ErrConnectingRedis)
}

func TestNewConnectDB_UnsupportedDriver(t *testing.T) {
	_, err := NewConnectDB(context.Background(), config.DB{DSN: "mysql://root@localhost/users"}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteErrorClassifier(t *testing.T) {
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: "file:" + filepath.Join(t.TempDir(), "c.db")}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	_, err = db.Exec(`INSERT INTO users (id, name, age) VALUES (1, 'a', 1)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users (id, name, age) VALUES (1, 'b', 2)`)
	require.Error(t, err)

	c := NewSQLiteErrorClassifier()
	assert.True(t, c.IsUniqueViolation(err))
	assert.False(t, c.IsUniqueViolation(assert.AnError))
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(pgError("23505")))
	assert.False(t, c.IsUniqueViolation(pgError("23514")))
	assert.False(t, c.IsUniqueViolation(assert.AnError))
	assert.False(t, c.IsUniqueViolation(nil))
}

func Test_sqliteDataSource(t *testing.T) {
	assert.Equal(t, "users.db", sqliteDataSource("sqlite://users.db"))
	assert.Equal(t, "file:users.db?cache=shared", sqliteDataSource("file:users.db?cache=shared"))
}
