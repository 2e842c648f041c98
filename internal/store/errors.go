package store

import "errors"

// Sentinel errors returned while constructing the storage layer.
var (
	// ErrUnsupportedDriver is returned when a DSN names a database the
	// repository cannot talk to.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrConnectingDB is returned when the database cannot be opened or
	// does not answer a ping.
	ErrConnectingDB = errors.New("error connecting database")

	// ErrConnectingRedis is returned when the Redis server does not answer
	// a ping.
	ErrConnectingRedis = errors.New("error connecting redis")
)

// Low-level operation errors. These are returned (wrapped) by repository
// methods when a storage-level operation fails before any domain logic can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan user rows")

	// ErrRedisCommand is returned when a Redis command or transaction fails.
	ErrRedisCommand = errors.New("redis command failed")

	// ErrDecodingUser is returned when a stored user cannot be decoded.
	ErrDecodingUser = errors.New("failed to decode stored user")
)
