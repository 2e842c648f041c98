package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// userRepository is the SQL implementation of [UserRepository]. It works
// against the "users" table on both PostgreSQL and SQLite; queries are
// built with the placeholder format of the underlying driver.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all users ordered by ascending id.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.statementBuilder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Age); err != nil {
			log.Err(err).Str("func", "*userRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// FindOne looks a user up by primary key. [sql.ErrNoRows] is reported as
// an absent user, not as an error.
func (r *userRepository) FindOne(ctx context.Context, id int64) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.statementBuilder(), id)
	if err != nil {
		return models.User{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.Name, &user.Age)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, false, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindOne").Int64("id", id).Msg("error scanning row")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, true, nil
}

// Save inserts user. A primary key conflict yields false and no error.
func (r *userRepository) Save(ctx context.Context, user models.User) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.statementBuilder(), user)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			log.Debug().Str("func", "*userRepository.Save").Int64("id", user.ID).Msg("user already exists")
			return false, nil
		}

		log.Err(err).Str("func", "*userRepository.Save").Int64("id", user.ID).Msg("error inserting user")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return true, nil
}

// Delete removes a user by id and reports whether a row was affected.
func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.statementBuilder(), id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Int64("id", id).Msg("error deleting user")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
