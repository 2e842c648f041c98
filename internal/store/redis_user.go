package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/models"
)

// Redis keys used by redisUserRepository.
const (
	redisUsersKey    = "users"       // hash: id -> JSON encoded user
	redisUsersOrder  = "users:order" // sorted set: id scored by insertion sequence
	redisUsersSeqKey = "users:seq"   // insertion sequence counter

	redisSaveRetries = 5
)

// redisUserRepository stores users in a Redis hash and keeps insertion order
// in a sorted set. Writes go through MULTI/EXEC so a user is never visible
// in one key without the other.
type redisUserRepository struct {
	client *redis.Client
	logger *logger.Logger
}

// NewConnectRedis creates a Redis client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectingRedis, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisUserRepository constructs a Redis-backed [UserRepository].
func NewRedisUserRepository(client *redis.Client, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating redis user repository")
	return &redisUserRepository{
		client: client,
		logger: logger,
	}
}

func (r *redisUserRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	ids, err := r.client.ZRange(ctx, redisUsersOrder, 0, -1).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisUserRepository.List").Msg("error reading insertion order")
		return nil, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	users := make([]models.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	values, err := r.client.HMGet(ctx, redisUsersKey, ids...).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisUserRepository.List").Msg("error reading users")
		return nil, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			// removed between ZRANGE and HMGET
			continue
		}

		user, err := decodeUser(raw)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *redisUserRepository) FindOne(ctx context.Context, id int64) (models.User, bool, error) {
	raw, err := r.client.HGet(ctx, redisUsersKey, redisField(id)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return models.User{}, false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*redisUserRepository.FindOne").Int64("id", id).Msg("error reading user")
		return models.User{}, false, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	user, err := decodeUser(raw)
	if err != nil {
		return models.User{}, false, err
	}

	return user, true, nil
}

// Save checks and writes under WATCH so a concurrent insert of the same id
// aborts the transaction, which is then retried.
func (r *redisUserRepository) Save(ctx context.Context, user models.User) (bool, error) {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal(user)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrDecodingUser, err)
	}

	field := redisField(user.ID)
	saved := false

	txf := func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, redisUsersKey, field).Result()
		if err != nil {
			return err
		}
		if exists {
			saved = false
			return nil
		}

		seq, err := tx.Incr(ctx, redisUsersSeqKey).Result()
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, redisUsersKey, field, encoded)
			pipe.ZAdd(ctx, redisUsersOrder, redis.Z{Score: float64(seq), Member: field})
			return nil
		})
		if err == nil {
			saved = true
		}
		return err
	}

	for range redisSaveRetries {
		err = r.client.Watch(ctx, txf, redisUsersKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*redisUserRepository.Save").Int64("id", user.ID).Msg("error saving user")
			return false, fmt.Errorf("%w: %w", ErrRedisCommand, err)
		}

		return saved, nil
	}

	log.Error().Str("func", "*redisUserRepository.Save").Int64("id", user.ID).Msg("transaction retries exhausted")
	return false, fmt.Errorf("%w: %w", ErrRedisCommand, redis.TxFailedErr)
}

func (r *redisUserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	field := redisField(id)

	var removed *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, redisUsersKey, field)
		pipe.ZRem(ctx, redisUsersOrder, field)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisUserRepository.Delete").Int64("id", id).Msg("error deleting user")
		return false, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return removed.Val() > 0, nil
}

func redisField(id int64) string {
	return strconv.FormatInt(id, 10)
}

func decodeUser(raw string) (models.User, error) {
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrDecodingUser, err)
	}

	return user, nil
}
