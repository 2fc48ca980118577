package player

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
	"github.com/firetop/gamebook-api/internal/errors"
	"github.com/firetop/gamebook-api/internal/pkg/clock"
	redisclient "github.com/firetop/gamebook-api/internal/redis"
)

const (
	playerKeyPrefix = "player:"

	// Error messages
	errRecordNil     = "record cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.PlayerID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player %s has no adventure record", input.PlayerID)
		}
		return nil, errors.Wrapf(err, "failed to get player record")
	}

	var record gamebook.PlayerRecord
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player record")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	input.Record.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player record")
	}

	key := playerKeyPrefix + input.Record.PlayerID
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil { // records never expire
		return nil, errors.Wrapf(err, "failed to save player record")
	}

	return &SaveOutput{Record: input.Record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.PlayerID
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete player record")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("player %s has no adventure record", input.PlayerID)
	}

	return &DeleteOutput{}, nil
}
