package rollhistory

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-companion/internal/redis"
)

const (
	// Key pattern: roll_history:{owner_id}
	historyKeyPrefix = "roll_history:"

	// Error messages
	errOwnerIDEmpty = "owner ID cannot be empty"
	errRollNil      = "roll cannot be nil"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for roll history
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append pushes the roll onto the head of the owner's list and trims the tail
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.Roll == nil {
		return nil, errors.InvalidArgument(errRollNil)
	}

	data, err := json.Marshal(input.Roll)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll")
	}

	key := historyKeyPrefix + input.OwnerID
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, MaxEntries-1)
	length := pipe.LLen(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append roll")
	}

	return &AppendOutput{Length: int(length.Val())}, nil
}

// List reads the newest rolls for the owner
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	limit := input.Limit
	if limit <= 0 || limit > MaxEntries {
		limit = MaxEntries
	}

	raw, err := r.client.LRange(ctx, historyKeyPrefix+input.OwnerID, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roll history")
	}

	rolls := make([]*dnd5e.RollResult, 0, len(raw))
	for _, item := range raw {
		var roll dnd5e.RollResult
		if err := json.Unmarshal([]byte(item), &roll); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal roll")
		}
		rolls = append(rolls, &roll)
	}

	return &ListOutput{Rolls: rolls}, nil
}

// Clear deletes the owner's history
func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := historyKeyPrefix + input.OwnerID
	pipe := r.client.TxPipeline()
	length := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear roll history")
	}

	return &ClearOutput{RollsDeleted: int(length.Val())}, nil
}
