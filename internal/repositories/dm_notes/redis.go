package dmnotes

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-companion/internal/redis"
)

const (
	// Key pattern: dm_notes:{character_id}
	notesKeyPrefix = "dm_notes:"

	// Error messages
	errNotesNil         = "notes cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
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

// NewRedisRepository creates a new Redis repository for DM notes
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Put stores notes without expiry
func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Notes == nil {
		return nil, errors.InvalidArgument(errNotesNil)
	}
	if input.Notes.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.Marshal(input.Notes)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal notes")
	}

	if err := r.client.Set(ctx, notesKeyPrefix+input.Notes.CharacterID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store notes in Redis")
	}

	return &PutOutput{Notes: input.Notes}, nil
}

// Get retrieves notes by character ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	raw, err := r.client.Get(ctx, notesKeyPrefix+input.CharacterID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no DM notes for character %s", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get notes from Redis")
	}

	var notes dnd5e.DMNotes
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal notes")
	}

	return &GetOutput{Notes: &notes}, nil
}

// Delete removes notes by character ID
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	n, err := r.client.Del(ctx, notesKeyPrefix+input.CharacterID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete notes from Redis")
	}
	if n == 0 {
		return nil, errors.NotFoundf("no DM notes for character %s", input.CharacterID)
	}

	return &DeleteOutput{}, nil
}
