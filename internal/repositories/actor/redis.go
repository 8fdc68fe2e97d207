package actor

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-companion/internal/redis"
)

const (
	actorKeyPrefix  = "actor:"
	allIndexKey     = "actor:index:all"
	kindIndexPrefix = "actor:index:kind:"

	// Error messages
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis actor repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func validateActor(a *dnd5e.Actor) error {
	if a == nil {
		return errors.InvalidArgument(errActorNil)
	}
	switch a.Kind {
	case dnd5e.ActorKindCharacter:
		if a.Character == nil || a.StatBlock != nil {
			return errors.InvalidArgument("character actor must carry only a character")
		}
	case dnd5e.ActorKindStatBlock:
		if a.StatBlock == nil || a.Character != nil {
			return errors.InvalidArgument("statblock actor must carry only a stat block")
		}
	default:
		return errors.InvalidArgumentf("unknown actor kind %q", a.Kind)
	}
	if a.GetID() == "" {
		return errors.InvalidArgument(errActorIDEmpty)
	}
	return nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	id := input.Actor.GetID()
	key := actorKeyPrefix + id

	// An actor can change kind when re-imported; drop the old kind index entry.
	previous, err := r.load(ctx, id)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allIndexKey, id)
	if previous != nil && previous.Kind != input.Actor.Kind {
		pipe.SRem(ctx, kindIndexPrefix+string(previous.Kind), id)
	}
	pipe.SAdd(ctx, kindIndexPrefix+string(input.Actor.Kind), id)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store actor")
	}

	return &PutOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	a, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Actor: a}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	a, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+input.ID)
	pipe.SRem(ctx, allIndexKey, input.ID)
	pipe.SRem(ctx, kindIndexPrefix+string(a.Kind), input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	indexKey := allIndexKey
	if input.Kind != "" {
		indexKey = kindIndexPrefix + string(input.Kind)
	}

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actors from index %s", indexKey)
	}
	sort.Strings(ids)

	actors := make([]*dnd5e.Actor, 0, len(ids))
	for _, id := range ids {
		a, err := r.load(ctx, id)
		if err != nil {
			// Stale index entry, clean it up
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "actor not found, cleaning up index",
					"actor_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get actor %s", id)
		}
		actors = append(actors, a)
	}

	slog.DebugContext(ctx, "listed actors",
		"index_key", indexKey,
		"count", len(actors))

	return &ListOutput{Actors: actors}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*dnd5e.Actor, error) {
	result, err := r.client.Get(ctx, actorKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var a dnd5e.Actor
	if err := json.Unmarshal([]byte(result), &a); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}
	return &a, nil
}
