// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-companion/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-companion/internal/engine/modifiers"
	internalDnd5e "github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
)

const (
	defaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	defaultHTTPTimeout = 30 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// slugPattern matches characters that should be replaced in slugs
var slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)

var dashes = regexp.MustCompile(`-+`)

// toAPIKey converts a monster name or key to the API's index format
// e.g., "Giant Spider" -> "giant-spider"
func toAPIKey(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, " ", "-")
	key = slugPattern.ReplaceAllString(key, "-")
	key = dashes.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}

// Client defines the interface for external API interactions
type Client interface {
	// GetMonsterStatBlock fetches an SRD monster and converts it to a stat block
	GetMonsterStatBlock(ctx context.Context, key string) (*internalDnd5e.StatBlock, error)

	// ListMonsters returns the monster index
	ListMonsters(ctx context.Context) ([]*MonsterRef, error)
}

// MonsterRef is an entry in the monster index
type MonsterRef struct {
	Key  string
	Name string
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts cannot be negative")
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// Wrap with caching; monster data never changes
	return newClient(dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)), nil
}

func newClient(api dnd5e.Interface) *client {
	return &client{dnd5eClient: api}
}

func (c *client) GetMonsterStatBlock(ctx context.Context, key string) (*internalDnd5e.StatBlock, error) {
	apiKey := toAPIKey(key)
	if apiKey == "" {
		return nil, errors.InvalidArgument("monster key is required")
	}

	monster, err := c.dnd5eClient.GetMonster(apiKey)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to get monster %s (api: %s)", key, apiKey))
	}
	if monster == nil {
		return nil, errors.NotFoundf("monster %s not found", key)
	}

	block := convertMonsterToStatBlock(monster)
	slog.DebugContext(ctx, "converted monster",
		"key", apiKey,
		"challenge_rating", block.ChallengeRating,
		"attacks", len(block.Attacks))

	return block, nil
}

func (c *client) ListMonsters(_ context.Context) ([]*MonsterRef, error) {
	refs, err := c.dnd5eClient.ListMonsters()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list monsters")
	}

	result := make([]*MonsterRef, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		result = append(result, &MonsterRef{Key: ref.Key, Name: ref.Name})
	}
	return result, nil
}

// convertMonsterToStatBlock maps an API monster onto a monster stat block.
// Actions that carry an attack bonus become attack traits whose text includes
// the "+N to hit" phrase the modifier resolver reads.
func convertMonsterToStatBlock(monster *entities.Monster) *internalDnd5e.StatBlock {
	block := &internalDnd5e.StatBlock{
		ID:              "monster_" + monster.Key,
		Name:            monster.Name,
		Kind:            internalDnd5e.StatBlockKindMonster,
		ChallengeRating: internalDnd5e.FormatChallengeRating(float64(monster.ChallengeRating)),
		AbilityScores: internalDnd5e.AbilityScores{
			internalDnd5e.AbilityStrength:     monster.Strength,
			internalDnd5e.AbilityDexterity:    monster.Dexterity,
			internalDnd5e.AbilityConstitution: monster.Constitution,
			internalDnd5e.AbilityIntelligence: monster.Intelligence,
			internalDnd5e.AbilityWisdom:       monster.Wisdom,
			internalDnd5e.AbilityCharisma:     monster.Charisma,
		},
		Attacks: []internalDnd5e.Trait{},
	}

	for _, prof := range monster.Proficiencies {
		convertProficiency(block, prof)
	}

	for _, action := range monster.MonsterActions {
		if attack, ok := convertAction(action); ok {
			block.Attacks = append(block.Attacks, attack)
		}
	}

	return block
}

// convertProficiency turns "Skill: Stealth" and "Saving Throw: DEX" rows into
// "Stealth +6" and "Dexterity +4" traits.
func convertProficiency(block *internalDnd5e.StatBlock, prof *entities.MonsterProficiency) {
	if prof == nil || prof.Proficiency == nil {
		return
	}
	kind, name, found := strings.Cut(prof.Proficiency.Name, ":")
	if !found {
		return
	}
	name = strings.TrimSpace(name)

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "skill":
		if canonical, _, ok := internalDnd5e.LookupSkill(name); ok {
			name = canonical
		}
		block.Skills = append(block.Skills, internalDnd5e.Trait{Name: fmt.Sprintf("%s %+d", name, prof.Value)})
	case "saving throw":
		if ability, ok := internalDnd5e.ParseAbility(name); ok {
			name = ability.Name()
		}
		block.SavingThrows = append(block.SavingThrows, internalDnd5e.Trait{Name: fmt.Sprintf("%s %+d", name, prof.Value)})
	}
}

func convertAction(action *entities.MonsterAction) (internalDnd5e.Trait, bool) {
	if action == nil || action.Name == "" {
		return internalDnd5e.Trait{}, false
	}

	description := strings.TrimSpace(action.Description)
	if modifiers.ParseToHit(description).OK {
		return internalDnd5e.Trait{Name: action.Name, Description: description}, true
	}

	bonus := int(action.AttackBonus)
	if bonus == 0 {
		// Multiattack and other non-attack actions
		return internalDnd5e.Trait{}, false
	}

	toHit := fmt.Sprintf("%+d to hit", bonus)
	if description != "" {
		toHit += ". " + description
	}
	return internalDnd5e.Trait{Name: action.Name, Description: toHit}, true
}
