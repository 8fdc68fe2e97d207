// Package config loads server settings from the environment
package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-companion/internal/errors"
	rollhistory "github.com/KirkDiggler/rpg-companion/internal/repositories/roll_history"
)

// Config holds everything the server and CLI read from the environment
type Config struct {
	GRPCPort  int    `env:"RPG_GRPC_PORT" envDefault:"50051"`
	RedisAddr string `env:"RPG_REDIS_ADDR" envDefault:"localhost:6379"`
	// RulesPath points at a class table YAML; empty uses the embedded SRD table
	RulesPath string `env:"RPG_RULES_PATH"`
	// HistorySize caps the local session history, at most rollhistory.MaxEntries
	HistorySize int `env:"RPG_HISTORY_SIZE" envDefault:"50"`

	DnD5eAPIURL   string        `env:"RPG_DND5E_API_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	DnD5eTimeout  time.Duration `env:"RPG_DND5E_TIMEOUT" envDefault:"30s"`
	DnD5eCacheTTL time.Duration `env:"RPG_DND5E_CACHE_TTL" envDefault:"24h"`
	// MonsterImport turns on the external API client
	MonsterImport bool `env:"RPG_MONSTER_IMPORT" envDefault:"true"`

	ShutdownTimeout time.Duration `env:"RPG_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads the given .env files, if present, then parses the environment.
// Variables already set in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to load "+file)
		}
	}

	return Parse()
}

// Parse reads the environment into a validated Config
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and required values
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("RPG_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("RPG_REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidateRange("RPG_HISTORY_SIZE", c.HistorySize, 1, rollhistory.MaxEntries, vb)
	if c.MonsterImport {
		errors.ValidateRequired("RPG_DND5E_API_URL", c.DnD5eAPIURL, vb)
	}
	if c.DnD5eTimeout < 0 {
		vb.InvalidField("RPG_DND5E_TIMEOUT", "cannot be negative")
	}
	if c.DnD5eCacheTTL < 0 {
		vb.InvalidField("RPG_DND5E_CACHE_TTL", "cannot be negative")
	}
	if c.ShutdownTimeout <= 0 {
		vb.InvalidField("RPG_SHUTDOWN_TIMEOUT", "must be positive")
	}

	return vb.Build()
}
