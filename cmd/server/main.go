// Package main is the entry point for the rpg-companion server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-companion/cmd/server/client"
	"github.com/KirkDiggler/rpg-companion/internal/config"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/rulesdata"
)

var (
	rulesPath string
	envFile   string
)

var rootCmd = &cobra.Command{
	Use:   "rpg-companion",
	Short: "D&D 5e rules companion",
	Long:  `rpg-companion resolves class features, rolls checks, saves, attacks and damage, and keeps a roll history per character.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Class table YAML (overrides RPG_RULES_PATH; default: embedded SRD table)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional .env file to load")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the environment and applies the root flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if rulesPath != "" {
		cfg.RulesPath = rulesPath
	}
	return cfg, nil
}

// loadRules reads the class table from path, or the embedded one when path is empty
func loadRules(path string) (*dnd5e.RuleTable, error) {
	if path == "" {
		return rulesdata.Default()
	}
	return rulesdata.Load(path)
}
