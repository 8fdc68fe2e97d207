package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-companion/internal/engine/features"
	"github.com/KirkDiggler/rpg-companion/internal/engine/modifiers"
	rollexec "github.com/KirkDiggler/rpg-companion/internal/engine/rolls"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-companion/internal/services/history"
)

// localRoller backs the offline roll commands
var localRoller dice.Roller = dice.DefaultRoller

var (
	featuresSubclass string
	featuresScores   map[string]int

	rollTitle     string
	rollAbility   int
	rollProf      int
	rollCustom    int
	rollAdvantage string
	rollTimes     int
)

var featuresCmd = &cobra.Command{
	Use:   "features [class] [level]",
	Short: "List class features at a level without a server",
	Long: `List the features a class grants up to a level. Examples:

  features barbarian 5 --subclass berserker
  features bard 3 --score cha=16`,
	Args: cobra.ExactArgs(2),
	RunE: runFeatures,
}

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll dice locally without a server",
}

var rollD20Cmd = &cobra.Command{
	Use:   "d20",
	Short: "Roll a d20 with ability, proficiency and custom modifiers",
	Args:  cobra.NoArgs,
	RunE:  runRollD20,
}

var rollDamageCmd = &cobra.Command{
	Use:   "damage [count] [die]",
	Short: "Roll count dice of a die size plus a modifier",
	Args:  cobra.ExactArgs(2),
	RunE:  runRollDamage,
}

func init() {
	featuresCmd.Flags().StringVar(&featuresSubclass, "subclass", "", "Subclass name")
	featuresCmd.Flags().StringToIntVar(&featuresScores, "score", nil, "Ability scores, e.g. str=16,cha=14")

	rollCmd.PersistentFlags().StringVar(&rollTitle, "title", "", "Roll title")
	rollCmd.PersistentFlags().IntVar(&rollCustom, "mod", 0, "Custom modifier")
	rollCmd.PersistentFlags().IntVar(&rollTimes, "times", 1, "How many times to roll")
	rollD20Cmd.Flags().IntVar(&rollAbility, "ability-mod", 0, "Ability modifier")
	rollD20Cmd.Flags().IntVar(&rollProf, "prof", 0, "Proficiency bonus")
	rollD20Cmd.Flags().StringVar(&rollAdvantage, "advantage", string(dnd5e.AdvantageNormal), "normal, advantage or disadvantage")

	rollCmd.AddCommand(rollD20Cmd)
	rollCmd.AddCommand(rollDamageCmd)
}

func runFeatures(cmd *cobra.Command, args []string) error {
	level, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid level %q: %w", args[1], err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := loadRules(cfg.RulesPath)
	if err != nil {
		return err
	}
	className, class, ok := table.Class(args[0])
	if !ok {
		return fmt.Errorf("unknown class %q", args[0])
	}

	scores := dnd5e.AbilityScores{}
	for key, score := range featuresScores {
		ability, ok := dnd5e.ParseAbility(key)
		if !ok {
			return fmt.Errorf("unknown ability %q", key)
		}
		scores[ability] = score
	}

	level = dnd5e.ClampLevel(level)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s level %d (hit die d%d, proficiency %+d)\n",
		className, level, class.HitDie, dnd5e.ProficiencyBonusForLevel(level))

	for _, f := range features.Resolve(table, className, featuresSubclass, level, scores) {
		line := fmt.Sprintf("  [%d] %s (%s)", f.Level, f.Name, f.Source)
		if f.Uses != nil {
			line += fmt.Sprintf(" %d/%d", f.Uses.Current, f.Uses.Max)
		}
		if f.Recharge != "" {
			line += " per " + string(f.Recharge)
		}
		fmt.Fprintln(out, line)
	}

	if class.Spellcasting != nil {
		if slots := class.Spellcasting.SlotsAt(level); len(slots) > 0 {
			fmt.Fprintf(out, "  Spell slots: %v\n", slots)
		}
	}
	return nil
}

func runRollD20(cmd *cobra.Command, _ []string) error {
	adv := dnd5e.AdvantageState(rollAdvantage)
	if !adv.Valid() {
		return fmt.Errorf("unknown advantage %q", rollAdvantage)
	}
	title := rollTitle
	if title == "" {
		title = "d20"
	}
	mods := modifiers.Modifiers{AbilityMod: rollAbility, ProfBonus: rollProf}

	return rollRepeatedly(cmd.OutOrStdout(), func(e *rollexec.Executor) (*dnd5e.RollResult, error) {
		return e.RollD20(title, mods, rollCustom, adv)
	})
}

func runRollDamage(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid dice count %q: %w", args[0], err)
	}
	die, err := strconv.Atoi(trimDie(args[1]))
	if err != nil {
		return fmt.Errorf("invalid die %q: %w", args[1], err)
	}
	title := rollTitle
	if title == "" {
		title = "Damage"
	}

	return rollRepeatedly(cmd.OutOrStdout(), func(e *rollexec.Executor) (*dnd5e.RollResult, error) {
		return e.RollDamage(title, count, die, rollCustom)
	})
}

// rollRepeatedly rolls rollTimes times into a session history and prints
// the newest RPG_HISTORY_SIZE of them
func rollRepeatedly(out io.Writer, roll func(*rollexec.Executor) (*dnd5e.RollResult, error)) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	executor, err := rollexec.NewExecutor(&rollexec.Config{
		Roller:      localRoller,
		IDGenerator: idgen.NewSequential("roll"),
		Clock:       clock.New(),
	})
	if err != nil {
		return err
	}

	session := history.New(cfg.HistorySize)
	times := rollTimes
	if times < 1 {
		times = 1
	}
	for i := 0; i < times; i++ {
		result, err := roll(executor)
		if err != nil {
			return err
		}
		session.Add(result)
	}

	for _, result := range session.List() {
		fmt.Fprintf(out, "%s: %d  %s %v", result.Title, result.Total, result.Formula, result.Rolls)
		switch {
		case result.IsCrit:
			fmt.Fprint(out, " critical")
		case result.IsFumble:
			fmt.Fprint(out, " fumble")
		}
		fmt.Fprintln(out)
	}
	return nil
}

func trimDie(s string) string {
	if len(s) > 1 && (s[0] == 'd' || s[0] == 'D') {
		return s[1:]
	}
	return s
}
