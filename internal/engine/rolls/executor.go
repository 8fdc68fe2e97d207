// Package rolls performs d20 and damage rolls and builds RollResults.
// It holds no rules of its own; modifiers arrive already resolved.
package rolls

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-companion/internal/engine/modifiers"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/idgen"
)

// Damage pool bounds
const (
	MinDamageDice = 1
	MaxDamageDice = 100
	MinDieType    = 2
)

// Breakdown labels
const (
	LabelStatBlock   = "Stat Block"
	LabelAbility     = "Ability"
	LabelProficiency = "Proficiency"
	LabelCustom      = "Custom"
)

// Config holds the dependencies for the executor
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Executor rolls dice. It is safe for concurrent use if its roller is.
type Executor struct {
	roller dice.Roller
	idGen  idgen.Generator
	clock  clock.Clock
}

// NewExecutor creates an executor from cfg
func NewExecutor(cfg *Config) (*Executor, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Executor{
		roller: cfg.Roller,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
	}, nil
}

// RollD20 rolls a d20, or two under advantage or disadvantage, and applies
// mods plus custom. Both raw dice are kept in Rolls. Crit and fumble are
// judged on the die that was kept.
func (e *Executor) RollD20(title string, mods modifiers.Modifiers, custom int, adv dnd5e.AdvantageState) (*dnd5e.RollResult, error) {
	if adv == "" || !adv.Valid() {
		adv = dnd5e.AdvantageNormal
	}

	first, err := e.roller.Roll(20)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll d20")
	}
	rolls := []int{first}
	selected := first

	if adv != dnd5e.AdvantageNormal {
		second, err := e.roller.Roll(20)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll second d20")
		}
		rolls = append(rolls, second)
		if adv == dnd5e.AdvantageAdvantage {
			selected = max(first, second)
		} else {
			selected = min(first, second)
		}
	}

	var breakdown []dnd5e.BreakdownEntry
	if mods.SpecificBonus != nil {
		breakdown = appendNonZero(breakdown, LabelStatBlock, *mods.SpecificBonus)
	} else {
		breakdown = appendNonZero(breakdown, LabelAbility, mods.AbilityMod)
		breakdown = appendNonZero(breakdown, LabelProficiency, mods.ProfBonus)
	}
	breakdown = appendNonZero(breakdown, LabelCustom, custom)

	bonus := mods.Total() + custom
	return &dnd5e.RollResult{
		ID:        e.idGen.Generate(),
		Title:     title,
		Formula:   d20Formula(adv) + signed(bonus),
		Total:     selected + bonus,
		Rolls:     rolls,
		FinalRoll: selected,
		IsCrit:    selected == 20,
		IsFumble:  selected == 1,
		Breakdown: breakdown,
		Timestamp: e.clock.Now(),
		Meta: dnd5e.RollMeta{
			Mode:      dnd5e.RollModeD20,
			Type:      adv,
			DiceCount: len(rolls),
		},
	}, nil
}

// RollDamage rolls count dice of dieType and adds custom. count is clamped
// to 1..100 and dieType below 2 becomes 2.
func (e *Executor) RollDamage(title string, count, dieType, custom int) (*dnd5e.RollResult, error) {
	count = ClampDiceCount(count)
	if dieType < MinDieType {
		dieType = MinDieType
	}

	rolls, err := e.roller.RollN(count, dieType)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", count, dieType)
	}

	sum := 0
	for _, r := range rolls {
		sum += r
	}

	var breakdown []dnd5e.BreakdownEntry
	breakdown = appendNonZero(breakdown, LabelCustom, custom)

	return &dnd5e.RollResult{
		ID:        e.idGen.Generate(),
		Title:     title,
		Formula:   fmt.Sprintf("%dd%d", count, dieType) + signed(custom),
		Total:     sum + custom,
		Rolls:     rolls,
		FinalRoll: sum,
		Breakdown: breakdown,
		Timestamp: e.clock.Now(),
		Meta: dnd5e.RollMeta{
			Mode:      dnd5e.RollModeDamage,
			Type:      dnd5e.AdvantageNormal,
			DiceCount: count,
		},
	}, nil
}

// ClampDiceCount bounds a damage pool size to 1..100
func ClampDiceCount(n int) int {
	if n < MinDamageDice {
		return MinDamageDice
	}
	if n > MaxDamageDice {
		return MaxDamageDice
	}
	return n
}

func appendNonZero(list []dnd5e.BreakdownEntry, label string, v int) []dnd5e.BreakdownEntry {
	if v == 0 {
		return list
	}
	return append(list, dnd5e.BreakdownEntry{Label: label, Value: v})
}

func d20Formula(adv dnd5e.AdvantageState) string {
	switch adv {
	case dnd5e.AdvantageAdvantage:
		return "2d20kh1"
	case dnd5e.AdvantageDisadvantage:
		return "2d20kl1"
	default:
		return "1d20"
	}
}

func signed(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("+%d", n)
	case n < 0:
		return fmt.Sprintf("%d", n)
	default:
		return ""
	}
}
