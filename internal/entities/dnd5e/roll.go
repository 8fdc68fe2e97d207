package dnd5e

import (
	"time"
)

// RollCategory is what kind of d20 roll is being made
type RollCategory string

// Roll categories
const (
	RollCategoryCheck  RollCategory = "check"
	RollCategorySave   RollCategory = "save"
	RollCategoryAttack RollCategory = "attack"
)

// Valid reports whether c is a known category
func (c RollCategory) Valid() bool {
	switch c {
	case RollCategoryCheck, RollCategorySave, RollCategoryAttack:
		return true
	}
	return false
}

// AdvantageState selects how many d20s are drawn and which one counts
type AdvantageState string

// Advantage states
const (
	AdvantageNormal       AdvantageState = "normal"
	AdvantageAdvantage    AdvantageState = "advantage"
	AdvantageDisadvantage AdvantageState = "disadvantage"
)

// Valid reports whether s is a known state. The empty string is treated as normal.
func (s AdvantageState) Valid() bool {
	switch s {
	case "", AdvantageNormal, AdvantageAdvantage, AdvantageDisadvantage:
		return true
	}
	return false
}

// RollMode is d20 or damage
type RollMode string

// Roll modes
const (
	RollModeD20    RollMode = "d20"
	RollModeDamage RollMode = "damage"
)

// BreakdownEntry is one labelled contribution to a roll total
type BreakdownEntry struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// RollMeta describes how a roll was made
type RollMeta struct {
	Mode      RollMode       `json:"mode" yaml:"mode"`
	Type      AdvantageState `json:"type" yaml:"type"`
	DiceCount int            `json:"dice_count" yaml:"dice_count"`
}

// RollResult is the immutable outcome of a roll
type RollResult struct {
	ID        string           `json:"id" yaml:"id"`
	Title     string           `json:"title" yaml:"title"`
	Formula   string           `json:"formula" yaml:"formula"`
	Total     int              `json:"total" yaml:"total"`
	Rolls     []int            `json:"rolls" yaml:"rolls"`
	FinalRoll int              `json:"final_roll" yaml:"final_roll"`
	IsCrit    bool             `json:"is_crit" yaml:"is_crit"`
	IsFumble  bool             `json:"is_fumble" yaml:"is_fumble"`
	Breakdown []BreakdownEntry `json:"breakdown,omitempty" yaml:"breakdown,omitempty"`
	Timestamp time.Time        `json:"timestamp" yaml:"timestamp"`
	Meta      RollMeta         `json:"meta" yaml:"meta"`
}
