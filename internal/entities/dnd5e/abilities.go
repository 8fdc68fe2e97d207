// Package dnd5e holds the data model shared by the rules engine, the
// repositories and the transport layer: abilities, skills, rule tables,
// actors, resolved features and roll results.
//
// These are data-only types. The numeric helpers here (ability modifiers and
// the two proficiency tables) are the only calculations and they never fail.
package dnd5e

import (
	"strings"
)

// Ability is one of the six ability codes
type Ability string

// Ability codes
const (
	AbilityStrength     Ability = "str"
	AbilityDexterity    Ability = "dex"
	AbilityConstitution Ability = "con"
	AbilityIntelligence Ability = "int"
	AbilityWisdom       Ability = "wis"
	AbilityCharisma     Ability = "cha"
)

// Abilities lists the ability codes in sheet order
var Abilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

var abilityNames = map[Ability]string{
	AbilityStrength:     "Strength",
	AbilityDexterity:    "Dexterity",
	AbilityConstitution: "Constitution",
	AbilityIntelligence: "Intelligence",
	AbilityWisdom:       "Wisdom",
	AbilityCharisma:     "Charisma",
}

// Name returns the full ability name, e.g. "Dexterity"
func (a Ability) Name() string {
	return abilityNames[a]
}

// Valid reports whether a is one of the six codes
func (a Ability) Valid() bool {
	_, ok := abilityNames[a]
	return ok
}

// ParseAbility accepts a code ("dex") or a full name ("Dexterity"), case-insensitive
func ParseAbility(s string) (Ability, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	for _, a := range Abilities {
		if s == string(a) || s == strings.ToLower(a.Name()) {
			return a, true
		}
	}
	return "", false
}

// AbilityScores maps ability codes to scores (typically 1-30)
type AbilityScores map[Ability]int

// Modifier returns the modifier for an ability. A missing score counts as 0.
func (s AbilityScores) Modifier(a Ability) int {
	score, ok := s[a]
	if !ok {
		return 0
	}
	return AbilityModifier(score)
}

// Clone returns an independent copy
func (s AbilityScores) Clone() AbilityScores {
	if s == nil {
		return nil
	}
	out := make(AbilityScores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// AbilityModifier computes floor((score-10)/2)
func AbilityModifier(score int) int {
	return floorDiv(score-10, 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
