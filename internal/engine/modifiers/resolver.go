// Package modifiers works out the numbers that go into a d20 roll for any kind
// of actor.
//
// Characters get a level based proficiency bonus, removed when they are not
// proficient in what they are rolling. Stat blocks get a challenge rating
// based bonus, but only when the stat block itself calls the roll out; in
// that case the bonus printed in the stat block is used verbatim and replaces
// ability modifier plus proficiency.
//
// Resolve never fails. Missing scores, unknown skills, unreadable challenge
// ratings and prose without a number all come out as 0 or no specific bonus.
package modifiers

import (
	"strings"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

// Request selects what is being rolled
type Request struct {
	Category dnd5e.RollCategory

	// Ability for checks and saves. For skill checks it overrides the
	// skill's usual ability when set.
	Ability dnd5e.Ability

	// Skill turns a check into a skill check
	Skill string

	// AttackName picks a named stat block attack
	AttackName string

	// AttackAbility is the ability an attack is made with; defaults to str
	AttackAbility dnd5e.Ability
}

// Modifiers is the resolved input to a d20 roll
type Modifiers struct {
	AbilityMod    int  `json:"ability_mod"`
	ProfBonus     int  `json:"prof_bonus"`
	SpecificBonus *int `json:"specific_bonus,omitempty"`
}

// Total is what gets added to the die. A specific bonus replaces ability and
// proficiency, it does not stack with them.
func (m Modifiers) Total() int {
	if m.SpecificBonus != nil {
		return *m.SpecificBonus
	}
	return m.AbilityMod + m.ProfBonus
}

// Resolve computes the modifiers for actor making the requested roll
func Resolve(actor *dnd5e.Actor, req Request) Modifiers {
	if actor == nil {
		return Modifiers{}
	}

	switch actor.Kind {
	case dnd5e.ActorKindCharacter:
		if actor.Character == nil {
			return Modifiers{}
		}
		return resolveCharacter(actor.Character, req)
	case dnd5e.ActorKindStatBlock:
		if actor.StatBlock == nil {
			return Modifiers{}
		}
		return resolveStatBlock(actor.StatBlock, req)
	default:
		return Modifiers{}
	}
}

// SelectedAbility reports which ability a request rolls against
func SelectedAbility(req Request) dnd5e.Ability {
	switch req.Category {
	case dnd5e.RollCategoryAttack:
		if req.AttackAbility.Valid() {
			return req.AttackAbility
		}
		if req.Ability.Valid() {
			return req.Ability
		}
		return dnd5e.AbilityStrength
	case dnd5e.RollCategoryCheck:
		if req.Ability.Valid() {
			return req.Ability
		}
		if _, ability, ok := dnd5e.LookupSkill(req.Skill); ok {
			return ability
		}
	}
	return req.Ability
}

func resolveCharacter(c *dnd5e.Character, req Request) Modifiers {
	ability := SelectedAbility(req)
	out := Modifiers{AbilityMod: c.AbilityScores.Modifier(ability)}

	prof := dnd5e.ProficiencyBonusForLevel(c.Level)
	switch req.Category {
	case dnd5e.RollCategoryCheck:
		if req.Skill != "" && c.HasSkill(req.Skill) {
			out.ProfBonus = prof
		}
	case dnd5e.RollCategorySave:
		if c.HasSave(ability) {
			out.ProfBonus = prof
		}
	case dnd5e.RollCategoryAttack:
		if c.HasAttack(ability) {
			out.ProfBonus = prof
		}
	}
	return out
}

func resolveStatBlock(s *dnd5e.StatBlock, req Request) Modifiers {
	ability := SelectedAbility(req)
	out := Modifiers{AbilityMod: s.AbilityScores.Modifier(ability)}

	var parsed ParsedBonus
	switch req.Category {
	case dnd5e.RollCategoryCheck:
		if trait, ok := findSkillTrait(s.Skills, req.Skill); ok {
			parsed = traitBonus(trait)
		}
	case dnd5e.RollCategorySave:
		if trait, ok := findSaveTrait(s.SavingThrows, ability); ok {
			parsed = traitBonus(trait)
		}
	case dnd5e.RollCategoryAttack:
		if trait, ok := findAttack(s.Attacks, req.AttackName); ok {
			parsed = ParseToHit(trait.Description)
			if !parsed.OK {
				parsed = ParseToHit(trait.Name)
			}
		}
	}

	if !parsed.OK {
		return out
	}
	v := parsed.Value
	out.SpecificBonus = &v
	out.ProfBonus = dnd5e.ProficiencyBonusForCR(dnd5e.ParseChallengeRating(s.ChallengeRating))
	return out
}

func traitBonus(t dnd5e.Trait) ParsedBonus {
	if b := ParseBonus(t.Name); b.OK {
		return b
	}
	return ParseBonus(t.Description)
}

func findSkillTrait(traits []dnd5e.Trait, skill string) (dnd5e.Trait, bool) {
	if canonical, _, ok := dnd5e.LookupSkill(skill); ok {
		skill = canonical
	}
	want := strings.ToLower(strings.TrimSpace(skill))
	if want == "" {
		return dnd5e.Trait{}, false
	}
	for _, t := range traits {
		if strings.Contains(strings.ToLower(t.Name), want) {
			return t, true
		}
	}
	return dnd5e.Trait{}, false
}

// findSaveTrait matches the full ability name first ("Dexterity +5"), then
// the bare code as a word ("Dex +5").
func findSaveTrait(traits []dnd5e.Trait, ability dnd5e.Ability) (dnd5e.Trait, bool) {
	if !ability.Valid() {
		return dnd5e.Trait{}, false
	}
	name := strings.ToLower(ability.Name())
	for _, t := range traits {
		if strings.Contains(strings.ToLower(t.Name), name) {
			return t, true
		}
	}
	for _, t := range traits {
		for _, word := range strings.FieldsFunc(strings.ToLower(t.Name), notLetter) {
			if word == string(ability) {
				return t, true
			}
		}
	}
	return dnd5e.Trait{}, false
}

func findAttack(traits []dnd5e.Trait, name string) (dnd5e.Trait, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dnd5e.Trait{}, false
	}
	for _, t := range traits {
		if strings.TrimSpace(t.Name) == name {
			return t, true
		}
	}
	return dnd5e.Trait{}, false
}

func notLetter(r rune) bool {
	return r < 'a' || r > 'z'
}
