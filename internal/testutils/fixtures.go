package testutils

import (
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/testutils/builders"
)

// Fixture names
const (
	TestCharacterName = "Thorin Oakenshield"
	TestMonsterName   = "Goblin"
)

// NewBarbarian creates a barbarian with no subclass and con 16
func NewBarbarian(id string, level int) *dnd5e.Actor {
	return builders.NewCharacterBuilder().
		WithID(id).
		WithName(TestCharacterName).
		WithLevel(level).
		WithClass("Barbarian").
		WithScore(dnd5e.AbilityStrength, 16).
		WithScore(dnd5e.AbilityDexterity, 14).
		WithScore(dnd5e.AbilityConstitution, 16).
		WithScore(dnd5e.AbilityIntelligence, 8).
		WithScore(dnd5e.AbilityWisdom, 12).
		WithSkills(dnd5e.SkillAthletics, dnd5e.SkillSurvival).
		WithSaves(dnd5e.AbilityStrength, dnd5e.AbilityConstitution).
		WithAttacks(dnd5e.AbilityStrength).
		BuildActor()
}

// NewGoblin creates the SRD goblin stat block
func NewGoblin(id string) *dnd5e.Actor {
	return builders.NewStatBlockBuilder().
		WithID(id).
		WithName(TestMonsterName).
		WithCR("1/4").
		WithScore(dnd5e.AbilityStrength, 8).
		WithScore(dnd5e.AbilityDexterity, 14).
		WithScore(dnd5e.AbilityWisdom, 8).
		WithScore(dnd5e.AbilityCharisma, 8).
		WithSkill("Stealth +6", "").
		WithAttack("Scimitar", "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6 + 2) slashing damage.").
		WithAttack("Shortbow", "Ranged Weapon Attack: +4 to hit, range 80/320 ft., one target. Hit: 5 (1d6 + 2) piercing damage.").
		BuildActor()
}

// NewRuleTable creates a small table with the barbarian's first five levels
func NewRuleTable() *dnd5e.RuleTable {
	return &dnd5e.RuleTable{
		Version: "test",
		Classes: map[string]*dnd5e.ClassDefinition{
			"Barbarian": {
				HitDie:        12,
				SubclassLevel: 3,
				Features: []dnd5e.ClassFeature{
					{Level: 1, Name: "Rage", Uses: dnd5e.FixedUses(2), Recharge: dnd5e.RechargeLongRest},
					{Level: 1, Name: "Unarmored Defense"},
					{Level: 2, Name: "Reckless Attack"},
					{Level: 2, Name: "Danger Sense"},
					{Level: 3, Name: "Rage Uses", Uses: dnd5e.FixedUses(3), Recharge: dnd5e.RechargeLongRest},
					{Level: 5, Name: "Extra Attack"},
					{Level: 5, Name: "Fast Movement"},
				},
				Subclasses: map[string]*dnd5e.SubclassDefinition{
					"Path of the Berserker": {
						Features: []dnd5e.ClassFeature{{Level: 3, Name: "Frenzy"}},
					},
				},
			},
		},
	}
}
