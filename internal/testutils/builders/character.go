// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

// CharacterBuilder provides a fluent interface for building test characters
type CharacterBuilder struct {
	character *dnd5e.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults: a level 1
// character with all scores at 10 and no proficiencies
func NewCharacterBuilder() *CharacterBuilder {
	scores := make(dnd5e.AbilityScores, len(dnd5e.Abilities))
	for _, a := range dnd5e.Abilities {
		scores[a] = 10
	}
	return &CharacterBuilder{
		character: &dnd5e.Character{
			ID:            "char-test-123",
			Name:          "Test Character",
			Level:         1,
			AbilityScores: scores,
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithLevel sets the character level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithClass sets the class and optionally the subclass
func (b *CharacterBuilder) WithClass(className string, subclassName ...string) *CharacterBuilder {
	b.character.ClassName = className
	if len(subclassName) > 0 {
		b.character.SubclassName = subclassName[0]
	}
	return b
}

// WithScore sets one ability score
func (b *CharacterBuilder) WithScore(a dnd5e.Ability, score int) *CharacterBuilder {
	b.character.AbilityScores[a] = score
	return b
}

// WithSkills adds skill proficiencies
func (b *CharacterBuilder) WithSkills(skills ...string) *CharacterBuilder {
	b.character.SkillProficiencies = append(b.character.SkillProficiencies, skills...)
	return b
}

// WithSaves adds saving throw proficiencies
func (b *CharacterBuilder) WithSaves(abilities ...dnd5e.Ability) *CharacterBuilder {
	b.character.SaveProficiencies = append(b.character.SaveProficiencies, abilities...)
	return b
}

// WithAttacks adds attack proficiencies
func (b *CharacterBuilder) WithAttacks(abilities ...dnd5e.Ability) *CharacterBuilder {
	b.character.AttackProficiencies = append(b.character.AttackProficiencies, abilities...)
	return b
}

// Build returns the character
func (b *CharacterBuilder) Build() *dnd5e.Character {
	return b.character
}

// BuildActor returns the character wrapped as an actor
func (b *CharacterBuilder) BuildActor() *dnd5e.Actor {
	return dnd5e.NewCharacterActor(b.character)
}
