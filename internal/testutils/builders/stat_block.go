package builders

import (
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

// StatBlockBuilder provides a fluent interface for building test NPCs and monsters
type StatBlockBuilder struct {
	block *dnd5e.StatBlock
}

// NewStatBlockBuilder creates a CR 0 monster with all scores at 10
func NewStatBlockBuilder() *StatBlockBuilder {
	scores := make(dnd5e.AbilityScores, len(dnd5e.Abilities))
	for _, a := range dnd5e.Abilities {
		scores[a] = 10
	}
	return &StatBlockBuilder{
		block: &dnd5e.StatBlock{
			ID:              "monster-test-123",
			Name:            "Test Monster",
			Kind:            dnd5e.StatBlockKindMonster,
			ChallengeRating: "0",
			AbilityScores:   scores,
		},
	}
}

// WithID sets the stat block ID
func (b *StatBlockBuilder) WithID(id string) *StatBlockBuilder {
	b.block.ID = id
	return b
}

// WithName sets the display name
func (b *StatBlockBuilder) WithName(name string) *StatBlockBuilder {
	b.block.Name = name
	return b
}

// AsNPC marks the stat block as an NPC
func (b *StatBlockBuilder) AsNPC() *StatBlockBuilder {
	b.block.Kind = dnd5e.StatBlockKindNPC
	return b
}

// WithCR sets the challenge rating string, e.g. "5" or "1/4"
func (b *StatBlockBuilder) WithCR(cr string) *StatBlockBuilder {
	b.block.ChallengeRating = cr
	return b
}

// WithScore sets one ability score
func (b *StatBlockBuilder) WithScore(a dnd5e.Ability, score int) *StatBlockBuilder {
	b.block.AbilityScores[a] = score
	return b
}

// WithSkill adds a free-text skill trait
func (b *StatBlockBuilder) WithSkill(name, description string) *StatBlockBuilder {
	b.block.Skills = append(b.block.Skills, dnd5e.Trait{Name: name, Description: description})
	return b
}

// WithSave adds a free-text saving throw trait
func (b *StatBlockBuilder) WithSave(name, description string) *StatBlockBuilder {
	b.block.SavingThrows = append(b.block.SavingThrows, dnd5e.Trait{Name: name, Description: description})
	return b
}

// WithAttack adds a free-text attack trait
func (b *StatBlockBuilder) WithAttack(name, description string) *StatBlockBuilder {
	b.block.Attacks = append(b.block.Attacks, dnd5e.Trait{Name: name, Description: description})
	return b
}

// Build returns the stat block
func (b *StatBlockBuilder) Build() *dnd5e.StatBlock {
	return b.block
}

// BuildActor returns the stat block wrapped as an actor
func (b *StatBlockBuilder) BuildActor() *dnd5e.Actor {
	return dnd5e.NewStatBlockActor(b.block)
}
