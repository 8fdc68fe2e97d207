package rolls

import (
	"github.com/KirkDiggler/rpg-companion/internal/engine/modifiers"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

// GetFeaturesInput defines the request for resolving a character's features
type GetFeaturesInput struct {
	CharacterID string
	// Level overrides the stored level when set
	Level int
}

// GetFeaturesOutput defines the response for resolving features
type GetFeaturesOutput struct {
	Character *dnd5e.Character
	Level     int
	Features  []dnd5e.Feature
}

// RollCheckInput defines the request for a d20 roll
type RollCheckInput struct {
	ActorID        string
	Title          string
	Category       dnd5e.RollCategory
	Ability        dnd5e.Ability
	Skill          string
	AttackName     string
	AttackAbility  dnd5e.Ability
	CustomModifier int
	Advantage      dnd5e.AdvantageState
	// ShareTarget addresses the shared result; empty broadcasts
	ShareTarget string
}

// RollCheckOutput defines the response for a d20 roll
type RollCheckOutput struct {
	Roll      *dnd5e.RollResult
	Modifiers modifiers.Modifiers
}

// RollDamageInput defines the request for a damage roll
type RollDamageInput struct {
	OwnerID        string
	Title          string
	DiceCount      int
	DieType        int
	CustomModifier int
	ShareTarget    string
}

// RollDamageOutput defines the response for a damage roll
type RollDamageOutput struct {
	Roll *dnd5e.RollResult
}

// GetHistoryInput defines the request for an owner's roll history
type GetHistoryInput struct {
	OwnerID string
	Limit   int
}

// GetHistoryOutput contains rolls, newest first
type GetHistoryOutput struct {
	Rolls []*dnd5e.RollResult
}

// ClearHistoryInput defines the request for clearing roll history
type ClearHistoryInput struct {
	OwnerID string
}

// ClearHistoryOutput defines the response for clearing roll history
type ClearHistoryOutput struct {
	RollsDeleted int
}

// ImportMonsterInput defines the request for importing an SRD monster
type ImportMonsterInput struct {
	Key string
	// ID replaces the generated actor ID when set
	ID string
}

// ImportMonsterOutput defines the response for importing a monster
type ImportMonsterOutput struct {
	Actor *dnd5e.Actor
}

// PutActorInput defines the request for storing an actor
type PutActorInput struct {
	Actor *dnd5e.Actor
}

// PutActorOutput defines the response for storing an actor
type PutActorOutput struct {
	Actor *dnd5e.Actor
}

// GetActorInput defines the request for loading an actor
type GetActorInput struct {
	ID string
}

// GetActorOutput defines the response for loading an actor
type GetActorOutput struct {
	Actor *dnd5e.Actor
	// Notes is set for characters that have DM notes
	Notes *dnd5e.DMNotes
}

// ListActorsInput defines the request for listing actors
type ListActorsInput struct {
	Kind dnd5e.ActorKind
}

// ListActorsOutput defines the response for listing actors
type ListActorsOutput struct {
	Actors []*dnd5e.Actor
}

// PutDMNotesInput defines the request for storing DM notes
type PutDMNotesInput struct {
	Notes *dnd5e.DMNotes
}

// PutDMNotesOutput defines the response for storing DM notes
type PutDMNotesOutput struct {
	Notes *dnd5e.DMNotes
}
