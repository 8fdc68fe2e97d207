// Package rolls implements the companion use cases: feature lookup, rolls,
// roll history and actor management
package rolls

//go:generate mockgen -destination=mock/mock_service.go -package=rollsmock github.com/KirkDiggler/rpg-companion/internal/orchestrators/rolls Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-companion/internal/clients/external"
	"github.com/KirkDiggler/rpg-companion/internal/engine/features"
	"github.com/KirkDiggler/rpg-companion/internal/engine/modifiers"
	rollexec "github.com/KirkDiggler/rpg-companion/internal/engine/rolls"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-companion/internal/repositories/actor"
	dmnotes "github.com/KirkDiggler/rpg-companion/internal/repositories/dm_notes"
	rollhistory "github.com/KirkDiggler/rpg-companion/internal/repositories/roll_history"
	"github.com/KirkDiggler/rpg-companion/internal/services/share"
)

// Service defines the interface for companion operations
type Service interface {
	// Features
	GetFeatures(ctx context.Context, input *GetFeaturesInput) (*GetFeaturesOutput, error)

	// Rolling
	RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error)
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// Actors
	ImportMonster(ctx context.Context, input *ImportMonsterInput) (*ImportMonsterOutput, error)
	PutActor(ctx context.Context, input *PutActorInput) (*PutActorOutput, error)
	GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error)
	ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error)
	PutDMNotes(ctx context.Context, input *PutDMNotesInput) (*PutDMNotesOutput, error)
}

// Config holds the dependencies for the rolls orchestrator
type Config struct {
	ActorRepo   actor.Repository
	NotesRepo   dmnotes.Repository
	HistoryRepo rollhistory.Repository
	Rules       *dnd5e.RuleTable
	Executor    *rollexec.Executor
	IDGenerator idgen.Generator

	// ExternalClient is only needed for ImportMonster
	ExternalClient external.Client
	// Publisher shares roll results; nil disables sharing
	Publisher share.Publisher
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.NotesRepo == nil {
		vb.RequiredField("NotesRepo")
	}
	if c.HistoryRepo == nil {
		vb.RequiredField("HistoryRepo")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Executor == nil {
		vb.RequiredField("Executor")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	actorRepo      actor.Repository
	notesRepo      dmnotes.Repository
	historyRepo    rollhistory.Repository
	rules          *dnd5e.RuleTable
	executor       *rollexec.Executor
	idGen          idgen.Generator
	externalClient external.Client
	publisher      share.Publisher
}

// New creates a new rolls orchestrator with the provided dependencies
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = share.Nop{}
	}

	return &Orchestrator{
		actorRepo:      cfg.ActorRepo,
		notesRepo:      cfg.NotesRepo,
		historyRepo:    cfg.HistoryRepo,
		rules:          cfg.Rules,
		executor:       cfg.Executor,
		idGen:          cfg.IDGenerator,
		externalClient: cfg.ExternalClient,
		publisher:      publisher,
	}, nil
}

// Ensure Orchestrator implements Service
var _ Service = (*Orchestrator)(nil)

// GetFeatures resolves the active features of a stored character
func (o *Orchestrator) GetFeatures(ctx context.Context, input *GetFeaturesInput) (*GetFeaturesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Level < 0 || input.Level > dnd5e.MaxLevel {
		return nil, errors.InvalidArgumentf("level must be between %d and %d", dnd5e.MinLevel, dnd5e.MaxLevel)
	}

	character, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	level := character.Level
	if input.Level > 0 {
		level = input.Level
	}

	resolved := features.Resolve(o.rules, character.ClassName, character.SubclassName, level, character.AbilityScores)

	slog.DebugContext(ctx, "Resolved features",
		"character_id", character.ID,
		"class", character.ClassName,
		"subclass", character.SubclassName,
		"level", level,
		"count", len(resolved),
	)

	return &GetFeaturesOutput{
		Character: character,
		Level:     level,
		Features:  resolved,
	}, nil
}

// RollCheck rolls a check, save or attack for a stored actor
func (o *Orchestrator) RollCheck(ctx context.Context, input *RollCheckInput) (*RollCheckOutput, error) {
	if err := validateRollCheck(input); err != nil {
		return nil, err
	}

	getOutput, err := o.actorRepo.Get(ctx, actor.GetInput{ID: input.ActorID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", input.ActorID)
	}
	subject := getOutput.Actor

	// DM notes only ever add proficiencies to characters
	if subject.Kind == dnd5e.ActorKindCharacter {
		notes, err := o.findNotes(ctx, subject.GetID())
		if err != nil {
			return nil, err
		}
		if notes != nil {
			subject = dnd5e.NewCharacterActor(subject.Character.WithNotes(notes))
		}
	}

	req := modifiers.Request{
		Category:      input.Category,
		Ability:       input.Ability,
		Skill:         input.Skill,
		AttackName:    input.AttackName,
		AttackAbility: input.AttackAbility,
	}
	mods := modifiers.Resolve(subject, req)

	title := input.Title
	if title == "" {
		title = defaultTitle(req)
	}

	roll, err := o.executor.RollD20(title, mods, input.CustomModifier, input.Advantage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll d20")
	}

	if err := o.record(ctx, input.ActorID, roll, share.MessageRoll, input.ShareTarget); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Check rolled",
		"actor_id", input.ActorID,
		"category", input.Category,
		"formula", roll.Formula,
		"total", roll.Total,
		"roll_id", roll.ID,
	)

	return &RollCheckOutput{
		Roll:      roll,
		Modifiers: mods,
	}, nil
}

// RollDamage rolls damage dice and records the result for the owner
func (o *Orchestrator) RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	if input.DieType < 1 {
		vb.Field("die_type", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	title := input.Title
	if title == "" {
		title = "Damage"
	}

	roll, err := o.executor.RollDamage(title, input.DiceCount, input.DieType, input.CustomModifier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage")
	}

	if err := o.record(ctx, input.OwnerID, roll, share.MessageDamage, input.ShareTarget); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Damage rolled",
		"owner_id", input.OwnerID,
		"formula", roll.Formula,
		"total", roll.Total,
		"roll_id", roll.ID,
	)

	return &RollDamageOutput{Roll: roll}, nil
}

// GetHistory returns the owner's recent rolls, newest first
func (o *Orchestrator) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit cannot be negative")
	}

	listOutput, err := o.historyRepo.List(ctx, rollhistory.ListInput{
		OwnerID: input.OwnerID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roll history")
	}

	return &GetHistoryOutput{Rolls: listOutput.Rolls}, nil
}

// ClearHistory removes the owner's roll history
func (o *Orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID is required")
	}

	clearOutput, err := o.historyRepo.Clear(ctx, rollhistory.ClearInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear roll history")
	}

	slog.InfoContext(ctx, "Roll history cleared",
		"owner_id", input.OwnerID,
		"rolls_deleted", clearOutput.RollsDeleted,
	)

	return &ClearHistoryOutput{RollsDeleted: clearOutput.RollsDeleted}, nil
}

// ImportMonster fetches an SRD monster and stores it as a stat block actor
func (o *Orchestrator) ImportMonster(ctx context.Context, input *ImportMonsterInput) (*ImportMonsterOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.InvalidArgument("monster key is required")
	}
	if o.externalClient == nil {
		return nil, errors.FailedPrecondition("monster import is not configured")
	}

	block, err := o.externalClient.GetMonsterStatBlock(ctx, input.Key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch monster %s", input.Key)
	}
	if input.ID != "" {
		block.ID = input.ID
	}

	putOutput, err := o.actorRepo.Put(ctx, actor.PutInput{Actor: dnd5e.NewStatBlockActor(block)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store monster %s", input.Key)
	}

	slog.InfoContext(ctx, "Monster imported",
		"key", input.Key,
		"actor_id", block.ID,
		"challenge_rating", block.ChallengeRating,
	)

	return &ImportMonsterOutput{Actor: putOutput.Actor}, nil
}

// PutActor creates or replaces an actor, assigning an ID when it has none
func (o *Orchestrator) PutActor(ctx context.Context, input *PutActorInput) (*PutActorOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}

	subject := input.Actor
	if subject.GetID() == "" {
		subject = withID(subject, o.idGen.Generate())
	}
	if err := validateActor(subject); err != nil {
		return nil, err
	}

	putOutput, err := o.actorRepo.Put(ctx, actor.PutInput{Actor: subject})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store actor")
	}

	return &PutActorOutput{Actor: putOutput.Actor}, nil
}

// GetActor loads an actor and, for characters, any DM notes
func (o *Orchestrator) GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	getOutput, err := o.actorRepo.Get(ctx, actor.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actor %s", input.ID)
	}

	output := &GetActorOutput{Actor: getOutput.Actor}
	if getOutput.Actor.Kind == dnd5e.ActorKindCharacter {
		notes, err := o.findNotes(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		output.Notes = notes
	}

	return output, nil
}

// ListActors lists stored actors, optionally of one kind
func (o *Orchestrator) ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error) {
	if input == nil {
		input = &ListActorsInput{}
	}
	switch input.Kind {
	case "", dnd5e.ActorKindCharacter, dnd5e.ActorKindStatBlock:
	default:
		return nil, errors.InvalidArgumentf("unknown actor kind %q", input.Kind)
	}

	listOutput, err := o.actorRepo.List(ctx, actor.ListInput{Kind: input.Kind})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actors")
	}

	return &ListActorsOutput{Actors: listOutput.Actors}, nil
}

// PutDMNotes stores DM notes for an existing character
func (o *Orchestrator) PutDMNotes(ctx context.Context, input *PutDMNotesInput) (*PutDMNotesOutput, error) {
	if input == nil || input.Notes == nil {
		return nil, errors.InvalidArgument("notes are required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("character_id", input.Notes.CharacterID, vb)
	for _, skill := range input.Notes.SkillProficiencies {
		if _, _, ok := dnd5e.LookupSkill(skill); !ok {
			vb.InvalidField("skill_proficiencies", fmt.Sprintf("unknown skill %q", skill))
		}
	}
	for _, ability := range input.Notes.SaveProficiencies {
		if !ability.Valid() {
			vb.InvalidField("save_proficiencies", fmt.Sprintf("unknown ability %q", ability))
		}
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.loadCharacter(ctx, input.Notes.CharacterID); err != nil {
		return nil, err
	}

	putOutput, err := o.notesRepo.Put(ctx, dmnotes.PutInput{Notes: input.Notes})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store DM notes")
	}

	return &PutDMNotesOutput{Notes: putOutput.Notes}, nil
}

func (o *Orchestrator) loadCharacter(ctx context.Context, id string) (*dnd5e.Character, error) {
	getOutput, err := o.actorRepo.Get(ctx, actor.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", id)
	}
	if getOutput.Actor.Kind != dnd5e.ActorKindCharacter || getOutput.Actor.Character == nil {
		return nil, errors.InvalidArgumentf("actor %s is not a character", id)
	}
	return getOutput.Actor.Character, nil
}

// findNotes returns nil when the character has no notes
func (o *Orchestrator) findNotes(ctx context.Context, characterID string) (*dnd5e.DMNotes, error) {
	notesOutput, err := o.notesRepo.Get(ctx, dmnotes.GetInput{CharacterID: characterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to get DM notes for %s", characterID)
	}
	return notesOutput.Notes, nil
}

// record appends the roll to the owner's history and shares it
func (o *Orchestrator) record(ctx context.Context, ownerID string, roll *dnd5e.RollResult, msgType, target string) error {
	if _, err := o.historyRepo.Append(ctx, rollhistory.AppendInput{
		OwnerID: ownerID,
		Roll:    roll,
	}); err != nil {
		return errors.Wrap(err, "failed to record roll")
	}

	if err := o.publisher.Publish(ctx, msgType, roll, target); err != nil {
		slog.WarnContext(ctx, "Failed to share roll",
			"owner_id", ownerID,
			"roll_id", roll.ID,
			"error", err,
		)
	}
	return nil
}

var (
	categoryValues = []string{
		string(dnd5e.RollCategoryCheck),
		string(dnd5e.RollCategorySave),
		string(dnd5e.RollCategoryAttack),
	}
	advantageValues = []string{
		string(dnd5e.AdvantageNormal),
		string(dnd5e.AdvantageAdvantage),
		string(dnd5e.AdvantageDisadvantage),
	}
)

func validateRollCheck(input *RollCheckInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("actor_id", input.ActorID, vb)

	if input.Advantage != "" {
		errors.ValidateEnum("advantage", string(input.Advantage), advantageValues, vb)
	}
	if input.Ability != "" && !input.Ability.Valid() {
		vb.InvalidField("ability", string(input.Ability))
	}
	if input.AttackAbility != "" && !input.AttackAbility.Valid() {
		vb.InvalidField("attack_ability", string(input.AttackAbility))
	}

	switch input.Category {
	case dnd5e.RollCategoryCheck:
		if input.Skill != "" {
			if _, _, ok := dnd5e.LookupSkill(input.Skill); !ok {
				vb.InvalidField("skill", fmt.Sprintf("unknown skill %q", input.Skill))
			}
		} else if input.Ability == "" {
			vb.Field("ability", "is required for a check without a skill")
		}
	case dnd5e.RollCategorySave:
		if input.Ability == "" {
			vb.RequiredField("ability")
		}
	case dnd5e.RollCategoryAttack:
	default:
		errors.ValidateEnum("category", string(input.Category), categoryValues, vb)
	}

	return vb.Build()
}

func validateActor(a *dnd5e.Actor) error {
	vb := errors.NewValidationBuilder()
	switch a.Kind {
	case dnd5e.ActorKindCharacter:
		if a.Character == nil {
			vb.RequiredField("character")
			break
		}
		errors.ValidateRequired("character.name", a.Character.Name, vb)
		errors.ValidateRange("character.level", a.Character.Level, dnd5e.MinLevel, dnd5e.MaxLevel, vb)
	case dnd5e.ActorKindStatBlock:
		if a.StatBlock == nil {
			vb.RequiredField("stat_block")
			break
		}
		errors.ValidateRequired("stat_block.name", a.StatBlock.Name, vb)
		switch a.StatBlock.Kind {
		case dnd5e.StatBlockKindNPC, dnd5e.StatBlockKindMonster:
		default:
			vb.InvalidField("stat_block.kind", string(a.StatBlock.Kind))
		}
	default:
		vb.InvalidField("kind", string(a.Kind))
	}
	return vb.Build()
}

// withID returns a copy of a carrying id; a itself is left untouched
func withID(a *dnd5e.Actor, id string) *dnd5e.Actor {
	out := *a
	switch a.Kind {
	case dnd5e.ActorKindCharacter:
		if a.Character != nil {
			c := *a.Character
			c.ID = id
			out.Character = &c
		}
	case dnd5e.ActorKindStatBlock:
		if a.StatBlock != nil {
			s := *a.StatBlock
			s.ID = id
			out.StatBlock = &s
		}
	}
	return &out
}

func defaultTitle(req modifiers.Request) string {
	switch req.Category {
	case dnd5e.RollCategorySave:
		return req.Ability.Name() + " Save"
	case dnd5e.RollCategoryAttack:
		if req.AttackName != "" {
			return req.AttackName + " Attack"
		}
		return "Attack"
	default:
		if skill, _, ok := dnd5e.LookupSkill(req.Skill); ok {
			return skill + " Check"
		}
		return req.Ability.Name() + " Check"
	}
}
