// Package v1alpha1 serves the rules service over gRPC
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/orchestrators/rolls"

	rulesv1alpha1 "github.com/KirkDiggler/rpg-companion/gen/go/rules/v1alpha1"
)

// HandlerConfig holds dependencies for the rules handler
type HandlerConfig struct {
	Service rolls.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Service == nil {
		return errors.InvalidArgument("rolls service is required")
	}
	return nil
}

// Handler implements RulesServiceServer on top of the rolls orchestrator
type Handler struct {
	rulesv1alpha1.UnimplementedRulesServiceServer
	service rolls.Service
}

// NewHandler creates a new rules handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.Service}, nil
}

// GetFeatures lists a character's class and subclass features
func (h *Handler) GetFeatures(
	ctx context.Context,
	req *rulesv1alpha1.GetFeaturesRequest,
) (*rulesv1alpha1.GetFeaturesResponse, error) {
	if req.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character_id is required"))
	}

	out, err := h.service.GetFeatures(ctx, &rolls.GetFeaturesInput{
		CharacterID: req.CharacterId,
		Level:       int(req.Level),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.GetFeaturesResponse{
		Character: convertCharacterToProto(out.Character),
		Level:     int32(out.Level),
		Features:  convertFeaturesToProto(out.Features),
	}, nil
}

// RollCheck makes a d20 roll for an actor
func (h *Handler) RollCheck(
	ctx context.Context,
	req *rulesv1alpha1.RollCheckRequest,
) (*rulesv1alpha1.RollCheckResponse, error) {
	if req.ActorId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor_id is required"))
	}

	category, err := convertProtoRollCategory(req.Category)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	advantage, err := convertProtoAdvantage(req.Advantage)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	ability, err := optionalAbility("ability", req.Ability)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	attackAbility, err := optionalAbility("attack_ability", req.AttackAbility)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.RollCheck(ctx, &rolls.RollCheckInput{
		ActorID:        req.ActorId,
		Title:          req.Title,
		Category:       category,
		Ability:        ability,
		Skill:          req.Skill,
		AttackName:     req.AttackName,
		AttackAbility:  attackAbility,
		CustomModifier: int(req.CustomModifier),
		Advantage:      advantage,
		ShareTarget:    req.ShareTarget,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.RollCheckResponse{
		Roll:      convertRollResultToProto(out.Roll),
		Modifiers: convertModifiersToProto(out.Modifiers),
	}, nil
}

// RollDamage rolls damage dice for an owner
func (h *Handler) RollDamage(
	ctx context.Context,
	req *rulesv1alpha1.RollDamageRequest,
) (*rulesv1alpha1.RollDamageResponse, error) {
	if req.OwnerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.service.RollDamage(ctx, &rolls.RollDamageInput{
		OwnerID:        req.OwnerId,
		Title:          req.Title,
		DiceCount:      int(req.DiceCount),
		DieType:        int(req.DieType),
		CustomModifier: int(req.CustomModifier),
		ShareTarget:    req.ShareTarget,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.RollDamageResponse{Roll: convertRollResultToProto(out.Roll)}, nil
}

// GetHistory returns an owner's recent rolls
func (h *Handler) GetHistory(
	ctx context.Context,
	req *rulesv1alpha1.GetHistoryRequest,
) (*rulesv1alpha1.GetHistoryResponse, error) {
	if req.OwnerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}
	if req.Limit < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("limit cannot be negative"))
	}

	out, err := h.service.GetHistory(ctx, &rolls.GetHistoryInput{
		OwnerID: req.OwnerId,
		Limit:   int(req.Limit),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.GetHistoryResponse{Rolls: convertRollResultsToProto(out.Rolls)}, nil
}

// ClearHistory forgets an owner's rolls
func (h *Handler) ClearHistory(
	ctx context.Context,
	req *rulesv1alpha1.ClearHistoryRequest,
) (*rulesv1alpha1.ClearHistoryResponse, error) {
	if req.OwnerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("owner_id is required"))
	}

	out, err := h.service.ClearHistory(ctx, &rolls.ClearHistoryInput{OwnerID: req.OwnerId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.ClearHistoryResponse{RollsDeleted: int32(out.RollsDeleted)}, nil
}

// ImportMonster copies an SRD monster into the actor store
func (h *Handler) ImportMonster(
	ctx context.Context,
	req *rulesv1alpha1.ImportMonsterRequest,
) (*rulesv1alpha1.ImportMonsterResponse, error) {
	if req.Key == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("key is required"))
	}

	out, err := h.service.ImportMonster(ctx, &rolls.ImportMonsterInput{Key: req.Key, ID: req.Id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.ImportMonsterResponse{Actor: convertActorToProto(out.Actor)}, nil
}

// PutActor creates or replaces an actor
func (h *Handler) PutActor(
	ctx context.Context,
	req *rulesv1alpha1.PutActorRequest,
) (*rulesv1alpha1.PutActorResponse, error) {
	if req.Actor == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("actor is required"))
	}

	actor, err := convertProtoActor(req.Actor)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.PutActor(ctx, &rolls.PutActorInput{Actor: actor})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.PutActorResponse{Actor: convertActorToProto(out.Actor)}, nil
}

// GetActor loads an actor by ID
func (h *Handler) GetActor(
	ctx context.Context,
	req *rulesv1alpha1.GetActorRequest,
) (*rulesv1alpha1.GetActorResponse, error) {
	if req.Id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.service.GetActor(ctx, &rolls.GetActorInput{ID: req.Id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.GetActorResponse{
		Actor: convertActorToProto(out.Actor),
		Notes: convertDMNotesToProto(out.Notes),
	}, nil
}

// ListActors lists stored actors, optionally of one kind
func (h *Handler) ListActors(
	ctx context.Context,
	req *rulesv1alpha1.ListActorsRequest,
) (*rulesv1alpha1.ListActorsResponse, error) {
	kind, err := convertProtoActorKind(req.Kind)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.ListActors(ctx, &rolls.ListActorsInput{Kind: kind})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.ListActorsResponse{Actors: convertActorsToProto(out.Actors)}, nil
}

// PutDMNotes stores the DM's notes for a character
func (h *Handler) PutDMNotes(
	ctx context.Context,
	req *rulesv1alpha1.PutDMNotesRequest,
) (*rulesv1alpha1.PutDMNotesResponse, error) {
	if req.Notes == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notes are required"))
	}
	if req.Notes.CharacterId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("notes.character_id is required"))
	}

	notes, err := convertProtoDMNotes(req.Notes)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.PutDMNotes(ctx, &rolls.PutDMNotesInput{Notes: notes})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &rulesv1alpha1.PutDMNotesResponse{Notes: convertDMNotesToProto(out.Notes)}, nil
}

func optionalAbility(field, value string) (dnd5e.Ability, error) {
	if value == "" {
		return "", nil
	}
	a, ok := dnd5e.ParseAbility(value)
	if !ok {
		return "", errors.InvalidArgumentf("%s: unknown ability %q", field, value)
	}
	return a, nil
}
