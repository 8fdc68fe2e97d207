// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	externalmock "github.com/KirkDiggler/rpg-companion/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/repositories/actor"
	actormock "github.com/KirkDiggler/rpg-companion/internal/repositories/actor/mock"
	dmnotes "github.com/KirkDiggler/rpg-companion/internal/repositories/dm_notes"
	dmnotesmock "github.com/KirkDiggler/rpg-companion/internal/repositories/dm_notes/mock"
	rollhistory "github.com/KirkDiggler/rpg-companion/internal/repositories/roll_history"
	rollhistorymock "github.com/KirkDiggler/rpg-companion/internal/repositories/roll_history/mock"
)

// ExpectActorLookup expects a single Get for a and returns it
func ExpectActorLookup(ctx context.Context, repo *actormock.MockRepository, a *dnd5e.Actor) {
	repo.EXPECT().
		Get(ctx, actor.GetInput{ID: a.GetID()}).
		Return(&actor.GetOutput{Actor: a}, nil)
}

// ExpectActorPutEcho expects a Put and stores nothing, echoing the actor back.
// The stored actor is written to captured when it is non-nil.
func ExpectActorPutEcho(ctx context.Context, repo *actormock.MockRepository, captured **dnd5e.Actor) {
	repo.EXPECT().
		Put(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input actor.PutInput) (*actor.PutOutput, error) {
			if captured != nil {
				*captured = input.Actor
			}
			return &actor.PutOutput{Actor: input.Actor}, nil
		})
}

// ExpectDMNotes expects a notes lookup for characterID. Nil notes answers NotFound.
func ExpectDMNotes(ctx context.Context, repo *dmnotesmock.MockRepository, characterID string, notes *dnd5e.DMNotes) {
	call := repo.EXPECT().Get(ctx, dmnotes.GetInput{CharacterID: characterID})
	if notes == nil {
		call.Return(nil, errors.NotFoundf("no DM notes for character %s", characterID))
		return
	}
	call.Return(&dmnotes.GetOutput{Notes: notes}, nil)
}

// ExpectHistoryAppend expects one roll to be appended and records the input
func ExpectHistoryAppend(ctx context.Context, repo *rollhistorymock.MockRepository, captured *rollhistory.AppendInput) {
	repo.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rollhistory.AppendInput) (*rollhistory.AppendOutput, error) {
			if captured != nil {
				*captured = input
			}
			return &rollhistory.AppendOutput{Length: 1}, nil
		})
}

// ExpectMonsterFetch expects the external client to return block for key
func ExpectMonsterFetch(ctx context.Context, client *externalmock.MockClient, key string, block *dnd5e.StatBlock) {
	client.EXPECT().
		GetMonsterStatBlock(ctx, key).
		Return(block, nil)
}
