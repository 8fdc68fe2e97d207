// Package actor provides the interface for actor persistence
package actor

//go:generate mockgen -destination=mock/mock_repository.go -package=actormock github.com/KirkDiggler/rpg-companion/internal/repositories/actor Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

// Repository defines the interface for actor persistence. Actors are
// characters and stat blocks; both share one id space.
type Repository interface {
	// Put creates or replaces an actor
	// Returns errors.InvalidArgument for a nil actor, an empty ID or a kind mismatch
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete deletes an actor by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the actor doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every actor, optionally only one kind
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// PutInput defines the input for storing an actor
type PutInput struct {
	Actor *dnd5e.Actor
}

// PutOutput defines the output for storing an actor
type PutOutput struct {
	Actor *dnd5e.Actor
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *dnd5e.Actor
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct{}

// ListInput defines the input for listing actors
type ListInput struct {
	// Kind filters by actor kind when set
	Kind dnd5e.ActorKind
}

// ListOutput defines the output for listing actors
type ListOutput struct {
	Actors []*dnd5e.Actor
}
