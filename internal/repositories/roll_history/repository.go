// Package rollhistory stores each owner's recent rolls, newest first
package rollhistory

//go:generate mockgen -destination=mock/mock_repository.go -package=rollhistorymock github.com/KirkDiggler/rpg-companion/internal/repositories/roll_history Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

// MaxEntries is how many rolls are kept per owner
const MaxEntries = 50

// Repository defines the interface for roll history storage operations
type Repository interface {
	// Append records a roll as the owner's newest, evicting the oldest past MaxEntries
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the owner's rolls, newest first. An owner with no rolls
	// gets an empty list, not an error.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear removes all of the owner's rolls
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// AppendInput contains the roll to record
type AppendInput struct {
	OwnerID string
	Roll    *dnd5e.RollResult
}

// AppendOutput reports the history length after the append
type AppendOutput struct {
	Length int
}

// ListInput contains parameters for listing rolls
type ListInput struct {
	OwnerID string
	// Limit caps the result; 0 means MaxEntries
	Limit int
}

// ListOutput contains the rolls, newest first
type ListOutput struct {
	Rolls []*dnd5e.RollResult
}

// ClearInput contains parameters for clearing history
type ClearInput struct {
	OwnerID string
}

// ClearOutput reports how many rolls were removed
type ClearOutput struct {
	RollsDeleted int
}
