// Package dmnotes stores the DM's side record for each character
package dmnotes

//go:generate mockgen -destination=mock/mock_repository.go -package=dmnotesmock github.com/KirkDiggler/rpg-companion/internal/repositories/dm_notes Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

// Repository defines the interface for DM notes storage operations
type Repository interface {
	// Put creates or replaces the notes for a character
	// Returns errors.InvalidArgument for nil notes or an empty character ID
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Get retrieves the notes for a character
	// Returns errors.NotFound if there are none
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the notes for a character
	// Returns errors.NotFound if there are none
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// PutInput contains the notes to store
type PutInput struct {
	Notes *dnd5e.DMNotes
}

// PutOutput contains the stored notes
type PutOutput struct {
	Notes *dnd5e.DMNotes
}

// GetInput contains parameters for retrieving notes
type GetInput struct {
	CharacterID string
}

// GetOutput contains the retrieved notes
type GetOutput struct {
	Notes *dnd5e.DMNotes
}

// DeleteInput contains parameters for deleting notes
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput is empty
type DeleteOutput struct{}
