// Package player provides the interface for adventure record persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/firetop/gamebook-api/internal/repositories/player Repository

import (
	"context"

	"github.com/firetop/gamebook-api/internal/entities/gamebook"
)

// Repository defines the interface for player record persistence
type Repository interface {
	// Get retrieves a player record by player ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if no record exists
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or overwrites a player record. Each player has at
	// most one running adventure, so Save is an upsert.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a player record, abandoning the adventure
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if no record exists
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a player record
type GetInput struct {
	PlayerID string
}

// GetOutput defines the output for getting a player record
type GetOutput struct {
	Record *gamebook.PlayerRecord
}

// SaveInput defines the input for saving a player record
type SaveInput struct {
	Record *gamebook.PlayerRecord
}

// SaveOutput defines the output for saving a player record
type SaveOutput struct {
	Record *gamebook.PlayerRecord
}

// DeleteInput defines the input for deleting a player record
type DeleteInput struct {
	PlayerID string
}

// DeleteOutput defines the output for deleting a player record
type DeleteOutput struct{}
