// Package character provides the interface for imported character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/character Repository

import (
	"context"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character, optionally filed under a campaign
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if character with same ID exists
	// Storage failures carry CodeInternal
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	// Storage failures carry CodeInternal
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete deletes a character by ID and drops it from its campaign index
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if character doesn't exist
	// Storage failures carry CodeInternal
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByCampaignID retrieves all characters filed under a campaign
	// Returns errors.InvalidArgument for empty campaign IDs
	// Storage failures carry CodeInternal
	ListByCampaignID(ctx context.Context, input ListByCampaignIDInput) (*ListByCampaignIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character  *entities.Character
	CampaignID string // Optional
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character  *entities.Character
	CampaignID string
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListByCampaignIDInput defines the input for listing characters by campaign
type ListByCampaignIDInput struct {
	CampaignID string
}

// ListByCampaignIDOutput defines the output for listing characters by campaign
type ListByCampaignIDOutput struct {
	Characters []*entities.Character
}
