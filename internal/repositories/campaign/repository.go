// Package campaign provides the interface for campaign persistence. Import
// consults it to detect id collisions.
package campaign

//go:generate mockgen -destination=mock/mock_repository.go -package=campaignmock github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/campaign Repository

import (
	"context"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
)

// Repository defines the interface for campaign persistence
type Repository interface {
	// Create stores a new campaign
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a campaign with the same ID exists
	// Storage failures carry CodeInternal
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a campaign by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the campaign doesn't exist
	// Storage failures carry CodeInternal
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Exists reports whether a campaign with the ID is stored
	// Returns errors.InvalidArgument for empty IDs
	// Storage failures carry CodeInternal
	Exists(ctx context.Context, input ExistsInput) (*ExistsOutput, error)

	// List returns every stored campaign ordered by ID
	// Storage failures carry CodeInternal
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a campaign by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the campaign doesn't exist
	// Storage failures carry CodeInternal
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a campaign
type CreateInput struct {
	Campaign *entities.Campaign
}

// CreateOutput defines the output for creating a campaign
type CreateOutput struct {
	Campaign *entities.Campaign
}

// GetInput defines the input for getting a campaign
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a campaign
type GetOutput struct {
	Campaign *entities.Campaign
}

// ExistsInput defines the input for an existence check
type ExistsInput struct {
	ID string
}

// ExistsOutput defines the output for an existence check
type ExistsOutput struct {
	Exists bool
}

// ListInput defines the input for listing campaigns
type ListInput struct{}

// ListOutput defines the output for listing campaigns
type ListOutput struct {
	Campaigns []*entities.Campaign
}

// DeleteInput defines the input for deleting a campaign
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a campaign
type DeleteOutput struct{}
