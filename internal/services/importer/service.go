// Package importer defines the interface for character and campaign import
package importer

//go:generate mockgen -destination=mock/mock_service.go -package=importermock github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/services/importer Service

import (
	"context"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats"
)

// Service defines the import operations.
//
// Bad input never produces a Go error. It is reported through the Errors
// field of the output next to a nil result. A returned error means the call
// itself was malformed, such as a nil input.
type Service interface {
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)
	ImportCampaign(ctx context.Context, input *ImportCampaignInput) (*ImportCampaignOutput, error)
	DetectFormat(filename string) formats.Format
}

// ImportCharacterInput defines the request for importing one character
type ImportCharacterInput struct {
	Raw      string
	Format   formats.Format // Optional, detected from Filename when unset
	Filename string         // Optional
}

// ImportCharacterOutput defines the response for importing one character.
// Exactly one of Character and Errors is set.
type ImportCharacterOutput struct {
	Character *entities.Character
	Format    formats.Format
	Errors    errors.ImportErrors
}

// ImportCampaignInput defines the request for importing a campaign
type ImportCampaignInput struct {
	Raw string
}

// ImportCampaignOutput defines the response for importing a campaign.
// Renamed is set when the source id collided with a stored campaign.
type ImportCampaignOutput struct {
	Campaign *entities.Campaign
	Renamed  bool
	Errors   errors.ImportErrors
}
