package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

const (
	// EntityTypeCampaign is the core.Entity type for campaigns
	EntityTypeCampaign = "campaign"

	// ImportedTitleSuffix is appended to a campaign title whose id collided on import
	ImportedTitleSuffix = " (imported)"
)

// Campaign is an imported campaign with its roster and session log
type Campaign struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	GameSystem  string      `json:"gameSystem"`
	Characters  []Character `json:"characters"`
	Sessions    []Session   `json:"sessions"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Session is one play session in a campaign
type Session struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	SessionNumber int        `json:"sessionNumber"`
	Date          *time.Time `json:"date,omitempty"`
	Summary       string     `json:"summary"`
}

// GetID returns the campaign's ID
func (c *Campaign) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Campaign) GetType() string {
	return EntityTypeCampaign
}

var _ core.Entity = (*Campaign)(nil)
