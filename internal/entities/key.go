package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Ref names a stored entity by type and id without loading it
type Ref struct {
	Type string
	ID   string
}

// GetID returns the referenced ID
func (r Ref) GetID() string {
	return r.ID
}

// GetType returns the referenced entity type
func (r Ref) GetType() string {
	return r.Type
}

var _ core.Entity = Ref{}

// CharacterRef refers to the character with the given ID
func CharacterRef(id string) Ref {
	return Ref{Type: EntityTypeCharacter, ID: id}
}

// CampaignRef refers to the campaign with the given ID
func CampaignRef(id string) Ref {
	return Ref{Type: EntityTypeCampaign, ID: id}
}

// Key returns the storage key for an entity, "<type>:<id>".
func Key(e core.Entity) string {
	return e.GetType() + ":" + e.GetID()
}
