// Package entities provides the canonical data structures every importer
// normalizes into.
package entities

import (
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Canonical defaults applied when a source omits or garbles a field.
const (
	DefaultLevel        = 1
	DefaultAbilityScore = 10
	DefaultPoints       = 10
	DefaultQuantity     = 1
	DefaultSkillLevel   = 1
	DefaultRace         = "人間"
	DefaultClass        = "冒険者"

	// EntityTypeCharacter is the core.Entity type for characters
	EntityTypeCharacter = "character"
)

// CharacterType distinguishes player characters from NPCs and enemies
type CharacterType string

// Character types
const (
	CharacterTypePC    CharacterType = "PC"
	CharacterTypeNPC   CharacterType = "NPC"
	CharacterTypeEnemy CharacterType = "Enemy"
)

// ParseCharacterType maps a loosely written type to a CharacterType, defaulting to PC.
func ParseCharacterType(s string) CharacterType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "npc":
		return CharacterTypeNPC
	case "enemy", "monster":
		return CharacterTypeEnemy
	default:
		return CharacterTypePC
	}
}

// Character is the normalized character every adapter produces.
// NOTE: data only. Adapters own defaulting; nothing here recomputes values.
type Character struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Level         int           `json:"level"`
	CharacterType CharacterType `json:"characterType"`
	Race          string        `json:"race"`
	Class         string        `json:"class"`
	AbilityScores AbilityScores `json:"abilityScores"`
	HitPoints     Points        `json:"hitPoints"`
	ManaPoints    Points        `json:"manaPoints"`
	Skills        []Skill       `json:"skills"`
	Equipment     []Equipment   `json:"equipment"`
	Abilities     []Ability     `json:"abilities"`
	Backstory     string        `json:"backstory"`
	Personality   string        `json:"personality"`
	Goals         string        `json:"goals"`
	Notes         string        `json:"notes"`
	ImageURL      *string       `json:"imageUrl,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int `json:"STR"`
	Dexterity    int `json:"DEX"`
	Constitution int `json:"CON"`
	Intelligence int `json:"INT"`
	Wisdom       int `json:"WIS"`
	Charisma     int `json:"CHA"`
}

// DefaultAbilityScores returns all six scores at DefaultAbilityScore
func DefaultAbilityScores() AbilityScores {
	return AbilityScores{
		Strength:     DefaultAbilityScore,
		Dexterity:    DefaultAbilityScore,
		Constitution: DefaultAbilityScore,
		Intelligence: DefaultAbilityScore,
		Wisdom:       DefaultAbilityScore,
		Charisma:     DefaultAbilityScore,
	}
}

// Points is a current/max resource pool such as hit points
type Points struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// DefaultPointPool returns {DefaultPoints, DefaultPoints}
func DefaultPointPool() Points {
	return Points{Current: DefaultPoints, Max: DefaultPoints}
}

// Skill is a named proficiency
type Skill struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// Equipment is an inventory entry
type Equipment struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// Ability is a feat, spell, or other special capability
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// NewCharacter returns a character with every field at its canonical default.
// Lists are empty, never nil.
func NewCharacter(id, name string, now time.Time) *Character {
	return &Character{
		ID:            id,
		Name:          name,
		Level:         DefaultLevel,
		CharacterType: CharacterTypePC,
		Race:          DefaultRace,
		Class:         DefaultClass,
		AbilityScores: DefaultAbilityScores(),
		HitPoints:     DefaultPointPool(),
		ManaPoints:    DefaultPointPool(),
		Skills:        []Skill{},
		Equipment:     []Equipment{},
		Abilities:     []Ability{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// GetID returns the character's ID
func (c *Character) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

var _ core.Entity = (*Character)(nil)
