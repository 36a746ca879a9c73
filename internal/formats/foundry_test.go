package formats_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/testutils"
)

type FoundryAdapterTestSuite struct {
	formatSuite
}

func (s *FoundryAdapterTestSuite) TestFullDocument() {
	c := s.parse(testutils.FoundryFull)

	s.Equal(testutils.TestCharacterName, c.Name)
	s.Equal(5, c.Level)
	s.Equal(entities.CharacterTypePC, c.CharacterType)
	s.Equal("Dwarf", c.Race)
	s.Equal("Fighter", c.Class)
	s.Equal(entities.AbilityScores{
		Strength: 16, Dexterity: 12, Constitution: 15,
		Intelligence: 9, Wisdom: 11, Charisma: 14,
	}, c.AbilityScores)
	s.Equal(entities.Points{Current: 38, Max: 44}, c.HitPoints)
	s.Equal(entities.DefaultPointPool(), c.ManaPoints)
	s.Equal([]entities.Skill{
		{Name: "Athletics", Level: 2},
		{Name: "prc", Level: 1},
	}, c.Skills)
	s.Equal([]entities.Equipment{
		{Name: "Chain Mail", Type: "equipment", Description: "heavy armor", Quantity: 1},
		{Name: "Rope", Type: "equipment", Quantity: 1},
	}, c.Equipment)
	s.Equal([]entities.Ability{
		{Name: "Second Wind", Description: "heal", Kind: "feat"},
		{Name: "Light", Kind: "spell"},
	}, c.Abilities)
	s.Equal("King under the Mountain", c.Backstory)
	s.Equal("Proud", c.Personality)
	s.Equal("Reclaim Erebor", c.Goals)
	s.Equal(formats.NotesFoundry, c.Notes)
	s.Equal(strPtr("tokens/thorin.webp"), c.ImageURL)
}

func (s *FoundryAdapterTestSuite) TestMissingBranches() {
	testCases := []struct {
		name string
		raw  string
	}{
		{name: "data is a string", raw: `{"name": "Aria", "data": "oops"}`},
		{name: "abilities without values", raw: `{"name": "Aria", "data": {"abilities": {"str": {}, "dex": null}}}`},
		{name: "items is an object", raw: `{"name": "Aria", "items": {"type": "equipment"}}`},
		{name: "skills is an array", raw: `{"name": "Aria", "data": {"skills": [1, 2]}}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c := s.parse(tc.raw)
			s.Equal(entities.DefaultAbilityScores(), c.AbilityScores)
			s.Equal(entities.DefaultPointPool(), c.HitPoints)
			s.Empty(c.Skills)
			s.Empty(c.Equipment)
			s.Empty(c.Abilities)
		})
	}
}

func (s *FoundryAdapterTestSuite) TestSkillLevels() {
	s.Run("missing value takes the shared default", func() {
		c := s.parse(`{"name": "Aria", "data": {"skills": {"ste": {"label": "Stealth"}}}}`)
		s.Equal([]entities.Skill{{Name: "Stealth", Level: entities.DefaultSkillLevel}}, c.Skills)
	})

	s.Run("explicit zero is kept", func() {
		c := s.parse(`{"name": "Aria", "data": {"skills": {"ste": {"label": "Stealth", "value": 0}}}}`)
		s.Equal([]entities.Skill{{Name: "Stealth", Level: 0}}, c.Skills)
	})
}

func (s *FoundryAdapterTestSuite) TestActorType() {
	c := s.parse(`{"name": "Goblin", "type": "npc"}`)
	s.Equal(entities.CharacterTypeNPC, c.CharacterType)
}

func TestFoundryAdapterTestSuite(t *testing.T) {
	suite.Run(t, &FoundryAdapterTestSuite{formatSuite{format: formats.FormatFoundry}})
}
