package formats_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/testutils"
)

type XMLAdapterTestSuite struct {
	formatSuite
}

func (s *XMLAdapterTestSuite) TestFullDocument() {
	c := s.parse(testutils.XMLFull)

	s.Equal("char_1", c.ID)
	s.Equal(testutils.TestCharacterName, c.Name)
	s.Equal(5, c.Level)
	s.Equal("Dwarf", c.Race)
	s.Equal("Fighter", c.Class)
	s.Equal(entities.AbilityScores{
		Strength: 16, Dexterity: 12, Constitution: 15,
		Intelligence: 9, Wisdom: 11, Charisma: 14,
	}, c.AbilityScores)
	s.Equal(entities.Points{Current: 38, Max: 38}, c.HitPoints)
	s.Equal(entities.Points{Current: 4, Max: 4}, c.ManaPoints)
	s.Equal("King under the Mountain", c.Backstory)
	s.Equal("Proud", c.Personality)
	s.Equal("Reclaim Erebor", c.Goals)
	s.Equal(formats.NotesXML, c.Notes)
	s.Equal(testNow, c.CreatedAt)
}

func (s *XMLAdapterTestSuite) TestAlwaysGeneratesID() {
	raw := `<character id="keep-me"><data name="id">keep-me</data><data name="name">Aria</data></character>`

	first := s.parse(raw)
	second := s.parse(raw)

	s.Equal("char_1", first.ID)
	s.Equal("char_2", second.ID)
}

func (s *XMLAdapterTestSuite) TestEdgeCases() {
	s.Run("missing character element is a schema error", func() {
		ie := s.reject(`<sheet><data name="name">Aria</data></sheet>`)
		s.Equal(errors.KindSchema, ie.Kind)
		s.Equal(errors.FieldCharacter, ie.Field)
	})

	s.Run("nested character element is found", func() {
		c := s.parse(`<export><character><data name="name">Aria</data></character></export>`)
		s.Equal("Aria", c.Name)
	})

	s.Run("first data node for a name wins", func() {
		c := s.parse(`<character><data name="name">Aria</data><data name="name">Bree</data></character>`)
		s.Equal("Aria", c.Name)
	})

	s.Run("garbage numbers default", func() {
		c := s.parse(`<character><data name="name">Aria</data><data name="STR">n/a</data><data name="HP"></data></character>`)
		s.Equal(10, c.AbilityScores.Strength)
		s.Equal(entities.DefaultPointPool(), c.HitPoints)
	})

	s.Run("mismatched tags are a parse error", func() {
		c, errs := s.adapter.Parse(`<character><data name="name">Aria</character>`)
		s.Nil(c)
		s.Require().NotEmpty(errs)
		s.Equal(errors.FieldFormat, errs[0].Field)
	})
}

func TestXMLAdapterTestSuite(t *testing.T) {
	suite.Run(t, &XMLAdapterTestSuite{formatSuite{format: formats.FormatXML}})
}
