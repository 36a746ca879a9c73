package formats_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/testutils"
)

type CSVAdapterTestSuite struct {
	formatSuite
}

func (s *CSVAdapterTestSuite) TestMinimalRow() {
	c := s.parse("name,level,str\n\"Aria\",5,17\n")

	s.Equal("Aria", c.Name)
	s.Equal(5, c.Level)
	s.Equal(entities.AbilityScores{
		Strength: 17, Dexterity: 10, Constitution: 10,
		Intelligence: 10, Wisdom: 10, Charisma: 10,
	}, c.AbilityScores)
}

func (s *CSVAdapterTestSuite) TestFullDocument() {
	c := s.parse(testutils.CSVFull)

	// only the first data row is read
	s.Equal(testutils.TestCharacterName, c.Name)
	s.Equal(5, c.Level)
	s.Equal("Dwarf", c.Race)
	s.Equal("Fighter", c.Class)
	s.Equal(16, c.AbilityScores.Strength)
	s.Equal(14, c.AbilityScores.Charisma)
	s.Equal(entities.Points{Current: 38, Max: 44}, c.HitPoints)
	s.Equal(entities.DefaultPointPool(), c.ManaPoints)
	s.Equal("King under the Mountain", c.Backstory)
	s.Equal(formats.NotesCSV, c.Notes)
}

func (s *CSVAdapterTestSuite) TestHeaders() {
	s.Run("headers are case insensitive", func() {
		c := s.parse("Name,LEVEL,Strength\nAria,2,15\n")
		s.Equal(2, c.Level)
		s.Equal(15, c.AbilityScores.Strength)
	})

	s.Run("short rows leave missing columns defaulted", func() {
		c := s.parse("name,level,dex\nAria\n")
		s.Equal("Aria", c.Name)
		s.Equal(1, c.Level)
		s.Equal(10, c.AbilityScores.Dexterity)
	})

	s.Run("quoted values with commas", func() {
		c := s.parse("name,backstory\nAria,\"born, raised, lost\"\n")
		s.Equal("born, raised, lost", c.Backstory)
	})

	s.Run("leading byte order mark is ignored", func() {
		c := s.parse("\ufeffname,level,str\nAria,5,17\n")
		s.Equal("Aria", c.Name)
		s.Equal(5, c.Level)
		s.Equal(17, c.AbilityScores.Strength)
	})

	s.Run("byte order mark before a quoted header", func() {
		c := s.parse("\ufeff\"Name\",level\n\"Aria\",3\n")
		s.Equal("Aria", c.Name)
		s.Equal(3, c.Level)
	})
}

func (s *CSVAdapterTestSuite) TestBlankCells() {
	s.Run("blank long form falls through to short form", func() {
		c := s.parse("name,level,strength,str\nAria,5,,17\n")
		s.Equal(17, c.AbilityScores.Strength)
	})

	s.Run("whitespace cell counts as blank", func() {
		c := s.parse("name,race,species\nAria,  ,Elf\n")
		s.Equal("Elf", c.Race)
	})

	s.Run("blank cell with no alias takes the default", func() {
		c := s.parse("name,level,hp\nAria,,\n")
		s.Equal(entities.DefaultLevel, c.Level)
		s.Equal(entities.DefaultPointPool(), c.HitPoints)
	})

	s.Run("blank name column falls through to character column", func() {
		c := s.parse("name,character\n,Aria\n")
		s.Equal("Aria", c.Name)
	})

	s.Run("blank name everywhere is fatal", func() {
		ie := s.reject("name,level\n  ,3\n")
		s.Equal(errors.KindValidation, ie.Kind)
		s.Equal("name", ie.Field)
	})

	s.Run("repeated header keeps the first column even when blank", func() {
		c := s.parse("name,str,str\nAria,,12\n")
		s.Equal(entities.DefaultAbilityScore, c.AbilityScores.Strength)
	})
}

func TestCSVAdapterTestSuite(t *testing.T) {
	suite.Run(t, &CSVAdapterTestSuite{formatSuite{format: formats.FormatCSV}})
}
