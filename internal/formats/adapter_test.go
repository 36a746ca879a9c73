package formats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats"
	mockclock "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/clock/mock"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/idgen"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/testutils"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type AdapterTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	cfg       *formats.Config
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.mockClock.EXPECT().Now().Return(testNow).AnyTimes()
	s.cfg = &formats.Config{
		IDGenerator: idgen.NewSequential("char"),
		Clock:       s.mockClock,
	}
}

func (s *AdapterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AdapterTestSuite) adapter(name string) formats.Adapter {
	f, ok := formats.ParseFormat(name)
	s.Require().True(ok, name)
	a, err := formats.New(f, s.cfg)
	s.Require().NoError(err)
	return a
}

func (s *AdapterTestSuite) TestNew() {
	s.Run("nil config returns error", func() {
		_, err := formats.New(formats.FormatJSON, nil)
		s.Error(err)
		s.Contains(err.Error(), "config is required")
	})

	s.Run("missing dependencies are reported", func() {
		_, err := formats.New(formats.FormatJSON, &formats.Config{})
		s.Error(err)
		s.Contains(err.Error(), "IDGenerator")
		s.Contains(err.Error(), "Clock")
	})

	s.Run("unknown format is rejected", func() {
		_, err := formats.New(formats.FormatUnknown, s.cfg)
		s.Error(err)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("every format has an adapter", func() {
		for _, f := range formats.Formats() {
			a, err := formats.New(f, s.cfg)
			s.NoError(err, f.String())
			s.NotNil(a, f.String())
		}
	})

	s.Run("NewJSON validates config", func() {
		_, err := formats.NewJSON(&formats.Config{Clock: s.mockClock})
		s.Error(err)
	})
}

func (s *AdapterTestSuite) TestMinimalDocumentYieldsDefaults() {
	for name, raw := range testutils.MinimalDocuments {
		s.Run(name, func() {
			c, errs := s.adapter(name).Parse(raw)
			s.Require().Empty(errs)
			s.Require().NotNil(c)

			s.Equal("Aria", c.Name)
			s.NotEmpty(c.ID)
			s.Equal(entities.DefaultLevel, c.Level)
			s.Equal(entities.CharacterTypePC, c.CharacterType)
			s.Equal(entities.DefaultRace, c.Race)
			s.Equal(entities.DefaultClass, c.Class)
			s.Equal(entities.DefaultAbilityScores(), c.AbilityScores)
			s.Equal(entities.DefaultPointPool(), c.HitPoints)
			s.Equal(entities.DefaultPointPool(), c.ManaPoints)
			s.NotNil(c.Skills)
			s.Empty(c.Skills)
			s.NotNil(c.Equipment)
			s.Empty(c.Equipment)
			s.NotNil(c.Abilities)
			s.Empty(c.Abilities)
			s.Nil(c.ImageURL)
			s.NotEmpty(c.Notes)
			s.Equal(testNow, c.CreatedAt)
			s.Equal(testNow, c.UpdatedAt)
		})
	}
}

func (s *AdapterTestSuite) TestMissingNameIsFatal() {
	for name, raw := range testutils.NamelessDocuments {
		s.Run(name, func() {
			c, errs := s.adapter(name).Parse(raw)
			s.Nil(c)
			s.Require().Len(errs, 1)
			s.Equal(errors.KindValidation, errs[0].Kind)

			wantField := "name"
			if name == "dndbeyond" {
				wantField = "data.name"
			}
			s.Equal(wantField, errs[0].Field)
			s.Contains(errs[0].Message, "required")
		})
	}
}

func (s *AdapterTestSuite) TestMalformedInputIsFatal() {
	for name, raw := range testutils.MalformedDocuments {
		s.Run(name, func() {
			c, errs := s.adapter(name).Parse(raw)
			s.Nil(c)
			s.Require().Len(errs, 1)
			s.Equal(errors.KindParse, errs[0].Kind)
			s.Equal(errors.FieldFormat, errs[0].Field)
		})
	}
}

func (s *AdapterTestSuite) TestEmptyInputIsFatal() {
	for _, f := range formats.Formats() {
		s.Run(f.String(), func() {
			a, err := formats.New(f, s.cfg)
			s.Require().NoError(err)
			c, errs := a.Parse("")
			s.Nil(c)
			s.NotEmpty(errs)
		})
	}
}

func (s *AdapterTestSuite) TestRepeatedParseIsStable() {
	docs := map[string]string{
		"json":      testutils.GenericJSONFull,
		"xml":       testutils.XMLFull,
		"foundry":   testutils.FoundryFull,
		"sheethost": testutils.SheetHostFull,
		"dndbeyond": testutils.DNDBeyondFull,
		"csv":       testutils.CSVFull,
	}

	for name, raw := range docs {
		s.Run(name, func() {
			a := s.adapter(name)
			first, errs := a.Parse(raw)
			s.Require().Empty(errs)
			second, errs := a.Parse(raw)
			s.Require().Empty(errs)

			first.ID, second.ID = "", ""
			first.UpdatedAt, second.UpdatedAt = time.Time{}, time.Time{}
			s.Equal(first, second)
		})
	}
}

func TestAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}
