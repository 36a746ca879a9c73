package formats_test

import (
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats"
	mockclock "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/clock/mock"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/idgen"
)

// formatSuite is embedded by the per-format suites. Each test and subtest
// gets a fresh adapter with a sequential id generator and a clock fixed at
// testNow.
type formatSuite struct {
	suite.Suite
	format    formats.Format
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	adapter   formats.Adapter
}

func (s *formatSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.mockClock.EXPECT().Now().Return(testNow).AnyTimes()
	s.adapter = s.newAdapter()
}

func (s *formatSuite) SetupSubTest() {
	s.adapter = s.newAdapter()
}

func (s *formatSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newAdapter builds an adapter whose id sequence starts over at char_1
func (s *formatSuite) newAdapter() formats.Adapter {
	a, err := formats.New(s.format, &formats.Config{
		IDGenerator: idgen.NewSequential("char"),
		Clock:       s.mockClock,
	})
	s.Require().NoError(err)
	return a
}

// parse expects raw to import cleanly
func (s *formatSuite) parse(raw string) *entities.Character {
	c, errs := s.adapter.Parse(raw)
	s.Require().Empty(errs)
	s.Require().NotNil(c)
	return c
}

// reject expects raw to fail with a single error
func (s *formatSuite) reject(raw string) errors.ImportError {
	c, errs := s.adapter.Parse(raw)
	s.Nil(c)
	s.Require().Len(errs, 1)
	return errs[0]
}

func strPtr(s string) *string {
	return &s
}
