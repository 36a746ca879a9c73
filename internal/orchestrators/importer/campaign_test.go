package importer_test

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/campaign"
	importersvc "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/services/importer"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/testutils"
)

func (s *OrchestratorTestSuite) importCampaign(raw string) *importersvc.ImportCampaignOutput {
	out, err := s.orchestrator.ImportCampaign(s.ctx, &importersvc.ImportCampaignInput{Raw: raw})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestImportCampaign() {
	s.Run("nil input", func() {
		_, err := s.orchestrator.ImportCampaign(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("new id is kept", func() {
		s.mockCampaignRepo.EXPECT().
			Exists(s.ctx, campaign.ExistsInput{ID: "campaign_erebor"}).
			Return(&campaign.ExistsOutput{Exists: false}, nil)

		out := s.importCampaign(testutils.CampaignJSON)
		s.Empty(out.Errors)
		s.False(out.Renamed)
		s.Require().NotNil(out.Campaign)

		c := out.Campaign
		s.Equal("campaign_erebor", c.ID)
		s.Equal("Quest for Erebor", c.Title)
		s.Equal("Reclaim the Lonely Mountain", c.Description)
		s.Equal("D&D 5e", c.GameSystem)
		s.Require().Len(c.Characters, 2)
		s.Equal("Thorin Oakenshield", c.Characters[0].Name)
		s.Equal(5, c.Characters[0].Level)
		s.Equal("Hobbit", c.Characters[1].Race)
		s.Equal(entities.DefaultAbilityScores(), c.Characters[1].AbilityScores)

		date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		s.Equal([]entities.Session{{
			ID:            "s1",
			Title:         "An Unexpected Party",
			SessionNumber: 1,
			Date:          &date,
			Summary:       "Dwarves arrive",
		}}, c.Sessions)
		s.Equal(testNow, c.CreatedAt)
		s.Equal(testNow, c.UpdatedAt)
	})

	s.Run("colliding id is replaced and title marked", func() {
		s.mockCampaignRepo.EXPECT().
			Exists(s.ctx, campaign.ExistsInput{ID: "campaign_erebor"}).
			Return(&campaign.ExistsOutput{Exists: true}, nil)

		out := s.importCampaign(testutils.CampaignJSON)
		s.Empty(out.Errors)
		s.True(out.Renamed)
		s.Require().NotNil(out.Campaign)
		s.NotEqual("campaign_erebor", out.Campaign.ID)
		s.NotEmpty(out.Campaign.ID)
		s.Equal("Quest for Erebor (imported)", out.Campaign.Title)
	})

	s.Run("missing id is generated without a store lookup", func() {
		out := s.importCampaign(`{"title": "One Shot", "gameSystem": "CoC"}`)
		s.Empty(out.Errors)
		s.Require().NotNil(out.Campaign)
		s.NotEmpty(out.Campaign.ID)
		s.Equal("One Shot", out.Campaign.Title)
		s.Equal([]entities.Character{}, out.Campaign.Characters)
		s.Equal([]entities.Session{}, out.Campaign.Sessions)
	})

	s.Run("store failure withholds the campaign", func() {
		s.mockCampaignRepo.EXPECT().
			Exists(gomock.Any(), gomock.Any()).
			Return(nil, errors.New(errors.CodeUnavailable, "connection refused"))

		out := s.importCampaign(testutils.CampaignJSON)
		s.Nil(out.Campaign)
		s.Require().Len(out.Errors, 1)
		s.Equal(errors.KindStore, out.Errors[0].Kind)
		s.Equal(errors.FieldStore, out.Errors[0].Field)
		s.Contains(out.Errors[0].Message, "connection refused")
	})
}

func (s *OrchestratorTestSuite) TestImportCampaignRejections() {
	testCases := []struct {
		name       string
		raw        string
		wantKind   errors.Kind
		wantFields []string
	}{
		{
			name:       "invalid JSON",
			raw:        `{"title": `,
			wantKind:   errors.KindParse,
			wantFields: []string{"format"},
		},
		{
			name:       "not an object",
			raw:        `[{"title": "x"}]`,
			wantKind:   errors.KindSchema,
			wantFields: []string{"format"},
		},
		{
			name:       "missing title",
			raw:        `{"gameSystem": "D&D 5e"}`,
			wantKind:   errors.KindValidation,
			wantFields: []string{"title"},
		},
		{
			name:       "blank title and numeric game system",
			raw:        `{"title": "  ", "gameSystem": 5}`,
			wantKind:   errors.KindValidation,
			wantFields: []string{"gameSystem", "title"},
		},
		{
			name:       "characters not an array",
			raw:        `{"title": "T", "gameSystem": "G", "characters": {"name": "Aria"}}`,
			wantKind:   errors.KindValidation,
			wantFields: []string{"characters"},
		},
		{
			name:       "sessions not an array",
			raw:        `{"title": "T", "gameSystem": "G", "sessions": "weekly"}`,
			wantKind:   errors.KindValidation,
			wantFields: []string{"sessions"},
		},
		{
			name:       "nameless character is tagged by index",
			raw:        `{"title": "T", "gameSystem": "G", "characters": [{"name": "Aria"}, {"level": 3}]}`,
			wantKind:   errors.KindValidation,
			wantFields: []string{"characters[1].name"},
		},
		{
			name:       "non object character",
			raw:        `{"title": "T", "gameSystem": "G", "characters": ["Aria"]}`,
			wantKind:   errors.KindValidation,
			wantFields: []string{"characters[0]"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out := s.importCampaign(tc.raw)
			s.Nil(out.Campaign)
			s.Equal(tc.wantFields, out.Errors.Fields())
			for _, ie := range out.Errors {
				s.Equal(tc.wantKind, ie.Kind)
			}
		})
	}
}

func (s *OrchestratorTestSuite) TestImportCampaignMessages() {
	out := s.importCampaign(`{"gameSystem": "G", "characters": 3}`)
	s.Nil(out.Campaign)
	s.Equal(errors.ImportErrors{
		errors.NewValidationFieldError("characters", "characters must be an array"),
		errors.NewValidationFieldError("title", "title is required"),
	}, out.Errors)
}
