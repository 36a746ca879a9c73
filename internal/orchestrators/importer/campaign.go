package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tidwall/gjson"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/coerce"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	campaignrepo "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/campaign"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/services/importer"
)

// ImportCampaign validates a campaign document, normalizes its characters
// and resolves id collisions against the campaign store.
func (o *Orchestrator) ImportCampaign(
	ctx context.Context,
	input *importer.ImportCampaignInput,
) (*importer.ImportCampaignOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rejected := func(errs errors.ImportErrors) (*importer.ImportCampaignOutput, error) {
		slog.InfoContext(ctx, "campaign import rejected",
			"errors", len(errs),
			"fields", errs.Fields())
		return &importer.ImportCampaignOutput{Errors: errs}, nil
	}

	if !gjson.Valid(input.Raw) {
		return rejected(errors.ImportErrors{errors.NewParseError(errors.FieldFormat, "invalid JSON")})
	}
	doc := gjson.Parse(input.Raw)
	if !doc.IsObject() {
		return rejected(errors.ImportErrors{errors.NewSchemaError(errors.FieldFormat, "document must be a JSON object")})
	}
	m := coerce.Map(doc.Value())

	errs := validateCampaign(m)
	characters, charErrs := o.campaignCharacters(m["characters"])
	errs = append(errs, charErrs...)
	if len(errs) > 0 {
		return rejected(errs)
	}

	now := o.clock.Now()
	c := &entities.Campaign{
		ID:          coerce.StringOr(m["id"], ""),
		Title:       coerce.StringOr(m["title"], ""),
		Description: coerce.StringOr(m["description"], ""),
		GameSystem:  coerce.StringOr(m["gameSystem"], ""),
		Characters:  characters,
		Sessions:    coerce.ListOr(m["sessions"], sessionFrom, []entities.Session{}),
		CreatedAt:   coerce.TimeOr(m["createdAt"], now),
		UpdatedAt:   now,
	}

	renamed, storeErr := o.resolveID(ctx, c)
	if storeErr != nil {
		return rejected(errors.ImportErrors{*storeErr})
	}

	slog.DebugContext(ctx, "campaign imported",
		"campaign_id", c.ID,
		"renamed", renamed,
		"characters", len(c.Characters),
		"sessions", len(c.Sessions))

	return &importer.ImportCampaignOutput{Campaign: c, Renamed: renamed}, nil
}

// validateCampaign checks required strings and array shapes. Missing or
// null arrays are allowed and become empty.
func validateCampaign(m map[string]any) errors.ImportErrors {
	vb := errors.NewValidationBuilder()
	for _, field := range []string{"title", "gameSystem"} {
		switch v := m[field].(type) {
		case nil:
			vb.RequiredField(field)
		case string:
			errors.ValidateRequired(field, v, vb)
		default:
			vb.Field(field, "must be a string")
		}
	}
	for _, field := range []string{"characters", "sessions"} {
		if raw := m[field]; raw != nil {
			if _, ok := raw.([]any); !ok {
				vb.Field(field, "must be an array")
			}
		}
	}
	return vb.ImportErrors()
}

// campaignCharacters maps each entry through the generic JSON mapping and
// nests its errors under characters[i].
func (o *Orchestrator) campaignCharacters(raw any) ([]entities.Character, errors.ImportErrors) {
	arr, _ := raw.([]any)
	characters := make([]entities.Character, 0, len(arr))
	var errs errors.ImportErrors
	for i, el := range arr {
		prefix := fmt.Sprintf("characters[%d]", i)
		obj := coerce.Map(el)
		if obj == nil {
			errs = append(errs, errors.NewValidationFieldError(prefix, prefix+" must be an object"))
			continue
		}
		c, cerrs := o.json.FromObject(obj)
		if len(cerrs) > 0 {
			errs = append(errs, cerrs.WithPrefix(prefix)...)
			continue
		}
		characters = append(characters, *c)
	}
	return characters, errs
}

func sessionFrom(raw any) entities.Session {
	m := coerce.Map(raw)
	s := entities.Session{
		ID:            coerce.StringOr(m["id"], ""),
		Title:         coerce.StringOr(m["title"], ""),
		SessionNumber: coerce.IntOr(m["sessionNumber"], 0),
		Summary:       coerce.StringOr(m["summary"], ""),
	}
	if date := coerce.TimeOr(m["date"], time.Time{}); !date.IsZero() {
		s.Date = &date
	}
	return s
}

// resolveID assigns an id when the source has none. When the id is already
// stored it draws a fresh one and marks the title as imported.
func (o *Orchestrator) resolveID(ctx context.Context, c *entities.Campaign) (bool, *errors.ImportError) {
	if c.ID == "" {
		c.ID = o.campaignIDs.Generate()
		return false, nil
	}

	out, err := o.campaignRepo.Exists(ctx, campaignrepo.ExistsInput{ID: c.ID})
	if err != nil {
		slog.ErrorContext(ctx, "campaign store unavailable during import",
			"campaign_id", c.ID,
			"error", err.Error())
		ie := errors.NewStoreError("could not check campaign id: " + errors.GetMessage(err))
		return false, &ie
	}
	if !out.Exists {
		return false, nil
	}

	original := c.ID
	c.ID = o.campaignIDs.Generate()
	c.Title += entities.ImportedTitleSuffix

	slog.InfoContext(ctx, "campaign id collided, importing as copy",
		"original_id", original,
		"campaign_id", c.ID)

	return true, nil
}
