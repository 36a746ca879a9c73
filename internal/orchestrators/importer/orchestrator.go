// Package importer implements the import orchestrator
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/clock"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/idgen"
	campaignrepo "github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/repositories/campaign"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/services/importer"
)

// Config holds the dependencies for the import orchestrator
type Config struct {
	CharacterIDGenerator idgen.Generator
	CampaignIDGenerator  idgen.Generator
	Clock                clock.Clock
	CampaignRepo         campaignrepo.Repository

	// Adapters replaces the built-in adapter for the given formats. Optional.
	Adapters map[formats.Format]formats.Adapter
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterIDGenerator == nil {
		vb.RequiredField("CharacterIDGenerator")
	}
	if c.CampaignIDGenerator == nil {
		vb.RequiredField("CampaignIDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.CampaignRepo == nil {
		vb.RequiredField("CampaignRepo")
	}
	for f, a := range c.Adapters {
		if a == nil {
			vb.Fieldf("Adapters", "adapter for %s is nil", f)
		}
	}

	return vb.Build()
}

// Orchestrator implements the importer.Service interface.
// It holds only immutable dependencies and is safe for concurrent use.
type Orchestrator struct {
	adapters     map[formats.Format]formats.Adapter
	json         *formats.JSONAdapter
	campaignIDs  idgen.Generator
	clock        clock.Clock
	campaignRepo campaignrepo.Repository
}

// New creates a new import orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	adapterCfg := &formats.Config{
		IDGenerator: cfg.CharacterIDGenerator,
		Clock:       cfg.Clock,
	}

	adapters := make(map[formats.Format]formats.Adapter, len(formats.Formats()))
	for _, f := range formats.Formats() {
		a, err := formats.New(f, adapterCfg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build %s adapter", f)
		}
		adapters[f] = a
	}
	for f, a := range cfg.Adapters {
		adapters[f] = a
	}

	jsonAdapter, err := formats.NewJSON(adapterCfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build campaign character adapter")
	}

	return &Orchestrator{
		adapters:     adapters,
		json:         jsonAdapter,
		campaignIDs:  cfg.CampaignIDGenerator,
		clock:        cfg.Clock,
		campaignRepo: cfg.CampaignRepo,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ importer.Service = (*Orchestrator)(nil)

// DetectFormat guesses a format from a file name
func (o *Orchestrator) DetectFormat(filename string) formats.Format {
	return formats.Detect(filename)
}

// ImportCharacter dispatches raw text to the adapter for its format and
// returns the adapter's result unchanged.
func (o *Orchestrator) ImportCharacter(
	ctx context.Context,
	input *importer.ImportCharacterInput,
) (*importer.ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	format := input.Format
	if format == formats.FormatUnknown {
		format = o.DetectFormat(input.Filename)
		slog.DebugContext(ctx, "detected import format",
			"filename", input.Filename,
			"format", format.String())
	}

	adapter, ok := o.adapters[format]
	if !ok {
		return &importer.ImportCharacterOutput{
			Format: format,
			Errors: errors.ImportErrors{
				errors.NewParseError(errors.FieldFormat, "unsupported format"),
			},
		}, nil
	}

	character, errs := o.parse(ctx, format, adapter, input.Raw)
	if len(errs) > 0 {
		slog.InfoContext(ctx, "character import rejected",
			"format", format.String(),
			"errors", len(errs),
			"fields", errs.Fields())
		return &importer.ImportCharacterOutput{Format: format, Errors: errs}, nil
	}

	slog.DebugContext(ctx, "character imported",
		"format", format.String(),
		"character_id", character.ID,
		"name", character.Name)

	return &importer.ImportCharacterOutput{Character: character, Format: format}, nil
}

// parse runs the adapter, turning a panic or a broken result into a format
// error so no fault escapes to the caller.
func (o *Orchestrator) parse(
	ctx context.Context,
	format formats.Format,
	adapter formats.Adapter,
	raw string,
) (character *entities.Character, errs errors.ImportErrors) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "adapter panicked",
				"format", format.String(),
				"panic", fmt.Sprint(r))
			character = nil
			errs = errors.ImportErrors{
				errors.NewParseError(errors.FieldFormat, fmt.Sprintf("%s import failed unexpectedly", format)),
			}
		}
	}()

	character, errs = adapter.Parse(raw)
	switch {
	case len(errs) > 0:
		return nil, errs
	case character == nil:
		return nil, errors.ImportErrors{
			errors.NewParseError(errors.FieldFormat, fmt.Sprintf("%s import produced no character", format)),
		}
	default:
		return character, nil
	}
}
