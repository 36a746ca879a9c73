// Package formats converts character-sheet exports from other tabletop tools
// into entities.Character. Each supported source schema has one Adapter.
//
// Adapters never return a Go error for bad input. Fatal problems come back as
// errors.ImportErrors alongside a nil character; every other missing or
// unusable field is silently defaulted.
package formats

import (
	"fmt"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/clock"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/pkg/idgen"
)

//go:generate mockgen -destination=mock/mock_adapter.go -package=formatsmock github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/formats Adapter

// Adapter turns raw source text into a canonical character.
// Exactly one of the return values is non-empty.
type Adapter interface {
	Parse(raw string) (*entities.Character, errors.ImportErrors)
}

// Config holds the dependencies shared by every adapter
type Config struct {
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

// New returns the adapter for f.
func New(f Format, cfg *Config) (Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid adapter config")
	}

	base := base{ids: cfg.IDGenerator, clock: cfg.Clock}
	switch f {
	case FormatJSON:
		return &JSONAdapter{base: base}, nil
	case FormatXML:
		return &xmlAdapter{base: base}, nil
	case FormatFoundry:
		return &foundryAdapter{base: base}, nil
	case FormatSheetHost:
		return &sheetHostAdapter{base: base}, nil
	case FormatDNDBeyond:
		return &dndBeyondAdapter{base: base}, nil
	case FormatCSV:
		return &csvAdapter{base: base}, nil
	default:
		return nil, errors.InvalidArgumentf("unsupported format %q", f.String())
	}
}

// NewJSON returns the generic JSON adapter. It is exported on its own because
// campaign import reuses its object mapping for embedded characters.
func NewJSON(cfg *Config) (*JSONAdapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid adapter config")
	}
	return &JSONAdapter{base: base{ids: cfg.IDGenerator, clock: cfg.Clock}}, nil
}

// Provenance strings written to Character.Notes
const (
	NotesJSON      = "Imported from JSON"
	NotesXML       = "Imported from XML character sheet"
	NotesFoundry   = "Imported from Foundry VTT"
	NotesSheetHost = "Imported from character sheet host"
	NotesDNDBeyond = "Imported from D&D Beyond"
	NotesCSV       = "Imported from CSV"
)

type base struct {
	ids   idgen.Generator
	clock clock.Clock
}

// newCharacter stamps a defaulted character. An empty id draws a fresh one.
func (b base) newCharacter(id, name string) *entities.Character {
	if id == "" {
		id = b.ids.Generate()
	}
	return entities.NewCharacter(id, name, b.clock.Now())
}

func fail(e errors.ImportError) (*entities.Character, errors.ImportErrors) {
	return nil, errors.ImportErrors{e}
}

func nameRequired(field string) errors.ImportError {
	return errors.NewValidationFieldError(field, fmt.Sprintf("%s is required", field))
}
