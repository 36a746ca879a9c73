package formats

import (
	"github.com/tidwall/gjson"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/coerce"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
)

// JSONAdapter reads the generic flat JSON schema, which mirrors the
// canonical character closely enough to carry id and createdAt through.
type JSONAdapter struct {
	base
}

// Parse implements Adapter
func (a *JSONAdapter) Parse(raw string) (*entities.Character, errors.ImportErrors) {
	doc, ie := parseJSON(raw)
	if ie != nil {
		return fail(*ie)
	}
	if !doc.IsObject() {
		return fail(errors.NewSchemaError(errors.FieldFormat, "document must be a JSON object"))
	}
	return a.FromObject(coerce.Map(doc.Value()))
}

// FromObject maps an already decoded object. Errors carry the bare field
// name so callers embedding characters can prefix them.
func (a *JSONAdapter) FromObject(m map[string]any) (*entities.Character, errors.ImportErrors) {
	name := coerce.StringOr(m["name"], "")
	if name == "" {
		return fail(nameRequired("name"))
	}

	c := a.newCharacter(coerce.StringOr(m["id"], ""), name)
	c.Level = levelOr(m["level"])
	c.CharacterType = entities.ParseCharacterType(coerce.StringOr(m["characterType"], ""))
	c.Race = coerce.StringOr(m["race"], entities.DefaultRace)
	c.Class = coerce.StringOr(m["class"], entities.DefaultClass)
	c.AbilityScores = abilityScoresFrom(
		coerce.Map(coerce.First(m, "abilityScores", "stats")),
		aliasSTR, aliasDEX, aliasCON, aliasINT, aliasWIS, aliasCHA,
	)
	if hp := coerce.First(m, "hitPoints", "hp"); hp != nil {
		c.HitPoints = pointsFrom(hp)
	}
	if mp := coerce.First(m, "manaPoints", "mp"); mp != nil {
		c.ManaPoints = pointsFrom(mp)
	}
	c.Skills = coerce.ListOr(m["skills"], skillFrom, []entities.Skill{})
	c.Equipment = coerce.ListOr(m["equipment"], equipmentFrom, []entities.Equipment{})
	c.Abilities = coerce.ListOr(m["abilities"], abilityFrom, []entities.Ability{})
	c.Backstory = coerce.StringOr(m["backstory"], "")
	c.Personality = coerce.StringOr(m["personality"], "")
	c.Goals = coerce.StringOr(m["goals"], "")
	c.Notes = NotesJSON
	c.ImageURL = optionalString(m["imageUrl"])
	c.CreatedAt = coerce.TimeOr(m["createdAt"], c.CreatedAt)
	return c, nil
}

// parseJSON validates before parsing; gjson is lenient on its own.
func parseJSON(raw string) (gjson.Result, *errors.ImportError) {
	if !gjson.Valid(raw) {
		ie := errors.NewParseError(errors.FieldFormat, "invalid JSON")
		return gjson.Result{}, &ie
	}
	return gjson.Parse(raw), nil
}
