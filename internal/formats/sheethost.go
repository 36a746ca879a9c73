package formats

import (
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/coerce"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
)

// sheetHostAdapter reads the flat sheet-hosting schema, where every value
// is a top-level string: {"name": "Aria", "level": "3", "hp": "18"}.
type sheetHostAdapter struct {
	base
}

func (a *sheetHostAdapter) Parse(raw string) (*entities.Character, errors.ImportErrors) {
	doc, ie := parseJSON(raw)
	if ie != nil {
		return fail(*ie)
	}

	m := coerce.Map(doc.Value())
	name := coerce.StringOr(m["name"], "")
	if name == "" {
		return fail(nameRequired("name"))
	}

	c := a.newCharacter("", name)
	c.Level = levelOr(m["level"])
	c.CharacterType = entities.ParseCharacterType(coerce.StringOr(m["type"], ""))
	c.Race = coerce.StringOr(m["race"], entities.DefaultRace)
	c.Class = coerce.StringOr(coerce.First(m, "class", "job"), entities.DefaultClass)
	c.AbilityScores = abilityScoresFrom(m, longSTR, longDEX, longCON, longINT, longWIS, longCHA)
	c.HitPoints = flatPoints(m, "hp", "maxHp")
	c.ManaPoints = flatPoints(m, "mp", "maxMp")
	c.Backstory = coerce.StringOr(m["backstory"], "")
	c.Personality = coerce.StringOr(m["personality"], "")
	c.Goals = coerce.StringOr(m["goals"], "")
	c.Notes = NotesSheetHost
	c.ImageURL = optionalString(m["imageUrl"])
	return c, nil
}

// flatPoints reads a current/max pair stored as two sibling keys.
func flatPoints(m map[string]any, currentKey, maxKey string) entities.Points {
	current := coerce.IntOr(m[currentKey], entities.DefaultPoints)
	return entities.Points{
		Current: current,
		Max:     coerce.IntOr(m[maxKey], current),
	}
}
