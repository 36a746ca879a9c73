package formats

import (
	"encoding/csv"
	"strings"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/coerce"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
)

// Column aliases, checked in order against lower-cased headers.
var (
	csvName        = []string{"name", "character", "character_name"}
	csvLevel       = []string{"level", "lv"}
	csvType        = []string{"charactertype", "type"}
	csvRace        = []string{"race", "species"}
	csvClass       = []string{"class", "job"}
	csvHP          = []string{"hp", "hitpoints"}
	csvMaxHP       = []string{"maxhp", "max_hp"}
	csvMP          = []string{"mp", "manapoints"}
	csvMaxMP       = []string{"maxmp", "max_mp"}
	csvBackstory   = []string{"backstory", "background"}
	csvPersonality = []string{"personality"}
	csvGoals       = []string{"goals", "goal"}
	csvImage       = []string{"imageurl", "image"}
)

// utf8BOM is written at the start of CSV files by spreadsheet exports
const utf8BOM = "\ufeff"

// csvAdapter reads a header row and one data row. Further rows are ignored;
// one character per file is a limitation of the format.
type csvAdapter struct {
	base
}

func (a *csvAdapter) Parse(raw string) (*entities.Character, errors.ImportErrors) {
	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(raw, utf8BOM)))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return fail(errors.NewParseError(errors.FieldFormat, "missing CSV header row"))
	}
	row, err := r.Read()
	if err != nil {
		return fail(errors.NewParseError(errors.FieldFormat, "missing CSV data row"))
	}

	// Blank cells are left out so a later alias can supply the value.
	m := make(map[string]any, len(header))
	seen := make(map[string]bool, len(header))
	for i, key := range header {
		key = strings.ToLower(strings.TrimSpace(key))
		if seen[key] || i >= len(row) {
			continue
		}
		seen[key] = true
		if strings.TrimSpace(row[i]) == "" {
			continue
		}
		m[key] = row[i]
	}

	name := coerce.StringOr(coerce.First(m, csvName...), "")
	if name == "" {
		return fail(nameRequired("name"))
	}

	c := a.newCharacter("", name)
	c.Level = levelOr(coerce.First(m, csvLevel...))
	c.CharacterType = entities.ParseCharacterType(coerce.StringOr(coerce.First(m, csvType...), ""))
	c.Race = coerce.StringOr(coerce.First(m, csvRace...), entities.DefaultRace)
	c.Class = coerce.StringOr(coerce.First(m, csvClass...), entities.DefaultClass)
	c.AbilityScores = abilityScoresFrom(m, longSTR, longDEX, longCON, longINT, longWIS, longCHA)

	hp := coerce.IntOr(coerce.First(m, csvHP...), entities.DefaultPoints)
	c.HitPoints = entities.Points{Current: hp, Max: coerce.IntOr(coerce.First(m, csvMaxHP...), hp)}
	mp := coerce.IntOr(coerce.First(m, csvMP...), entities.DefaultPoints)
	c.ManaPoints = entities.Points{Current: mp, Max: coerce.IntOr(coerce.First(m, csvMaxMP...), mp)}

	c.Backstory = coerce.StringOr(coerce.First(m, csvBackstory...), "")
	c.Personality = coerce.StringOr(coerce.First(m, csvPersonality...), "")
	c.Goals = coerce.StringOr(coerce.First(m, csvGoals...), "")
	c.Notes = NotesCSV
	c.ImageURL = optionalString(coerce.First(m, csvImage...))
	return c, nil
}
