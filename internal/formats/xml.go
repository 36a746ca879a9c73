package formats

import (
	"github.com/beevik/etree"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/coerce"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
)

// xmlAdapter reads the tabletop XML schema:
//
//	<character>
//	  <data name="name">Aria</data>
//	  <data name="HP">18</data>
//	</character>
type xmlAdapter struct {
	base
}

func (a *xmlAdapter) Parse(raw string) (*entities.Character, errors.ImportErrors) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return fail(errors.NewParseError(errors.FieldFormat, "invalid XML: "+err.Error()))
	}

	root := doc.FindElement("//character")
	if root == nil {
		return fail(errors.NewSchemaError(errors.FieldCharacter, "character element not found"))
	}

	fields := indexDataNodes(root)
	name := coerce.StringOr(fields["name"], "")
	if name == "" {
		return fail(nameRequired("name"))
	}

	c := a.newCharacter("", name)
	c.Level = levelOr(fields["level"])
	c.CharacterType = entities.ParseCharacterType(coerce.StringOr(fields["characterType"], ""))
	c.Race = coerce.StringOr(fields["race"], entities.DefaultRace)
	c.Class = coerce.StringOr(fields["class"], entities.DefaultClass)
	c.AbilityScores = abilityScoresFrom(fields, aliasSTR, aliasDEX, aliasCON, aliasINT, aliasWIS, aliasCHA)
	// the schema has no separate max
	c.HitPoints = mirroredPoints(fields["HP"])
	c.ManaPoints = mirroredPoints(fields["MP"])
	c.Backstory = coerce.StringOr(fields["backstory"], "")
	c.Personality = coerce.StringOr(fields["personality"], "")
	c.Goals = coerce.StringOr(fields["goals"], "")
	c.Notes = NotesXML
	return c, nil
}

// indexDataNodes collects every data[@name] leaf under root. The first
// occurrence of a name wins.
func indexDataNodes(root *etree.Element) map[string]any {
	fields := make(map[string]any)
	for _, el := range root.FindElements(".//data[@name]") {
		key := el.SelectAttrValue("name", "")
		if _, seen := fields[key]; seen || key == "" {
			continue
		}
		fields[key] = el.Text()
	}
	return fields
}
