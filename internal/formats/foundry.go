package formats

import (
	"github.com/tidwall/gjson"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/coerce"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
)

// foundryAdapter reads Foundry VTT actor exports. Stats live under data,
// inventory and spells under the top-level items array.
type foundryAdapter struct {
	base
}

func (a *foundryAdapter) Parse(raw string) (*entities.Character, errors.ImportErrors) {
	doc, ie := parseJSON(raw)
	if ie != nil {
		return fail(*ie)
	}

	name := coerce.StringOr(doc.Get("name").Value(), "")
	if name == "" {
		return fail(nameRequired("name"))
	}

	data := doc.Get("data")
	c := a.newCharacter("", name)
	c.Level = levelOr(data.Get("details.level").Value())
	c.CharacterType = foundryCharacterType(doc.Get("type").String())
	c.Race = coerce.StringOr(data.Get("details.race").Value(), entities.DefaultRace)
	c.Class = coerce.StringOr(data.Get("details.class").Value(), entities.DefaultClass)

	ability := func(key string) int {
		return coerce.IntOr(data.Get("abilities."+key+".value").Value(), entities.DefaultAbilityScore)
	}
	c.AbilityScores = entities.AbilityScores{
		Strength:     ability("str"),
		Dexterity:    ability("dex"),
		Constitution: ability("con"),
		Intelligence: ability("int"),
		Wisdom:       ability("wis"),
		Charisma:     ability("cha"),
	}

	hp := data.Get("attributes.hp")
	if hp.Exists() {
		current := coerce.IntOr(hp.Get("value").Value(), entities.DefaultPoints)
		c.HitPoints = entities.Points{
			Current: current,
			Max:     coerce.IntOr(hp.Get("max").Value(), current),
		}
	}

	c.Skills = foundrySkills(data.Get("skills"))
	c.Equipment, c.Abilities = foundryItems(doc.Get("items"))
	c.Backstory = coerce.StringOr(data.Get("details.biography.value").Value(), "")
	c.Personality = coerce.StringOr(data.Get("details.trait").Value(), "")
	c.Goals = coerce.StringOr(data.Get("details.ideal").Value(), "")
	c.Notes = NotesFoundry
	c.ImageURL = optionalString(doc.Get("img").Value())
	return c, nil
}

// foundryCharacterType maps actor types; "character" is a PC.
func foundryCharacterType(actorType string) entities.CharacterType {
	if actorType == "character" {
		return entities.CharacterTypePC
	}
	return entities.ParseCharacterType(actorType)
}

// foundrySkills flattens the key -> {label, value} map in document order.
func foundrySkills(skills gjson.Result) []entities.Skill {
	out := []entities.Skill{}
	if !skills.IsObject() {
		return out
	}
	skills.ForEach(func(key, value gjson.Result) bool {
		out = append(out, entities.Skill{
			Name:  coerce.StringOr(value.Get("label").Value(), key.String()),
			Level: coerce.IntOr(value.Get("value").Value(), entities.DefaultSkillLevel),
		})
		return true
	})
	return out
}

func foundryItems(items gjson.Result) ([]entities.Equipment, []entities.Ability) {
	equipment := []entities.Equipment{}
	abilities := []entities.Ability{}
	if !items.IsArray() {
		return equipment, abilities
	}
	items.ForEach(func(_, item gjson.Result) bool {
		itemType := item.Get("type").String()
		name := coerce.StringOr(item.Get("name").Value(), "")
		description := coerce.StringOr(item.Get("data.description.value").Value(), "")
		switch itemType {
		case "equipment":
			equipment = append(equipment, entities.Equipment{
				Name:        name,
				Type:        itemType,
				Description: description,
				Quantity:    coerce.IntOr(item.Get("data.quantity").Value(), entities.DefaultQuantity),
			})
		case "feat", "spell":
			abilities = append(abilities, entities.Ability{
				Name:        name,
				Description: description,
				Kind:        itemType,
			})
		}
		return true
	})
	return equipment, abilities
}
