package formats

import (
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/coerce"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/errors"
)

const dndBeyondNameField = "data.name"

// dndBeyondAdapter reads D&D Beyond character exports.
// NOTE: data.stats is positional, index 0 is STR through 5 is CHA. The
// export relies on that order and so do we; do not switch to lookup by id.
type dndBeyondAdapter struct {
	base
}

func (a *dndBeyondAdapter) Parse(raw string) (*entities.Character, errors.ImportErrors) {
	doc, ie := parseJSON(raw)
	if ie != nil {
		return fail(*ie)
	}

	data := doc.Get("data")
	name := coerce.StringOr(data.Get("name").Value(), "")
	if name == "" {
		return fail(nameRequired(dndBeyondNameField))
	}

	c := a.newCharacter("", name)
	class := data.Get("classes.0")
	c.Level = levelOr(class.Get("level").Value())
	c.Class = coerce.StringOr(class.Get("definition.name").Value(), entities.DefaultClass)
	c.Race = coerce.StringOr(data.Get("race.fullName").Value(), entities.DefaultRace)

	stat := func(i int) int {
		return coerce.IntOr(data.Get("stats."+strconv.Itoa(i)+".value").Value(), entities.DefaultAbilityScore)
	}
	c.AbilityScores = entities.AbilityScores{
		Strength:     stat(0),
		Dexterity:    stat(1),
		Constitution: stat(2),
		Intelligence: stat(3),
		Wisdom:       stat(4),
		Charisma:     stat(5),
	}

	hp := data.Get("currentHitPoints")
	if !hp.Exists() || hp.Type == gjson.Null {
		hp = data.Get("abilities.hp")
	}
	current := coerce.IntOr(hp.Value(), entities.DefaultPoints)
	c.HitPoints = entities.Points{
		Current: current,
		Max:     coerce.IntOr(data.Get("baseHitPoints").Value(), current),
	}
	// no mana in this source; ManaPoints keeps its default

	c.Equipment = dndBeyondInventory(data.Get("inventory"))
	c.Abilities = dndBeyondSpells(data.Get("spells.class"))
	c.Backstory = coerce.StringOr(data.Get("notes.backstory").Value(), "")
	c.Personality = coerce.StringOr(data.Get("traits.personalityTraits").Value(), "")
	c.Goals = coerce.StringOr(data.Get("traits.ideals").Value(), "")
	c.Notes = NotesDNDBeyond
	c.ImageURL = optionalString(data.Get("decorations.avatarUrl").Value())
	return c, nil
}

func dndBeyondInventory(inventory gjson.Result) []entities.Equipment {
	out := []entities.Equipment{}
	if !inventory.IsArray() {
		return out
	}
	inventory.ForEach(func(_, item gjson.Result) bool {
		def := item.Get("definition")
		out = append(out, entities.Equipment{
			Name:        coerce.StringOr(def.Get("name").Value(), ""),
			Type:        coerce.StringOr(def.Get("type").Value(), ""),
			Description: coerce.StringOr(def.Get("description").Value(), ""),
			Quantity:    coerce.IntOr(item.Get("quantity").Value(), entities.DefaultQuantity),
		})
		return true
	})
	return out
}

func dndBeyondSpells(spells gjson.Result) []entities.Ability {
	out := []entities.Ability{}
	if !spells.IsArray() {
		return out
	}
	spells.ForEach(func(_, spell gjson.Result) bool {
		def := spell.Get("definition")
		out = append(out, entities.Ability{
			Name:        coerce.StringOr(def.Get("name").Value(), ""),
			Description: coerce.StringOr(def.Get("description").Value(), ""),
			Kind:        "spell",
		})
		return true
	})
	return out
}
