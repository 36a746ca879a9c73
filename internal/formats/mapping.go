package formats

import (
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/coerce"
	"github.com/nobuyuki-ootake/AIAgentTRPGGM-sub001/internal/entities"
)

// Ordered alias lists. The first key present wins.
var (
	aliasSTR = []string{"STR", "str", "strength", "Strength"}
	aliasDEX = []string{"DEX", "dex", "dexterity", "Dexterity"}
	aliasCON = []string{"CON", "con", "constitution", "Constitution"}
	aliasINT = []string{"INT", "int", "intelligence", "Intelligence"}
	aliasWIS = []string{"WIS", "wis", "wisdom", "Wisdom"}
	aliasCHA = []string{"CHA", "cha", "charisma", "Charisma"}

	// Long form is checked before short form for flat sources.
	longSTR = []string{"strength", "str"}
	longDEX = []string{"dexterity", "dex"}
	longCON = []string{"constitution", "con"}
	longINT = []string{"intelligence", "int"}
	longWIS = []string{"wisdom", "wis"}
	longCHA = []string{"charisma", "cha"}
)

// abilityScoresFrom reads the six scores out of m through the given alias
// lists, defaulting each one independently.
func abilityScoresFrom(m map[string]any, str, dex, con, intel, wis, cha []string) entities.AbilityScores {
	score := func(keys []string) int {
		return coerce.IntOr(coerce.First(m, keys...), entities.DefaultAbilityScore)
	}
	return entities.AbilityScores{
		Strength:     score(str),
		Dexterity:    score(dex),
		Constitution: score(con),
		Intelligence: score(intel),
		Wisdom:       score(wis),
		Charisma:     score(cha),
	}
}

// levelOr clamps a coerced level to at least 1.
func levelOr(raw any) int {
	level := coerce.IntOr(raw, entities.DefaultLevel)
	if level < 1 {
		return entities.DefaultLevel
	}
	return level
}

// pointsFrom accepts {current, max}, {value, max} or a bare number.
// A missing max mirrors current.
func pointsFrom(raw any) entities.Points {
	if m := coerce.Map(raw); m != nil {
		current := coerce.IntOr(coerce.First(m, "current", "value"), entities.DefaultPoints)
		return entities.Points{
			Current: current,
			Max:     coerce.IntOr(m["max"], current),
		}
	}
	return mirroredPoints(raw)
}

func mirroredPoints(raw any) entities.Points {
	v := coerce.IntOr(raw, entities.DefaultPoints)
	return entities.Points{Current: v, Max: v}
}

func skillFrom(raw any) entities.Skill {
	if s, ok := raw.(string); ok {
		return entities.Skill{Name: coerce.StringOr(s, ""), Level: entities.DefaultSkillLevel}
	}
	m := coerce.Map(raw)
	return entities.Skill{
		Name:        coerce.StringOr(coerce.First(m, "name", "label"), ""),
		Level:       coerce.IntOr(coerce.First(m, "level", "value"), entities.DefaultSkillLevel),
		Description: coerce.StringOr(m["description"], ""),
	}
}

func equipmentFrom(raw any) entities.Equipment {
	if s, ok := raw.(string); ok {
		return entities.Equipment{Name: coerce.StringOr(s, ""), Quantity: entities.DefaultQuantity}
	}
	m := coerce.Map(raw)
	return entities.Equipment{
		Name:        coerce.StringOr(m["name"], ""),
		Type:        coerce.StringOr(m["type"], ""),
		Description: coerce.StringOr(m["description"], ""),
		Quantity:    coerce.IntOr(m["quantity"], entities.DefaultQuantity),
	}
}

func abilityFrom(raw any) entities.Ability {
	if s, ok := raw.(string); ok {
		return entities.Ability{Name: coerce.StringOr(s, "")}
	}
	m := coerce.Map(raw)
	return entities.Ability{
		Name:        coerce.StringOr(m["name"], ""),
		Description: coerce.StringOr(m["description"], ""),
		Kind:        coerce.StringOr(coerce.First(m, "kind", "type"), ""),
	}
}

// optionalString returns nil for a blank value so imageUrl stays absent.
func optionalString(raw any) *string {
	s := coerce.StringOr(raw, "")
	if s == "" {
		return nil
	}
	return &s
}
