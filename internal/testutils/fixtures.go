package testutils

// Sample source documents shared by adapter, service and CLI tests.
const (
	// TestCharacterName is the character name used in every full fixture
	TestCharacterName = "Thorin Oakenshield"

	GenericJSONFull = `{
  "id": "char_thorin",
  "name": "Thorin Oakenshield",
  "level": 5,
  "characterType": "NPC",
  "race": "Dwarf",
  "class": "Fighter",
  "abilityScores": {"STR": 16, "DEX": "12", "con": 15, "intelligence": 9, "WIS": 11, "CHA": 14},
  "hitPoints": {"current": 38, "max": 44},
  "manaPoints": {"current": 0, "max": 0},
  "skills": [{"name": "Athletics", "level": 3, "description": "climb and swim"}],
  "equipment": [{"name": "Orcrist", "type": "weapon", "description": "elven blade"}, {"name": "Rations", "quantity": "4"}],
  "abilities": [{"name": "Second Wind", "description": "heal 1d10+5", "kind": "feat"}],
  "backstory": "King under the Mountain",
  "personality": "Proud",
  "goals": "Reclaim Erebor",
  "imageUrl": "https://example.com/thorin.png",
  "createdAt": "2023-06-15T10:30:00Z"
}`

	XMLFull = `<?xml version="1.0" encoding="UTF-8"?>
<character>
  <data name="name">Thorin Oakenshield</data>
  <data name="level">5</data>
  <data name="race">Dwarf</data>
  <data name="class">Fighter</data>
  <data name="HP">38</data>
  <data name="MP">4</data>
  <data name="STR">16</data>
  <data name="DEX">12</data>
  <data name="CON">15</data>
  <data name="INT">9</data>
  <data name="WIS">11</data>
  <data name="CHA">14</data>
  <data name="backstory">King under the Mountain</data>
  <data name="personality">Proud</data>
  <data name="goals">Reclaim Erebor</data>
</character>`

	FoundryFull = `{
  "name": "Thorin Oakenshield",
  "type": "character",
  "img": "tokens/thorin.webp",
  "data": {
    "details": {"level": 5, "race": "Dwarf", "class": "Fighter", "biography": {"value": "King under the Mountain"}, "trait": "Proud", "ideal": "Reclaim Erebor"},
    "abilities": {"str": {"value": 16}, "dex": {"value": 12}, "con": {"value": 15}, "int": {"value": 9}, "wis": {"value": 11}, "cha": {"value": 14}},
    "attributes": {"hp": {"value": 38, "max": 44}},
    "skills": {"ath": {"label": "Athletics", "value": 2}, "prc": {"value": 1}}
  },
  "items": [
    {"name": "Orcrist", "type": "weapon", "data": {}},
    {"name": "Chain Mail", "type": "equipment", "data": {"description": {"value": "heavy armor"}, "quantity": 1}},
    {"name": "Rope", "type": "equipment", "data": {}},
    {"name": "Second Wind", "type": "feat", "data": {"description": {"value": "heal"}}},
    {"name": "Light", "type": "spell", "data": {}}
  ]
}`

	SheetHostFull = `{
  "name": "Thorin Oakenshield",
  "level": "5",
  "race": "Dwarf",
  "class": "Fighter",
  "hp": "38",
  "maxHp": "44",
  "mp": "3",
  "strength": "16",
  "str": "8",
  "dex": "12",
  "constitution": "15",
  "intelligence": "9",
  "wisdom": "11",
  "charisma": "14",
  "backstory": "King under the Mountain"
}`

	DNDBeyondFull = `{
  "data": {
    "name": "Thorin Oakenshield",
    "race": {"fullName": "Mountain Dwarf"},
    "classes": [{"level": 5, "definition": {"name": "Fighter"}}],
    "stats": [{"id": 1, "value": 16}, {"id": 2, "value": 12}, {"id": 3, "value": 15}, {"id": 4, "value": 9}, {"id": 5, "value": 11}, {"id": 6, "value": 14}],
    "baseHitPoints": 44,
    "currentHitPoints": 38,
    "inventory": [{"quantity": 2, "definition": {"name": "Handaxe", "type": "Weapon", "description": "light thrown"}}],
    "spells": {"class": [{"definition": {"name": "Shield", "description": "+5 AC"}}]},
    "notes": {"backstory": "King under the Mountain"},
    "traits": {"personalityTraits": "Proud", "ideals": "Reclaim Erebor"},
    "decorations": {"avatarUrl": "https://example.com/thorin.png"}
  }
}`

	CSVFull = "name,level,race,class,hp,maxhp,strength,str,dex,con,int,wis,cha,backstory\n" +
		"Thorin Oakenshield,5,Dwarf,Fighter,38,44,16,8,12,15,9,11,14,King under the Mountain\n" +
		"Bilbo Baggins,3,Hobbit,Burglar,20,20,8,8,16,12,13,12,15,Reluctant\n"

	CampaignJSON = `{
  "id": "campaign_erebor",
  "title": "Quest for Erebor",
  "description": "Reclaim the Lonely Mountain",
  "gameSystem": "D&D 5e",
  "characters": [
    {"name": "Thorin Oakenshield", "level": 5},
    {"name": "Bilbo Baggins", "race": "Hobbit"}
  ],
  "sessions": [
    {"id": "s1", "title": "An Unexpected Party", "sessionNumber": 1, "date": "2024-03-01", "summary": "Dwarves arrive"}
  ]
}`
)

// MinimalDocuments holds a document per format carrying only a name.
var MinimalDocuments = map[string]string{
	"json":      `{"name": "Aria"}`,
	"xml":       `<character><data name="name">Aria</data></character>`,
	"foundry":   `{"name": "Aria"}`,
	"sheethost": `{"name": "Aria"}`,
	"dndbeyond": `{"data": {"name": "Aria"}}`,
	"csv":       "name\nAria\n",
}

// NamelessDocuments holds a structurally valid document per format with an
// empty name.
var NamelessDocuments = map[string]string{
	"json":      `{"name": "", "level": 3}`,
	"xml":       `<character><data name="level">3</data></character>`,
	"foundry":   `{"data": {"details": {"level": 3}}}`,
	"sheethost": `{"name": "   ", "level": "3"}`,
	"dndbeyond": `{"data": {"classes": [{"level": 3}]}}`,
	"csv":       "name,level\n,3\n",
}

// MalformedDocuments holds input that is not valid for each format.
var MalformedDocuments = map[string]string{
	"json":      `{"name": "Aria",`,
	"xml":       `<character><data name="name">Aria</data>`,
	"foundry":   `{"name": "Aria", "data": {`,
	"sheethost": `not json`,
	"dndbeyond": `{"data": [}`,
	"csv":       "name,level\n",
}
