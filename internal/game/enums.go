package game

// String backed enums for DB and YAML interoperability.

type Race string
type Background string
type Attribute string
type Condition string
type CreatureType string
type Element string
type ItemKind string
type GearSlot string
type Rarity string
type School string
type SpellKind string
type Season string
type CavernWeather string
type Watch string
type Direction string
type Quality string

const (
	RaceHuman     Race = "human"
	RaceDuergar   Race = "duergar"
	RaceDeepGnome Race = "deep_gnome"
	RaceSaurian   Race = "saurian"
)

var AllRaces = []Race{RaceHuman, RaceDuergar, RaceDeepGnome, RaceSaurian}

const (
	BackgroundMiner     Background = "miner"
	BackgroundSmith     Background = "smith"
	BackgroundHerbalist Background = "herbalist"
	BackgroundScholar   Background = "scholar"
	BackgroundPoacher   Background = "poacher"
	BackgroundAcolyte   Background = "acolyte"
)

var AllBackgrounds = []Background{BackgroundMiner, BackgroundSmith, BackgroundHerbalist, BackgroundScholar, BackgroundPoacher, BackgroundAcolyte}

const (
	AttrMight    Attribute = "might"
	AttrFinesse  Attribute = "finesse"
	AttrVigor    Attribute = "vigor"
	AttrWits     Attribute = "wits"
	AttrWill     Attribute = "will"
	AttrPresence Attribute = "presence"
)

var AllAttributes = []Attribute{AttrMight, AttrFinesse, AttrVigor, AttrWits, AttrWill, AttrPresence}

const (
	ConditionHungry   Condition = "hungry"
	ConditionParched  Condition = "parched"
	ConditionWeary    Condition = "weary"
	ConditionPoisoned Condition = "poisoned"
	ConditionBleeding Condition = "bleeding"
	ConditionChilled  Condition = "chilled"
	ConditionBurdened Condition = "burdened"
)

var AllConditions = []Condition{ConditionHungry, ConditionParched, ConditionWeary, ConditionPoisoned, ConditionBleeding, ConditionChilled, ConditionBurdened}

const (
	CreatureAberration  CreatureType = "aberration"
	CreatureBeast       CreatureType = "beast"
	CreatureConstruct   CreatureType = "construct"
	CreatureDemon       CreatureType = "demon"
	CreatureElemental   CreatureType = "elemental"
	CreatureHumanoid    CreatureType = "humanoid"
	CreatureMonstrosity CreatureType = "monstrosity"
	CreatureOoze        CreatureType = "ooze"
	CreatureUndead      CreatureType = "undead"
)

var AllCreatureTypes = []CreatureType{CreatureAberration, CreatureBeast, CreatureConstruct, CreatureDemon, CreatureElemental, CreatureHumanoid, CreatureMonstrosity, CreatureOoze, CreatureUndead}

const (
	ElementFire  Element = "fire"
	ElementIce   Element = "ice"
	ElementAir   Element = "air"
	ElementEarth Element = "earth"
	ElementWater Element = "water"
)

var AllElements = []Element{ElementFire, ElementIce, ElementAir, ElementEarth, ElementWater}

const (
	ItemWeapon     ItemKind = "weapon"
	ItemArmor      ItemKind = "armor"
	ItemConsumable ItemKind = "consumable"
	ItemMaterial   ItemKind = "material"
	ItemTool       ItemKind = "tool"
	ItemRelic      ItemKind = "relic"
)

var AllItemKinds = []ItemKind{ItemWeapon, ItemArmor, ItemConsumable, ItemMaterial, ItemTool, ItemRelic}

const (
	SlotHand    GearSlot = "hand"
	SlotHead    GearSlot = "head"
	SlotBody    GearSlot = "body"
	SlotFeet    GearSlot = "feet"
	SlotTrinket GearSlot = "trinket"
)

var AllGearSlots = []GearSlot{SlotHand, SlotHead, SlotBody, SlotFeet, SlotTrinket}

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityMythic   Rarity = "mythic"
)

var AllRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityMythic}

const (
	SchoolEvocation     School = "evocation"
	SchoolConjuration   School = "conjuration"
	SchoolNecromancy    School = "necromancy"
	SchoolTransmutation School = "transmutation"
	SchoolAbjuration    School = "abjuration"
	SchoolDivination    School = "divination"
)

var AllSchools = []School{SchoolEvocation, SchoolConjuration, SchoolNecromancy, SchoolTransmutation, SchoolAbjuration, SchoolDivination}

const (
	SpellKindSpell  SpellKind = "spell"
	SpellKindRitual SpellKind = "ritual"
)

var AllSpellKinds = []SpellKind{SpellKindSpell, SpellKindRitual}

const (
	SeasonThaw      Season = "thaw"
	SeasonVerdant   Season = "verdant"
	SeasonWaning    Season = "waning"
	SeasonDeepfrost Season = "deepfrost"
)

var AllSeasons = []Season{SeasonThaw, SeasonVerdant, SeasonWaning, SeasonDeepfrost}

const (
	WeatherStill     CavernWeather = "still"
	WeatherDraft     CavernWeather = "draft"
	WeatherMist      CavernWeather = "mist"
	WeatherSporefall CavernWeather = "sporefall"
	WeatherTremor    CavernWeather = "tremor"
	WeatherDeepchill CavernWeather = "deepchill"
)

var AllCavernWeather = []CavernWeather{WeatherStill, WeatherDraft, WeatherMist, WeatherSporefall, WeatherTremor, WeatherDeepchill}

const (
	WatchDawn      Watch = "dawn"
	WatchMorning   Watch = "morning"
	WatchMidday    Watch = "midday"
	WatchDusk      Watch = "dusk"
	WatchNight     Watch = "night"
	WatchDeepnight Watch = "deepnight"
)

var AllWatches = []Watch{WatchDawn, WatchMorning, WatchMidday, WatchDusk, WatchNight, WatchDeepnight}

const (
	DirNorth Direction = "north"
	DirSouth Direction = "south"
	DirEast  Direction = "east"
	DirWest  Direction = "west"
)

var AllDirections = []Direction{DirNorth, DirSouth, DirEast, DirWest}

const (
	QualityPoor  Quality = "poor"
	QualitySound Quality = "sound"
	QualityFine  Quality = "fine"
)

var AllQualities = []Quality{QualityPoor, QualitySound, QualityFine}

// Generic helpers
func contains[T ~string](list []T, v T) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func (r Race) Validate() bool          { return contains(AllRaces, r) }
func (b Background) Validate() bool    { return contains(AllBackgrounds, b) }
func (a Attribute) Validate() bool     { return contains(AllAttributes, a) }
func (c Condition) Validate() bool     { return contains(AllConditions, c) }
func (c CreatureType) Validate() bool  { return contains(AllCreatureTypes, c) }
func (e Element) Validate() bool       { return contains(AllElements, e) }
func (k ItemKind) Validate() bool      { return contains(AllItemKinds, k) }
func (s GearSlot) Validate() bool      { return contains(AllGearSlots, s) }
func (r Rarity) Validate() bool        { return contains(AllRarities, r) }
func (s School) Validate() bool        { return contains(AllSchools, s) }
func (k SpellKind) Validate() bool     { return contains(AllSpellKinds, k) }
func (s Season) Validate() bool        { return contains(AllSeasons, s) }
func (w CavernWeather) Validate() bool { return contains(AllCavernWeather, w) }
func (w Watch) Validate() bool         { return contains(AllWatches, w) }
func (d Direction) Validate() bool     { return contains(AllDirections, d) }
func (q Quality) Validate() bool       { return contains(AllQualities, q) }

// Delta returns the direction's step on the map grid. North is -y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	}
	return 0, 0
}

// Label gives display names for menus.
func (r Race) Label() string {
	switch r {
	case RaceHuman:
		return "Human"
	case RaceDuergar:
		return "Duergar"
	case RaceDeepGnome:
		return "Deep Gnome"
	case RaceSaurian:
		return "Saurian"
	}
	return string(r)
}

func (b Background) Label() string {
	switch b {
	case BackgroundMiner:
		return "Miner"
	case BackgroundSmith:
		return "Smith"
	case BackgroundHerbalist:
		return "Herbalist"
	case BackgroundScholar:
		return "Scholar"
	case BackgroundPoacher:
		return "Poacher"
	case BackgroundAcolyte:
		return "Acolyte"
	}
	return string(b)
}
