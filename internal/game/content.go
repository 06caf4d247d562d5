package game

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var contentFS embed.FS

// ItemDef is a catalog item. Kind decides which optional fields matter:
// gear carries a slot, consumables carry restore values, everything carries
// a base price used by shops and crafting.
type ItemDef struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Kind   ItemKind `yaml:"kind"`
	Slot   GearSlot `yaml:"slot,omitempty"`
	Rarity Rarity   `yaml:"rarity"`
	Price  int      `yaml:"price"`
	Weight int      `yaml:"weight"`
	Heal   int      `yaml:"heal,omitempty"`
	Feed   int      `yaml:"feed,omitempty"`
	Quench int      `yaml:"quench,omitempty"`
	Lore   string   `yaml:"lore,omitempty"`
}

// RecipeDef describes one craftable output and its material costs. An empty
// background means any character can craft it.
type RecipeDef struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Output     string         `yaml:"output"`
	Count      int            `yaml:"count"`
	Materials  map[string]int `yaml:"materials"`
	Background Background     `yaml:"background,omitempty"`
}

// SpellDef covers both castable spells and slow rituals.
type SpellDef struct {
	ID      string    `yaml:"id"`
	Name    string    `yaml:"name"`
	Kind    SpellKind `yaml:"kind"`
	School  School    `yaml:"school"`
	Tier    int       `yaml:"tier"`
	Essence int       `yaml:"essence"`
	Lore    string    `yaml:"lore,omitempty"`
}

// CreatureDef is a bestiary entry. Element is set for elementals only.
type CreatureDef struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Type    CreatureType `yaml:"type"`
	Element Element      `yaml:"element,omitempty"`
	Health  int          `yaml:"health"`
	Menace  int          `yaml:"menace"`
	Glyph   string       `yaml:"glyph"`
}

// Content holds every loaded catalog, indexed for lookup. It is read-only
// after LoadContent and shared by all systems.
type Content struct {
	Items     []ItemDef
	Recipes   []RecipeDef
	Spells    []SpellDef
	Creatures []CreatureDef

	itemsByID    map[string]ItemDef
	recipesByID  map[string]RecipeDef
	spellsByID   map[string]SpellDef
	creatureByID map[string]CreatureDef
}

// LoadContent decodes the embedded catalogs and cross-checks references.
// Bad content is a packaging error, so failures here abort startup.
func LoadContent() (*Content, error) {
	c := &Content{
		itemsByID:    map[string]ItemDef{},
		recipesByID:  map[string]RecipeDef{},
		spellsByID:   map[string]SpellDef{},
		creatureByID: map[string]CreatureDef{},
	}
	if err := decodeYAML("data/items.yaml", &c.Items); err != nil {
		return nil, err
	}
	if err := decodeYAML("data/recipes.yaml", &c.Recipes); err != nil {
		return nil, err
	}
	if err := decodeYAML("data/spells.yaml", &c.Spells); err != nil {
		return nil, err
	}
	if err := decodeYAML("data/creatures.yaml", &c.Creatures); err != nil {
		return nil, err
	}

	for _, it := range c.Items {
		if it.ID == "" || it.Name == "" {
			return nil, fmt.Errorf("item %q: missing id or name", it.ID)
		}
		if !it.Kind.Validate() {
			return nil, fmt.Errorf("item %q: unknown kind %q", it.ID, it.Kind)
		}
		if !it.Rarity.Validate() {
			return nil, fmt.Errorf("item %q: unknown rarity %q", it.ID, it.Rarity)
		}
		if (it.Kind == ItemWeapon || it.Kind == ItemArmor) && !it.Slot.Validate() {
			return nil, fmt.Errorf("item %q: gear needs a slot", it.ID)
		}
		if _, dup := c.itemsByID[it.ID]; dup {
			return nil, fmt.Errorf("item %q: duplicate id", it.ID)
		}
		c.itemsByID[it.ID] = it
	}
	for _, rc := range c.Recipes {
		if _, dup := c.recipesByID[rc.ID]; dup {
			return nil, fmt.Errorf("recipe %q: duplicate id", rc.ID)
		}
		if _, ok := c.itemsByID[rc.Output]; !ok {
			return nil, fmt.Errorf("recipe %q: unknown output item %q", rc.ID, rc.Output)
		}
		if rc.Count <= 0 {
			return nil, fmt.Errorf("recipe %q: count must be positive", rc.ID)
		}
		if rc.Background != "" && !rc.Background.Validate() {
			return nil, fmt.Errorf("recipe %q: unknown background %q", rc.ID, rc.Background)
		}
		for mat := range rc.Materials {
			if _, ok := c.itemsByID[mat]; !ok {
				return nil, fmt.Errorf("recipe %q: unknown material %q", rc.ID, mat)
			}
		}
		c.recipesByID[rc.ID] = rc
	}
	for _, sp := range c.Spells {
		if _, dup := c.spellsByID[sp.ID]; dup {
			return nil, fmt.Errorf("spell %q: duplicate id", sp.ID)
		}
		if !sp.Kind.Validate() || !sp.School.Validate() {
			return nil, fmt.Errorf("spell %q: bad kind or school", sp.ID)
		}
		if sp.Tier < 1 {
			return nil, fmt.Errorf("spell %q: tier must be at least 1", sp.ID)
		}
		c.spellsByID[sp.ID] = sp
	}
	for _, cr := range c.Creatures {
		if _, dup := c.creatureByID[cr.ID]; dup {
			return nil, fmt.Errorf("creature %q: duplicate id", cr.ID)
		}
		if !cr.Type.Validate() {
			return nil, fmt.Errorf("creature %q: unknown type %q", cr.ID, cr.Type)
		}
		if cr.Type == CreatureElemental && !cr.Element.Validate() {
			return nil, fmt.Errorf("creature %q: elemental needs an element", cr.ID)
		}
		if cr.Type != CreatureElemental && cr.Element != "" {
			return nil, fmt.Errorf("creature %q: element set on non-elemental", cr.ID)
		}
		c.creatureByID[cr.ID] = cr
	}
	return c, nil
}

func decodeYAML(name string, out any) error {
	raw, err := contentFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Item looks up an item definition.
func (c *Content) Item(id string) (ItemDef, bool) {
	it, ok := c.itemsByID[id]
	return it, ok
}

// Recipe looks up a recipe definition.
func (c *Content) Recipe(id string) (RecipeDef, bool) {
	rc, ok := c.recipesByID[id]
	return rc, ok
}

// Spell looks up a spell definition.
func (c *Content) Spell(id string) (SpellDef, bool) {
	sp, ok := c.spellsByID[id]
	return sp, ok
}

// Creature looks up a bestiary entry.
func (c *Content) Creature(id string) (CreatureDef, bool) {
	cr, ok := c.creatureByID[id]
	return cr, ok
}

// CreaturesOfType returns the bestiary slice for one type, catalog order.
func (c *Content) CreaturesOfType(t CreatureType) []CreatureDef {
	out := make([]CreatureDef, 0, 4)
	for _, cr := range c.Creatures {
		if cr.Type == t {
			out = append(out, cr)
		}
	}
	return out
}

// SpellsByTier returns all spells sorted by tier then name, which is the
// order trainers present them in.
func (c *Content) SpellsByTier() []SpellDef {
	out := append([]SpellDef(nil), c.Spells...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return out[i].Name < out[j].Name
	})
	return out
}
