package game

import "sort"

// Attribute point-buy bounds used during character creation.
const (
	AttrBase = 5
	AttrMin  = 3
	AttrMax  = 10
	AttrPool = 6
)

// Player is the run's character.
type Player struct {
	Name       string
	Race       Race
	Background Background
	Attributes map[Attribute]int
	Level      int
	XP         int
	Gold       int
	Health     int
	MaxHealth  int
	Essence    int
	MaxEssence int
	Stats      Stats
	Conditions []Condition
	Equipped   map[GearSlot]string
	Pack       Inventory
	Spellbook  []string
	X, Y       int
}

// Stats are the survival meters, 0-100. High hunger/thirst/fatigue is bad;
// low warmth is bad.
type Stats struct {
	Hunger  int
	Thirst  int
	Fatigue int
	Warmth  int
}

// NewAttributes returns the point-buy baseline.
func NewAttributes() map[Attribute]int {
	m := make(map[Attribute]int, len(AllAttributes))
	for _, a := range AllAttributes {
		m[a] = AttrBase
	}
	return m
}

// PointsSpent is the net point-buy expenditure relative to the baseline.
func PointsSpent(attrs map[Attribute]int) int {
	spent := 0
	for _, a := range AllAttributes {
		spent += attrs[a] - AttrBase
	}
	return spent
}

// NewPlayer derives a fresh character from creation choices and hands out
// the background's starting kit.
func NewPlayer(name string, race Race, bg Background, attrs map[Attribute]int) Player {
	if attrs == nil {
		attrs = NewAttributes()
	}
	p := Player{
		Name:       name,
		Race:       race,
		Background: bg,
		Attributes: attrs,
		Level:      1,
		Gold:       120,
		Stats:      Stats{Warmth: 70},
		Equipped:   map[GearSlot]string{},
		X:          4, // the hearth, kept open by the world generator
		Y:          4,
	}
	p.MaxHealth = 20 + 4*attrs[AttrVigor]
	p.MaxEssence = 6 + 3*attrs[AttrWill]
	p.Health = p.MaxHealth
	p.Essence = p.MaxEssence
	kit := StartingKit(bg)
	ids := make([]string, 0, len(kit))
	for id := range kit {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p.Pack.Add(id, kit[id])
	}
	return p
}

// StartingKit is the background's opening inventory, shared with the
// creation wizard so it can show what each background begins with.
func StartingKit(bg Background) map[string]int {
	kit := map[string]int{
		"moss_bread": 2,
		"waterskin":  2,
		"tinder_kit": 1,
	}
	switch bg {
	case BackgroundMiner:
		kit["miners_pick"] = 1
		kit["lantern"] = 1
	case BackgroundSmith:
		kit["iron_ingot"] = 2
		kit["leather_strip"] = 2
	case BackgroundHerbalist:
		kit["cave_moss"] = 3
		kit["healing_draught"] = 1
	case BackgroundScholar:
		kit["lantern"] = 1
		kit["silver_thread"] = 1
	case BackgroundPoacher:
		kit["bone_dagger"] = 1
		kit["rope_coil"] = 1
	case BackgroundAcolyte:
		kit["healing_draught"] = 1
		kit["ember_salt"] = 1
	}
	return kit
}

// HasCondition reports whether the condition is active.
func (p *Player) HasCondition(c Condition) bool {
	for _, x := range p.Conditions {
		if x == c {
			return true
		}
	}
	return false
}

func (p *Player) setCondition(c Condition, on bool) {
	if on {
		if !p.HasCondition(c) {
			p.Conditions = append(p.Conditions, c)
		}
		return
	}
	out := p.Conditions[:0]
	for _, x := range p.Conditions {
		if x != c {
			out = append(out, x)
		}
	}
	p.Conditions = out
}

// UpdateStats applies a delta and clamps every meter to 0-100.
func (p *Player) UpdateStats(d Stats) {
	p.Stats.Hunger = clampMeter(p.Stats.Hunger + d.Hunger)
	p.Stats.Thirst = clampMeter(p.Stats.Thirst + d.Thirst)
	p.Stats.Fatigue = clampMeter(p.Stats.Fatigue + d.Fatigue)
	p.Stats.Warmth = clampMeter(p.Stats.Warmth + d.Warmth)
}

func clampMeter(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Heal restores health up to the maximum.
func (p *Player) Heal(n int) {
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
	if p.Health < 0 {
		p.Health = 0
	}
}

// Pay deducts gold and reports whether the player could afford it.
func (p *Player) Pay(n int) bool {
	if n > p.Gold {
		return false
	}
	p.Gold -= n
	return true
}

// KnowsSpell reports whether id is in the spellbook.
func (p *Player) KnowsSpell(id string) bool {
	for _, s := range p.Spellbook {
		if s == id {
			return true
		}
	}
	return false
}

// LearnSpell appends to the spellbook in learn order.
func (p *Player) LearnSpell(id string) {
	if !p.KnowsSpell(id) {
		p.Spellbook = append(p.Spellbook, id)
	}
}

// IsEquipped reports whether the item occupies its slot right now.
func (p *Player) IsEquipped(def ItemDef) bool {
	if def.Slot == "" {
		return false
	}
	return p.Equipped[def.Slot] == def.ID
}

// ToggleEquip equips the item into its slot, or unequips it if already worn.
// Non-gear is rejected.
func (p *Player) ToggleEquip(def ItemDef) bool {
	if def.Kind != ItemWeapon && def.Kind != ItemArmor {
		return false
	}
	if p.IsEquipped(def) {
		delete(p.Equipped, def.Slot)
		return true
	}
	p.Equipped[def.Slot] = def.ID
	return true
}

// CarryWeight sums pack weight in tenth-stones.
func (p *Player) CarryWeight(c *Content) int {
	total := 0
	for _, st := range p.Pack.Stacks() {
		if def, ok := c.Item(st.ItemID); ok {
			total += def.Weight * st.Count
		}
	}
	return total
}

// CarryLimit scales with might.
func (p *Player) CarryLimit() int {
	return 120 + 20*p.Attributes[AttrMight]
}

// Dead reports whether the run is over.
func (p *Player) Dead() bool { return p.Health <= 0 }
