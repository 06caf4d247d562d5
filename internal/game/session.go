package game

import "fmt"

// ActionResult is what every player-facing action returns: whether it took
// effect and one line for the journal or status bar. Actions never panic and
// never error; a refusal is a result, not a fault.
type ActionResult struct {
	OK      bool
	Message string
}

func Success(format string, args ...any) ActionResult {
	return ActionResult{OK: true, Message: fmt.Sprintf(format, args...)}
}

func Failure(format string, args ...any) ActionResult {
	return ActionResult{OK: false, Message: fmt.Sprintf(format, args...)}
}

// Session aggregates one run's live state and systems. Screens query it for
// lists and push actions through it; nothing in here touches the terminal or
// the database.
type Session struct {
	Seed    RunSeed
	Content *Content
	World   *World
	Player  *Player
	Clock   *Clock
	Shop    *Shop
	Trainer *Trainer
	Craft   *Crafting
	Journal *Journal

	craftStream *Stream
	crafts      int
}

// NewSession wires the systems for a fresh or restored character.
func NewSession(seed RunSeed, content *Content, p Player) *Session {
	s := &Session{
		Seed:        seed,
		Content:     content,
		World:       NewWorld(seed),
		Player:      &p,
		Clock:       NewClock(seed),
		Shop:        NewShop("deepmarket", content, seed),
		Trainer:     NewTrainer("Maele the Lorekeeper", content),
		Craft:       NewCrafting(content),
		Journal:     &Journal{},
		craftStream: seed.Stream("craft"),
	}
	s.Shop.Restock(s.Clock.Day())
	s.refreshEncumbrance()
	return s
}

// MovePlayer steps one tile if the ground allows it. A successful step costs
// a turn; bumping a wall or a creature costs nothing.
func (s *Session) MovePlayer(d Direction) bool {
	dx, dy := d.Delta()
	nx, ny := s.Player.X+dx, s.Player.Y+dy
	if cr := s.World.CreatureAt(nx, ny); cr != nil {
		s.Journal.Log("The %s blocks your way.", cr.Name)
		return false
	}
	if !s.World.Walkable(nx, ny) {
		return false
	}
	s.Player.X, s.Player.Y = nx, ny
	s.AdvanceTurns(1)
	return true
}

// Wait passes one turn in place.
func (s *Session) Wait() {
	s.AdvanceTurns(1)
	s.Journal.Log("You wait. The dark waits with you.")
}

// AdvanceTurns moves the clock and applies survival drains per turn passed.
// Paused clocks pass nothing.
func (s *Session) AdvanceTurns(n int) {
	passed := s.Clock.Advance(n)
	for i := 0; i < passed; i++ {
		s.tickOnce()
	}
	if passed > 0 {
		day := s.Clock.Day()
		s.Shop.Restock(day)
		s.World.Trim(s.Player.X, s.Player.Y, 2)
	}
}

// tickOnce applies one turn of hunger, thirst, fatigue and weather effects,
// then re-evaluates conditions.
func (s *Session) tickOnce() {
	p := s.Player
	t := s.Clock.Turn
	var d Stats
	if t%4 == 0 {
		d.Hunger++
	}
	if t%3 == 0 {
		d.Thirst++
	}
	if t%6 == 0 {
		d.Fatigue++
	}
	switch s.Clock.Weather() {
	case WeatherDeepchill:
		if t%2 == 0 {
			d.Warmth--
		}
	case WeatherStill:
		if t%4 == 0 && p.Stats.Warmth < 70 {
			d.Warmth++
		}
	case WeatherSporefall:
		if t%40 == 0 {
			p.setCondition(ConditionPoisoned, true)
			s.Journal.Log("Spores settle in your lungs.")
		}
	}
	p.UpdateStats(d)

	if p.Stats.Hunger >= 100 && t%5 == 0 {
		p.Heal(-1)
	}
	if p.Stats.Thirst >= 100 && t%3 == 0 {
		p.Heal(-1)
	}
	if p.Stats.Warmth <= 0 && t%4 == 0 {
		p.Heal(-1)
	}
	if p.HasCondition(ConditionPoisoned) && t%8 == 0 {
		p.Heal(-1)
	}

	p.setCondition(ConditionHungry, p.Stats.Hunger >= 80)
	p.setCondition(ConditionParched, p.Stats.Thirst >= 80)
	p.setCondition(ConditionWeary, p.Stats.Fatigue >= 85)
	p.setCondition(ConditionChilled, p.Stats.Warmth <= 20)
	s.refreshEncumbrance()
}

func (s *Session) refreshEncumbrance() {
	p := s.Player
	p.setCondition(ConditionBurdened, p.CarryWeight(s.Content) > p.CarryLimit())
}

// UseItem applies a consumable or toggles gear. Tools and materials have no
// standing use from the pack.
func (s *Session) UseItem(itemID string) ActionResult {
	p := s.Player
	def, ok := s.Content.Item(itemID)
	if !ok {
		return Failure("You turn it over in your hands, none the wiser.")
	}
	switch def.Kind {
	case ItemConsumable:
		if !p.Pack.Remove(itemID, 1) {
			return Failure("You have no %s left.", def.Name)
		}
		p.Heal(def.Heal)
		p.UpdateStats(Stats{Hunger: -def.Feed, Thirst: -def.Quench})
		s.refreshEncumbrance()
		return Success("You consume the %s.", def.Name)
	case ItemWeapon, ItemArmor:
		if p.Pack.Count(itemID) == 0 {
			return Failure("You are not carrying a %s.", def.Name)
		}
		wasOn := p.IsEquipped(def)
		p.ToggleEquip(def)
		if wasOn {
			return Success("You stow the %s.", def.Name)
		}
		return Success("You ready the %s.", def.Name)
	}
	return Failure("There is no use for the %s here.", def.Name)
}

// DropItem discards one of the item onto the cave floor.
func (s *Session) DropItem(itemID string) ActionResult {
	def, ok := s.Content.Item(itemID)
	if !ok || !s.Player.Pack.Remove(itemID, 1) {
		return Failure("Nothing to drop.")
	}
	if s.Player.Pack.Count(itemID) == 0 && s.Player.IsEquipped(def) {
		delete(s.Player.Equipped, def.Slot)
	}
	s.refreshEncumbrance()
	return Success("You drop the %s.", def.Name)
}

// BuyItem, SellItem, LearnSpell and CraftRecipe wrap their systems and log
// the outcome either way.
func (s *Session) BuyItem(itemID string) ActionResult {
	res := s.Shop.Buy(s.Player, itemID)
	s.refreshEncumbrance()
	s.Journal.Log("%s", res.Message)
	return res
}

func (s *Session) SellItem(itemID string) ActionResult {
	res := s.Shop.Sell(s.Player, itemID)
	s.refreshEncumbrance()
	s.Journal.Log("%s", res.Message)
	return res
}

func (s *Session) LearnSpell(spellID string) ActionResult {
	res := s.Trainer.Teach(s.Player, spellID)
	s.Journal.Log("%s", res.Message)
	return res
}

func (s *Session) CraftRecipe(recipeID string) ActionResult {
	s.crafts++
	st := s.craftStream.Child(fmt.Sprintf("n%d", s.crafts))
	res := s.Craft.Craft(s.Player, recipeID, st)
	s.refreshEncumbrance()
	s.Journal.Log("%s", res.Message)
	return res
}

// SellableStacks lists pack stacks the shop would consider buying.
func (s *Session) SellableStacks() []StackEntry {
	out := make([]StackEntry, 0, len(s.Player.Pack.Stacks()))
	for _, st := range s.Player.Pack.Stacks() {
		if def, ok := s.Content.Item(st.ItemID); ok && def.Kind != ItemRelic {
			out = append(out, st)
		}
	}
	return out
}

// DebugSpawn places a creature a distance away in a direction.
func (s *Session) DebugSpawn(creatureID string, d Direction, dist int) ActionResult {
	def, ok := s.Content.Creature(creatureID)
	if !ok {
		return Failure("No such creature in the bestiary.")
	}
	if dist < 1 {
		dist = 1
	}
	dx, dy := d.Delta()
	cr, placed := s.World.Spawn(def, s.Player.X+dx*dist, s.Player.Y+dy*dist)
	if !placed {
		return Failure("No footing for a %s there.", def.Name)
	}
	s.Journal.Log("A %s takes shape %d paces %s.", cr.Name, dist, d)
	return Success("Spawned %s %d %s.", def.Name, dist, d)
}

// DebugTeleport drops the player on the nearest walkable tile to the target.
func (s *Session) DebugTeleport(d Direction, dist int) ActionResult {
	if dist < 1 {
		dist = 1
	}
	dx, dy := d.Delta()
	tx, ty := s.Player.X+dx*dist, s.Player.Y+dy*dist
	for r := 0; r <= 6; r++ {
		for oy := -r; oy <= r; oy++ {
			for ox := -r; ox <= r; ox++ {
				if s.World.Walkable(tx+ox, ty+oy) && s.World.CreatureAt(tx+ox, ty+oy) == nil {
					s.Player.X, s.Player.Y = tx+ox, ty+oy
					s.Journal.Log("The world folds. You are elsewhere.")
					return Success("Teleported %d %s.", dist, d)
				}
			}
		}
	}
	return Failure("Solid rock everywhere near there.")
}

// DebugWeather pins or clears the weather override.
func (s *Session) DebugWeather(w CavernWeather) ActionResult {
	s.Clock.SetWeatherOverride(w)
	if w == "" {
		return Success("Weather returned to the forecast.")
	}
	s.Journal.Log("The air changes all at once.")
	return Success("Weather pinned to %s.", w)
}

// DebugAdvanceTime pushes the clock forward even while paused.
func (s *Session) DebugAdvanceTime(turns int) ActionResult {
	if turns <= 0 {
		return Failure("Time only runs forward here.")
	}
	s.Clock.ForceAdvance(turns)
	s.Shop.Restock(s.Clock.Day())
	return Success("Advanced %d turns to day %d, %s.", turns, s.Clock.Day(), s.Clock.Watch())
}

// Snapshot is the persisted shape of a run's mutable state. Terrain is not
// part of it; chunks regenerate from the seed.
type Snapshot struct {
	Player Player `json:"player"`
	Turn   int    `json:"turn"`
}

// Snapshot captures the session for saving.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{Player: *s.Player, Turn: s.Clock.Turn}
}

// RestoreSession rebuilds a session from a snapshot. The shop restocks for
// the restored day and encumbrance is re-derived.
func RestoreSession(seed RunSeed, content *Content, snap Snapshot) *Session {
	s := NewSession(seed, content, snap.Player)
	s.Clock.Turn = snap.Turn
	s.Shop.Restock(s.Clock.Day())
	s.refreshEncumbrance()
	return s
}

// GiveItem, GiveGold and HealPlayer back the console's cheat verbs.
func (s *Session) GiveItem(itemID string, n int) ActionResult {
	def, ok := s.Content.Item(itemID)
	if !ok {
		return Failure("No such item: %s", itemID)
	}
	if n < 1 {
		n = 1
	}
	s.Player.Pack.Add(itemID, n)
	s.refreshEncumbrance()
	return Success("Added %d x %s to the pack.", n, def.Name)
}

func (s *Session) GiveGold(n int) ActionResult {
	if n <= 0 {
		return Failure("That is not a sum.")
	}
	s.Player.Gold += n
	return Success("Granted %d marks.", n)
}

func (s *Session) HealPlayer() ActionResult {
	p := s.Player
	p.Health = p.MaxHealth
	p.Essence = p.MaxEssence
	p.Stats = Stats{Warmth: 70}
	p.Conditions = nil
	s.refreshEncumbrance()
	return Success("Wounds close, hungers quiet.")
}
