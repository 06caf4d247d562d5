package game

// Trainer teaches spells and rituals for gold.
type Trainer struct {
	Name    string
	content *Content
}

// NewTrainer creates a trainer over the full spell catalog.
func NewTrainer(name string, content *Content) *Trainer {
	return &Trainer{Name: name, content: content}
}

// Offerings lists everything teachable, tier order.
func (t *Trainer) Offerings() []SpellDef {
	return t.content.SpellsByTier()
}

// Fee scales with the square of the tier; rituals cost half again as much
// for the extra instruction.
func (t *Trainer) Fee(def SpellDef) int {
	fee := 25 * def.Tier * def.Tier
	if def.Kind == SpellKindRitual {
		fee = fee * 3 / 2
	}
	return fee
}

// Teach writes the spell into the player's spellbook for the fee. Knowing it
// already, or being short on marks, refuses without side effects.
func (t *Trainer) Teach(p *Player, spellID string) ActionResult {
	def, ok := t.content.Spell(spellID)
	if !ok {
		return Failure("%s has never heard of that.", t.Name)
	}
	if p.KnowsSpell(spellID) {
		return Failure("You already know %s.", def.Name)
	}
	fee := t.Fee(def)
	if !p.Pay(fee) {
		return Failure("Learning %s costs %d marks; you can't pay.", def.Name, fee)
	}
	p.LearnSpell(spellID)
	if def.Kind == SpellKindRitual {
		return Success("You copy the rite of %s into your book for %d marks.", def.Name, fee)
	}
	return Success("You learn %s for %d marks.", def.Name, fee)
}
