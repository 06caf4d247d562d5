package game

import "testing"

func TestTeachSpell(t *testing.T) {
	c, err := LoadContent()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	tr := NewTrainer("Maele", c)
	p := NewPlayer("Iri", RaceHuman, BackgroundAcolyte, nil)
	p.Gold = 1000

	res := tr.Teach(&p, "emberbolt")
	if !res.OK {
		t.Fatalf("expected lesson to succeed: %s", res.Message)
	}
	if !p.KnowsSpell("emberbolt") {
		t.Fatalf("expected emberbolt in spellbook")
	}
	res = tr.Teach(&p, "emberbolt")
	if res.OK {
		t.Fatalf("expected already-known refusal")
	}
	res = tr.Teach(&p, "fireball_of_nowhere")
	if res.OK {
		t.Fatalf("expected unknown spell refusal")
	}
}

func TestTeachRequiresGold(t *testing.T) {
	c, _ := LoadContent()
	tr := NewTrainer("Maele", c)
	p := NewPlayer("Skint", RaceHuman, BackgroundPoacher, nil)
	p.Gold = 0
	res := tr.Teach(&p, "summon_skeleton")
	if res.OK {
		t.Fatalf("expected refusal without marks")
	}
	if p.KnowsSpell("summon_skeleton") {
		t.Fatalf("expected spellbook untouched on refusal")
	}
}

func TestRitualFeePremium(t *testing.T) {
	c, _ := LoadContent()
	tr := NewTrainer("Maele", c)
	wolf, _ := c.Spell("summon_wolf")
	ward, _ := c.Spell("stone_ward")
	if tr.Fee(wolf) <= tr.Fee(ward) {
		t.Fatalf("expected ritual of same tier to cost more: %d vs %d", tr.Fee(wolf), tr.Fee(ward))
	}
}
