package game

import "testing"

func TestNewPlayerDerivation(t *testing.T) {
	p := NewPlayer("Orvend", RaceDuergar, BackgroundMiner, nil)
	if p.MaxHealth != 20+4*AttrBase {
		t.Fatalf("expected max health %d, got %d", 20+4*AttrBase, p.MaxHealth)
	}
	if p.Health != p.MaxHealth || p.Essence != p.MaxEssence {
		t.Fatalf("expected full health and essence at creation")
	}
	if p.Pack.Count("miners_pick") != 1 {
		t.Fatalf("expected miner kit to include a pick")
	}
	if p.Pack.Count("moss_bread") == 0 {
		t.Fatalf("expected shared rations in every kit")
	}
}

func TestPointsSpent(t *testing.T) {
	attrs := NewAttributes()
	if PointsSpent(attrs) != 0 {
		t.Fatalf("expected baseline to cost nothing")
	}
	attrs[AttrMight] += 3
	attrs[AttrWits] -= 1
	if got := PointsSpent(attrs); got != 2 {
		t.Fatalf("expected net spend 2, got %d", got)
	}
}

func TestToggleEquip(t *testing.T) {
	c, err := LoadContent()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	p := NewPlayer("Sett", RaceHuman, BackgroundSmith, nil)
	sword, _ := c.Item("iron_sword")
	if !p.ToggleEquip(sword) || !p.IsEquipped(sword) {
		t.Fatalf("expected sword equipped into hand slot")
	}
	if !p.ToggleEquip(sword) || p.IsEquipped(sword) {
		t.Fatalf("expected second toggle to unequip")
	}
	moss, _ := c.Item("cave_moss")
	if p.ToggleEquip(moss) {
		t.Fatalf("expected material refused as gear")
	}
}

func TestUpdateStatsClamps(t *testing.T) {
	p := NewPlayer("Vel", RaceDeepGnome, BackgroundScholar, nil)
	p.UpdateStats(Stats{Hunger: 250, Thirst: -50})
	if p.Stats.Hunger != 100 {
		t.Fatalf("expected hunger clamped to 100, got %d", p.Stats.Hunger)
	}
	if p.Stats.Thirst != 0 {
		t.Fatalf("expected thirst clamped to 0, got %d", p.Stats.Thirst)
	}
}

func TestConditionSetAndClear(t *testing.T) {
	p := NewPlayer("Ash", RaceSaurian, BackgroundAcolyte, nil)
	p.setCondition(ConditionPoisoned, true)
	p.setCondition(ConditionPoisoned, true)
	if len(p.Conditions) != 1 {
		t.Fatalf("expected condition set once, got %v", p.Conditions)
	}
	p.setCondition(ConditionPoisoned, false)
	if p.HasCondition(ConditionPoisoned) {
		t.Fatalf("expected condition cleared")
	}
}
