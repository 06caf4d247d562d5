package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCraftingRefusesShortfallThenCrafts(t *testing.T) {
	sess := uiSession(t, "workbench")
	scr := newCraftingScreen(testStyles(), DefaultKeyMap(), sess)

	// a miner only knows the ungated recipes
	if got := scr.list.Len(); got != 2 {
		t.Fatalf("expected two known recipes, got %d", got)
	}
	row, _ := scr.list.Selected()
	if row.def.ID != "recipe_moss_bread" {
		t.Fatalf("expected moss bread first, got %q", row.def.ID)
	}
	if row.ready {
		t.Fatalf("expected the recipe short on cave moss")
	}

	scr.Update(press(tea.KeyEnter))
	if scr.ok {
		t.Fatalf("expected the shortfall to refuse the craft, status %q", scr.status)
	}
	if got := sess.Player.Pack.Count("moss_bread"); got != 2 {
		t.Fatalf("expected only the kit bread, got %d", got)
	}

	sess.GiveItem("cave_moss", 3)
	scr.Update(press(tea.KeyEnter))
	if !scr.ok {
		t.Fatalf("expected the craft to land, status %q", scr.status)
	}
	if got := sess.Player.Pack.Count("moss_bread"); got != 4 {
		t.Fatalf("expected two loaves baked, got %d total", got)
	}
	if got := sess.Player.Pack.Count("cave_moss"); got != 0 {
		t.Fatalf("expected the moss consumed, %d left", got)
	}
}

func TestCraftingReloadKeepsSelection(t *testing.T) {
	sess := uiSession(t, "braid")
	sess.GiveItem("leather_strip", 2)
	scr := newCraftingScreen(testStyles(), DefaultKeyMap(), sess)

	scr.Update(press(tea.KeyDown))
	row, _ := scr.list.Selected()
	if row.def.ID != "recipe_rope_coil" || !row.ready {
		t.Fatalf("expected rope coil ready, got %q ready=%v", row.def.ID, row.ready)
	}

	scr.Update(press(tea.KeyEnter))
	if !scr.ok {
		t.Fatalf("expected the braid to land, status %q", scr.status)
	}
	if got := scr.list.Index(); got != 1 {
		t.Fatalf("expected selection to hold on rope coil, got index %d", got)
	}
	row, _ = scr.list.Selected()
	if row.ready {
		t.Fatalf("expected the strips consumed and the recipe short again")
	}
	if got := sess.Player.Pack.Count("rope_coil"); got != 1 {
		t.Fatalf("expected one rope coil, got %d", got)
	}
}
