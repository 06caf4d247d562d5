package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
)

func testWizard(t *testing.T) *creationScreen {
	t.Helper()
	content, err := game.LoadContent()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	return newCreationScreen(testStyles(), DefaultKeyMap(), content)
}

func TestWizardWalksEveryStep(t *testing.T) {
	scr := testWizard(t)

	typeWord(t, scr, "duer")
	if got := scr.list.Len(); got != 1 {
		t.Fatalf("expected one race to match, got %d", got)
	}
	scr.Update(press(tea.KeyEnter))
	if scr.step != stepBackground {
		t.Fatalf("expected background step, got %v", scr.step)
	}
	if scr.race != game.RaceDuergar {
		t.Fatalf("expected duergar chosen, got %q", scr.race)
	}

	scr.Update(press(tea.KeyDown))
	scr.Update(press(tea.KeyEnter))
	if scr.background != game.BackgroundSmith {
		t.Fatalf("expected smith chosen, got %q", scr.background)
	}
	if scr.step != stepAttrs {
		t.Fatalf("expected attribute step, got %v", scr.step)
	}

	for i := 0; i < 6; i++ {
		scr.Update(pressRune('+'))
	}
	if got := scr.attrs[game.AttrMight]; got != game.AttrMax {
		t.Fatalf("expected might capped at %d, got %d", game.AttrMax, got)
	}
	scr.Update(press(tea.KeyDown))
	scr.Update(pressRune('+'))
	scr.Update(pressRune('+')) // pool exhausted, must not land
	if got := game.PointsSpent(scr.attrs); got != game.AttrPool {
		t.Fatalf("expected the full pool spent, got %d", got)
	}

	scr.Update(press(tea.KeyEnter))
	if scr.step != stepName {
		t.Fatalf("expected name step, got %v", scr.step)
	}
	scr.Update(press(tea.KeyEnter)) // empty name refused
	if scr.step != stepName {
		t.Fatalf("expected an empty name to be refused")
	}
	typeWord(t, scr, "Brakka")
	scr.Update(press(tea.KeyEnter))
	if scr.step != stepConfirm {
		t.Fatalf("expected confirm step, got %v", scr.step)
	}

	pop, _ := scr.Update(press(tea.KeyEnter))
	if !pop {
		t.Fatalf("expected the wizard to close on confirm")
	}
	p, done := scr.Result()
	if !done {
		t.Fatalf("expected a finished result")
	}
	if p.Name != "Brakka" || p.Race != game.RaceDuergar || p.Background != game.BackgroundSmith {
		t.Fatalf("expected choices carried into the player, got %+v", p)
	}
	if p.Attributes[game.AttrMight] != game.AttrMax {
		t.Fatalf("expected might %d on the player, got %d", game.AttrMax, p.Attributes[game.AttrMight])
	}
	if p.Pack.Count("iron_ingot") != 2 {
		t.Fatalf("expected the smith kit in the pack")
	}
}

func TestWizardBackRestoresFilteredChoice(t *testing.T) {
	scr := testWizard(t)

	typeWord(t, scr, "saurian")
	if got := scr.list.Len(); got != 1 {
		t.Fatalf("expected one match while filtered, got %d", got)
	}
	scr.Update(press(tea.KeyEnter))
	if scr.step != stepBackground {
		t.Fatalf("expected background step, got %v", scr.step)
	}

	scr.Update(press(tea.KeyEsc))
	if scr.step != stepRace {
		t.Fatalf("expected back at the race step, got %v", scr.step)
	}
	if scr.list.Filter() != "" {
		t.Fatalf("expected the filter cleared on back, got %q", scr.list.Filter())
	}
	row, ok := scr.list.Selected()
	if !ok || row.id != string(game.RaceSaurian) {
		t.Fatalf("expected saurian still selected, got %+v", row)
	}
	if got := scr.list.Index(); got != 3 {
		t.Fatalf("expected the unfiltered position restored, got %d", got)
	}
}

func TestWizardBackFromNameKeepsAttrs(t *testing.T) {
	scr := testWizard(t)
	scr.Update(press(tea.KeyEnter)) // human
	scr.Update(press(tea.KeyEnter)) // miner
	scr.Update(pressRune('+'))
	scr.Update(press(tea.KeyEnter)) // to name
	typeWord(t, scr, "Vel")
	scr.Update(press(tea.KeyEsc)) // back to attrs

	if scr.step != stepAttrs {
		t.Fatalf("expected attrs step after back, got %v", scr.step)
	}
	if got := scr.attrs[game.AttrMight]; got != game.AttrBase+1 {
		t.Fatalf("expected the spent point kept, got %d", got)
	}
	scr.Update(press(tea.KeyEnter)) // forward again
	if got := scr.name.Value(); got != "Vel" {
		t.Fatalf("expected the typed name kept, got %q", got)
	}
}

func TestWizardLoweringFreesPoints(t *testing.T) {
	scr := testWizard(t)
	scr.Update(press(tea.KeyEnter))
	scr.Update(press(tea.KeyEnter))

	for i := 0; i < 3; i++ {
		scr.Update(pressRune('-'))
	}
	if got := scr.attrs[game.AttrMight]; got != game.AttrMin {
		t.Fatalf("expected might floored at %d, got %d", game.AttrMin, got)
	}
	scr.Update(pressRune('-')) // below the floor, must not land
	if got := scr.attrs[game.AttrMight]; got != game.AttrMin {
		t.Fatalf("expected the floor held, got %d", got)
	}

	scr.Update(press(tea.KeyDown))
	for i := 0; i < 8; i++ {
		scr.Update(pressRune('+'))
	}
	// two points freed plus the pool of six, capped by the attribute maximum
	if got := scr.attrs[game.AttrFinesse]; got != game.AttrMax {
		t.Fatalf("expected finesse at %d with freed points, got %d", game.AttrMax, got)
	}
	if got := game.PointsSpent(scr.attrs); got != 3 {
		t.Fatalf("expected net spend of 3, got %d", got)
	}
}

func TestWizardCancelsFromRaceStep(t *testing.T) {
	scr := testWizard(t)
	pop, _ := scr.Update(press(tea.KeyEsc))
	if !pop {
		t.Fatalf("expected esc at the race step to close the wizard")
	}
	if _, done := scr.Result(); done {
		t.Fatalf("expected no result from a cancelled wizard")
	}
}
