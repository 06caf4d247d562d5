package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestShopBuyMovesGoldAndGoods(t *testing.T) {
	sess := uiSession(t, "market")
	sess.GiveGold(5000)
	scr := newShopScreen(testStyles(), DefaultKeyMap(), sess)

	if got := scr.list.Len(); got == 0 {
		t.Fatalf("expected the deepmarket stocked on day zero")
	}
	row, _ := scr.list.Selected()
	goldBefore := sess.Player.Gold
	packBefore := sess.Player.Pack.Count(row.id)

	scr.Update(press(tea.KeyEnter))
	if got := sess.Player.Gold; got != goldBefore-row.price {
		t.Fatalf("expected %d marks after the buy, got %d", goldBefore-row.price, got)
	}
	if got := sess.Player.Pack.Count(row.id); got != packBefore+1 {
		t.Fatalf("expected the %s in the pack, count %d", row.id, got)
	}
	if !scr.ok {
		t.Fatalf("expected a successful buy, status %q", scr.status)
	}
}

func TestShopSellShrinksListAndClampsSelection(t *testing.T) {
	sess := uiSession(t, "barter")
	scr := newShopScreen(testStyles(), DefaultKeyMap(), sess)
	scr.Update(press(tea.KeyTab))

	// the miner kit sells as five stacks in acquisition order; the last is
	// the waterskin pair
	if got := scr.list.Len(); got != 5 {
		t.Fatalf("expected five sellable stacks, got %d", got)
	}
	for i := 0; i < 4; i++ {
		scr.Update(press(tea.KeyDown))
	}
	if got := scr.list.Index(); got != 4 {
		t.Fatalf("expected the last stack selected, got %d", got)
	}
	row, _ := scr.list.Selected()
	if row.id != "waterskin" {
		t.Fatalf("expected the waterskin stack last, got %q", row.id)
	}

	scr.Update(press(tea.KeyEnter))
	if got := scr.list.Len(); got != 5 {
		t.Fatalf("expected the halved stack still listed, got %d rows", got)
	}
	scr.Update(press(tea.KeyEnter))
	if got := scr.list.Len(); got != 4 {
		t.Fatalf("expected the emptied stack delisted, got %d rows", got)
	}
	if got := scr.list.Index(); got != 3 {
		t.Fatalf("expected the selection clamped to the new tail, got %d", got)
	}
	row, _ = scr.list.Selected()
	if row.id != "tinder_kit" {
		t.Fatalf("expected the tinder kit under the cursor, got %q", row.id)
	}
	if got := sess.Player.Pack.Count("waterskin"); got != 0 {
		t.Fatalf("expected both waterskins sold, %d left", got)
	}
}

func TestShopTabSwitchClearsFilter(t *testing.T) {
	sess := uiSession(t, "stalls")
	scr := newShopScreen(testStyles(), DefaultKeyMap(), sess)

	typeWord(t, scr, "zzzz")
	if got := scr.list.Len(); got != 0 {
		t.Fatalf("expected nothing to match zzzz, got %d", got)
	}
	scr.Update(press(tea.KeyTab))
	if got := scr.list.Filter(); got != "" {
		t.Fatalf("expected the filter cleared crossing tabs, got %q", got)
	}
	if got := scr.list.Len(); got != 5 {
		t.Fatalf("expected the sell tab fully listed, got %d", got)
	}
}
