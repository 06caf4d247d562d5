package nav

import (
	"fmt"
	"testing"
)

type entry struct {
	id    string
	label string
}

func (e entry) ItemID() string  { return e.id }
func (e entry) Display() string { return e.label }

func entries(labels ...string) []entry {
	out := make([]entry, len(labels))
	for i, l := range labels {
		out[i] = entry{id: fmt.Sprintf("e%d", i), label: l}
	}
	return out
}

func packItems() []entry {
	return entries(
		"Iron Sword",
		"Oak Staff",
		"Leather Cap",
		"Iron Shield",
		"Healing Draught",
		"Torch",
		"Rope Coil",
		"Moss Bread",
		"Glow Crystal",
		"Bone Charm",
	)
}

func TestMoveClampsAtEdges(t *testing.T) {
	l := NewList(entries("a", "b", "c", "d", "e"))
	l.Move(-1)
	if l.Index() != 0 {
		t.Fatalf("expected up at top to stay 0, got %d", l.Index())
	}
	l.Move(-5)
	if l.Index() != 0 {
		t.Fatalf("expected page up at top to stay 0, got %d", l.Index())
	}
	for _, d := range []int{1, 1, 5, 1, 5} {
		l.Move(d)
	}
	if l.Index() != 4 {
		t.Fatalf("expected clamp at last index 4, got %d", l.Index())
	}
	// arbitrary walk never leaves range
	for i, d := range []int{-5, 3, -1, 5, 5, -2, 1, -5, -5, 4} {
		l.Move(d)
		if l.Index() < 0 || l.Index() >= l.Len() {
			t.Fatalf("step %d: index %d out of range", i, l.Index())
		}
	}
}

func TestEmptyListNavigation(t *testing.T) {
	l := NewList([]entry{})
	l.Move(1)
	l.Move(-1)
	l.Move(5)
	if l.Index() != 0 {
		t.Fatalf("expected empty list to hold index 0, got %d", l.Index())
	}
	if l.HasSelection() {
		t.Fatalf("expected no selection on empty list")
	}
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected Selected to report no item")
	}
	if l.Filtering() {
		t.Fatalf("expected empty list without filter, not a no-matches state")
	}
}

func TestFilteredIsOrderedSubsequence(t *testing.T) {
	l := NewList(packItems())
	l.TypeRune('o')
	all := l.items
	j := 0
	for _, f := range l.Items() {
		found := false
		for ; j < len(all); j++ {
			if all[j].ItemID() == f.ItemID() {
				found = true
				j++
				break
			}
		}
		if !found {
			t.Fatalf("filtered item %q out of order or missing from unfiltered", f.Display())
		}
	}
}

func TestFilterIronScenario(t *testing.T) {
	l := NewList(packItems())
	for _, r := range "iron" {
		l.TypeRune(r)
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 iron items, got %d", l.Len())
	}
	got, _ := l.Selected()
	if got.Display() != "Iron Sword" {
		t.Fatalf("expected first match selected, got %q", got.Display())
	}
	for i := 0; i < 4; i++ {
		l.Backspace()
	}
	if l.Len() != 10 {
		t.Fatalf("expected full list after erasing filter, got %d", l.Len())
	}
	if l.Index() != 0 {
		t.Fatalf("expected selection reset to 0, got %d", l.Index())
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	l := NewList(packItems())
	for _, r := range "IRON" {
		l.TypeRune(r)
	}
	if l.Len() != 2 {
		t.Fatalf("expected case-insensitive match, got %d items", l.Len())
	}
}

func TestFilterSameQueryIdempotent(t *testing.T) {
	l := NewList(packItems())
	for _, r := range "ro" {
		l.TypeRune(r)
	}
	first := append([]entry(nil), l.Items()...)
	// re-deriving from the same query must not change the view
	l.Reload()
	if len(l.Items()) != len(first) {
		t.Fatalf("expected %d items after re-apply, got %d", len(first), len(l.Items()))
	}
	for i := range first {
		if l.Items()[i].ItemID() != first[i].ItemID() {
			t.Fatalf("item %d changed on re-apply: %q vs %q", i, l.Items()[i].Display(), first[i].Display())
		}
	}
}

func TestTypingResetsSelection(t *testing.T) {
	l := NewList(packItems())
	l.Move(3)
	l.TypeRune('o')
	if l.Index() != 0 {
		t.Fatalf("expected selection reset on filter edit, got %d", l.Index())
	}
	l.Move(2)
	l.Backspace()
	if l.Index() != 0 {
		t.Fatalf("expected selection reset on backspace, got %d", l.Index())
	}
}

func TestRejectedRunesIgnored(t *testing.T) {
	l := NewList(packItems())
	l.Move(2)
	for _, r := range []rune{'!', '?', '.', '/', '\t', '\n'} {
		if l.TypeRune(r) {
			t.Fatalf("expected rune %q rejected", r)
		}
	}
	if l.Filter() != "" {
		t.Fatalf("expected filter unchanged, got %q", l.Filter())
	}
	if l.Index() != 2 {
		t.Fatalf("expected selection untouched by rejected runes, got %d", l.Index())
	}
	// space, hyphen and underscore are part of the accepted set
	for _, r := range []rune{' ', '-', '_'} {
		if !l.TypeRune(r) {
			t.Fatalf("expected rune %q accepted", r)
		}
	}
}

func TestNoMatchesState(t *testing.T) {
	l := NewList(packItems())
	for _, r := range "zzz" {
		l.TypeRune(r)
	}
	if l.Len() != 0 {
		t.Fatalf("expected no matches, got %d", l.Len())
	}
	if !l.Filtering() {
		t.Fatalf("expected filtering state for placeholder")
	}
	l.Move(1)
	l.Move(-1)
	if l.Index() != 0 || l.HasSelection() {
		t.Fatalf("expected placeholder state non-navigable")
	}
}

func TestReloadClampsSelection(t *testing.T) {
	stock := entries("Pick", "Lantern", "Rations")
	l := NewSourcedList(func() []entry { return stock })
	l.Move(2)
	if l.Index() != 2 {
		t.Fatalf("expected index 2, got %d", l.Index())
	}
	// a purchase consumed the last stock entry
	stock = stock[:2]
	l.Reload()
	if l.Len() != 2 {
		t.Fatalf("expected 2 items after reload, got %d", l.Len())
	}
	if l.Index() != 1 {
		t.Fatalf("expected selection clamped to 1, got %d", l.Index())
	}
}

func TestReloadKeepsFilter(t *testing.T) {
	stock := entries("Iron Pick", "Lantern", "Iron Nails")
	l := NewSourcedList(func() []entry { return stock })
	for _, r := range "iron" {
		l.TypeRune(r)
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 matches, got %d", l.Len())
	}
	stock = stock[:2] // "Iron Nails" gone
	l.Reload()
	if l.Filter() != "iron" {
		t.Fatalf("expected filter preserved across reload, got %q", l.Filter())
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 match after reload, got %d", l.Len())
	}
}

func TestCycleWraps(t *testing.T) {
	if got := Cycle(0, -1, 4); got != 3 {
		t.Fatalf("expected wrap to 3, got %d", got)
	}
	if got := Cycle(3, 1, 4); got != 0 {
		t.Fatalf("expected wrap to 0, got %d", got)
	}
	if got := Cycle(2, 1, 4); got != 3 {
		t.Fatalf("expected plain step to 3, got %d", got)
	}
	if got := Cycle(0, 1, 0); got != 0 {
		t.Fatalf("expected 0 for empty cycle, got %d", got)
	}
}
