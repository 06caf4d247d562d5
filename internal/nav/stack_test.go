package nav

import "testing"

func TestStackRoundTrip(t *testing.T) {
	top := entries("a", "b", "c", "d", "e", "f", "g")
	l := NewList(top)
	l.Move(5)

	var st Stack[entry]
	st.Push(l.Snapshot("root", "Debug"))
	l.SetItems(entries("north", "south", "east", "west"))
	for _, r := range "we" {
		l.TypeRune(r)
	}

	f, ok := st.Pop()
	if !ok {
		t.Fatalf("expected frame on stack")
	}
	l.Restore(f)
	if l.Len() != 7 {
		t.Fatalf("expected 7 restored items, got %d", l.Len())
	}
	if l.Index() != 5 {
		t.Fatalf("expected selection 5 restored, got %d", l.Index())
	}
	if l.Filter() != "" {
		t.Fatalf("expected filter cleared after pop, got %q", l.Filter())
	}
	for i, want := range top {
		if l.Items()[i].ItemID() != want.ItemID() {
			t.Fatalf("restored item %d differs", i)
		}
	}
}

func TestNestedMenuSelectionRestored(t *testing.T) {
	l := NewList(entries("spawn", "teleport", "weather", "time"))
	var st Stack[entry]

	l.Move(1) // teleport
	st.Push(l.Snapshot("tabs", "Debug"))
	l.SetItems(entries("north", "south", "east", "west"))

	l.Move(2) // east
	st.Push(l.Snapshot("direction", "Teleport"))
	l.SetItems(entries("1", "5", "10", "25"))
	l.Move(3)

	f, _ := st.Pop()
	l.Restore(f)
	if l.Index() != 2 {
		t.Fatalf("expected direction selection 2 restored, got %d", l.Index())
	}
	if got, _ := l.Selected(); got.Display() != "east" {
		t.Fatalf("expected east selected, got %q", got.Display())
	}

	f, _ = st.Pop()
	l.Restore(f)
	if l.Index() != 1 {
		t.Fatalf("expected tab selection 1 restored, got %d", l.Index())
	}
	if !st.Empty() {
		t.Fatalf("expected empty stack at root")
	}
	if _, ok := st.Pop(); ok {
		t.Fatalf("expected pop past bottom to report false")
	}
}

func TestSnapshotWithActiveFilterRecordsItem(t *testing.T) {
	l := NewList(packItems())
	for _, r := range "iron" {
		l.TypeRune(r)
	}
	l.Move(1) // Iron Shield, position 3 unfiltered

	f := l.Snapshot("pack", "Inventory")
	if f.Selected != 3 {
		t.Fatalf("expected unfiltered position 3 recorded, got %d", f.Selected)
	}
	l.SetItems(entries("use", "drop"))
	l.Restore(f)
	if got, _ := l.Selected(); got.Display() != "Iron Shield" {
		t.Fatalf("expected same item selected after restore, got %q", got.Display())
	}
}

func TestRestoreClampsStaleSelection(t *testing.T) {
	l := NewList(entries("a", "b"))
	l.Restore(Frame[entry]{Tag: "x", Items: entries("only"), Selected: 5})
	if l.Index() != 0 {
		t.Fatalf("expected stale selection clamped, got %d", l.Index())
	}
	l.Restore(Frame[entry]{Tag: "y"})
	if l.Len() != 0 || l.Index() != 0 {
		t.Fatalf("expected empty frame restored safely")
	}
}

func TestRestoreDetachesSource(t *testing.T) {
	deeper := entries("x", "y")
	l := NewSourcedList(func() []entry { return deeper })
	f := Frame[entry]{Tag: "root", Items: entries("a", "b", "c"), Selected: 2}
	l.Restore(f)
	l.Reload()
	if l.Len() != 3 {
		t.Fatalf("expected restored items to survive reload, got %d", l.Len())
	}
}
