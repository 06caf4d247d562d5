package nav

import "testing"

func TestWindowFollowsRequest(t *testing.T) {
	var s Scroller
	s.Request(8)
	start, end := s.Window(10, 5)
	if start != 4 || end != 9 {
		t.Fatalf("expected window [4,9), got [%d,%d)", start, end)
	}
	// request upward
	s.Request(1)
	start, end = s.Window(10, 5)
	if start != 1 || end != 6 {
		t.Fatalf("expected window [1,6), got [%d,%d)", start, end)
	}
	// already visible rows cause no movement
	s.Request(3)
	start, _ = s.Window(10, 5)
	if start != 1 {
		t.Fatalf("expected offset unchanged for visible row, got %d", start)
	}
}

func TestRequestConsumedOnce(t *testing.T) {
	var s Scroller
	s.Request(9)
	s.Window(10, 3)
	if s.Top() != 7 {
		t.Fatalf("expected top 7, got %d", s.Top())
	}
	// no new request: a second render with the same geometry stays put
	start, _ := s.Window(10, 3)
	if start != 7 {
		t.Fatalf("expected stable window without request, got %d", start)
	}
}

func TestRequestForVanishedRow(t *testing.T) {
	var s Scroller
	s.Request(5)
	s.Window(20, 4) // top now 2
	// the list was rebuilt and the requested row no longer exists
	s.Request(42)
	start, end := s.Window(6, 4)
	if start != 2 || end != 6 {
		t.Fatalf("expected clamped window [2,6), got [%d,%d)", start, end)
	}
	// the dead request must not fire later either
	start, _ = s.Window(20, 4)
	if start != 2 {
		t.Fatalf("expected dead request dropped, got offset %d", start)
	}
}

func TestWindowClampsAfterShrink(t *testing.T) {
	var s Scroller
	s.Request(19)
	s.Window(20, 5) // top 15
	start, end := s.Window(8, 5)
	if start != 3 || end != 8 {
		t.Fatalf("expected window [3,8) after shrink, got [%d,%d)", start, end)
	}
	start, end = s.Window(0, 5)
	if start != 0 || end != 0 {
		t.Fatalf("expected empty window, got [%d,%d)", start, end)
	}
	start, end = s.Window(3, 5)
	if start != 0 || end != 3 {
		t.Fatalf("expected short list fully visible, got [%d,%d)", start, end)
	}
}
