package nav

// Frame is one saved menu level: which level it was, what it listed and what
// was selected. Filter text is deliberately absent; it never survives a
// level change in either direction.
type Frame[T Item] struct {
	Tag      string
	Title    string
	Items    []T
	Selected int
}

// Stack is a LIFO of menu levels for nested flows. Popping past the bottom
// reports ok=false and the caller falls back to its root state.
type Stack[T Item] struct {
	frames []Frame[T]
}

func (s *Stack[T]) Push(f Frame[T]) { s.frames = append(s.frames, f) }

func (s *Stack[T]) Pop() (Frame[T], bool) {
	if len(s.frames) == 0 {
		var zero Frame[T]
		return zero, false
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f, true
}

func (s *Stack[T]) Peek() (Frame[T], bool) {
	if len(s.frames) == 0 {
		var zero Frame[T]
		return zero, false
	}
	return s.frames[len(s.frames)-1], true
}

func (s *Stack[T]) Depth() int  { return len(s.frames) }
func (s *Stack[T]) Empty() bool { return len(s.frames) == 0 }
func (s *Stack[T]) Clear()      { s.frames = nil }

// Snapshot captures the list for a stack push before descending a level. The
// recorded selection is the selected item's position in the unfiltered slice,
// so restoring (which always starts unfiltered) lands on the same item even
// when a filter was active at push time.
func (l *List[T]) Snapshot(tag, title string) Frame[T] {
	items := append([]T(nil), l.items...)
	sel := 0
	if it, ok := l.Selected(); ok {
		for i := range l.items {
			if l.items[i].ItemID() == it.ItemID() {
				sel = i
				break
			}
		}
	}
	return Frame[T]{Tag: tag, Title: title, Items: items, Selected: sel}
}

// Restore reinstates a popped frame: its items, its selection, and an empty
// filter. The provider is detached so a later Reload cannot overwrite the
// restored items with the deeper level's source.
func (l *List[T]) Restore(f Frame[T]) {
	l.source = nil
	l.filter = nil
	l.items = f.Items
	l.applyFilter(false)
	l.SetIndex(f.Selected)
}
