package nav

import (
	"strings"
	"unicode"
)

// Item is anything a List can display, filter and select.
type Item interface {
	ItemID() string
	Display() string
}

// List holds the selectable state for one menu level: the authoritative item
// slice, the filtered view derived from it, the selection index and the live
// filter text. It performs no I/O and never panics on empty input; callers
// feed it key events and read it back at render time.
type List[T Item] struct {
	source   func() []T
	items    []T
	filtered []T
	index    int
	filter   []rune
}

// NewList builds a list over a fixed item slice.
func NewList[T Item](items []T) *List[T] {
	l := &List[T]{}
	l.SetItems(items)
	return l
}

// NewSourcedList builds a list backed by a provider. The provider is queried
// immediately and again on every Reload, so mutating actions (buy, craft,
// learn) are followed by a Reload rather than by editing items in place.
func NewSourcedList[T Item](source func() []T) *List[T] {
	l := &List[T]{source: source}
	l.Reload()
	return l
}

// SetSource swaps the provider and re-queries it. Used by stacked flows that
// reuse one list across levels.
func (l *List[T]) SetSource(source func() []T) {
	l.source = source
	l.Reload()
}

// SetItems replaces the unfiltered items, re-applies the current filter and
// clamps the selection into the new range.
func (l *List[T]) SetItems(items []T) {
	l.items = items
	l.applyFilter(false)
}

// Reload re-queries the provider (or, for a fixed list, re-derives the
// filtered view) and clamps the selection. Selection is repaired by clamping
// only; it does not chase the previously selected item.
func (l *List[T]) Reload() {
	if l.source != nil {
		l.items = l.source()
	}
	l.applyFilter(false)
}

// Move shifts the selection by delta and clamps to [0, len-1]. Deltas beyond
// ±1 are page steps. On an empty list it is a no-op and the index stays 0.
func (l *List[T]) Move(delta int) {
	l.index += delta
	l.clampIndex()
}

// Index returns the selection index into the filtered view (0 when empty).
func (l *List[T]) Index() int { return l.index }

// SetIndex clamps i into the filtered range and selects it.
func (l *List[T]) SetIndex(i int) {
	l.index = i
	l.clampIndex()
}

// Selected returns the selected item, or ok=false when nothing is selectable.
func (l *List[T]) Selected() (T, bool) {
	var zero T
	if len(l.filtered) == 0 {
		return zero, false
	}
	return l.filtered[l.index], true
}

// HasSelection reports whether confirm-style actions have a target.
func (l *List[T]) HasSelection() bool { return len(l.filtered) > 0 }

// Items returns the filtered view in display order.
func (l *List[T]) Items() []T { return l.filtered }

// Len is the filtered length; TotalLen the unfiltered one.
func (l *List[T]) Len() int      { return len(l.filtered) }
func (l *List[T]) TotalLen() int { return len(l.items) }

// Filter returns the live filter text.
func (l *List[T]) Filter() string { return string(l.filter) }

// Filtering reports whether a filter is active, which distinguishes a
// "no matches" placeholder from a genuinely empty list.
func (l *List[T]) Filtering() bool { return len(l.filter) > 0 }

// TypeRune appends r to the filter if it is an accepted rune and reports
// whether the filter changed. Rejected runes leave every part of the state
// untouched, including the selection.
func (l *List[T]) TypeRune(r rune) bool {
	if !filterRune(r) {
		return false
	}
	l.filter = append(l.filter, r)
	l.applyFilter(true)
	return true
}

// Backspace removes the last filter rune and reports whether it did.
func (l *List[T]) Backspace() bool {
	if len(l.filter) == 0 {
		return false
	}
	l.filter = l.filter[:len(l.filter)-1]
	l.applyFilter(true)
	return true
}

// ClearFilter drops the filter text. Selection resets with the recompute.
func (l *List[T]) ClearFilter() {
	if len(l.filter) == 0 {
		return
	}
	l.filter = nil
	l.applyFilter(true)
}

// filterRune accepts letters, digits, space, hyphen and underscore. Control
// and navigation runes never reach the filter.
func filterRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_'
}

// applyFilter recomputes the filtered view as a case-insensitive substring
// match over Display(), preserving unfiltered order. reset forces the
// selection back to 0, which every filter edit does; item reloads clamp
// instead.
func (l *List[T]) applyFilter(reset bool) {
	q := strings.ToLower(string(l.filter))
	if q == "" {
		l.filtered = l.items
	} else {
		out := make([]T, 0, len(l.items))
		for _, it := range l.items {
			if strings.Contains(strings.ToLower(it.Display()), q) {
				out = append(out, it)
			}
		}
		l.filtered = out
	}
	if reset {
		l.index = 0
	}
	l.clampIndex()
}

func (l *List[T]) clampIndex() {
	if len(l.filtered) == 0 {
		l.index = 0
		return
	}
	if l.index < 0 {
		l.index = 0
	}
	if l.index >= len(l.filtered) {
		l.index = len(l.filtered) - 1
	}
}

// Cycle wraps index+delta around n entries. Tab rows and page cycles wrap;
// list browsing clamps via Move.
func Cycle(index, delta, n int) int {
	if n <= 0 {
		return 0
	}
	i := (index + delta) % n
	if i < 0 {
		i += n
	}
	return i
}
