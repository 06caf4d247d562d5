package nav

// Scroller keeps a list's first visible row plus a deferred bring-into-view
// request. Screens request a row right after rebuilding their list, when the
// viewport height is not yet known; the request is resolved by the next
// Window call at render time and then discarded, whether or not the row
// still exists.
type Scroller struct {
	top     int
	target  int
	pending bool
}

// Request asks for row to be scrolled into view at the next Window call.
// A later Request before that overrides an earlier one.
func (s *Scroller) Request(row int) {
	s.target = row
	s.pending = true
}

// Reset rewinds to the top and drops any pending request.
func (s *Scroller) Reset() {
	s.top = 0
	s.pending = false
}

// Top returns the current first visible row.
func (s *Scroller) Top() int { return s.top }

// Window returns the half-open visible range [start, end) for a list of
// count rows in a viewport of height rows. Any pending request is consumed
// here, exactly once: if the target row still exists the window shifts the
// minimal distance that makes it fully visible, and if it has gone away the
// request is dropped with no effect. The offset is always clamped so the
// window stays within the list.
func (s *Scroller) Window(count, height int) (start, end int) {
	if count <= 0 || height <= 0 {
		s.pending = false
		s.top = 0
		return 0, 0
	}
	if s.pending {
		s.pending = false
		if s.target >= 0 && s.target < count {
			if s.target < s.top {
				s.top = s.target
			} else if s.target >= s.top+height {
				s.top = s.target - height + 1
			}
		}
	}
	maxTop := count - height
	if maxTop < 0 {
		maxTop = 0
	}
	if s.top > maxTop {
		s.top = maxTop
	}
	if s.top < 0 {
		s.top = 0
	}
	end = s.top + height
	if end > count {
		end = count
	}
	return s.top, end
}
