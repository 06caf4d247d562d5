package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/stevenraines/underkingdom-tui/internal/nav"
)

// pageStep is how many rows PgUp/PgDn move at once.
const pageStep = 5

// screen is one modal layer over the game view. Screens are managed as a
// stack on App; the topmost screen receives all input and renders
// full-screen. Return pop=true to close.
type screen interface {
	// Title names the screen for the stack breadcrumb.
	Title() string
	// Update processes a message. Return pop=true to close the screen.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the screen for the given terminal dimensions.
	View(width, height int) string
}

// keyRune extracts the single printable rune from a key press, if any.
func keyRune(msg tea.KeyMsg) (rune, bool) {
	if msg.Type == tea.KeySpace {
		return ' ', true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return msg.Runes[0], true
	}
	return 0, false
}

// listKeys applies the shared list grammar to a nav list: arrows and paging
// move, printable runes feed the filter, backspace edits it. Returns true
// when the key was consumed so screens can layer their own bindings after.
func listKeys[T nav.Item](msg tea.KeyMsg, keys KeyMap, l *nav.List[T], sc *nav.Scroller) bool {
	switch {
	case key.Matches(msg, keys.Up):
		l.Move(-1)
	case key.Matches(msg, keys.Down):
		l.Move(1)
	case key.Matches(msg, keys.PageUp):
		l.Move(-pageStep)
	case key.Matches(msg, keys.PageDown):
		l.Move(pageStep)
	case msg.Type == tea.KeyBackspace:
		l.Backspace()
	default:
		r, ok := keyRune(msg)
		if !ok || !l.TypeRune(r) {
			return false
		}
	}
	sc.Request(l.Index())
	return true
}
