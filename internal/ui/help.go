package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# THE UNDERKINGDOM

You are below, and the way up is gone. The caverns feed those who pay
attention and bury those who don't. Every step, swing and swallow costs a
turn, and the clock only matters while you act; opening any screen holds
the world still.

## Moving

- Arrows or h j k l walk one tile. Walls stop you, water slows you.
- . or space waits a turn in place.
- Walking into a creature attacks it.

## Screens

- i inventory, s deepmarket, t trainer, c crafting, @ character sheet
- m map overlay, : console, ? this manual
- Esc always backs out one step. In any list, typing filters the rows,
  Enter acts on the highlighted one, Tab switches tabs where there are
  tabs.

## Staying alive

- Hunger, thirst and fatigue climb; warmth falls in a deepchill. Let any
  run to the edge and conditions set in that bleed health every turn.
- Eat, drink and sleep before the meters force you to.
- Health refills slowly once fed and rested. Essence feeds spellcasting
  and recovers with rest.
- Carry weight past your limit slows everything you do.

## Trade and craft

- The deepmarket restocks each day and pays about half what it charges.
- Trainers teach spells for marks; ritual schools charge half again more.
- Crafting needs the right materials in your pack. The recipe list shows
  what's missing.

## The console

Open with : and type help for the verb list. Commands spend no turns.

## Saving

S saves on demand. The run also saves on quit, and whenever you die the
run is closed for good.
`

// helpScreen is the in-game manual: rendered markdown in a scrollable
// viewport. The markdown re-renders only when the width changes.
type helpScreen struct {
	st      *styles
	keys    KeyMap
	version string

	vp    viewport.Model
	ready bool
	lastW int
}

func newHelpScreen(st *styles, keys KeyMap, version string) *helpScreen {
	return &helpScreen{st: st, keys: keys, version: version}
}

func (s *helpScreen) Title() string { return "Help" }

func (s *helpScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, s.keys.Back) {
		return true, nil
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return false, cmd
}

func (s *helpScreen) View(width, height int) string {
	innerW := width - 8
	if innerW < 40 {
		innerW = 40
	}
	vpH := height - 8
	if vpH < 6 {
		vpH = 6
	}
	if !s.ready || innerW != s.lastW {
		renderer, _ := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(innerW-4))
		rendered, _ := renderer.Render(helpMarkdown)
		s.vp = viewport.New(innerW-4, vpH)
		s.vp.SetContent(rendered)
		s.ready = true
		s.lastW = innerW
	}
	s.vp.Height = vpH

	var b strings.Builder
	b.WriteString(s.vp.View())
	b.WriteString("\n")
	b.WriteString(s.st.legend.Render(fmt.Sprintf("[↑/↓ pgup/pgdn] scroll  [esc] close  ·  underkingdom %s", s.version)))
	return s.st.box.Width(innerW).Render(b.String())
}
