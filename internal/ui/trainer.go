package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/nav"
)

// spellRow is one teachable spell or ritual.
type spellRow struct {
	def   game.SpellDef
	fee   int
	known bool
}

func (r spellRow) ItemID() string  { return r.def.ID }
func (r spellRow) Display() string { return r.def.Name }

type trainerScreen struct {
	st      *styles
	keys    KeyMap
	session *game.Session
	list    *nav.List[spellRow]
	sc      nav.Scroller
	status  string
	ok      bool
}

func newTrainerScreen(st *styles, keys KeyMap, s *game.Session) *trainerScreen {
	scr := &trainerScreen{st: st, keys: keys, session: s}
	scr.list = nav.NewSourcedList(scr.rows)
	return scr
}

func (s *trainerScreen) Title() string { return "Trainer" }

func (s *trainerScreen) rows() []spellRow {
	offers := s.session.Trainer.Offerings()
	out := make([]spellRow, 0, len(offers))
	for _, def := range offers {
		out = append(out, spellRow{
			def:   def,
			fee:   s.session.Trainer.Fee(def),
			known: s.session.Player.KnowsSpell(def.ID),
		})
	}
	return out
}

func (s *trainerScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(keyMsg, s.keys.Back):
		return true, nil
	case key.Matches(keyMsg, s.keys.Confirm):
		if row, ok := s.list.Selected(); ok {
			res := s.session.LearnSpell(row.def.ID)
			s.status, s.ok = res.Message, res.OK
			s.list.Reload()
			s.sc.Request(s.list.Index())
		}
	default:
		if listKeys(keyMsg, s.keys, s.list, &s.sc) {
			s.status = ""
		}
	}
	return false, nil
}

func (s *trainerScreen) View(width, height int) string {
	innerW := width - 8
	if innerW < 40 {
		innerW = 40
	}
	listH := height - 12
	if listH < 5 {
		listH = 5
	}
	var b strings.Builder
	b.WriteString(s.st.title.Render(strings.ToUpper(s.session.Trainer.Name)) + "  " + s.st.muted.Render(fmt.Sprintf("%d marks", s.session.Player.Gold)) + "\n")
	b.WriteString(filterLine(s.st, s.list) + "\n\n")
	b.WriteString(renderRows(s.st, s.list, &s.sc, listH, func(r spellRow, _ bool) string {
		kind := ""
		if r.def.Kind == game.SpellKindRitual {
			kind = " (ritual)"
		}
		line := fmt.Sprintf("%-26s %-14s tier %d%s  %4d marks", truncate(r.def.Name, 26), r.def.School, r.def.Tier, kind, r.fee)
		if r.known {
			line += "  ✓"
		}
		return line
	}))
	b.WriteString("\n\n" + s.renderDetail(innerW))
	if s.status != "" {
		b.WriteString("\n" + statusText(s.st, s.ok, truncate(s.status, innerW)))
	}
	b.WriteString("\n" + s.st.legend.Render("[enter] learn  [esc] close"))
	return s.st.box.Width(innerW).Render(b.String())
}

func (s *trainerScreen) renderDetail(w int) string {
	row, ok := s.list.Selected()
	if !ok {
		return s.st.muted.Render("—")
	}
	d := row.def
	head := fmt.Sprintf("%s — %s %s, essence %d", d.Name, d.School, d.Kind, d.Essence)
	out := truncate(head, w)
	if d.Lore != "" {
		out += "\n" + s.st.muted.Render(truncate(d.Lore, w))
	}
	return out
}
