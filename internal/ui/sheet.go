package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/nav"
)

// bookRow is one learned spell on the spellbook page.
type bookRow struct {
	def game.SpellDef
}

func (r bookRow) ItemID() string  { return r.def.ID }
func (r bookRow) Display() string { return r.def.Name }

var sheetTabs = []string{"Summary", "Attributes", "Spellbook"}

type sheetScreen struct {
	st      *styles
	keys    KeyMap
	session *game.Session
	tab     int
	book    *nav.List[bookRow]
	sc      nav.Scroller
}

func newSheetScreen(st *styles, keys KeyMap, s *game.Session) *sheetScreen {
	scr := &sheetScreen{st: st, keys: keys, session: s}
	scr.book = nav.NewSourcedList(scr.bookRows)
	return scr
}

func (s *sheetScreen) Title() string { return "Character" }

func (s *sheetScreen) bookRows() []bookRow {
	var out []bookRow
	for _, id := range s.session.Player.Spellbook {
		if def, ok := s.session.Content.Spell(id); ok {
			out = append(out, bookRow{def: def})
		}
	}
	return out
}

func (s *sheetScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(keyMsg, s.keys.Back):
		return true, nil
	case key.Matches(keyMsg, s.keys.NextTab):
		s.switchTab(1)
	case key.Matches(keyMsg, s.keys.PrevTab):
		s.switchTab(-1)
	default:
		if s.tab == 2 {
			listKeys(keyMsg, s.keys, s.book, &s.sc)
		}
	}
	return false, nil
}

func (s *sheetScreen) switchTab(delta int) {
	s.tab = nav.Cycle(s.tab, delta, len(sheetTabs))
	s.book.ClearFilter()
	s.book.Reload()
	s.book.SetIndex(0)
	s.sc.Reset()
}

func (s *sheetScreen) View(width, height int) string {
	innerW := width - 8
	if innerW < 40 {
		innerW = 40
	}
	var b strings.Builder
	b.WriteString(s.st.title.Render("CHARACTER") + "\n")
	b.WriteString(tabRow(s.st, sheetTabs, s.tab) + "\n\n")
	switch s.tab {
	case 1:
		b.WriteString(s.renderAttributes())
	case 2:
		b.WriteString(s.renderSpellbook(height))
	default:
		b.WriteString(s.renderSummary(innerW))
	}
	b.WriteString("\n\n" + s.st.legend.Render("[tab] pages  [esc] close"))
	return s.st.box.Width(innerW).Render(b.String())
}

func (s *sheetScreen) renderSummary(w int) string {
	p := s.session.Player
	c := s.session.Clock
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s — %s %s, level %d (%d xp)\n\n", p.Name, p.Race.Label(), p.Background.Label(), p.Level, p.XP))
	b.WriteString(fmt.Sprintf("HP %s %d/%d   Essence %s %d/%d\n", bar(p.Health, p.MaxHealth, 10), p.Health, p.MaxHealth, bar(p.Essence, p.MaxEssence, 10), p.Essence, p.MaxEssence))
	b.WriteString(fmt.Sprintf("%d marks · carrying %d/%d\n\n", p.Gold, p.CarryWeight(s.session.Content), p.CarryLimit()))
	b.WriteString(fmt.Sprintf("Day %d, %s of %s · %s\n\n", c.Day()+1, c.Watch(), c.Season(), c.Weather()))
	b.WriteString("EQUIPPED\n")
	any := false
	for _, slot := range game.AllGearSlots {
		id, ok := p.Equipped[slot]
		if !ok {
			continue
		}
		def, _ := s.session.Content.Item(id)
		b.WriteString(fmt.Sprintf("  %-8s %s\n", slot, def.Name))
		any = true
	}
	if !any {
		b.WriteString(s.st.muted.Render("  nothing readied") + "\n")
	}
	b.WriteString("\nCONDITIONS\n")
	if len(p.Conditions) == 0 {
		b.WriteString(s.st.muted.Render("  none"))
	} else {
		for _, cond := range p.Conditions {
			b.WriteString("  " + s.st.warn.Render(string(cond)) + "\n")
		}
	}
	return b.String()
}

func (s *sheetScreen) renderAttributes() string {
	p := s.session.Player
	var b strings.Builder
	for _, attr := range game.AllAttributes {
		v := p.Attributes[attr]
		b.WriteString(fmt.Sprintf("%-9s %s %d\n", attr, bar(v, game.AttrMax, 10), v))
	}
	b.WriteString("\n")
	b.WriteString(s.st.muted.Render(fmt.Sprintf("carry limit %d · max health %d · max essence %d",
		p.CarryLimit(), p.MaxHealth, p.MaxEssence)))
	return b.String()
}

func (s *sheetScreen) renderSpellbook(height int) string {
	listH := height - 12
	if listH < 5 {
		listH = 5
	}
	var b strings.Builder
	b.WriteString(filterLine(s.st, s.book) + "\n\n")
	b.WriteString(renderRows(s.st, s.book, &s.sc, listH, func(r bookRow, _ bool) string {
		kind := ""
		if r.def.Kind == game.SpellKindRitual {
			kind = " (ritual)"
		}
		return fmt.Sprintf("%-26s %-14s tier %d%s", truncate(r.def.Name, 26), r.def.School, r.def.Tier, kind)
	}))
	return b.String()
}
