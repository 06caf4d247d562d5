package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/nav"
)

// recipeRow is one craftable recipe.
type recipeRow struct {
	def   game.RecipeDef
	ready bool
}

func (r recipeRow) ItemID() string  { return r.def.ID }
func (r recipeRow) Display() string { return r.def.Name }

type craftingScreen struct {
	st      *styles
	keys    KeyMap
	session *game.Session
	list    *nav.List[recipeRow]
	sc      nav.Scroller
	status  string
	ok      bool
}

func newCraftingScreen(st *styles, keys KeyMap, s *game.Session) *craftingScreen {
	scr := &craftingScreen{st: st, keys: keys, session: s}
	scr.list = nav.NewSourcedList(scr.rows)
	return scr
}

func (s *craftingScreen) Title() string { return "Crafting" }

func (s *craftingScreen) rows() []recipeRow {
	known := s.session.Craft.Known(s.session.Player)
	out := make([]recipeRow, 0, len(known))
	for _, rc := range known {
		_, ready := s.session.Craft.MissingMaterial(s.session.Player, rc)
		out = append(out, recipeRow{def: rc, ready: ready})
	}
	return out
}

func (s *craftingScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(keyMsg, s.keys.Back):
		return true, nil
	case key.Matches(keyMsg, s.keys.Confirm):
		if row, ok := s.list.Selected(); ok {
			res := s.session.CraftRecipe(row.def.ID)
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

func (s *craftingScreen) View(width, height int) string {
	innerW := width - 8
	if innerW < 40 {
		innerW = 40
	}
	listH := height - 14
	if listH < 5 {
		listH = 5
	}
	var b strings.Builder
	b.WriteString(s.st.title.Render("CRAFTING") + "\n")
	b.WriteString(filterLine(s.st, s.list) + "\n\n")
	b.WriteString(renderRows(s.st, s.list, &s.sc, listH, func(r recipeRow, _ bool) string {
		line := truncate(r.def.Name, 32)
		if r.def.Count > 1 {
			line += fmt.Sprintf(" ×%d", r.def.Count)
		}
		if !r.ready {
			line += "  (short)"
		}
		return line
	}))
	b.WriteString("\n\n" + s.renderMaterials(innerW))
	if s.status != "" {
		b.WriteString("\n" + statusText(s.st, s.ok, truncate(s.status, innerW)))
	}
	b.WriteString("\n" + s.st.legend.Render("[enter] craft  [esc] close"))
	return s.st.box.Width(innerW).Render(b.String())
}

// renderMaterials shows have/need counts for the selected recipe.
func (s *craftingScreen) renderMaterials(w int) string {
	row, ok := s.list.Selected()
	if !ok {
		return s.st.muted.Render("—")
	}
	mats := make([]string, 0, len(row.def.Materials))
	for id := range row.def.Materials {
		mats = append(mats, id)
	}
	sort.Strings(mats)
	parts := make([]string, 0, len(mats))
	for _, id := range mats {
		def, _ := s.session.Content.Item(id)
		have := s.session.Player.Pack.Count(id)
		need := row.def.Materials[id]
		part := fmt.Sprintf("%s %d/%d", def.Name, have, need)
		if have < need {
			part = s.st.warn.Render(part)
		} else {
			part = s.st.good.Render(part)
		}
		parts = append(parts, part)
	}
	out, _ := s.session.Content.Item(row.def.Output)
	return truncate("makes "+out.Name, w) + "\n" + strings.Join(parts, "  ")
}
