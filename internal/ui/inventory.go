package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/nav"
)

// invRow is one pack stack shown in the inventory list.
type invRow struct {
	def      game.ItemDef
	count    int
	equipped bool
}

func (r invRow) ItemID() string  { return r.def.ID }
func (r invRow) Display() string { return r.def.Name }

var invTabs = []string{"All", "Gear", "Consumables", "Materials"}

type inventoryScreen struct {
	st      *styles
	keys    KeyMap
	session *game.Session
	tab     int
	list    *nav.List[invRow]
	sc      nav.Scroller
	status  string
	ok      bool
}

func newInventoryScreen(st *styles, keys KeyMap, s *game.Session) *inventoryScreen {
	scr := &inventoryScreen{st: st, keys: keys, session: s}
	scr.list = nav.NewSourcedList(scr.rows)
	return scr
}

func (s *inventoryScreen) Title() string { return "Inventory" }

func (s *inventoryScreen) rows() []invRow {
	var out []invRow
	for _, stk := range s.session.Player.Pack.Stacks() {
		def, ok := s.session.Content.Item(stk.ItemID)
		if !ok || !invTabMatches(s.tab, def.Kind) {
			continue
		}
		out = append(out, invRow{def: def, count: stk.Count, equipped: s.session.Player.IsEquipped(def)})
	}
	return out
}

func invTabMatches(tab int, kind game.ItemKind) bool {
	switch tab {
	case 1:
		return kind == game.ItemWeapon || kind == game.ItemArmor
	case 2:
		return kind == game.ItemConsumable
	case 3:
		return kind == game.ItemMaterial
	}
	return true
}

func (s *inventoryScreen) switchTab(delta int) {
	s.tab = nav.Cycle(s.tab, delta, len(invTabs))
	s.list.ClearFilter()
	s.list.Reload()
	s.list.SetIndex(0)
	s.sc.Reset()
	s.status = ""
}

func (s *inventoryScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
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
	case key.Matches(keyMsg, s.keys.Confirm):
		if row, ok := s.list.Selected(); ok {
			res := s.session.UseItem(row.def.ID)
			s.status, s.ok = res.Message, res.OK
			s.list.Reload()
			s.sc.Request(s.list.Index())
		}
	case key.Matches(keyMsg, s.keys.Drop):
		if row, ok := s.list.Selected(); ok {
			res := s.session.DropItem(row.def.ID)
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

func (s *inventoryScreen) View(width, height int) string {
	innerW := width - 8
	if innerW < 40 {
		innerW = 40
	}
	listH := height - 14
	if listH < 5 {
		listH = 5
	}
	var b strings.Builder
	b.WriteString(s.st.title.Render("INVENTORY") + "\n")
	b.WriteString(tabRow(s.st, invTabs, s.tab) + "\n")
	b.WriteString(filterLine(s.st, s.list) + "\n\n")
	b.WriteString(renderRows(s.st, s.list, &s.sc, listH, func(r invRow, _ bool) string {
		line := fmt.Sprintf("%s ×%d", r.def.Name, r.count)
		if r.equipped {
			line += "  (ready)"
		}
		return truncate(line, innerW-4)
	}))
	b.WriteString("\n\n" + s.renderDetail(innerW))
	if s.status != "" {
		b.WriteString("\n" + statusText(s.st, s.ok, truncate(s.status, innerW)))
	}
	b.WriteString("\n" + s.st.legend.Render("[enter] use/equip  [del] drop  [tab] tabs  [esc] close"))
	return s.st.box.Width(innerW).Render(b.String())
}

func (s *inventoryScreen) renderDetail(w int) string {
	row, ok := s.list.Selected()
	if !ok {
		return s.st.muted.Render("—")
	}
	d := row.def
	head := fmt.Sprintf("%s — %s, %s · %d marks · weight %d", d.Name, d.Kind, d.Rarity, d.Price, d.Weight)
	var effects []string
	if d.Heal > 0 {
		effects = append(effects, fmt.Sprintf("heals %d", d.Heal))
	}
	if d.Feed > 0 {
		effects = append(effects, fmt.Sprintf("feeds %d", d.Feed))
	}
	if d.Quench > 0 {
		effects = append(effects, fmt.Sprintf("quenches %d", d.Quench))
	}
	if len(effects) > 0 {
		head += " · " + strings.Join(effects, ", ")
	}
	out := truncate(head, w)
	if d.Lore != "" {
		out += "\n" + s.st.muted.Render(truncate(d.Lore, w))
	}
	return out
}
