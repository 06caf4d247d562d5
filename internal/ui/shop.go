package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/nav"
)

// shopRow is one line of stock or sellable goods.
type shopRow struct {
	id     string
	name   string
	price  int
	count  int
	afford bool
}

func (r shopRow) ItemID() string  { return r.id }
func (r shopRow) Display() string { return r.name }

var shopTabs = []string{"Buy", "Sell"}

type shopScreen struct {
	st      *styles
	keys    KeyMap
	session *game.Session
	tab     int
	list    *nav.List[shopRow]
	sc      nav.Scroller
	status  string
	ok      bool
}

func newShopScreen(st *styles, keys KeyMap, s *game.Session) *shopScreen {
	scr := &shopScreen{st: st, keys: keys, session: s}
	scr.list = nav.NewSourcedList(scr.rows)
	return scr
}

func (s *shopScreen) Title() string { return "Shop" }

func (s *shopScreen) rows() []shopRow {
	if s.tab == 0 {
		return s.buyRows()
	}
	return s.sellRows()
}

func (s *shopScreen) buyRows() []shopRow {
	var out []shopRow
	for _, stk := range s.session.Shop.Stock() {
		def, ok := s.session.Content.Item(stk.ItemID)
		if !ok {
			continue
		}
		out = append(out, shopRow{
			id:     stk.ItemID,
			name:   def.Name,
			price:  stk.Price,
			count:  stk.Count,
			afford: s.session.Player.Gold >= stk.Price,
		})
	}
	return out
}

func (s *shopScreen) sellRows() []shopRow {
	var out []shopRow
	for _, stk := range s.session.SellableStacks() {
		def, ok := s.session.Content.Item(stk.ItemID)
		if !ok {
			continue
		}
		out = append(out, shopRow{
			id:     stk.ItemID,
			name:   def.Name,
			price:  s.session.Shop.SellPrice(def),
			count:  stk.Count,
			afford: true,
		})
	}
	return out
}

func (s *shopScreen) switchTab(delta int) {
	s.tab = nav.Cycle(s.tab, delta, len(shopTabs))
	s.list.ClearFilter()
	s.list.Reload()
	s.list.SetIndex(0)
	s.sc.Reset()
	s.status = ""
}

func (s *shopScreen) confirm() {
	row, ok := s.list.Selected()
	if !ok {
		return
	}
	var res game.ActionResult
	if s.tab == 0 {
		res = s.session.BuyItem(row.id)
	} else {
		res = s.session.SellItem(row.id)
	}
	s.status, s.ok = res.Message, res.OK
	s.list.Reload()
	s.sc.Request(s.list.Index())
}

func (s *shopScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
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
		s.confirm()
	default:
		if listKeys(keyMsg, s.keys, s.list, &s.sc) {
			s.status = ""
		}
	}
	return false, nil
}

func (s *shopScreen) View(width, height int) string {
	innerW := width - 8
	if innerW < 40 {
		innerW = 40
	}
	listH := height - 12
	if listH < 5 {
		listH = 5
	}
	var b strings.Builder
	b.WriteString(s.st.title.Render("DEEPMARKET") + "  " + s.st.muted.Render(fmt.Sprintf("%d marks", s.session.Player.Gold)) + "\n")
	b.WriteString(tabRow(s.st, shopTabs, s.tab) + "\n")
	b.WriteString(filterLine(s.st, s.list) + "\n\n")
	b.WriteString(renderRows(s.st, s.list, &s.sc, listH, func(r shopRow, _ bool) string {
		line := fmt.Sprintf("%-28s ×%-3d %4d marks", truncate(r.name, 28), r.count, r.price)
		if s.tab == 0 && !r.afford {
			line += "  (short)"
		}
		return line
	}))
	if s.status != "" {
		b.WriteString("\n\n" + statusText(s.st, s.ok, truncate(s.status, innerW)))
	}
	b.WriteString("\n" + s.st.legend.Render("[enter] trade  [tab] buy/sell  [esc] close"))
	return s.st.box.Width(innerW).Render(b.String())
}
