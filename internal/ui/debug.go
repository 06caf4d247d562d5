package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/nav"
)

var debugTabs = []string{"Spawn", "Teleport", "Weather", "Time"}

// Chain levels within a debug tab. A pushed frame's tag names the level it
// was pushed from, which is the level Esc returns to.
const (
	lvlType     = "type"
	lvlCreature = "creature"
	lvlDir      = "dir"
	lvlDist     = "dist"
	lvlWeather  = "weather"
	lvlTime     = "time"
)

type dbgRow struct {
	id    string
	label string
}

func (r dbgRow) ItemID() string  { return r.id }
func (r dbgRow) Display() string { return r.label }

// debugScreen is the f6 menu: four tabs of nested pick-lists, each chain
// ending in a session mutation. Esc unwinds one level at a time and closes
// the screen from a chain root; switching tabs abandons the current chain.
type debugScreen struct {
	st      *styles
	keys    KeyMap
	session *game.Session

	tab   int
	level string
	list  *nav.List[dbgRow]
	stack nav.Stack[dbgRow]
	sc    nav.Scroller

	pickType     game.CreatureType
	pickCreature string
	pickDir      game.Direction

	status string
	ok     bool
}

func newDebugScreen(st *styles, keys KeyMap, s *game.Session) *debugScreen {
	scr := &debugScreen{st: st, keys: keys, session: s, level: lvlType}
	scr.list = nav.NewSourcedList(scr.typeRows)
	return scr
}

func (s *debugScreen) Title() string { return "Debug" }

func (s *debugScreen) typeRows() []dbgRow {
	rows := make([]dbgRow, 0, len(game.AllCreatureTypes))
	for _, t := range game.AllCreatureTypes {
		n := len(s.session.Content.CreaturesOfType(t))
		rows = append(rows, dbgRow{id: string(t), label: fmt.Sprintf("%-12s %d known", t, n)})
	}
	return rows
}

func (s *debugScreen) creatureRows() []dbgRow {
	defs := s.session.Content.CreaturesOfType(s.pickType)
	rows := make([]dbgRow, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, dbgRow{id: d.ID, label: fmt.Sprintf("%-22s %s  menace %d", d.Name, d.Glyph, d.Menace)})
	}
	return rows
}

func (s *debugScreen) dirRows() []dbgRow {
	rows := make([]dbgRow, 0, len(game.AllDirections))
	for _, d := range game.AllDirections {
		rows = append(rows, dbgRow{id: string(d), label: string(d)})
	}
	return rows
}

func (s *debugScreen) distRows() []dbgRow {
	rows := make([]dbgRow, 0, 5)
	for i := 1; i <= 5; i++ {
		label := fmt.Sprintf("%d paces", i)
		if i == 1 {
			label = "1 pace"
		}
		rows = append(rows, dbgRow{id: strconv.Itoa(i), label: label})
	}
	return rows
}

func (s *debugScreen) weatherRows() []dbgRow {
	rows := make([]dbgRow, 0, len(game.AllCavernWeather)+1)
	for _, w := range game.AllCavernWeather {
		rows = append(rows, dbgRow{id: string(w), label: string(w)})
	}
	rows = append(rows, dbgRow{id: "clear", label: "clear override"})
	return rows
}

func (s *debugScreen) timeRows() []dbgRow {
	return []dbgRow{
		{id: "1", label: "one turn"},
		{id: strconv.Itoa(game.TurnsPerWatch), label: "one watch"},
		{id: strconv.Itoa(game.TurnsPerDay), label: "one day"},
		{id: strconv.Itoa(5 * game.TurnsPerDay), label: "five days"},
	}
}

func (s *debugScreen) rootFor(tab int) (string, func() []dbgRow) {
	switch tab {
	case 1:
		return lvlDir, s.dirRows
	case 2:
		return lvlWeather, s.weatherRows
	case 3:
		return lvlTime, s.timeRows
	}
	return lvlType, s.typeRows
}

func (s *debugScreen) levelSource(level string) func() []dbgRow {
	switch level {
	case lvlType:
		return s.typeRows
	case lvlCreature:
		return s.creatureRows
	case lvlDir:
		return s.dirRows
	case lvlDist:
		return s.distRows
	case lvlWeather:
		return s.weatherRows
	}
	return s.timeRows
}

func (s *debugScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(keyMsg, s.keys.Back):
		return s.back(), nil
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

func (s *debugScreen) switchTab(delta int) {
	s.tab = nav.Cycle(s.tab, delta, len(debugTabs))
	s.stack.Clear()
	s.status = ""
	s.reset()
}

func (s *debugScreen) reset() {
	level, src := s.rootFor(s.tab)
	s.level = level
	s.list.SetSource(src)
	s.list.ClearFilter()
	s.list.SetIndex(0)
	s.sc.Reset()
}

func (s *debugScreen) descend(next string) {
	s.stack.Push(s.list.Snapshot(s.level, s.level))
	s.level = next
	s.list.SetSource(s.levelSource(next))
	s.list.ClearFilter()
	s.list.SetIndex(0)
	s.sc.Reset()
}

// back pops one chain level, re-attaching the source the restored level
// draws from. From a chain root it closes the screen instead.
func (s *debugScreen) back() bool {
	frame, ok := s.stack.Pop()
	if !ok {
		return true
	}
	s.level = frame.Tag
	s.list.Restore(frame)
	s.list.SetSource(s.levelSource(frame.Tag))
	s.sc.Request(s.list.Index())
	return false
}

func (s *debugScreen) confirm() {
	row, ok := s.list.Selected()
	if !ok {
		return
	}
	switch s.level {
	case lvlType:
		s.pickType = game.CreatureType(row.id)
		s.descend(lvlCreature)
	case lvlCreature:
		s.pickCreature = row.id
		s.descend(lvlDir)
	case lvlDir:
		s.pickDir = game.Direction(row.id)
		s.descend(lvlDist)
	case lvlDist:
		dist, _ := strconv.Atoi(row.id)
		if s.tab == 0 {
			s.finish(s.session.DebugSpawn(s.pickCreature, s.pickDir, dist))
		} else {
			s.finish(s.session.DebugTeleport(s.pickDir, dist))
		}
	case lvlWeather:
		w := game.CavernWeather(row.id)
		if row.id == "clear" {
			w = ""
		}
		s.finish(s.session.DebugWeather(w))
	case lvlTime:
		turns, _ := strconv.Atoi(row.id)
		s.finish(s.session.DebugAdvanceTime(turns))
	}
}

// finish reports the result and collapses the chain back to the tab root.
func (s *debugScreen) finish(res game.ActionResult) {
	s.status, s.ok = res.Message, res.OK
	s.stack.Clear()
	s.reset()
}

func (s *debugScreen) crumbs() string {
	parts := []string{strings.ToLower(debugTabs[s.tab])}
	if s.tab == 0 {
		if s.level != lvlType {
			parts = append(parts, string(s.pickType))
		}
		if s.level == lvlDir || s.level == lvlDist {
			if def, ok := s.session.Content.Creature(s.pickCreature); ok {
				parts = append(parts, def.Name)
			}
		}
	}
	if s.level == lvlDist {
		parts = append(parts, string(s.pickDir))
	}
	return strings.Join(parts, " > ")
}

func (s *debugScreen) View(width, height int) string {
	innerW := width - 8
	if innerW < 40 {
		innerW = 40
	}
	listH := height - 15
	if listH < 5 {
		listH = 5
	}

	clock := s.session.Clock
	var b strings.Builder
	b.WriteString(s.st.title.Render("DEBUG"))
	b.WriteString("  ")
	b.WriteString(s.st.muted.Render(fmt.Sprintf("day %d, %s · %s · %d chunks live",
		clock.Day(), clock.Watch(), clock.Weather(), s.session.World.LoadedChunks())))
	b.WriteString("\n\n")
	b.WriteString(tabRow(s.st, debugTabs, s.tab))
	b.WriteString("\n")
	b.WriteString(s.st.muted.Render(s.crumbs()))
	b.WriteString("\n\n")
	b.WriteString(filterLine(s.st, s.list))
	b.WriteString("\n")
	b.WriteString(renderRows(s.st, s.list, &s.sc, listH, func(r dbgRow, _ bool) string {
		return r.label
	}))
	b.WriteString("\n")
	b.WriteString(statusText(s.st, s.ok, s.status))
	b.WriteString("\n")
	b.WriteString(s.st.legend.Render("[enter] choose  [tab] tabs  [esc] back  type to filter"))
	return s.st.box.Width(innerW).Render(b.String())
}
