package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/nav"
)

// wizStep is one stage of character creation, in order.
type wizStep int

const (
	stepRace wizStep = iota
	stepBackground
	stepAttrs
	stepName
	stepConfirm
)

var wizStepNames = []string{"Race", "Background", "Attributes", "Name", "Confirm"}

func (w wizStep) tag() string { return wizStepNames[w] }

func stepForTag(tag string) wizStep {
	for i, name := range wizStepNames {
		if name == tag {
			return wizStep(i)
		}
	}
	return stepRace
}

// wizRow is one pickable option in the creation lists.
type wizRow struct {
	id    string
	label string
}

func (r wizRow) ItemID() string  { return r.id }
func (r wizRow) Display() string { return r.label }

var raceBlurbs = map[game.Race]string{
	game.RaceHuman:     "Surfacers who wandered down and never found the way back.",
	game.RaceDuergar:   "Deep dwarves. Dour, tireless, at home under stone.",
	game.RaceDeepGnome: "Small and quiet. The caverns rarely notice them.",
	game.RaceSaurian:   "Cold-blooded cave dwellers drawn to the warm pools.",
}

var backgroundBlurbs = map[game.Background]string{
	game.BackgroundMiner:     "Knows which walls give and which bite back.",
	game.BackgroundSmith:     "Fed the forges topside before the descent.",
	game.BackgroundHerbalist: "Reads the mosses the way others read signs.",
	game.BackgroundScholar:   "Came down on purpose, notebook first.",
	game.BackgroundPoacher:   "Hunted things that were someone else's to hunt.",
	game.BackgroundAcolyte:   "Kept a shrine flame that has since gone out.",
}

// creationScreen walks a new character through race, background, point-buy
// attributes, a name and a final confirm. Each list step pushes a frame
// before descending so Esc retraces earlier choices; Esc on the race list
// abandons creation entirely.
type creationScreen struct {
	st      *styles
	keys    KeyMap
	content *game.Content

	step  wizStep
	list  *nav.List[wizRow]
	stack nav.Stack[wizRow]
	sc    nav.Scroller

	race       game.Race
	background game.Background
	attrs      map[game.Attribute]int
	name       textinput.Model

	player game.Player
	done   bool
}

func newCreationScreen(st *styles, keys KeyMap, content *game.Content) *creationScreen {
	s := &creationScreen{
		st:      st,
		keys:    keys,
		content: content,
		attrs:   game.NewAttributes(),
	}
	ti := textinput.New()
	ti.Placeholder = "a name the dark can learn"
	ti.CharLimit = 24
	s.name = ti
	s.list = nav.NewSourcedList(s.raceRows)
	return s
}

func (s *creationScreen) Title() string { return "Character creation" }

// Result hands the finished character to the caller once the confirm step
// has been accepted.
func (s *creationScreen) Result() (game.Player, bool) { return s.player, s.done }

func (s *creationScreen) raceRows() []wizRow {
	rows := make([]wizRow, 0, len(game.AllRaces))
	for _, r := range game.AllRaces {
		rows = append(rows, wizRow{id: string(r), label: r.Label()})
	}
	return rows
}

func (s *creationScreen) backgroundRows() []wizRow {
	rows := make([]wizRow, 0, len(game.AllBackgrounds))
	for _, b := range game.AllBackgrounds {
		rows = append(rows, wizRow{id: string(b), label: b.Label()})
	}
	return rows
}

// attrRows carries only the attribute ids; values render live from s.attrs
// so a restored frame never shows stale numbers.
func (s *creationScreen) attrRows() []wizRow {
	rows := make([]wizRow, 0, len(game.AllAttributes))
	for _, a := range game.AllAttributes {
		rows = append(rows, wizRow{id: string(a), label: string(a)})
	}
	return rows
}

func (s *creationScreen) sourceFor(step wizStep) func() []wizRow {
	switch step {
	case stepBackground:
		return s.backgroundRows
	case stepAttrs:
		return s.attrRows
	}
	return s.raceRows
}

func (s *creationScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.step == stepName {
			var cmd tea.Cmd
			s.name, cmd = s.name.Update(msg)
			return false, cmd
		}
		return false, nil
	}

	switch s.step {
	case stepName:
		return s.updateName(keyMsg)
	case stepConfirm:
		switch {
		case key.Matches(keyMsg, s.keys.Back):
			return s.back(), nil
		case key.Matches(keyMsg, s.keys.Confirm):
			s.player = game.NewPlayer(strings.TrimSpace(s.name.Value()), s.race, s.background, s.attrs)
			s.done = true
			return true, nil
		}
		return false, nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Back):
		return s.back(), nil
	case key.Matches(keyMsg, s.keys.Confirm):
		s.advance()
		return false, nil
	case s.step == stepAttrs && key.Matches(keyMsg, s.keys.Plus):
		s.adjust(1)
		return false, nil
	case s.step == stepAttrs && key.Matches(keyMsg, s.keys.Minus):
		s.adjust(-1)
		return false, nil
	}
	listKeys(keyMsg, s.keys, s.list, &s.sc)
	return false, nil
}

func (s *creationScreen) updateName(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Back):
		return s.back(), nil
	case key.Matches(msg, s.keys.Confirm):
		if strings.TrimSpace(s.name.Value()) == "" {
			return false, nil
		}
		s.name.Blur()
		s.step = stepConfirm
		return false, nil
	}
	var cmd tea.Cmd
	s.name, cmd = s.name.Update(msg)
	return false, cmd
}

// advance commits the current step's choice and descends. List steps push a
// frame first so back() can restore the exact selection later.
func (s *creationScreen) advance() {
	switch s.step {
	case stepRace:
		row, ok := s.list.Selected()
		if !ok {
			return
		}
		s.race = game.Race(row.id)
		s.descend(stepBackground)
	case stepBackground:
		row, ok := s.list.Selected()
		if !ok {
			return
		}
		s.background = game.Background(row.id)
		s.descend(stepAttrs)
	case stepAttrs:
		s.stack.Push(s.list.Snapshot(s.step.tag(), s.step.tag()))
		s.step = stepName
		s.name.Focus()
	}
}

func (s *creationScreen) descend(next wizStep) {
	s.stack.Push(s.list.Snapshot(s.step.tag(), s.step.tag()))
	s.step = next
	s.list.SetSource(s.sourceFor(next))
	s.list.ClearFilter()
	s.list.SetIndex(0)
	s.sc.Reset()
}

// back pops one level. Restore detaches the list's provider, so the popped
// step's source is re-attached to keep later reloads live.
func (s *creationScreen) back() bool {
	switch s.step {
	case stepConfirm:
		s.step = stepName
		s.name.Focus()
		return false
	case stepName:
		s.name.Blur()
	}
	frame, ok := s.stack.Pop()
	if !ok {
		return true
	}
	s.step = stepForTag(frame.Tag)
	s.list.Restore(frame)
	s.list.SetSource(s.sourceFor(s.step))
	s.sc.Request(s.list.Index())
	return false
}

func (s *creationScreen) adjust(delta int) {
	row, ok := s.list.Selected()
	if !ok {
		return
	}
	attr := game.Attribute(row.id)
	v := s.attrs[attr] + delta
	if v < game.AttrMin || v > game.AttrMax {
		return
	}
	if delta > 0 && game.PointsSpent(s.attrs)+delta > game.AttrPool {
		return
	}
	s.attrs[attr] = v
}

func (s *creationScreen) View(width, height int) string {
	innerW := width - 8
	if innerW < 40 {
		innerW = 40
	}
	listH := height - 16
	if listH < 4 {
		listH = 4
	}

	var b strings.Builder
	b.WriteString(s.st.title.Render("WHO DESCENDS?"))
	b.WriteString("\n\n")
	b.WriteString(tabRow(s.st, wizStepNames, int(s.step)))
	b.WriteString("\n\n")

	switch s.step {
	case stepRace:
		b.WriteString(filterLine(s.st, s.list))
		b.WriteString("\n")
		b.WriteString(renderRows(s.st, s.list, &s.sc, listH, func(r wizRow, _ bool) string {
			return r.label
		}))
		b.WriteString("\n")
		if row, ok := s.list.Selected(); ok {
			b.WriteString(s.st.muted.Render(raceBlurbs[game.Race(row.id)]))
		}
	case stepBackground:
		b.WriteString(filterLine(s.st, s.list))
		b.WriteString("\n")
		b.WriteString(renderRows(s.st, s.list, &s.sc, listH, func(r wizRow, _ bool) string {
			return r.label
		}))
		b.WriteString("\n")
		if row, ok := s.list.Selected(); ok {
			bg := game.Background(row.id)
			b.WriteString(s.st.muted.Render(backgroundBlurbs[bg]))
			b.WriteString("\n")
			b.WriteString(s.st.row.Render("Begins with " + s.kitLine(bg)))
		}
	case stepAttrs:
		left := game.AttrPool - game.PointsSpent(s.attrs)
		b.WriteString(fmt.Sprintf("%d points unspent\n\n", left))
		b.WriteString(renderRows(s.st, s.list, &s.sc, listH, func(r wizRow, _ bool) string {
			v := s.attrs[game.Attribute(r.id)]
			return fmt.Sprintf("%-9s %s %2d", r.id, bar(v, game.AttrMax, 10), v)
		}))
		b.WriteString("\n")
		b.WriteString(s.st.muted.Render(fmt.Sprintf("vigor sets health, will sets essence, might sets carry (range %d-%d)",
			game.AttrMin, game.AttrMax)))
	case stepName:
		b.WriteString("Name\n\n")
		b.WriteString(s.name.View())
		b.WriteString("\n")
	case stepConfirm:
		b.WriteString(s.renderSummary())
	}

	b.WriteString("\n\n")
	b.WriteString(s.legend())
	return s.st.box.Width(innerW).Render(b.String())
}

func (s *creationScreen) kitLine(bg game.Background) string {
	kit := game.StartingKit(bg)
	ids := make([]string, 0, len(kit))
	for id := range kit {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		name := id
		if def, ok := s.content.Item(id); ok {
			name = def.Name
		}
		if n := kit[id]; n > 1 {
			name = fmt.Sprintf("%s ×%d", name, n)
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

func (s *creationScreen) renderSummary() string {
	var b strings.Builder
	name := strings.TrimSpace(s.name.Value())
	b.WriteString(fmt.Sprintf("%s, %s %s\n\n", name, s.race.Label(), strings.ToLower(s.background.Label())))
	for _, a := range game.AllAttributes {
		b.WriteString(fmt.Sprintf("  %-9s %2d\n", a, s.attrs[a]))
	}
	b.WriteString("\n")
	b.WriteString(s.st.row.Render("Carries " + s.kitLine(s.background)))
	b.WriteString("\n\n")
	b.WriteString(s.st.good.Render("The dark is waiting. Enter to descend."))
	return b.String()
}

func (s *creationScreen) legend() string {
	switch s.step {
	case stepAttrs:
		return s.st.legend.Render("[+/-] adjust  [enter] next  [esc] back")
	case stepName:
		return s.st.legend.Render("[enter] next  [esc] back")
	case stepConfirm:
		return s.st.legend.Render("[enter] begin  [esc] back")
	}
	return s.st.legend.Render("[enter] choose  [esc] back  type to filter")
}
