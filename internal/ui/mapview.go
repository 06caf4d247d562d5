package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
)

// mapScreen is a full-screen pan of the caverns. The cursor starts on the
// player; panning generates chunks on demand, the same as walking would.
type mapScreen struct {
	st      *styles
	keys    KeyMap
	session *game.Session
	cx, cy  int
}

func newMapScreen(st *styles, keys KeyMap, s *game.Session) *mapScreen {
	return &mapScreen{st: st, keys: keys, session: s, cx: s.Player.X, cy: s.Player.Y}
}

func (s *mapScreen) Title() string { return "Map" }

func (s *mapScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(keyMsg, s.keys.Back):
		return true, nil
	case key.Matches(keyMsg, s.keys.MoveNorth):
		s.cy--
	case key.Matches(keyMsg, s.keys.MoveSouth):
		s.cy++
	case key.Matches(keyMsg, s.keys.MoveWest):
		s.cx--
	case key.Matches(keyMsg, s.keys.MoveEast):
		s.cx++
	case key.Matches(keyMsg, s.keys.PageUp):
		s.cy -= pageStep
	case key.Matches(keyMsg, s.keys.PageDown):
		s.cy += pageStep
	case key.Matches(keyMsg, s.keys.Recenter):
		s.cx, s.cy = s.session.Player.X, s.session.Player.Y
	}
	return false, nil
}

func (s *mapScreen) View(width, height int) string {
	if width <= 0 {
		width = 100
	}
	if height <= 0 {
		height = 30
	}
	mapH := height - 3
	if mapH < 5 {
		mapH = 5
	}

	p := s.session.Player
	head := fmt.Sprintf("MAP  cursor %d,%d (%s)  you %d,%d", s.cx, s.cy, s.tileName(), p.X, p.Y)
	var b strings.Builder
	b.WriteString(s.st.title.Render(head))
	b.WriteString("\n")
	b.WriteString(renderTiles(s.st, s.session, s.cx, s.cy, width, mapH, true))
	b.WriteString("\n")
	b.WriteString(s.st.legend.Render(`@ you  # wall  ~ water  , moss  " mushroom  * ore  % rubble  ·  [arrows/hjkl] pan  [c] recenter  [esc] close`))
	return b.String()
}

func (s *mapScreen) tileName() string {
	if c := s.session.World.CreatureAt(s.cx, s.cy); c != nil {
		return c.Name
	}
	switch s.session.World.Tile(s.cx, s.cy) {
	case game.TileWall:
		return "wall"
	case game.TileWater:
		return "water"
	case game.TileMoss:
		return "moss"
	case game.TileMushroom:
		return "mushrooms"
	case game.TileOre:
		return "ore vein"
	case game.TileRubble:
		return "rubble"
	}
	return "floor"
}
