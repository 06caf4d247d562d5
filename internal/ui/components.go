package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/nav"
)

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}

func bar(v, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	if v < 0 {
		v = 0
	}
	if v > max {
		v = max
	}
	fill := int((float64(v)/float64(max))*float64(width) + 0.5)
	if fill > width {
		fill = width
	}
	return strings.Repeat("█", fill) + strings.Repeat("·", width-fill)
}

func tabRow(st *styles, names []string, active int) string {
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if i == active {
			parts = append(parts, st.tabActive.Render(name))
		} else {
			parts = append(parts, st.tab.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

func filterLine[T nav.Item](st *styles, l *nav.List[T]) string {
	if l.Filtering() {
		return st.filter.Render("filter: "+l.Filter()+"▏") +
			st.muted.Render(fmt.Sprintf("  %d/%d", l.Len(), l.TotalLen()))
	}
	return st.muted.Render("type to filter")
}

// renderRows draws the visible window of a list, one line per item. The
// scroll window consumes any pending scroll-into-view request here, exactly
// once per rebuild.
func renderRows[T nav.Item](st *styles, l *nav.List[T], sc *nav.Scroller, height int, line func(item T, selected bool) string) string {
	if l.Len() == 0 {
		sc.Window(0, height)
		if l.Filtering() {
			return st.muted.Render("  (no matches)")
		}
		return st.muted.Render("  (nothing here)")
	}
	start, end := sc.Window(l.Len(), height)
	items := l.Items()
	var b strings.Builder
	for i := start; i < end; i++ {
		sel := i == l.Index()
		cursor := "  "
		if sel {
			cursor = "> "
		}
		row := cursor + line(items[i], sel)
		if sel {
			row = st.rowActive.Render(row)
		} else {
			row = st.row.Render(row)
		}
		b.WriteString(row)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func statusText(st *styles, ok bool, msg string) string {
	if msg == "" {
		return ""
	}
	if ok {
		return st.good.Render(msg)
	}
	return st.status.Render(msg)
}

func tileGlyph(t game.TileKind) string {
	switch t {
	case game.TileWall:
		return "#"
	case game.TileWater:
		return "~"
	case game.TileMoss:
		return ","
	case game.TileMushroom:
		return "\""
	case game.TileOre:
		return "*"
	case game.TileRubble:
		return "%"
	default:
		return "."
	}
}

// renderTiles draws a w×h window of the world centered on (cx, cy). The
// player and spawned creatures draw over terrain; markCenter highlights the
// center cell for the map overlay's cursor.
func renderTiles(st *styles, s *game.Session, cx, cy, w, h int, markCenter bool) string {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	var b strings.Builder
	for row := 0; row < h; row++ {
		y := cy - h/2 + row
		for col := 0; col < w; col++ {
			x := cx - w/2 + col
			b.WriteString(tileCell(st, s, x, y, markCenter && x == cx && y == cy))
		}
		if row < h-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func tileCell(st *styles, s *game.Session, x, y int, marked bool) string {
	var glyph string
	var style lipgloss.Style
	switch {
	case s.Player.X == x && s.Player.Y == y:
		glyph, style = "@", st.title
	default:
		if c := s.World.CreatureAt(x, y); c != nil {
			def, _ := s.Content.Creature(c.ID)
			glyph, style = def.Glyph, st.rowActive
			if glyph == "" {
				glyph = "?"
			}
		} else {
			t := s.World.Tile(x, y)
			glyph = tileGlyph(t)
			if t == game.TileWall {
				style = st.muted
			} else {
				style = st.row
			}
		}
	}
	if marked {
		style = st.tabActive
	}
	return style.Render(glyph)
}
