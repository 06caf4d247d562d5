package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Panel      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	AccentAlt  lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	BarFill    lipgloss.Color
	BarEmpty   lipgloss.Color
}

var palettes = map[string]palette{
	"ember": {
		Background: lipgloss.Color("#1c1412"),
		Surface:    lipgloss.Color("#2b201c"),
		Panel:      lipgloss.Color("#3a2b24"),
		Text:       lipgloss.Color("#e8d5c4"),
		Muted:      lipgloss.Color("#9c8572"),
		Accent:     lipgloss.Color("#e78a4e"),
		AccentAlt:  lipgloss.Color("#d3573b"),
		Border:     lipgloss.Color("#54403a"),
		Success:    lipgloss.Color("#a9b665"),
		Warning:    lipgloss.Color("#d8a657"),
		BarFill:    lipgloss.Color("#e78a4e"),
		BarEmpty:   lipgloss.Color("#2b201c"),
	},
	"verdigris": {
		Background: lipgloss.Color("#10191a"),
		Surface:    lipgloss.Color("#1a2829"),
		Panel:      lipgloss.Color("#24383a"),
		Text:       lipgloss.Color("#cde3dd"),
		Muted:      lipgloss.Color("#6f8f89"),
		Accent:     lipgloss.Color("#5fb3a1"),
		AccentAlt:  lipgloss.Color("#3b8ea5"),
		Border:     lipgloss.Color("#2f4a4c"),
		Success:    lipgloss.Color("#8ec07c"),
		Warning:    lipgloss.Color("#e0c06e"),
		BarFill:    lipgloss.Color("#5fb3a1"),
		BarEmpty:   lipgloss.Color("#1a2829"),
	},
	"pallid": {
		Background: lipgloss.Color("#15151a"),
		Surface:    lipgloss.Color("#20202a"),
		Panel:      lipgloss.Color("#2c2c3a"),
		Text:       lipgloss.Color("#d4d4e4"),
		Muted:      lipgloss.Color("#7f7f99"),
		Accent:     lipgloss.Color("#a98fd6"),
		AccentAlt:  lipgloss.Color("#d68fb8"),
		Border:     lipgloss.Color("#3e3e52"),
		Success:    lipgloss.Color("#9ad1aa"),
		Warning:    lipgloss.Color("#d6c48f"),
		BarFill:    lipgloss.Color("#a98fd6"),
		BarEmpty:   lipgloss.Color("#20202a"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes["ember"]
}

func themeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := themeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}

// styles bundles the lipgloss styles every screen shares, derived from one
// palette so theme cycling restyles everything at once.
type styles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	tabActive lipgloss.Style
	row       lipgloss.Style
	rowActive lipgloss.Style
	muted     lipgloss.Style
	good      lipgloss.Style
	warn      lipgloss.Style
	status    lipgloss.Style
	filter    lipgloss.Style
	box       lipgloss.Style
	legend    lipgloss.Style
}

func newStyles(p palette) styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		tab:       lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 1),
		tabActive: lipgloss.NewStyle().Bold(true).Foreground(p.Background).Background(p.Accent).Padding(0, 1),
		row:       lipgloss.NewStyle().Foreground(p.Text),
		rowActive: lipgloss.NewStyle().Bold(true).Foreground(p.AccentAlt),
		muted:     lipgloss.NewStyle().Foreground(p.Muted),
		good:      lipgloss.NewStyle().Foreground(p.Success),
		warn:      lipgloss.NewStyle().Foreground(p.Warning),
		status:    lipgloss.NewStyle().Foreground(p.Warning).Italic(true),
		filter:    lipgloss.NewStyle().Foreground(p.AccentAlt),
		box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(1, 2),
		legend:    lipgloss.NewStyle().Foreground(p.Muted),
	}
}
