package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gorm.io/gorm"

	"github.com/stevenraines/underkingdom-tui/internal/command"
	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/store"
)

// App is the root model: the base game view plus a stack of modal screens.
// The topmost screen gets every key; Esc pops one screen at a time; the turn
// clock runs only while the stack is empty.
type App struct {
	ctx     context.Context
	db      *store.DB
	run     store.Run
	content *game.Content
	seed    game.RunSeed
	session *game.Session
	cmds    *command.Registry
	keys    KeyMap
	theme   string
	st      styles
	debug   bool
	version string

	stack  []screen
	status string
	saved  int
	width  int
	height int
}

// NewApp builds the root model. session may be nil for a fresh run, in which
// case the character creation wizard opens first and the run begins when it
// completes.
func NewApp(ctx context.Context, db *store.DB, boot Boot) *App {
	a := &App{
		ctx:     ctx,
		db:      db,
		run:     boot.Run,
		content: boot.Content,
		seed:    boot.Seed,
		session: boot.Session,
		cmds:    command.NewRegistry(),
		keys:    DefaultKeyMap(),
		theme:   boot.Theme,
		st:      newStyles(paletteFor(boot.Theme)),
		debug:   boot.Debug,
		version: boot.Version,
	}
	if a.session == nil {
		a.stack = append(a.stack, newCreationScreen(&a.st, a.keys, a.content))
	} else {
		a.saved = a.session.Journal.Total()
	}
	return a
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			_ = a.save()
			return a, tea.Quit
		}
		if len(a.stack) > 0 {
			return a.updateTopScreen(msg)
		}
		return a.updateGame(msg)
	default:
		if len(a.stack) > 0 {
			top := a.stack[len(a.stack)-1]
			_, cmd := top.Update(msg)
			return a, cmd
		}
	}
	return a, nil
}

func (a *App) updateTopScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	top := a.stack[len(a.stack)-1]
	pop, cmd := top.Update(msg)
	if pop {
		a.popScreen()
		if a.session == nil && len(a.stack) == 0 {
			// creation cancelled before a run existed
			return a, tea.Quit
		}
	}
	return a, cmd
}

func (a *App) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.keys
	if a.session.Player.Dead() {
		if key.Matches(msg, k.Quit) {
			_ = a.save()
			return a, tea.Quit
		}
		return a, nil
	}
	switch {
	case key.Matches(msg, k.Quit):
		_ = a.save()
		return a, tea.Quit
	case key.Matches(msg, k.Save):
		if err := a.save(); err != nil {
			a.status = "Save failed: " + err.Error()
		} else {
			a.status = "Saved."
		}
	case key.Matches(msg, k.Theme):
		a.cycleTheme()
	case key.Matches(msg, k.MoveNorth):
		a.session.MovePlayer(game.DirNorth)
	case key.Matches(msg, k.MoveSouth):
		a.session.MovePlayer(game.DirSouth)
	case key.Matches(msg, k.MoveWest):
		a.session.MovePlayer(game.DirWest)
	case key.Matches(msg, k.MoveEast):
		a.session.MovePlayer(game.DirEast)
	case key.Matches(msg, k.Wait):
		a.session.Wait()
	case key.Matches(msg, k.Inventory):
		a.pushScreen(newInventoryScreen(&a.st, a.keys, a.session))
	case key.Matches(msg, k.Shop):
		a.pushScreen(newShopScreen(&a.st, a.keys, a.session))
	case key.Matches(msg, k.Trainer):
		a.pushScreen(newTrainerScreen(&a.st, a.keys, a.session))
	case key.Matches(msg, k.Crafting):
		a.pushScreen(newCraftingScreen(&a.st, a.keys, a.session))
	case key.Matches(msg, k.Sheet):
		a.pushScreen(newSheetScreen(&a.st, a.keys, a.session))
	case key.Matches(msg, k.Map):
		a.pushScreen(newMapScreen(&a.st, a.keys, a.session))
	case key.Matches(msg, k.Console):
		a.pushScreen(newConsoleScreen(&a.st, a.keys, a.session, a.cmds))
	case key.Matches(msg, k.Debug):
		if a.debug {
			a.pushScreen(newDebugScreen(&a.st, a.keys, a.session))
		} else {
			a.status = "Debug mode is off."
		}
	case key.Matches(msg, k.Help):
		a.pushScreen(newHelpScreen(&a.st, a.keys, a.version))
	}
	return a, nil
}

// pushScreen opens a modal screen and pauses the clock underneath it.
func (a *App) pushScreen(s screen) {
	a.stack = append(a.stack, s)
	a.status = ""
	if a.session != nil {
		a.session.Clock.Paused = true
	}
}

// popScreen closes the topmost screen. The clock resumes only when the stack
// empties. A finished creation wizard hands its player over here.
func (a *App) popScreen() {
	if len(a.stack) == 0 {
		return
	}
	top := a.stack[len(a.stack)-1]
	a.stack = a.stack[:len(a.stack)-1]
	if c, ok := top.(*creationScreen); ok {
		if p, done := c.Result(); done {
			a.beginRun(p)
		}
	}
	if len(a.stack) == 0 && a.session != nil {
		a.session.Clock.Paused = false
	}
}

func (a *App) beginRun(p game.Player) {
	a.session = game.NewSession(a.seed, a.content, p)
	a.session.Journal.Log("You wake by the hearth at the heart of the Underkingdom.")
	a.session.Journal.Log("The caverns wait in every direction.")
	_ = a.save()
}

func (a *App) cycleTheme() {
	a.theme = nextThemeName(a.theme, 1)
	a.st = newStyles(paletteFor(a.theme))
	a.status = "Theme: " + a.theme
	if a.db != nil {
		if err := store.NewSettingsRepo(a.db).UpsertTheme(a.ctx, a.run.ID, a.theme); err != nil {
			slog.Warn("persist theme", "err", err)
		}
	}
}

// save writes the run snapshot and any journal lines not yet persisted.
func (a *App) save() error {
	if a.db == nil || a.session == nil {
		return nil
	}
	snap := a.session.Snapshot()
	status := store.RunStatusAlive
	if a.session.Player.Dead() {
		status = store.RunStatusDead
	}
	fresh := a.session.Journal.Since(a.saved)
	err := a.db.WithTx(a.ctx, func(tx *gorm.DB) error {
		if err := store.NewRunRepo(a.db).UpdateProgress(a.ctx, tx, a.run.ID, snap.Turn, status); err != nil {
			return err
		}
		if err := store.NewCharacterRepo(a.db).Upsert(a.ctx, tx, a.run.ID, snap); err != nil {
			return err
		}
		return store.NewJournalRepo(a.db).Append(a.ctx, tx, a.run.ID, snap.Turn, fresh)
	})
	if err != nil {
		slog.Warn("save run", "err", err)
		return err
	}
	a.saved = a.session.Journal.Total()
	slog.Debug("saved run", "turn", snap.Turn, "status", status)
	return nil
}

func (a *App) View() string {
	if len(a.stack) > 0 {
		return a.stack[len(a.stack)-1].View(a.width, a.height)
	}
	if a.session == nil {
		return ""
	}
	return a.renderGame()
}

// Layout rendering -----------------------------------------------------------

const sidebarWidth = 28

func (a *App) renderGame() string {
	w := a.width
	if w <= 0 {
		w = 100
	}
	h := a.height
	if h <= 0 {
		h = 30
	}
	top := a.renderTopBar(w)
	journal := a.renderJournal(w)
	bottom := a.renderBottomBar(w)
	bodyH := h - 1 - strings.Count(journal, "\n") - 1 - strings.Count(bottom, "\n") - 1
	if bodyH < 5 {
		bodyH = 5
	}
	mapW := w - sidebarWidth - 3
	if mapW < 20 {
		mapW = 20
	}
	p := a.session.Player
	tiles := renderTiles(&a.st, a.session, p.X, p.Y, mapW, bodyH, false)
	side := lipgloss.NewStyle().Width(sidebarWidth).Border(lipgloss.NormalBorder()).Padding(0, 1).Render(a.renderSidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, tiles, " ", side)
	return lipgloss.JoinVertical(lipgloss.Left, top, body, journal, bottom)
}

func (a *App) renderTopBar(w int) string {
	s := a.session
	left := strings.Join([]string{
		"UNDERKINGDOM",
		s.Player.Name,
		fmt.Sprintf("Day %d, %s", s.Clock.Day()+1, s.Clock.Watch()),
		string(s.Clock.Season()),
		string(s.Clock.Weather()),
	}, " • ")
	right := fmt.Sprintf("%d marks", s.Player.Gold)
	if a.debug {
		right += fmt.Sprintf("  [chunks:%d]", s.World.LoadedChunks())
	}
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return a.st.title.Render(left + strings.Repeat(" ", gap) + right)
}

func (a *App) renderSidebar() string {
	s := a.session
	p := s.Player
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", p.Name))
	b.WriteString(a.st.muted.Render(fmt.Sprintf("%s %s, level %d", p.Race.Label(), p.Background.Label(), p.Level)) + "\n\n")
	b.WriteString(fmt.Sprintf("HP %s %d/%d\n", bar(p.Health, p.MaxHealth, 10), p.Health, p.MaxHealth))
	b.WriteString(fmt.Sprintf("ES %s %d/%d\n\n", bar(p.Essence, p.MaxEssence, 10), p.Essence, p.MaxEssence))
	b.WriteString(fmt.Sprintf("Hu %s %d\n", bar(p.Stats.Hunger, 100, 10), p.Stats.Hunger))
	b.WriteString(fmt.Sprintf("Th %s %d\n", bar(p.Stats.Thirst, 100, 10), p.Stats.Thirst))
	b.WriteString(fmt.Sprintf("Fa %s %d\n", bar(p.Stats.Fatigue, 100, 10), p.Stats.Fatigue))
	b.WriteString(fmt.Sprintf("Wa %s %d\n\n", bar(p.Stats.Warmth, 100, 10), p.Stats.Warmth))
	b.WriteString("COND\n")
	if len(p.Conditions) == 0 {
		b.WriteString(a.st.muted.Render("none") + "\n")
	} else {
		for _, c := range p.Conditions {
			b.WriteString(a.st.warn.Render(string(c)) + " ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(a.st.muted.Render(fmt.Sprintf("pos %d,%d", p.X, p.Y)) + "\n")
	b.WriteString(a.st.muted.Render(fmt.Sprintf("carry %d/%d", p.CarryWeight(s.Content), p.CarryLimit())))
	return b.String()
}

func (a *App) renderJournal(w int) string {
	lines := a.session.Journal.Tail(5)
	var b strings.Builder
	b.WriteString(a.st.muted.Render(strings.Repeat("─", min(w, 40))))
	for _, line := range lines {
		b.WriteString("\n" + truncate(line, w))
	}
	if a.session.Player.Dead() {
		b.WriteString("\n" + a.st.status.Render("You have died. Press q to leave the caverns."))
	}
	return b.String()
}

func (a *App) renderBottomBar(w int) string {
	hints := "[i] inventory  [s] shop  [t] trainer  [c] craft  [@] sheet  [m] map  [:] console  [?] help  [S] save  [q] quit"
	if a.debug {
		hints += "  [f6] debug"
	}
	line := a.st.muted.Render(truncate(hints, w))
	if a.status != "" {
		line += "\n" + a.st.status.Render(truncate(a.status, w))
	}
	return line
}
