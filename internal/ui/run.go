package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/game"
	"github.com/stevenraines/underkingdom-tui/internal/store"
)

// Boot carries everything the UI needs to enter a run. Session is nil for a
// brand-new run; the creation wizard then runs before the game starts.
type Boot struct {
	Run     store.Run
	Content *game.Content
	Seed    game.RunSeed
	Session *game.Session
	Theme   string
	Debug   bool
	Version string
}

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, db *store.DB, boot Boot) error {
	app := NewApp(ctx, db, boot)
	program := tea.NewProgram(app, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
