package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/command"
)

func TestConsoleRunsVerbsAgainstTheSession(t *testing.T) {
	sess := uiSession(t, "speak")
	sess.Player.Health = 1
	scr := newConsoleScreen(testStyles(), DefaultKeyMap(), sess, command.NewRegistry())

	typeWord(t, scr, "heal")
	scr.Update(press(tea.KeyEnter))
	if got := sess.Player.Health; got != sess.Player.MaxHealth {
		t.Fatalf("expected the heal verb to land, health %d/%d", got, sess.Player.MaxHealth)
	}
	if got := scr.input.Value(); got != "" {
		t.Fatalf("expected the prompt cleared after running, got %q", got)
	}
	last := scr.out[len(scr.out)-1]
	if last.kind != conOK {
		t.Fatalf("expected a success line in the scrollback, got kind %d %q", last.kind, last.text)
	}
}

func TestConsoleHistoryRecall(t *testing.T) {
	sess := uiSession(t, "echoes")
	scr := newConsoleScreen(testStyles(), DefaultKeyMap(), sess, command.NewRegistry())

	typeWord(t, scr, "heal")
	scr.Update(press(tea.KeyEnter))
	typeWord(t, scr, "help")
	scr.Update(press(tea.KeyEnter))

	scr.Update(press(tea.KeyUp))
	if got := scr.input.Value(); got != "help" {
		t.Fatalf("expected the newest entry first, got %q", got)
	}
	scr.Update(press(tea.KeyUp))
	if got := scr.input.Value(); got != "heal" {
		t.Fatalf("expected the older entry next, got %q", got)
	}
	scr.Update(press(tea.KeyUp))
	if got := scr.input.Value(); got != "heal" {
		t.Fatalf("expected history pinned at the oldest entry, got %q", got)
	}
	scr.Update(press(tea.KeyDown))
	scr.Update(press(tea.KeyDown))
	if got := scr.input.Value(); got != "" {
		t.Fatalf("expected stepping past the newest to clear the prompt, got %q", got)
	}
}

func TestConsoleUnknownVerbSuggests(t *testing.T) {
	sess := uiSession(t, "mumble")
	scr := newConsoleScreen(testStyles(), DefaultKeyMap(), sess, command.NewRegistry())

	typeWord(t, scr, "heall")
	scr.Update(press(tea.KeyEnter))
	last := scr.out[len(scr.out)-1]
	if last.kind != conErr {
		t.Fatalf("expected a failure line, got kind %d %q", last.kind, last.text)
	}
	if !strings.Contains(last.text, "heal") {
		t.Fatalf("expected a did-you-mean for heal, got %q", last.text)
	}
}

func TestConsoleTabCompletesAVerb(t *testing.T) {
	sess := uiSession(t, "finish")
	scr := newConsoleScreen(testStyles(), DefaultKeyMap(), sess, command.NewRegistry())

	typeWord(t, scr, "tele")
	scr.Update(press(tea.KeyTab))
	if got := scr.input.Value(); got != "teleport " {
		t.Fatalf("expected the verb completed, got %q", got)
	}
}
