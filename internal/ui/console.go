package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraines/underkingdom-tui/internal/command"
	"github.com/stevenraines/underkingdom-tui/internal/game"
)

// maxConsoleLines bounds the scrollback; older lines fall off the front.
const maxConsoleLines = 200

type conLineKind int

const (
	conEcho conLineKind = iota
	conOK
	conErr
)

type conLine struct {
	kind conLineKind
	text string
}

// consoleScreen is the ':' prompt. Commands run against the session through
// the registry; up/down walk the entry history and tab completes a verb.
type consoleScreen struct {
	st      *styles
	keys    KeyMap
	session *game.Session
	cmds    *command.Registry

	input   textinput.Model
	out     []conLine
	history []string
	histIdx int
}

func newConsoleScreen(st *styles, keys KeyMap, s *game.Session, cmds *command.Registry) *consoleScreen {
	ti := textinput.New()
	ti.Placeholder = "help"
	ti.CharLimit = 120
	ti.Focus()
	scr := &consoleScreen{st: st, keys: keys, session: s, cmds: cmds, input: ti}
	scr.push(conOK, "The stone listens. Type help for commands.")
	return scr
}

func (s *consoleScreen) Title() string { return "Console" }

func (s *consoleScreen) push(kind conLineKind, text string) {
	s.out = append(s.out, conLine{kind: kind, text: text})
	if len(s.out) > maxConsoleLines {
		s.out = s.out[len(s.out)-maxConsoleLines:]
	}
}

func (s *consoleScreen) Update(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return false, cmd
	}
	switch {
	case key.Matches(keyMsg, s.keys.Back):
		return true, nil
	case key.Matches(keyMsg, s.keys.Confirm):
		s.submit()
		return false, nil
	case key.Matches(keyMsg, s.keys.Up):
		s.recall(-1)
		return false, nil
	case key.Matches(keyMsg, s.keys.Down):
		s.recall(1)
		return false, nil
	case key.Matches(keyMsg, s.keys.NextTab):
		s.complete()
		return false, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return false, cmd
}

func (s *consoleScreen) submit() {
	line := strings.TrimSpace(s.input.Value())
	s.input.SetValue("")
	if line == "" {
		return
	}
	s.history = append(s.history, line)
	s.histIdx = len(s.history)
	s.push(conEcho, "> "+line)
	res := s.cmds.Execute(s.session, line)
	kind := conOK
	if !res.OK {
		kind = conErr
	}
	for _, l := range strings.Split(res.Message, "\n") {
		s.push(kind, l)
	}
}

// recall walks the history; stepping past the newest entry clears the input.
func (s *consoleScreen) recall(delta int) {
	if len(s.history) == 0 {
		return
	}
	s.histIdx += delta
	if s.histIdx < 0 {
		s.histIdx = 0
	}
	if s.histIdx >= len(s.history) {
		s.histIdx = len(s.history)
		s.input.SetValue("")
		return
	}
	s.input.SetValue(s.history[s.histIdx])
	s.input.CursorEnd()
}

// complete fills in a lone partial verb from the registry's suggestions.
func (s *consoleScreen) complete() {
	verb := strings.TrimSpace(s.input.Value())
	if verb == "" || strings.ContainsRune(verb, ' ') {
		return
	}
	if _, ok := s.cmds.Lookup(verb); ok {
		return
	}
	sug := s.cmds.Suggest(verb)
	if len(sug) == 0 {
		return
	}
	s.input.SetValue(sug[0] + " ")
	s.input.CursorEnd()
}

func (s *consoleScreen) View(width, height int) string {
	innerW := width - 8
	if innerW < 40 {
		innerW = 40
	}
	outH := height - 10
	if outH < 6 {
		outH = 6
	}
	s.input.Width = innerW - 6

	var b strings.Builder
	b.WriteString(s.st.title.Render("CONSOLE"))
	b.WriteString("\n\n")
	lines := s.out
	if len(lines) > outH {
		lines = lines[len(lines)-outH:]
	}
	for _, l := range lines {
		text := truncate(l.text, innerW-4)
		switch l.kind {
		case conEcho:
			b.WriteString(s.st.filter.Render(text))
		case conErr:
			b.WriteString(s.st.warn.Render(text))
		default:
			b.WriteString(s.st.row.Render(text))
		}
		b.WriteString("\n")
	}
	for i := len(lines); i < outH; i++ {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(s.st.legend.Render("[enter] run  [tab] complete  [↑/↓] history  [esc] close"))
	return s.st.box.Width(innerW).Render(b.String())
}
