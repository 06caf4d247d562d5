package command

import (
	"sort"
	"strings"

	"github.com/google/shlex"

	"github.com/stevenraines/underkingdom-tui/internal/game"
)

// Handler executes a console verb against the session.
type Handler func(s *game.Session, args []string) game.ActionResult

// Def declares one console command.
type Def struct {
	Name    string
	Aliases []string
	Usage   string
	Help    string
	Run     Handler
}

// Registry maps verbs and aliases to commands and suggests near misses.
type Registry struct {
	defs  []Def
	index map[string]int
}

// NewRegistry returns a registry with the builtin verbs installed.
func NewRegistry() *Registry {
	r := &Registry{index: map[string]int{}}
	for _, d := range builtins() {
		r.Register(d)
	}
	r.Register(Def{
		Name:  "help",
		Usage: "help",
		Help:  "List console commands.",
		Run: func(_ *game.Session, _ []string) game.ActionResult {
			return r.helpResult()
		},
	})
	return r
}

func (r *Registry) helpResult() game.ActionResult {
	var b strings.Builder
	for i, d := range r.defs {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Usage)
		if d.Help != "" {
			b.WriteString(" - ")
			b.WriteString(d.Help)
		}
	}
	return game.Success("%s", b.String())
}

// Register adds a command; later registrations win name collisions.
func (r *Registry) Register(d Def) {
	r.defs = append(r.defs, d)
	i := len(r.defs) - 1
	r.index[strings.ToLower(d.Name)] = i
	for _, a := range d.Aliases {
		r.index[strings.ToLower(a)] = i
	}
}

// Lookup resolves an exact verb or alias.
func (r *Registry) Lookup(verb string) (Def, bool) {
	if i, ok := r.index[strings.ToLower(verb)]; ok {
		return r.defs[i], true
	}
	return Def{}, false
}

// Defs returns the commands in registration order, for help output.
func (r *Registry) Defs() []Def { return r.defs }

// Execute tokenizes a console line and runs it. Unknown verbs come back as
// failures that carry did-you-mean suggestions; nothing here panics or
// returns an error.
func (r *Registry) Execute(s *game.Session, line string) game.ActionResult {
	fields, err := shlex.Split(line)
	if err != nil {
		return game.Failure("Unbalanced quoting in that command.")
	}
	if len(fields) == 0 {
		return game.Failure("Say something.")
	}
	verb := strings.ToLower(fields[0])
	def, ok := r.Lookup(verb)
	if !ok {
		if sug := r.Suggest(verb); len(sug) > 0 {
			return game.Failure("Unknown command %q. Did you mean %s?", verb, strings.Join(sug, ", "))
		}
		return game.Failure("Unknown command %q. Try help.", verb)
	}
	return def.Run(s, fields[1:])
}

// Suggest returns up to three candidate verbs for a near miss, best first.
// Prefixes outscore edit-distance hits; the allowed distance grows with the
// candidate's length.
func (r *Registry) Suggest(verb string) []string {
	type scored struct {
		name  string
		score float64
	}
	var out []scored
	seen := map[string]bool{}
	for cand := range r.index {
		if seen[cand] {
			continue
		}
		seen[cand] = true
		sc, ok := matchScore(verb, cand)
		if !ok {
			continue
		}
		out = append(out, scored{name: cand, score: sc})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].name < out[j].name
	})
	names := make([]string, 0, 3)
	for _, sc := range out {
		names = append(names, sc.name)
		if len(names) == 3 {
			break
		}
	}
	return names
}
