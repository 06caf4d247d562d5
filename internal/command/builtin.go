package command

import (
	"strconv"
	"strings"

	"github.com/stevenraines/underkingdom-tui/internal/game"
)

const (
	maxSpawnDistance  = 40
	maxAdvanceTurns   = 10 * game.TurnsPerDay
	defaultSpawnRange = 2
)

func builtins() []Def {
	return []Def{
		{
			Name:    "spawn",
			Usage:   "spawn <creature> [direction] [distance]",
			Help:    "Place a bestiary creature near the player.",
			Run:     runSpawn,
			Aliases: []string{"summon"},
		},
		{
			Name:    "teleport",
			Usage:   "teleport <direction> <distance>",
			Help:    "Move the player through solid rock.",
			Run:     runTeleport,
			Aliases: []string{"tp"},
		},
		{
			Name:  "weather",
			Usage: "weather <condition|clear>",
			Help:  "Pin the cavern weather, or return it to the forecast.",
			Run:   runWeather,
		},
		{
			Name:  "time",
			Usage: "time <turns|day>",
			Help:  "Advance the clock.",
			Run:   runTime,
		},
		{
			Name:  "give",
			Usage: "give <item> [count]",
			Help:  "Add catalog items to the pack.",
			Run:   runGive,
		},
		{
			Name:  "gold",
			Usage: "gold <amount>",
			Help:  "Grant marks.",
			Run:   runGold,
		},
		{
			Name:  "heal",
			Usage: "heal",
			Help:  "Restore health, essence and meters; clear conditions.",
			Run: func(s *game.Session, _ []string) game.ActionResult {
				return s.HealPlayer()
			},
		},
	}
}

func runSpawn(s *game.Session, args []string) game.ActionResult {
	if len(args) == 0 {
		return game.Failure("Usage: spawn <creature> [direction] [distance]")
	}
	dir := game.DirNorth
	dist := defaultSpawnRange
	if len(args) >= 2 {
		d := game.Direction(strings.ToLower(args[1]))
		if !d.Validate() {
			return game.Failure("Unknown direction %q.", args[1])
		}
		dir = d
	}
	if len(args) >= 3 {
		dist = clampArg(args[2], 1, maxSpawnDistance)
	}
	return s.DebugSpawn(strings.ToLower(args[0]), dir, dist)
}

func runTeleport(s *game.Session, args []string) game.ActionResult {
	if len(args) < 2 {
		return game.Failure("Usage: teleport <direction> <distance>")
	}
	d := game.Direction(strings.ToLower(args[0]))
	if !d.Validate() {
		return game.Failure("Unknown direction %q.", args[0])
	}
	dist := clampArg(args[1], 1, maxSpawnDistance)
	return s.DebugTeleport(d, dist)
}

func runWeather(s *game.Session, args []string) game.ActionResult {
	if len(args) == 0 {
		return game.Failure("Usage: weather <condition|clear>")
	}
	raw := strings.ToLower(args[0])
	if raw == "clear" {
		return s.DebugWeather("")
	}
	w := game.CavernWeather(raw)
	if !w.Validate() {
		return game.Failure("No such weather %q.", raw)
	}
	return s.DebugWeather(w)
}

func runTime(s *game.Session, args []string) game.ActionResult {
	if len(args) == 0 {
		return game.Failure("Usage: time <turns|day>")
	}
	if strings.EqualFold(args[0], "day") {
		return s.DebugAdvanceTime(game.TurnsPerDay)
	}
	return s.DebugAdvanceTime(clampArg(args[0], 1, maxAdvanceTurns))
}

func runGive(s *game.Session, args []string) game.ActionResult {
	if len(args) == 0 {
		return game.Failure("Usage: give <item> [count]")
	}
	n := 1
	if len(args) >= 2 {
		n = clampArg(args[1], 1, 99)
	}
	return s.GiveItem(strings.ToLower(args[0]), n)
}

func runGold(s *game.Session, args []string) game.ActionResult {
	if len(args) == 0 {
		return game.Failure("Usage: gold <amount>")
	}
	return s.GiveGold(clampArg(args[0], 1, 1000000))
}

// clampArg parses an integer argument, clamping both parse failures and
// out-of-range values into [lo, hi] instead of erroring.
func clampArg(raw string, lo, hi int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return lo
	}
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
