package util

// Config holds runtime settings and flags.
type Config struct {
	SeedText string
	DSN      string
	Theme    string // ember|verdigris|pallid
	Debug    bool
}
