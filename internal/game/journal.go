package game

import "fmt"

const journalLimit = 200

// Journal is the bounded message log shown under the map view.
type Journal struct {
	lines []string
	total int
}

// Log appends a formatted line, discarding the oldest past the limit.
func (j *Journal) Log(format string, args ...any) {
	j.lines = append(j.lines, fmt.Sprintf(format, args...))
	j.total++
	if len(j.lines) > journalLimit {
		j.lines = j.lines[len(j.lines)-journalLimit:]
	}
}

// Lines returns the retained log, oldest first.
func (j *Journal) Lines() []string { return j.lines }

// Total counts every line ever logged, including ones the ring discarded.
// Persistence uses it to find lines not yet written out.
func (j *Journal) Total() int { return j.total }

// Since returns the lines logged after the first n, capped at what the ring
// still holds.
func (j *Journal) Since(n int) []string {
	fresh := j.total - n
	if fresh <= 0 {
		return nil
	}
	if fresh > len(j.lines) {
		fresh = len(j.lines)
	}
	return j.lines[len(j.lines)-fresh:]
}

// Tail returns the newest n lines, oldest of those first.
func (j *Journal) Tail(n int) []string {
	if n <= 0 || len(j.lines) == 0 {
		return nil
	}
	if n >= len(j.lines) {
		return j.lines
	}
	return j.lines[len(j.lines)-n:]
}
