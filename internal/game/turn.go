package game

import "fmt"

// Time constants. A day is six watches; seasons turn with the surface even
// if nobody down here can see it.
const (
	TurnsPerWatch = 20
	WatchesPerDay = 6
	TurnsPerDay   = TurnsPerWatch * WatchesPerDay
	DaysPerSeason = 30
)

// Clock tracks run time and derives the calendar and cavern weather from it.
// While Paused (any modal screen open) no turns pass.
type Clock struct {
	Turn     int
	Paused   bool
	weather  *Stream
	override CavernWeather
}

// NewClock builds a clock over the run's weather stream.
func NewClock(seed RunSeed) *Clock {
	return &Clock{weather: seed.Stream("weather")}
}

// Day counts from 0.
func (c *Clock) Day() int { return c.Turn / TurnsPerDay }

// WatchIndex is the current watch within the day, 0-5.
func (c *Clock) WatchIndex() int { return (c.Turn % TurnsPerDay) / TurnsPerWatch }

// Watch names the current watch.
func (c *Clock) Watch() Watch { return AllWatches[c.WatchIndex()] }

// Season derives from the day count.
func (c *Clock) Season() Season {
	return AllSeasons[(c.Day()/DaysPerSeason)%len(AllSeasons)]
}

// Advance moves time forward unless paused, returning how many turns
// actually passed.
func (c *Clock) Advance(turns int) int {
	if c.Paused || turns <= 0 {
		return 0
	}
	c.Turn += turns
	return turns
}

// ForceAdvance moves time forward even while paused. Debug tooling runs with
// the clock paused, so it uses this path.
func (c *Clock) ForceAdvance(turns int) {
	if turns > 0 {
		c.Turn += turns
	}
}

// Weather is derived per watch from its own child stream, so it is stable
// across save and load without storing transitions. A debug override wins
// until cleared.
func (c *Clock) Weather() CavernWeather {
	if c.override != "" {
		return c.override
	}
	return c.weatherAt(c.Day(), c.WatchIndex())
}

// SetWeatherOverride pins the weather; an empty value returns control to the
// derived forecast.
func (c *Clock) SetWeatherOverride(w CavernWeather) { c.override = w }

func (c *Clock) weatherAt(day, watch int) CavernWeather {
	st := c.weather.Child(fmt.Sprintf("d%d:w%d", day, watch))
	weights := weatherWeights(AllSeasons[(day/DaysPerSeason)%len(AllSeasons)])
	return AllCavernWeather[st.WeightedIndex(weights)]
}

// weatherWeights biases conditions by season: deepfrost brings deepchill,
// verdant brings sporefall, waning shakes the ground.
func weatherWeights(s Season) []int {
	// still, draft, mist, sporefall, tremor, deepchill
	switch s {
	case SeasonThaw:
		return []int{30, 20, 25, 10, 5, 10}
	case SeasonVerdant:
		return []int{30, 15, 15, 30, 5, 5}
	case SeasonWaning:
		return []int{25, 25, 15, 10, 20, 5}
	case SeasonDeepfrost:
		return []int{20, 15, 10, 5, 10, 40}
	}
	return []int{40, 15, 15, 10, 10, 10}
}
