package game

import "testing"

func testClock(t *testing.T, seedText string) *Clock {
	t.Helper()
	seed, err := NewRunSeed(seedText)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return NewClock(seed)
}

func TestClockCalendarMath(t *testing.T) {
	c := testClock(t, "calendar")
	if c.Day() != 0 || c.Watch() != WatchDawn || c.Season() != SeasonThaw {
		t.Fatalf("expected day 0 dawn thaw, got day %d %s %s", c.Day(), c.Watch(), c.Season())
	}
	c.Advance(TurnsPerWatch)
	if c.Watch() != WatchMorning {
		t.Fatalf("expected morning after one watch, got %s", c.Watch())
	}
	c.ForceAdvance(TurnsPerDay - TurnsPerWatch)
	if c.Day() != 1 || c.Watch() != WatchDawn {
		t.Fatalf("expected day 1 dawn, got day %d %s", c.Day(), c.Watch())
	}
	c.ForceAdvance(TurnsPerDay * DaysPerSeason)
	if c.Season() != SeasonVerdant {
		t.Fatalf("expected verdant after a season, got %s", c.Season())
	}
}

func TestPausedClockHoldsTime(t *testing.T) {
	c := testClock(t, "pause")
	c.Paused = true
	if passed := c.Advance(5); passed != 0 {
		t.Fatalf("expected no turns while paused, got %d", passed)
	}
	if c.Turn != 0 {
		t.Fatalf("expected turn 0, got %d", c.Turn)
	}
	c.ForceAdvance(3)
	if c.Turn != 3 {
		t.Fatalf("expected forced advance to pass 3 turns, got %d", c.Turn)
	}
}

func TestWeatherDeterministicAndOverridable(t *testing.T) {
	a := testClock(t, "sky")
	b := testClock(t, "sky")
	a.ForceAdvance(500)
	b.ForceAdvance(500)
	if a.Weather() != b.Weather() {
		t.Fatalf("expected same weather from same seed: %s vs %s", a.Weather(), b.Weather())
	}
	derived := a.Weather()
	a.SetWeatherOverride(WeatherTremor)
	if a.Weather() != WeatherTremor {
		t.Fatalf("expected override to win, got %s", a.Weather())
	}
	a.SetWeatherOverride("")
	if a.Weather() != derived {
		t.Fatalf("expected forecast restored, got %s", a.Weather())
	}
}
