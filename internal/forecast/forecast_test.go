package forecast

import (
	"strings"
	"testing"

	"raceday/internal/weather"
)

func TestForecastRender(t *testing.T) {
	f := Forecast{entries: map[weather.Session][]weather.Condition{
		weather.Race:       {weather.Clear, weather.Storm},
		weather.Qualifying: {weather.Overcast},
	}}

	got := f.Render()
	want := strings.Join([]string{
		`"QualifyWeatherSlots": 1,`,
		`"QualifyWeatherSlot0": "Overcast",`,
		``,
		`"RaceWeatherSlots": 2,`,
		`"RaceWeatherSlot0": "Clear",`,
		`"RaceWeatherSlot1": "Storm",`,
		``,
		``,
	}, "\n")
	if got != want {
		t.Fatalf("Render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestForecastSessionsOrder(t *testing.T) {
	f := Forecast{entries: map[weather.Session][]weather.Condition{
		weather.Race:     {weather.Clear},
		weather.Practice: {weather.Hazy},
	}}
	got := f.Sessions()
	if len(got) != 2 || got[0] != weather.Practice || got[1] != weather.Race {
		t.Fatalf("sessions = %v, want [Practice Race]", got)
	}
}
