package forecast

import (
	"fmt"
	"strings"

	"raceday/internal/weather"
)

// Forecast maps each generated session to its ordered weather slots.
type Forecast struct {
	entries map[weather.Session][]weather.Condition
}

// NewForecast builds a forecast from per-session slot sequences. The map is
// taken over by the forecast and must not be mutated afterwards.
func NewForecast(entries map[weather.Session][]weather.Condition) Forecast {
	return Forecast{entries: entries}
}

// Conditions returns the slot sequence for a session, or nil when the
// session was not part of the generation request.
func (f Forecast) Conditions(session weather.Session) []weather.Condition {
	return f.entries[session]
}

// Sessions returns the generated sessions in display order.
func (f Forecast) Sessions() []weather.Session {
	out := make([]weather.Session, 0, len(f.entries))
	for _, s := range weather.Sessions() {
		if _, ok := f.entries[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Render formats the forecast as slot assignment lines, one block per
// session, in the shape race configuration files expect:
//
//	"RaceWeatherSlots": 4,
//	"RaceWeatherSlot0": "Clear",
//	...
func (f Forecast) Render() string {
	var b strings.Builder
	for _, session := range f.Sessions() {
		conditions := f.entries[session]
		label := session.SlotLabel()
		fmt.Fprintf(&b, "%q: %d,\n", label+"WeatherSlots", len(conditions))
		for i, c := range conditions {
			fmt.Fprintf(&b, "%q: %q,\n", fmt.Sprintf("%sWeatherSlot%d", label, i), c.String())
		}
		b.WriteString("\n")
	}
	return b.String()
}
