package forecast

import (
	"errors"
	"math/rand"
	"time"

	"raceday/internal/weather"
)

// ErrNoDryCondition reports a table whose entire probability mass sits on
// rain conditions. A dry-only draw against such a table would never
// terminate, so it is rejected at construction.
var ErrNoDryCondition = errors.New("forecast: no dry condition has a positive probability")

// Default slot counts per session.
const (
	DefaultPracticeSlots   = 4
	DefaultQualifyingSlots = 2
	DefaultRaceSlots       = 4
)

const (
	minSlots = 1
	maxSlots = 4
)

// Config carries the user-supplied parts of a forecaster.
type Config struct {
	// Probabilities is a partial condition-to-weight mapping; missing
	// conditions share the remaining probability mass.
	Probabilities map[weather.Condition]float64
	// Slots overrides the per-session slot counts; values are clamped to
	// [1,4] and missing sessions use the defaults.
	Slots map[weather.Session]int
	// Seed fixes the random source; 0 selects a time-based seed.
	Seed int64
}

// Forecaster owns a sanitized probability table, a slot plan, and a random
// source. It is not safe for concurrent use.
type Forecaster struct {
	table    Table
	slots    map[weather.Session]int
	rng      *rand.Rand
	warnings []string
}

// New builds a forecaster from configuration merged with catalog defaults.
func New(cfg Config) (*Forecaster, error) {
	table, warnings := NewTable(cfg.Probabilities)
	if table.UsableCount(false) == 0 {
		return nil, ErrNoDryCondition
	}

	slots := map[weather.Session]int{
		weather.Practice:   DefaultPracticeSlots,
		weather.Qualifying: DefaultQualifyingSlots,
		weather.Race:       DefaultRaceSlots,
	}
	for session, count := range cfg.Slots {
		if count < minSlots {
			count = minSlots
		}
		if count > maxSlots {
			count = maxSlots
		}
		slots[session] = count
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Forecaster{
		table:    table,
		slots:    slots,
		rng:      rand.New(rand.NewSource(seed)),
		warnings: warnings,
	}, nil
}

// Warnings returns non-fatal problems found while sanitizing the
// configuration, in the order they were detected.
func (f *Forecaster) Warnings() []string {
	return f.warnings
}

// Probability returns the sanitized weight for a condition.
func (f *Forecaster) Probability(c weather.Condition) float64 {
	return f.table.Probability(c)
}

// Probabilities returns a copy of the sanitized table.
func (f *Forecaster) Probabilities() map[weather.Condition]float64 {
	out := make(map[weather.Condition]float64, len(weather.Conditions()))
	for _, c := range weather.Conditions() {
		out[c] = f.table.Probability(c)
	}
	return out
}

// Slots returns the slot count for a session.
func (f *Forecaster) Slots(session weather.Session) int {
	return f.slots[session]
}

// Generate produces a forecast for the requested sessions.
//
// The Race is drawn first because it decides whether rain is in play for the
// whole weekend: Qualifying may only be wet when the Race is, and a wet Race
// forces a condition from the same group as its heaviest rain into Practice.
func (f *Forecaster) Generate(sessions []weather.Session) Forecast {
	forecast := Forecast{entries: map[weather.Session][]weather.Condition{}}

	requested := map[weather.Session]bool{}
	for _, s := range sessions {
		requested[s] = true
	}

	var raceRain *weather.Condition
	if requested[weather.Race] {
		race := sampleSession(f.rng, f.table, f.slots[weather.Race], true)
		forecast.entries[weather.Race] = race
		raceRain = maxRainCondition(race)
	}

	if requested[weather.Qualifying] {
		forecast.entries[weather.Qualifying] = sampleSession(
			f.rng, f.table, f.slots[weather.Qualifying], raceRain != nil)
	}

	if requested[weather.Practice] {
		// Pre-draw the propagated rain condition so it reflects the table
		// before the practice slots consume further randomness.
		var practiceRain *weather.Condition
		if raceRain != nil {
			c := sampleInGroup(f.rng, f.table, raceRain.Group())
			practiceRain = &c
		}
		practice := sampleSession(f.rng, f.table, f.slots[weather.Practice], raceRain != nil)
		if practiceRain != nil {
			practice[len(practice)-1] = *practiceRain
			f.rng.Shuffle(len(practice), func(i, j int) {
				practice[i], practice[j] = practice[j], practice[i]
			})
		}
		forecast.entries[weather.Practice] = practice
	}

	return forecast
}

// maxRainCondition returns the heaviest-rain condition of the draw, or nil
// when the draw is entirely dry.
func maxRainCondition(conditions []weather.Condition) *weather.Condition {
	var best *weather.Condition
	for i, c := range conditions {
		if c.RainIntensity() == 0 {
			continue
		}
		if best == nil || c.RainIntensity() > best.RainIntensity() {
			best = &conditions[i]
		}
	}
	return best
}
