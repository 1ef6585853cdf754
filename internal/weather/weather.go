// Package weather defines the closed catalog of conditions and sessions.
package weather

import (
	"fmt"
	"strings"
)

// Condition is one discrete weather outcome from the fixed catalog.
type Condition int

// Catalog conditions in sampling order.
const (
	Clear Condition = iota
	LightCloud
	MediumCloud
	HeavyCloud
	Overcast
	LightRain
	Rain
	Storm
	Thunderstorm
	Foggy
	FogWithRain
	HeavyFog
	HeavyFogWithRain
	Hazy
	Random
)

var conditionNames = [...]string{
	Clear:            "Clear",
	LightCloud:       "LightCloud",
	MediumCloud:      "MediumCloud",
	HeavyCloud:       "HeavyCloud",
	Overcast:         "Overcast",
	LightRain:        "LightRain",
	Rain:             "Rain",
	Storm:            "Storm",
	Thunderstorm:     "Thunderstorm",
	Foggy:            "Foggy",
	FogWithRain:      "FogWithRain",
	HeavyFog:         "HeavyFog",
	HeavyFogWithRain: "HeavyFogWithRain",
	Hazy:             "Hazy",
	Random:           "Random",
}

// Default weights are fourteenths so the non-Random catalog sums to exactly 1.
var defaultProbabilities = [...]float64{
	Clear:            2.4 / 14.0,
	LightCloud:       2.0 / 14.0,
	MediumCloud:      2.0 / 14.0,
	HeavyCloud:       1.0 / 14.0,
	Overcast:         1.0 / 14.0,
	LightRain:        0.4 / 14.0,
	Rain:             0.2 / 14.0,
	Storm:            0.3 / 14.0,
	Thunderstorm:     0.3 / 14.0,
	Foggy:            1.0 / 14.0,
	FogWithRain:      0.2 / 14.0,
	HeavyFog:         1.0 / 14.0,
	HeavyFogWithRain: 0.2 / 14.0,
	Hazy:             2.0 / 14.0,
	Random:           0.0,
}

var rainIntensities = [...]int{
	LightRain:        1,
	Rain:             2,
	Storm:            3,
	Thunderstorm:     3,
	FogWithRain:      2,
	HeavyFogWithRain: 2,
	Hazy:             0,
}

// Each condition belongs to exactly one group of meteorologically related
// conditions; groups drive the cross-session rain consistency rule.
var conditionGroups = [][]Condition{
	{Clear, LightCloud},
	{MediumCloud, HeavyCloud, Overcast},
	{LightRain},
	{Rain, FogWithRain, HeavyFogWithRain},
	{Storm, Thunderstorm},
	{Foggy, HeavyFog, Hazy},
	{Random},
}

var groupOf = func() map[Condition][]Condition {
	m := make(map[Condition][]Condition, len(conditionNames))
	for _, group := range conditionGroups {
		for _, c := range group {
			m[c] = group
		}
	}
	return m
}()

// Conditions returns every catalog condition in stable sampling order.
func Conditions() []Condition {
	out := make([]Condition, len(conditionNames))
	for i := range out {
		out[i] = Condition(i)
	}
	return out
}

// String returns the canonical condition name.
func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionNames) {
		return fmt.Sprintf("Condition(%d)", int(c))
	}
	return conditionNames[c]
}

// DefaultProbability returns the condition's catalog weight.
func (c Condition) DefaultProbability() float64 {
	return defaultProbabilities[c]
}

// RainIntensity returns the precipitation severity; 0 means dry.
func (c Condition) RainIntensity() int {
	if int(c) >= len(rainIntensities) {
		return 0
	}
	return rainIntensities[c]
}

// Group returns the group the condition belongs to, itself included.
func (c Condition) Group() []Condition {
	return groupOf[c]
}

// InGroup reports whether the condition is part of the given group.
func (c Condition) InGroup(group []Condition) bool {
	for _, member := range group {
		if member == c {
			return true
		}
	}
	return false
}

// ParseCondition resolves a case-insensitive condition name.
func ParseCondition(name string) (Condition, error) {
	for i, candidate := range conditionNames {
		if strings.EqualFold(name, candidate) {
			return Condition(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weather condition %q", name)
}

// DefaultProbabilities returns a fresh copy of the catalog weights.
func DefaultProbabilities() map[Condition]float64 {
	m := make(map[Condition]float64, len(conditionNames))
	for _, c := range Conditions() {
		m[c] = c.DefaultProbability()
	}
	return m
}

// Session is one part of a race weekend.
type Session int

// Sessions in weekend display order.
const (
	Practice Session = iota
	Qualifying
	Race
)

var sessionNames = [...]string{
	Practice:   "Practice",
	Qualifying: "Qualifying",
	Race:       "Race",
}

// Sessions returns all sessions in display order.
func Sessions() []Session {
	return []Session{Practice, Qualifying, Race}
}

// String returns the session name.
func (s Session) String() string {
	if s < 0 || int(s) >= len(sessionNames) {
		return fmt.Sprintf("Session(%d)", int(s))
	}
	return sessionNames[s]
}

// SlotLabel returns the session prefix used in forecast slot output. The
// exported format abbreviates Qualifying.
func (s Session) SlotLabel() string {
	if s == Qualifying {
		return "Qualify"
	}
	return s.String()
}

// ParseSession resolves a case-insensitive session name.
func ParseSession(name string) (Session, error) {
	for i, candidate := range sessionNames {
		if strings.EqualFold(name, candidate) {
			return Session(i), nil
		}
	}
	return 0, fmt.Errorf("unknown session %q", name)
}
