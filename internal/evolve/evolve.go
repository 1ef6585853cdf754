// Package evolve implements the probability-evolution forecaster. Unlike the
// static forecaster, every draw mutates the table: the drawn condition's whole
// group is suppressed and then gradually reintroduced toward its initial
// weight, which spreads a session's weather across unrelated groups. The
// per-draw table states are recorded so the evolution can be plotted.
package evolve

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"raceday/internal/forecast"
	"raceday/internal/weather"
)

// ErrProbabilityOverflow reports starting probabilities summing above 1.0.
var ErrProbabilityOverflow = errors.New("evolve: starting probabilities accumulate to more than 100%")

const (
	suppressedEpsilon = 0.001
	fullSpecEpsilon   = 0.001
)

// Forecaster holds the mutable probability state and its recorded history.
type Forecaster struct {
	initial map[weather.Condition]float64
	current map[weather.Condition]float64
	history map[weather.Condition][]float64
	rng     *rand.Rand
}

// New builds an evolution forecaster from a partial starting mapping.
// Missing conditions share the remaining probability mass equally. Seed 0
// selects a time-based seed.
func New(starting map[weather.Condition]float64, seed int64) (*Forecaster, error) {
	accumulated := 0.0
	for _, w := range starting {
		accumulated += w
	}
	if accumulated > 1.0 {
		return nil, ErrProbabilityOverflow
	}

	missing := len(weather.Conditions()) - len(starting)
	if missing == 0 && 1.0-accumulated > fullSpecEpsilon {
		return nil, fmt.Errorf("evolve: all probabilities specified but they sum to %v, not 1.0", accumulated)
	}

	fill := 0.0
	if missing > 0 {
		fill = (1.0 - accumulated) / float64(missing)
	}

	initial := make(map[weather.Condition]float64, len(weather.Conditions()))
	current := make(map[weather.Condition]float64, len(weather.Conditions()))
	history := make(map[weather.Condition][]float64, len(weather.Conditions()))
	for _, c := range weather.Conditions() {
		w, ok := starting[c]
		if !ok {
			w = fill
		}
		initial[c] = w
		current[c] = w
		history[c] = []float64{w}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Forecaster{
		initial: initial,
		current: current,
		history: history,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Next draws the given number of slots for each requested session, evolving
// the table after every draw.
func (f *Forecaster) Next(sessions []weather.Session, slots int) forecast.Forecast {
	entries := make(map[weather.Session][]weather.Condition, len(sessions))
	for _, session := range sessions {
		conditions := make([]weather.Condition, 0, slots)
		for i := 0; i < slots; i++ {
			conditions = append(conditions, f.draw())
		}
		entries[session] = conditions
	}
	return forecast.NewForecast(entries)
}

// History returns the recorded probability series per condition. Every series
// has the same length: one point per table state, starting with the initial
// one.
func (f *Forecaster) History() map[weather.Condition][]float64 {
	out := make(map[weather.Condition][]float64, len(f.history))
	for c, series := range f.history {
		copied := make([]float64, len(series))
		copy(copied, series)
		out[c] = copied
	}
	return out
}

// Probability returns the current weight of a condition.
func (f *Forecaster) Probability(c weather.Condition) float64 {
	return f.current[c]
}

func (f *Forecaster) draw() weather.Condition {
	r := f.rng.Float64()
	cumulative := 0.0
	selected := weather.Clear
	for _, c := range weather.Conditions() {
		cumulative += f.current[c]
		if cumulative > r {
			selected = c
			break
		}
	}

	f.suppressGroup(selected)
	f.normalize()
	f.reintroduce()
	f.record()
	return selected
}

// suppressGroup zeroes the drawn condition's group so directly related
// weather cannot dominate consecutive slots.
func (f *Forecaster) suppressGroup(c weather.Condition) {
	for _, member := range c.Group() {
		f.current[member] = 0
	}
}

func (f *Forecaster) normalize() {
	sum := 0.0
	for _, w := range f.current {
		sum += w
	}
	if sum == 0 {
		return
	}
	factor := 1.0 / sum
	for c := range f.current {
		f.current[c] *= factor
	}
}

// reintroduce grows suppressed probabilities back toward their initial
// values. A fully suppressed condition restarts at half its initial weight; a
// recovering one is scaled up and capped at its initial weight.
func (f *Forecaster) reintroduce() {
	for _, c := range weather.Conditions() {
		initial := f.initial[c]
		factor := 1.0 + initial*0.5
		current := f.current[c]
		switch {
		case current-suppressedEpsilon <= 0:
			f.current[c] = factor - 1.0
		case current+suppressedEpsilon < initial:
			f.current[c] = clampFloat(current*factor, 0, initial)
		}
	}
	f.normalize()
}

func (f *Forecaster) record() {
	for _, c := range weather.Conditions() {
		f.history[c] = append(f.history[c], f.current[c])
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
