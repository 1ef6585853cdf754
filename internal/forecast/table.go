// Package forecast implements randomized race-weekend weather generation.
package forecast

import (
	"fmt"

	"raceday/internal/weather"
)

const normalizeEpsilon = 1e-9

// Table maps every catalog condition to a probability weight. After
// construction the weights are non-negative and sum to 1.0.
type Table struct {
	weights map[weather.Condition]float64
}

// NewTable completes a partial condition-to-weight mapping into a full
// normalized table. Conditions absent from the input share the remaining
// probability mass equally. Non-fatal problems with the input (total above
// 1.0, negative weights) are reported as warnings and corrected.
func NewTable(partial map[weather.Condition]float64) (Table, []string) {
	var warnings []string

	input := make(map[weather.Condition]float64, len(partial))
	accumulated := 0.0
	for c, w := range partial {
		if w < 0 {
			warnings = append(warnings, fmt.Sprintf("probability for %v is negative (%v); using 0", c, w))
			w = 0
		}
		input[c] = w
		accumulated += w
	}

	if accumulated > 1.0 {
		warnings = append(warnings,
			fmt.Sprintf("specified probabilities accumulate to %.2f%%; normalizing them, which may shift expected odds", accumulated*100))
	}

	missing := len(weather.Conditions()) - len(input)
	remaining := clamp(1.0-accumulated, 0.0, 1.0)
	fill := 0.0
	if missing > 0 {
		fill = remaining / float64(missing)
	}

	weights := make(map[weather.Condition]float64, len(weather.Conditions()))
	for _, c := range weather.Conditions() {
		if w, ok := input[c]; ok {
			weights[c] = w
		} else {
			weights[c] = fill
		}
	}

	table := Table{weights: weights}
	table.normalize()
	return table, warnings
}

// normalize rescales the weights to sum to exactly 1.0. The pre-normalize sum
// exceeding 1.0 indicates broken sanitization, not bad user input.
func (t Table) normalize() {
	sum := 0.0
	for _, w := range t.weights {
		sum += w
	}
	if sum > 1.0+normalizeEpsilon {
		panic(fmt.Sprintf("forecast: table weights sum to %v before normalization", sum))
	}
	if sum == 0 {
		return
	}
	factor := 1.0 / sum
	for c := range t.weights {
		t.weights[c] *= factor
	}
}

// Probability returns the weight assigned to a condition.
func (t Table) Probability(c weather.Condition) float64 {
	return t.weights[c]
}

// Sum returns the total probability mass, 1.0 up to float error.
func (t Table) Sum() float64 {
	sum := 0.0
	for _, w := range t.weights {
		sum += w
	}
	return sum
}

// UsableCount counts conditions a sampler can actually return: positive
// weight, and dry unless rain is allowed.
func (t Table) UsableCount(allowRain bool) int {
	count := 0
	for c, w := range t.weights {
		if w <= 0 {
			continue
		}
		if !allowRain && c.RainIntensity() > 0 {
			continue
		}
		count++
	}
	return count
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
