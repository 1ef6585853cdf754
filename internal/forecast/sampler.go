package forecast

import (
	"math/rand"

	"raceday/internal/weather"
)

// sampleOne draws a single weighted-random condition from the table. With
// allowRain false, wet draws are rejected and the draw repeats; the table is
// never altered, so surviving draws keep their configured relative odds.
// Callers must ensure at least one dry condition has positive weight before
// requesting a dry-only draw.
func sampleOne(rng *rand.Rand, table Table, allowRain bool) weather.Condition {
	for {
		r := rng.Float64()
		cumulative := 0.0
		selected := weather.Clear
		for _, c := range weather.Conditions() {
			cumulative += table.Probability(c)
			if cumulative > r {
				selected = c
				break
			}
		}
		if allowRain || selected.RainIntensity() == 0 {
			return selected
		}
	}
}

// sampleInGroup draws until the result is a member of the given group. Used to
// pick a rain condition related to one already known to occur.
func sampleInGroup(rng *rand.Rand, table Table, group []weather.Condition) weather.Condition {
	for {
		c := sampleOne(rng, table, true)
		if c.InGroup(group) {
			return c
		}
	}
}

// sampleSession draws the weather sequence for one session. When the table
// has enough usable conditions to fill every slot with a distinct value,
// duplicates are rejected; otherwise the slots are drawn independently and
// repeats are accepted.
func sampleSession(rng *rand.Rand, table Table, slots int, allowRain bool) []weather.Condition {
	result := make([]weather.Condition, 0, slots)
	if table.UsableCount(allowRain) >= slots {
		for len(result) < slots {
			c := sampleOne(rng, table, allowRain)
			if !containsCondition(result, c) {
				result = append(result, c)
			}
		}
		return result
	}
	for i := 0; i < slots; i++ {
		result = append(result, sampleOne(rng, table, allowRain))
	}
	return result
}

func containsCondition(conditions []weather.Condition, c weather.Condition) bool {
	for _, candidate := range conditions {
		if candidate == c {
			return true
		}
	}
	return false
}
