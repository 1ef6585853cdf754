package forecast

import (
	"math"
	"math/rand"
	"testing"

	"raceday/internal/weather"
)

func defaultTable(t *testing.T) Table {
	t.Helper()
	table, warnings := NewTable(weather.DefaultProbabilities())
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	return table
}

func TestSampleOneDryOnlyNeverRains(t *testing.T) {
	table := defaultTable(t)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		c := sampleOne(rng, table, false)
		if c.RainIntensity() > 0 {
			t.Fatalf("dry-only draw returned %v (intensity %d)", c, c.RainIntensity())
		}
	}
}

func TestSampleInGroupStaysInGroup(t *testing.T) {
	table := defaultTable(t)
	rng := rand.New(rand.NewSource(2))
	group := weather.Storm.Group()
	for i := 0; i < 1000; i++ {
		c := sampleInGroup(rng, table, group)
		if c != weather.Storm && c != weather.Thunderstorm {
			t.Fatalf("group draw returned %v, want a member of %v", c, group)
		}
	}
}

func TestSampleSessionPrefersDistinctConditions(t *testing.T) {
	table := defaultTable(t)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		draw := sampleSession(rng, table, 4, false)
		if len(draw) != 4 {
			t.Fatalf("draw length = %d, want 4", len(draw))
		}
		seen := map[weather.Condition]bool{}
		for _, c := range draw {
			if seen[c] {
				t.Fatalf("duplicate %v in draw %v with enough usable options", c, draw)
			}
			seen[c] = true
			if c.RainIntensity() > 0 {
				t.Fatalf("dry-only session draw contains %v", c)
			}
		}
	}
}

func TestSampleSessionFallsBackToRepeats(t *testing.T) {
	// Concentrate all weight on two conditions so four slots cannot be
	// filled without repeating; the fallback draws with replacement.
	partial := map[weather.Condition]float64{}
	for _, c := range weather.Conditions() {
		partial[c] = 0
	}
	partial[weather.Clear] = 0.7
	partial[weather.Overcast] = 0.3
	table, _ := NewTable(partial)

	rng := rand.New(rand.NewSource(4))
	draw := sampleSession(rng, table, 4, false)
	if len(draw) != 4 {
		t.Fatalf("draw length = %d, want 4", len(draw))
	}
	for _, c := range draw {
		if c != weather.Clear && c != weather.Overcast {
			t.Fatalf("fallback draw contains %v with zero weight", c)
		}
	}
}

func TestSampleOneMatchesConfiguredWeights(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping statistical sampling test in short mode")
	}

	const draws = 10_000_000
	table := defaultTable(t)
	rng := rand.New(rand.NewSource(5))

	counts := map[weather.Condition]int{}
	for i := 0; i < draws; i++ {
		counts[sampleOne(rng, table, true)]++
	}

	for _, c := range weather.Conditions() {
		got := float64(counts[c]) / draws
		want := table.Probability(c)
		if math.Abs(got-want) > 0.0005 {
			t.Errorf("%v drawn with frequency %v, configured weight %v", c, got, want)
		}
	}
}
