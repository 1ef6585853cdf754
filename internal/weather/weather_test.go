package weather

import (
	"math"
	"testing"
)

func TestDefaultProbabilitiesSumToOne(t *testing.T) {
	sum := 0.0
	for _, c := range Conditions() {
		if c == Random {
			continue
		}
		sum += c.DefaultProbability()
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("non-Random default probabilities sum to %v, want 1.0", sum)
	}
	if Random.DefaultProbability() != 0 {
		t.Fatalf("Random must carry zero default probability, got %v", Random.DefaultProbability())
	}
}

func TestGroupsPartitionCatalog(t *testing.T) {
	// Membership counted across the distinct groups (keyed by their first
	// member) must cover every condition exactly once.
	seen := map[Condition]int{}
	distinct := map[Condition]bool{}
	for _, c := range Conditions() {
		group := c.Group()
		if len(group) == 0 {
			t.Fatalf("%v has no group", c)
		}
		if !c.InGroup(group) {
			t.Fatalf("%v is not a member of its own group %v", c, group)
		}
		for _, member := range group {
			if member.Group()[0] != group[0] {
				t.Fatalf("%v and %v disagree on group identity", c, member)
			}
		}
		if distinct[group[0]] {
			continue
		}
		distinct[group[0]] = true
		for _, member := range group {
			seen[member]++
		}
	}
	for _, c := range Conditions() {
		if seen[c] != 1 {
			t.Fatalf("%v appears in %d groups, want exactly 1", c, seen[c])
		}
	}
}

func TestRainIntensities(t *testing.T) {
	wet := map[Condition]int{
		LightRain:        1,
		Rain:             2,
		FogWithRain:      2,
		HeavyFogWithRain: 2,
		Storm:            3,
		Thunderstorm:     3,
	}
	for _, c := range Conditions() {
		want := wet[c]
		if got := c.RainIntensity(); got != want {
			t.Fatalf("%v rain intensity = %d, want %d", c, got, want)
		}
	}
}

func TestRainGroupsAreUniformlyWet(t *testing.T) {
	// Propagating a rain condition into another session picks from the same
	// group, so wet and dry conditions must not share a group.
	for _, c := range Conditions() {
		wet := c.RainIntensity() > 0
		for _, member := range c.Group() {
			if (member.RainIntensity() > 0) != wet {
				t.Fatalf("group of %v mixes wet and dry members: %v", c, c.Group())
			}
		}
	}
}

func TestParseCondition(t *testing.T) {
	for _, c := range Conditions() {
		parsed, err := ParseCondition(c.String())
		if err != nil {
			t.Fatalf("parse %q: %v", c.String(), err)
		}
		if parsed != c {
			t.Fatalf("parse %q = %v, want %v", c.String(), parsed, c)
		}
	}
	if _, err := ParseCondition("heavyfogwithrain"); err != nil {
		t.Fatalf("expected case-insensitive parse, got %v", err)
	}
	if _, err := ParseCondition("Drizzle"); err == nil {
		t.Fatal("expected error for unknown condition")
	}
}

func TestParseSession(t *testing.T) {
	for _, s := range Sessions() {
		parsed, err := ParseSession(s.String())
		if err != nil {
			t.Fatalf("parse %q: %v", s.String(), err)
		}
		if parsed != s {
			t.Fatalf("parse %q = %v, want %v", s.String(), parsed, s)
		}
	}
	if _, err := ParseSession("qualifying"); err != nil {
		t.Fatalf("expected case-insensitive parse, got %v", err)
	}
	if _, err := ParseSession("Warmup"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestSlotLabel(t *testing.T) {
	if got := Qualifying.SlotLabel(); got != "Qualify" {
		t.Fatalf("Qualifying slot label = %q, want %q", got, "Qualify")
	}
	if got := Race.SlotLabel(); got != "Race" {
		t.Fatalf("Race slot label = %q, want %q", got, "Race")
	}
}
