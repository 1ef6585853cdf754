package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"raceday/internal/forecast"
	"raceday/internal/weather"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	f, err := forecast.New(forecast.Config{
		Probabilities: weather.DefaultProbabilities(),
		Seed:          11,
	})
	if err != nil {
		t.Fatalf("forecast.New: %v", err)
	}
	return NewModel(f, weather.Sessions())
}

func TestRenderForecastListsEverySession(t *testing.T) {
	m := newTestModel(t)
	body := m.renderForecast()
	for _, s := range weather.Sessions() {
		if !strings.Contains(body, s.String()) {
			t.Fatalf("forecast body missing session %v:\n%s", s, body)
		}
	}
	if !strings.Contains(body, "slot 0:") {
		t.Fatalf("forecast body missing slot lines:\n%s", body)
	}
}

func TestRenderProbabilitiesListsCatalog(t *testing.T) {
	m := newTestModel(t)
	body := m.renderProbabilities()
	for _, c := range weather.Conditions() {
		if !strings.Contains(body, c.String()) {
			t.Fatalf("probability body missing %v:\n%s", c, body)
		}
	}
}

func TestUpdateRegenerates(t *testing.T) {
	m := newTestModel(t)
	if _, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24}); cmd != nil {
		t.Fatal("resize should not produce a command")
	}
	before := m.current.Render()
	changed := false
	for i := 0; i < 20; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
		if m.current.Render() != before {
			changed = true
			break
		}
	}
	if !changed {
		t.Fatal("regeneration never produced a different forecast")
	}
	if !strings.Contains(m.status, "regenerated") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestUpdateQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
