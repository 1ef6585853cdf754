package plot

import (
	"bytes"
	"strings"
	"testing"

	"raceday/internal/weather"
)

func TestPlotSeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Test Plot", []Series{
		{Name: "Clear", Values: []float64{10, 20, 30, 20, 10}},
		{Name: "Storm", Values: []float64{5, 5, 10, 15, 20}},
	}, 20, 4)
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Test Plot") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	if !strings.Contains(out, "0.0%") {
		t.Fatalf("expected axis labels in output")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	expectedMin := 1 + 4 + 1 // title, plot rows, legend
	if len(lines) < expectedMin {
		t.Fatalf("expected at least %d lines of output, got %d", expectedMin, len(lines))
	}
}

func TestPlotSeriesEmptyWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotSeries(&buf, "Empty", nil, 20, 4); err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty series, got %q", buf.String())
	}
}

func TestHistorySeries(t *testing.T) {
	history := map[weather.Condition][]float64{
		weather.Clear:  {0.2, 0.1},
		weather.Storm:  {0.05, 0.1},
		weather.Random: {0, 0},
	}
	series := HistorySeries(history)
	if len(series) != 2 {
		t.Fatalf("expected 2 series (zero-probability condition dropped), got %d", len(series))
	}
	if series[0].Name != "Clear" || series[1].Name != "Storm" {
		t.Fatalf("series out of catalog order: %v, %v", series[0].Name, series[1].Name)
	}
	if series[0].Values[0] != 20 {
		t.Fatalf("expected probabilities converted to percent, got %v", series[0].Values[0])
	}
}

func TestWidthFor(t *testing.T) {
	axisWidth := len("00.0%") + len([]rune(axisSeparator))
	total := 80
	expected := total - axisWidth
	if got := WidthFor(total); got != expected {
		t.Fatalf("expected width %d, got %d", expected, got)
	}
	if got := WidthFor(0); got != minWidth {
		t.Fatalf("expected min width %d, got %d", minWidth, got)
	}
}
