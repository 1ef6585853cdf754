// Package render formats probability tables and forecasts as plain text.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"raceday/internal/weather"
)

// WriteProbabilities prints the per-condition odds the forecaster will use,
// in catalog order, percentages rounded to two decimals.
func WriteProbabilities(w io.Writer, probabilities map[weather.Condition]float64) error {
	if _, err := fmt.Fprintln(w, "Using the following probabilities to generate a random weather forecast:"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	nameWidth := runewidth.StringWidth("Weather")
	for _, c := range weather.Conditions() {
		if width := runewidth.StringWidth(c.String()); width > nameWidth {
			nameWidth = width
		}
	}

	if _, err := fmt.Fprintf(w, "%s : Probability\n", padRight("Weather", nameWidth)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s : -----------\n", strings.Repeat("-", nameWidth)); err != nil {
		return err
	}
	for _, c := range weather.Conditions() {
		percent := roundTo(probabilities[c]*100, 2)
		if _, err := fmt.Fprintf(w, "%s : %v%%\n", padRight(c.String(), nameWidth), percent); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// FormatTable renders rows as aligned columns, one string per line.
func FormatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		if rightAlignCols[i] {
			b.WriteString(padLeft(cell, widths[i]))
		} else {
			b.WriteString(padRight(cell, widths[i]))
		}
	}
	return b.String()
}

func padRight(value string, width int) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	return value + strings.Repeat(" ", padding)
}

func padLeft(value string, width int) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	return strings.Repeat(" ", padding) + value
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
