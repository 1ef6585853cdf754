// Package main provides the CLI entrypoint for raceday.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"raceday/internal/config"
	"raceday/internal/evolve"
	"raceday/internal/forecast"
	"raceday/internal/plot"
	"raceday/internal/render"
	"raceday/internal/tui"
	"raceday/internal/weather"
)

// Slot count per session for the probability-evolution run; the evolution
// model predates per-session slot plans and draws a fixed-width window.
const evolutionSlots = 4

var (
	forecastConfigPath string
	forecastSessions   []string
	forecastSeed       int64
	forecastCopy       bool
	forecastInteract   bool
	forecastPlot       bool

	oddsConfigPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "raceday",
		Short:         "Randomized race-weekend weather forecasts",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runForecastCmd,
	}

	rootCmd.Flags().StringVar(&forecastConfigPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.Flags().StringSliceVar(&forecastSessions, "sessions", []string{"practice", "qualifying", "race"}, "sessions to generate weather for")
	rootCmd.Flags().Int64Var(&forecastSeed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.Flags().BoolVar(&forecastCopy, "copy", false, "copy the rendered forecast to the clipboard")
	rootCmd.Flags().BoolVar(&forecastInteract, "interactive", false, "open the interactive forecast viewer")
	rootCmd.Flags().BoolVar(&forecastPlot, "plot-evolution", false, "plot probability evolution after generating")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newOddsCmd())

	return rootCmd
}

func runForecastCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(forecastConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	applySessionsConfig(cmd, &forecastSessions, fileCfg.Forecast.Sessions)
	applyBoolConfig(cmd, "copy", &forecastCopy, fileCfg.Forecast.SetClipboard)
	applyBoolConfig(cmd, "plot-evolution", &forecastPlot, fileCfg.Forecast.PlotEvolution)
	applyInt64Config(cmd, "seed", &forecastSeed, fileCfg.Forecast.Seed)

	sessions, err := config.ParseSessions(forecastSessions)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return fmt.Errorf("--sessions must not be empty")
	}

	probabilities, err := config.ParseProbabilities(fileCfg.Probabilities)
	if err != nil {
		return err
	}
	if probabilities == nil {
		probabilities = weather.DefaultProbabilities()
	}
	slots, err := config.ParseSlots(fileCfg.Slots)
	if err != nil {
		return err
	}

	forecaster, err := forecast.New(forecast.Config{
		Probabilities: probabilities,
		Slots:         slots,
		Seed:          forecastSeed,
	})
	if err != nil {
		return err
	}
	for _, warning := range forecaster.Warnings() {
		logErrf("WARN: %s\n", warning)
	}

	if forecastInteract {
		model := tui.NewModel(forecaster, sessions)
		program := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		return nil
	}

	if err := render.WriteProbabilities(cmd.OutOrStdout(), forecaster.Probabilities()); err != nil {
		return fmt.Errorf("failed to write probabilities: %w", err)
	}

	result := forecaster.Generate(sessions)
	rendered := result.Render()

	out := cmd.OutOrStdout()
	rule := "// " + strings.Repeat("=", 80)
	if _, err := fmt.Fprintf(out, "Forecast for your next Raceday:\n%s\n\n%s%s\n", rule, rendered, rule); err != nil {
		return fmt.Errorf("failed to write forecast: %w", err)
	}

	if forecastCopy {
		if err := clipboard.WriteAll(rendered); err != nil {
			logErrf("failed to set clipboard: %v\n", err)
		}
	}

	if forecastPlot {
		if err := plotEvolution(out, probabilities, sessions, forecastSeed); err != nil {
			logErrf("plotting failed: %v\n", err)
		}
	}
	return nil
}

// plotEvolution runs the stateful evolution forecaster over the same
// sessions and charts how each condition's probability drifted per draw.
func plotEvolution(out io.Writer, probabilities map[weather.Condition]float64, sessions []weather.Session, seed int64) error {
	ev, err := evolve.New(probabilities, seed)
	if err != nil {
		return err
	}
	ev.Next(sessions, evolutionSlots)
	return plot.PlotHistory(out, ev.History())
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(config.DefaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newOddsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Print the sanitized probability table",
		Args:  cobra.NoArgs,
		RunE:  runOddsCmd,
	}
	cmd.Flags().StringVar(&oddsConfigPath, "config", config.DefaultConfigPath(), "config file path")
	return cmd
}

func runOddsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(oddsConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	probabilities, err := config.ParseProbabilities(fileCfg.Probabilities)
	if err != nil {
		return err
	}
	if probabilities == nil {
		probabilities = weather.DefaultProbabilities()
	}
	forecaster, err := forecast.New(forecast.Config{Probabilities: probabilities})
	if err != nil {
		return err
	}
	for _, warning := range forecaster.Warnings() {
		logErrf("WARN: %s\n", warning)
	}
	return render.WriteProbabilities(cmd.OutOrStdout(), forecaster.Probabilities())
}

func applySessionsConfig(cmd *cobra.Command, target *[]string, value *[]string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed("sessions") {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
