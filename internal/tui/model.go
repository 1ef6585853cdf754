// Package tui provides the interactive Bubble Tea forecast viewer.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"raceday/internal/forecast"
	"raceday/internal/render"
	"raceday/internal/weather"
)

const (
	tabForecast = iota
	tabProbabilities
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	sessionTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	slotStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	wetSlotStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FA8E8")).Bold(true)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// Model implements the Bubble Tea forecast viewer.
type Model struct {
	forecaster *forecast.Forecaster
	sessions   []weather.Session

	current forecast.Forecast

	tabs      []string
	activeTab int
	viewport  viewport.Model

	width  int
	height int

	status    string
	statusErr bool
}

// NewModel constructs a forecast viewer around an existing forecaster.
func NewModel(f *forecast.Forecaster, sessions []weather.Session) *Model {
	m := &Model{
		forecaster: f,
		sessions:   sessions,
		tabs:       []string{"Forecast", "Probabilities"},
		viewport:   viewport.New(0, 0),
	}
	m.current = f.Generate(sessions)
	m.status = "r regenerate · c copy · tab switch · q quit"
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "r":
			m.current = m.forecaster.Generate(m.sessions)
			m.setStatus("forecast regenerated", false)
			m.updateLayout()
			return m, nil
		case "c":
			if err := clipboard.WriteAll(m.current.Render()); err != nil {
				m.setStatus(fmt.Sprintf("clipboard failed: %v", err), true)
			} else {
				m.setStatus("forecast copied to clipboard", false)
			}
			return m, nil
		case "tab", "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "shift+tab", "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.renderTabs()
	footer := m.renderStatus()
	return strings.Join([]string{header, m.viewport.View(), footer}, "\n")
}

func (m *Model) moveTab(delta int) {
	next := m.activeTab + delta
	if next < 0 {
		next = len(m.tabs) - 1
	}
	if next >= len(m.tabs) {
		next = 0
	}
	m.activeTab = next
	m.updateLayout()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	headerHeight := lipgloss.Height(m.renderTabs())
	bodyHeight := m.height - headerHeight - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = bodyHeight
	m.viewport.SetContent(m.renderBody())
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		style := inactiveNavStyle
		if i == m.activeTab {
			style = activeNavStyle
		}
		parts = append(parts, style.Render(tab))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderStatus() string {
	if m.statusErr {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m *Model) renderBody() string {
	if m.activeTab == tabProbabilities {
		return m.renderProbabilities()
	}
	return m.renderForecast()
}

func (m *Model) renderForecast() string {
	var b strings.Builder
	for _, session := range m.current.Sessions() {
		b.WriteString(sessionTitleStyle.Render(session.String()))
		b.WriteString("\n")
		for i, c := range m.current.Conditions(session) {
			style := slotStyle
			if c.RainIntensity() > 0 {
				style = wetSlotStyle
			}
			fmt.Fprintf(&b, "  slot %d: %s\n", i, style.Render(c.String()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderProbabilities() string {
	probabilities := m.forecaster.Probabilities()
	rows := make([][]string, 0, len(probabilities))
	for _, c := range weather.Conditions() {
		rows = append(rows, []string{
			c.String(),
			fmt.Sprintf("%.2f%%", probabilities[c]*100),
			fmt.Sprintf("%d", c.RainIntensity()),
		})
	}
	lines := render.FormatTable(
		[]string{"Weather", "Probability", "Rain"},
		rows,
		map[int]bool{1: true, 2: true},
	)
	return strings.Join(lines, "\n")
}
