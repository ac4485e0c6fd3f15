package sim

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Key step sizes for the slider, in raw depth units.
const (
	stepSmall = 8
	stepLarge = 64
)

var (
	sliderTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	sliderBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	sliderValueStyle = lipgloss.NewStyle().Bold(true)
	sliderHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// SliderModel is a Bubble Tea model presenting a vertical depth slider.
// Arrow keys move the value; every change is published to the server.
type SliderModel struct {
	server   *Server
	maxDepth int
	value    int
	height   int
	quitting bool
}

// NewSliderModel creates a slider bound to the given server.
func NewSliderModel(server *Server, maxDepth int) SliderModel {
	return SliderModel{
		server:   server,
		maxDepth: maxDepth,
		height:   20,
	}
}

// Init implements tea.Model.
func (m SliderModel) Init() tea.Cmd {
	m.server.Update(m.value)
	return nil
}

// Update implements tea.Model.
func (m SliderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.value = min(m.value+stepSmall, m.maxDepth)
		case "down", "j":
			m.value = max(m.value-stepSmall, 0)
		case "pgup":
			m.value = min(m.value+stepLarge, m.maxDepth)
		case "pgdown":
			m.value = max(m.value-stepLarge, 0)
		case "home":
			m.value = m.maxDepth
		case "end", "0":
			m.value = 0
		default:
			return m, nil
		}
		m.server.Update(m.value)
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m SliderModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(sliderTitleStyle.Render("Depth Simulator"))
	sb.WriteString("\n\n")

	// Bar fills from the bottom as depth increases.
	filled := 0
	if m.maxDepth > 0 {
		filled = m.value * m.height / m.maxDepth
	}
	for row := m.height - 1; row >= 0; row-- {
		if row < filled {
			sb.WriteString(sliderBarStyle.Render("  ████"))
		} else {
			sb.WriteString("  ░░░░")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(sliderValueStyle.Render(fmt.Sprintf("  Depth: %d / %d", m.value, m.maxDepth)))
	sb.WriteString("\n")
	sb.WriteString(sliderHelpStyle.Render("  ↑/↓ ±8  PgUp/PgDn ±64  Home/End full  q quit"))
	return sb.String()
}
