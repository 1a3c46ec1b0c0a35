package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankpaper/internal/engine"
)

func (m Model) viewSingleBackground() string {
	return m.renderPrompt("Background Configuration",
		"Enter background ID or path:",
		"Examples: 2317494988 or ./my-wallpaper")
}

func (m Model) updateSingleBackground(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.transition(StateModeSelect)
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.errMsg = "Background cannot be empty"
				return m, nil
			}
			m.config.BackgroundID = value
			m.transition(StatePerformance)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) viewWindowBackground() string {
	return m.renderPrompt("Window Mode Configuration",
		"Enter background ID or path:",
		"Examples: 2317494988 or ./my-wallpaper")
}

func (m Model) updateWindowBackground(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.transition(StateModeSelect)
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.errMsg = "Background cannot be empty"
				return m, nil
			}
			m.config.BackgroundID = value
			m.transition(StateWindowGeometry)
			m.startInput("0x0x1920x1080", "")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) viewWindowGeometry() string {
	return m.renderPrompt("Window Mode Configuration",
		"Enter window geometry (X x Y x W x H):",
		"Example: 0x0x1920x1080 (leave empty to skip)")
}

func (m Model) updateWindowGeometry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.transition(StateWindowBackground)
			m.startInput("2317494988 or ./my-wallpaper", m.config.BackgroundID)
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value != "" {
				if !engine.ValidGeometry(value) {
					m.errMsg = "Geometry must look like 0x0x1920x1080"
					return m, nil
				}
				m.config.WindowGeometries = append(m.config.WindowGeometries, value)
			}
			m.transition(StatePerformance)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
