package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankpaper/internal/engine"
)

func (m Model) advancedOptions() []string {
	assets := m.config.AssetsDir
	if assets == "" {
		assets = "engine default"
	}
	return []string{
		"Assets directory: " + assets,
		"Add property override",
		"Clear property overrides",
		"Done",
	}
}

func (m Model) viewAdvanced() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Advanced Settings"))
	b.WriteString("\n\n")

	if len(m.config.Properties) > 0 {
		b.WriteString(m.styles.Bold.Render(fmt.Sprintf("Property overrides: %d", len(m.config.Properties))))
		b.WriteString("\n")
		for _, prop := range m.config.Properties {
			b.WriteString(m.styles.Subtle.Render("  " + prop))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	m.renderOptions(&b, m.advancedOptions())

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(menuHelp))

	return b.String()
}

func (m Model) updateAdvanced(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.moveCursor(key, 4) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.transition(StateMainMenu)
	case "enter", " ":
		switch m.selected {
		case 0:
			m.transition(StateAssetsDir)
			m.startInput("empty uses the engine default", m.config.AssetsDir)
		case 1:
			m.transition(StateAddProperty)
			m.startInput("key=value", "")
		case 2:
			m.config.Properties = nil
		case 3:
			m.transition(StateReview)
		}
	}

	return m, nil
}

func (m Model) viewAssetsDir() string {
	return m.renderPrompt("Advanced Settings",
		"Assets directory override:",
		"Submit an empty value to use the engine default")
}

func (m Model) updateAssetsDir(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.transition(StateAdvanced)
			return m, nil
		case "enter":
			m.config.AssetsDir = strings.TrimSpace(m.input.Value())
			m.transition(StateAdvanced)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) viewAddProperty() string {
	return m.renderPrompt("Advanced Settings",
		"Property override (key=value):",
		"Example: rate=0.5")
}

func (m Model) updateAddProperty(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.transition(StateAdvanced)
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if !engine.ValidProperty(value) {
				m.errMsg = "Property must look like key=value"
				return m, nil
			}
			m.config.Properties = append(m.config.Properties, value)
			m.transition(StateAdvanced)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
