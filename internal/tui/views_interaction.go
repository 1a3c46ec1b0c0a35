package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) interactionOptions() []string {
	return []string{
		"Mouse: " + onOff(m.config.DisableMouse),
		"Parallax: " + onOff(m.config.DisableParallax),
		"Done",
	}
}

func (m Model) viewInteraction() string {
	return m.renderMenu("Interaction Settings", m.interactionOptions(), menuHelp)
}

func (m Model) updateInteraction(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.moveCursor(key, 3) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.transition(StateMainMenu)
	case "enter", " ":
		switch m.selected {
		case 0:
			m.config.DisableMouse = !m.config.DisableMouse
		case 1:
			m.config.DisableParallax = !m.config.DisableParallax
		case 2:
			m.transition(StateScreenshotGate)
		}
	}

	return m, nil
}
