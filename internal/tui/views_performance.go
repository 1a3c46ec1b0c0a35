package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankpaper/internal/engine"
)

func onOff(disabled bool) string {
	if disabled {
		return "Disabled"
	}
	return "Enabled"
}

func (m Model) performanceOptions() []string {
	return []string{
		fmt.Sprintf("FPS: %d", m.config.FPS),
		"Fullscreen pause: " + onOff(m.config.NoFullscreenPause),
		"Done",
	}
}

func (m Model) viewPerformance() string {
	return m.renderMenu("Performance Settings", m.performanceOptions(), menuHelp)
}

func (m Model) updatePerformance(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.transition(StateFPSPrompt)
			m.startInput(strconv.Itoa(m.config.FPS), strconv.Itoa(m.config.FPS))
		case 1:
			m.config.NoFullscreenPause = !m.config.NoFullscreenPause
		case 2:
			m.transition(StateSound)
		}
	}

	return m, nil
}

func (m Model) viewFPSPrompt() string {
	return m.renderPrompt("Performance Settings",
		fmt.Sprintf("Frame rate limit (%d-%d):", engine.MinFPS, engine.MaxFPS),
		fmt.Sprintf("Current: %d", m.config.FPS))
}

func (m Model) updateFPSPrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.transition(StatePerformance)
			return m, nil
		case "enter":
			fps, err := parseBounded(m.input.Value(), engine.MinFPS, engine.MaxFPS)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.config.FPS = fps
			m.transition(StatePerformance)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
