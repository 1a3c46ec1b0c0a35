package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankpaper/internal/engine"
)

var screenshotGateOptions = []string{
	"Configure",
	"Skip",
}

func (m Model) viewScreenshotGate() string {
	return m.renderMenu("Screenshot Options", screenshotGateOptions, menuHelp)
}

func (m Model) updateScreenshotGate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.moveCursor(key, len(screenshotGateOptions)) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.transition(StateMainMenu)
	case "enter", " ":
		if m.selected == 0 {
			m.transition(StateScreenshot)
		} else {
			m.transition(StateAdvanced)
		}
	}

	return m, nil
}

func (m Model) screenshotOptions() []string {
	state := "Disabled"
	if m.config.ScreenshotPath != "" {
		state = "Enabled"
	}
	return []string{
		"Screenshot: " + state,
		fmt.Sprintf("Delay: %d frames", m.config.ScreenshotDelay),
		"Done",
	}
}

func (m Model) viewScreenshot() string {
	var b strings.Builder
	b.WriteString(m.renderMenu("Screenshot Options", m.screenshotOptions(), menuHelp))
	if m.config.ScreenshotPath != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Subtle.Render("Screenshot path: " + m.config.ScreenshotPath))
	}
	return b.String()
}

func (m Model) updateScreenshot(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.config.ScreenshotPath != "" {
				m.config.ScreenshotPath = ""
			} else {
				m.transition(StateScreenshotPath)
				m.startInput("/tmp/wallpaper.png", "")
			}
		case 1:
			m.transition(StateDelayPrompt)
			m.startInput(strconv.Itoa(m.config.ScreenshotDelay), strconv.Itoa(m.config.ScreenshotDelay))
		case 2:
			m.transition(StateAdvanced)
		}
	}

	return m, nil
}

func (m Model) viewScreenshotPath() string {
	return m.renderPrompt("Screenshot Options",
		"Screenshot file path (PNG, JPEG, BMP):",
		"")
}

func (m Model) updateScreenshotPath(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.transition(StateScreenshot)
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.errMsg = "Path cannot be empty"
				return m, nil
			}
			m.config.ScreenshotPath = value
			m.transition(StateScreenshot)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) viewDelayPrompt() string {
	return m.renderPrompt("Screenshot Options",
		fmt.Sprintf("Frame delay (%d-%d):", engine.MinScreenshotDelay, engine.MaxScreenshotDelay),
		fmt.Sprintf("Current: %d", m.config.ScreenshotDelay))
}

func (m Model) updateDelayPrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.transition(StateScreenshot)
			return m, nil
		case "enter":
			delay, err := parseBounded(m.input.Value(), engine.MinScreenshotDelay, engine.MaxScreenshotDelay)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.config.ScreenshotDelay = delay
			m.transition(StateScreenshot)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
