package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankpaper/internal/engine"
)

var reviewOptions = []string{
	"Execute",
	"Save command",
	"Execute & Save",
	"Cancel",
}

func (m Model) viewReview() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Review Configuration"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Bold.Render("Command to execute:"))
	b.WriteString("\n")
	b.WriteString(m.styles.CommandLine.Render(engine.CommandLine(m.enginePath, m.config)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Bold.Render("Configuration Summary:"))
	b.WriteString("\n")
	for _, line := range m.summaryLines() {
		b.WriteString(m.styles.Normal.Render("  • " + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	m.renderOptions(&b, reviewOptions)

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(menuHelp))

	return b.String()
}

func (m Model) summaryLines() []string {
	var lines []string

	if m.config.BackgroundID != "" {
		lines = append(lines, "Background: "+m.config.BackgroundID)
	}
	if len(m.config.Screens) > 0 {
		lines = append(lines, fmt.Sprintf("Screens configured: %d", len(m.config.Screens)))
	}
	if len(m.config.WindowGeometries) > 0 {
		lines = append(lines, "Window geometries: "+strings.Join(m.config.WindowGeometries, ", "))
	}

	lines = append(lines, fmt.Sprintf("FPS: %d", m.config.FPS))

	if m.config.Silent {
		lines = append(lines, "Sound: Silent")
	} else {
		lines = append(lines, fmt.Sprintf("Volume: %d", m.config.Volume))
	}

	if m.config.ScreenshotPath != "" {
		lines = append(lines, fmt.Sprintf("Screenshot: %s (delay %d)", m.config.ScreenshotPath, m.config.ScreenshotDelay))
	}
	if m.config.AssetsDir != "" {
		lines = append(lines, "Assets directory: "+m.config.AssetsDir)
	}
	if len(m.config.Properties) > 0 {
		lines = append(lines, fmt.Sprintf("Property overrides: %d", len(m.config.Properties)))
	}

	return lines
}

func (m Model) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case "up", "k", "left":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j", "right":
		if m.selected < len(reviewOptions)-1 {
			m.selected++
		}
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.transition(StateMainMenu)
	case "enter", " ":
		switch m.selected {
		case 0:
			m.transition(StateExecuting)
			return m, m.executeEngine(false)
		case 1:
			m.transition(StateExecuting)
			return m, m.saveCommand()
		case 2:
			m.transition(StateExecuting)
			return m, m.executeEngine(true)
		default:
			m.transition(StateMainMenu)
		}
	}

	return m, nil
}
