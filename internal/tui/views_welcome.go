package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankpaper/internal/engine"
)

var mainMenuOptions = []string{
	"Start new configuration",
	"Exit",
}

func (m Model) viewMainMenu() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Wallpaper Engine configurator"))
	b.WriteString("\n")

	if m.osInfo != nil {
		info := fmt.Sprintf("System: %s (%s)\n", m.osInfo.PrettyName, m.osInfo.Architecture)
		b.WriteString(m.styles.Normal.Render(info))
	}
	b.WriteString(m.styles.Normal.Render("Engine: " + m.enginePath))
	b.WriteString("\n\n")

	overview := "This tool walks you through configuring your wallpaper setup\nand builds the matching linux-wallpaperengine command line.\n"
	b.WriteString(m.styles.Subtle.Render(overview))
	b.WriteString("\n")

	m.renderOptions(&b, mainMenuOptions)

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Use ↑/↓ to navigate, Enter to select, q to quit"))

	return b.String()
}

func (m Model) updateMainMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.moveCursor(key, len(mainMenuOptions)) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		return m, tea.Quit
	case "enter", " ":
		if m.selected == 1 {
			return m, tea.Quit
		}
		// Every run starts from a fresh config.
		m.config = engine.NewConfig()
		m.execErr = nil
		m.saveErr = nil
		m.saved = false
		m.backupPath = ""
		m.transition(StateModeSelect)
	}

	return m, nil
}
