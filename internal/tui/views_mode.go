package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

var modeOptions = []string{
	"Single background (all screens)",
	"Multiple backgrounds (per screen)",
	"Window mode (floating window)",
	"Cancel",
}

func (m Model) viewModeSelect() string {
	return m.renderMenu("Background Mode", modeOptions, menuHelp)
}

func (m Model) updateModeSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.moveCursor(key, len(modeOptions)) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.transition(StateMainMenu)
	case "enter", " ":
		switch m.selected {
		case 0:
			m.transition(StateSingleBackground)
			m.startInput("2317494988 or ./my-wallpaper", "")
		case 1:
			m.transition(StateMultiMenu)
			m.loadingDisplays = true
			return m, tea.Batch(m.spinner.Tick, detectDisplays())
		case 2:
			m.transition(StateWindowBackground)
			m.startInput("2317494988 or ./my-wallpaper", "")
		default:
			m.transition(StateMainMenu)
		}
	}

	return m, nil
}
