package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/exp/slices"

	"github.com/AvengeMedia/dankpaper/internal/display"
	"github.com/AvengeMedia/dankpaper/internal/engine"
)

var multiMenuOptions = []string{
	"Add screen",
	"Remove screen",
	"Configure default background",
	"Done",
}

func detectDisplays() tea.Cmd {
	return func() tea.Msg {
		return displaysDetectedMsg{displays: display.Detect()}
	}
}

func (m Model) viewMultiMenu() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Multi-Screen Configuration"))
	b.WriteString("\n\n")

	if m.loadingDisplays {
		b.WriteString(fmt.Sprintf("%s %s\n", m.spinner.View(), m.styles.Normal.Render("Detecting displays...")))
		return b.String()
	}

	b.WriteString(m.styles.Bold.Render(fmt.Sprintf("Configured screens: %d", len(m.config.Screens))))
	b.WriteString("\n")
	for i, screen := range m.config.Screens {
		b.WriteString(m.styles.Normal.Render(fmt.Sprintf("%d. %s → %s", i+1, screen.Port, screen.Background)))
		b.WriteString("\n")
		if screen.Scaling != "" {
			b.WriteString(m.styles.Subtle.Render("   Scaling: " + screen.Scaling))
			b.WriteString("\n")
		}
		if screen.Clamp != "" {
			b.WriteString(m.styles.Subtle.Render("   Clamping: " + screen.Clamp))
			b.WriteString("\n")
		}
	}
	if m.config.BackgroundID != "" {
		b.WriteString(m.styles.Subtle.Render("Default background: " + m.config.BackgroundID))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	m.renderOptions(&b, multiMenuOptions)

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(menuHelp))

	return b.String()
}

func (m Model) updateMultiMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if detected, ok := msg.(displaysDetectedMsg); ok {
		m.displays = detected.displays
		m.loadingDisplays = false
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.moveCursor(key, len(multiMenuOptions)) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.transition(StateModeSelect)
	case "enter", " ":
		if m.loadingDisplays {
			return m, nil
		}

		switch m.selected {
		case 0:
			m.pending = engine.ScreenAssignment{}
			m.transition(StateAddDisplay)
		case 1:
			if len(m.config.Screens) == 0 {
				m.errMsg = "No screens configured yet"
				return m, nil
			}
			m.transition(StateRemoveScreen)
		case 2:
			m.transition(StateDefaultBackground)
			m.startInput("empty clears the default", m.config.BackgroundID)
		case 3:
			if !m.config.HasBackground() {
				m.errMsg = "Configure at least one screen or a default background"
				return m, nil
			}
			m.transition(StatePerformance)
		}
	}

	return m, nil
}

func (m Model) viewAddDisplay() string {
	labels := make([]string, len(m.displays))
	for i, d := range m.displays {
		labels[i] = d.Label()
	}
	return m.renderMenu("Select Display", labels, menuHelp)
}

func (m Model) updateAddDisplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.moveCursor(key, len(m.displays)) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		// Abort the whole add, nothing is staged yet.
		m.transition(StateMultiMenu)
	case "enter", " ":
		if len(m.displays) == 0 {
			return m, nil
		}
		m.pending.Port = m.displays[m.selected].Port
		m.transition(StateAddBackground)
		m.startInput("2317494988 or ./my-wallpaper", "")
	}

	return m, nil
}

func (m Model) viewAddBackground() string {
	return m.renderPrompt("Add Screen",
		fmt.Sprintf("Background for %s (ID or path):", m.pending.Port),
		"Leaving this empty aborts the add")
}

func (m Model) updateAddBackground(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.pending = engine.ScreenAssignment{}
			m.transition(StateMultiMenu)
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				// An empty background aborts the add entirely.
				m.pending = engine.ScreenAssignment{}
				m.transition(StateMultiMenu)
				return m, nil
			}
			m.pending.Background = value
			m.transition(StateAddScaling)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func modeLabels(modes []string) []string {
	labels := make([]string, len(modes))
	for i, mode := range modes {
		if mode == "" {
			labels[i] = "None"
		} else {
			labels[i] = mode
		}
	}
	return labels
}

func (m Model) viewAddScaling() string {
	return m.renderMenu("Scaling Mode", modeLabels(engine.ScalingModes()), menuHelp)
}

func (m Model) updateAddScaling(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	modes := engine.ScalingModes()
	key := keyMsg.String()
	if m.moveCursor(key, len(modes)) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.pending = engine.ScreenAssignment{}
		m.transition(StateMultiMenu)
	case "enter", " ":
		m.pending.Scaling = modes[m.selected]
		m.transition(StateAddClamp)
	}

	return m, nil
}

func (m Model) viewAddClamp() string {
	return m.renderMenu("Clamping Mode", modeLabels(engine.ClampModes()), menuHelp)
}

func (m Model) updateAddClamp(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	modes := engine.ClampModes()
	key := keyMsg.String()
	if m.moveCursor(key, len(modes)) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.pending = engine.ScreenAssignment{}
		m.transition(StateMultiMenu)
	case "enter", " ":
		// Final step: only now does the staged assignment become real.
		m.pending.Clamp = modes[m.selected]
		m.config.Screens = append(m.config.Screens, m.pending)
		m.pending = engine.ScreenAssignment{}
		m.transition(StateMultiMenu)
	}

	return m, nil
}

func (m Model) viewRemoveScreen() string {
	labels := make([]string, len(m.config.Screens))
	for i, screen := range m.config.Screens {
		labels[i] = fmt.Sprintf("%s → %s", screen.Port, screen.Background)
	}
	return m.renderMenu("Select Screen to Remove", labels, menuHelp)
}

func (m Model) updateRemoveScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.moveCursor(key, len(m.config.Screens)) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.transition(StateMultiMenu)
	case "enter", " ":
		if len(m.config.Screens) > 0 {
			m.config.Screens = slices.Delete(m.config.Screens, m.selected, m.selected+1)
		}
		m.transition(StateMultiMenu)
	}

	return m, nil
}

func (m Model) viewDefaultBackground() string {
	return m.renderPrompt("Default Background",
		"Default background (ID or path):",
		"Submit an empty value to clear the default")
}

func (m Model) updateDefaultBackground(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.transition(StateMultiMenu)
			return m, nil
		case "enter":
			// Explicitly blank clears; escaping leaves it untouched.
			m.config.BackgroundID = strings.TrimSpace(m.input.Value())
			m.transition(StateMultiMenu)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
