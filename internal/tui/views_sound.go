package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankpaper/internal/engine"
)

func (m Model) soundOptions() []string {
	volume := fmt.Sprintf("Volume: %d", m.config.Volume)
	if m.config.Silent {
		volume = "Mode: Silent"
	}
	return []string{
		volume,
		"Auto-mute: " + onOff(m.config.NoAutomute),
		"Audio processing: " + onOff(m.config.NoAudioProcessing),
		"Done",
	}
}

func (m Model) viewSound() string {
	return m.renderMenu("Sound Settings", m.soundOptions(), menuHelp)
}

func (m Model) updateSound(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.config.Silent {
				// Leaving silent mode always re-asks for a volume.
				m.config.Silent = false
				m.transition(StateVolumePrompt)
				m.startInput(strconv.Itoa(engine.DefaultVolume), "")
			} else {
				m.transition(StateSoundMode)
			}
		case 1:
			m.config.NoAutomute = !m.config.NoAutomute
		case 2:
			m.config.NoAudioProcessing = !m.config.NoAudioProcessing
		case 3:
			m.transition(StateInteraction)
		}
	}

	return m, nil
}

var soundModeOptions = []string{
	"Silent",
	"With volume control",
}

func (m Model) viewSoundMode() string {
	return m.renderMenu("Sound Mode", soundModeOptions, menuHelp)
}

func (m Model) updateSoundMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	if m.moveCursor(key, len(soundModeOptions)) {
		return m, nil
	}

	switch key {
	case "q", "esc":
		m.transition(StateSound)
	case "enter", " ":
		if m.selected == 0 {
			m.config.Silent = true
			m.transition(StateSound)
		} else {
			m.config.Silent = false
			m.transition(StateVolumePrompt)
			m.startInput(strconv.Itoa(engine.DefaultVolume), "")
		}
	}

	return m, nil
}

func (m Model) viewVolumePrompt() string {
	return m.renderPrompt("Sound Settings",
		fmt.Sprintf("Volume (%d-%d):", engine.MinVolume, engine.MaxVolume),
		fmt.Sprintf("Default: %d", engine.DefaultVolume))
}

func (m Model) updateVolumePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			// Aborting the prompt falls back to the default volume.
			m.config.Volume = engine.DefaultVolume
			m.transition(StateSound)
			return m, nil
		case "enter":
			if strings.TrimSpace(m.input.Value()) == "" {
				m.config.Volume = engine.DefaultVolume
				m.transition(StateSound)
				return m, nil
			}
			volume, err := parseBounded(m.input.Value(), engine.MinVolume, engine.MaxVolume)
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.config.Volume = volume
			m.transition(StateSound)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
