package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvengeMedia/dankpaper/internal/display"
	"github.com/AvengeMedia/dankpaper/internal/engine"
)

func newTestModel() Model {
	return NewModel("test", "/usr/bin/linux-wallpaperengine", nil)
}

func keyMsg(t tea.KeyType) tea.Msg {
	return tea.KeyMsg(tea.Key{Type: t})
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func multiMenuModel() Model {
	m := newTestModel()
	m.state = StateMultiMenu
	m.displays = []display.Display{
		{Port: "HDMI-1", Resolution: "1920x1080"},
		{Port: "DP-1"},
	}
	return m
}

func TestMainMenuStartsFreshConfig(t *testing.T) {
	m := newTestModel()
	m.config.FPS = 120
	m.config.Silent = true

	m = press(t, m, keyMsg(tea.KeyEnter))

	assert.Equal(t, StateModeSelect, m.state)
	assert.Equal(t, engine.DefaultFPS, m.config.FPS)
	assert.False(t, m.config.Silent)
}

func TestMainMenuExit(t *testing.T) {
	m := newTestModel()
	m = press(t, m, keyMsg(tea.KeyDown))

	updated, cmd := m.Update(keyMsg(tea.KeyEnter))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModeSelectCancelReturnsToMainMenu(t *testing.T) {
	m := newTestModel()
	m.state = StateModeSelect

	m = press(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, StateMainMenu, m.state)
}

func TestSingleBackgroundRequiresValue(t *testing.T) {
	m := newTestModel()
	m.state = StateSingleBackground
	m.input.SetValue("")

	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StateSingleBackground, m.state)
	assert.NotEmpty(t, m.errMsg)

	m.input.SetValue("2317494988")
	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StatePerformance, m.state)
	assert.Equal(t, "2317494988", m.config.BackgroundID)
}

func TestWindowGeometryValidated(t *testing.T) {
	m := newTestModel()
	m.state = StateWindowGeometry
	m.input.SetValue("not-a-geometry")

	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StateWindowGeometry, m.state)
	assert.Empty(t, m.config.WindowGeometries)

	m.input.SetValue("0x0x1920x1080")
	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StatePerformance, m.state)
	assert.Equal(t, []string{"0x0x1920x1080"}, m.config.WindowGeometries)
}

func TestAddScreenComplete(t *testing.T) {
	m := multiMenuModel()

	// Add screen -> second display -> background -> stretch -> clamp.
	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StateAddDisplay, m.state)

	m = press(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))
	assert.Equal(t, StateAddBackground, m.state)
	assert.Equal(t, "DP-1", m.pending.Port)

	m.input.SetValue("123")
	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StateAddScaling, m.state)

	m = press(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))
	assert.Equal(t, StateAddClamp, m.state)

	m = press(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))
	assert.Equal(t, StateMultiMenu, m.state)

	require.Len(t, m.config.Screens, 1)
	assert.Equal(t, engine.ScreenAssignment{
		Port:       "DP-1",
		Background: "123",
		Scaling:    "stretch",
		Clamp:      "clamp",
	}, m.config.Screens[0])
	assert.Equal(t, engine.ScreenAssignment{}, m.pending)
}

func TestAddScreenAbortIsAtomic(t *testing.T) {
	abortAt := map[string]func(t *testing.T, m Model) Model{
		"display step": func(t *testing.T, m Model) Model {
			m = press(t, m, keyMsg(tea.KeyEnter))
			return press(t, m, keyMsg(tea.KeyEsc))
		},
		"background step": func(t *testing.T, m Model) Model {
			m = press(t, m, keyMsg(tea.KeyEnter), keyMsg(tea.KeyEnter))
			m.input.SetValue("half-typed")
			return press(t, m, keyMsg(tea.KeyEsc))
		},
		"empty background": func(t *testing.T, m Model) Model {
			m = press(t, m, keyMsg(tea.KeyEnter), keyMsg(tea.KeyEnter))
			m.input.SetValue("")
			return press(t, m, keyMsg(tea.KeyEnter))
		},
		"scaling step": func(t *testing.T, m Model) Model {
			m = press(t, m, keyMsg(tea.KeyEnter), keyMsg(tea.KeyEnter))
			m.input.SetValue("123")
			m = press(t, m, keyMsg(tea.KeyEnter))
			return press(t, m, keyMsg(tea.KeyEsc))
		},
		"clamp step": func(t *testing.T, m Model) Model {
			m = press(t, m, keyMsg(tea.KeyEnter), keyMsg(tea.KeyEnter))
			m.input.SetValue("123")
			m = press(t, m, keyMsg(tea.KeyEnter), keyMsg(tea.KeyEnter))
			return press(t, m, keyMsg(tea.KeyEsc))
		},
	}

	for name, abort := range abortAt {
		t.Run(name, func(t *testing.T) {
			m := multiMenuModel()
			m.config.Screens = []engine.ScreenAssignment{{Port: "eDP-1", Background: "999"}}

			m = abort(t, m)

			assert.Equal(t, StateMultiMenu, m.state)
			require.Len(t, m.config.Screens, 1)
			assert.Equal(t, "eDP-1", m.config.Screens[0].Port)
			assert.Equal(t, engine.ScreenAssignment{}, m.pending)
		})
	}
}

func TestMultiMenuDoneRequiresBackground(t *testing.T) {
	m := multiMenuModel()

	// Move to "Done" and confirm with nothing configured.
	m = press(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))
	assert.Equal(t, StateMultiMenu, m.state)
	assert.NotEmpty(t, m.errMsg)

	m.config.BackgroundID = "2317494988"
	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StatePerformance, m.state)
}

func TestRemoveScreen(t *testing.T) {
	m := multiMenuModel()
	m.config.Screens = []engine.ScreenAssignment{
		{Port: "HDMI-1", Background: "1"},
		{Port: "DP-1", Background: "2"},
	}
	m.state = StateRemoveScreen

	m = press(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))

	assert.Equal(t, StateMultiMenu, m.state)
	require.Len(t, m.config.Screens, 1)
	assert.Equal(t, "HDMI-1", m.config.Screens[0].Port)
}

func TestFPSPromptBounds(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"non numeric", "abc"},
		{"too high", "500"},
		{"too low", "0"},
		{"negative", "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			m.state = StateFPSPrompt
			m.input.SetValue(tt.value)

			m = press(t, m, keyMsg(tea.KeyEnter))

			assert.Equal(t, StateFPSPrompt, m.state)
			assert.NotEmpty(t, m.errMsg)
			assert.Equal(t, engine.DefaultFPS, m.config.FPS)
		})
	}

	m := newTestModel()
	m.state = StateFPSPrompt
	m.input.SetValue("144")
	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StatePerformance, m.state)
	assert.Equal(t, 144, m.config.FPS)
}

func TestSilentToggleReprompts(t *testing.T) {
	m := newTestModel()
	m.state = StateSound
	m.config.Silent = true
	m.config.Volume = 80

	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StateVolumePrompt, m.state)
	assert.False(t, m.config.Silent)

	// Aborting the prompt falls back to the default volume.
	m = press(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, StateSound, m.state)
	assert.Equal(t, engine.DefaultVolume, m.config.Volume)
}

func TestSoundModeSilent(t *testing.T) {
	m := newTestModel()
	m.state = StateSound

	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StateSoundMode, m.state)

	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StateSound, m.state)
	assert.True(t, m.config.Silent)
}

func TestSoundModeEscLeavesConfigUntouched(t *testing.T) {
	m := newTestModel()
	m.state = StateSoundMode

	m = press(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, StateSound, m.state)
	assert.False(t, m.config.Silent)
	assert.Equal(t, engine.DefaultVolume, m.config.Volume)
}

func TestVolumePromptEmptyUsesDefault(t *testing.T) {
	m := newTestModel()
	m.state = StateVolumePrompt
	m.config.Volume = 80
	m.input.SetValue("")

	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StateSound, m.state)
	assert.Equal(t, engine.DefaultVolume, m.config.Volume)
}

func TestInteractionToggles(t *testing.T) {
	m := newTestModel()
	m.state = StateInteraction

	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.True(t, m.config.DisableMouse)

	m = press(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))
	assert.True(t, m.config.DisableParallax)

	m = press(t, m, keyMsg(tea.KeyDown), keyMsg(tea.KeyEnter))
	assert.Equal(t, StateScreenshotGate, m.state)
}

func TestScreenshotToggleClearsPath(t *testing.T) {
	m := newTestModel()
	m.state = StateScreenshot
	m.config.ScreenshotPath = "/tmp/s.png"

	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Empty(t, m.config.ScreenshotPath)
	assert.Equal(t, StateScreenshot, m.state)
}

func TestDefaultBackgroundBlankClears(t *testing.T) {
	m := multiMenuModel()
	m.config.BackgroundID = "old"
	m.state = StateDefaultBackground
	m.input.SetValue("")

	m = press(t, m, keyMsg(tea.KeyEnter))
	assert.Equal(t, StateMultiMenu, m.state)
	assert.Empty(t, m.config.BackgroundID)
}

func TestDefaultBackgroundEscKeeps(t *testing.T) {
	m := multiMenuModel()
	m.config.BackgroundID = "old"
	m.state = StateDefaultBackground
	m.input.SetValue("")

	m = press(t, m, keyMsg(tea.KeyEsc))
	assert.Equal(t, StateMultiMenu, m.state)
	assert.Equal(t, "old", m.config.BackgroundID)
}

func TestDisplaysDetectedMessage(t *testing.T) {
	m := multiMenuModel()
	m.loadingDisplays = true

	m = press(t, m, displaysDetectedMsg{displays: display.FallbackDisplays()})

	assert.False(t, m.loadingDisplays)
	require.Len(t, m.displays, 3)
	assert.Equal(t, "HDMI-1", m.displays[0].Port)
}
