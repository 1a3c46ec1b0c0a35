package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankpaper/internal/display"
	"github.com/AvengeMedia/dankpaper/internal/engine"
	"github.com/AvengeMedia/dankpaper/internal/osinfo"
)

type Model struct {
	version    string
	enginePath string
	osInfo     *osinfo.OSInfo

	styles  Styles
	spinner spinner.Model
	input   textinput.Model

	state    ApplicationState
	selected int
	errMsg   string

	config *engine.Config
	saver  *engine.Saver

	displays        []display.Display
	loadingDisplays bool

	// Staged add-screen assignment, only appended to the config once the
	// final step confirms.
	pending engine.ScreenAssignment

	execErr    error
	saveErr    error
	saved      bool
	backupPath string

	width  int
	height int
}

func NewModel(version, enginePath string, info *osinfo.OSInfo) Model {
	styles := NewStyles(TealTheme())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	input := textinput.New()
	input.Prompt = "→ "
	input.CharLimit = 256

	return Model{
		version:    version,
		enginePath: enginePath,
		osInfo:     info,
		styles:     styles,
		spinner:    s,
		input:      input,
		state:      StateMainMenu,
		config:     engine.NewConfig(),
		saver:      engine.NewSaver(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.loadingDisplays {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.state {
	case StateMainMenu:
		return m.updateMainMenu(msg)
	case StateModeSelect:
		return m.updateModeSelect(msg)
	case StateSingleBackground:
		return m.updateSingleBackground(msg)
	case StateWindowBackground:
		return m.updateWindowBackground(msg)
	case StateWindowGeometry:
		return m.updateWindowGeometry(msg)
	case StateMultiMenu:
		return m.updateMultiMenu(msg)
	case StateAddDisplay:
		return m.updateAddDisplay(msg)
	case StateAddBackground:
		return m.updateAddBackground(msg)
	case StateAddScaling:
		return m.updateAddScaling(msg)
	case StateAddClamp:
		return m.updateAddClamp(msg)
	case StateRemoveScreen:
		return m.updateRemoveScreen(msg)
	case StateDefaultBackground:
		return m.updateDefaultBackground(msg)
	case StatePerformance:
		return m.updatePerformance(msg)
	case StateFPSPrompt:
		return m.updateFPSPrompt(msg)
	case StateSound:
		return m.updateSound(msg)
	case StateSoundMode:
		return m.updateSoundMode(msg)
	case StateVolumePrompt:
		return m.updateVolumePrompt(msg)
	case StateInteraction:
		return m.updateInteraction(msg)
	case StateScreenshotGate:
		return m.updateScreenshotGate(msg)
	case StateScreenshot:
		return m.updateScreenshot(msg)
	case StateScreenshotPath:
		return m.updateScreenshotPath(msg)
	case StateDelayPrompt:
		return m.updateDelayPrompt(msg)
	case StateAdvanced:
		return m.updateAdvanced(msg)
	case StateAssetsDir:
		return m.updateAssetsDir(msg)
	case StateAddProperty:
		return m.updateAddProperty(msg)
	case StateReview:
		return m.updateReview(msg)
	case StateExecuting:
		return m.updateExecuting(msg)
	case StateDone:
		return m.updateDone(msg)
	}

	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case StateMainMenu:
		return m.viewMainMenu()
	case StateModeSelect:
		return m.viewModeSelect()
	case StateSingleBackground:
		return m.viewSingleBackground()
	case StateWindowBackground:
		return m.viewWindowBackground()
	case StateWindowGeometry:
		return m.viewWindowGeometry()
	case StateMultiMenu:
		return m.viewMultiMenu()
	case StateAddDisplay:
		return m.viewAddDisplay()
	case StateAddBackground:
		return m.viewAddBackground()
	case StateAddScaling:
		return m.viewAddScaling()
	case StateAddClamp:
		return m.viewAddClamp()
	case StateRemoveScreen:
		return m.viewRemoveScreen()
	case StateDefaultBackground:
		return m.viewDefaultBackground()
	case StatePerformance:
		return m.viewPerformance()
	case StateFPSPrompt:
		return m.viewFPSPrompt()
	case StateSound:
		return m.viewSound()
	case StateSoundMode:
		return m.viewSoundMode()
	case StateVolumePrompt:
		return m.viewVolumePrompt()
	case StateInteraction:
		return m.viewInteraction()
	case StateScreenshotGate:
		return m.viewScreenshotGate()
	case StateScreenshot:
		return m.viewScreenshot()
	case StateScreenshotPath:
		return m.viewScreenshotPath()
	case StateDelayPrompt:
		return m.viewDelayPrompt()
	case StateAdvanced:
		return m.viewAdvanced()
	case StateAssetsDir:
		return m.viewAssetsDir()
	case StateAddProperty:
		return m.viewAddProperty()
	case StateReview:
		return m.viewReview()
	case StateExecuting:
		return m.viewExecuting()
	case StateDone:
		return m.viewDone()
	default:
		return m.viewMainMenu()
	}
}

// transition moves to a new screen with the cursor and inline error reset.
func (m *Model) transition(state ApplicationState) {
	m.state = state
	m.selected = 0
	m.errMsg = ""
}

// startInput prepares the shared text input for a prompt screen.
func (m *Model) startInput(placeholder, value string) {
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	m.errMsg = ""
}

// moveCursor applies up/down navigation over n options and reports whether
// the key was a navigation key.
func (m *Model) moveCursor(key string, n int) bool {
	switch key {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return true
	case "down", "j":
		if m.selected < n-1 {
			m.selected++
		}
		return true
	}
	return false
}

// parseBounded parses a numeric prompt value within [min, max]. The error
// text is shown inline and the prompt re-asks, never coercing bad input.
func parseBounded(value string, min, max int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("Invalid number")
	}
	if n < min || n > max {
		return 0, fmt.Errorf("Value must be between %d and %d", min, max)
	}
	return n, nil
}

func (m Model) renderOptions(b *strings.Builder, options []string) {
	for i, option := range options {
		if i == m.selected {
			b.WriteString(m.styles.SelectedOption.Render("▶ " + option))
		} else {
			b.WriteString(m.styles.Normal.Render("  " + option))
		}
		b.WriteString("\n")
	}
}

func (m Model) renderMenu(title string, options []string, help string) string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	m.renderOptions(&b, options)

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render(help))

	return b.String()
}

func (m Model) renderPrompt(title, prompt, hint string) string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Warning.Render(prompt))
	b.WriteString("\n")
	if hint != "" {
		b.WriteString(m.styles.Subtle.Render(hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("✗ " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Enter: Confirm, Esc: Back, Ctrl+C: Quit"))

	return b.String()
}

const menuHelp = "Use ↑/↓ to navigate, Enter to select, Esc to go back"
