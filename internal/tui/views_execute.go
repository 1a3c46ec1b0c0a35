package tui

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AvengeMedia/dankpaper/internal/engine"
	"github.com/AvengeMedia/dankpaper/internal/notify"
)

// executeEngine hands the terminal to the engine process and resumes the
// wizard when it exits. The engine's own exit status is not our concern,
// only a failure to launch is reported.
func (m Model) executeEngine(saveAfter bool) tea.Cmd {
	cmd := engine.Command(m.enginePath, m.config)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = nil
		}
		return execFinishedMsg{err: err, saveAfter: saveAfter}
	})
}

func (m Model) saveCommand() tea.Cmd {
	line := engine.CommandLine(m.enginePath, m.config)
	saver := m.saver
	return func() tea.Msg {
		backup, err := saver.Save(line)
		if err == nil {
			notify.Send("Wallpaper command saved", engine.CommandFile)
		}
		return saveFinishedMsg{backup: backup, err: err}
	}
}

func (m Model) viewExecuting() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Executing"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Normal.Render("Running wallpaper engine..."))

	return b.String()
}

func (m Model) updateExecuting(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case execFinishedMsg:
		m.execErr = msg.err
		if msg.err != nil {
			notify.Send("Wallpaper engine failed to start", msg.err.Error())
		}
		if msg.saveAfter {
			return m, m.saveCommand()
		}
		m.transition(StateDone)
	case saveFinishedMsg:
		m.saved = msg.err == nil
		m.saveErr = msg.err
		m.backupPath = msg.backup
		m.transition(StateDone)
	}

	return m, nil
}

func (m Model) viewDone() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Result"))
	b.WriteString("\n\n")

	if m.execErr != nil {
		b.WriteString(m.styles.Error.Render("✗ Failed to run wallpaper engine: " + m.execErr.Error()))
		b.WriteString("\n")
	}
	if m.saveErr != nil {
		b.WriteString(m.styles.Error.Render("✗ " + m.saveErr.Error()))
		b.WriteString("\n")
	}
	if m.saved {
		b.WriteString(m.styles.Success.Render("✓ Command saved to " + engine.CommandFile))
		b.WriteString("\n")
		if m.backupPath != "" {
			b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  (previous command backed up to %s)", m.backupPath)))
			b.WriteString("\n")
		}
	}
	if m.execErr == nil && m.saveErr == nil && !m.saved {
		b.WriteString(m.styles.Success.Render("✓ Wallpaper engine finished"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Press Enter to return to the main menu"))

	return b.String()
}

func (m Model) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", " ", "esc", "q":
			m.transition(StateMainMenu)
		}
	}
	return m, nil
}
