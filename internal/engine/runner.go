package engine

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/AvengeMedia/dankpaper/internal/errdefs"
)

// Command builds the engine invocation with the wizard's standard streams
// inherited, so the engine's own terminal output goes straight through.
func Command(enginePath string, cfg *Config) *exec.Cmd {
	cmd := exec.Command(enginePath, BuildArgs(cfg)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// CommandLine renders the full invocation as a single space-joined line,
// which is both what the review screen shows and what gets saved.
func CommandLine(enginePath string, cfg *Config) string {
	return strings.Join(append([]string{enginePath}, BuildArgs(cfg)...), " ")
}

// Run executes the engine and waits for it to finish. The engine's exit
// status is its own concern; Run only reports failure to launch at all.
func Run(enginePath string, cfg *Config) error {
	return waitIgnoringExitStatus(Command(enginePath, cfg))
}

// RunCommandLine re-executes a previously saved command line.
func RunCommandLine(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return errdefs.ErrNoCommandFile
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return waitIgnoringExitStatus(cmd)
}

func waitIgnoringExitStatus(cmd *exec.Cmd) error {
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil
	}
	if err != nil {
		return errdefs.NewCustomError(errdefs.ErrTypeEngineLaunchFailed, err.Error())
	}
	return nil
}
