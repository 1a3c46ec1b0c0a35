package engine

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/AvengeMedia/dankpaper/internal/errdefs"
)

// CommandFile is the fixed relative path the wizard persists commands to.
const CommandFile = "wallpaper-command.txt"

// Saver persists built command lines. The filesystem is injectable so tests
// run against an in-memory fs.
type Saver struct {
	fs  afero.Fs
	now func() time.Time
}

func NewSaver() *Saver {
	return &Saver{fs: afero.NewOsFs(), now: time.Now}
}

func NewSaverWithFs(fs afero.Fs) *Saver {
	return &Saver{fs: fs, now: time.Now}
}

// Save writes the command line to CommandFile, backing up any existing file
// first. It returns the backup path, if one was made.
func (s *Saver) Save(line string) (string, error) {
	backupPath := ""

	if existing, err := afero.ReadFile(s.fs, CommandFile); err == nil {
		timestamp := s.now().Format("2006-01-02_15-04-05")
		backupPath = CommandFile + ".backup." + timestamp
		if err := afero.WriteFile(s.fs, backupPath, existing, 0644); err != nil {
			return "", fmt.Errorf("failed to create backup: %w", err)
		}
	}

	if err := afero.WriteFile(s.fs, CommandFile, []byte(line), 0644); err != nil {
		return "", fmt.Errorf("failed to save command: %w", err)
	}

	return backupPath, nil
}

// Load reads the previously saved command line.
func (s *Saver) Load() (string, error) {
	data, err := afero.ReadFile(s.fs, CommandFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errdefs.ErrNoCommandFile
		}
		return "", err
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		return "", errdefs.ErrNoCommandFile
	}
	return line, nil
}
