package engine

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/AvengeMedia/dankpaper/internal/errdefs"
)

// EngineBinary is the renderer this wizard drives.
const EngineBinary = "linux-wallpaperengine"

var osExecutable = os.Executable
var lookPath = exec.LookPath

// Locate resolves the engine binary, preferring a copy sitting next to this
// executable and falling back to $PATH.
func Locate() (string, error) {
	if exe, err := osExecutable(); err == nil {
		adjacent := filepath.Join(filepath.Dir(exe), EngineBinary)
		if info, err := os.Stat(adjacent); err == nil && !info.IsDir() {
			return adjacent, nil
		}
	}

	if path, err := lookPath(EngineBinary); err == nil {
		return path, nil
	}

	return "", errdefs.ErrEngineNotFound
}
