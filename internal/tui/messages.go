package tui

import (
	"github.com/AvengeMedia/dankpaper/internal/display"
)

type displaysDetectedMsg struct {
	displays []display.Display
}

type execFinishedMsg struct {
	err       error
	saveAfter bool
}

type saveFinishedMsg struct {
	backup string
	err    error
}
