package display

import (
	"fmt"
	"os"
)

// Display is one connected output as the wizard presents it.
type Display struct {
	Port       string
	Name       string
	Resolution string
}

// Label formats a display for menu listings, degrading through partial
// combinations when the monitor name or resolution is unknown.
func (d Display) Label() string {
	switch {
	case d.Resolution != "" && d.Name != "":
		return fmt.Sprintf("%s - %s (%s)", d.Port, d.Name, d.Resolution)
	case d.Resolution != "":
		return fmt.Sprintf("%s (%s)", d.Port, d.Resolution)
	case d.Name != "":
		return fmt.Sprintf("%s - %s", d.Port, d.Name)
	default:
		return d.Port
	}
}

// FallbackDisplays is returned when no enumeration backend works at all.
func FallbackDisplays() []Display {
	return []Display{
		{Port: "HDMI-1"},
		{Port: "DP-1"},
		{Port: "eDP-1"},
	}
}

var getenv = os.Getenv

// Detect enumerates connected displays. On Wayland sessions the native
// protocol is tried first, then xrandr. Detect never fails: with no usable
// backend it returns FallbackDisplays.
func Detect() []Display {
	if getenv("WAYLAND_DISPLAY") != "" {
		if displays, err := detectWayland(); err == nil && len(displays) > 0 {
			return displays
		}
	}

	return detectXrandr()
}
