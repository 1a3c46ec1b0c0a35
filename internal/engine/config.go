package engine

import (
	"regexp"
	"strings"

	"golang.org/x/exp/slices"
)

// Defaults matching linux-wallpaperengine's own. The command builder only
// emits a flag when the configured value differs.
const (
	DefaultFPS             = 30
	DefaultVolume          = 15
	DefaultScreenshotDelay = 5
)

const (
	MinFPS             = 1
	MaxFPS             = 240
	MinVolume          = 0
	MaxVolume          = 100
	MinScreenshotDelay = 0
	MaxScreenshotDelay = 1000
)

// ScalingModes are the per-screen scaling choices; the empty string means
// "let the engine decide".
func ScalingModes() []string { return []string{"", "stretch", "fit", "fill"} }

// ClampModes are the per-screen texture clamping choices.
func ClampModes() []string { return []string{"", "clamp", "border", "repeat"} }

func ValidScaling(mode string) bool { return slices.Contains(ScalingModes(), mode) }

func ValidClamp(mode string) bool { return slices.Contains(ClampModes(), mode) }

var geometryRe = regexp.MustCompile(`^\d+x\d+x\d+x\d+$`)

// ValidGeometry checks the XxYxWxH window geometry format, e.g. 0x0x1920x1080.
func ValidGeometry(geometry string) bool { return geometryRe.MatchString(geometry) }

// ValidProperty checks a key=value engine property override.
func ValidProperty(prop string) bool {
	key, _, ok := strings.Cut(prop, "=")
	return ok && key != ""
}

// ScreenAssignment binds one background to one display port. Assignments are
// immutable once added; edits go through remove and re-add.
type ScreenAssignment struct {
	Port       string
	Background string
	Scaling    string
	Clamp      string
}

// Config accumulates every choice the wizard collects for one run. A fresh
// Config is created per configuration pass and consumed once by BuildArgs.
type Config struct {
	BackgroundID     string
	Screens          []ScreenAssignment
	WindowGeometries []string

	FPS               int
	Volume            int
	Silent            bool
	NoAutomute        bool
	NoAudioProcessing bool
	NoFullscreenPause bool
	DisableMouse      bool
	DisableParallax   bool

	ScreenshotPath  string
	ScreenshotDelay int

	AssetsDir  string
	Properties []string
}

func NewConfig() *Config {
	return &Config{
		FPS:             DefaultFPS,
		Volume:          DefaultVolume,
		ScreenshotDelay: DefaultScreenshotDelay,
	}
}

// HasBackground reports whether at least one screen or a default background
// is configured, the minimum for a runnable command line.
func (c *Config) HasBackground() bool {
	return len(c.Screens) > 0 || c.BackgroundID != ""
}
