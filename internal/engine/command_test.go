package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArgsAllDefaults(t *testing.T) {
	cfg := NewConfig()
	assert.Empty(t, BuildArgs(cfg))
}

func TestBuildArgsDefaultBackgroundOnly(t *testing.T) {
	cfg := NewConfig()
	cfg.BackgroundID = "2317494988"

	assert.Equal(t, []string{"2317494988"}, BuildArgs(cfg))
}

func TestBuildArgsSilentWithScreen(t *testing.T) {
	cfg := NewConfig()
	cfg.FPS = 60
	cfg.Silent = true
	cfg.Screens = []ScreenAssignment{
		{Port: "HDMI-1", Background: "123", Scaling: "fill"},
	}

	want := []string{"--fps", "60", "--silent", "--screen-root", "HDMI-1", "--bg", "123", "--scaling", "fill"}
	assert.Equal(t, want, BuildArgs(cfg))
}

func TestBuildArgsSilentSuppressesVolume(t *testing.T) {
	cfg := NewConfig()
	cfg.Silent = true
	cfg.Volume = 80

	args := BuildArgs(cfg)
	assert.Contains(t, args, "--silent")
	assert.NotContains(t, args, "--volume")
}

func TestBuildArgsVolumeOnlyWhenNotDefault(t *testing.T) {
	cfg := NewConfig()
	cfg.Volume = 50
	assert.Equal(t, []string{"--volume", "50"}, BuildArgs(cfg))

	cfg.Volume = DefaultVolume
	assert.Empty(t, BuildArgs(cfg))
}

func TestBuildArgsScreenshotDefaultDelayOmitted(t *testing.T) {
	cfg := NewConfig()
	cfg.ScreenshotPath = "/tmp/s.png"
	cfg.ScreenshotDelay = 5

	args := BuildArgs(cfg)
	assert.Equal(t, []string{"--screenshot", "/tmp/s.png"}, args)
	assert.NotContains(t, args, "--screenshot-delay")
}

func TestBuildArgsScreenshotWithDelay(t *testing.T) {
	cfg := NewConfig()
	cfg.ScreenshotPath = "/tmp/s.png"
	cfg.ScreenshotDelay = 120

	assert.Equal(t, []string{"--screenshot", "/tmp/s.png", "--screenshot-delay", "120"}, BuildArgs(cfg))
}

func TestBuildArgsScreenshotDelayWithoutPathOmitted(t *testing.T) {
	cfg := NewConfig()
	cfg.ScreenshotDelay = 120

	assert.Empty(t, BuildArgs(cfg))
}

func TestBuildArgsToggles(t *testing.T) {
	cfg := NewConfig()
	cfg.NoFullscreenPause = true
	cfg.NoAutomute = true
	cfg.NoAudioProcessing = true
	cfg.DisableMouse = true
	cfg.DisableParallax = true

	want := []string{"--no-fullscreen-pause", "--noautomute", "--no-audio-processing", "--disable-mouse", "--disable-parallax"}
	assert.Equal(t, want, BuildArgs(cfg))
}

func TestBuildArgsCategoryOrdering(t *testing.T) {
	cfg := NewConfig()
	cfg.FPS = 144
	cfg.AssetsDir = "/opt/assets"
	cfg.Screens = []ScreenAssignment{
		{Port: "DP-1", Background: "111", Clamp: "border"},
		{Port: "HDMI-1", Background: "222"},
	}
	cfg.WindowGeometries = []string{"0x0x1920x1080"}
	cfg.Properties = []string{"rate=1", "hue=0.5"}
	cfg.BackgroundID = "999"

	want := []string{
		"--fps", "144",
		"--assets-dir", "/opt/assets",
		"--screen-root", "DP-1", "--bg", "111", "--clamp", "border",
		"--screen-root", "HDMI-1", "--bg", "222",
		"--window", "0x0x1920x1080",
		"--set-property", "rate=1",
		"--set-property", "hue=0.5",
		"999",
	}
	assert.Equal(t, want, BuildArgs(cfg))
}

func TestBuildArgsDeterministic(t *testing.T) {
	cfg := NewConfig()
	cfg.FPS = 60
	cfg.Silent = true
	cfg.Screens = []ScreenAssignment{{Port: "HDMI-1", Background: "123", Scaling: "fill"}}

	first := BuildArgs(cfg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildArgs(cfg))
	}
}

func TestCommandLine(t *testing.T) {
	cfg := NewConfig()
	cfg.BackgroundID = "2317494988"

	line := CommandLine("/usr/bin/linux-wallpaperengine", cfg)
	require.Equal(t, "/usr/bin/linux-wallpaperengine 2317494988", line)
}

func TestValidModes(t *testing.T) {
	assert.True(t, ValidScaling(""))
	assert.True(t, ValidScaling("fill"))
	assert.False(t, ValidScaling("zoom"))

	assert.True(t, ValidClamp("border"))
	assert.False(t, ValidClamp("mirror"))
}
