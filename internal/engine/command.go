package engine

import "strconv"

// BuildArgs maps a Config to the ordered argument vector for
// linux-wallpaperengine. It is pure: the same Config always yields the same
// vector, and the ordering (global flags, per-screen groups in insertion
// order, window geometries, properties, positional background) is part of
// the contract with the engine's argument parser.
func BuildArgs(cfg *Config) []string {
	var args []string

	if cfg.FPS != DefaultFPS {
		args = append(args, "--fps", strconv.Itoa(cfg.FPS))
	}

	if cfg.NoFullscreenPause {
		args = append(args, "--no-fullscreen-pause")
	}

	// Silent wins over any stored volume.
	if cfg.Silent {
		args = append(args, "--silent")
	} else if cfg.Volume != DefaultVolume {
		args = append(args, "--volume", strconv.Itoa(cfg.Volume))
	}

	if cfg.NoAutomute {
		args = append(args, "--noautomute")
	}

	if cfg.NoAudioProcessing {
		args = append(args, "--no-audio-processing")
	}

	if cfg.DisableMouse {
		args = append(args, "--disable-mouse")
	}

	if cfg.DisableParallax {
		args = append(args, "--disable-parallax")
	}

	if cfg.ScreenshotPath != "" {
		args = append(args, "--screenshot", cfg.ScreenshotPath)
		if cfg.ScreenshotDelay != DefaultScreenshotDelay {
			args = append(args, "--screenshot-delay", strconv.Itoa(cfg.ScreenshotDelay))
		}
	}

	if cfg.AssetsDir != "" {
		args = append(args, "--assets-dir", cfg.AssetsDir)
	}

	for _, screen := range cfg.Screens {
		args = append(args, "--screen-root", screen.Port, "--bg", screen.Background)
		if screen.Scaling != "" {
			args = append(args, "--scaling", screen.Scaling)
		}
		if screen.Clamp != "" {
			args = append(args, "--clamp", screen.Clamp)
		}
	}

	for _, geometry := range cfg.WindowGeometries {
		args = append(args, "--window", geometry)
	}

	for _, prop := range cfg.Properties {
		args = append(args, "--set-property", prop)
	}

	// The default background is a bare positional argument.
	if cfg.BackgroundID != "" {
		args = append(args, cfg.BackgroundID)
	}

	return args
}
