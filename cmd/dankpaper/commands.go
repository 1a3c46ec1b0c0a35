package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/AvengeMedia/dankpaper/internal/display"
	"github.com/AvengeMedia/dankpaper/internal/engine"
	"github.com/AvengeMedia/dankpaper/internal/errdefs"
	"github.com/AvengeMedia/dankpaper/internal/log"
	"github.com/AvengeMedia/dankpaper/internal/osinfo"
	"github.com/AvengeMedia/dankpaper/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "dankpaper",
	Short: "Interactive linux-wallpaperengine configurator",
	Long: "dankpaper walks you through configuring linux-wallpaperengine\n\n" +
		"It detects your displays, asks for backgrounds and engine options,\n" +
		"then builds, runs and optionally saves the matching command line.",
	Run: runInteractiveMode,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List detected displays",
	Long:  "Detect connected displays via Wayland or xrandr and print them",
	Run:   runDisplays,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Re-run the last saved wallpaper command",
	Long:  "Execute the command line previously saved to " + engine.CommandFile,
	Run:   runSaved,
}

func runInteractiveMode(cmd *cobra.Command, args []string) {
	enginePath, err := engine.Locate()
	if err != nil {
		fmt.Println("Error: linux-wallpaperengine was not found on this system.")
		fmt.Println("Install it and make sure the binary is on your PATH.")
		os.Exit(1)
	}

	info, err := osinfo.GetOSInfo()
	if err != nil {
		log.Debugf("OS detection failed: %v", err)
	}

	model := tui.NewModel(Version, enginePath, info)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("dankpaper v%s\n", Version)
}

func runDisplays(cmd *cobra.Command, args []string) {
	displays := display.Detect()
	for _, d := range displays {
		fmt.Println(d.Label())
	}
}

func runSaved(cmd *cobra.Command, args []string) {
	line, err := engine.NewSaver().Load()
	if err != nil {
		if errors.Is(err, errdefs.ErrNoCommandFile) {
			fmt.Printf("No saved command found. Run dankpaper first and pick \"Save command\" to create %s.\n", engine.CommandFile)
		} else {
			fmt.Printf("Error reading %s: %v\n", engine.CommandFile, err)
		}
		os.Exit(1)
	}

	fmt.Println("Running: " + line)
	if err := engine.RunCommandLine(line); err != nil {
		log.Fatalf("Error running wallpaper engine: %v", err)
	}
}
