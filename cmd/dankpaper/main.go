package main

import (
	"github.com/AvengeMedia/dankpaper/internal/log"
)

var Version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd, displaysCmd, runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
