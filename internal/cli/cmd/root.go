// Package cmd provides Cobra CLI commands for poricom.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/poricom/poricom/internal/cli"
	"github.com/poricom/poricom/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	newApp    = cli.NewApp
	rootCmd   = &cobra.Command{
		Use:   "poricom",
		Short: "Settings for the poricom screen OCR tool",
		Long: `Poricom - capture a region of the screen and read its text.

This command manages the persisted settings of the capture window:

  - VIEW: preview font, colors, padding and the capture window tint
  - HOTKEYS: keyboard shortcuts of every action
  - OCR: the recognition engine

View settings are written as soon as they change. Hotkey and OCR edits
are applied when saved, which every 'settings set' does.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = newApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
