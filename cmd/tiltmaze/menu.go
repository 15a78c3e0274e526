package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltmaze/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Open the main menu to pick levels, browse best times and change settings.

Controls:
  Up/Down    - Navigate
  Left/Right - Change a setting
  Enter      - Select
  B/Esc      - Back
  Q          - Quit`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	store := openStore()
	sensor := startSensor()

	runErr := tui.RunApp(localEnv(store, sensor))

	if sensor != nil {
		sensor.Stop()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
