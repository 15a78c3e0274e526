package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltmaze/internal/level"
	"github.com/vovakirdan/tiltmaze/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (default: 1).

Controls:
  Arrows/WASD  - Tilt the board
  Space        - Level the board
  P            - Pause
  R            - Restart
  Enter        - Next level (after a win)
  B/Esc        - Back
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot

Examples:
  tiltmaze play
  tiltmaze play 4
  tiltmaze play spiral --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	key := fmt.Sprint(level.FirstLevel)
	if len(args) == 1 {
		key = args[0]
	}
	entry := resolveLevel(key)

	store := openStore()
	sensor := startSensor()

	runErr := tui.Run(entry, localEnv(store, sensor))

	if sensor != nil {
		sensor.Stop()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
