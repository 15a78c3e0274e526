// tiltmaze is a tilt-maze game for the terminal: roll a ball around a
// maze by tilting the board, avoid the traps and reach the goal.
//
// Usage:
//
//	tiltmaze list                         - List available levels
//	tiltmaze play [level]                 - Play a level (default: 1)
//	tiltmaze menu                         - Interactive menu
//	tiltmaze scores [level]               - Show best times and statistics
//	tiltmaze settings [get|set key value] - Show or change settings
//	tiltmaze serve                        - Start SSH server for remote play
//	tiltmaze simulate <level>             - Run a level headless with a fixed tilt
//	tiltmaze replay <file>|--best <level> - Verify or watch a recording
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: from config, 60)
//	--db <path>       - Set database path (default: ~/.tiltmaze/tiltmaze.db)
//	--config <path>   - Use a specific config file
//	--levels <dir>    - Load custom levels from dir
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiltmaze",
	Short: "Tiltmaze - Roll the ball to the goal in your terminal",
	Long: `Tiltmaze is a tilt-controlled maze game. Tilt the board with the
arrow keys (or the device accelerometer where available), steer the ball
around the walls, avoid the traps and reach the goal as fast as you can.

Available commands:
  list      - Show all levels
  play      - Play a level directly
  menu      - Interactive menu
  scores    - View best times and statistics
  settings  - Show or change settings
  serve     - Start SSH server for remote play
  simulate  - Run a level headless with a fixed tilt
  replay    - Verify or watch a recorded run

Examples:
  tiltmaze list
  tiltmaze play 3
  tiltmaze menu
  tiltmaze settings set sensitivity 1.4
  tiltmaze simulate 1 --tilt -0.5,-1 --seconds 10
  tiltmaze replay --best 1 --watch`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setup()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tiltmaze/tiltmaze.db", "Path to the database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with custom level files (default: config levels.dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(replayCmd)
}
