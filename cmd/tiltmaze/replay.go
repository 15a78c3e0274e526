package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltmaze/internal/platform/tui"
	"github.com/vovakirdan/tiltmaze/internal/replay"
	"github.com/vovakirdan/tiltmaze/internal/storage"
)

var (
	flagReplayBest  string
	flagReplayWatch bool
	flagReplayOut   string
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Verify or watch a recorded run",
	Long: `Load a recording from a file, or the run behind a level's best time,
re-simulate it and check that it reproduces the recorded result.

Examples:
  tiltmaze replay run.tmr
  tiltmaze replay --best 2
  tiltmaze replay --best 2 --watch
  tiltmaze replay --best 2 --out best2.tmr`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayBest, "best", "", "Use the recording of this level's best time")
	replayCmd.Flags().BoolVar(&flagReplayWatch, "watch", false, "Play the recording back in the terminal")
	replayCmd.Flags().StringVar(&flagReplayOut, "out", "", "Also write the recording to this file")
}

func runReplay(cmd *cobra.Command, args []string) {
	if (len(args) == 1) == (flagReplayBest != "") {
		exitUsage(cmd, "give either a file or --best <level>")
	}

	var rec *replay.Recording
	var err error
	if flagReplayBest != "" {
		rec, err = loadBestReplay(flagReplayBest)
	} else {
		rec, err = replay.Load(args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	entry := resolveLevel(rec.Key)
	fmt.Printf("%s: recorded %s in %s (%d frames)\n", entry.Title, rec.Outcome, seconds(rec.ElapsedMS), len(rec.Frames))

	if err := replay.Verify(rec, entry.Build()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, replay.ErrMismatch) {
			fmt.Fprintln(os.Stderr, "The level geometry or physics changed since this run was recorded.")
		}
		os.Exit(1)
	}
	fmt.Println("Replay verified.")

	if flagReplayOut != "" {
		if err := rec.Save(flagReplayOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Recording written to %s\n", flagReplayOut)
	}

	if flagReplayWatch {
		if err := tui.RunReplay(rec, entry, localEnv(nil, nil)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func loadBestReplay(key string) (*replay.Recording, error) {
	entry := resolveLevel(key)
	store := mustOpenStore()
	defer store.Close()

	blob, err := store.BestReplay(entry.Key)
	if errors.Is(err, storage.ErrNoBestTime) {
		return nil, fmt.Errorf("level %s has no best time yet", entry.Key)
	}
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return nil, fmt.Errorf("the best time of level %s has no recording", entry.Key)
	}
	return replay.Decode(blob)
}
