package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltmaze/internal/platform/tui"
	"github.com/vovakirdan/tiltmaze/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresClear  bool
	flagScoresRecent int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show best times and statistics",
	Long: `Display the best time, attempts and wins of every level, or the
details and recent runs of one level.

Examples:
  tiltmaze scores
  tiltmaze scores 2 --recent 20
  tiltmaze scores --tui
  tiltmaze scores 2 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the best time of the level (all levels if none given)")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 10, "Number of recent runs to show for a level")
}

func runScores(cmd *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	key := ""
	if len(args) == 1 {
		key = resolveLevel(args[0]).Key
	}

	switch {
	case flagScoresClear:
		if err := store.ClearBestTimes(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing best times: %v\n", err)
			os.Exit(1)
		}
		if key == "" {
			fmt.Println("Cleared all best times.")
		} else {
			fmt.Printf("Cleared best time of level %s.\n", key)
		}

	case flagScoresTUI:
		if err := tui.RunScoreboard(localEnv(store, nil)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case key != "":
		printLevelScores(store, key)

	default:
		printAllScores(store)
	}
}

func printAllScores(store *storage.Store) {
	rows, err := tui.LoadScoreboard(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Times")
	fmt.Println()
	fmt.Printf("  %-18s  %-9s  %-8s  %-5s  %s\n", "Level", "Best", "Attempts", "Wins", "Last played")
	fmt.Printf("  %-18s  %-9s  %-8s  %-5s  %s\n", "-----", "----", "--------", "----", "-----------")
	for _, r := range rows {
		fmt.Printf("  %-18s  %-9s  %-8d  %-5d  %s\n",
			r.Title, bestString(r.Stats.HasBest, r.Stats.BestTimeMS), r.Stats.Attempts, r.Stats.Wins, lastPlayed(r.Stats.LastPlayed))
	}
}

func printLevelScores(store *storage.Store, key string) {
	entry := resolveLevel(key)
	stats, err := store.LevelStats(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n\n", entry.Title)
	fmt.Printf("  Best:      %s\n", bestString(stats.HasBest, stats.BestTimeMS))
	fmt.Printf("  Attempts:  %d (%d won, %d lost)\n", stats.Attempts, stats.Wins, stats.Losses)
	fmt.Printf("  Last play: %s\n", lastPlayed(stats.LastPlayed))

	runs, err := store.RecentRuns(key, flagScoresRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println()
		fmt.Printf("No runs recorded yet. Play 'tiltmaze play %s' to set the first time!\n", key)
		return
	}

	fmt.Println()
	fmt.Printf("  %-7s  %-9s  %s\n", "Outcome", "Time", "Date")
	fmt.Printf("  %-7s  %-9s  %s\n", "-------", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-7s  %-9s  %s\n", r.Outcome, seconds(r.ElapsedMS), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

func seconds(ms int64) string {
	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}

func bestString(ok bool, ms int64) string {
	if !ok {
		return "--.--"
	}
	return seconds(ms)
}

func lastPlayed(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format("2006-01-02 15:04")
}
