package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiltmaze/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels followed by custom levels loaded from the levels directory.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	entries := registry.List()

	if len(entries) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxKeyLen := 3 // "Key" header
	for _, e := range entries {
		maxKeyLen = max(maxKeyLen, len(e.Key))
	}

	fmt.Printf("  %-*s  %-10s  %-8s  %s\n", maxKeyLen, "Key", "Difficulty", "Source", "Title")
	fmt.Printf("  %-*s  %-10s  %-8s  %s\n", maxKeyLen, "---", "----------", "------", "-----")

	for _, e := range entries {
		source := "built-in"
		if e.Custom {
			source = "custom"
		}
		fmt.Printf("  %-*s  %-10d  %-8s  %s\n", maxKeyLen, e.Key, e.LevelID, source, e.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tiltmaze play <key>' to play a level.")
}
