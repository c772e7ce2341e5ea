package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/azolotarev/tui-recall/internal/games/recall"
	"github.com/azolotarev/tui-recall/internal/storage"
)

var recordsCmd = &cobra.Command{
	Use:   "records <mode>",
	Short: "Show records for a mode",
	Long: `Display the top 10 records for the specified mode.

Examples:
  recall records classic
  recall records tri
  recall records endless`,
	Args: cobra.ExactArgs(1),
	Run:  runRecords,
}

func runRecords(cmd *cobra.Command, args []string) {
	mode := args[0]
	if mode != "classic" && mode != "tri" && mode != "endless" {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Modes: classic, tri, endless")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if mode == "endless" {
		printEndlessRecords(store)
		return
	}
	printModeRecords(store, mode)
}

func printModeRecords(store *storage.Store, mode string) {
	records, err := store.TopModeRecords(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Records - %s\n", mode)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No records yet.")
		fmt.Println()
		fmt.Printf("Play 'recall play %s' to set the first record!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-9s  %-4s  %-9s  %-6s  %s\n", "Rank", "Level", "Gr.", "Precision", "Time", "Date")
	fmt.Printf("  %-4s  %-9s  %-4s  %-9s  %-6s  %s\n", "----", "-----", "---", "---------", "----", "----")

	for i, entry := range records {
		fmt.Printf("  %-4d  %-9s  %-4s  %8d%%  %3d:%02d  %s\n",
			i+1,
			recall.LevelName(entry.Level),
			entry.Rank,
			entry.PrecisionPct,
			entry.TimeSecs/60, entry.TimeSecs%60,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

func printEndlessRecords(store *storage.Store) {
	records, err := store.TopEndlessRecords(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Records - endless")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No records yet.")
		fmt.Println()
		fmt.Println("Play 'recall play endless' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-9s  %-9s  %-6s  %s\n", "Rank", "Round", "Segment", "Survival", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-9s  %-9s  %-6s  %s\n", "----", "-----", "-------", "--------", "----", "----")

	for i, entry := range records {
		fmt.Printf("  %-4d  %-6d  %-9s  %-9d  %3d:%02d  %s\n",
			i+1,
			entry.Round,
			recall.LevelName(entry.SegmentLevel),
			entry.SegmentSurvival,
			entry.TimeSecs/60, entry.TimeSecs%60,
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	best, err := store.BestEndlessRound()
	if err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best round: %d\n", best)
	}
}
