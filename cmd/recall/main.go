// recall is a terminal memory game: flip tiles, match groups, and
// chase clean runs across classic, tri, and endless modes.
//
// Usage:
//
//	recall list              - List available modes
//	recall play <mode>       - Play a mode directly
//	recall menu              - Interactive mode picker
//	recall serve             - Start SSH server for remote play
//	recall records <mode>    - Show records for a mode
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--db <path>        - Records database path (default: ~/.recall/records.db)
//	--save-dir <path>  - Save slot directory (default: ~/.recall)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register the modes
	_ "github.com/azolotarev/tui-recall/internal/games/recall"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagSaveDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recall",
	Short: "Recall - a terminal memory game",
	Long: `Recall is a terminal card-matching game. A board of face-down
tiles is shown briefly, then hidden; flip tiles to find the matching
groups. Higher difficulties punish sloppy picks by reshuffling the
board under you.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  records  - View round records

Examples:
  recall list
  recall play classic
  recall play tri --level 2
  recall menu
  recall serve --ssh :2222
  recall records classic`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.recall/records.db", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagSaveDir, "save-dir", "", "Save slot directory (default ~/.recall)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
}
