package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/azolotarev/tui-recall/internal/core"
	"github.com/azolotarev/tui-recall/internal/games/recall"
	"github.com/azolotarev/tui-recall/internal/platform/tui"
	"github.com/azolotarev/tui-recall/internal/registry"
	"github.com/azolotarev/tui-recall/internal/storage"
)

var (
	flagConfig string
	flagLevel  int
	flagDebug  bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD/hjkl - Move cursor
  Space/Enter      - Flip tile
  P                - Pause
  R                - Restart run
  Esc              - Back to menu (while paused or after a win)
  Q/Ctrl+C         - Quit

Modes:
  classic - Match pairs; four difficulties from Easy to Expert
  tri     - Match triples on growing boards
  endless - Survive round after round as the boards grow

Examples:
  recall play classic
  recall play classic --level 3
  recall play tri --level 2
  recall play endless
  recall play classic --config ./my-recall.yaml
  recall play classic --debug`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level 1-4 (0 = ask)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable developer shortcuts")
}

// levelEntries lists the selectable level names in order.
func levelEntries() []string {
	names := make([]string, 0, 4)
	for level := 1; level <= 4; level++ {
		names = append(names, recall.LevelName(level))
	}
	return names
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'recall list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the level selector
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Debug:    flagDebug,
	}

	recall.SetConfigPath(flagConfig)
	recall.SetSaveDir(flagSaveDir)
	recall.SetDebug(flagDebug)

	// Classic and tri pick a starting level; endless always begins
	// at round one.
	if modeID == "classic" || modeID == "tri" {
		level := flagLevel
		if level == 0 {
			selection, updatedCfg, selErr := tui.RunLevelSelector("Select level", levelEntries(), cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			cfg = updatedCfg
			if selection == nil {
				return
			}
			level = selection.Level
		}
		recall.SetStartLevel(level)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
