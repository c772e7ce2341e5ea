package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/azolotarev/tui-recall/internal/core"
	"github.com/azolotarev/tui-recall/internal/games/recall"
	"github.com/azolotarev/tui-recall/internal/platform/tui"
	"github.com/azolotarev/tui-recall/internal/registry"
	"github.com/azolotarev/tui-recall/internal/savefile"
	"github.com/azolotarev/tui-recall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start recall with a mode picker menu",
	Long: `Start recall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a run ends, you return to the menu to play again. An
interrupted run shows up as "Continue last run".

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  recall menu
  recall menu --fps 60
  recall menu --db ./records.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable developer shortcuts")
}

// gameIDForSavedMode maps a saved mode code to its registry ID.
func gameIDForSavedMode(code string) string {
	switch code {
	case "tri":
		return "tri"
	case "endless":
		return "endless"
	default:
		return "classic"
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		store = nil
	}

	saves := savefile.NewStore(flagSaveDir)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
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

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(saves, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsRecords {
			goBack, recErr := tui.RunRecords(store, cfg.ScreenW, cfg.ScreenH)
			if recErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", recErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID

		if menuResult.Resume {
			run, loadErr := saves.Load()
			if loadErr != nil || run == nil {
				// Slot vanished between menu render and selection
				continue
			}
			recall.SetResume(run)
			gameID = gameIDForSavedMode(run.Mode)
		} else if gameID == "classic" || gameID == "tri" {
			selection, updatedCfg, selErr := tui.RunLevelSelector("Select level", levelEntries(), cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				continue
			}
			cfg = updatedCfg
			if selection == nil {
				continue
			}
			recall.SetStartLevel(selection.Level)
		}

		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
