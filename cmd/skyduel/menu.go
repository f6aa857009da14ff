package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-duel/internal/platform/tui"
	"github.com/vovakirdan/sky-duel/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start Sky Duel in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Esc in a match returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scores and recent duels
  Q            - Quit

Examples:
  skyduel menu
  skyduel menu --fps 30
  skyduel menu --db ./skyduel.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logFile := newLogger()
	defer logFile.Close()

	store := openStore(logger)
	sound := newSound(logger)
	defer sound.Close()

	scores, source, recorder := tui.StoreViews(store)
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(scores, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(source, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh enemy fire pattern for each match unless pinned by --seed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, cfg, tui.Options{
			Sounds:   sound,
			Recorder: recorder,
			Logger:   logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
