package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-duel/internal/platform/tui"
	"github.com/vovakirdan/sky-duel/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a match",
	Long: `Start a match in the given mode (default: skyduel).

First pilot:
  W/A/S/D    - Steer
  F          - Fire
  R/T        - Rotate left/right
  Q          - Self-destruct

Second pilot:
  Arrows     - Steer
  L          - Fire
  N/M        - Rotate left/right
  Enter      - Self-destruct

Shared:
  P          - Pause
  1/2        - Save/load both pilots
  R          - Restart (after game over)
  Ctrl+S     - Screenshot
  Esc/Ctrl+C - Quit

Difficulty options:
  easy   - Fewer enemies, slower descent
  normal - The classic squadron
  hard   - More enemies, fewer lives
  fixed  - Descent never speeds up

Examples:
  skyduel play
  skyduel play skyduel_duel
  skyduel play --difficulty hard --seed 42
  skyduel play --config ./my-skyduel.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "skyduel"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skyduel list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := newLogger()
	store := openStore(logger)
	sound := newSound(logger)
	_, _, recorder := tui.StoreViews(store)

	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Sounds:   sound,
		Recorder: recorder,
		Logger:   logger,
	})

	// Close everything before potential exit
	sound.Close()
	if store != nil {
		store.Close()
	}
	logFile.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
