// skyduel is a two-pilot arcade shooter for one terminal.
//
// Usage:
//
//	skyduel list              - List available modes
//	skyduel play [mode]       - Play a mode (default: skyduel)
//	skyduel menu              - Pick a mode interactively
//	skyduel serve             - Start SSH server for remote play
//	skyduel scores [mode]     - Show high scores and recent duels
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible enemy fire
//	--db <path>           - Set database path (default: ~/.arcade/skyduel.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--save <path>         - Save file used by the 1 and 2 keys
//	--log <path>          - Write a debug log to this file
//	--mute                - Disable sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-duel/internal/audio"
	"github.com/vovakirdan/sky-duel/internal/config"
	"github.com/vovakirdan/sky-duel/internal/core"
	"github.com/vovakirdan/sky-duel/internal/games/skyduel"
	"github.com/vovakirdan/sky-duel/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSavePath   string
	flagLogPath    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyduel",
	Short: "Sky Duel - two pilots, one keyboard",
	Long: `Sky Duel is a two-player arcade shooter for the terminal. Both pilots
share one keyboard and try to shoot each other down while a squadron of
enemy planes descends and fires back.

Available commands:
  list     - Show the available modes
  play     - Start a match directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and recent duels

Examples:
  skyduel play
  skyduel play skyduel_duel --difficulty hard
  skyduel menu --mute
  skyduel serve --ssh :2222
  skyduel scores`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return applyGameFlags()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/skyduel.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Save file for the save/load keys (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// applyGameFlags hands the game-level flags to the skyduel package before
// any game is created.
func applyGameFlags() error {
	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			return err
		}
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	skyduel.SetConfigPath(flagConfig)
	skyduel.SetDifficultyPreset(flagDifficulty)
	skyduel.SetSavePath(flagSavePath)
	return nil
}

// newLogger returns a logger writing to the --log file. The terminal belongs
// to the game, so without --log nothing is written. The returned closer
// must be called on exit.
func newLogger() (*log.Logger, io.Closer) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(config.ExpandHome(flagLogPath), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyduel",
		Level:           log.DebugLevel,
	})
	return logger, f
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the results database. A failure is reported and play
// continues without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("no results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newSound starts audio output. Any failure leaves the game silent.
func newSound(logger *log.Logger) *audio.Player {
	cfg, err := config.LoadSkyDuel(flagConfig)
	if err != nil {
		cfg = config.DefaultSkyDuelConfig()
	}
	if flagMute {
		cfg.Sound.Enabled = false
	}
	player := audio.NewPlayer(cfg.Sound, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	logger.Debug("sound", "audible", player.Enabled(), "muted", flagMute)
	return player
}
