package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-duel/internal/registry"
	"github.com/vovakirdan/sky-duel/internal/storage"
)

var (
	flagScoresLimit int
	flagClear       bool
	flagDuel        string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent duels",
	Long: `Display the best scores, the recent duels and the win tally for a mode
(default: skyduel).

Examples:
  skyduel scores
  skyduel scores skyduel_duel --limit 20
  skyduel scores --clear
  skyduel scores --duel 6f1c2a4e-0b7d-4c1e-9a55-3e2f8d7b9c10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores and duels to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded scores and duels of the mode")
	scoresCmd.Flags().StringVar(&flagDuel, "duel", "", "Show a single duel by its match ID")
}

func runScores(_ *cobra.Command, args []string) {
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
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			return
		}
		fmt.Printf("All scores and duels for %s deleted.\n", title)
		return
	}

	if flagDuel != "" {
		d, err := store.DuelByID(flagDuel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving duel: %v\n", err)
			os.Exit(1)
		}
		if d == nil || d.GameID != gameID {
			fmt.Fprintf(os.Stderr, "Error: no %s duel with match ID %q\n", title, flagDuel)
			os.Exit(1)
		}
		printDuel(d)
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'skyduel play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-4s  %-10s  %s\n", "Rank", "Seat", "Score", "Date")
	fmt.Printf("  %-4s  %-4s  %-10s  %s\n", "----", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  P%-3d  %-10d  %s\n", i+1, entry.Seat, entry.Score, dateStr)
	}

	duels, err := store.RecentDuels(gameID, flagScoresLimit)
	if err == nil && len(duels) > 0 {
		fmt.Println()
		fmt.Println("Recent Duels")
		fmt.Println()
		fmt.Printf("  %-6s  %-13s  %-7s  %-16s  %s\n", "Winner", "Score", "Lives", "Date", "Match")
		fmt.Printf("  %-6s  %-13s  %-7s  %-16s  %s\n", "------", "-----", "-----", "----", "-----")
		for _, d := range duels {
			fmt.Printf("  %-6s  %-13s  %-7s  %-16s  %s\n",
				winnerLabel(d.Winner),
				fmt.Sprintf("%d - %d", d.Score1, d.Score2),
				fmt.Sprintf("%d/%d", d.Lives1, d.Lives2),
				d.CreatedAt.Format("2006-01-02 15:04"),
				d.MatchID,
			)
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Best: %d   Matches: %d   P1 wins: %d   P2 wins: %d\n",
			stats.HighScore, stats.GamesCount, stats.P1Wins, stats.P2Wins)
	}
}

func winnerLabel(seat int) string {
	if seat == 0 {
		return "-"
	}
	return fmt.Sprintf("P%d", seat)
}

// printDuel writes the full record of one match.
func printDuel(d *storage.DuelResult) {
	fmt.Printf("Duel %s\n", d.MatchID)
	fmt.Println()
	fmt.Printf("  Winner:   %s\n", winnerLabel(d.Winner))
	fmt.Printf("  Score:    %d - %d\n", d.Score1, d.Score2)
	fmt.Printf("  Lives:    %d/%d\n", d.Lives1, d.Lives2)
	fmt.Printf("  Duration: %d ticks\n", d.DurationTicks)
	fmt.Printf("  Date:     %s\n", d.CreatedAt.Format("2006-01-02 15:04"))
}
