package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []DuelResult{
		{GameID: "skyduel", Score1: 100, Score2: 50},
		{GameID: "skyduel", Score1: 200, Score2: 0},
		{GameID: "skyduel_duel", Score1: 0, Score2: 500},
	} {
		if _, err := store.SaveDuel(r); err != nil {
			t.Fatalf("SaveDuel() failed: %v", err)
		}
	}

	scores, err := store.TopScores("skyduel", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("Expected 4 scores, got %d", len(scores))
	}
	want := []struct{ seat, score int }{{1, 200}, {1, 100}, {2, 50}, {2, 0}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].Seat != w.seat {
			t.Errorf("scores[%d] = seat %d score %d, expected seat %d score %d",
				i, scores[i].Seat, scores[i].Score, w.seat, w.score)
		}
	}

	limited, err := store.TopScores("skyduel", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 score with limit, got %d", len(limited))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("skyduel")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	if _, err := store.SaveDuel(DuelResult{GameID: "skyduel", Score1: 300, Score2: 700, Winner: 2}); err != nil {
		t.Fatalf("SaveDuel() failed: %v", err)
	}

	high, err = store.HighScore("skyduel")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("Expected 700, got %d", high)
	}
}

func TestStoreSaveDuel(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveDuel(DuelResult{
		GameID:        "skyduel",
		Score1:        400,
		Score2:        100,
		Lives1:        2,
		Lives2:        0,
		Winner:        1,
		DurationTicks: 3600,
	})
	if err != nil {
		t.Fatalf("SaveDuel() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("match id %q is not a uuid: %v", id, err)
	}

	got, err := store.DuelByID(id)
	if err != nil {
		t.Fatalf("DuelByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("DuelByID() returned nil")
	}
	if got.Score1 != 400 || got.Lives2 != 0 || got.Winner != 1 || got.DurationTicks != 3600 {
		t.Errorf("DuelByID() = %+v", got)
	}

	// Both seats' scores land in the scores table too.
	scores, err := store.TopScores("skyduel", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("Expected 2 score rows from one duel, got %d", len(scores))
	}

	missing, err := store.DuelByID("does-not-exist")
	if err != nil || missing != nil {
		t.Errorf("DuelByID(missing) = %v, %v", missing, err)
	}
}

func TestStoreTiedDuelSeatOrder(t *testing.T) {
	store := openTestStore(t)

	for range 5 {
		if _, err := store.SaveDuel(DuelResult{GameID: "skyduel", Score1: 300, Score2: 300}); err != nil {
			t.Fatalf("SaveDuel() failed: %v", err)
		}
	}

	scores, err := store.TopScores("skyduel", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Fatalf("Expected 10 score rows, got %d", len(scores))
	}
	for i, entry := range scores {
		if want := i%2 + 1; entry.Seat != want {
			t.Errorf("scores[%d].Seat = %d, want %d", i, entry.Seat, want)
		}
	}
}

func TestStoreDuplicateMatchID(t *testing.T) {
	store := openTestStore(t)
	r := DuelResult{MatchID: "fixed", GameID: "skyduel", Winner: 2}

	if _, err := store.SaveDuel(r); err != nil {
		t.Fatalf("SaveDuel() failed: %v", err)
	}
	if _, err := store.SaveDuel(r); err == nil {
		t.Fatal("expected duplicate match id to fail")
	}

	// The failed duel must not leave score rows behind.
	scores, _ := store.TopScores("skyduel", 10)
	if len(scores) != 2 {
		t.Errorf("Expected 2 score rows, got %d", len(scores))
	}
}

func TestStoreRecentDuelsAndStats(t *testing.T) {
	store := openTestStore(t)

	for _, w := range []int{1, 2, 2} {
		if _, err := store.SaveDuel(DuelResult{GameID: "skyduel", Winner: w, Score1: 100 * w}); err != nil {
			t.Fatalf("SaveDuel() failed: %v", err)
		}
	}
	store.SaveDuel(DuelResult{GameID: "skyduel_duel", Winner: 1})

	recent, err := store.RecentDuels("skyduel", 2)
	if err != nil {
		t.Fatalf("RecentDuels() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 duels, got %d", len(recent))
	}
	if recent[0].ID < recent[1].ID {
		t.Error("RecentDuels() not newest first")
	}

	stats, err := store.GetGameStats("skyduel")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.P1Wins != 1 || stats.P2Wins != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.HighScore != 200 {
		t.Errorf("HighScore = %d, expected 200", stats.HighScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveDuel(DuelResult{GameID: "skyduel", Winner: 1, Score1: 100})
	store.SaveDuel(DuelResult{GameID: "skyduel_duel", Winner: 1, Score1: 100})

	if err := store.ClearScores("skyduel"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("skyduel", 10)
	duels, _ := store.RecentDuels("skyduel", 10)
	if len(scores) != 0 || len(duels) != 0 {
		t.Errorf("cleared game still has %d scores, %d duels", len(scores), len(duels))
	}

	other, _ := store.RecentDuels("skyduel_duel", 10)
	if len(other) != 1 {
		t.Error("ClearScores() touched another game")
	}
}
