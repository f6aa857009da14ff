package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DuelResult is the outcome of one finished match.
type DuelResult struct {
	ID            int64
	MatchID       string // generated when empty
	GameID        string
	Score1        int
	Score2        int
	Lives1        int
	Lives2        int
	Winner        int // seat number, 0 if unfinished
	DurationTicks int
	CreatedAt     time.Time
}

// SaveDuel records a finished match and both players' scores in one
// transaction. The match ID is returned.
func (s *Store) SaveDuel(r DuelResult) (string, error) {
	if r.MatchID == "" {
		r.MatchID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO duels
		 (match_id, game_id, score1, score2, lives1, lives2, winner, duration_ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.GameID, r.Score1, r.Score2, r.Lives1, r.Lives2, r.Winner, r.DurationTicks,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save duel: %w", err)
	}
	// Seat 1 first, so a tied score lists it ahead of seat 2.
	seats := []struct{ seat, score int }{{1, r.Score1}, {2, r.Score2}}
	for _, e := range seats {
		if _, err := tx.Exec(
			"INSERT INTO scores (game_id, seat, score) VALUES (?, ?, ?)",
			r.GameID, e.seat, e.score,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit duel: %w", err)
	}
	return r.MatchID, nil
}

// DuelByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) DuelByID(matchID string) (*DuelResult, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, game_id, score1, score2, lives1, lives2, winner, duration_ticks, created_at
		 FROM duels
		 WHERE match_id = ?`,
		matchID,
	)
	r, err := scanDuel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duel: %w", err)
	}
	return r, nil
}

// RecentDuels retrieves the most recent matches for a game, newest first.
func (s *Store) RecentDuels(gameID string, limit int) ([]DuelResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, game_id, score1, score2, lives1, lives2, winner, duration_ticks, created_at
		 FROM duels
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duels: %w", err)
	}
	defer rows.Close()

	var results []DuelResult
	for rows.Next() {
		r, err := scanDuel(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDuel(sc scanner) (*DuelResult, error) {
	var r DuelResult
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.MatchID,
		&r.GameID,
		&r.Score1,
		&r.Score2,
		&r.Lives1,
		&r.Lives2,
		&r.Winner,
		&r.DurationTicks,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}
