package skyduel

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/sky-duel/internal/core"
)

// ErrMalformedSave is returned when a save file does not hold exactly two
// well-formed "x y lives score" lines.
var ErrMalformedSave = errors.New("skyduel: malformed save")

// PlayerRecord is what a save file keeps about one player.
type PlayerRecord struct {
	X, Y  float64
	Lives int
	Score int
}

// SaveGame is the persisted match state. Enemies and bullets are not saved.
type SaveGame struct {
	P1, P2 PlayerRecord
}

// Snapshot captures both players for saving.
func (a *Arena) Snapshot() SaveGame {
	rec := func(c *Combatant) PlayerRecord {
		return PlayerRecord{X: c.pos.X, Y: c.pos.Y, Lives: c.lives, Score: c.score}
	}
	return SaveGame{P1: rec(a.p1), P2: rec(a.p2)}
}

// Restore puts both players back to a saved position, lives and score.
func (a *Arena) Restore(s SaveGame) {
	for _, r := range []struct {
		c   *Combatant
		rec PlayerRecord
	}{{a.p1, s.P1}, {a.p2, s.P2}} {
		r.c.pos = core.V(r.rec.X, r.rec.Y)
		r.c.lives = r.rec.Lives
		r.c.score = r.rec.Score
	}
}

// WriteSave writes the two-line text format, Player1 first.
func WriteSave(w io.Writer, s SaveGame) error {
	for _, r := range []PlayerRecord{s.P1, s.P2} {
		_, err := fmt.Fprintf(w, "%s %s %d %d\n",
			strconv.FormatFloat(r.X, 'g', -1, 64),
			strconv.FormatFloat(r.Y, 'g', -1, 64),
			r.Lives, r.Score)
		if err != nil {
			return fmt.Errorf("skyduel: write save: %w", err)
		}
	}
	return nil
}

// ReadSave parses a save. It is all-or-nothing: any deviation from two
// lines of four fields yields ErrMalformedSave and a zero SaveGame.
func ReadSave(r io.Reader) (SaveGame, error) {
	var recs []PlayerRecord
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if len(recs) == 2 {
			return SaveGame{}, fmt.Errorf("%w: unexpected data on line %d", ErrMalformedSave, line)
		}
		rec, err := parseRecord(text)
		if err != nil {
			return SaveGame{}, fmt.Errorf("%w: line %d: %v", ErrMalformedSave, line, err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return SaveGame{}, fmt.Errorf("skyduel: read save: %w", err)
	}
	if len(recs) != 2 {
		return SaveGame{}, fmt.Errorf("%w: want 2 players, got %d", ErrMalformedSave, len(recs))
	}
	return SaveGame{P1: recs[0], P2: recs[1]}, nil
}

func parseRecord(text string) (PlayerRecord, error) {
	f := strings.Fields(text)
	if len(f) != 4 {
		return PlayerRecord{}, fmt.Errorf("want 4 fields, got %d", len(f))
	}
	x, err := parseCoord(f[0])
	if err != nil {
		return PlayerRecord{}, err
	}
	y, err := parseCoord(f[1])
	if err != nil {
		return PlayerRecord{}, err
	}
	lives, err := strconv.Atoi(f[2])
	if err != nil {
		return PlayerRecord{}, fmt.Errorf("lives: %w", err)
	}
	score, err := strconv.Atoi(f[3])
	if err != nil {
		return PlayerRecord{}, fmt.Errorf("score: %w", err)
	}
	return PlayerRecord{X: x, Y: y, Lives: lives, Score: score}, nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("coordinate: %w", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coordinate %q is not finite", s)
	}
	return v, nil
}

// SaveFile writes the save to path, creating parent directories.
// The file is replaced atomically so a crash never leaves half a save.
func SaveFile(path string, s SaveGame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("skyduel: create save dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".skyduel-*.sav")
	if err != nil {
		return fmt.Errorf("skyduel: create save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteSave(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("skyduel: close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("skyduel: replace save: %w", err)
	}
	return nil
}

// LoadFile reads a save from path.
func LoadFile(path string) (SaveGame, error) {
	f, err := os.Open(path)
	if err != nil {
		return SaveGame{}, fmt.Errorf("skyduel: open save: %w", err)
	}
	defer f.Close()
	return ReadSave(f)
}
