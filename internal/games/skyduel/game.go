package skyduel

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/vovakirdan/sky-duel/internal/assets"
	"github.com/vovakirdan/sky-duel/internal/config"
	"github.com/vovakirdan/sky-duel/internal/core"
	"github.com/vovakirdan/sky-duel/internal/registry"
)

// Game state constants
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateBroken   = "broken" // assets or config could not be loaded
)

// Mode selects whether the enemy grid is present.
type Mode int

const (
	ModeArena Mode = iota // two players plus descending enemies
	ModeDuel              // two players only
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// savePath overrides gameplay.save_file when set via CLI
var savePath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetSavePath sets the file used by the save and load keys.
func SetSavePath(path string) {
	savePath = path
}

// noticeDuration is how long a status line stays on screen.
const noticeDuration = 2 * time.Second

// Game adapts an Arena to the registry's Game interface. It collects
// sounds raised during a step and drives the explosion timer from ticks.
type Game struct {
	mode Mode

	runtime core.RuntimeConfig
	cfg     config.SkyDuelConfig
	atlas   *assets.Atlas
	arena   *Arena

	state   string
	winner  core.PlayerID
	loadErr error

	notice      string
	noticeTicks int

	pending []core.Sound
	timer   tickTimer
}

// New creates a new game with the enemy grid.
func New() *Game {
	return &Game{mode: ModeArena}
}

// NewDuel creates a new game with the two players only.
func NewDuel() *Game {
	return &Game{mode: ModeDuel}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeDuel {
		return "skyduel_duel"
	}
	return "skyduel"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeDuel {
		return "Sky Duel (Head to Head)"
	}
	return "Sky Duel"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.state = StatePlaying
	g.winner = 0
	g.loadErr = nil
	g.notice = ""
	g.noticeTicks = 0
	g.pending = g.pending[:0]
	g.timer = tickTimer{tickRate: runtime.TickRate}

	cfg, err := config.LoadSkyDuel(configPath)
	if err != nil {
		cfg = config.DefaultSkyDuelConfig()
		g.flash(fmt.Sprintf("config: %v", err))
	}
	if difficultyPreset != "" {
		config.ApplySkyDuelPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeDuel {
		cfg.Enemy.Count = 0
	}
	g.cfg = cfg

	atlas, err := assets.Default()
	if err != nil {
		g.loadErr = err
		g.state = StateBroken
		return
	}
	g.atlas = atlas

	g.arena = NewArena(NewRules(cfg, atlas), Options{
		Seed:   runtime.Seed,
		Sounds: g,
		Timer:  &g.timer,
	})
}

// Arena exposes the running simulation.
func (g *Game) Arena() *Arena {
	return g.arena
}

// PlaySound queues a clip for the platform; see StepResult.Sounds.
func (g *Game) PlaySound(s core.Sound) {
	g.pending = append(g.pending, s)
}

// SavePath returns the file used by the save and load keys.
func (g *Game) SavePath() string {
	if savePath != "" {
		return config.ExpandHome(savePath)
	}
	return config.ExpandHome(g.cfg.Gameplay.SaveFile)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.state == StateBroken {
		return core.StepResult{State: g.State()}
	}

	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state == StatePlaying {
		if in.Has(core.ActionSave) {
			g.save()
		}
		if in.Has(core.ActionLoad) {
			g.load()
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.arena.Tick(1/float64(g.runtime.TickRate), g.frameInput(in))
	if g.timer.fire() && !g.arena.AdvanceExplosions() {
		g.timer.stop()
	}

	if winner, over := g.arena.Winner(); over {
		g.state = StateGameOver
		g.winner = winner
	}

	return core.StepResult{State: g.State(), Sounds: g.drainSounds()}
}

func (g *Game) frameInput(in core.MultiInputFrame) FrameInput {
	fi := FrameInput{
		P1: MaskFromInput(in.Player(core.Player1)),
		P2: MaskFromInput(in.Player(core.Player2)),
	}
	for _, ev := range in.Events {
		var kind EventKind
		switch ev.Action {
		case core.ActionFire:
			kind = EventFire
		case core.ActionRotateLeft:
			kind = EventRotateLeft
		case core.ActionRotateRight:
			kind = EventRotateRight
		case core.ActionExplode:
			kind = EventExplode
		default:
			continue
		}
		fi.Events = append(fi.Events, Event{Player: ev.Player, Kind: kind})
	}
	return fi
}

func (g *Game) save() {
	if err := SaveFile(g.SavePath(), g.arena.Snapshot()); err != nil {
		g.flash(fmt.Sprintf("Save failed: %v", err))
		return
	}
	g.flash("Game saved")
}

func (g *Game) load() {
	s, err := LoadFile(g.SavePath())
	switch {
	case errors.Is(err, os.ErrNotExist):
		g.flash("No saved game")
	case err != nil:
		g.flash(fmt.Sprintf("Load failed: %v", err))
	default:
		g.arena.Restore(s)
		g.flash("Game loaded")
	}
}

func (g *Game) flash(msg string) {
	g.notice = msg
	g.noticeTicks = int(noticeDuration.Seconds() * float64(max(g.runtime.TickRate, 1)))
}

func (g *Game) drainSounds() []core.Sound {
	if len(g.pending) == 0 {
		return nil
	}
	out := make([]core.Sound, len(g.pending))
	copy(out, g.pending)
	g.pending = g.pending[:0]
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
		Winner:   g.winner,
		Notice:   g.notice,
	}
	if g.loadErr != nil {
		st.Notice = g.loadErr.Error()
	}
	if g.arena != nil {
		p1, p2 := g.arena.Player(core.Player1), g.arena.Player(core.Player2)
		st.P1 = core.PlayerState{Lives: p1.Lives(), Score: p1.Score()}
		st.P2 = core.PlayerState{Lives: p2.Lives(), Score: p2.Score()}
		st.Ticks = g.arena.Ticks()
	}
	return st
}

// tickTimer is the explosion timer, counted in simulation ticks.
type tickTimer struct {
	tickRate int
	every    int
	left     int
	armed    bool
}

// Schedule (re)arms the timer to fire every interval.
func (t *tickTimer) Schedule(interval time.Duration) {
	t.every = max(1, int(math.Round(interval.Seconds()*float64(t.tickRate))))
	t.left = t.every
	t.armed = true
}

// fire counts one tick down and reports whether the timer went off.
func (t *tickTimer) fire() bool {
	if !t.armed {
		return false
	}
	t.left--
	if t.left > 0 {
		return false
	}
	t.left = t.every
	return true
}

func (t *tickTimer) stop() {
	t.armed = false
}

// Register the games with the registry
func init() {
	registry.Register("skyduel", func() registry.Game {
		return New()
	})
	registry.Register("skyduel_duel", func() registry.Game {
		return NewDuel()
	})
}
