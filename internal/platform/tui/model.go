package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-duel/internal/core"
	"github.com/vovakirdan/sky-duel/internal/registry"
	"github.com/vovakirdan/sky-duel/internal/storage"
)

// holdWindow is how long a steering key counts as held after the terminal
// last reported it. Terminals send repeats, never releases.
const holdWindow = 90 * time.Millisecond

// SoundSink plays the sounds a step reports. *audio.Player satisfies it.
type SoundSink interface {
	PlayAll(sounds []core.Sound)
}

// ResultRecorder stores a finished match. *storage.Store satisfies it.
type ResultRecorder interface {
	SaveDuel(r storage.DuelResult) (string, error)
}

// Options are the collaborators of a game model. Every field may be nil.
type Options struct {
	Sounds   SoundSink
	Recorder ResultRecorder
	Logger   *log.Logger
}

type heldKey struct {
	seat   core.PlayerID
	action core.Action
}

// GameModel is the Bubble Tea model running one game for two players at
// one keyboard. It is used both locally and per SSH session.
type GameModel struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	opts   Options
	keys   KeyMap
	help   help.Model

	inputFrame core.MultiInputFrame
	held       map[heldKey]int
	holdTicks  int
	gameState  core.GameState

	quitting   bool
	backToMenu bool
	recorded   bool // whether the current game over was stored
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewMultiInputFrame(),
		held:       make(map[heldKey]int),
		holdTicks:  max(1, int(holdWindow.Seconds()*float64(cfg.TickRate)+0.5)),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("match started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The arena has fixed logical bounds, so a resize only changes
		// how it is scaled onto the screen.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	seat, action := m.keys.MapKey(msg, m.gameState.GameOver)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		return m, tea.Quit
	}

	if action.IsSteering() {
		m.held[heldKey{seat, action}] = m.holdTicks
		return m, nil
	}
	m.inputFrame.Press(seat, action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	for k, left := range m.held {
		m.inputFrame.Press(k.seat, k.action)
		if left <= 1 {
			delete(m.held, k)
		} else {
			m.held[k] = left - 1
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.opts.Sounds != nil && len(result.Sounds) > 0 {
		m.opts.Sounds.PlayAll(result.Sounds)
	}

	switch {
	case m.gameState.GameOver && !m.recorded:
		m.record()
		m.recorded = true
	case !m.gameState.GameOver:
		m.recorded = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// record stores the finished match. Failures are logged, never fatal.
func (m *GameModel) record() {
	st := m.gameState
	m.opts.Logger.Info("match over",
		"game", m.game.ID(),
		"winner", st.Winner,
		"p1", st.P1.Score,
		"p2", st.P2.Score,
		"ticks", st.Ticks,
	)
	if m.opts.Recorder == nil {
		return
	}
	id, err := m.opts.Recorder.SaveDuel(storage.DuelResult{
		GameID:        m.game.ID(),
		Score1:        st.P1.Score,
		Score2:        st.P2.Score,
		Lives1:        st.P1.Lives,
		Lives2:        st.P2.Lives,
		Winner:        int(st.Winner),
		DurationTicks: st.Ticks,
	})
	if err != nil {
		m.opts.Logger.Error("could not record match", "error", err)
		return
	}
	m.opts.Logger.Debug("match recorded", "match", id)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the players quit or go
// back. It reports whether they asked for the menu.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.BackToMenu(), nil
	}
	return false, nil
}
