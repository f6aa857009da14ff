package tui

import (
	"io"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-duel/internal/core"
	"github.com/vovakirdan/sky-duel/internal/registry"
	"github.com/vovakirdan/sky-duel/internal/storage"
)

// stubGame records what each step received and reports a scripted state.
type stubGame struct {
	resets int
	held   []map[core.PlayerID][]core.Action
	events [][]core.PlayerAction
	state  core.GameState
	sounds []core.Sound
}

func (g *stubGame) ID() string { return "stub" }

func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *stubGame) Step(in core.MultiInputFrame) core.StepResult {
	held := make(map[core.PlayerID][]core.Action)
	for _, id := range []core.PlayerID{core.Player1, core.Player2} {
		for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionForward, core.ActionBackward} {
			if in.Player(id).Has(a) {
				held[id] = append(held[id], a)
			}
		}
	}
	g.held = append(g.held, held)
	g.events = append(g.events, slices.Clone(in.Events))
	return core.StepResult{State: g.state, Sounds: g.sounds}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState { return g.state }

type fakeRecorder struct {
	results []storage.DuelResult
}

func (r *fakeRecorder) SaveDuel(d storage.DuelResult) (string, error) {
	r.results = append(r.results, d)
	return "match-1", nil
}

type fakeSink struct {
	played []core.Sound
}

func (s *fakeSink) PlayAll(sounds []core.Sound) {
	s.played = append(s.played, sounds...)
}

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func newTestModel(game *stubGame, opts Options) GameModel {
	m := NewGameModel(game, testConfig(), opts)
	m.Init()
	return m
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestGameModelInitResets(t *testing.T) {
	game := &stubGame{}
	newTestModel(game, Options{})
	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
}

func TestGameModelHoldsSteering(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, runeKey("w"))
	// 90ms at 60 ticks per second
	const holdTicks = 5
	for range holdTicks + 2 {
		m, _ = send(t, m, TickMsg{})
	}

	for i, held := range game.held {
		want := i < holdTicks
		got := slices.Contains(held[core.Player1], core.ActionForward)
		if got != want {
			t.Errorf("tick %d: forward held = %v, want %v", i, got, want)
		}
		if len(held[core.Player2]) != 0 {
			t.Errorf("tick %d: P2 held %v", i, held[core.Player2])
		}
	}
}

func TestGameModelRepeatExtendsHold(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 4 {
		m, _ = send(t, m, TickMsg{})
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 5 {
		m, _ = send(t, m, TickMsg{})
	}

	for i, held := range game.held {
		if !slices.Contains(held[core.Player2], core.ActionLeft) {
			t.Errorf("tick %d: P2 left not held", i)
		}
	}
}

func TestGameModelEventsInOrder(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, runeKey("l"))
	m, _ = send(t, m, runeKey("f"))
	m, _ = send(t, m, runeKey("r"))
	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, TickMsg{})

	want := []core.PlayerAction{
		{Player: core.Player2, Action: core.ActionFire},
		{Player: core.Player1, Action: core.ActionFire},
		{Player: core.Player1, Action: core.ActionRotateLeft},
	}
	if !slices.Equal(game.events[0], want) {
		t.Errorf("first tick events = %v, want %v", game.events[0], want)
	}
	if len(game.events[1]) != 0 {
		t.Errorf("second tick events = %v, want none", game.events[1])
	}
}

func TestGameModelForwardsSounds(t *testing.T) {
	game := &stubGame{sounds: []core.Sound{core.SoundShot, core.SoundExplosion}}
	sink := &fakeSink{}
	m := newTestModel(game, Options{Sounds: sink})

	m, _ = send(t, m, TickMsg{})
	send(t, m, TickMsg{})

	want := []core.Sound{core.SoundShot, core.SoundExplosion, core.SoundShot, core.SoundExplosion}
	if !slices.Equal(sink.played, want) {
		t.Errorf("played = %v, want %v", sink.played, want)
	}
}

func TestGameModelRecordsOncePerGameOver(t *testing.T) {
	game := &stubGame{}
	rec := &fakeRecorder{}
	m := newTestModel(game, Options{Recorder: rec, Logger: log.New(io.Discard)})

	m, _ = send(t, m, TickMsg{})
	game.state = core.GameState{
		GameOver: true,
		Winner:   core.Player2,
		P1:       core.PlayerState{Lives: 0, Score: 300},
		P2:       core.PlayerState{Lives: 2, Score: 500},
		Ticks:    1800,
	}
	for range 3 {
		m, _ = send(t, m, TickMsg{})
	}

	if len(rec.results) != 1 {
		t.Fatalf("recorded %d results, want 1", len(rec.results))
	}
	want := storage.DuelResult{
		GameID:        "stub",
		Score1:        300,
		Score2:        500,
		Lives1:        0,
		Lives2:        2,
		Winner:        2,
		DurationTicks: 1800,
	}
	if rec.results[0] != want {
		t.Errorf("recorded %+v, want %+v", rec.results[0], want)
	}

	// A restarted match that ends again is recorded again.
	game.state = core.GameState{}
	m, _ = send(t, m, TickMsg{})
	game.state.GameOver = true
	send(t, m, TickMsg{})
	if len(rec.results) != 2 {
		t.Errorf("recorded %d results after second game over, want 2", len(rec.results))
	}
}

func TestGameModelRestartOnlyAtGameOver(t *testing.T) {
	game := &stubGame{state: core.GameState{GameOver: true}}
	m := newTestModel(game, Options{})

	m, _ = send(t, m, TickMsg{})
	m, _ = send(t, m, runeKey("r"))
	send(t, m, TickMsg{})

	want := []core.PlayerAction{{Player: core.Player1, Action: core.ActionRestart}}
	if !slices.Equal(game.events[1], want) {
		t.Errorf("events = %v, want %v", game.events[1], want)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m := newTestModel(&stubGame{}, Options{})

	back, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Errorf("esc: back=%v quitting=%v", back.BackToMenu(), back.IsQuitting())
	}
	if cmd == nil {
		t.Error("esc should end the program")
	}

	quit, _ := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !quit.IsQuitting() || quit.BackToMenu() {
		t.Errorf("ctrl+c: back=%v quitting=%v", quit.BackToMenu(), quit.IsQuitting())
	}
}

func TestGameModelResizeKeepsMatch(t *testing.T) {
	game := &stubGame{}
	m := newTestModel(game, Options{})

	send(t, m, tea.WindowSizeMsg{Width: 200, Height: 60})
	if game.resets != 1 {
		t.Errorf("resets = %d after resize, want 1", game.resets)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	var m tea.Model = NewSessionModel(nil, testConfig(), log.New(io.Discard))

	step := func(msg tea.Msg) SessionModel {
		t.Helper()
		m, _ = m.Update(msg)
		sm, ok := m.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", m)
		}
		return sm
	}

	sm := step(tea.KeyMsg{Type: tea.KeyEnter})
	if sm.screen != screenGame {
		t.Fatalf("screen = %v after select, want game", sm.screen)
	}

	sm = step(tea.KeyMsg{Type: tea.KeyEsc})
	if sm.screen != screenMenu || sm.quitting {
		t.Fatalf("screen = %v quitting=%v after esc, want menu", sm.screen, sm.quitting)
	}

	sm = step(tea.KeyMsg{Type: tea.KeyTab})
	if sm.screen != screenScores {
		t.Fatalf("screen = %v after tab, want scores", sm.screen)
	}

	sm = step(tea.KeyMsg{Type: tea.KeyEsc})
	if sm.screen != screenMenu {
		t.Fatalf("screen = %v after leaving scores, want menu", sm.screen)
	}

	sm = step(runeKey("q"))
	if !sm.quitting {
		t.Error("q in the menu should end the session")
	}
}
