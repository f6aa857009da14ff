package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-duel/internal/core"
)

// SeatKeys are the bindings for one seat at the shared keyboard.
type SeatKeys struct {
	Forward     key.Binding
	Backward    key.Binding
	Left        key.Binding
	Right       key.Binding
	Fire        key.Binding
	RotateLeft  key.Binding
	RotateRight key.Binding
	Explode     key.Binding
}

// KeyMap holds both seats' bindings and the shared controls.
// It implements help.KeyMap so the bindings document themselves.
type KeyMap struct {
	P1, P2 SeatKeys

	Pause      key.Binding
	Restart    key.Binding
	Save       key.Binding
	Load       key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the two-player layout: the first seat on the
// left of the keyboard, the second on the arrows.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		P1: SeatKeys{
			Forward:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "forward")),
			Backward:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "back")),
			Left:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "left")),
			Right:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "right")),
			Fire:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "P1 fire")),
			RotateLeft:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r/t", "P1 rotate")),
			RotateRight: key.NewBinding(key.WithKeys("t")),
			Explode:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "P1 self-destruct")),
		},
		P2: SeatKeys{
			Forward:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "forward")),
			Backward:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "back")),
			Left:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
			Right:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
			Fire:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "P2 fire")),
			RotateLeft:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n/m", "P2 rotate")),
			RotateRight: key.NewBinding(key.WithKeys("m")),
			Explode:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "P2 self-destruct")),
		},
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Save:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "save")),
		Load:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "load")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.P1.Fire, k.P2.Fire, k.Pause, k.Save, k.Load, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.P1.Forward, k.P1.Left, k.P1.Backward, k.P1.Right, k.P1.Fire, k.P1.RotateLeft, k.P1.Explode},
		{k.P2.Forward, k.P2.Left, k.P2.Backward, k.P2.Right, k.P2.Fire, k.P2.RotateLeft, k.P2.Explode},
		{k.Pause, k.Restart, k.Save, k.Load, k.Screenshot, k.Back, k.Quit},
	}
}

// action looks a key up in one seat's bindings.
func (s SeatKeys) action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, s.Forward):
		return core.ActionForward
	case key.Matches(msg, s.Backward):
		return core.ActionBackward
	case key.Matches(msg, s.Left):
		return core.ActionLeft
	case key.Matches(msg, s.Right):
		return core.ActionRight
	case key.Matches(msg, s.Fire):
		return core.ActionFire
	case key.Matches(msg, s.RotateLeft):
		return core.ActionRotateLeft
	case key.Matches(msg, s.RotateRight):
		return core.ActionRotateRight
	case key.Matches(msg, s.Explode):
		return core.ActionExplode
	}
	return core.ActionNone
}

// MapKey translates a key message to a seat and action. Shared controls
// are attributed to Player1. Restart shares its key with a rotation and
// only wins once the match is over.
func (k KeyMap) MapKey(msg tea.KeyMsg, gameOver bool) (core.PlayerID, core.Action) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Player1, core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.Player1, core.ActionBack
	case gameOver && key.Matches(msg, k.Restart):
		return core.Player1, core.ActionRestart
	case key.Matches(msg, k.Pause):
		return core.Player1, core.ActionPause
	case key.Matches(msg, k.Save):
		return core.Player1, core.ActionSave
	case key.Matches(msg, k.Load):
		return core.Player1, core.ActionLoad
	}

	if a := k.P1.action(msg); a != core.ActionNone {
		return core.Player1, a
	}
	if a := k.P2.action(msg); a != core.ActionNone {
		return core.Player2, a
	}
	return 0, core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
