package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-defense/internal/core"
)

// KeyMap defines the key bindings and their help text.
// It implements help.KeyMap for the footer.
type KeyMap struct {
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Pseudo-binding so the mouse controls show up in the help footer;
		// actual mouse handling goes through MapMouse.
		Fire: key.NewBinding(
			key.WithKeys("mouse"),
			key.WithHelp("L/M/R click", "fire left/center/right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r/space", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the help footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns all bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fire, k.Pause},
		{k.Restart, k.Quit},
	}
}

// Apply translates a key message into input frame actions.
// Returns true for a quit request. Restart only registers from game over.
func (k KeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame, gameOver bool) bool {
	switch {
	case key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	case key.Matches(msg, k.Restart):
		if gameOver {
			frame.Set(core.ActionRestart)
		}
	}
	return false
}

// MapMouse translates a mouse message into the input frame: motion updates
// the pointer, presses add fire events tagged with the button.
func MapMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.SetPointer(msg.X, msg.Y)

	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		frame.AddFire(core.ButtonLeft, msg.X, msg.Y)
	case tea.MouseButtonMiddle:
		frame.AddFire(core.ButtonMiddle, msg.X, msg.Y)
	case tea.MouseButtonRight:
		frame.AddFire(core.ButtonRight, msg.X, msg.Y)
	}
}
