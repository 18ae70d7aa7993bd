package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hugrun/internal/core"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Restart, k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows, WASD and vim keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
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

// HoldTracker turns a terminal's key presses and auto-repeats into
// KeyDown/KeyUp pairs. Terminals report no key releases, so a key counts as
// released once no repeat has arrived for the hold window.
//
// Terminals pause before the first auto-repeat, so a fresh press gets the
// longer firstRepeat window. A tap therefore moves for firstRepeat, not for
// the terminal's full repeat delay.
type HoldTracker struct {
	hold        time.Duration
	firstRepeat time.Duration
	pressed     map[core.Action]time.Time // Last press or repeat
	first       map[core.Action]bool      // No repeat seen yet
}

// NewHoldTracker creates a tracker with the given hold and first repeat
// windows. A firstRepeat shorter than hold is raised to hold.
func NewHoldTracker(hold, firstRepeat time.Duration) *HoldTracker {
	return &HoldTracker{
		hold:        hold,
		firstRepeat: max(hold, firstRepeat),
		pressed:     make(map[core.Action]time.Time),
		first:       make(map[core.Action]bool),
	}
}

// Press records a press or repeat of a direction at now. It returns a
// KeyDown event only when the key was not already held.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.Event {
	_, held := h.pressed[a]
	h.pressed[a] = now
	if held {
		h.first[a] = false
		return nil
	}
	h.first[a] = true
	return []core.Event{core.KeyDown(a)}
}

// Expire returns KeyUp events for every key whose hold window has passed.
func (h *HoldTracker) Expire(now time.Time) []core.Event {
	var events []core.Event
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		last, held := h.pressed[a]
		if !held {
			continue
		}
		window := h.hold
		if h.first[a] {
			window = h.firstRepeat
		}
		if now.Sub(last) >= window {
			delete(h.pressed, a)
			delete(h.first, a)
			events = append(events, core.KeyUp(a))
		}
	}
	return events
}

// ReleaseAll returns KeyUp events for every held key and forgets them.
func (h *HoldTracker) ReleaseAll() []core.Event {
	var events []core.Event
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		if _, held := h.pressed[a]; held {
			events = append(events, core.KeyUp(a))
		}
	}
	clear(h.pressed)
	clear(h.first)
	return events
}

// Held reports whether a direction is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, held := h.pressed[a]
	return held
}
