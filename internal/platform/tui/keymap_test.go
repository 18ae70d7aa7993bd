package tui

import (
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hugrun/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionDown},
		{"d", runeKey('d'), core.ActionRight},
		{"vim l", runeKey('l'), core.ActionRight},
		{"r", runeKey('r'), core.ActionRestart},
		{"R", runeKey('R'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('j'), MenuActionDown},
		{runeKey('k'), MenuActionUp},
		{runeKey('q'), MenuActionQuit},
	}

	for _, tc := range tests {
		if got := MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestHoldTrackerPressAndRepeat(t *testing.T) {
	h := NewHoldTracker(150*time.Millisecond, 300*time.Millisecond)
	t0 := time.Unix(0, 0)

	if got := h.Press(core.ActionRight, t0); !reflect.DeepEqual(got, []core.Event{core.KeyDown(core.ActionRight)}) {
		t.Fatalf("first press = %v, expected KeyDown", got)
	}
	if got := h.Press(core.ActionRight, t0.Add(50*time.Millisecond)); got != nil {
		t.Errorf("repeat should not emit events, got %v", got)
	}
	if !h.Held(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestHoldTrackerExpire(t *testing.T) {
	t0 := time.Unix(0, 0)

	t.Run("waits for the first repeat", func(t *testing.T) {
		h := NewHoldTracker(150*time.Millisecond, 300*time.Millisecond)
		h.Press(core.ActionUp, t0)

		if got := h.Expire(t0.Add(200 * time.Millisecond)); len(got) != 0 {
			t.Errorf("released inside the first repeat window: %v", got)
		}
		got := h.Expire(t0.Add(300 * time.Millisecond))
		if !reflect.DeepEqual(got, []core.Event{core.KeyUp(core.ActionUp)}) {
			t.Errorf("Expire() = %v, expected KeyUp", got)
		}
	})

	t.Run("short window once repeating", func(t *testing.T) {
		h := NewHoldTracker(150*time.Millisecond, 300*time.Millisecond)
		h.Press(core.ActionUp, t0)
		h.Press(core.ActionUp, t0.Add(250*time.Millisecond))

		if got := h.Expire(t0.Add(350 * time.Millisecond)); len(got) != 0 {
			t.Errorf("released inside the hold window: %v", got)
		}
		if got := h.Expire(t0.Add(400 * time.Millisecond)); len(got) != 1 {
			t.Errorf("Expire() = %v, expected one KeyUp", got)
		}
		if h.Held(core.ActionUp) {
			t.Error("up should be released")
		}
	})

	t.Run("press after release is a new KeyDown", func(t *testing.T) {
		h := NewHoldTracker(150*time.Millisecond, 300*time.Millisecond)
		h.Press(core.ActionLeft, t0)
		h.Expire(t0.Add(time.Second))
		if got := h.Press(core.ActionLeft, t0.Add(2*time.Second)); len(got) != 1 {
			t.Errorf("Press() = %v, expected KeyDown", got)
		}
	})
}

func TestHoldTrackerTapDuration(t *testing.T) {
	t0 := time.Unix(0, 0)
	tests := []struct {
		name        string
		hold        time.Duration
		firstRepeat time.Duration
		released    time.Duration
	}{
		{"default windows", DefaultKeyHold, DefaultFirstRepeat, 300 * time.Millisecond},
		{"first repeat below hold", 150 * time.Millisecond, 50 * time.Millisecond, 150 * time.Millisecond},
		{"long terminal delay", 150 * time.Millisecond, 500 * time.Millisecond, 500 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHoldTracker(tc.hold, tc.firstRepeat)
			h.Press(core.ActionRight, t0)

			if got := h.Expire(t0.Add(tc.released - time.Millisecond)); len(got) != 0 {
				t.Errorf("tap released early: %v", got)
			}
			if got := h.Expire(t0.Add(tc.released)); len(got) != 1 {
				t.Errorf("tap should release at %v, got %v", tc.released, got)
			}
		})
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := NewHoldTracker(150*time.Millisecond, 300*time.Millisecond)
	t0 := time.Unix(0, 0)
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionRight, t0)

	got := h.ReleaseAll()
	want := []core.Event{core.KeyUp(core.ActionUp), core.KeyUp(core.ActionRight)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReleaseAll() = %v, expected %v", got, want)
	}
	if h.Held(core.ActionUp) || h.Held(core.ActionRight) {
		t.Error("keys should be released")
	}
	if got := h.ReleaseAll(); len(got) != 0 {
		t.Errorf("second ReleaseAll() = %v, expected nothing", got)
	}
}
