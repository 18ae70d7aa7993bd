package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hugrun/internal/core"
	"github.com/vovakirdan/hugrun/internal/storage"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	events []core.Event
	resets int
	steps  int
	state  core.GameState
	next   []core.StepResult // Results returned by Step, in order
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Push(ev core.Event) { g.events = append(g.events, ev) }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Scene() core.Scene { return core.Scene{CanvasW: 400, CanvasH: 400} }
func (g *fakeGame) Step() core.StepResult {
	g.steps++
	if len(g.next) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.next[0]
	g.next = g.next[1:]
	g.state = r.State
	return r
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store, opts ModelOptions) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 44, TickRate: 60, Seed: 1}
	return NewModel(g, store, cfg, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, ModelOptions{})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if m.opts.Player != "anonymous" {
		t.Errorf("player = %q, expected anonymous", m.opts.Player)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestModelKeyPressQueuesKeyDownOnce(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, ModelOptions{})

	right := tea.KeyMsg{Type: tea.KeyRight}
	m, _ = update(t, m, right)
	m, _ = update(t, m, right)
	_, _ = update(t, m, right)

	if len(g.events) != 1 || g.events[0] != core.KeyDown(core.ActionRight) {
		t.Errorf("events = %v, expected a single KeyDown(Right)", g.events)
	}
	if g.steps != 0 {
		t.Errorf("keys must not step the game, steps = %d", g.steps)
	}
}

func TestModelTickReleasesExpiredKeys(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, ModelOptions{KeyHold: 10 * time.Millisecond})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, cmd := update(t, m, TickMsg{ID: m.tickID, Time: time.Now().Add(time.Second)})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
	want := []core.Event{core.KeyDown(core.ActionUp), core.KeyUp(core.ActionUp)}
	if len(g.events) != 2 || g.events[0] != want[0] || g.events[1] != want[1] {
		t.Errorf("events = %v, expected %v", g.events, want)
	}
	if m.holds.Held(core.ActionUp) {
		t.Error("up should be released")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, ModelOptions{})

	_, cmd := update(t, m, TickMsg{ID: m.tickID - 1, Time: time.Now()})
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
	if g.steps != 0 {
		t.Errorf("stale tick stepped the game %d times", g.steps)
	}
}

func TestModelRestartAndQuit(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, ModelOptions{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if len(g.events) != 1 || g.events[0] != core.Restart() {
		t.Errorf("events = %v, expected Restart", g.events)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelMouseDrag(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, ModelOptions{})
	vp := m.viewport

	// Outside the play field nothing starts.
	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: vp.Col + 1, Y: vp.Row + 1, Action: tea.MouseActionMotion})
	if len(g.events) != 0 {
		t.Fatalf("events = %v, expected none", g.events)
	}

	m, _ = update(t, m, tea.MouseMsg{X: vp.Col + 2, Y: vp.Row + 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: vp.Col + 4, Y: vp.Row + 3, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: vp.Col + 4, Y: vp.Row + 3, Action: tea.MouseActionRelease})
	_, _ = update(t, m, tea.MouseMsg{X: vp.Col + 5, Y: vp.Row + 3, Action: tea.MouseActionMotion})

	kinds := []core.EventKind{core.EventPointerDown, core.EventPointerMove, core.EventPointerUp}
	if len(g.events) != len(kinds) {
		t.Fatalf("events = %v, expected %d", g.events, len(kinds))
	}
	for i, k := range kinds {
		if g.events[i].Kind != k {
			t.Errorf("event %d kind = %v, expected %v", i, g.events[i].Kind, k)
		}
	}

	down, _ := vp.ToCanvas(vp.Col+2, vp.Row+3)
	if g.events[0].Point != down {
		t.Errorf("pointer down at %v, expected %v", g.events[0].Point, down)
	}
}

func TestModelBlurReleasesInput(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, ModelOptions{})
	vp := m.viewport

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.MouseMsg{X: vp.Col, Y: vp.Row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.BlurMsg{})

	n := len(g.events)
	if n != 4 || g.events[2] != core.KeyUp(core.ActionLeft) || g.events[3] != core.PointerUp() {
		t.Errorf("events = %v, expected KeyUp(Left) and PointerUp after blur", g.events)
	}
	if m.dragging || m.holds.Held(core.ActionLeft) {
		t.Error("blur should clear held input")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, ModelOptions{})
	before := m.viewport

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})

	if g.resets != 1 {
		t.Errorf("resize reset the game, resets = %d", g.resets)
	}
	if m.viewport == before {
		t.Error("viewport should follow the window")
	}
	if m.showSidebar {
		t.Error("sidebar should hide in a narrow window")
	}
	if m.viewport.Cols > 48 || m.viewport.Rows > 17 {
		t.Errorf("viewport %dx%d does not fit the window", m.viewport.Cols, m.viewport.Rows)
	}
}

func TestModelSavesCompletion(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	won := core.GameState{Phase: core.PhaseWon, Elapsed: 3200 * time.Millisecond, Round: 1}
	g := &fakeGame{next: []core.StepResult{
		{State: won, Completed: true, Time: won.Elapsed},
		{State: won},
	}}
	m := newTestModel(t, g, store, ModelOptions{Player: "alice"})

	m, _ = update(t, m, TickMsg{ID: m.tickID, Time: time.Now()})
	m, _ = update(t, m, TickMsg{ID: m.tickID, Time: time.Now()})

	times, err := store.TopTimes("fake", 10)
	if err != nil {
		t.Fatalf("TopTimes failed: %v", err)
	}
	if len(times) != 1 {
		t.Fatalf("expected 1 saved completion, got %d", len(times))
	}
	if times[0].Player != "alice" || times[0].Duration != 3200*time.Millisecond {
		t.Errorf("saved %+v", times[0])
	}
	if m.State().Phase != core.PhaseWon {
		t.Errorf("state phase = %v, expected Won", m.State().Phase)
	}
	if m.hof.entries != 1 || m.lastRound != times[0].RoundID {
		t.Errorf("hall of fame should show the new time, got %d entries, round %q", m.hof.entries, m.lastRound)
	}
	if !m.hof.hasRecord || m.hof.record != 3200*time.Millisecond {
		t.Errorf("record = %v (%v), expected 3.2s", m.hof.record, m.hof.hasRecord)
	}
	if m.hof.mine == nil || !m.hof.mineShown {
		t.Error("own round should be marked in the table")
	}
}

func TestModelHallOfFameSidebar(t *testing.T) {
	tests := []struct {
		name      string
		others    []time.Duration
		clear     bool
		mine      bool
		mineShown bool
		record    time.Duration
		want      string
	}{
		{
			name:      "own round in the top times",
			others:    []time.Duration{4 * time.Second},
			mine:      true,
			mineShown: true,
			record:    3200 * time.Millisecond,
			want:      "Record: 3.2s",
		},
		{
			name:   "own round below the top times",
			others: []time.Duration{time.Second, time.Second, time.Second, time.Second, time.Second},
			mine:   true,
			record: time.Second,
			want:   "You: 3.2s",
		},
		{
			name:  "board cleared",
			clear: true,
			want:  "Be the first!",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := storage.Open()
			if err != nil {
				t.Fatalf("failed to open store: %v", err)
			}
			t.Cleanup(func() { store.Close() })
			for _, d := range tc.others {
				if _, err := store.SaveCompletion("fake", "bob", d); err != nil {
					t.Fatalf("SaveCompletion failed: %v", err)
				}
			}

			won := core.GameState{Phase: core.PhaseWon, Elapsed: 3200 * time.Millisecond, Round: 1}
			g := &fakeGame{next: []core.StepResult{{State: won, Completed: true, Time: won.Elapsed}}}
			m := newTestModel(t, g, store, ModelOptions{Player: "alice"})
			m, _ = update(t, m, TickMsg{ID: m.tickID, Time: time.Now()})

			if tc.clear {
				if err := store.ClearCompletions("fake"); err != nil {
					t.Fatalf("ClearCompletions failed: %v", err)
				}
				m.loadHallOfFame()
			}

			if (m.hof.mine != nil) != tc.mine || m.hof.mineShown != tc.mineShown {
				t.Errorf("mine = %v, shown = %v", m.hof.mine, m.hof.mineShown)
			}
			if m.hof.hasRecord != (tc.record > 0) || m.hof.record != tc.record {
				t.Errorf("record = %v (%v), expected %v", m.hof.record, m.hof.hasRecord, tc.record)
			}
			if view := m.View(); !strings.Contains(view, tc.want) {
				t.Errorf("sidebar should contain %q:\n%s", tc.want, view)
			}
		})
	}
}

func TestModelBackToMenu(t *testing.T) {
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	t.Run("standalone ignores back", func(t *testing.T) {
		g := &fakeGame{state: core.GameState{Phase: core.PhaseLost}}
		m := newTestModel(t, g, nil, ModelOptions{})
		m, _ = update(t, m, esc)
		if m.BackToMenu() {
			t.Error("standalone model has no menu")
		}
	})

	t.Run("embedded waits for round end", func(t *testing.T) {
		g := &fakeGame{}
		m := newTestModel(t, g, nil, ModelOptions{Embedded: true})
		m, _ = update(t, m, esc)
		if m.BackToMenu() {
			t.Error("back during a running round should be ignored")
		}

		g.state = core.GameState{Phase: core.PhaseLost}
		m.state = g.state
		m, _ = update(t, m, esc)
		if !m.BackToMenu() {
			t.Error("back after the round should return to the menu")
		}
	})
}

func TestModelView(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil, ModelOptions{})
	if m.View() == "" {
		t.Error("View should render the play field")
	}
}
