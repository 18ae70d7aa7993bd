package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hugrun/internal/core"
	"github.com/vovakirdan/hugrun/internal/registry"
	"github.com/vovakirdan/hugrun/internal/storage"
)

// DefaultKeyHold is the key hold window used when none is configured.
const DefaultKeyHold = 150 * time.Millisecond

// DefaultFirstRepeat is the hold window after a fresh press when none is
// configured.
const DefaultFirstRepeat = 2 * DefaultKeyHold

// ModelOptions tunes a play model.
type ModelOptions struct {
	Player      string        // Name recorded in the hall of fame
	KeyHold     time.Duration // Release a key after this long without repeats
	FirstRepeat time.Duration // KeyHold until the first auto-repeat arrives
	Logger      *log.Logger   // nil = discard
	Embedded    bool          // Running inside a session; allows back to menu
	AllowClear  bool          // Hall of fame may be wiped from the scoreboard
}

// Model is the Bubble Tea model for playing one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	opts     ModelOptions
	keys     KeyMap
	help     help.Model
	holds    *HoldTracker
	viewport core.Viewport
	logger   *log.Logger
	tickID   int64

	state       core.GameState
	hof         hallOfFame
	lastRound   string // Round ID of this player's last saved completion
	showSidebar bool
	dragging    bool
	ticks       int

	quitting   bool
	backToMenu bool
}

// NewModel creates a play model and resets the game for the first round.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.KeyHold <= 0 {
		opts.KeyHold = DefaultKeyHold
	}
	if opts.FirstRepeat <= 0 {
		opts.FirstRepeat = max(DefaultFirstRepeat, opts.KeyHold)
	}
	if opts.Player == "" {
		opts.Player = "anonymous"
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(1, 1),
		store:  store,
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		holds:  NewHoldTracker(opts.KeyHold, opts.FirstRepeat),
		logger: logger,
		tickID: nextTickID(),
	}

	m.game.Reset(m.config)
	m.state = m.game.State()
	m.layout()
	m.loadHallOfFame()

	logger.Debug("round started", "game", game.ID(), "seed", cfg.Seed)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.push(m.holds.ReleaseAll())
		if m.dragging {
			m.dragging = false
			m.game.Push(core.PointerUp())
		}
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input. Keys only queue events; the game
// applies them on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case m.opts.Embedded && MapKeyToMenuAction(msg) == MenuActionBack && m.state.Phase.Terminal():
		m.backToMenu = true
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionRestart:
		m.game.Push(core.Restart())
	case action.IsDirection():
		m.push(m.holds.Press(action, time.Now()))
	}

	return m, nil
}

// handleMouse turns left-button drags into pointer events in canvas units.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, inside := m.viewport.ToCanvas(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside {
			m.dragging = true
			m.game.Push(core.PointerDown(p))
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.game.Push(core.PointerMove(p))
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.dragging = false
			m.game.Push(core.PointerUp())
		}
	}

	return m, nil
}

// handleResize refits the canvas to the new window. The simulation is not
// touched: the canvas keeps its logical size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// handleTick expires released keys, runs one game frame and records a won
// round in the hall of fame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.push(m.holds.Expire(now))

	result := m.game.Step()
	prev := m.state.Phase
	m.state = result.State

	if result.Completed {
		m.saveCompletion(result.Time)
	} else if prev != m.state.Phase {
		m.logger.Debug("phase changed", "game", m.game.ID(), "from", prev, "to", m.state.Phase)
	}

	// Pick up other sessions' times about once a second.
	m.ticks++
	if m.ticks >= max(m.config.TickRate, 1) {
		m.ticks = 0
		m.loadHallOfFame()
	}

	return m, tickCmd(m.tickID, m.config.TickRate)
}

func (m *Model) push(events []core.Event) {
	for _, ev := range events {
		m.game.Push(ev)
	}
}

// saveCompletion records a won round. Best-effort: the game goes on if the
// store is unavailable.
func (m *Model) saveCompletion(d time.Duration) {
	m.logger.Info("round won", "game", m.game.ID(), "player", m.opts.Player, "time", core.FormatSeconds(d))
	if m.store == nil {
		return
	}

	c, err := m.store.SaveCompletion(m.game.ID(), m.opts.Player, d)
	if err != nil {
		m.logger.Warn("could not save completion", "error", err)
		return
	}
	m.logger.Debug("completion saved", "round", c.RoundID)
	m.lastRound = c.RoundID
	m.loadHallOfFame()
}

// loadHallOfFame refreshes the sidebar from the store: the top times, the
// record and this player's last saved round.
func (m *Model) loadHallOfFame() {
	m.hof = hallOfFame{}
	if m.store == nil {
		return
	}

	id := m.game.ID()
	entries, err := m.store.TopTimes(id, hallOfFameSize)
	if err != nil {
		m.logger.Warn("could not load hall of fame", "error", err)
		return
	}
	m.hof.table = newTimesTable(entries, sidebarWidth-4, len(entries)+1, false, m.lastRound)
	m.hof.entries = len(entries)

	if best, ok, err := m.store.BestTime(id); err != nil {
		m.logger.Warn("could not load record", "error", err)
	} else {
		m.hof.record, m.hof.hasRecord = best, ok
	}

	if m.lastRound == "" {
		return
	}
	// nil once the round is gone, e.g. after the board was cleared.
	mine, err := m.store.CompletionByRound(m.lastRound)
	if err != nil {
		m.logger.Warn("could not load own completion", "error", err)
		return
	}
	m.hof.mine = mine
	for _, e := range entries {
		if e.RoundID == m.lastRound {
			m.hof.mineShown = true
		}
	}
}

// layout fits the canvas viewport to the window, leaving room for the
// border, the help line and the sidebar when it fits.
func (m *Model) layout() {
	w, h := m.config.ScreenW, m.config.ScreenH
	m.showSidebar = w >= minWidthForSidebar

	fieldW := w
	if m.showSidebar {
		fieldW -= sidebarWidth + 1
	}

	scene := m.game.Scene()
	m.viewport = core.FitViewport(1, 1, fieldW-2, h-3, scene.CanvasW, scene.CanvasH)
	m.screen.Resize(m.viewport.Cols+2, m.viewport.Rows+2)
}

// saveScreenshot saves the current play field to a text file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	DrawScene(m.screen, m.game.Scene(), m.viewport)

	dir := filepath.Join(os.Getenv("HOME"), ".hugrun", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the play field, the sidebar and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	scene := m.game.Scene()
	m.screen.Clear()
	DrawScene(m.screen, scene, m.viewport)

	view := RenderScreen(m.screen)
	if m.showSidebar {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, " ", renderSidebar(m.game.Title(), scene, m.hof))
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return view + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
