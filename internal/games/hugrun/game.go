// Package hugrun implements the Hug Run arcade game: steer the player past
// bouncing obstacles to reach the goal as fast as possible.
package hugrun

import (
	"math/rand"

	"github.com/vovakirdan/hugrun/internal/config"
	"github.com/vovakirdan/hugrun/internal/core"
	"github.com/vovakirdan/hugrun/internal/registry"
)

// Registered game IDs. Both share the simulation and differ in scoring.
const (
	IDHistory = "hugrun"
	IDBest    = "hugrun_best"
)

// Colors and messages for the avatars and end-of-round overlays.
const (
	PlayerColor = core.ColorYellow
	GoalColor   = core.ColorPink

	wonTitle   = "You get a hug!"
	wonPrompt  = "Press R to play again"
	lostTitle  = "Try Again!"
	lostPrompt = "Press R to restart"
)

// Game implements the Hug Run game logic. It owns all simulation state; the
// platform only pushes input events and asks for scenes.
type Game struct {
	id       string
	title    string
	mode     config.ScoringMode   // Forced scoring mode, "" = use config
	override *config.HugRunConfig // Fixed config, bypasses loading
	loadErr  error

	cfg     config.HugRunConfig
	runtime core.RuntimeConfig
	clock   core.Clock
	rng     *rand.Rand

	input  *Controller
	player Player
	goal   core.Rect
	field  *ObstacleField
	round  Round
	scores ScoreTracker

	rounds    int // Rounds started since Reset
	tickCount int // Ticks since Reset
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a game that scores with the given mode ("" = config decides).
// Registered variants always force their mode, so an ID names one scoring.
func New(mode config.ScoringMode) *Game {
	g := &Game{id: IDHistory, title: "Hug Run", mode: mode}
	if mode == config.ScoringBest {
		g.id = IDBest
		g.title = "Hug Run (Best Time)"
	}
	return g
}

// VariantID returns the registered variant that scores with mode.
func VariantID(mode config.ScoringMode) string {
	if mode == config.ScoringBest {
		return IDBest
	}
	return IDHistory
}

// NewWithConfig creates a game with a fixed, already validated config.
func NewWithConfig(cfg config.HugRunConfig) *Game {
	g := New("")
	g.override = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// ConfigErr returns the error from the last config load, if the game fell
// back to defaults.
func (g *Game) ConfigErr() error {
	return g.loadErr
}

// Reset builds a fresh scene: config, RNG, score tracker and a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	g.clock = runtime.Clock
	if g.clock == nil {
		g.clock = core.SystemClock{}
	}
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.input = NewController(g.cfg.Canvas.Width, g.cfg.Canvas.Height, g.cfg.Player.Size, g.cfg.Input.DragThreshold)
	g.goal = g.cfg.GoalRect()
	g.field = NewObstacleField(g.cfg, g.rng)
	g.scores = NewScoreTracker(g.cfg.Scoring)
	g.rounds = 0
	g.tickCount = 0

	g.startRound()
}

func (g *Game) loadConfig() config.HugRunConfig {
	var cfg config.HugRunConfig
	if g.override != nil {
		cfg = *g.override
		g.loadErr = nil
	} else {
		loaded, err := config.Load(configPath)
		g.loadErr = err
		cfg = loaded
		if err != nil {
			cfg = config.DefaultHugRunConfig()
		}
		config.ApplyPreset(&cfg, difficultyPreset)
	}

	if g.mode != "" {
		cfg.Scoring.Mode = g.mode
	}
	return cfg
}

// startRound enters Running: player back to the start corner, obstacles
// respawned, timer restarted. Scores are kept.
func (g *Game) startRound() {
	g.player = NewPlayer(g.cfg.PlayerStart(), g.cfg.Player.Size, g.cfg.Player.Speed)
	g.field.Respawn()
	g.round.Start(g.clock.Now())
	g.rounds++
}

// Push queues an input event for the next Step. Safe to call from input
// callbacks: it never changes simulation state directly.
func (g *Game) Push(ev core.Event) {
	g.input.Push(ev)
}

// Step advances the game by one frame.
func (g *Game) Step() core.StepResult {
	intent, restart := g.input.Drain()
	if restart {
		g.startRound()
	}
	g.tickCount++

	var result core.StepResult
	if g.round.Phase() == core.PhaseRunning {
		g.field.Update()

		moving := g.player.Move(intent, g.cfg.Canvas.Width, g.cfg.Canvas.Height)
		g.player.Animate(moving)

		now := g.clock.Now()
		switch {
		case g.obstacleHit():
			g.round.Lose(now)
		case g.goalReached():
			if d, ok := g.round.Win(now); ok {
				g.scores.RecordCompletion(d)
				result.Completed = true
				result.Time = d
			}
		}
	}

	result.State = g.State()
	return result
}

// obstacleHit reports whether the player's bounding square overlaps any obstacle.
func (g *Game) obstacleHit() bool {
	return g.field.Hits(g.player.Rect())
}

// goalReached reports whether the player's bounding square overlaps the goal's.
func (g *Game) goalReached() bool {
	return g.player.Rect().Intersects(g.goal)
}

// Scene describes the current frame for the renderer.
func (g *Game) Scene() core.Scene {
	obstacles := g.field.Obstacles()
	blocks := make([]core.Block, len(obstacles))
	for i, o := range obstacles {
		blocks[i] = core.Block{Box: o.Rect(), Color: o.Color}
	}

	scene := core.Scene{
		CanvasW:   g.cfg.Canvas.Width,
		CanvasH:   g.cfg.Canvas.Height,
		Phase:     g.round.Phase(),
		Elapsed:   g.round.Elapsed(g.clock.Now()),
		Obstacles: blocks,
		Goal:      core.Avatar{Box: g.goal, Color: GoalColor},
		Player: core.Avatar{
			Box:        g.player.Rect(),
			MouthAngle: g.player.MouthAngle,
			Color:      PlayerColor,
		},
		Scores: g.scores.Summary(),
	}

	switch scene.Phase {
	case core.PhaseWon:
		scene.Overlay = &core.Overlay{Title: wonTitle, Prompt: wonPrompt, Color: core.ColorGreen}
	case core.PhaseLost:
		scene.Overlay = &core.Overlay{Title: lostTitle, Prompt: lostPrompt, Color: core.ColorRed}
	}
	return scene
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:   g.round.Phase(),
		Elapsed: g.round.Elapsed(g.clock.Now()),
		Round:   g.rounds,
	}
}

// Config returns the active configuration.
func (g *Game) Config() config.HugRunConfig {
	return g.cfg
}

// Register the game variants with the registry
func init() {
	registry.Register(IDHistory, func() registry.Game {
		return New(config.ScoringHistory)
	})
	registry.Register(IDBest, func() registry.Game {
		return New(config.ScoringBest)
	})
}
