package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hugrun/internal/config"
	"github.com/vovakirdan/hugrun/internal/core"
	"github.com/vovakirdan/hugrun/internal/platform/tui"
	"github.com/vovakirdan/hugrun/internal/registry"
	"github.com/vovakirdan/hugrun/internal/storage"
)

var (
	flagLogFile string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Hug Run",
	Long: `Start a round of Hug Run in this terminal.

Controls:
  Arrows/WASD/HJKL - Move (diagonals combine)
  Mouse drag       - Player follows the pointer
  R                - Restart at any time
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Obstacles move at 0.75x speed
  normal - Template speeds
  hard   - Obstacles move at 1.5x speed

Examples:
  hugrun play
  hugrun play --difficulty hard
  hugrun play --scoring best
  hugrun play --config ./my-hugrun.yaml --log-file hugrun.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is used for the game)")
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal is used for the game)")
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded in the hall of fame")
	}
}

// localSetup gathers what play and menu share: runtime config, model
// options, the hall of fame and a cleanup func.
func localSetup() (core.RuntimeConfig, tui.ModelOptions, *storage.Store, func(), error) {
	// Get terminal size early for the first layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var out io.Writer = io.Discard
	var logFile *os.File
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return cfg, tui.ModelOptions{}, nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}
	logger := newLogger(out, "hugrun")

	opts := tui.ModelOptions{
		Player: flagPlayer,
		Logger: logger,
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	opts.KeyHold = gameCfg.Input.KeyHold()
	opts.FirstRepeat = gameCfg.Input.FirstRepeat()

	// The hall of fame lives as long as this process
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open hall of fame", "error", err)
		store = nil
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		if logFile != nil {
			logFile.Close()
		}
	}
	return cfg, opts, store, cleanup, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, opts, store, cleanup, err := localSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID())
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, opts)
	logOutcome(opts.Logger, game)
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// logOutcome notes how far the player got once the program exits.
func logOutcome(logger *log.Logger, game registry.Game) {
	state := game.State()
	logger.Info("session ended", "game", game.ID(), "rounds", state.Round, "phase", state.Phase)
}
