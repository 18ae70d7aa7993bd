package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hugrun/internal/core"
	"github.com/vovakirdan/hugrun/internal/games/hugrun"
	"github.com/vovakirdan/hugrun/internal/loop"
	"github.com/vovakirdan/hugrun/internal/registry"
)

var (
	flagScript    string
	flagMaxFrames int
	flagRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted round without a terminal",
	Long: `Play Hug Run headless from an input script and report the outcome.

The simulation clock advances exactly one frame (1/fps) per tick, so a run
is reproducible for a given --seed, --fps and script.

Script steps are comma separated:
  <dir>:<ticks>       hold up, down, left or right
  wait:<ticks>        no input
  to:<x>:<y>:<ticks>  drag toward a canvas point
  restart             start a new round

Examples:
  hugrun sim --script "right:62,up:60"
  hugrun sim --script "to:355:45:200" --seed 42
  hugrun sim --script "right:62,up:60,restart,right:62,up:60" --scoring best
  hugrun sim --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "right:62,up:60", "Input script")
	simCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 100000, "Stop after this many frames (0 = until the script ends)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with the wall clock at --fps")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "hugrun-sim")

	script, err := hugrun.ParseScript(flagScript)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID())
	if err != nil {
		return err
	}
	if g, ok := game.(*hugrun.Game); ok {
		defer func() {
			if cfgErr := g.ConfigErr(); cfgErr != nil {
				logger.Warn("ran with default config", "error", cfgErr)
			}
		}()
	}

	rate := flagFPS
	if rate <= 0 {
		rate = loop.DefaultRate
	}
	frame := time.Second / time.Duration(rate)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	clock := core.NewManualClock(time.Unix(0, 0))
	game.Reset(core.RuntimeConfig{TickRate: rate, Seed: seed, Clock: clock})
	logger.Debug("simulation started", "game", game.ID(), "seed", seed, "steps", len(script.Steps()))

	var sched loop.Scheduler = loop.Fixed{Frames: flagMaxFrames}
	if flagRealtime {
		sched = loop.Realtime{Rate: rate}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var (
		frames int
		wins   []time.Duration
		last   = game.State()
	)
	runErr := sched.Run(ctx, func() bool {
		if script.Done() {
			return false
		}
		for _, ev := range script.Advance() {
			game.Push(ev)
		}
		clock.Advance(frame)
		result := game.Step()
		frames++

		if result.Completed {
			wins = append(wins, result.Time)
			logger.Info("round won", "round", result.State.Round, "time", core.FormatSeconds(result.Time), "frame", frames)
		} else if result.State.Phase != last.Phase && result.State.Phase == core.PhaseLost {
			logger.Info("round lost", "round", result.State.Round, "time", core.FormatSeconds(result.State.Elapsed), "frame", frames)
		}
		last = result.State
		return true
	})
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	state := game.State()
	logger.Info("simulation finished",
		"frames", frames,
		"rounds", state.Round,
		"wins", len(wins),
		"phase", state.Phase,
		"elapsed", core.FormatSeconds(state.Elapsed),
	)

	printSummary(game.Scene().Scores)
	return nil
}

// printSummary writes the score display to stdout, the way the sidebar
// shows it.
func printSummary(s core.ScoreSummary) {
	switch s.Kind {
	case core.ScoreBest:
		fmt.Printf("Last: %s\n", optionalSeconds(s.Last, s.HasLast))
		fmt.Printf("Best: %s\n", optionalSeconds(s.Best, s.HasBest))
	default:
		fmt.Println("Recent Times:")
		if len(s.Recent) == 0 {
			fmt.Println("  none")
		}
		for i, d := range s.Recent {
			fmt.Printf("  %d. %s\n", i+1, core.FormatSeconds(d))
		}
	}
}

func optionalSeconds(d time.Duration, ok bool) string {
	if !ok {
		return "-"
	}
	return core.FormatSeconds(d)
}
