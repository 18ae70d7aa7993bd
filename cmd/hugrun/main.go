// hugrun is a terminal arcade game: steer past bouncing obstacles to reach
// the goal as fast as you can.
//
// Usage:
//
//	hugrun play              - Play a round in this terminal
//	hugrun menu              - Pick a variant or browse the hall of fame
//	hugrun serve             - Start SSH server for remote play
//	hugrun sim               - Run a scripted round without a terminal
//	hugrun list              - List game variants
//	hugrun config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacle layouts
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--scoring <mode>      - history or best
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hugrun/internal/config"
	"github.com/vovakirdan/hugrun/internal/games/hugrun"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagScoring    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hugrun",
	Short: "Hug Run - dodge the obstacles, get a hug",
	Long: `Hug Run is a single-screen arcade game for the terminal.

Move from the bottom-left corner to the goal in the top-right corner
without touching any of the bouncing obstacles. Every win is timed.

Available commands:
  play     - Play a round in this terminal
  menu     - Pick a variant or browse the hall of fame
  serve    - Start SSH server for remote play
  sim      - Run a scripted round headless
  list     - Show game variants
  config   - Print the default configuration

Examples:
  hugrun play
  hugrun play --scoring best --difficulty hard
  hugrun serve --ssh :2222
  hugrun sim --script "right:62,up:60" --seed 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		switch config.ScoringMode(flagScoring) {
		case "", config.ScoringHistory, config.ScoringBest:
		default:
			return fmt.Errorf("invalid --scoring %q: want history or best", flagScoring)
		}
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("invalid --difficulty %q: want easy, normal or hard", flagDifficulty)
		}

		hugrun.SetConfigPath(flagConfig)
		hugrun.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagScoring, "scoring", "", "Scoring mode: history, best (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a component logger at the --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// gameID picks the registered variant for the --scoring flag. Without the
// flag, scoring.mode from the loaded config decides.
func gameID() string {
	mode := config.ScoringMode(flagScoring)
	if mode == "" {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			cfg = config.DefaultHugRunConfig()
		}
		mode = cfg.Scoring.Mode
	}
	return hugrun.VariantID(mode)
}
