package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hugrun/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the embedded default configuration as YAML.

Save it to ~/.hugrun/configs/hugrun.yaml or ./configs/hugrun.yaml to
customize the canvas, obstacles, speeds and scoring.

With --resolved, prints the configuration that would actually be used,
after the config search and the --difficulty preset.

Examples:
  hugrun config > ~/.hugrun/configs/hugrun.yaml
  hugrun config --resolved --config ./my-hugrun.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the loaded and validated config instead of the default")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))
	if flagScoring != "" {
		cfg.Scoring.Mode = config.ScoringMode(flagScoring)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
