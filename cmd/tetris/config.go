package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML after the search path and the
difficulty preset have been applied. Use --defaults to print the embedded
default file, a good starting point for a custom config.

Examples:
  tetris config
  tetris config --difficulty hard
  tetris config --defaults > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagConfigDefaults {
		_, err := out.Write(config.GetDefaultYAML("tetris"))
		return err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, source, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	data, err := config.MarshalTetris(cfg)
	if err != nil {
		return err
	}

	rules := tetris.RulesFromConfig(cfg)
	dim := color.New(color.FgHiBlack)
	fmt.Fprintln(out, dim.Sprintf("# source: %s, difficulty: %s", source, preset))
	fmt.Fprintln(out, dim.Sprintf("# gravity: level 1 %v, level 10 %v", rules.GravityDelay(1), rules.GravityDelay(10)))
	_, err = out.Write(data)
	return err
}
