// millipede is a terminal rendition of the Millipede arcade game.
//
// Usage:
//
//	millipede play           - Play immediately
//	millipede menu           - Title menu with difficulty and scoreboard
//	millipede serve          - Start SSH server for remote play
//	millipede levels         - Print the monster spawn tables
//	millipede config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-file <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-millipede/internal/config"
	"github.com/vovakirdan/tui-millipede/internal/games/millipede"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

// logger is configured by the root command before any subcommand runs.
var logger = log.New(io.Discard)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "millipede",
	Short: "Millipede - the arcade shooter in your terminal",
	Long: `Millipede is a terminal rendition of the arcade classic: hold the
bottom of the garden against millipedes, spiders, bees and beetles.

Available commands:
  play     - Start a game right away
  menu     - Title menu with difficulty picker and scoreboard
  serve    - Start SSH server for remote play
  levels   - Print the monster spawn tables
  config   - Print the effective configuration

Examples:
  millipede play
  millipede play --difficulty hard --seed 42
  millipede menu --sound
  millipede serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		if err := setupLogger(); err != nil {
			return err
		}
		millipede.SetConfigPath(flagConfig)
		millipede.SetDifficultyPreset(flagDifficulty)
		millipede.SetLogger(logger)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger points the shared logger at --log-file. Interactive commands
// own the terminal, so without a file logs are dropped.
func setupLogger() error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	if flagLogFile == "" {
		logger.SetLevel(level)
		return nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "millipede",
		Level:           level,
	})
	return nil
}
