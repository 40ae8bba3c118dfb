package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-millipede/internal/config"
	"github.com/vovakirdan/tui-millipede/internal/platform/tui"
	"github.com/vovakirdan/tui-millipede/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start at the title menu.

Pick a difficulty with Left/Right, start with Enter, and check the
session's high scores with Tab. Leaving a finished or paused game
returns to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Select
  Tab           - High scores
  Q             - Quit

Examples:
  millipede menu
  millipede menu --fps 30 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("menu needs an interactive terminal")
	}
	defer setupSound()()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	preset := config.ParsePreset(flagDifficulty)
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return tui.RunSession(store, terminalConfig(), playerName(), tui.SessionOptions{Preset: preset})
}
