package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-millipede/internal/audio"
	"github.com/vovakirdan/tui-millipede/internal/core"
	"github.com/vovakirdan/tui-millipede/internal/games/millipede"
	"github.com/vovakirdan/tui-millipede/internal/platform/tcellui"
	"github.com/vovakirdan/tui-millipede/internal/platform/tui"
	"github.com/vovakirdan/tui-millipede/internal/storage"
)

var (
	flagFrontend string
	flagSound    bool
	flagVolume   float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game right away.

Controls:
  Arrows/WASD/HJKL  - Move
  Space/F           - Fire (also starts from the title)
  P                 - Pause
  R                 - Restart (after game over)
  B/Esc             - Leave (when paused or after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Five lives, calm random events
  normal - Defaults
  hard   - Two lives, frequent random events
  fixed  - No difficulty progression

Frontends:
  tea    - Bubble Tea (default)
  tcell  - Direct tcell screen

Examples:
  millipede play
  millipede play --difficulty easy
  millipede play --frontend tcell --sound
  millipede play --config ./my-millipede.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects through the speaker")
		c.Flags().Float64Var(&flagVolume, "volume", 0.6, "Master volume (0..1)")
	}
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tea", "Renderer: tea or tcell")
}

// terminalConfig builds a runtime config sized to the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// setupSound attaches a speaker-backed cue player when --sound is set.
// The returned func releases it.
func setupSound() func() {
	if !flagSound {
		return func() {}
	}
	player := audio.NewPlayer(flagVolume, logger)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return func() {}
	}
	millipede.SetCueSink(player)
	return player.Close
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

func runPlay(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal")
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

	cfg := terminalConfig()
	game := millipede.New()

	switch flagFrontend {
	case "tea", "":
		return tui.Run(game, store, cfg, playerName())
	case "tcell":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return tcellui.Play(ctx, tcellui.Runner{
			Game:   game,
			Store:  store,
			Config: cfg,
			Player: playerName(),
			Logger: logger,
		})
	}
	return fmt.Errorf("unknown frontend %q (want tea or tcell)", flagFrontend)
}
