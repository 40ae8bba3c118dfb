package millipede

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-millipede/internal/config"
	"github.com/vovakirdan/tui-millipede/internal/core"
	"github.com/vovakirdan/tui-millipede/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// cueSink receives audio cues of every new game. Nil means silence.
var cueSink CueSink

// logger is shared by every new game. Nil discards.
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetCueSink attaches an audio backend to games created afterwards.
func SetCueSink(s CueSink) {
	cueSink = s
}

// SetLogger sets the logger for games created afterwards.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig resolves the active configuration: the file set with
// SetConfigPath, then the usual search path, with the preset applied.
func LoadConfig() (config.MillipedeConfig, error) {
	return loadConfig(difficultyPreset)
}

func loadConfig(preset config.DifficultyPreset) (config.MillipedeConfig, error) {
	cfg, err := config.LoadMillipede(configPath)
	if err != nil {
		return config.MillipedeConfig{}, err
	}
	if preset != "" {
		config.ApplyMillipedePreset(&cfg, preset)
	}
	return cfg, nil
}

// Game adapts a World to the arcade platform.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.MillipedeConfig
	clock   core.Clock
	world   *World
	tick    uint64
	preset  config.DifficultyPreset

	tooSmall bool
}

// New creates a new Millipede game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("millipede", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "millipede"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Millipede"
}

// Reset initializes or restarts the game. The world starts at the title
// screen; the first fire press begins play.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	preset := g.Preset()
	cfg, err := loadConfig(preset)
	if err != nil {
		if logger != nil {
			logger.Warn("falling back to default config", "err", err)
		}
		cfg = config.DefaultMillipedeConfig()
		if preset != "" {
			config.ApplyMillipedePreset(&cfg, preset)
		}
	}
	g.cfg = cfg

	g.clock = runtime.Clock
	if g.clock == nil {
		g.clock = core.NewStepClock(runtime.TickRate)
	}
	g.tick = 0
	g.world = NewWorld(cfg, runtime.Seed, g.clock, cueSink, logger)
	g.checkSize()
}

// SetPreset overrides the package preset for this instance only, so
// concurrent sessions can each pick a difficulty. Takes effect on Reset.
func (g *Game) SetPreset(name string) {
	g.preset = config.ParsePreset(name)
}

// Preset returns the difficulty this instance resets with.
func (g *Game) Preset() config.DifficultyPreset {
	if g.preset != "" {
		return g.preset
	}
	return difficultyPreset
}

// World exposes the simulation.
func (g *Game) World() *World {
	return g.world
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.world.State() == StateGameOver {
		g.runtime.Seed = g.world.rng.Int63()
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.world.TogglePause()
	}

	// a squeezed window freezes the simulation clock
	if g.tooSmall {
		g.world.clock.Skip()
		return core.StepResult{State: g.State()}
	}

	g.clock.Advance()
	g.world.Tick(Input{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Fire:  in.Has(core.ActionFire) || in.Has(core.ActionConfirm),
	})
	return core.StepResult{State: g.State()}
}

// State returns the platform view of the game.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	w := g.world
	return core.GameState{
		Score:    w.Score.Score,
		Level:    w.level + 1,
		Lives:    w.Score.Lives,
		GameOver: w.State() == StateGameOver,
		Paused:   w.State() == StatePaused,
	}
}
