// Package tcellui runs a game directly on a tcell screen, without Bubble
// Tea. It draws straight into the terminal cell buffer.
package tcellui

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-millipede/internal/core"
	"github.com/vovakirdan/tui-millipede/internal/registry"
	"github.com/vovakirdan/tui-millipede/internal/storage"
)

// holdTicks matches the Bubble Tea front end.
const holdTicks = 9

var palette = map[core.Color]int{
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
}

func style(c core.Color) tcell.Style {
	n, ok := palette[c]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
}

// MapKey translates a tcell key event. quit is set for q and ctrl+c.
func MapKey(ev *tcell.EventKey) (action core.Action, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return core.ActionQuit, true
	case tcell.KeyUp:
		return core.ActionUp, false
	case tcell.KeyDown:
		return core.ActionDown, false
	case tcell.KeyLeft:
		return core.ActionLeft, false
	case tcell.KeyRight:
		return core.ActionRight, false
	case tcell.KeyEnter:
		return core.ActionConfirm, false
	case tcell.KeyEscape:
		return core.ActionBack, false
	case tcell.KeyRune:
	default:
		return core.ActionNone, false
	}

	switch ev.Rune() {
	case 'q':
		return core.ActionQuit, true
	case 'w', 'k':
		return core.ActionUp, false
	case 's', 'j':
		return core.ActionDown, false
	case 'a', 'h':
		return core.ActionLeft, false
	case 'd', 'l':
		return core.ActionRight, false
	case ' ', 'f':
		return core.ActionFire, false
	case 'p':
		return core.ActionPause, false
	case 'r':
		return core.ActionRestart, false
	case 'b':
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

func held(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire:
		return true
	}
	return false
}

// Blit copies a Screen buffer into the tcell back buffer.
func Blit(dst tcell.Screen, src *core.Screen) {
	for y := range src.Height() {
		for x := range src.Width() {
			c := src.GetCell(x, y)
			dst.SetContent(x, y, c.Rune, nil, style(c.Color))
		}
	}
}

type resizer interface {
	Resize(w, h int)
}

// Runner drives one game on a tcell screen.
type Runner struct {
	Screen tcell.Screen
	Game   registry.Game
	Store  *storage.Store
	Config core.RuntimeConfig
	Player string
	Logger *log.Logger
}

// Run plays until quit or ctx ends. The screen must be initialized; Run
// does not finalize it.
func (r *Runner) Run(ctx context.Context) error {
	cfg := r.Config
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Clock == nil {
		// frames follow wall time even when the ticker lags
		cfg.Clock = core.NewMonotonicClock()
	}
	cfg.ScreenW, cfg.ScreenH = r.Screen.Size()

	buf := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	input := core.NewHeldInput(holdTicks)
	r.Game.Reset(cfg)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go r.Screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	saved := false
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action, isQuit := MapKey(ev)
				switch {
				case isQuit:
					return nil
				case action == core.ActionBack && r.Game.State().GameOver:
					return nil
				case action == core.ActionNone:
				case held(action):
					input.Press(action)
				default:
					input.Trigger(action)
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				buf.Resize(w, h)
				if g, ok := r.Game.(resizer); ok {
					g.Resize(w, h)
				}
				r.Screen.Sync()
			}

		case <-ticker.C:
			state := r.Game.Step(input.Frame()).State
			switch {
			case state.GameOver && !saved:
				saved = true
				if r.Store != nil && state.Score > 0 {
					if _, err := r.Store.SaveRun(storage.ScoreEntry{
						GameID: r.Game.ID(),
						Player: r.Player,
						Score:  state.Score,
						Level:  state.Level,
					}); err != nil && r.Logger != nil {
						r.Logger.Warn("score not saved", "err", err)
					}
				}
			case !state.GameOver:
				saved = false
			}

			r.Game.Render(buf)
			Blit(r.Screen, buf)
			r.Screen.Show()
		}
	}
}

// Play opens the terminal, runs the game, and restores the terminal.
func Play(ctx context.Context, r Runner) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()
	r.Screen = screen
	return r.Run(ctx)
}
