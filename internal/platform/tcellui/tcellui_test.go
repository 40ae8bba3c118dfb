package tcellui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-millipede/internal/core"
	"github.com/vovakirdan/tui-millipede/internal/games/millipede"
	"github.com/vovakirdan/tui-millipede/internal/storage"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.Action
		quit bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), core.ActionLeft, false},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.ActionFire, false},
		{"vim", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), core.ActionUp, false},
		{"pause", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), core.ActionPause, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), core.ActionConfirm, false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), core.ActionQuit, true},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), core.ActionQuit, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := MapKey(tt.ev)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey = (%v, %v), want (%v, %v)", got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestBlit(t *testing.T) {
	sim := simScreen(t, 10, 3)
	src := core.NewScreen(10, 3)
	src.DrawTextColor(1, 1, "@>", core.ColorBrightRed)

	Blit(sim, src)
	sim.Show()

	r, _, st, _ := sim.GetContent(1, 1)
	if r != '@' {
		t.Errorf("rune = %q", r)
	}
	fg, _, _ := st.Decompose()
	if fg != tcell.PaletteColor(9) {
		t.Errorf("fg = %v", fg)
	}
	if r, _, _, _ := sim.GetContent(0, 0); r != ' ' {
		t.Errorf("blank cell = %q", r)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	sim := simScreen(t, 80, 40)
	store, err := storage.Open()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	r := &Runner{
		Screen: sim,
		Game:   millipede.New(),
		Store:  store,
		Config: core.RuntimeConfig{TickRate: 200, Seed: 3},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("runner ignored q")
	}
	if ctx.Err() != nil {
		t.Error("runner stopped by timeout, not by the key")
	}
}
