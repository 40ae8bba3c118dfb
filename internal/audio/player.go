// Package audio plays the simulation's sound cues through the system
// speaker. Every cue is synthesized; there are no sample files.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-millipede/internal/games/millipede"
)

// Player is a millipede.CueSink backed by a beep mixer.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	loops  map[millipede.Cue]*beep.Ctrl
	shots  map[millipede.Cue][]*beep.Ctrl
	volume float64
	live   bool
	logger *log.Logger
}

// NewPlayer creates a player at the given master volume (0..1). It stays
// silent until Init succeeds.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		loops:  make(map[millipede.Cue]*beep.Ctrl),
		shots:  make(map[millipede.Cue][]*beep.Ctrl),
		volume: min(max(volume, 0), 1),
		logger: logger,
	}
}

// Init opens the speaker. Without an audio device it returns the error and
// the player keeps accepting cues silently.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(volume(p.mixer, p.volume))
	p.live = true
	return nil
}

// Close stops every sound and releases the speaker.
func (p *Player) Close() {
	p.StopAll()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		speaker.Close()
		p.live = false
	}
}

// locked runs f with the speaker goroutine held off the mixer.
func (p *Player) locked(f func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}

// Play starts a one-shot cue. Overlapping shots of the same cue are fine.
func (p *Player) Play(c millipede.Cue) {
	s := Sound(c)
	if s == nil {
		return
	}
	p.locked(func() {
		ctrl := &beep.Ctrl{Streamer: s}
		live := p.shots[c][:0]
		for _, old := range p.shots[c] {
			if !old.Paused && old.Streamer != nil {
				live = append(live, old)
			}
		}
		p.shots[c] = append(live, ctrl)
		p.mixer.Add(ctrl)
	})
	if p.logger != nil {
		p.logger.Debug("cue", "play", c)
	}
}

// Loop repeats a cue until stopped. Looping an already looping cue is a no-op.
func (p *Player) Loop(c millipede.Cue) {
	if Sound(c) == nil {
		return
	}
	p.locked(func() {
		if ctrl, ok := p.loops[c]; ok && !ctrl.Paused {
			return
		}
		ctrl := &beep.Ctrl{Streamer: beep.Iterate(func() beep.Streamer { return Sound(c) })}
		p.loops[c] = ctrl
		p.mixer.Add(ctrl)
	})
}

// Stop silences a cue, looping or not.
func (p *Player) Stop(c millipede.Cue) {
	p.locked(func() {
		if ctrl, ok := p.loops[c]; ok {
			ctrl.Paused = true
			ctrl.Streamer = nil
			delete(p.loops, c)
		}
		for _, ctrl := range p.shots[c] {
			ctrl.Paused = true
			ctrl.Streamer = nil
		}
		delete(p.shots, c)
	})
}

// StopAll silences every cue.
func (p *Player) StopAll() {
	p.locked(func() {
		p.mixer.Clear()
		clear(p.loops)
		clear(p.shots)
	})
}

// Looping reports whether a cue is currently looping.
func (p *Player) Looping(c millipede.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	ctrl, ok := p.loops[c]
	return ok && !ctrl.Paused
}

// Active returns the number of streams in the mixer.
func (p *Player) Active() int {
	var n int
	p.locked(func() { n = p.mixer.Len() })
	return n
}
