package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-millipede/internal/games/millipede"
)

// SampleRate is the output rate of every synthesized cue.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSquare Wave = iota
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length raw wave with a linear pitch slide.
type oscillator struct {
	from, to float64
	phase    float64
	pos      int
	length   int
	wave     Wave
	rng      *rand.Rand
}

func newOscillator(from, to float64, d time.Duration, wave Wave) *oscillator {
	return &oscillator{
		from:   from,
		to:     to,
		length: SampleRate.N(d),
		wave:   wave,
		rng:    rand.New(rand.NewSource(int64(from*1000 + to))), //#nosec G404 -- audio noise
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.pos) / float64(o.length)
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out exponentially over its length.
type decay struct {
	s      beep.Streamer
	pos    int
	length int
	rate   float64
}

func newDecay(s beep.Streamer, d time.Duration, rate float64) *decay {
	return &decay{s: s, length: SampleRate.N(d), rate: rate}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := range n {
		t := float64(e.pos) / float64(e.length)
		g := math.Exp(-e.rate * t)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *decay) Err() error { return e.s.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return beep.Silence(SampleRate.N(d))
	}
	return beep.Take(SampleRate.N(d), sine)
}

// Sound synthesizes one pass of a cue. Looping cues repeat this pass.
func Sound(c millipede.Cue) beep.Streamer {
	switch c {
	case millipede.CueMissile:
		return volume(newOscillator(1800, 900, 40*time.Millisecond, WaveSquare), 0.15)
	case millipede.CueHit:
		return volume(newDecay(newOscillator(420, 260, 70*time.Millisecond, WaveSquare), 70*time.Millisecond, 3), 0.25)
	case millipede.CueExplosion:
		return volume(newDecay(newOscillator(0, 0, 600*time.Millisecond, WaveNoise), 600*time.Millisecond, 5), 0.5)
	case millipede.CueCanister:
		d := 400 * time.Millisecond
		return volume(beep.Mix(
			newDecay(newOscillator(0, 0, d, WaveNoise), d, 4),
			newDecay(tone(70, d), d, 2),
		), 0.4)
	case millipede.CueMillipede:
		return volume(beep.Seq(
			newOscillator(98, 98, 180*time.Millisecond, WaveSaw),
			newOscillator(110, 110, 180*time.Millisecond, WaveSaw),
		), 0.08)
	case millipede.CueSpider:
		return volume(beep.Seq(
			newOscillator(520, 700, 90*time.Millisecond, WaveSquare),
			newOscillator(700, 520, 90*time.Millisecond, WaveSquare),
		), 0.07)
	case millipede.CueSwarm:
		return volume(newOscillator(1400, 500, 250*time.Millisecond, WaveSaw), 0.12)
	case millipede.CueExtraLife:
		return volume(beep.Seq(
			tone(988, 90*time.Millisecond),
			tone(1319, 90*time.Millisecond),
			tone(1976, 160*time.Millisecond),
		), 0.3)
	case millipede.CueRestore:
		return volume(newDecay(tone(660, 60*time.Millisecond), 60*time.Millisecond, 2), 0.2)
	}
	return nil
}
