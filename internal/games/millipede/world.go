package millipede

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-millipede/internal/config"
	"github.com/vovakirdan/tui-millipede/internal/core"
)

// World is the whole simulation: the field, every creature, and the level
// director driving them one tick at a time.
type World struct {
	cfg   config.MillipedeConfig
	geo   Geometry
	rng   *rand.Rand
	clock *TickCounter
	cues  CueSink
	log   *log.Logger
	diff  *config.DifficultyManager

	Grid       *Grid
	Player     *Player
	Missile    *Missile
	Millipedes []*Millipede
	Roster     *Roster
	Score      *ScoreTracker

	gait   Gait
	stages map[int][]Kind

	director
}

// NewWorld builds a simulation in the main menu. A nil cues or logger
// disables that output.
func NewWorld(cfg config.MillipedeConfig, seed int64, clock core.Clock, cues CueSink, logger *log.Logger) *World {
	if cues == nil {
		cues = nopSink{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		cfg:   cfg,
		geo:   NewGeometry(cfg),
		rng:   rand.New(rand.NewSource(seed)),
		clock: NewTickCounter(clock),
		cues:  cues,
		log:   logger.WithPrefix("millipede"),
		diff:  config.NewDifficultyManager(cfg.Difficulty),
		gait:  Gait{Step: cfg.Gameplay.SegmentStep, Count: cfg.Gameplay.MoveCount},
	}
	w.stages = make(map[int][]Kind, len(cfg.Swarm.Stages))
	for _, st := range cfg.Swarm.Stages {
		for _, name := range st.Kinds {
			if k, ok := ParseKind(name); ok {
				w.stages[st.Position] = append(w.stages[st.Position], k)
			}
		}
	}

	w.Grid = NewGrid(w.geo, w.rng, w.Now)
	w.Grid.SetLimits(cfg.Gameplay.MaxCanisters, cfg.Timers.FlowerWilt)
	w.Player = NewPlayer(&w.geo, cfg.Gameplay.PlayerSpeed)
	w.Grid.SetPlayer(w.Player.Rect)
	w.Missile = NewMissile(&w.geo, cfg.Gameplay.MissileSpeed)
	w.Roster = NewRoster()
	w.Score = NewScoreTracker(w.geo.ArenaW, cfg.Timers.Popup, cfg.Timers.Particle)
	w.Score.Reset(cfg.Gameplay.StartLives)
	w.state = StateMainMenu
	return w
}

// Now returns the current simulation time in milliseconds.
func (w *World) Now() int64 {
	return w.clock.Now()
}

// Geometry returns the arena constants.
func (w *World) Geometry() Geometry {
	return w.geo
}

// Difficulty exposes the difficulty manager for preset overrides.
func (w *World) Difficulty() *config.DifficultyManager {
	return w.diff
}

// Level returns the zero-based level number.
func (w *World) Level() int {
	return w.level
}

// SwarmActive reports whether a swarm stage is running.
func (w *World) SwarmActive() bool {
	return w.swarm != nil
}

// NinthActive reports whether the field is continuously scrolling.
func (w *World) NinthActive() bool {
	return w.ninth
}

// SlowTime reports whether time dilation is active.
func (w *World) SlowTime() bool {
	return w.slow
}

// levelTable returns the spawn tables for the current level.
func (w *World) levelTable() config.LevelTable {
	return w.cfg.Levels[w.level%len(w.cfg.Levels)]
}

// rollPercent returns a uniform roll in 1..100.
func (w *World) rollPercent() int {
	return w.rng.Intn(100) + 1
}

// award adds points with a floating score.
func (w *World) award(points, x, y int) {
	w.Score.Add(points)
	w.Score.AddPopup(x, y, points, w.Now())
}

// StartSlowTime halves the pace of monsters and millipedes for a while.
func (w *World) StartSlowTime() {
	now := w.Now()
	w.slow = true
	w.slowAt = now
	w.slowLast = now
}

func (w *World) stopNinth() {
	w.ninth = false
}

// spawn builds a monster of kind k and adds it to the roster.
func (w *World) spawn(k Kind) Monster {
	m := NewMonster(w, k)
	w.Roster.Add(m)
	return m
}

// addMillipede registers a new millipede of n segments at (x, y).
func (w *World) addMillipede(n, x, y int) *Millipede {
	m := NewMillipede(&w.geo, w.gait, n, x, y, w.rng)
	w.Millipedes = append(w.Millipedes, m)
	return m
}

// spawnInPlayerArea releases a one-segment millipede from a side wall into
// the player band.
func (w *World) spawnInPlayerArea() {
	if len(w.Millipedes) > w.cfg.Gameplay.MaxMillipedes {
		return
	}
	geo := w.geo
	y := geo.Ceiling
	x0, x1, right := geo.ArenaW-geo.Segment.W, geo.ArenaW-1, false
	if w.rng.Intn(10) < 5 {
		x0, x1, right = -geo.Segment.W, 0, true
	}
	m := NewMillipede(&w.geo, w.gait, 1, x0, y, w.rng)
	if right {
		m.GoRight()
	} else {
		m.GoLeft()
	}
	m.SetWaypoint(x1, 0)
	w.Millipedes = append(w.Millipedes, m)
}

// sweepMillipedes drops emptied instances.
func (w *World) sweepMillipedes() {
	kept := w.Millipedes[:0]
	for _, m := range w.Millipedes {
		if m.Len() > 0 {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(w.Millipedes); i++ {
		w.Millipedes[i] = nil
	}
	w.Millipedes = kept
}

// Segments returns the number of live millipede segments.
func (w *World) Segments() int {
	n := 0
	for _, m := range w.Millipedes {
		n += m.Len()
	}
	return n
}
