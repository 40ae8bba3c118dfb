package millipede

import (
	"math/rand"
	"strconv"
)

// popupGlyphW is the width of one digit of a floating score.
const popupGlyphW = 6

const maxParticles = 5

// Popup is a floating score.
type Popup struct {
	X, Y   int
	Points int
	At     int64
}

// Particle is one fleck of a hit effect.
type Particle struct {
	X, Y   int
	DX, DY int
	At     int64
}

// ScoreTracker keeps score and lives and the cosmetic effects that follow
// scoring.
type ScoreTracker struct {
	Score int
	Lives int
	prev  int

	Popups    []Popup
	Particles []Particle

	arenaW      int
	popupTTL    int64
	particleTTL int64
}

// NewScoreTracker creates a tracker for an arena of width arenaW.
func NewScoreTracker(arenaW int, popupTTL, particleTTL int64) *ScoreTracker {
	return &ScoreTracker{arenaW: arenaW, popupTTL: popupTTL, particleTTL: particleTTL}
}

// Reset starts a new game with the given lives.
func (s *ScoreTracker) Reset(lives int) {
	s.Score = 0
	s.prev = 0
	s.Lives = lives
	s.Popups = nil
	s.Particles = nil
}

// Add increases the score.
func (s *ScoreTracker) Add(points int) {
	s.Score += points
}

// BeginTick records the score the bonus check compares against.
func (s *ScoreTracker) BeginTick() {
	s.prev = s.Score
}

// CheckBonuses compares the score with the one recorded by BeginTick. It
// grants at most one extra life per evaluation when a multiple of
// lifeBonus was crossed, and reports a crossed multiple of spiderEvery.
func (s *ScoreTracker) CheckBonuses(lifeBonus, spiderEvery int) (extraLife, spiderAttack bool) {
	if lifeBonus > 0 && s.Score%lifeBonus < s.prev%lifeBonus {
		extraLife = true
		s.Lives++
	}
	if spiderEvery > 0 && s.Score%spiderEvery < s.prev%spiderEvery {
		spiderAttack = true
	}
	if extraLife || spiderAttack {
		s.prev = s.Score
	}
	return extraLife, spiderAttack
}

// AddPopup shows points at (x, y), kept inside the arena.
func (s *ScoreTracker) AddPopup(x, y, points int, now int64) {
	w := len(strconv.Itoa(points)) * popupGlyphW
	switch {
	case x < 0:
		x = 0
	case x+w > s.arenaW:
		x = s.arenaW - w
	}
	s.Popups = append(s.Popups, Popup{X: x, Y: y, Points: points, At: now})
}

// ClearPopups removes every floating score.
func (s *ScoreTracker) ClearPopups() {
	s.Popups = nil
}

// AddParticles bursts one to five particles at (x, y).
func (s *ScoreTracker) AddParticles(x, y int, now int64, rng *rand.Rand) {
	const w = 5
	switch {
	case x < 0:
		x = 0
	case x+w > s.arenaW:
		x = s.arenaW - w
	}
	n := 1 + rng.Intn(maxParticles)
	for range n {
		s.Particles = append(s.Particles, Particle{
			X:  x,
			Y:  y,
			DX: particleDrift(rng),
			DY: particleDrift(rng),
			At: now,
		})
	}
}

func particleDrift(rng *rand.Rand) int {
	m := rng.Intn(10)
	switch {
	case m == 0:
		return 0
	case m > 5:
		return 1 + rng.Intn(2)
	default:
		return -(1 + rng.Intn(2))
	}
}

// Update drifts particles and expires old effects.
func (s *ScoreTracker) Update(now int64) {
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		if now-p.At >= s.particleTTL {
			continue
		}
		p.X += p.DX
		p.Y += p.DY
		kept = append(kept, p)
	}
	s.Particles = kept

	live := s.Popups[:0]
	for _, p := range s.Popups {
		if now-p.At < s.popupTTL {
			live = append(live, p)
		}
	}
	s.Popups = live
}
