package millipede

import (
	"math/rand"

	"github.com/vovakirdan/tui-millipede/internal/core"
)

// Segment is one body part of a millipede.
type Segment struct {
	X, Y         int
	PrevX, PrevY int
	DX, DY       int
	Head         bool
}

// Terrain answers the mushroom queries a millipede needs while moving.
type Terrain interface {
	MillipedeCollision(x, y int) bool
	IsPoisoned(x, y int) bool
}

// Millipede is a segmented creature that walks the grid one cell at a time,
// each segment following the position the one ahead of it just left.
type Millipede struct {
	Body []Segment

	geo  *Geometry
	gait Gait

	left        bool
	down        bool
	changingRow bool
	poisoned    bool
	paSpawned   bool
	moveCount   int
	maxY        int

	Frame   int
	frameAt int64
}

// Gait is a millipede's stepped walk: Count translation ticks of Step
// pixels cover one cell, followed by a tick spent choosing the next cell.
type Gait struct {
	Step  int
	Count int
}

// NewMillipede builds a millipede of n segments stacked upward from (x, y),
// head first. The head faces left or right at random.
func NewMillipede(geo *Geometry, gait Gait, n, x, y int, rng *rand.Rand) *Millipede {
	m := &Millipede{
		geo:       geo,
		gait:      gait,
		down:      true,
		left:      rng.Intn(11) < 5,
		moveCount: gait.Count,
	}
	m.Body = make([]Segment, n)
	for i := range m.Body {
		m.Body[i] = Segment{X: x, Y: y, PrevX: x, PrevY: y, Head: i == 0}
		y -= geo.Segment.H
	}
	if n > 0 {
		m.SetWaypoint(x, 0)
	}
	return m
}

// Len returns the number of segments.
func (m *Millipede) Len() int {
	return len(m.Body)
}

// Left reports whether the millipede is heading left.
func (m *Millipede) Left() bool {
	return m.left
}

// Poisoned reports whether the millipede is diving after eating poison.
func (m *Millipede) Poisoned() bool {
	return m.poisoned
}

// Move advances the millipede one tick. It reports whether the head hit the
// floor of the player band this tick, which calls for a player-area spawn.
func (m *Millipede) Move(t Terrain, rng *rand.Rand) (reachedFloor bool) {
	if len(m.Body) == 0 {
		return false
	}

	if m.moveCount > 0 {
		m.moveCount--
		for i := range m.Body {
			s := &m.Body[i]
			s.PrevX, s.PrevY = s.X, s.Y
			s.X += s.DX
			s.Y += s.DY
		}
		return false
	}
	m.moveCount = m.gait.Count

	geo := m.geo
	cell := geo.Cell
	head := m.Body[0]
	x, y := head.X, head.Y
	alternate := false
	randomDir := false

	if !m.changingRow {
		if m.left {
			if head.X > 0 {
				x = head.X - cell
			} else if head.X == 0 {
				m.changingRow = true
			}
		} else {
			xMax := geo.ArenaW - geo.Segment.W
			if head.X < xMax {
				x = head.X + cell
			} else if head.X == xMax {
				m.changingRow = true
			}
		}
	}

	if m.changingRow {
		x = head.X
		if m.down {
			y = head.Y + geo.Segment.H
		} else {
			y = head.Y - geo.Segment.H
		}

		if y >= geo.ArenaH-geo.Segment.H {
			randomDir = true
			reachedFloor = true
			m.down = false
			y = head.Y + geo.Segment.H
			m.maxY = geo.Ceiling
			m.poisoned = false
		}

		if y < m.maxY {
			m.down = true
			y = head.Y - geo.Segment.H
		}

		if !m.poisoned {
			m.changingRow = false
			alternate = true
		}
	}

	if !m.poisoned && !m.paSpawned && t.MillipedeCollision(x, y) {
		if t.IsPoisoned(x, y) {
			m.poisoned = true
			alternate = false
			m.down = true
		}
		m.changingRow = true
	}

	m.paSpawned = false

	if alternate {
		m.left = !m.left
	}
	if randomDir {
		m.left = rng.Intn(11) < 5
	}

	m.SetWaypoint(x, y)
	return reachedFloor
}

// SetWaypoint points the head at (x, y) and every other segment at the
// position of the segment ahead of it. Segments still above the field, or
// following a target above it, drop straight down.
func (m *Millipede) SetWaypoint(x, y int) {
	x0, y0 := x, y
	for i := range m.Body {
		s := &m.Body[i]
		x1, y1 := s.X, s.Y
		if y0 < 0 || s.Y < 0 {
			s.DX = 0
			s.DY = m.gait.Step
		} else {
			s.DX = m.gait.Step * core.Sign(x0-s.X)
			s.DY = m.gait.Step * core.Sign(y0-s.Y)
		}
		x0, y0 = x1, y1
	}
}

// HitResult describes a projectile or gas cloud striking a millipede.
type HitResult struct {
	Hit   bool
	Head  bool
	X, Y  int // position of the struck segment
	Child *Millipede
	Dead  bool // nothing of the instance remains
}

// Hit tests r against every segment, head first. The first struck segment
// is removed: segments before it stay with this instance and segments after
// it form a new instance returned as Child.
func (m *Millipede) Hit(r core.Rect) HitResult {
	w, h := m.geo.Segment.W, m.geo.Segment.H
	for i, s := range m.Body {
		if !core.NewRect(s.X, s.Y, w, h).Intersects(r) {
			continue
		}
		res := HitResult{Hit: true, Head: i == 0, X: s.X, Y: s.Y}

		before := m.Body[:i]
		after := m.Body[i+1:]
		switch {
		case len(before) == 0 && len(after) == 0:
			m.Body = nil
			res.Dead = true
		case len(before) == 0:
			m.Body = append([]Segment(nil), after...)
			m.changingRow = true
		default:
			m.Body = append([]Segment(nil), before...)
			m.changingRow = true
			if len(after) > 0 {
				res.Child = m.spawnChild(after)
			}
		}
		if len(m.Body) > 0 {
			m.Body[0].Head = true
		}
		return res
	}
	return HitResult{}
}

func (m *Millipede) spawnChild(body []Segment) *Millipede {
	c := &Millipede{
		Body:        append([]Segment(nil), body...),
		geo:         m.geo,
		gait:        m.gait,
		left:        m.left,
		down:        m.down,
		changingRow: true,
		moveCount:   m.moveCount,
		maxY:        m.maxY,
		Frame:       m.Frame,
		frameAt:     m.frameAt,
	}
	c.Body[0].Head = true
	return c
}

// GoLeft sets a millipede spawned inside the player band heading left.
func (m *Millipede) GoLeft() {
	m.face(true)
}

// GoRight sets a millipede spawned inside the player band heading right.
func (m *Millipede) GoRight() {
	m.face(false)
}

func (m *Millipede) face(left bool) {
	m.changingRow = false
	m.down = true
	m.left = left
	m.paSpawned = true
}

// Animate flips the walk frame every delay milliseconds.
func (m *Millipede) Animate(now, delay int64) {
	if now-m.frameAt > delay {
		m.frameAt = now
		m.Frame ^= 1
	}
}
