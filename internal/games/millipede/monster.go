package millipede

import (
	"fmt"

	"github.com/vovakirdan/tui-millipede/internal/core"
)

// Kind identifies a roster monster archetype.
type Kind int

const (
	KindBee Kind = iota
	KindBeetle
	KindDragonfly
	KindEarwig
	KindInchworm
	KindMosquito
	KindSpider
	numKinds
)

var kindNames = [numKinds]string{
	KindBee:       "bee",
	KindBeetle:    "beetle",
	KindDragonfly: "dragonfly",
	KindEarwig:    "earwig",
	KindInchworm:  "inchworm",
	KindMosquito:  "mosquito",
	KindSpider:    "spider",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a config name to a Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Monster is a roster creature with its own movement state machine.
type Monster interface {
	Kind() Kind
	Bounds() core.Rect
	Update(w *World)
	OnHit(w *World)
	Alive() bool
	Frame() int
}

// critter carries the state every monster kind shares.
type critter struct {
	x, y    int
	w, h    int
	dead    bool
	frame   int
	frameAt int64
	frames  int
}

func newCritter(w *World, x, y, frames int) critter {
	return critter{
		x:       x,
		y:       y,
		w:       w.geo.Monster.W,
		h:       w.geo.Monster.H,
		frames:  frames,
		frameAt: w.Now(),
	}
}

func (c *critter) Bounds() core.Rect { return core.NewRect(c.x, c.y, c.w, c.h) }
func (c *critter) Alive() bool       { return !c.dead }
func (c *critter) Frame() int        { return c.frame }
func (c *critter) kill()             { c.dead = true }

func (c *critter) animate(w *World) {
	now := w.Now()
	if now-c.frameAt > w.cfg.Timers.Animation {
		c.frameAt = now
		c.frame = (c.frame + 1) % c.frames
	}
}

func (c *critter) cell(w *World) (col, row int) {
	return w.geo.CellOf(c.x, c.y)
}

// snapColumn picks a random x aligned to the grid.
func snapColumn(w *World) int {
	cell := w.geo.Cell
	return (w.rng.Intn(w.geo.ArenaW-1) / cell) * cell
}

// bounceX keeps a diagonal flier inside the arena, reversing dx at a wall.
func (c *critter) bounceX(w *World, dx *int) {
	maxX := w.geo.ArenaW - c.w
	if c.x > maxX {
		c.x = maxX
		*dx = -*dx
	}
	if c.x < 0 {
		c.x = 0
		*dx = -*dx
	}
}

func (c *critter) bounceY(lo, hi int, dy *int) {
	if c.y > hi {
		c.y = hi
		*dy = -*dy
	}
	if c.y < lo {
		c.y = lo
		*dy = -*dy
	}
}

// NewMonster builds a freshly spawned monster of kind k.
func NewMonster(w *World, k Kind) Monster {
	switch k {
	case KindBee:
		return newBee(w)
	case KindBeetle:
		return newBeetle(w)
	case KindDragonfly:
		return newDragonfly(w)
	case KindEarwig:
		return newEarwig(w)
	case KindInchworm:
		return newInchworm(w)
	case KindMosquito:
		return newMosquito(w)
	case KindSpider:
		return newSpider(w)
	}
	panic(fmt.Sprintf("millipede: unknown monster kind %d", int(k)))
}
