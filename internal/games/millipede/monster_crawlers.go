package millipede

import "github.com/vovakirdan/tui-millipede/internal/core"

// Point values of the crawlers.
const (
	EarwigPoints   = 1000
	InchwormPoints = 100
	BeetlePoints   = 300
)

// Earwig crosses the upper field poisoning every mushroom it touches.
type Earwig struct {
	critter
	dx int
}

func newEarwig(w *World) *Earwig {
	e := &Earwig{}
	x, dx := w.geo.ArenaW, -1
	if w.rollPercent() < 50 {
		x, dx = -w.geo.Monster.W, 1
	}
	cell := w.geo.Cell
	y := (w.rng.Intn(w.geo.BandTop) / cell) * cell
	e.critter = newCritter(w, x, y, 2)
	e.dx = dx
	return e
}

func (e *Earwig) Kind() Kind { return KindEarwig }

// Left reports whether the earwig walks right to left.
func (e *Earwig) Left() bool { return e.dx < 0 }

func (e *Earwig) Update(w *World) {
	e.animate(w)
	w.Grid.PoisonMushroom(e.cell(w))
	e.x += e.dx
	if e.x < -e.w || e.x >= w.geo.ArenaW+e.w {
		e.kill()
	}
}

func (e *Earwig) OnHit(w *World) {
	e.kill()
	w.award(EarwigPoints, e.x, e.y)
}

// Inchworm crawls across a row; shooting it slows time.
type Inchworm struct {
	critter
	dx int
}

func newInchworm(w *World) *Inchworm {
	i := &Inchworm{}
	y := w.rng.Intn(w.geo.PlayerRow) * w.geo.Cell
	x, dx := -w.geo.Monster.W, 1
	if w.rollPercent() < 50 {
		x, dx = w.geo.ArenaW, -1
	}
	i.critter = newCritter(w, x, y, 2)
	i.dx = dx
	return i
}

func (i *Inchworm) Kind() Kind { return KindInchworm }

func (i *Inchworm) Update(w *World) {
	i.animate(w)
	i.x += i.dx
	if i.x < -i.w || i.x >= w.geo.ArenaW {
		i.kill()
	}
}

func (i *Inchworm) OnHit(w *World) {
	i.kill()
	w.award(InchwormPoints, i.x, i.y)
	w.StartSlowTime()
}

type beetlePhase int

const (
	beetleDropX beetlePhase = iota
	beetleDropY
	beetleToDestX
	beetleToDestY
	beetleHome
)

const (
	beetleStepDelay  = 25
	beetlePauseDelay = 175
)

// Beetle enters along the player band, drops to the floor, walks to a
// column, climbs to a row and leaves, turning mushrooms into flowers.
// Shooting it scrolls the field down.
type Beetle struct {
	critter
	dx, dy       int
	dropX        int
	destX, destY int
	phase        beetlePhase
	moveAt       int64
	paused       bool
	pauseAt      int64
	ticks        int
}

func newBeetle(w *World) *Beetle {
	geo := w.geo
	b := &Beetle{dy: -2}

	x := geo.ArenaW
	if w.rng.Intn(10)%2 == 1 {
		x = -geo.Monster.W
	}
	y := geo.BandTop + geo.Cell*w.rng.Intn((geo.ArenaH-geo.Monster.H-geo.BandTop)/geo.Cell)

	b.destX = w.rng.Intn(geo.Cols-1) * geo.Cell
	b.destY = (geo.Rows/2 + w.rng.Intn(geo.PlayerRow-geo.Rows/2)) * geo.Cell
	if b.destX == 0 {
		b.destX = geo.Monster.W
	}
	if b.destX == geo.ArenaW-geo.Monster.W {
		b.destX = geo.ArenaW - 2*geo.Monster.W
	}

	if x < 0 {
		b.dx = 2
		b.dropX = 0
	} else {
		b.dx = -2
		b.dropX = geo.ArenaW - geo.Monster.W
	}

	b.critter = newCritter(w, x, y, 2)
	b.moveAt = w.Now()
	return b
}

func (b *Beetle) Kind() Kind { return KindBeetle }

func (b *Beetle) Update(w *World) {
	b.animate(w)
	now := w.Now()

	if b.paused {
		if now-b.pauseAt <= beetlePauseDelay {
			return
		}
		b.paused = false
	}
	if now-b.moveAt < beetleStepDelay {
		return
	}
	b.moveAt = now

	w.Grid.MushroomToFlower(b.cell(w))

	switch b.phase {
	case beetleDropX:
		b.x += b.dx
		if b.x == b.dropX {
			b.phase = beetleDropY
		}
	case beetleDropY:
		b.y -= b.dy
		if b.y == w.geo.ArenaH-b.h {
			b.phase = beetleToDestX
		}
	case beetleToDestX:
		b.x += b.dx
		if b.x == b.destX {
			b.phase = beetleToDestY
		}
	case beetleToDestY:
		b.y += b.dy
		if b.y == b.destY {
			b.phase = beetleHome
			b.dx = -b.dx
		}
	case beetleHome:
		b.x += b.dx
		if b.x < -b.w || b.x > w.geo.ArenaW-1 {
			b.kill()
		}
	}

	// pause every cell while climbing or dropping
	if b.phase == beetleDropY || b.phase == beetleToDestY {
		b.ticks++
		if b.ticks%b.h == 0 {
			b.ticks = 0
			b.paused = true
			b.pauseAt = now
		}
	}
}

func (b *Beetle) OnHit(w *World) {
	b.kill()
	w.award(BeetlePoints, b.x, b.y)
	w.Grid.RowDown()
}

type spiderPhase int

const (
	spiderEnter spiderPhase = iota
	spiderZigzag
	spiderVertical
	spiderLeave
)

const spiderTTL = 5000

// Spider score bands by rows between the spider and the player.
const (
	SpiderPointsPointBlank = 1200
	SpiderPointsClose      = 900
	SpiderPointsMid        = 600
	SpiderPointsFar        = 300
)

// Spider bounces around the player band in zig-zag and vertical bursts,
// eating mushrooms, and leaves after its lifetime.
type Spider struct {
	critter
	dx, dy  int
	phase   spiderPhase
	spawnAt int64
}

func newSpider(w *World) *Spider {
	geo := w.geo
	s := &Spider{}
	x, dx := geo.ArenaW+geo.Monster.W, -2
	if w.rng.Intn(10) < 5 {
		x, dx = -geo.Monster.W, 2
	}
	y := geo.BandTop + w.rng.Intn(geo.ArenaH-geo.Monster.H-geo.BandTop)
	s.critter = newCritter(w, x, y, 3)
	s.dx = dx
	s.spawnAt = w.Now()
	return s
}

func (s *Spider) Kind() Kind { return KindSpider }

func (s *Spider) Update(w *World) {
	s.animate(w)
	geo := w.geo
	now := w.Now()
	floor := geo.ArenaH - s.h

	if (s.phase == spiderZigzag || s.phase == spiderVertical) && now-s.spawnAt > spiderTTL {
		s.phase = spiderLeave
	}

	switch s.phase {
	case spiderEnter:
		s.x += s.dx
		if (s.dx < 0 && s.x < geo.ArenaW-s.w) || (s.dx > 0 && s.x > -1) {
			s.phase = spiderZigzag
			s.dy = 2
		}
	case spiderLeave:
		s.x += s.dx
		s.y += s.dy
		s.bounceY(geo.BandTop, floor, &s.dy)
		if s.x < -s.w || s.x > geo.ArenaW+s.w {
			s.kill()
			if w.Roster.Count(KindSpider) == 0 {
				w.cues.Stop(CueSpider)
			}
			return
		}
	case spiderZigzag:
		n := w.rng.Intn(100)
		if n < 2 {
			s.dx = -s.dx
		} else if n < 5 {
			s.phase = spiderVertical
		}
		s.y += s.dy
		s.x += s.dx
		s.bounceX(w, &s.dx)
		s.bounceY(geo.BandTop, floor, &s.dy)
	case spiderVertical:
		n := w.rng.Intn(100)
		s.y += s.dy
		s.bounceY(geo.BandTop-geo.ScoreH, floor, &s.dy)
		if n < 2 {
			s.phase = spiderZigzag
		}
	}

	if w.rng.Intn(100) < 5 {
		w.Grid.EatMushroom(s.cell(w))
	}
}

// Points returns the score for shooting a spider at this position while the
// player stands at playerY.
func (s *Spider) Points(playerY, cell int) int {
	d := core.FloorDiv(playerY, cell) - core.FloorDiv(s.y, cell)
	switch {
	case d == 1:
		return SpiderPointsPointBlank
	case d <= 3:
		return SpiderPointsClose
	case d <= 4:
		return SpiderPointsMid
	default:
		return SpiderPointsFar
	}
}

func (s *Spider) OnHit(w *World) {
	s.kill()
	w.award(s.Points(w.Player.Y, w.geo.Cell), s.x, s.y)
	if w.Roster.Count(KindSpider) == 0 {
		w.cues.Stop(CueSpider)
	}
}
