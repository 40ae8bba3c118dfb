package millipede

// Point values of the fliers.
const (
	BeePoints       = 200
	DragonflyPoints = 200
	MosquitoPoints  = 400
)

// Bee dives straight down seeding mushrooms and takes two hits.
type Bee struct {
	critter
	hp int
	dy int
}

func newBee(w *World) *Bee {
	return &Bee{critter: newCritter(w, snapColumn(w), 0, 2), hp: 2, dy: 4}
}

func (b *Bee) Kind() Kind { return KindBee }

func (b *Bee) Update(w *World) {
	b.animate(w)

	col, row := b.cell(w)
	n := w.rng.Intn(100)
	if b.y < w.geo.ArenaH {
		switch {
		case w.SwarmActive():
			if n < 1 {
				w.Grid.AddMushroom(col, row)
			}
		case row < w.geo.PlayerRow:
			if n < 2 {
				w.Grid.AddMushroom(col, row)
			}
		default:
			if n < 10 {
				w.Grid.AddMushroom(col, row)
			}
		}
	}

	b.y += b.dy
	if b.y > w.geo.ScreenH() {
		b.kill()
	}
}

func (b *Bee) OnHit(w *World) {
	b.hp--
	if b.hp > 0 {
		b.dy = 5
		return
	}
	b.kill()
	if w.SwarmActive() {
		w.swarmScoreUp(b.x, b.y)
		return
	}
	w.award(BeePoints, b.x, b.y)
}

// Dragonfly zig-zags down the field bouncing off the side walls.
type Dragonfly struct {
	critter
	dx, dy int
}

func newDragonfly(w *World) *Dragonfly {
	d := &Dragonfly{critter: newCritter(w, snapColumn(w), 0, 3), dx: 4, dy: 2}
	if w.rng.Intn(10) < 5 {
		d.dx = -d.dx
	}
	return d
}

func (d *Dragonfly) Kind() Kind { return KindDragonfly }

func (d *Dragonfly) Update(w *World) {
	d.animate(w)

	n := w.rng.Intn(30)
	col, row := d.cell(w)
	// dragonflies only seed inside the player band
	if d.y < w.geo.ArenaH && row >= w.geo.PlayerRow && (n == 5 || n == 23) {
		w.Grid.AddMushroom(col, row)
	}

	d.y += d.dy
	d.x += d.dx
	d.bounceX(w, &d.dx)
	if d.y > w.geo.ArenaH-d.h {
		d.kill()
	}
}

func (d *Dragonfly) OnHit(w *World) {
	d.kill()
	if w.SwarmActive() {
		w.swarmScoreUp(d.x, d.y)
		return
	}
	w.award(DragonflyPoints, d.x, d.y)
}

// Mosquito flies diagonally and scrolls the field up when shot.
type Mosquito struct {
	critter
	dx, dy int
}

func newMosquito(w *World) *Mosquito {
	m := &Mosquito{critter: newCritter(w, snapColumn(w), 0, 3), dx: 2, dy: 4}
	if w.rng.Intn(10) < 5 {
		m.dx = -2
	}
	return m
}

func (m *Mosquito) Kind() Kind { return KindMosquito }

func (m *Mosquito) Update(w *World) {
	m.animate(w)

	if w.rng.Intn(30) == 5 {
		m.dx = -m.dx
	}
	m.y += m.dy
	m.x += m.dx
	m.bounceX(w, &m.dx)
	if m.y > w.geo.ArenaH-m.h {
		m.kill()
	}
}

func (m *Mosquito) OnHit(w *World) {
	m.kill()
	if w.SwarmActive() {
		w.swarmScoreUp(m.x, m.y)
		return
	}
	w.award(MosquitoPoints, m.x, m.y)
	w.Grid.RowUp()
}
