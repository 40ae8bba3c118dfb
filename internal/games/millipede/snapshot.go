package millipede

import "github.com/vovakirdan/tui-millipede/internal/core"

// EntityKind tags a snapshot entity.
type EntityKind string

const (
	EntityPlayer   EntityKind = "player"
	EntityMissile  EntityKind = "missile"
	EntityHead     EntityKind = "head"
	EntitySegment  EntityKind = "segment"
	EntityCanister EntityKind = "canister"
	EntityBlast    EntityKind = "blast"
)

// Entity is one drawable object. Monsters use their Kind name.
type Entity struct {
	Kind  EntityKind
	Rect  core.Rect
	Frame int
}

// Snapshot is a read-only copy of the simulation for tests, replays and
// renderers that do not want to reach into the World.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick      uint64
	Now       int64
	State     State
	Level     int
	Score     int
	Lives     int
	Palette   int
	Swarm     bool
	Ninth     bool
	Slow      bool
	Segments  int
	Mushrooms int

	// Cells in logical row-major order, one int per cell:
	// hp | poisoned<<3 | flower<<4 | canister<<5
	Cells    []int
	Entities []Entity
}

// Snapshot captures the world.
func (w *World) Snapshot() Snapshot {
	geo := w.geo
	snap := Snapshot{
		Tick:     w.ticks,
		Now:      w.Now(),
		State:    w.state,
		Level:    w.level,
		Score:    w.Score.Score,
		Lives:    w.Score.Lives,
		Palette:  w.Grid.Palette(),
		Swarm:    w.swarm != nil,
		Ninth:    w.ninth,
		Slow:     w.slow,
		Segments: w.Segments(),
		Cells:    make([]int, 0, geo.Cells()),
	}

	for row := range geo.Rows {
		for col := range geo.Cols {
			c := w.Grid.Cell(col, row)
			v := c.HP
			if c.Poisoned {
				v |= 1 << 3
			}
			if c.Flower {
				v |= 1 << 4
			}
			if c.Canister {
				v |= 1 << 5
			}
			if c.Mushroom() {
				snap.Mushrooms++
			}
			snap.Cells = append(snap.Cells, v)
		}
	}

	snap.Entities = append(snap.Entities, Entity{Kind: EntityPlayer, Rect: w.Player.Rect()})
	if w.Missile.Active {
		snap.Entities = append(snap.Entities, Entity{Kind: EntityMissile, Rect: w.Missile.Rect()})
	}
	for _, m := range w.Millipedes {
		for _, s := range m.Body {
			k := EntitySegment
			if s.Head {
				k = EntityHead
			}
			r := core.NewRect(s.X, s.Y, geo.Segment.W, geo.Segment.H)
			snap.Entities = append(snap.Entities, Entity{Kind: k, Rect: r, Frame: m.Frame})
		}
	}
	for _, m := range w.Roster.All() {
		if m.Alive() {
			snap.Entities = append(snap.Entities, Entity{Kind: EntityKind(m.Kind().String()), Rect: m.Bounds(), Frame: m.Frame()})
		}
	}
	for _, c := range w.Grid.Canisters() {
		switch {
		case c.Dead:
		case c.Active:
			snap.Entities = append(snap.Entities, Entity{Kind: EntityBlast, Rect: c.Blast(), Frame: c.Frame})
		default:
			snap.Entities = append(snap.Entities, Entity{Kind: EntityCanister, Rect: c.Rect()})
		}
	}
	return snap
}

// Snapshot returns the game's world snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.world.Snapshot()
}

// Hash computes a fingerprint of the snapshot for quick determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Now)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Palette)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Segments) //#nosec G115 -- hash computation

	for _, v := range snap.Cells {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, e := range snap.Entities {
		for _, b := range []byte(e.Kind) {
			h = h*31 + uint64(b)
		}
		h = h*31 + uint64(e.Rect.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Rect.Y) //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Frame)  //#nosec G115 -- hash computation
	}
	return h
}
