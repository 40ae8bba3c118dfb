package millipede

import "github.com/vovakirdan/tui-millipede/internal/core"

// Canister is an insecticide canister embedded in the grid. It spans two
// cells while dormant and releases a gas cloud twice its size once shot.
type Canister struct {
	X, Y   int
	W, H   int
	Active bool
	Start  int64
	Dead   bool
	Frame  int

	frameAt int64
}

// Rect returns the dormant hit rectangle.
func (c *Canister) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.W, c.H)
}

// Blast returns the gas cloud rectangle.
func (c *Canister) Blast() core.Rect {
	return core.NewRect(c.X-c.W/2, c.Y-c.H/2, c.W*2, c.H*2)
}

// HasCanister reports whether either cell at (col, row) or (col+1, row)
// holds a canister.
func (g *Grid) HasCanister(col, row int) bool {
	return g.Cell(col, row).Canister || g.Cell(col+1, row).Canister
}

// AddCanister places a dormant canister at (col, row), overwriting both
// cells it covers.
func (g *Grid) AddCanister(col, row int) {
	i := g.index(col, row)
	g.resetCell(i)
	g.resetCell(i + 1)
	g.at(i).Canister = true
	g.at(i + 1).Canister = true
	g.canisters = append(g.canisters, &Canister{
		X:       col * g.geo.Cell,
		Y:       row * g.geo.Cell,
		W:       g.geo.Canister.W,
		H:       g.geo.Canister.H,
		Start:   g.now(),
		frameAt: g.now(),
	})
}

func (g *Grid) removeCanisterCells(c *Canister) {
	col, row := g.geo.CellOf(c.X, c.Y)
	if !g.inBounds(col, row) {
		return
	}
	i := g.index(col, row)
	g.resetCell(i)
	if col+1 < g.geo.Cols {
		g.resetCell(i + 1)
	}
}

// Canisters returns every canister still on the field, dormant or active.
func (g *Grid) Canisters() []*Canister {
	return g.canisters
}

// ActiveCanisters returns the canisters whose gas cloud is live.
func (g *Grid) ActiveCanisters() []*Canister {
	var out []*Canister
	for _, c := range g.canisters {
		if c.Active && !c.Dead {
			out = append(out, c)
		}
	}
	return out
}

// TriggerCanister activates the first dormant canister overlapping r.
// The canister leaves the grid but its cloud lingers until it expires.
func (g *Grid) TriggerCanister(r core.Rect) bool {
	for _, c := range g.canisters {
		if c.Active || c.Dead || !c.Rect().Intersects(r) {
			continue
		}
		c.Active = true
		c.Start = g.now()
		c.Frame = 0
		g.removeCanisterCells(c)
		return true
	}
	return false
}

// UpdateCanisters advances canister animation and expires finished clouds.
func (g *Grid) UpdateCanisters(ttl, frameDelay int64) {
	now := g.now()
	for _, c := range g.canisters {
		if now-c.frameAt > frameDelay {
			c.frameAt = now
			if c.Active {
				c.Frame = (c.Frame + 1) % 4
			} else {
				c.Frame = g.rng.Intn(4)
			}
		}
		if c.Active && now-c.Start > ttl {
			c.Dead = true
		}
	}
	g.sweepCanisters()
}

// KillActiveCanisters ends every live gas cloud.
func (g *Grid) KillActiveCanisters() {
	for _, c := range g.canisters {
		if c.Active {
			c.Dead = true
		}
	}
	g.sweepCanisters()
}

// shiftCanisters moves dormant canisters one row and drops those that leave
// the field or enter the player band.
func (g *Grid) shiftCanisters(dir int) {
	for _, c := range g.canisters {
		if c.Active {
			continue
		}
		c.Y += dir * g.geo.Cell
		if c.Y < 0 || c.Y >= g.geo.BandTop {
			c.Dead = true
		}
	}
	g.sweepCanisters()
}

func (g *Grid) sweepCanisters() {
	kept := g.canisters[:0]
	for _, c := range g.canisters {
		if !c.Dead {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(g.canisters); i++ {
		g.canisters[i] = nil
	}
	g.canisters = kept
}
