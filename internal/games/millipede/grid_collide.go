package millipede

import "github.com/vovakirdan/tui-millipede/internal/core"

// MillipedeCollision reports whether the cell under pixel (x, y) blocks a
// millipede segment. Positions above or below the field never block.
func (g *Grid) MillipedeCollision(x, y int) bool {
	if y < 0 || y > g.geo.ArenaH-1 {
		return false
	}
	col, row := g.geo.CellOf(x, y)
	return g.Cell(col, row).Solid()
}

// PlayerCollision reports whether r overlaps any solid cell among the
// 2x2 block anchored at its top-left cell.
func (g *Grid) PlayerCollision(r core.Rect) bool {
	c0, r0 := g.geo.CellOf(r.X, r.Y)
	for row := r0; row <= r0+1; row++ {
		for col := c0; col <= c0+1; col++ {
			if !g.Cell(col, row).Solid() {
				continue
			}
			if r.Intersects(g.geo.CellRect(col, row)) {
				return true
			}
		}
	}
	return false
}

// MissileHit describes the outcome of a missile striking the field.
type MissileHit struct {
	Hit       bool
	Destroyed bool // a mushroom reached zero hit points
	Col, Row  int
}

// MissileCollision tests the missile against the cell it is in and its
// right neighbour. Whichever is nearer the missile's centre is tested
// first, and the first solid overlap stops the missile. Flowers absorb the
// missile without damage.
func (g *Grid) MissileCollision(r core.Rect) MissileHit {
	cell := g.geo.Cell
	if r.Y < -cell {
		return MissileHit{}
	}
	row := 0
	if r.Y > cell-1 {
		row = r.Y / cell
	}
	col := core.FloorDiv(r.X, cell)

	order := [2]int{col, col + 1}
	half := r.W/2 + 1
	if col*cell+cell-r.X < half {
		order = [2]int{col + 1, col}
	}

	for _, c := range order {
		if !g.inBounds(c, row) {
			continue
		}
		i := g.index(c, row)
		m := g.at(i)
		if !m.Solid() || !r.Intersects(g.geo.CellRect(c, row)) {
			continue
		}
		g.markDamaged(i)
		hit := MissileHit{Hit: true, Col: c, Row: row}
		if !m.Flower {
			m.HP--
			if m.HP == 0 {
				m.Poisoned = false
				hit.Destroyed = true
				g.countPlayerArea(row, -1)
			}
		}
		return hit
	}
	return MissileHit{}
}
