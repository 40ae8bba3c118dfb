package millipede

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-millipede/internal/core"
)

// MushroomHP is the hit points of a fresh mushroom.
const MushroomHP = 4

// Palettes is the number of field colour schemes cycled on level up.
const Palettes = 7

// Cell is one position of the arena grid.
// A cell never holds a mushroom and a flower at once, and a canister cell
// holds neither.
type Cell struct {
	HP           int
	Poisoned     bool
	Flower       bool
	Canister     bool
	FlowerExpiry int64 // time after which the flower wilts
}

// Mushroom reports whether the cell holds a live mushroom.
func (c Cell) Mushroom() bool {
	return c.HP > 0
}

// Solid reports whether the cell blocks movement.
func (c Cell) Solid() bool {
	return c.HP > 0 || c.Flower
}

// Grid is the destructible mushroom field.
//
// Cells live in a fixed physical array. A permutation maps every logical
// row-major position to its physical slot, so scrolling a row is a rotation
// of the permutation and never copies cell data.
type Grid struct {
	geo   Geometry
	rng   *rand.Rand
	now   func() int64
	cells []Cell
	idx   []int

	// player supplies the player's current rectangle.
	player func() core.Rect

	canisters    []*Canister
	maxCanisters int

	playerAreaMushrooms int
	damaged             []int
	palette             int
	flowerWilt          int64
}

// NewGrid creates an empty grid.
func NewGrid(geo Geometry, rng *rand.Rand, now func() int64) *Grid {
	n := geo.Cells()
	g := &Grid{
		geo:          geo,
		rng:          rng,
		now:          now,
		cells:        make([]Cell, n),
		idx:          make([]int, n),
		player:       func() core.Rect { return core.Rect{} },
		maxCanisters: 5,
		flowerWilt:   10000,
	}
	for i := range g.idx {
		g.idx[i] = i
	}
	return g
}

// SetPlayer installs the player rectangle source used by placement rules.
func (g *Grid) SetPlayer(f func() core.Rect) {
	g.player = f
}

// SetLimits configures the canister population cap and flower lifetime.
func (g *Grid) SetLimits(maxCanisters int, flowerWilt int64) {
	g.maxCanisters = maxCanisters
	g.flowerWilt = flowerWilt
}

func (g *Grid) index(col, row int) int {
	return row*g.geo.Cols + col
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.geo.Cols && row >= 0 && row < g.geo.Rows
}

// at returns the cell stored at logical index i.
// An index outside the grid is a broken invariant, not a policy rejection.
func (g *Grid) at(i int) *Cell {
	if i < 0 || i >= len(g.idx) {
		panic(fmt.Sprintf("millipede: grid index %d out of range [0, %d)", i, len(g.idx)))
	}
	return &g.cells[g.idx[i]]
}

// Cell returns a copy of the cell at grid coordinates.
// Out-of-range coordinates return an empty cell.
func (g *Grid) Cell(col, row int) Cell {
	if !g.inBounds(col, row) {
		return Cell{}
	}
	return *g.at(g.index(col, row))
}

func (g *Grid) resetCell(i int) {
	*g.at(i) = Cell{}
}

// Reset clears every cell and removes all canisters.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Cell{}
	}
	for i := range g.idx {
		g.idx[i] = i
	}
	g.canisters = nil
	g.damaged = nil
	g.playerAreaMushrooms = 0
	g.palette = g.rng.Intn(Palettes)
}

// Populate scatters n mushrooms above the reserved bottom row, then places
// the initial canisters.
func (g *Grid) Populate(n int) {
	for range n {
		col := g.rng.Intn(g.geo.Cols)
		row := g.rng.Intn(g.geo.Rows - 1)
		c := g.at(g.index(col, row))
		if c.HP == 0 && !c.Canister {
			*c = Cell{HP: MushroomHP}
			g.countPlayerArea(row, 1)
		}
	}

	for range g.maxCanisters {
		for {
			col := g.rng.Intn(g.geo.Cols - 1)
			row := g.rng.Intn(g.geo.PlayerRow - 1)
			if !g.HasCanister(col, row) {
				g.AddCanister(col, row)
				break
			}
		}
	}
}

// AddMushroom places a full-strength mushroom at grid coordinates.
// Placement is refused on canisters, under the player, in the reserved
// bottom row, and on existing mushrooms.
func (g *Grid) AddMushroom(col, row int) bool {
	if !g.inBounds(col, row) {
		return false
	}
	if row == g.geo.Rows-1 {
		return false
	}
	return g.addAt(g.index(col, row))
}

// addAt is AddMushroom by logical index without the bottom-row rule.
func (g *Grid) addAt(i int) bool {
	c := g.at(i)
	if c.Canister {
		return false
	}
	col, row := i%g.geo.Cols, i/g.geo.Cols
	if g.player().Intersects(g.geo.CellRect(col, row)) {
		return false
	}
	if c.HP != 0 {
		return false
	}
	*c = Cell{HP: MushroomHP}
	g.countPlayerArea(row, 1)
	return true
}

// EatMushroom clears a mushroom or flower.
func (g *Grid) EatMushroom(col, row int) bool {
	if !g.inBounds(col, row) {
		return false
	}
	i := g.index(col, row)
	c := g.at(i)
	if !c.Solid() {
		return false
	}
	if c.Mushroom() {
		g.countPlayerArea(row, -1)
	}
	g.resetCell(i)
	return true
}

// PoisonMushroom marks a mushroom poisoned and records it as damaged.
func (g *Grid) PoisonMushroom(col, row int) bool {
	if !g.inBounds(col, row) {
		return false
	}
	i := g.index(col, row)
	c := g.at(i)
	if !c.Mushroom() {
		return false
	}
	c.Poisoned = true
	g.markDamaged(i)
	return true
}

// MushroomToFlower turns a mushroom into a timed flower.
// Flowers never appear in the reserved bottom row.
func (g *Grid) MushroomToFlower(col, row int) bool {
	if row == g.geo.Rows-1 || !g.inBounds(col, row) {
		return false
	}
	i := g.index(col, row)
	c := g.at(i)
	if !c.Mushroom() {
		return false
	}
	*c = Cell{Flower: true, FlowerExpiry: g.now() + g.flowerWilt}
	g.countPlayerArea(row, -1)
	g.ClearPlayerArea()
	g.markDamaged(i)
	return true
}

// IsPoisoned reports whether the cell under pixel (x, y) is poisoned.
func (g *Grid) IsPoisoned(x, y int) bool {
	col, row := g.geo.CellOf(x, y)
	return g.Cell(col, row).Poisoned
}

// WiltFlowers resets flowers older than the flower lifetime.
func (g *Grid) WiltFlowers() {
	now := g.now()
	for i := range g.idx {
		c := g.at(i)
		if c.Flower && now > c.FlowerExpiry {
			g.resetCell(i)
		}
	}
}

// RestoreMushroom turns a flower back into a mushroom or heals a damaged
// mushroom. It reports whether anything was restored.
func (g *Grid) RestoreMushroom(i int) bool {
	c := g.at(i)
	switch {
	case c.Flower:
		g.resetCell(i)
		g.AddMushroom(i%g.geo.Cols, i/g.geo.Cols)
		g.recountPlayerArea()
		return true
	case c.Mushroom():
		c.HP = MushroomHP
		c.Poisoned = false
		return true
	}
	return false
}

// ClearPlayerArea empties the reserved bottom row and any cell overlapping
// the player.
func (g *Grid) ClearPlayerArea() {
	bottom := g.geo.Rows - 1
	for col := range g.geo.Cols {
		g.resetCell(g.index(col, bottom))
	}

	pr := g.player()
	if pr.W <= 0 || pr.H <= 0 {
		return
	}
	c0, r0 := g.geo.CellOf(pr.X, pr.Y)
	c1, r1 := g.geo.CellOf(pr.Right()-1, pr.Bottom()-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if !g.inBounds(col, row) {
				continue
			}
			i := g.index(col, row)
			c := g.at(i)
			if !c.Solid() || !pr.Intersects(g.geo.CellRect(col, row)) {
				continue
			}
			if c.Mushroom() {
				g.countPlayerArea(row, -1)
			}
			g.resetCell(i)
		}
	}
}

// PlayerAreaMushrooms returns the number of mushrooms inside the player band.
func (g *Grid) PlayerAreaMushrooms() int {
	return g.playerAreaMushrooms
}

func (g *Grid) countPlayerArea(row, delta int) {
	if row >= g.geo.PlayerRow {
		g.playerAreaMushrooms += delta
	}
}

func (g *Grid) recountPlayerArea() {
	n := 0
	for row := g.geo.PlayerRow; row < g.geo.Rows; row++ {
		for col := range g.geo.Cols {
			if g.at(g.index(col, row)).Mushroom() {
				n++
			}
		}
	}
	g.playerAreaMushrooms = n
}

func (g *Grid) markDamaged(i int) {
	for _, d := range g.damaged {
		if d == i {
			return
		}
	}
	g.damaged = append(g.damaged, i)
}

// Damaged returns the pending restoration list, oldest first.
func (g *Grid) Damaged() []int {
	return g.damaged
}

// PopDamaged removes and returns the most recently damaged index.
func (g *Grid) PopDamaged() (int, bool) {
	n := len(g.damaged)
	if n == 0 {
		return 0, false
	}
	i := g.damaged[n-1]
	g.damaged = g.damaged[:n-1]
	return i, true
}

// shiftDamaged moves every damaged index by delta and drops those that
// leave the grid.
func (g *Grid) shiftDamaged(delta int) {
	kept := g.damaged[:0]
	for _, i := range g.damaged {
		i += delta
		if i >= 0 && i < len(g.idx) {
			kept = append(kept, i)
		}
	}
	g.damaged = kept
}

// Palette returns the current field colour scheme.
func (g *Grid) Palette() int {
	return g.palette
}

// NextPalette advances the colour scheme.
func (g *Grid) NextPalette() {
	g.palette = (g.palette + 1) % Palettes
}
