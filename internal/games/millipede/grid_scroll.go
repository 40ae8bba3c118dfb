package millipede

import "slices"

// RowUp scrolls the field one row up. The top row wraps to the bottom and
// is cleared; dormant canisters follow the field.
func (g *Grid) RowUp() {
	w := g.geo.Cols
	g.rotate(-w)

	n := len(g.idx)
	for i := n - w; i < n; i++ {
		g.resetCell(i)
	}

	g.shiftCanisters(-1)
	g.ClearPlayerArea()
	g.recountPlayerArea()
	g.shiftDamaged(-w)
}

// RowDown scrolls the field one row down and brings a fresh row in at the
// top with a random number of mushrooms and, while the canister population
// allows, possibly a new canister.
func (g *Grid) RowDown() {
	w := g.geo.Cols
	g.rotate(w)

	for i := range w {
		g.resetCell(i)
	}

	g.shiftCanisters(1)
	g.ClearPlayerArea()
	g.recountPlayerArea()

	// canisters never enter the player band
	start := g.geo.PlayerRow * w
	for i := start; i < start+w; i++ {
		if g.at(i).Canister {
			g.resetCell(i)
		}
	}

	g.spawnRow()
	g.shiftDamaged(w)
}

func (g *Grid) spawnRow() {
	n := g.rng.Intn(g.geo.Cols)
	for range n {
		g.AddMushroom(g.rng.Intn(g.geo.Cols), 0)
	}

	live := len(g.canisters)
	if live >= g.maxCanisters {
		return
	}
	chance := (g.maxCanisters - 1 - live) * 25
	if g.rng.Intn(100) <= chance {
		g.AddCanister(g.rng.Intn(g.geo.Cols-1), 0)
	}
}

// rotate shifts the logical-to-physical permutation by k positions in place.
// A positive k moves content toward higher logical indices.
func (g *Grid) rotate(k int) {
	n := len(g.idx)
	k = ((k % n) + n) % n
	if k == 0 {
		return
	}
	slices.Reverse(g.idx)
	slices.Reverse(g.idx[:k])
	slices.Reverse(g.idx[k:])
}

// permutationValid reports whether the index table maps every logical
// position to a distinct physical slot.
func (g *Grid) permutationValid() bool {
	if len(g.idx) != len(g.cells) {
		return false
	}
	seen := make([]bool, len(g.cells))
	for _, p := range g.idx {
		if p < 0 || p >= len(seen) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
