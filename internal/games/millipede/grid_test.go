package millipede

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-millipede/internal/config"
	"github.com/vovakirdan/tui-millipede/internal/core"
)

func testGeometry() Geometry {
	return NewGeometry(config.DefaultMillipedeConfig())
}

func newTestGrid(seed int64) (*Grid, *int64) {
	now := new(int64)
	g := NewGrid(testGeometry(), rand.New(rand.NewSource(seed)), func() int64 { return *now })
	return g, now
}

func TestGridPermutationStaysBijective(t *testing.T) {
	g, _ := newTestGrid(7)
	g.Populate(75)
	rng := rand.New(rand.NewSource(99))

	total := len(g.cells)
	for i := 0; i < 200; i++ {
		if rng.Intn(2) == 0 {
			g.RowUp()
		} else {
			g.RowDown()
		}
		if !g.permutationValid() {
			t.Fatalf("permutation broken after %d scrolls", i+1)
		}
		if len(g.cells) != total {
			t.Fatalf("cell count changed: %d vs %d", len(g.cells), total)
		}
	}
}

func TestGridRotateInPlace(t *testing.T) {
	g, _ := newTestGrid(3)
	n := len(g.idx)
	cols := g.geo.Cols

	tests := []struct {
		name string
		k    int
	}{
		{"one row down", cols},
		{"one row up", -cols},
		{"full turn", n},
		{"odd shift", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := append([]int(nil), g.idx...)
			g.rotate(tt.k)
			k := ((tt.k % n) + n) % n
			for i, p := range before {
				if got := g.idx[(i+k)%n]; got != p {
					t.Fatalf("idx[%d] = %d, want %d", (i+k)%n, got, p)
				}
			}
		})
	}

	allocs := testing.AllocsPerRun(50, func() {
		g.rotate(cols)
		g.rotate(-cols)
	})
	if allocs != 0 {
		t.Errorf("rotate allocated %.0f times per run, want 0", allocs)
	}
}

func TestGridRowDownMovesContent(t *testing.T) {
	g, _ := newTestGrid(1)
	if !g.AddMushroom(3, 5) {
		t.Fatal("AddMushroom failed on empty cell")
	}
	g.RowDown()
	if !g.Cell(3, 6).Mushroom() {
		t.Error("mushroom did not move down one row")
	}
	g.RowUp()
	if !g.Cell(3, 5).Mushroom() {
		t.Error("mushroom did not move back up")
	}
}

func TestGridRowUpClearsBottomAndWrapsTop(t *testing.T) {
	g, _ := newTestGrid(1)
	g.AddMushroom(4, 0)
	g.RowUp()
	bottom := g.geo.Rows - 1
	if g.Cell(4, bottom).Mushroom() {
		t.Error("wrapped top row should be cleared at the bottom")
	}
}

func TestGridDamagedShift(t *testing.T) {
	g, _ := newTestGrid(1)
	w := g.geo.Cols
	last := len(g.idx) - 1
	g.damaged = []int{0, 5, w + 2, last}

	g.RowDown()
	want := []int{w, w + 5, 2*w + 2}
	if !equalInts(g.Damaged(), want) {
		t.Errorf("after RowDown damaged = %v, want %v", g.Damaged(), want)
	}

	g.RowUp()
	g.RowUp()
	want = []int{2}
	if !equalInts(g.Damaged(), want) {
		t.Errorf("after RowUp x2 damaged = %v, want %v", g.Damaged(), want)
	}
}

func TestGridAddMushroomRejections(t *testing.T) {
	g, _ := newTestGrid(1)
	g.SetPlayer(func() core.Rect { return core.NewRect(120, 300, 12, 12) })

	tests := []struct {
		name     string
		col, row int
		want     bool
	}{
		{"empty cell", 1, 1, true},
		{"occupied", 1, 1, false},
		{"bottom row", 1, g.geo.Rows - 1, false},
		{"under player", 10, 25, false},
		{"out of range", -1, 3, false},
		{"canister", 20, 3, false},
	}
	g.AddCanister(20, 3)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.AddMushroom(tt.col, tt.row); got != tt.want {
				t.Errorf("AddMushroom(%d,%d) = %v, want %v", tt.col, tt.row, got, tt.want)
			}
		})
	}
}

func TestGridPlayerAreaCount(t *testing.T) {
	g, _ := newTestGrid(1)
	g.AddMushroom(0, 10)
	g.AddMushroom(0, 25)
	g.AddMushroom(1, 26)
	if got := g.PlayerAreaMushrooms(); got != 2 {
		t.Fatalf("PlayerAreaMushrooms = %d, want 2", got)
	}
	g.EatMushroom(0, 25)
	if got := g.PlayerAreaMushrooms(); got != 1 {
		t.Fatalf("after eat = %d, want 1", got)
	}
	g.MushroomToFlower(1, 26)
	if got := g.PlayerAreaMushrooms(); got != 0 {
		t.Fatalf("after flower = %d, want 0", got)
	}
}

func TestGridBirthAndDeathGlider(t *testing.T) {
	g, _ := newTestGrid(1)
	// .X.
	// ..X
	// XXX
	ox, oy := 5, 5
	for _, p := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		g.AddMushroom(ox+p[0], oy+p[1])
	}

	g.BirthAndDeath()

	// X.X
	// .XX
	// .X.  shifted one row down
	want := map[[2]int]bool{
		{0, 1}: true, {2, 1}: true,
		{1, 2}: true, {2, 2}: true,
		{1, 3}: true,
	}
	for dy := -1; dy <= 4; dy++ {
		for dx := -1; dx <= 3; dx++ {
			got := g.Cell(ox+dx, oy+dy).Mushroom()
			if got != want[[2]int{dx, dy}] {
				t.Errorf("cell (%d,%d) alive = %v, want %v", dx, dy, got, !got)
			}
		}
	}
}

func TestGridBirthAndDeathSkipsBottomRow(t *testing.T) {
	g, _ := newTestGrid(1)
	row := g.geo.Rows - 2
	g.AddMushroom(3, row)
	g.AddMushroom(4, row)
	g.AddMushroom(5, row)

	g.BirthAndDeath()

	if g.Cell(4, row+1).Mushroom() {
		t.Error("automaton must not grow into the reserved bottom row")
	}
	if !g.Cell(4, row-1).Mushroom() {
		t.Error("blinker should grow upward")
	}
}

func TestGridMissileCollision(t *testing.T) {
	tests := []struct {
		name    string
		x       int
		cells   [][2]int
		wantCol int
		wantHit bool
	}{
		{"left cell preferred", 24, [][2]int{{2, 5}, {3, 5}}, 2, true},
		{"right cell nearer", 32, [][2]int{{2, 5}, {3, 5}}, 3, true},
		{"falls through to other cell", 32, [][2]int{{2, 5}}, 2, true},
		{"nothing there", 24, nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGrid(1)
			for _, c := range tt.cells {
				g.AddMushroom(c[0], c[1])
			}
			hit := g.MissileCollision(core.NewRect(tt.x, 60, 9, 11))
			if hit.Hit != tt.wantHit {
				t.Fatalf("Hit = %v, want %v", hit.Hit, tt.wantHit)
			}
			if tt.wantHit && hit.Col != tt.wantCol {
				t.Errorf("Col = %d, want %d", hit.Col, tt.wantCol)
			}
		})
	}
}

func TestGridMissileDestroysAfterFourHits(t *testing.T) {
	g, _ := newTestGrid(1)
	g.AddMushroom(2, 5)
	r := core.NewRect(24, 60, 9, 11)
	for i := 1; i <= MushroomHP; i++ {
		hit := g.MissileCollision(r)
		if !hit.Hit {
			t.Fatalf("shot %d missed", i)
		}
		if hit.Destroyed != (i == MushroomHP) {
			t.Fatalf("shot %d Destroyed = %v", i, hit.Destroyed)
		}
	}
	if g.MissileCollision(r).Hit {
		t.Error("destroyed mushroom still blocks")
	}
	if len(g.Damaged()) != 1 {
		t.Errorf("damaged list = %v, want one entry", g.Damaged())
	}
}

func TestGridFlowerAbsorbsMissile(t *testing.T) {
	g, now := newTestGrid(1)
	g.SetLimits(5, 10000)
	g.AddMushroom(2, 5)
	g.MushroomToFlower(2, 5)

	r := core.NewRect(24, 60, 9, 11)
	for range 10 {
		if !g.MissileCollision(r).Hit {
			t.Fatal("flower should absorb every missile")
		}
	}

	*now = 10001
	g.WiltFlowers()
	if g.Cell(2, 5).Flower {
		t.Error("flower should wilt after its lifetime")
	}
}

func TestGridRestoreMushroom(t *testing.T) {
	g, _ := newTestGrid(1)
	g.AddMushroom(2, 5)
	g.MissileCollision(core.NewRect(24, 60, 9, 11))
	g.PoisonMushroom(2, 5)
	g.AddMushroom(7, 7)
	g.MushroomToFlower(7, 7)

	for {
		i, ok := g.PopDamaged()
		if !ok {
			break
		}
		if !g.RestoreMushroom(i) {
			t.Errorf("RestoreMushroom(%d) = false", i)
		}
	}
	if c := g.Cell(2, 5); c.HP != MushroomHP || c.Poisoned {
		t.Errorf("damaged mushroom not restored: %+v", c)
	}
	if c := g.Cell(7, 7); !c.Mushroom() || c.Flower {
		t.Errorf("flower not restored: %+v", c)
	}
	if g.RestoreMushroom(g.index(0, 0)) {
		t.Error("restoring an empty cell should report false")
	}
}

func TestGridCanisterTrigger(t *testing.T) {
	g, now := newTestGrid(1)
	g.AddCanister(4, 4)
	if !g.HasCanister(4, 4) || !g.HasCanister(3, 4) {
		t.Fatal("canister should occupy two cells")
	}
	if !g.TriggerCanister(core.NewRect(50, 50, 9, 11)) {
		t.Fatal("missile over canister should trigger it")
	}
	if g.Cell(4, 4).Canister || g.Cell(5, 4).Canister {
		t.Error("triggered canister should leave the grid")
	}
	if len(g.ActiveCanisters()) != 1 {
		t.Fatal("cloud should be active")
	}
	blast := g.ActiveCanisters()[0].Blast()
	if blast != core.NewRect(36, 42, 48, 24) {
		t.Errorf("Blast = %+v", blast)
	}

	*now = 3001
	g.UpdateCanisters(3000, 300)
	if len(g.Canisters()) != 0 {
		t.Error("expired cloud should be removed")
	}
}

func TestGridCanisterLeavesWithScroll(t *testing.T) {
	g, _ := newTestGrid(1)
	g.maxCanisters = 0
	g.AddCanister(4, g.geo.PlayerRow-1)
	g.RowDown()
	if len(g.Canisters()) != 0 {
		t.Error("canister entering the player band should be removed")
	}
	for col := range g.geo.Cols {
		if g.Cell(col, g.geo.PlayerRow).Canister {
			t.Fatalf("canister cell left in player band at col %d", col)
		}
	}
}

func TestGridClearPlayerArea(t *testing.T) {
	g, _ := newTestGrid(1)
	g.AddMushroom(14, 27)
	g.AddMushroom(15, 27)
	g.SetPlayer(func() core.Rect { return core.NewRect(174, 324, 12, 12) })
	g.ClearPlayerArea()
	if g.Cell(14, 27).Mushroom() || g.Cell(15, 27).Mushroom() {
		t.Error("cells under the player should be cleared")
	}
	if g.PlayerAreaMushrooms() != 0 {
		t.Errorf("PlayerAreaMushrooms = %d, want 0", g.PlayerAreaMushrooms())
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
