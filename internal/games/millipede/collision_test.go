package millipede

import "testing"

func (c *critter) moveTo(x, y int) {
	c.x, c.y = x, y
}

// clearField starts a game and empties it so a test can lay out its own
// scene.
func clearField(t *testing.T, seed int64) *testWorld {
	t.Helper()
	tw := newTestWorld(t, seed)
	tw.start(t)
	tw.Millipedes = nil
	tw.Roster.Clear()
	tw.Grid.Reset()
	tw.Score.Score = 0
	return tw
}

func placeMonster(tw *testWorld, k Kind, x, y int) Monster {
	m := tw.spawn(k)
	m.(interface{ moveTo(x, y int) }).moveTo(x, y)
	return m
}

// shoot puts the missile at (x, y) and resolves one tick of its flight.
func shoot(tw *testWorld, x, y int) {
	tw.Missile.X, tw.Missile.Y = x, y
	tw.Missile.Active = true
	tw.advanceMissile()
}

func TestMissilePriority(t *testing.T) {
	// the missile at (121, 121) sits inside cell (10, 10)
	const x, y = 120, 120

	tests := []struct {
		name  string
		setup func(tw *testWorld)
		check func(t *testing.T, tw *testWorld)
	}{
		{
			name: "canister before millipede",
			setup: func(tw *testWorld) {
				tw.Grid.AddCanister(10, 10)
				tw.addMillipede(1, x, y)
			},
			check: func(t *testing.T, tw *testWorld) {
				if len(tw.Grid.ActiveCanisters()) != 1 {
					t.Error("canister not triggered")
				}
				if len(tw.Millipedes) != 1 || tw.Millipedes[0].Len() != 1 {
					t.Error("millipede hurt behind a canister")
				}
				if !tw.sink.has(CueCanister) {
					t.Error("canister cue not played")
				}
			},
		},
		{
			name: "mushroom before millipede",
			setup: func(tw *testWorld) {
				tw.Grid.AddMushroom(10, 10)
				tw.addMillipede(1, x, y)
			},
			check: func(t *testing.T, tw *testWorld) {
				if hp := tw.Grid.Cell(10, 10).HP; hp != MushroomHP-1 {
					t.Errorf("mushroom hp = %d, want %d", hp, MushroomHP-1)
				}
				if len(tw.Millipedes) != 1 {
					t.Error("millipede hurt behind a mushroom")
				}
			},
		},
		{
			name: "millipede before monster",
			setup: func(tw *testWorld) {
				tw.addMillipede(1, x, y)
				placeMonster(tw, KindDragonfly, x, y)
			},
			check: func(t *testing.T, tw *testWorld) {
				if len(tw.Millipedes) != 0 {
					t.Error("millipede survived")
				}
				if tw.Score.Score != HeadPoints {
					t.Errorf("score = %d, want %d", tw.Score.Score, HeadPoints)
				}
				if !tw.Grid.Cell(10, 10).Mushroom() {
					t.Error("no mushroom where the head fell")
				}
				if tw.Roster.Count(KindDragonfly) != 1 {
					t.Error("monster hit behind a millipede")
				}
			},
		},
		{
			name: "monster alone",
			setup: func(tw *testWorld) {
				placeMonster(tw, KindDragonfly, x, y)
			},
			check: func(t *testing.T, tw *testWorld) {
				if tw.Roster.Count(KindDragonfly) != 0 {
					t.Error("monster survived")
				}
				if !tw.sink.has(CueHit) {
					t.Error("hit cue not played")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := clearField(t, 21)
			tt.setup(tw)
			shoot(tw, x+1, y+1)
			if tw.Missile.Active {
				t.Error("missile still flying after a hit")
			}
			tt.check(t, tw)
		})
	}
}

func TestMissileClimbsThroughEmptyField(t *testing.T) {
	tw := clearField(t, 21)
	shoot(tw, 121, 121)
	if !tw.Missile.Active {
		t.Fatal("missile stopped in an empty field")
	}
	if want := 121 - tw.cfg.Gameplay.MissileSpeed; tw.Missile.Y != want {
		t.Errorf("missile y = %d, want %d", tw.Missile.Y, want)
	}
}

func TestMonsterOnHit(t *testing.T) {
	tests := []struct {
		kind   Kind
		x, y   int
		shots  int
		points int
		check  func(t *testing.T, tw *testWorld)
	}{
		{kind: KindBee, x: 120, y: 120, shots: 2, points: BeePoints},
		{kind: KindDragonfly, x: 120, y: 120, shots: 1, points: DragonflyPoints},
		{kind: KindEarwig, x: 120, y: 120, shots: 1, points: EarwigPoints},
		{
			kind: KindInchworm, x: 120, y: 120, shots: 1, points: InchwormPoints,
			check: func(t *testing.T, tw *testWorld) {
				if !tw.SlowTime() {
					t.Error("slow time not started")
				}
			},
		},
		{
			kind: KindBeetle, x: 120, y: 120, shots: 1, points: BeetlePoints,
			check: func(t *testing.T, tw *testWorld) {
				if !tw.Grid.Cell(3, 6).Mushroom() {
					t.Error("field did not scroll down")
				}
			},
		},
		{
			kind: KindMosquito, x: 120, y: 120, shots: 1, points: MosquitoPoints,
			check: func(t *testing.T, tw *testWorld) {
				if !tw.Grid.Cell(3, 4).Mushroom() {
					t.Error("field did not scroll up")
				}
			},
		},
		// one row above the player
		{kind: KindSpider, x: 120, y: 336, shots: 1, points: SpiderPointsPointBlank},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tw := clearField(t, 33)
			tw.Grid.AddMushroom(3, 5)
			m := placeMonster(tw, tt.kind, tt.x, tt.y)

			for i := range tt.shots {
				if !m.Alive() {
					t.Fatalf("died after %d shots, want %d", i, tt.shots)
				}
				shoot(tw, tt.x+1, tt.y+1)
			}
			if m.Alive() {
				t.Fatalf("alive after %d shots", tt.shots)
			}
			if tw.Score.Score != tt.points {
				t.Errorf("score = %d, want %d", tw.Score.Score, tt.points)
			}
			if tt.check != nil {
				tt.check(t, tw)
			}
		})
	}
}

func TestEarwigPoisonsMushrooms(t *testing.T) {
	tw := clearField(t, 5)
	tw.Grid.AddMushroom(10, 3)
	e := placeMonster(tw, KindEarwig, 120, 36)

	e.Update(tw.World)
	if !tw.Grid.Cell(10, 3).Poisoned {
		t.Error("mushroom under the earwig not poisoned")
	}
}

func TestBeetleTurnsMushroomsToFlowers(t *testing.T) {
	tw := clearField(t, 5)
	tw.Grid.AddMushroom(10, 10)
	b := placeMonster(tw, KindBeetle, 120, 120)

	for range 3 {
		tw.clock.Advance()
	}
	tw.World.clock.Sample()
	b.Update(tw.World)

	if !tw.Grid.Cell(10, 10).Flower {
		t.Error("mushroom under the beetle did not become a flower")
	}
}

func TestCanisterBlast(t *testing.T) {
	tw := clearField(t, 9)
	tw.Grid.AddCanister(10, 10)
	if !tw.Grid.TriggerCanister(tw.Grid.Canisters()[0].Rect()) {
		t.Fatal("canister did not trigger")
	}

	tw.addMillipede(1, 132, 120)
	near := placeMonster(tw, KindDragonfly, 144, 126)
	far := placeMonster(tw, KindDragonfly, 240, 48)

	tw.resolveBlasts()

	if len(tw.Millipedes) != 0 {
		t.Error("millipede survived the gas")
	}
	if near.Alive() {
		t.Error("monster inside the cloud survived")
	}
	if !far.Alive() {
		t.Error("monster outside the cloud was killed")
	}
	if want := HeadPoints + DragonflyPoints; tw.Score.Score != want {
		t.Errorf("score = %d, want %d", tw.Score.Score, want)
	}
}
