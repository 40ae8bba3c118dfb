package millipede

import (
	"math/rand"
	"testing"
)

func TestCheckBonuses(t *testing.T) {
	tests := []struct {
		name        string
		from, add   int
		wantLife    bool
		wantSpiders bool
	}{
		{name: "below threshold", from: 100, add: 500},
		{name: "crosses life bonus", from: 19990, add: 20, wantLife: true},
		{name: "lands exactly on bonus", from: 19900, add: 100, wantLife: true},
		{name: "crosses both", from: 99990, add: 20, wantLife: true, wantSpiders: true},
		{name: "large jump grants one life", from: 19990, add: 40010, wantLife: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScoreTracker(360, 1000, 250)
			s.Reset(3)
			s.Score = tt.from
			s.BeginTick()
			s.Add(tt.add)

			life, spiders := s.CheckBonuses(20000, 100000)
			if life != tt.wantLife || spiders != tt.wantSpiders {
				t.Errorf("bonuses = %v, %v; want %v, %v", life, spiders, tt.wantLife, tt.wantSpiders)
			}
			wantLives := 3
			if tt.wantLife {
				wantLives = 4
			}
			if s.Lives != wantLives {
				t.Errorf("lives = %d, want %d", s.Lives, wantLives)
			}

			// a second check in the same tick grants nothing more
			if life, _ := s.CheckBonuses(20000, 100000); life {
				t.Error("bonus granted twice")
			}
		})
	}
}

func TestPopupsStayInArena(t *testing.T) {
	s := NewScoreTracker(360, 1000, 250)
	s.AddPopup(-20, 10, 100, 0)
	s.AddPopup(355, 10, 1000, 0)

	if s.Popups[0].X != 0 {
		t.Errorf("left popup x = %d, want 0", s.Popups[0].X)
	}
	if got := s.Popups[1].X + 4*popupGlyphW; got != 360 {
		t.Errorf("right popup ends at %d, want 360", got)
	}
}

func TestEffectsExpire(t *testing.T) {
	s := NewScoreTracker(360, 1000, 250)
	rng := rand.New(rand.NewSource(1))
	s.AddPopup(10, 10, 100, 0)
	s.AddParticles(10, 10, 0, rng)

	n := len(s.Particles)
	if n < 1 || n > maxParticles {
		t.Fatalf("particles = %d, want 1..%d", n, maxParticles)
	}

	s.Update(200)
	if len(s.Particles) != n || len(s.Popups) != 1 {
		t.Errorf("effects expired early: %d particles %d popups", len(s.Particles), len(s.Popups))
	}
	s.Update(250)
	if len(s.Particles) != 0 {
		t.Errorf("particles = %d after ttl, want 0", len(s.Particles))
	}
	s.Update(1000)
	if len(s.Popups) != 0 {
		t.Errorf("popups = %d after ttl, want 0", len(s.Popups))
	}
}
