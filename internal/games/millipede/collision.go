package millipede

import "github.com/vovakirdan/tui-millipede/internal/core"

// Millipede point values.
const (
	HeadPoints     = 100
	BodyPoints     = 10
	MushroomPoints = 1
)

// resolveBlasts lets every live gas cloud strike the millipedes and then
// every overlapping monster.
func (w *World) resolveBlasts() {
	w.blasting = true
	defer func() { w.blasting = false }()

	for _, c := range w.Grid.ActiveCanisters() {
		blast := c.Blast()
		// children appended by a split are struck by the same cloud
		for i := 0; i < len(w.Millipedes); i++ {
			w.strikeMillipede(w.Millipedes[i], blast)
		}
		w.sweepMillipedes()
		for _, m := range w.Roster.Overlapping(blast) {
			m.OnHit(w)
		}
	}
	w.Roster.Sweep()
}

// strikeMillipede applies a hit on one millipede: a mushroom grows where the
// segment was, points are awarded and any split-off tail joins the field.
func (w *World) strikeMillipede(m *Millipede, r core.Rect) bool {
	res := m.Hit(r)
	if !res.Hit {
		return false
	}
	w.stopNinth()
	w.Grid.AddMushroom(w.geo.CellOf(res.X, res.Y))
	if res.Head {
		w.award(HeadPoints, res.X, res.Y)
	} else {
		w.Score.Add(BodyPoints)
	}
	if res.Child != nil {
		w.Millipedes = append(w.Millipedes, res.Child)
	}
	return true
}

// advanceMissile resolves the missile in priority order: canisters, then
// mushrooms, then millipedes, then monsters. The first kind struck stops
// it; otherwise it climbs one step.
func (w *World) advanceMissile() {
	ms := w.Missile
	if !ms.Active {
		return
	}
	r := ms.Rect()
	now := w.Now()

	if w.Grid.TriggerCanister(r) {
		ms.Active = false
		w.stopNinth()
		w.cues.Play(CueCanister)
		w.Score.AddParticles(ms.X, ms.Y, now, w.rng)
		return
	}

	if hit := w.Grid.MissileCollision(r); hit.Hit {
		ms.Active = false
		if hit.Destroyed {
			w.Score.Add(MushroomPoints)
		}
		w.Score.AddParticles(ms.X, ms.Y, now, w.rng)
		return
	}

	for _, m := range w.Millipedes {
		if w.strikeMillipede(m, r) {
			ms.Active = false
			w.sweepMillipedes()
			w.Score.AddParticles(ms.X, ms.Y, now, w.rng)
			return
		}
	}

	if hits := w.Roster.Overlapping(r); len(hits) > 0 {
		ms.Active = false
		for _, m := range hits {
			m.OnHit(w)
			w.Score.AddParticles(ms.X, ms.Y, now, w.rng)
		}
		w.Roster.Sweep()
		w.cues.Play(CueHit)
		return
	}

	ms.Advance()
}

// playerStruck reports whether a millipede segment or monster touches the
// player.
func (w *World) playerStruck() bool {
	r := w.Player.Rect()
	for _, m := range w.Millipedes {
		for _, s := range m.Body {
			if core.NewRect(s.X, s.Y, w.geo.Segment.W, w.geo.Segment.H).Intersects(r) {
				return true
			}
		}
	}
	return len(w.Roster.Overlapping(r)) > 0
}

// killPlayer resets the player after a fatal touch and clears the band
// around its start position.
func (w *World) killPlayer() {
	w.Player.Reset()
	w.cues.StopAll()
	w.cues.Play(CueExplosion)
	w.Grid.ClearPlayerArea()
	w.playerDead = true
	w.stopNinth()
}
