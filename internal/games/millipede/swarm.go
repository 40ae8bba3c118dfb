package millipede

// Swarm is a timed wave stage launching a fixed number of fliers in
// round-robin order of its kinds.
type Swarm struct {
	Kinds    []Kind
	Left     int // monsters still to launch
	next     int
	launchAt int64
	points   int
}

// startSwarm begins a wave of the given kinds.
func (w *World) startSwarm(kinds []Kind) {
	w.swarm = &Swarm{
		Kinds:    kinds,
		Left:     w.cfg.Swarm.Count,
		launchAt: w.Now(),
		points:   w.cfg.Swarm.BonusStep,
	}
	w.cues.Play(CueSwarm)
	w.log.Debug("swarm stage", "level", w.level, "kinds", kinds)
}

// updateSwarm launches the next flier on cadence and ends the stage once
// everything is launched and the last kind in the list is gone. Birth and
// death follows every swarm.
func (w *World) updateSwarm() {
	s := w.swarm
	now := w.Now()
	if s.Left > 0 && now-s.launchAt > w.cfg.Timers.SwarmSpawn {
		w.spawn(s.Kinds[s.next])
		s.Left--
		s.launchAt = now
		if s.Left%10 == 0 {
			w.cues.Play(CueSwarm)
		}
		s.next = (s.next + 1) % len(s.Kinds)
	}

	last := s.Kinds[len(s.Kinds)-1]
	if s.Left <= 0 && w.Roster.Count(last) == 0 {
		w.endSwarm()
	}
}

func (w *World) endSwarm() {
	w.swarm = nil
	w.startBirthAndDeath()
}

// swarmScoreUp scores a swarm kill with the escalating wave bonus. A kill
// by a gas cloud pays triple without advancing the bonus.
func (w *World) swarmScoreUp(x, y int) {
	s := w.swarm
	bonusMax := w.cfg.Swarm.BonusMax
	saved := s.points
	if w.blasting {
		s.points = min(s.points*3, bonusMax)
	}

	w.award(s.points, x, y)
	s.points = min(s.points+w.cfg.Swarm.BonusStep, bonusMax)

	if w.blasting {
		s.points = saved
	}
}

func (w *World) startBirthAndDeath() {
	now := w.Now()
	w.birth = true
	w.birthAt = now
	w.birthLast = now
}

// updateBirthAndDeath runs automaton generations on cadence until the
// regrowth window closes.
func (w *World) updateBirthAndDeath() {
	now := w.Now()
	if now-w.birthAt > w.cfg.Timers.BirthDeath {
		w.birth = false
		return
	}
	if now-w.birthLast > w.cfg.Timers.BirthDeathStep {
		w.Grid.BirthAndDeath()
		w.birthLast = now
	}
}
