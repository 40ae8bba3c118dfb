package millipede

import "fmt"

// State is a phase of the level director.
type State int

const (
	StateMainMenu State = iota
	StatePlaying
	StateLevelUp
	StateRepeat
	StateSwarm
	StatePaused
	StatePlayerDying
	StateGameOver
)

var stateNames = [...]string{
	StateMainMenu:    "main_menu",
	StatePlaying:     "playing",
	StateLevelUp:     "level_up",
	StateRepeat:      "repeat",
	StateSwarm:       "swarm",
	StatePaused:      "paused",
	StatePlayerDying: "player_dying",
	StateGameOver:    "game_over",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// inPlay reports whether the simulation is running in this state.
func (s State) inPlay() bool {
	switch s {
	case StatePlaying, StateLevelUp, StateRepeat, StateSwarm:
		return true
	}
	return false
}

// transitions lists the legal moves out of every state.
var transitions = map[State][]State{
	StateMainMenu:    {StatePlaying},
	StatePlaying:     {StateLevelUp, StateRepeat, StateSwarm, StatePaused, StatePlayerDying},
	StateLevelUp:     {StatePlaying, StateSwarm, StatePaused, StatePlayerDying},
	StateRepeat:      {StatePlaying, StatePaused, StatePlayerDying},
	StateSwarm:       {StatePlaying, StateLevelUp, StatePaused, StatePlayerDying},
	StatePaused:      {StatePlaying, StateLevelUp, StateRepeat, StateSwarm, StatePlayerDying},
	StatePlayerDying: {StatePlaying, StateLevelUp, StateRepeat, StatePaused, StateGameOver},
	StateGameOver:    {StateMainMenu},
}

// CanTransition reports whether the director may move from one state to
// another.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// director holds the level director's state.
type director struct {
	state    State
	paused   State // state to return to from Paused
	resume   State // state to return to once the player is restored
	level    int
	swarmPos int
	ticks    uint64
	prevFire bool

	swarm    *Swarm
	blasting bool

	slow     bool
	slowAt   int64
	slowLast int64

	ninth   bool
	ninthAt int64

	birth     bool
	birthAt   int64
	birthLast int64

	eventWait bool
	eventAt   int64

	levelWait bool
	levelAt   int64

	playerDead  bool
	restoreWait bool
	restoreAt   int64
	menuAt      int64
}

// State returns the director's current state.
func (w *World) State() State {
	return w.state
}

func (w *World) setState(to State) {
	from := w.state
	if from == to {
		return
	}
	if !CanTransition(from, to) {
		panic(fmt.Sprintf("millipede: illegal transition %s -> %s", from, to))
	}
	w.log.Debug("state", "from", from, "to", to, "level", w.level)
	w.state = to
}

// TogglePause enters or leaves Paused. Leaving restarts the clock origin so
// the paused span never counts toward any timer.
func (w *World) TogglePause() {
	switch {
	case w.state == StatePaused:
		w.clock.Resume()
		w.setState(w.paused)
		if len(w.Millipedes) > 0 {
			w.cues.Loop(CueMillipede)
		}
	case w.state.inPlay() || w.state == StatePlayerDying:
		w.paused = w.state
		w.clock.Pause()
		w.cues.StopAll()
		w.setState(StatePaused)
	}
}

// Tick advances the simulation by one frame.
func (w *World) Tick(in Input) {
	w.clock.Sample()
	w.ticks++
	// menus react to a fresh press only; held fire keeps auto-firing in play
	pressed := in.Fire && !w.prevFire
	w.prevFire = in.Fire

	switch w.state {
	case StateMainMenu:
		if pressed {
			w.startGame()
		}
	case StatePaused:
	case StatePlayerDying:
		w.tickDying()
	case StateGameOver:
		if pressed || w.Now()-w.menuAt > w.cfg.Timers.GameOver {
			w.setState(StateMainMenu)
		}
	default:
		w.tickPlay(in)
	}
}

// tickPlay is one frame of live play. The order of the steps is fixed.
func (w *World) tickPlay(in Input) {
	now := w.Now()
	w.Score.BeginTick()

	if w.swarm != nil {
		w.updateSwarm()
	}

	if w.ninth && now-w.ninthAt > w.cfg.Timers.NinthScroll {
		w.ninthAt = now
		w.Grid.RowDown()
	}

	// the millipede owns the field while a level change is pending
	if !w.levelWait {
		w.randomEvents()
		w.dispense()
	}

	if w.birth {
		w.updateBirthAndDeath()
	}
	w.Grid.WiltFlowers()

	w.Grid.UpdateCanisters(w.cfg.Timers.Canister, canisterFrameDelay)
	w.resolveBlasts()

	if w.slow {
		if now-w.slowAt > w.cfg.Timers.SlowTime {
			w.slow = false
		}
		if now-w.slowLast > w.cfg.Timers.SlowStep {
			w.moveCreatures()
			w.slowLast = now
		}
	} else {
		w.moveCreatures()
	}

	w.Score.Update(now)
	w.updatePlayer(in)
	w.advanceMissile()

	w.checkLevel()
	if w.state.inPlay() {
		w.checkBonuses()
	}
}

const canisterFrameDelay = 300

func (w *World) moveCreatures() {
	now := w.Now()
	for i := 0; i < len(w.Millipedes); i++ {
		m := w.Millipedes[i]
		m.Animate(now, w.cfg.Timers.Animation)
		if m.Move(w.Grid, w.rng) {
			w.spawnInPlayerArea()
		}
	}
	w.Roster.Update(w)
}

func (w *World) updatePlayer(in Input) {
	if !w.cfg.Debug.Invulnerable && w.playerStruck() {
		w.killPlayer()
		return
	}
	w.Player.Move(in, w.Grid)
	if in.Fire && w.Player.Fire(w.Now(), w.Missile) {
		w.cues.Play(CueMissile)
	}
	w.Player.Reload(w.Now())
}

// checkLevel handles player death, level clear and level repeat.
func (w *World) checkLevel() {
	now := w.Now()
	switch {
	case w.playerDead:
		w.Score.Lives--
		w.cues.Stop(CueMillipede)
		w.resume = StatePlaying
		if w.state == StateLevelUp {
			w.resume = StateLevelUp
		}
		if len(w.Millipedes) > 0 || w.state == StateRepeat {
			w.resume = StateRepeat
		}
		w.beginDying()

	case w.state == StateRepeat:
		if !w.levelWait {
			w.levelWait = true
			w.levelAt = now
		} else if now-w.levelAt > w.cfg.Timers.LevelUp {
			w.levelWait = false
			w.spawnMillipedes()
			w.setState(StatePlaying)
		}

	case w.swarm == nil && len(w.Millipedes) == 0:
		if w.state != StateLevelUp {
			w.cues.Stop(CueMillipede)
			w.levelWait = true
			w.levelAt = now
			w.setState(StateLevelUp)
		} else if now-w.levelAt > w.cfg.Timers.LevelUp {
			w.levelWait = false
			w.setState(StatePlaying)
			w.levelUp()
		}
	}
}

func (w *World) checkBonuses() {
	life, spiders := w.Score.CheckBonuses(w.cfg.Gameplay.LifeBonus, w.cfg.Gameplay.SpiderAttackEvery)
	if life {
		w.cues.Play(CueExtraLife)
		w.log.Debug("extra life", "score", w.Score.Score, "lives", w.Score.Lives)
	}
	if spiders {
		w.Roster.Enqueue(KindSpider, EightSpiders)
		w.Roster.ArmSpiderAttack()
		w.log.Debug("spider attack", "score", w.Score.Score)
	}
}

// startGame resets everything and drops the first millipede in from the
// top centre.
func (w *World) startGame() {
	w.clock.Reset()
	now := w.Now()
	w.Score.Reset(w.cfg.Gameplay.StartLives)
	w.level = 0
	w.swarmPos = 1
	w.swarm = nil
	w.birth = false
	w.ninth = false
	w.slow = false
	w.eventWait = false
	w.levelWait = false
	w.playerDead = false
	w.restoreWait = false
	w.Roster.Clear()
	w.Roster.ResetQueue(now)
	w.Grid.Reset()
	w.Grid.Populate(w.cfg.Gameplay.InitialMushrooms)

	w.levelReset()
	w.levelInit()

	w.addMillipede(w.cfg.Gameplay.MaxSegments, w.geo.SegmentStartX, w.geo.SegmentStartY)
	w.cues.Loop(CueMillipede)
	w.setState(StatePlaying)
	w.log.Info("game started", "lives", w.Score.Lives)
}

// levelReset clears every creature off the field.
func (w *World) levelReset() {
	w.Score.ClearPopups()
	w.Millipedes = nil
	w.Roster.Clear()
	w.Grid.KillActiveCanisters()
	w.Roster.ResetQueue(w.Now())
	w.slow = false
	w.playerDead = false
}

// levelInit puts the player back in play.
func (w *World) levelInit() {
	w.Player.Reset()
	w.Missile.Active = false
}

// levelUp advances the level and the swarm cycle, then either regrows the
// millipedes or launches a swarm stage.
func (w *World) levelUp() {
	w.level++
	w.swarmPos++
	if w.swarmPos > w.cfg.Swarm.Cycle {
		w.swarmPos = 1
	}

	switch w.swarmPos {
	case w.cfg.Swarm.NinthStart:
		w.ninth = true
		w.ninthAt = w.Now()
	case w.cfg.Swarm.NinthStop:
		w.ninth = false
	}

	if kinds, ok := w.stages[w.swarmPos]; ok && len(kinds) > 0 {
		w.startSwarm(kinds)
		w.setState(StateSwarm)
	} else {
		w.Grid.RowDown()
		w.spawnMillipedes()
	}

	w.slow = false
	w.Grid.NextPalette()
	w.log.Info("level up", "level", w.level, "cycle", w.swarmPos, "score", w.Score.Score)
}

// spawnMillipedes launches the level's millipedes from random columns. Each
// level trades one body segment for an extra lone head, cycling every
// MaxSegments levels.
func (w *World) spawnMillipedes() {
	maxSeg := w.cfg.Gameplay.MaxSegments
	cols := w.rng.Perm(w.geo.Cols)
	heads := w.level % maxSeg
	body := maxSeg - heads
	y := w.geo.SegmentStartY
	if body > 0 {
		w.addMillipede(body, cols[0]*w.geo.Cell, y)
	}
	for i := range heads {
		w.addMillipede(1, cols[i+1]*w.geo.Cell, y)
	}
	w.cues.Loop(CueMillipede)
}

// randomEvents keeps bees coming while the player band is bare and rolls
// the level's spawn table on cadence.
func (w *World) randomEvents() {
	if w.Grid.PlayerAreaMushrooms() <= 5 && w.Roster.Count(KindBee) == 0 && w.Roster.Queued(KindBee) == 0 {
		w.Roster.Enqueue(KindBee, 1+w.rng.Intn(5))
	}

	now := w.Now()
	if w.eventWait {
		interval := w.diff.Interval(w.cfg.Timers.RandomEvent, w.Score.Score, int(w.ticks))
		if now-w.eventAt > interval {
			w.eventWait = false
		}
		return
	}
	w.eventWait = true
	w.eventAt = now
	if k, ok := RollEvent(w.rollPercent(), w.levelTable().Thresholds); ok {
		w.Roster.Enqueue(k, 1)
	}
}

// dispense releases queued monsters within the level's caps.
func (w *World) dispense() {
	kinds := w.Roster.Dispense(w.Now(), w.cfg.Timers.SpawnQueue, w.levelTable().Caps)
	for _, k := range kinds {
		switch k {
		case KindSpider:
			if w.Roster.Count(KindSpider) == 0 {
				w.cues.Loop(CueSpider)
			}
		case KindBee, KindMosquito:
			w.cues.Play(CueSwarm)
		}
		w.spawn(k)
	}
}

// beginDying clears the level and starts restoring damaged mushrooms.
func (w *World) beginDying() {
	w.levelReset()
	w.restoreWait = false
	w.setState(StatePlayerDying)
	w.log.Info("player died", "lives", w.Score.Lives, "level", w.level)
}

// tickDying restores one damaged mushroom at a time on a short cadence,
// then resumes play or ends the game.
func (w *World) tickDying() {
	now := w.Now()
	if w.restoreWait {
		if now-w.restoreAt > w.cfg.Timers.Restore {
			w.restoreWait = false
		}
		return
	}
	if i, ok := w.Grid.PopDamaged(); ok {
		if w.Grid.RestoreMushroom(i) {
			w.cues.Play(CueRestore)
			w.restoreWait = true
			w.restoreAt = now
		}
		return
	}

	if w.Score.Lives <= 0 {
		w.menuAt = now
		w.setState(StateGameOver)
		w.log.Info("game over", "score", w.Score.Score, "level", w.level)
		return
	}

	w.levelInit()
	if w.swarm != nil {
		w.swarm = nil
		w.startBirthAndDeath()
	}
	if w.resume == StateRepeat {
		w.levelWait = false
	}
	w.setState(w.resume)
	if len(w.Millipedes) > 0 {
		w.cues.Loop(CueMillipede)
	}
}
