package millipede

// Cue names an audio event. The simulation only emits cues; playback
// belongs to whatever CueSink is attached.
type Cue string

const (
	CueExplosion Cue = "explosion"
	CueCanister  Cue = "canister"
	CueMissile   Cue = "missile"
	CueHit       Cue = "hit"
	CueMillipede Cue = "millipede"
	CueSwarm     Cue = "swarm"
	CueSpider    Cue = "spider"
	CueExtraLife Cue = "extra_life"
	CueRestore   Cue = "restore"
)

// Cues lists every cue the simulation can emit.
var Cues = []Cue{
	CueExplosion, CueCanister, CueMissile, CueHit, CueMillipede,
	CueSwarm, CueSpider, CueExtraLife, CueRestore,
}

// CueSink receives fire-and-forget audio triggers.
type CueSink interface {
	Play(c Cue)
	Loop(c Cue)
	Stop(c Cue)
	StopAll()
}

type nopSink struct{}

func (nopSink) Play(Cue) {}
func (nopSink) Loop(Cue) {}
func (nopSink) Stop(Cue) {}
func (nopSink) StopAll() {}
