package millipede

import "github.com/vovakirdan/tui-millipede/internal/core"

// capped lists the kinds bound by a level's population caps, in the order
// of LevelTable.Caps.
var capped = [...]Kind{KindBeetle, KindSpider, KindEarwig, KindInchworm}

// dispenseOrder is the order pending spawns are released each cadence tick.
var dispenseOrder = [...]Kind{
	KindBee, KindBeetle, KindSpider, KindEarwig, KindInchworm, KindDragonfly, KindMosquito,
}

// EightSpiders is the size of the spider attack.
const EightSpiders = 8

// Roster owns every live monster, indexed per kind and as one collection,
// plus the pending spawn queue.
type Roster struct {
	byKind [numKinds][]Monster
	all    []Monster

	queue        [numKinds]int
	queueAt      int64
	eightSpiders bool
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{}
}

// Add registers a spawned monster.
func (r *Roster) Add(m Monster) {
	k := m.Kind()
	r.byKind[k] = append(r.byKind[k], m)
	r.all = append(r.all, m)
}

// All returns every monster, dead ones included until the next Sweep.
func (r *Roster) All() []Monster {
	return r.all
}

// Count returns the number of live monsters of kind k.
func (r *Roster) Count(k Kind) int {
	n := 0
	for _, m := range r.byKind[k] {
		if m.Alive() {
			n++
		}
	}
	return n
}

// Len returns the number of live monsters.
func (r *Roster) Len() int {
	n := 0
	for _, m := range r.all {
		if m.Alive() {
			n++
		}
	}
	return n
}

// Overlapping returns the live monsters intersecting rect.
func (r *Roster) Overlapping(rect core.Rect) []Monster {
	var out []Monster
	for _, m := range r.all {
		if m.Alive() && m.Bounds().Intersects(rect) {
			out = append(out, m)
		}
	}
	return out
}

// Update moves every live monster.
func (r *Roster) Update(w *World) {
	for i := 0; i < len(r.all); i++ {
		if m := r.all[i]; m.Alive() {
			m.Update(w)
		}
	}
	r.Sweep()
}

// Sweep drops dead monsters from every collection.
func (r *Roster) Sweep() {
	r.all = sweep(r.all)
	for k := range r.byKind {
		r.byKind[k] = sweep(r.byKind[k])
	}
}

func sweep(ms []Monster) []Monster {
	kept := ms[:0]
	for _, m := range ms {
		if m.Alive() {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(ms); i++ {
		ms[i] = nil
	}
	return kept
}

// Clear removes every monster.
func (r *Roster) Clear() {
	r.all = nil
	for k := range r.byKind {
		r.byKind[k] = nil
	}
}

// Enqueue adds n pending spawns of kind k.
func (r *Roster) Enqueue(k Kind, n int) {
	r.queue[k] += n
}

// Queued returns the pending spawns of kind k.
func (r *Roster) Queued(k Kind) int {
	return r.queue[k]
}

// ResetQueue drops every pending spawn and restarts the cadence at now.
func (r *Roster) ResetQueue(now int64) {
	r.queue = [numKinds]int{}
	r.queueAt = now
	r.eightSpiders = false
}

// ArmSpiderAttack makes the next dispense release eight spiders at once,
// consuming up to eight queued spiders.
func (r *Roster) ArmSpiderAttack() {
	r.eightSpiders = true
}

// capFor returns the population cap for k, or -1 if k is uncapped.
func capFor(k Kind, caps []int) int {
	for i, c := range capped {
		if c == k {
			if i < len(caps) {
				return caps[i]
			}
			return 0
		}
	}
	return -1
}

// Dispense releases pending spawns once per interval: at most one of each
// kind, and a capped kind only while below its cap. An armed spider attack
// bypasses the spider cap and releases eight spiders. The returned kinds are
// in spawn order; the caller builds and adds them.
func (r *Roster) Dispense(now, interval int64, caps []int) []Kind {
	if now-r.queueAt <= interval {
		return nil
	}
	r.queueAt = now

	var out []Kind
	for _, k := range dispenseOrder {
		if k == KindSpider && r.eightSpiders {
			r.eightSpiders = false
			r.queue[k] = max(0, r.queue[k]-EightSpiders)
			for range EightSpiders {
				out = append(out, KindSpider)
			}
			continue
		}
		if r.queue[k] == 0 {
			continue
		}
		if c := capFor(k, caps); c >= 0 && r.Count(k) >= c {
			continue
		}
		r.queue[k]--
		out = append(out, k)
	}
	return out
}

// eventOrder is the order kinds are tested against a level's thresholds.
var eventOrder = [...]Kind{
	KindBeetle, KindSpider, KindBee, KindInchworm, KindMosquito, KindDragonfly, KindEarwig,
}

// EventOdds returns the percent chance RollEvent picks each kind for a
// level's thresholds. The remainder up to 100 is "no event".
func EventOdds(thresholds []int) map[Kind]int {
	odds := make(map[Kind]int, len(eventOrder))
	covered := 0
	for i, k := range eventOrder {
		if i >= len(thresholds) {
			break
		}
		t := min(thresholds[i], 100)
		if t > covered {
			odds[k] = t - covered
			covered = t
		}
	}
	return odds
}

// EventKinds returns the kinds random events can spawn, in roll order.
func EventKinds() []Kind {
	return eventOrder[:]
}

// CappedKinds returns the kinds bound by LevelTable.Caps, in cap order.
func CappedKinds() []Kind {
	return capped[:]
}

// RollEvent maps a roll in 1..100 to the first kind whose cumulative
// threshold it does not exceed. Disabled kinds carry a negative threshold.
func RollEvent(p int, thresholds []int) (Kind, bool) {
	for i, k := range eventOrder {
		if i >= len(thresholds) {
			break
		}
		if p <= thresholds[i] {
			return k, true
		}
	}
	return 0, false
}
