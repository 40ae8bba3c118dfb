package config

import "fmt"

// knownKinds lists the monster names accepted in swarm stages.
var knownKinds = map[string]bool{
	"bee":       true,
	"dragonfly": true,
	"mosquito":  true,
}

// Validate checks the geometry and tables for consistency.
// Every error wraps ErrInvalidConfig.
func (c MillipedeConfig) Validate() error {
	a := c.Arena
	if a.Cell <= 0 || a.Width <= 0 || a.Height <= 0 {
		return invalid("arena dimensions must be positive")
	}
	if a.Width%a.Cell != 0 || a.Height%a.Cell != 0 || a.PlayerBand%a.Cell != 0 {
		return invalid("arena %dx%d (band %d) is not a multiple of cell %d", a.Width, a.Height, a.PlayerBand, a.Cell)
	}
	if a.PlayerBand <= 0 || a.PlayerBand >= a.Height {
		return invalid("player band %d must be inside the arena", a.PlayerBand)
	}
	if c.Sprites.Segment.W != a.Cell || c.Sprites.Segment.H != a.Cell {
		return invalid("segment size %dx%d must equal cell %d", c.Sprites.Segment.W, c.Sprites.Segment.H, a.Cell)
	}
	if c.Sprites.Canister.W != 2*a.Cell || c.Sprites.Canister.H != a.Cell {
		return invalid("canister must span two cells")
	}
	if c.Sprites.Player.W <= 0 || c.Sprites.Player.H <= 0 || c.Sprites.Missile.W <= 0 || c.Sprites.Missile.H <= 0 {
		return invalid("player and missile sprites need a size")
	}

	g := c.Gameplay
	if g.SegmentStep <= 0 || a.Cell%g.SegmentStep != 0 || a.Cell/g.SegmentStep != g.MoveCount {
		return invalid("segment step %d x move count %d must cover one cell", g.SegmentStep, g.MoveCount)
	}
	if g.StartLives <= 0 || g.MaxSegments <= 0 || g.LifeBonus <= 0 || g.SpiderAttackEvery <= 0 {
		return invalid("lives, segments and bonus thresholds must be positive")
	}
	// each millipede of a level enters from its own column
	if cols := a.Width / a.Cell; g.MaxSegments > cols {
		return invalid("max segments %d exceeds the %d arena columns", g.MaxSegments, cols)
	}

	if len(c.Levels) == 0 {
		return invalid("at least one level table is required")
	}
	for i, lt := range c.Levels {
		if len(lt.Thresholds) != 7 {
			return invalid("level %d: want 7 thresholds, got %d", i, len(lt.Thresholds))
		}
		if len(lt.Caps) != 4 {
			return invalid("level %d: want 4 caps, got %d", i, len(lt.Caps))
		}
		for _, v := range lt.Thresholds {
			if v > 100 {
				return invalid("level %d: threshold %d above 100", i, v)
			}
		}
	}

	s := c.Swarm
	if s.Cycle <= 0 || s.Count < 0 {
		return invalid("swarm cycle must be positive")
	}
	for _, st := range s.Stages {
		if st.Position < 1 || st.Position > s.Cycle || len(st.Kinds) == 0 {
			return invalid("swarm stage at %d is out of cycle", st.Position)
		}
		for _, k := range st.Kinds {
			if !knownKinds[k] {
				return invalid("swarm stage at %d: unknown kind %q", st.Position, k)
			}
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...)
}
