package millipede

import "github.com/vovakirdan/tui-millipede/internal/core"

// Input is the control vector sampled once per tick.
type Input struct {
	Left, Right, Up, Down, Fire bool
}

// Player is the shooter confined to the player band.
type Player struct {
	X, Y int
	W, H int

	geo       *Geometry
	speed     int
	reloading bool
	launchAt  int64
}

// NewPlayer places a player at its start position.
func NewPlayer(geo *Geometry, speed int) *Player {
	p := &Player{W: geo.Player.W, H: geo.Player.H, geo: geo, speed: speed}
	p.Reset()
	return p
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Reset returns the player to its start position.
func (p *Player) Reset() {
	p.X = p.geo.PlayerStartX
	p.Y = p.geo.PlayerStartY
	p.reloading = false
}

// Move steps the player one axis at a time, refusing any step into a
// mushroom, then clamps it to the player band.
func (p *Player) Move(in Input, g *Grid) {
	x, y := p.X, p.Y
	try := func(nx, ny int) bool {
		return !g.PlayerCollision(core.NewRect(nx, ny, p.W, p.H))
	}
	if in.Left && try(x-p.speed, y) {
		x -= p.speed
	}
	if in.Right && try(x+p.speed, y) {
		x += p.speed
	}
	if in.Up && try(x, y-p.speed) {
		y -= p.speed
	}
	if in.Down && try(x, y+p.speed) {
		y += p.speed
	}
	p.X = core.Clamp(x, 0, p.geo.PlayerMaxX)
	p.Y = core.Clamp(y, p.geo.PlayerMinY, p.geo.PlayerMaxY)
}

// Fire launches the missile unless the trigger is still recovering from the
// previous press. It reports whether a missile left the launcher.
func (p *Player) Fire(now int64, m *Missile) bool {
	launched := false
	if !p.reloading {
		launched = m.Launch(p.X, p.Y)
		p.reloading = true
		p.launchAt = now
	}
	return launched
}

// Reload clears the trigger once time has moved past the last press.
func (p *Player) Reload(now int64) {
	if p.reloading && now-p.launchAt > 0 {
		p.reloading = false
	}
}

// Missile is the player's single projectile.
type Missile struct {
	X, Y   int
	W, H   int
	Active bool
	speed  int
}

// NewMissile creates an idle missile.
func NewMissile(geo *Geometry, speed int) *Missile {
	return &Missile{W: geo.Missile.W, H: geo.Missile.H, speed: speed}
}

// Rect returns the missile's bounding box.
func (m *Missile) Rect() core.Rect {
	return core.NewRect(m.X, m.Y, m.W, m.H)
}

// Launch fires from a player at (x, y) if no missile is in flight.
func (m *Missile) Launch(x, y int) bool {
	if m.Active {
		return false
	}
	m.X = x + 1
	m.Y = y - m.H
	m.Active = true
	return true
}

// Advance moves the missile up and retires it above the field.
func (m *Missile) Advance() {
	m.Y -= m.speed
	if m.Y < -m.H {
		m.Active = false
	}
}
