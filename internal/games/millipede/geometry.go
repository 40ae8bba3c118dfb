package millipede

import (
	"github.com/vovakirdan/tui-millipede/internal/config"
	"github.com/vovakirdan/tui-millipede/internal/core"
)

// Geometry holds every arena constant derived from the config's sizing contract.
// All coordinates are pixels with the origin at the arena's top-left corner.
type Geometry struct {
	ArenaW, ArenaH int
	BandH          int // height of the player band
	ScoreH         int
	Cell           int

	Cols, Rows int
	PlayerRow  int // first grid row of the player band
	BandTop    int // pixel y of PlayerRow

	Player, Missile, Segment, Monster, Canister config.Size

	PlayerStartX, PlayerStartY int
	PlayerMaxX                 int
	PlayerMinY, PlayerMaxY     int

	SegmentStartX, SegmentStartY int
	Floor                        int // lowest y a segment can occupy
	Ceiling                      int // highest y a segment re-dives from after touching the floor
}

// NewGeometry computes the arena constants from a validated config.
func NewGeometry(cfg config.MillipedeConfig) Geometry {
	a := cfg.Arena
	s := cfg.Sprites
	g := Geometry{
		ArenaW:   a.Width,
		ArenaH:   a.Height,
		BandH:    a.PlayerBand,
		ScoreH:   a.ScoreBar,
		Cell:     a.Cell,
		Cols:     a.Width / a.Cell,
		Rows:     a.Height / a.Cell,
		Player:   s.Player,
		Missile:  s.Missile,
		Segment:  s.Segment,
		Monster:  s.Monster,
		Canister: s.Canister,
	}
	g.BandTop = a.Height - a.PlayerBand
	g.PlayerRow = g.BandTop / a.Cell

	g.PlayerStartX = a.Width/2 - s.Player.W/2
	g.PlayerStartY = a.Height - s.Player.H
	g.PlayerMaxX = a.Width - s.Player.W - 1
	g.PlayerMinY = g.BandTop
	g.PlayerMaxY = a.Height - s.Player.H

	g.SegmentStartX = a.Width / 2
	g.SegmentStartY = -s.Segment.H
	g.Floor = a.Height - s.Segment.H
	g.Ceiling = g.BandTop + s.Segment.H
	return g
}

// Cells returns the number of grid cells.
func (g Geometry) Cells() int {
	return g.Cols * g.Rows
}

// CellOf converts a pixel position to grid coordinates, rounding toward
// negative infinity so positions left of or above the arena stay out of range.
func (g Geometry) CellOf(x, y int) (col, row int) {
	return core.FloorDiv(x, g.Cell), core.FloorDiv(y, g.Cell)
}

// CellRect returns the pixel rectangle of a grid cell.
func (g Geometry) CellRect(col, row int) core.Rect {
	return core.NewRect(col*g.Cell, row*g.Cell, g.Cell, g.Cell)
}

// ScreenH is the full playfield height including the score bar.
func (g Geometry) ScreenH() int {
	return g.ArenaH + g.ScoreH
}
