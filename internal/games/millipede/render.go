package millipede

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-millipede/internal/core"
)

// Every grid cell is drawn two characters wide. When the terminal is shorter
// than the grid the rows are squeezed to fit.
const (
	charsPerCell = 2
	hudRows      = 1
	minViewRows  = 15
)

// mushroomGlyphs is indexed by remaining hit points.
var mushroomGlyphs = [MushroomHP + 1]rune{' ', '░', '▒', '▓', '█'}

// paletteColors is the mushroom colour of each field palette.
var paletteColors = [Palettes]core.Color{
	core.ColorGreen,
	core.ColorYellow,
	core.ColorCyan,
	core.ColorBrightRed,
	core.ColorBrightBlue,
	core.ColorOrange,
	core.ColorBrightMagenta,
}

type sprite struct {
	frames [2][2]rune
	color  core.Color
}

var monsterSprites = [numKinds]sprite{
	KindBee:       {[2][2]rune{{'b', 'z'}, {'B', 'z'}}, core.ColorBrightYellow},
	KindBeetle:    {[2][2]rune{{'(', ')'}, {'{', '}'}}, core.ColorBrightBlue},
	KindDragonfly: {[2][2]rune{{'>', '<'}, {'}', '{'}}, core.ColorBrightCyan},
	KindEarwig:    {[2][2]rune{{'<', '='}, {'=', '>'}}, core.ColorOrange},
	KindInchworm:  {[2][2]rune{{'~', '~'}, {'-', '~'}}, core.ColorBrightGreen},
	KindMosquito:  {[2][2]rune{{'v', 'v'}, {'V', 'V'}}, core.ColorWhite},
	KindSpider:    {[2][2]rune{{'/', '\\'}, {'\\', '/'}}, core.ColorMagenta},
}

// layout maps arena pixels to screen characters.
type layout struct {
	ox, oy int
	rows   int
	geo    Geometry
}

func (l layout) col(x int) int {
	return l.ox + core.FloorDiv(x*charsPerCell, l.geo.Cell)
}

func (l layout) row(y int) int {
	return l.oy + core.FloorDiv(y*l.rows, l.geo.ArenaH)
}

// minScreen returns the smallest terminal the arena fits in.
func (g *Game) minScreen() (w, h int) {
	geo := g.world.geo
	return geo.Cols*charsPerCell + 2, minViewRows + hudRows + 2
}

// Resize adopts new terminal dimensions without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.world != nil {
		g.checkSize()
	}
}

func (g *Game) checkSize() {
	w, h := g.minScreen()
	g.tooSmall = g.runtime.ScreenW < w || g.runtime.ScreenH < h
}

func (g *Game) layout(dst *core.Screen) layout {
	geo := g.world.geo
	rows := min(geo.Rows, dst.Height()-hudRows-2)
	return layout{
		ox:   (dst.Width() - geo.Cols*charsPerCell) / 2,
		oy:   hudRows + 1,
		rows: rows,
		geo:  geo,
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	if g.tooSmall {
		w, h := g.minScreen()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	l := g.layout(dst)
	w := g.world
	dst.DrawBox(core.NewRect(l.ox-1, l.oy-1, w.geo.Cols*charsPerCell+2, l.rows+2))
	g.renderHUD(dst)

	if w.State() == StateMainMenu {
		g.renderField(dst, l)
		g.renderOverlay(dst, "MILLIPEDE", "Press SPACE to start")
		return
	}

	g.renderField(dst, l)
	g.renderCanisters(dst, l)
	g.renderMillipedes(dst, l)
	g.renderMonsters(dst, l)
	g.renderPlayer(dst, l)
	g.renderEffects(dst, l)

	switch w.State() {
	case StatePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case StateGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", w.Score.Score))
	case StateLevelUp:
		g.renderOverlay(dst, fmt.Sprintf("Wave %d cleared", w.level+1), "Get ready")
	case StateSwarm:
		if s := w.swarm; s != nil && s.Left == w.cfg.Swarm.Count {
			g.renderOverlay(dst, "SWARM!", "")
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	hud := fmt.Sprintf(" Millipede  Score: %06d  Lives: %d  Wave: %d", w.Score.Score, w.Score.Lives, w.level+1)
	dst.DrawText(0, 0, hud)

	flags := ""
	if w.slow {
		flags += " SLOW"
	}
	if w.ninth {
		flags += " SCROLL"
	}
	if w.swarm != nil {
		flags += " SWARM"
	}
	if flags != "" {
		dst.DrawTextColor(len([]rune(hud))+1, 0, flags, core.ColorBrightYellow)
	}
}

func (g *Game) renderField(dst *core.Screen, l layout) {
	grid := g.world.Grid
	color := paletteColors[grid.Palette()%Palettes]
	cell := l.geo.Cell
	for row := range l.geo.Rows {
		for col := range l.geo.Cols {
			c := grid.Cell(col, row)
			sx, sy := l.col(col*cell), l.row(row*cell)
			switch {
			case c.Flower:
				dst.SetColor(sx, sy, '✿', core.ColorBrightMagenta)
			case c.Mushroom():
				glyph := mushroomGlyphs[core.Clamp(c.HP, 0, MushroomHP)]
				// worn mushrooms fade
				fg := color.Bright()
				if c.HP < MushroomHP {
					fg = color.Dim()
				}
				if c.Poisoned {
					fg = core.ColorMagenta
				}
				dst.SetColor(sx, sy, glyph, fg)
				dst.SetColor(sx+1, sy, glyph, fg)
			}
		}
	}
}

func (g *Game) renderCanisters(dst *core.Screen, l layout) {
	for _, c := range g.world.Grid.Canisters() {
		if c.Dead {
			continue
		}
		if c.Active {
			b := c.Blast()
			glyph := '░'
			if c.Frame%2 == 1 {
				glyph = '▒'
			}
			for y := l.row(b.Y); y <= l.row(b.Bottom()-1); y++ {
				for x := l.col(b.X); x <= l.col(b.Right()-1); x++ {
					dst.SetColor(x, y, glyph, core.ColorGreen)
				}
			}
			continue
		}
		sx, sy := l.col(c.X), l.row(c.Y)
		dst.DrawTextColor(sx, sy, "[##]", core.ColorBrightWhite)
	}
}

func (g *Game) renderMillipedes(dst *core.Screen, l layout) {
	for _, m := range g.world.Millipedes {
		fg := core.ColorBrightGreen
		if m.Poisoned() {
			fg = core.ColorBrightMagenta
		}
		for i := len(m.Body) - 1; i >= 0; i-- {
			s := m.Body[i]
			sx, sy := l.col(s.X), l.row(s.Y)
			switch {
			case s.Head && m.Left():
				dst.DrawTextColor(sx, sy, "<@", core.ColorBrightRed)
			case s.Head:
				dst.DrawTextColor(sx, sy, "@>", core.ColorBrightRed)
			case m.Frame == 0:
				dst.DrawTextColor(sx, sy, "()", fg)
			default:
				dst.DrawTextColor(sx, sy, "{}", fg)
			}
		}
	}
}

func (g *Game) renderMonsters(dst *core.Screen, l layout) {
	for _, m := range g.world.Roster.All() {
		if !m.Alive() {
			continue
		}
		sp := monsterSprites[m.Kind()]
		r := m.Bounds()
		f := sp.frames[m.Frame()%2]
		sx, sy := l.col(r.X), l.row(r.Y)
		dst.SetColor(sx, sy, f[0], sp.color)
		dst.SetColor(sx+1, sy, f[1], sp.color)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, l layout) {
	w := g.world
	if w.State() == StatePlayerDying {
		return
	}
	p := w.Player
	sx, sy := l.col(p.X), l.row(p.Y)
	dst.DrawTextColor(sx, sy, "/\\", core.ColorBrightCyan)
	if w.Missile.Active {
		dst.SetColor(l.col(w.Missile.X+w.Missile.W/2), l.row(w.Missile.Y), '|', core.ColorBrightWhite)
	}
}

func (g *Game) renderEffects(dst *core.Screen, l layout) {
	s := g.world.Score
	for _, p := range s.Particles {
		dst.SetColor(l.col(p.X), l.row(p.Y), '·', core.ColorBrightYellow)
	}
	for _, p := range s.Popups {
		dst.DrawTextColor(l.col(p.X), l.row(p.Y), strconv.Itoa(p.Points), core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
