package millipede

// BirthAndDeath runs one generation of the regrowth automaton over every
// row except the reserved bottom one. A live mushroom survives with two or
// three live neighbours, and an empty cell with exactly three is born.
// Canister cells neither count as neighbours nor change.
func (g *Grid) BirthAndDeath() {
	rows := g.geo.Rows - 1
	cols := g.geo.Cols

	alive := func(col, row int) bool {
		if col < 0 || col >= cols || row < 0 || row >= rows {
			return false
		}
		c := g.at(g.index(col, row))
		return c.HP > 0 && !c.Canister
	}

	counts := make([]int, rows*cols)
	for row := range rows {
		for col := range cols {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && alive(col+dx, row+dy) {
						n++
					}
				}
			}
			counts[row*cols+col] = n
		}
	}

	for row := range rows {
		for col := range cols {
			i := g.index(col, row)
			c := g.at(i)
			if c.Canister {
				continue
			}
			n := counts[row*cols+col]
			switch {
			case c.HP > 0 && (n < 2 || n > 3):
				g.resetCell(i)
			case c.HP == 0 && n == 3:
				g.addAt(i)
			}
		}
	}
	g.recountPlayerArea()
}
