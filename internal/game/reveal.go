package game

import "time"

// Reveal opens the cell at x, y. Out-of-bounds, already-revealed or
// flagged targets and finished games are tolerated no-ops. The first
// reveal starts the clock. Hitting a mine loses the game and exposes
// the whole minefield; a zero-neighbor cell cascades through its
// connected zero region and the numbered cells bordering it.
func (g *Game) Reveal(x, y int) {
	if g.Over() || !g.board.InBounds(x, y) {
		return
	}
	c := g.board.at(x, y)
	if c.Revealed || c.Flagged {
		return
	}

	if g.status == StatusReady {
		g.status = StatusPlaying
		g.startedAt = time.Now()
	}

	if c.Mine {
		c.Revealed = true
		g.lose()
		return
	}

	g.floodReveal(g.board.index(x, y))
	g.checkWin()
}

// Chord opens every hidden, unflagged neighbor of a revealed numbered
// cell, but only when the player has flagged exactly that cell's number
// of neighbors. A wrong flag makes a chord fatal, same as any reveal.
func (g *Game) Chord(x, y int) {
	if g.Over() || !g.board.InBounds(x, y) {
		return
	}
	c := g.board.at(x, y)
	if !c.Revealed || c.NeighborMines < 1 {
		return
	}

	flagged := 0
	hidden := make([]int, 0, 8)
	g.board.eachNeighbor(g.board.index(x, y), func(j int) {
		n := &g.board.cells[j]
		switch {
		case n.Flagged:
			flagged++
		case !n.Revealed:
			hidden = append(hidden, j)
		}
	})
	if flagged != c.NeighborMines {
		return
	}

	for _, j := range hidden {
		g.Reveal(g.board.cells[j].X, g.board.cells[j].Y)
		if g.Over() {
			return
		}
	}
}

// floodReveal opens the cell at flat index start and, when it has no
// neighboring mines, cascades outward over an explicit worklist. The
// revealed check before pushing keeps every cell on the list at most
// once, so the loop terminates after width*height iterations worst
// case. Flagged cells stop the cascade and stay hidden; numbered cells
// open but do not propagate.
func (g *Game) floodReveal(start int) {
	b := g.board
	b.cells[start].Revealed = true
	g.revealed++
	if b.cells[start].NeighborMines != 0 {
		return
	}

	worklist := []int{start}
	for len(worklist) > 0 {
		i := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		b.eachNeighbor(i, func(j int) {
			n := &b.cells[j]
			if n.Revealed || n.Flagged {
				return
			}
			n.Revealed = true
			g.revealed++
			if n.NeighborMines == 0 {
				worklist = append(worklist, j)
			}
		})
	}
}

// lose ends the game and exposes every mine. Correctly flagged mines
// are re-revealed as well, overriding their flag display; the flag is
// kept on the cell so a renderer may still cross it out.
func (g *Game) lose() {
	g.status = StatusLost
	g.endedAt = time.Now()
	for i := range g.board.cells {
		if g.board.cells[i].Mine {
			g.board.cells[i].Revealed = true
		}
	}
}

// checkWin ends the game once every safe cell is open, i.e. exactly as
// many cells stay covered as there are mines. Flag placement is not
// consulted.
func (g *Game) checkWin() {
	if g.revealed == g.params.CellCount()-g.params.MineCount {
		g.status = StatusWon
		g.endedAt = time.Now()
	}
}
