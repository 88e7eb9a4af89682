package game

// CellView is the consumer-facing projection of one cell. Mine and
// NeighborCount are withheld (zero-valued) while the cell is hidden and
// the game is still running, so the view leaks no player-invisible
// knowledge to a rendering layer.
type CellView struct {
	X             int  `json:"x"`
	Y             int  `json:"y"`
	Revealed      bool `json:"revealed"`
	Flagged       bool `json:"flagged"`
	Mine          bool `json:"mine"`
	NeighborCount int  `json:"neighbor_count"`
}

// View renders the board as a height×width matrix of cell view-models,
// rows indexed by y. The matrix is a copy; mutating it does not touch
// the game.
func (g *Game) View() [][]CellView {
	over := g.Over()
	rows := make([][]CellView, g.board.Height)
	for y := range rows {
		rows[y] = make([]CellView, g.board.Width)
		for x := range rows[y] {
			c := g.board.at(x, y)
			v := CellView{
				X:        c.X,
				Y:        c.Y,
				Revealed: c.Revealed,
				Flagged:  c.Flagged,
			}
			if c.Revealed || over {
				v.Mine = c.Mine
				v.NeighborCount = c.NeighborMines
			}
			rows[y][x] = v
		}
	}
	return rows
}
