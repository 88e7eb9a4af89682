package game

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Cell is one square of the board. X and Y are fixed at construction;
// Mine is set once by placeMines; NeighborMines is computed once after
// placement and stays 0 on mine cells.
type Cell struct {
	X, Y          int
	Mine          bool
	Revealed      bool
	Flagged       bool
	NeighborMines int
}

// Board is a fixed-size rectangular grid stored as a flat slice indexed
// by y*Width+x.
type Board struct {
	Width, Height int
	cells         []Cell
}

func newBoard(width, height int) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for i := range b.cells {
		b.cells[i].X = i % width
		b.cells[i].Y = i / width
	}
	return b
}

func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

func (b *Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.Width && 0 <= y && y < b.Height
}

func (b *Board) at(x, y int) *Cell {
	return &b.cells[b.index(x, y)]
}

// eachNeighbor calls fn with the flat index of every in-bounds Moore
// neighbor of i, the cell itself excluded.
func (b *Board) eachNeighbor(i int, fn func(j int)) {
	x, y := i%b.Width, i/b.Width
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			xx, yy := x+dx, y+dy
			if xx < 0 || xx >= b.Width || yy < 0 || yy >= b.Height {
				continue
			}
			fn(yy*b.Width + xx)
		}
	}
}

// placeMines marks count distinct cells as mines, chosen uniformly via a
// shuffle of the flat index list. Bounded time regardless of density,
// unlike resampling until count free squares have been hit.
func (b *Board) placeMines(count int, r *rand.Rand) {
	for _, i := range r.Perm(len(b.cells))[:count] {
		b.cells[i].Mine = true
	}
}

// countNeighborMines fills in NeighborMines for every safe cell. Runs
// once per game, after placement; reveal and flag moves never touch it.
func (b *Board) countNeighborMines() {
	for i := range b.cells {
		if b.cells[i].Mine {
			continue
		}
		n := 0
		b.eachNeighbor(i, func(j int) {
			if b.cells[j].Mine {
				n++
			}
		})
		b.cells[i].NeighborMines = n
	}
}

func (b *Board) mines() (count int) {
	for i := range b.cells {
		if b.cells[i].Mine {
			count++
		}
	}
	return
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := range b.Height {
		for x := range b.Width {
			c := b.at(x, y)
			switch {
			case c.Mine:
				fmt.Fprint(&sb, "* ")
			case c.NeighborMines > 0:
				fmt.Fprintf(&sb, "%d ", c.NeighborMines)
			default:
				fmt.Fprint(&sb, "- ")
			}
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}
