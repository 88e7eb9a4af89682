package game

import (
	"math/rand/v2"
	"time"
)

type Status int8

const (
	StatusReady Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "invalid"
	}
}

// Game owns a Board and the move state machine. It is single-owner and
// synchronous: every move runs to completion before returning, so a
// caller never observes a half-cascaded board. Wrap it in a lock if two
// goroutines share one game.
type Game struct {
	params    Params
	board     *Board
	status    Status
	flagCount int
	revealed  int
	startedAt time.Time
	endedAt   time.Time
}

// New builds a board, places params.MineCount mines using r and computes
// the neighbor counts. Only invalid params produce an error; every
// method of the returned game tolerates malformed input as a no-op.
func New(params Params, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board := newBoard(params.Width, params.Height)
	board.placeMines(params.MineCount, r)
	board.countNeighborMines()
	return &Game{params: params, board: board}, nil
}

func (g *Game) Params() Params { return g.params }
func (g *Game) Status() Status { return g.status }

func (g *Game) Over() bool {
	return g.status == StatusWon || g.status == StatusLost
}

// Duration is zero until the first reveal, then freezes once the game
// ends. Live timer display is the caller's job via polling.
func (g *Game) Duration() time.Duration {
	if g.startedAt.IsZero() {
		return 0
	}
	end := g.endedAt
	if end.IsZero() {
		end = time.Now()
	}
	return end.Sub(g.startedAt)
}

// StartedAt returns the time of the first reveal, zero if none was made.
func (g *Game) StartedAt() time.Time { return g.startedAt }

// EndedAt returns the time the game was won or lost, zero while running.
func (g *Game) EndedAt() time.Time { return g.endedAt }

type Stats struct {
	Duration       int `json:"duration"`
	FlagsUsed      int `json:"flags_used"`
	MinesRemaining int `json:"mines_remaining"`
}

// Stats reports duration in whole seconds, placed flags and the naive
// mines-left counter. MinesRemaining trusts the player's flags, so it
// may go negative.
func (g *Game) Stats() Stats {
	return Stats{
		Duration:       int(g.Duration() / time.Second),
		FlagsUsed:      g.flagCount,
		MinesRemaining: g.params.MineCount - g.flagCount,
	}
}

// ToggleFlag flips the flag on a hidden cell. Out-of-bounds or revealed
// cells and finished games are tolerated no-ops. Flags are informational
// only and never gate the win condition.
func (g *Game) ToggleFlag(x, y int) {
	if g.Over() || !g.board.InBounds(x, y) {
		return
	}
	c := g.board.at(x, y)
	if c.Revealed {
		return
	}
	if c.Flagged {
		c.Flagged = false
		g.flagCount--
	} else {
		c.Flagged = true
		g.flagCount++
	}
}

// Forfeit concedes a running game: the status drops to lost and the
// whole minefield is exposed.
func (g *Game) Forfeit() {
	if g.Over() {
		return
	}
	if g.status == StatusReady {
		g.status = StatusPlaying
		g.startedAt = time.Now()
	}
	g.lose()
}
