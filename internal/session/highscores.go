package session

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

type Highscore struct {
	Seed     string        `json:"seed"`
	Duration time.Duration `json:"-"`
	Seconds  int           `json:"seconds"`
	SetAt    time.Time     `json:"set_at"`
}

// Highscores is a capped in-memory table of won-game durations, fastest
// first. Ties keep insertion order.
type Highscores struct {
	mu      sync.Mutex
	entries []Highscore
	limit   int
}

func NewHighscores(limit int) *Highscores {
	return &Highscores{limit: limit}
}

func (h *Highscores) Add(seed string, d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, Highscore{
		Seed:     seed,
		Duration: d,
		Seconds:  int(d / time.Second),
		SetAt:    time.Now(),
	})
	slices.SortStableFunc(h.entries, func(a, b Highscore) int {
		return cmp.Compare(a.Duration, b.Duration)
	})
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// List returns a copy of the table, optionally filtered by params seed.
func (h *Highscores) List(seed string) []Highscore {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Highscore, 0, len(h.entries))
	for _, e := range h.entries {
		if seed == "" || e.Seed == seed {
			out = append(out, e)
		}
	}
	return out
}
