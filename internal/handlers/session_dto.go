package handlers

import (
	"time"

	"github.com/md-zeon/sweeper/internal/game"
	"github.com/md-zeon/sweeper/internal/session"
)

type SessionJSON struct {
	SessionID string            `json:"session_id"`
	Grid      [][]game.CellView `json:"grid"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	MineCount int               `json:"mine_count"`
	Status    string            `json:"status"`
	StartedAt *int64            `json:"started_at,omitempty"`
	EndedAt   *int64            `json:"ended_at,omitempty"`
	Stats     game.Stats        `json:"stats"`
}

func unixMillis(t time.Time) *int64 {
	if t.IsZero() {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func NewSessionJSON(s *session.Session) (dto SessionJSON) {
	s.Do(func(g *game.Game) {
		params := g.Params()
		dto = SessionJSON{
			SessionID: s.ID,
			Grid:      g.View(),
			Width:     params.Width,
			Height:    params.Height,
			MineCount: params.MineCount,
			Status:    g.Status().String(),
			StartedAt: unixMillis(g.StartedAt()),
			EndedAt:   unixMillis(g.EndedAt()),
			Stats:     g.Stats(),
		}
	})
	return dto
}
