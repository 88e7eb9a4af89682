package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/md-zeon/sweeper/internal/config"
	"github.com/md-zeon/sweeper/internal/game"
	"github.com/md-zeon/sweeper/internal/session"
)

type GameHandler struct {
	logger   *slog.Logger
	registry *session.Registry
	scores   *session.Highscores
	ws       *config.WebSocket
	rnd      *rand.Rand
	rndMu    sync.Mutex
}

func NewGameHandler(
	logger *slog.Logger,
	registry *session.Registry,
	scores *session.Highscores,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger:   logger,
		registry: registry,
		scores:   scores,
		ws:       ws,
		rnd:      rnd,
	}
}

func (h *GameHandler) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /game", h.NewGame)
	mux.HandleFunc("GET /game/{id}", h.Fetch)
	mux.HandleFunc("POST /game/{id}/reveal", h.movePlayed(func(g *game.Game, p point) {
		g.Reveal(p.X, p.Y)
	}))
	mux.HandleFunc("POST /game/{id}/flag", h.movePlayed(func(g *game.Game, p point) {
		g.ToggleFlag(p.X, p.Y)
	}))
	mux.HandleFunc("POST /game/{id}/chord", h.movePlayed(func(g *game.Game, p point) {
		g.Chord(p.X, p.Y)
	}))
	mux.HandleFunc("POST /game/{id}/forfeit", h.Forfeit)
	mux.HandleFunc("GET /game/{id}/connect", h.ConnectWS)
	mux.HandleFunc("GET /highscores", h.Highscores)
	return mux
}

func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	params, err := dto.Params()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		SendErrorOrLog(w, h.logger, err)
		return
	}

	h.rndMu.Lock()
	g, err := game.New(params, h.rnd)
	h.rndMu.Unlock()
	if err != nil {
		var ce game.ConfigurationError
		if errors.As(err, &ce) {
			w.WriteHeader(http.StatusBadRequest)
			SendErrorOrLog(w, h.logger, err)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to create a new game", "error", err)
		return
	}

	s := h.registry.Create(g)
	h.logger.Debug("created session", slog.String("sessionId", s.ID))

	SendJSONOrLog(w, h.logger, NewSessionJSON(s))
}

func (h *GameHandler) fetchSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	s, ok := h.registry.Get(r.PathValue("id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	return s, true
}

func (h *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := h.fetchSession(w, r)
	if !ok {
		return
	}
	SendJSONOrLog(w, h.logger, NewSessionJSON(s))
}

// movePlayed wraps one engine move into a handler: decode the target
// cell, apply the move under the session lock, record a first win and
// reply with the updated session.
func (h *GameHandler) movePlayed(apply func(g *game.Game, p point)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := decodePosition(r.URL.Query())
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			SendErrorOrLog(w, h.logger, err)
			return
		}

		s, ok := h.fetchSession(w, r)
		if !ok {
			return
		}

		s.Do(func(g *game.Game) {
			apply(g, p)
		})
		h.recordWin(s)

		SendJSONOrLog(w, h.logger, NewSessionJSON(s))
	}
}

func (h *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	s, ok := h.fetchSession(w, r)
	if !ok {
		return
	}

	s.Do(func(g *game.Game) {
		g.Forfeit()
	})

	SendJSONOrLog(w, h.logger, NewSessionJSON(s))
}

func (h *GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	seed := r.URL.Query().Get("seed")
	SendJSONOrLog(w, h.logger, h.scores.List(seed))
}

func (h *GameHandler) recordWin(s *session.Session) {
	if !s.FirstWin() {
		return
	}
	seed := s.Game.Params().Seed()
	d := s.Game.Duration()
	h.scores.Add(seed, d)
	h.logger.Info(
		"game won",
		slog.String("sessionId", s.ID),
		slog.String("seed", seed),
		slog.Any("duration", d),
	)
}
