package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/md-zeon/sweeper/internal/config"
	"github.com/md-zeon/sweeper/internal/game"
	"github.com/md-zeon/sweeper/internal/session"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(game.Easy, rand.New(rand.NewPCG(1, 2)))
	assert.NoError(t, err)
	return g
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := NewGameHandler(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		session.NewRegistry(time.Hour),
		session.NewHighscores(100),
		config.NewWebSocket(),
		rand.New(rand.NewPCG(11, 13)),
	)
	server := httptest.NewServer(h.ServeMux())
	t.Cleanup(server.Close)
	return server
}

func postSession(t *testing.T, url string) SessionJSON {
	t.Helper()
	resp, err := http.Post(url, "", nil)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var dto SessionJSON
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&dto))
	return dto
}

func TestNewGameEndpoint(t *testing.T) {
	server := newTestServer(t)

	dto := postSession(t, server.URL+"/game?preset=easy")
	assert.NotEmpty(t, dto.SessionID)
	assert.Equal(t, 9, dto.Width)
	assert.Equal(t, 9, dto.Height)
	assert.Equal(t, 10, dto.MineCount)
	assert.Equal(t, "ready", dto.Status)
	assert.Nil(t, dto.StartedAt)
	assert.Len(t, dto.Grid, 9)
	assert.Len(t, dto.Grid[0], 9)
	for _, row := range dto.Grid {
		for _, cell := range row {
			assert.False(t, cell.Mine, "fresh board leaked a mine")
			assert.False(t, cell.Revealed)
		}
	}
}

func TestNewGameEndpointRejectsBadConfig(t *testing.T) {
	server := newTestServer(t)

	for _, query := range []string{
		"?preset=impossible",
		"?width=0&height=9&mine_count=10",
		"?width=9&height=9&mine_count=81",
		"?width=nine&height=9&mine_count=10",
	} {
		resp, err := http.Post(server.URL+"/game"+query, "", nil)
		assert.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %s", query)
	}
}

func TestFetchUnknownSessionIs404(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/game/deadbeef")
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFlagRoundTripOverHTTP(t *testing.T) {
	server := newTestServer(t)
	created := postSession(t, server.URL+"/game?preset=easy")

	base := server.URL + "/game/" + created.SessionID
	dto := postSession(t, base+"/flag?x=2&y=3")
	assert.True(t, dto.Grid[3][2].Flagged)
	assert.Equal(t, 1, dto.Stats.FlagsUsed)
	assert.Equal(t, 9, dto.Stats.MinesRemaining)

	// a flagged cell must survive a reveal attempt
	dto = postSession(t, base+"/reveal?x=2&y=3")
	assert.True(t, dto.Grid[3][2].Flagged)
	assert.False(t, dto.Grid[3][2].Revealed)

	dto = postSession(t, base+"/flag?x=2&y=3")
	assert.False(t, dto.Grid[3][2].Flagged)
	assert.Zero(t, dto.Stats.FlagsUsed)
}

func TestMoveRequiresCoordinates(t *testing.T) {
	server := newTestServer(t)
	created := postSession(t, server.URL+"/game?preset=easy")

	resp, err := http.Post(server.URL+"/game/"+created.SessionID+"/reveal", "", nil)
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestForfeitExposesMinefield(t *testing.T) {
	server := newTestServer(t)
	created := postSession(t, server.URL+"/game?width=5&height=5&mine_count=7")

	dto := postSession(t, server.URL+"/game/"+created.SessionID+"/forfeit")
	assert.Equal(t, "lost", dto.Status)

	mines := 0
	for _, row := range dto.Grid {
		for _, cell := range row {
			if cell.Mine {
				mines++
			}
		}
	}
	assert.Equal(t, 7, mines)
}

func TestHighscoresEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/highscores")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var scores []session.Highscore
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&scores))
	assert.Empty(t, scores)
}
