package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/md-zeon/sweeper/internal/game"
)

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(game.Easy, rand.New(rand.NewPCG(1, 2)))
	assert.NoError(t, err)
	return g
}

func TestRegistryCreateGet(t *testing.T) {
	reg := NewRegistry(time.Hour)
	s := reg.Create(newTestGame(t))
	assert.NotEmpty(t, s.ID)

	got, ok := reg.Get(s.ID)
	assert.True(t, ok)
	assert.Same(t, s, got)

	_, ok = reg.Get("deadbeef")
	assert.False(t, ok)

	reg.Delete(s.ID)
	_, ok = reg.Get(s.ID)
	assert.False(t, ok)
}

func TestRegistryIDsAreUnique(t *testing.T) {
	reg := NewRegistry(time.Hour)
	seen := map[string]bool{}
	for range 100 {
		s := reg.Create(newTestGame(t))
		assert.False(t, seen[s.ID])
		seen[s.ID] = true
	}
	assert.Equal(t, 100, reg.Len())
}

func TestRegistrySweepDropsIdleSessions(t *testing.T) {
	reg := NewRegistry(time.Minute)
	stale := reg.Create(newTestGame(t))
	fresh := reg.Create(newTestGame(t))

	stale.mu.Lock()
	stale.lastSeen = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	reg.sweepOnce(time.Now())

	_, ok := reg.Get(stale.ID)
	assert.False(t, ok)
	_, ok = reg.Get(fresh.ID)
	assert.True(t, ok)
}

func TestSessionDoSerializesMoves(t *testing.T) {
	reg := NewRegistry(time.Hour)
	s := reg.Create(newTestGame(t))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 50 {
			s.Do(func(g *game.Game) { g.ToggleFlag(0, 0) })
		}
	}()
	for range 50 {
		s.Do(func(g *game.Game) { g.ToggleFlag(8, 8) })
	}
	<-done

	// each cell was toggled an even number of times
	s.Do(func(g *game.Game) {
		assert.Zero(t, g.Stats().FlagsUsed)
	})
}

func TestHighscoresSortedAndCapped(t *testing.T) {
	hs := NewHighscores(3)
	hs.Add("9:9:10", 30*time.Second)
	hs.Add("9:9:10", 10*time.Second)
	hs.Add("16:16:40", 90*time.Second)
	hs.Add("9:9:10", 20*time.Second)

	all := hs.List("")
	assert.Len(t, all, 3)
	assert.Equal(t, 10, all[0].Seconds)
	assert.Equal(t, 20, all[1].Seconds)
	assert.Equal(t, 30, all[2].Seconds)

	easyOnly := hs.List("9:9:10")
	assert.Len(t, easyOnly, 3)
}
