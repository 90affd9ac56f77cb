package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (that *fakeClock) Now() time.Time {
	that.mu.Lock()
	defer that.mu.Unlock()
	return that.now
}

func (that *fakeClock) Advance(d time.Duration) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.now = that.now.Add(d)
}

func newMemoryRepo(ttl time.Duration) (*MemorySessionRepository, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	repo := NewMemorySessionRepository(ttl)
	repo.now = clock.Now
	return repo, clock
}

func TestMemorySessionRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns a copy of the saved session", func(t *testing.T) {
		// Given: a saved session
		repo, _ := newMemoryRepo(time.Hour)
		session := entity.NewSession(entity.SurfaceWeb, "abc", "")
		require.NoError(t, repo.Save(ctx, session))

		// When: the caller mutates the retrieved session without saving
		retrieved, err := repo.GetByID(ctx, entity.SurfaceWeb, "abc")
		require.NoError(t, err)
		retrieved.Board[0] = entity.PlayerX

		// Then: the stored session is untouched
		again, err := repo.GetByID(ctx, entity.SurfaceWeb, "abc")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, again.Board[0])
	})

	t.Run("Not found for an unknown ID", func(t *testing.T) {
		repo, _ := newMemoryRepo(time.Hour)

		_, err := repo.GetByID(ctx, entity.SurfaceWeb, "missing")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("Surfaces are separate keyspaces", func(t *testing.T) {
		repo, _ := newMemoryRepo(time.Hour)
		require.NoError(t, repo.Save(ctx, entity.NewSession(entity.SurfaceTelegram, "1", "1")))

		_, err := repo.GetByID(ctx, entity.SurfaceWeb, "1")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

func TestMemorySessionRepository_TTL(t *testing.T) {
	ctx := context.Background()

	t.Run("Expired sessions are hidden and dropped on read", func(t *testing.T) {
		// Given: a session saved with a one minute ttl
		repo, clock := newMemoryRepo(time.Minute)
		require.NoError(t, repo.Save(ctx, entity.NewSession(entity.SurfaceTelegram, "1", "1")))

		// When: the ttl passes
		clock.Advance(time.Minute)

		// Then: the session is gone
		_, err := repo.GetByID(ctx, entity.SurfaceTelegram, "1")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("Saving refreshes the ttl", func(t *testing.T) {
		repo, clock := newMemoryRepo(time.Minute)
		session := entity.NewSession(entity.SurfaceTelegram, "1", "1")
		require.NoError(t, repo.Save(ctx, session))

		clock.Advance(50 * time.Second)
		require.NoError(t, repo.Save(ctx, session))
		clock.Advance(50 * time.Second)

		_, err := repo.GetByID(ctx, entity.SurfaceTelegram, "1")
		require.NoError(t, err)
	})

	t.Run("EvictExpired removes only expired entries", func(t *testing.T) {
		// Given: an old and a fresh session
		repo, clock := newMemoryRepo(time.Minute)
		require.NoError(t, repo.Save(ctx, entity.NewSession(entity.SurfaceWeb, "old", "")))
		clock.Advance(30 * time.Second)
		require.NoError(t, repo.Save(ctx, entity.NewSession(entity.SurfaceWeb, "fresh", "")))
		clock.Advance(30 * time.Second)

		// When: evicting
		evicted := repo.EvictExpired()

		// Then: only the old one is removed
		assert.Equal(t, 1, evicted)
		assert.Equal(t, 1, repo.Len())
		_, err := repo.GetByID(ctx, entity.SurfaceWeb, "fresh")
		require.NoError(t, err)
	})

	t.Run("RunJanitor stops with its context", func(t *testing.T) {
		repo, clock := newMemoryRepo(time.Minute)
		require.NoError(t, repo.Save(ctx, entity.NewSession(entity.SurfaceWeb, "old", "")))
		clock.Advance(time.Hour)

		janitorCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			repo.RunJanitor(janitorCtx, suite.NewLogger(), time.Millisecond)
			close(done)
		}()

		require.Eventually(t, func() bool { return repo.Len() == 0 }, time.Second, time.Millisecond)

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("janitor did not stop")
		}
	})
}

func TestMemorySessionRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMemoryRepo(time.Hour)
	require.NoError(t, repo.Save(ctx, entity.NewSession(entity.SurfaceWeb, "abc", "")))

	require.NoError(t, repo.DeleteByID(ctx, entity.SurfaceWeb, "abc"))
	require.ErrorIs(t, repo.DeleteByID(ctx, entity.SurfaceWeb, "abc"), apperror.ErrSessionNotFound)
}
