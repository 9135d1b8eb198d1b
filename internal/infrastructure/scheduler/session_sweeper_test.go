package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/logger"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/repository/memory"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestSessionSweeper_Sweep(t *testing.T) {
	clk := &stepClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := memory.NewStore(memory.WithClock(clk))
	repo := memory.NewSessionRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, &entity.Session{Token: "a", UserID: "u1", ExpiresAt: clk.now.Add(time.Hour)}))
	require.NoError(t, repo.SaveSession(ctx, &entity.Session{Token: "b", UserID: "u1", ExpiresAt: clk.now.Add(48 * time.Hour)}))

	sweeper := NewSessionSweeper(repo, logger.NewNopLogger())

	purged, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, purged)

	clk.now = clk.now.Add(2 * time.Hour)
	purged, err = sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	n, err := repo.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSessionSweeper_StartRejectsBadSpec(t *testing.T) {
	store := memory.NewStore()
	sweeper := NewSessionSweeper(memory.NewSessionRepository(store), logger.NewNopLogger())
	assert.Error(t, sweeper.Start("not a schedule"))
}
