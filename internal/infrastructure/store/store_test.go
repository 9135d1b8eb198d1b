package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func newTestStore(t *testing.T) (*SessionCacheStore, *miniredis.Miniredis, *fixedClock) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	clk := &fixedClock{now: time.Now().UTC()}
	return NewSessionCacheStore(rdb, clk), mr, clk
}

func TestSessionCacheStore_SaveAndGet(t *testing.T) {
	s, _, clk := newTestStore(t)
	ctx := context.Background()

	session := &entity.Session{Token: "token_a", UserID: "user-1", ExpiresAt: clk.now.Add(time.Hour)}
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx, "token_a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)

	missing, err := s.GetSession(ctx, "token_missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionCacheStore_ExpiresWithTTL(t *testing.T) {
	s, mr, clk := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &entity.Session{Token: "token_a", UserID: "user-1", ExpiresAt: clk.now.Add(time.Minute)}))
	mr.FastForward(2 * time.Minute)

	got, err := s.GetSession(ctx, "token_a")
	require.NoError(t, err)
	assert.Nil(t, got)

	clk.now = clk.now.Add(2 * time.Minute)
	purged, err := s.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	n, err := s.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSessionCacheStore_DeleteByUser(t *testing.T) {
	s, _, clk := newTestStore(t)
	ctx := context.Background()

	for _, tok := range []string{"token_a", "token_b"} {
		require.NoError(t, s.SaveSession(ctx, &entity.Session{Token: tok, UserID: "user-1", ExpiresAt: clk.now.Add(time.Hour)}))
	}
	require.NoError(t, s.SaveSession(ctx, &entity.Session{Token: "token_c", UserID: "user-2", ExpiresAt: clk.now.Add(time.Hour)}))

	n, err := s.DeleteSessionsByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	count, err := s.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	deleted, err := s.DeleteSession(ctx, "token_c")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = s.DeleteSession(ctx, "token_c")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSessionCacheStore_SkipsAlreadyExpired(t *testing.T) {
	s, _, clk := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &entity.Session{Token: "token_old", UserID: "u", ExpiresAt: clk.now.Add(-time.Second)}))
	n, err := s.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSessionCacheStore_PurgeCleansUserSets(t *testing.T) {
	s, mr, clk := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		require.NoError(t, s.SaveSession(ctx, &entity.Session{
			Token:     fmt.Sprintf("token_%d", i),
			UserID:    "u1",
			ExpiresAt: clk.now.Add(time.Minute),
		}))
	}
	mr.FastForward(2 * time.Minute)
	clk.now = clk.now.Add(2 * time.Minute)

	purged, err := s.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, purged)

	assert.False(t, mr.Exists(userSessionsKey("u1")))
	assert.False(t, mr.Exists(sessionOwnersKey))
	assert.False(t, mr.Exists(sessionIndexKey))
}

func TestSessionCacheStore_LazyExpiryCleansUserSet(t *testing.T) {
	s, _, clk := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &entity.Session{Token: "token_a", UserID: "u1", ExpiresAt: clk.now.Add(time.Minute)}))
	clk.now = clk.now.Add(2 * time.Minute)

	got, err := s.GetSession(ctx, "token_a")
	require.NoError(t, err)
	assert.Nil(t, got)

	members, err := s.rdb.SMembers(ctx, userSessionsKey("u1")).Result()
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestSessionCacheStore_CorruptRecordIsAnError(t *testing.T) {
	s, mr, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(sessionKey("token_bad"), "{not json"))

	got, err := s.GetSession(ctx, "token_bad")
	assert.Error(t, err)
	assert.Nil(t, got)
}
