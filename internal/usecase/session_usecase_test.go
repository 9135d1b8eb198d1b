package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	randomgenerator "github.com/mikiasgoitom/carkenya/internal/infrastructure/random_generator"
)

func TestSessionUsecase_ExpiredSessionIsRemovedOnLookup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	token, err := env.sessions.CreateSession(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, randomgenerator.TokenPrefix))

	s, err := env.sessions.GetSession(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, env.clock.Now().Add(DefaultSessionTTL), s.ExpiresAt)

	n, err := env.sessionRepo.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	env.clock.Advance(DefaultSessionTTL + time.Second)

	s, err = env.sessions.GetSession(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, s)

	n, err = env.sessionRepo.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSessionUsecase_TokensAreUnique(t *testing.T) {
	env := newTestEnv(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, err := env.sessions.CreateSession(context.Background(), "user-1")
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestSessionUsecase_UnknownAndEmptyTokens(t *testing.T) {
	env := newTestEnv(t)
	s, err := env.sessions.GetSession(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = env.sessions.GetSession(context.Background(), "token_missing")
	require.NoError(t, err)
	assert.Nil(t, s)

	s, err = env.sessions.GetSession(context.Background(), "not a token!")
	require.NoError(t, err)
	assert.Nil(t, s)

	assert.NoError(t, env.sessions.DeleteSession(context.Background(), "token_missing"))
}
