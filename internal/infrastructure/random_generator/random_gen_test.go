package randomgenerator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionToken_Format(t *testing.T) {
	g := NewTokenGenerator()
	a, err := g.NewSessionToken()
	require.NoError(t, err)
	b, err := g.NewSessionToken()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, TokenPrefix))
	assert.Len(t, a, len(TokenPrefix)+43)
	assert.NotEqual(t, a, b)
	assert.True(t, g.IsWellFormed(a))
}

func TestNewSessionToken_DeterministicSource(t *testing.T) {
	g := NewTokenGenerator(WithSize(16), WithSource(bytes.NewReader(make([]byte, 16))))
	tok, err := g.NewSessionToken()
	require.NoError(t, err)
	assert.Equal(t, "token_AAAAAAAAAAAAAAAAAAAAAA", tok)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestNewSessionToken_SourceError(t *testing.T) {
	g := NewTokenGenerator(WithSource(failingReader{}))
	_, err := g.NewSessionToken()
	assert.ErrorContains(t, err, "entropy exhausted")
}

func TestIsWellFormed(t *testing.T) {
	g := NewTokenGenerator()
	for _, tok := range []string{"", "token_", "Bearer abc", "token_not base64!", "abc_123"} {
		assert.False(t, g.IsWellFormed(tok), tok)
	}
	assert.True(t, g.IsWellFormed("token_mock"))
}
