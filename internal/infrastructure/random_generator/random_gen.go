// Package randomgenerator mints the opaque bearer tokens handed out at login.
package randomgenerator

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
)

const (
	// TokenPrefix marks every session token issued by this service.
	TokenPrefix = "token_"
	// DefaultTokenBytes is the entropy of a session token before encoding.
	DefaultTokenBytes = 32
)

// TokenGenerator produces "token_<base64url>" strings from a CSPRNG.
type TokenGenerator struct {
	size   int
	source io.Reader
}

var _ contract.ITokenGenerator = (*TokenGenerator)(nil)

// Option configures a TokenGenerator.
type Option func(*TokenGenerator)

// WithSize sets the number of random bytes per token. Values below 16 are ignored.
func WithSize(n int) Option {
	return func(g *TokenGenerator) {
		if n >= 16 {
			g.size = n
		}
	}
}

// WithSource replaces crypto/rand, for tests.
func WithSource(r io.Reader) Option {
	return func(g *TokenGenerator) {
		if r != nil {
			g.source = r
		}
	}
}

func NewTokenGenerator(opts ...Option) *TokenGenerator {
	g := &TokenGenerator{size: DefaultTokenBytes, source: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *TokenGenerator) NewSessionToken() (string, error) {
	b := make([]byte, g.size)
	if _, err := io.ReadFull(g.source, b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return TokenPrefix + base64.RawURLEncoding.EncodeToString(b), nil
}

// IsWellFormed reports whether token could have been issued by a
// TokenGenerator, so obviously foreign tokens skip the store lookup.
func (g *TokenGenerator) IsWellFormed(token string) bool {
	body, ok := strings.CutPrefix(token, TokenPrefix)
	if !ok || body == "" {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(body)
	return err == nil
}
