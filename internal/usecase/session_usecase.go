package usecase

import (
	"context"
	"time"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

const (
	// DefaultSessionTTL applies when no TTL is configured.
	DefaultSessionTTL = 7 * 24 * time.Hour
)

// SessionUsecase issues and resolves opaque bearer tokens.
type SessionUsecase struct {
	sessionRepo contract.ISessionRepository
	tokens      contract.ITokenGenerator
	clock       contract.IClock
	ttl         time.Duration
	logger      usecasecontract.IAppLogger
}

func NewSessionUsecase(
	sessionRepo contract.ISessionRepository,
	tokens contract.ITokenGenerator,
	clock contract.IClock,
	ttl time.Duration,
	logger usecasecontract.IAppLogger,
) *SessionUsecase {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionUsecase{
		sessionRepo: sessionRepo,
		tokens:      tokens,
		clock:       clock,
		ttl:         ttl,
		logger:      logger,
	}
}

var _ usecasecontract.ISessionUseCase = (*SessionUsecase)(nil)

// CreateSession stores a new session for userID and returns its token.
func (uc *SessionUsecase) CreateSession(ctx context.Context, userID string) (string, error) {
	token, err := uc.tokens.NewSessionToken()
	if err != nil {
		return "", internal(uc.logger, "failed to generate session token", err)
	}
	session := &entity.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: uc.clock.Now().Add(uc.ttl),
	}
	if err := uc.sessionRepo.SaveSession(ctx, session); err != nil {
		return "", internal(uc.logger, "failed to store session", err)
	}
	return session.Token, nil
}

// GetSession returns nil for unknown, malformed and expired tokens alike.
func (uc *SessionUsecase) GetSession(ctx context.Context, token string) (*entity.Session, error) {
	if !uc.tokens.IsWellFormed(token) {
		return nil, nil
	}
	session, err := uc.sessionRepo.GetSession(ctx, token)
	if err != nil {
		return nil, internal(uc.logger, "failed to load session", err)
	}
	return session, nil
}

// DeleteSession is idempotent.
func (uc *SessionUsecase) DeleteSession(ctx context.Context, token string) error {
	if _, err := uc.sessionRepo.DeleteSession(ctx, token); err != nil {
		return internal(uc.logger, "failed to delete session", err)
	}
	return nil
}

func (uc *SessionUsecase) RevokeUserSessions(ctx context.Context, userID string) (int, error) {
	n, err := uc.sessionRepo.DeleteSessionsByUser(ctx, userID)
	if err != nil {
		return 0, internal(uc.logger, "failed to revoke sessions", err)
	}
	return n, nil
}
