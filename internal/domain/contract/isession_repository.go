package contract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// ISessionRepository stores bearer sessions.
// GetSession reports absence (nil, nil) for unknown and expired tokens alike and
// removes an expired session as a side effect.
type ISessionRepository interface {
	SaveSession(ctx context.Context, session *entity.Session) error
	GetSession(ctx context.Context, token string) (*entity.Session, error)
	DeleteSession(ctx context.Context, token string) (bool, error)
	DeleteSessionsByUser(ctx context.Context, userID string) (int, error)
	// PurgeExpired drops every expired session and returns how many were removed.
	PurgeExpired(ctx context.Context) (int, error)
	CountSessions(ctx context.Context) (int, error)
}
