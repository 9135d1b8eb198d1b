package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type ISessionUseCase interface {
	CreateSession(ctx context.Context, userID string) (string, error)
	GetSession(ctx context.Context, token string) (*entity.Session, error)
	DeleteSession(ctx context.Context, token string) error
	RevokeUserSessions(ctx context.Context, userID string) (int, error)
}
