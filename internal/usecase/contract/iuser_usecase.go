package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// IUserUseCase defines account administration. caller is nil for anonymous requests.
type IUserUseCase interface {
	ListUsers(ctx context.Context, caller *entity.User) ([]*entity.User, error)
	UpdateUser(ctx context.Context, caller *entity.User, userID string, patch entity.UserPatch) (*entity.User, error)
	DeleteUser(ctx context.Context, caller *entity.User, userID string) error
	ToggleActive(ctx context.Context, caller *entity.User, userID string, isActive bool) (*entity.User, error)
}
