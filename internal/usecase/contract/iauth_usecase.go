package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

// IAuthUseCase covers registration, login and bearer-token resolution.
type IAuthUseCase interface {
	Register(ctx context.Context, email, password, name string) (*entity.AuthUser, error)
	Login(ctx context.Context, email, password string) (*entity.AuthUser, error)
	Logout(ctx context.Context, caller *entity.User, token string) error
	Me(ctx context.Context, caller *entity.User) (*entity.User, error)
	// Authenticate resolves a bearer token to its user. Unknown and expired
	// tokens both yield (nil, nil).
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
