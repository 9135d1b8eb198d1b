package contract

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
)

type IUserRepository interface {
	// CreateUserIfEmailAbsent inserts the user unless another user already holds the email.
	// The check and the insert are atomic. Returns false when the email is taken.
	CreateUserIfEmailAbsent(ctx context.Context, user *entity.User) (bool, error)
	// CreateUser inserts unconditionally, overwriting on id collision.
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// UpdateUser merges the patch and returns the updated user, or nil when absent.
	UpdateUser(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error)
	// DeleteUser removes a user by ID and reports whether it existed.
	DeleteUser(ctx context.Context, id string) (bool, error)
}
