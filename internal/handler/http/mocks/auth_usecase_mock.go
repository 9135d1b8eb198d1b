package mocks

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailRegister     bool
	ShouldFailLogin        bool
	ShouldFailAuthenticate bool
	DeactivatedLogin       bool

	// Return values
	MockUser  entity.User
	MockToken string

	LoggedOutTokens []string
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:       "user-1",
			Email:    "test@example.com",
			Name:     "Test User",
			Role:     entity.UserRoleUser,
			IsActive: true,
		},
		MockToken: "token_mock",
	}
}

func (m *MockAuthUsecase) authUser() *entity.AuthUser {
	return &entity.AuthUser{
		ID:    m.MockUser.ID,
		Email: m.MockUser.Email,
		Name:  m.MockUser.Name,
		Role:  m.MockUser.Role,
		Token: m.MockToken,
	}
}

func (m *MockAuthUsecase) Register(ctx context.Context, email, password, name string) (*entity.AuthUser, error) {
	if m.ShouldFailRegister {
		return nil, apperr.Conflict("email already registered")
	}
	return m.authUser(), nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.AuthUser, error) {
	if m.DeactivatedLogin {
		return nil, apperr.Forbidden("account is deactivated")
	}
	if m.ShouldFailLogin {
		return nil, apperr.Unauthenticated("invalid email or password")
	}
	return m.authUser(), nil
}

func (m *MockAuthUsecase) Logout(ctx context.Context, caller *entity.User, token string) error {
	if caller == nil {
		return apperr.Unauthenticated("not authenticated")
	}
	m.LoggedOutTokens = append(m.LoggedOutTokens, token)
	return nil
}

func (m *MockAuthUsecase) Me(ctx context.Context, caller *entity.User) (*entity.User, error) {
	if caller == nil {
		return nil, apperr.Unauthenticated("not authenticated")
	}
	return caller, nil
}

// Authenticate accepts only MockToken.
func (m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if m.ShouldFailAuthenticate {
		return nil, apperr.Internal("failed to load session", nil)
	}
	if token != m.MockToken {
		return nil, nil
	}
	u := m.MockUser
	return &u, nil
}
