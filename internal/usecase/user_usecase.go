package usecase

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

const (
	errUserNotFound     = "user not found"
	errCannotEditOthers = "cannot update other users"
)

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo  contract.IUserRepository
	sessions  usecasecontract.ISessionUseCase
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	sessions usecasecontract.ISessionUseCase,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		sessions:  sessions,
		validator: validator,
		logger:    logger,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

func (uc *UserUsecase) ListUsers(ctx context.Context, caller *entity.User) ([]*entity.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, internal(uc.logger, "failed to list users", err)
	}
	return users, nil
}

// UpdateUser applies a profile patch. Ownership is checked before existence,
// so non-admins probing foreign ids always get Forbidden.
func (uc *UserUsecase) UpdateUser(ctx context.Context, caller *entity.User, userID string, patch entity.UserPatch) (*entity.User, error) {
	if err := requireOwnerOrAdmin(caller, userID, errCannotEditOthers); err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if err := uc.validator.ValidateName(*patch.Name); err != nil {
			return nil, apperr.InvalidInput(err.Error())
		}
	}
	// activation is toggled through ToggleActive only
	patch.IsActive = nil

	user, err := uc.userRepo.UpdateUser(ctx, userID, patch)
	if err != nil {
		return nil, internal(uc.logger, "failed to update user", err)
	}
	if user == nil {
		return nil, apperr.NotFound(errUserNotFound)
	}
	return user, nil
}

// DeleteUser removes the account and every session it holds.
func (uc *UserUsecase) DeleteUser(ctx context.Context, caller *entity.User, userID string) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	deleted, err := uc.userRepo.DeleteUser(ctx, userID)
	if err != nil {
		return internal(uc.logger, "failed to delete user", err)
	}
	if !deleted {
		return apperr.NotFound(errUserNotFound)
	}
	revoked, err := uc.sessions.RevokeUserSessions(ctx, userID)
	if err != nil {
		return err
	}
	uc.logger.Infof("user %s deleted by %s, %d sessions revoked", userID, caller.ID, revoked)
	return nil
}

func (uc *UserUsecase) ToggleActive(ctx context.Context, caller *entity.User, userID string, isActive bool) (*entity.User, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.UpdateUser(ctx, userID, entity.UserPatch{IsActive: &isActive})
	if err != nil {
		return nil, internal(uc.logger, "failed to update user", err)
	}
	if user == nil {
		return nil, apperr.NotFound(errUserNotFound)
	}
	return user, nil
}
