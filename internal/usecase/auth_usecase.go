package usecase

import (
	"context"
	"sync"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

const (
	errInvalidCredentials = "invalid email or password"
	errEmailTaken         = "email already registered"
)

// AuthUsecase implements IAuthUseCase.
type AuthUsecase struct {
	userRepo  contract.IUserRepository
	sessions  usecasecontract.ISessionUseCase
	hasher    contract.IHasher
	validator usecasecontract.IValidator
	uuidgen   contract.IUUIDGenerator
	clock     contract.IClock
	logger    usecasecontract.IAppLogger

	// decoy is compared against when the email is unknown so both login
	// failures cost one bcrypt comparison.
	decoyOnce sync.Once
	decoy     string
}

func NewAuthUsecase(
	userRepo contract.IUserRepository,
	sessions usecasecontract.ISessionUseCase,
	hasher contract.IHasher,
	validator usecasecontract.IValidator,
	uuidgen contract.IUUIDGenerator,
	clock contract.IClock,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		sessions:  sessions,
		hasher:    hasher,
		validator: validator,
		uuidgen:   uuidgen,
		clock:     clock,
		logger:    logger,
	}
}

// check if AuthUsecase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// Register creates an account and signs it in. The email check and the
// insert happen atomically in the repository.
func (uc *AuthUsecase) Register(ctx context.Context, email, password, name string) (*entity.AuthUser, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}
	if err := uc.validator.ValidateName(name); err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}

	hashed, err := uc.hasher.HashPassword(password)
	if err != nil {
		return nil, internal(uc.logger, "failed to process password", err)
	}

	user := &entity.User{
		ID:             uc.uuidgen.NewID("user"),
		Email:          email,
		PasswordHash:   hashed,
		Name:           name,
		Avatar:         entity.DefaultAvatarURL(email),
		Role:           entity.DefaultRole(),
		IsActive:       true,
		FavoriteBrands: []string{},
		CreatedAt:      uc.clock.Now(),
	}
	created, err := uc.userRepo.CreateUserIfEmailAbsent(ctx, user)
	if err != nil {
		return nil, internal(uc.logger, "failed to create user", err)
	}
	if !created {
		metrics.IncAuthAttempt("register", "conflict")
		return nil, apperr.Conflict(errEmailTaken)
	}

	token, err := uc.sessions.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	metrics.IncAuthAttempt("register", "success")
	uc.logger.Infof("user %s registered", user.ID)
	return toAuthUser(user, token), nil
}

// Login verifies credentials and opens a new session. Unknown emails and
// wrong passwords are reported identically.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.AuthUser, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, internal(uc.logger, "failed to look up user", err)
	}
	if user == nil {
		_ = uc.hasher.ComparePasswordHash(password, uc.decoyHash())
		metrics.IncAuthAttempt("login", "invalid_credentials")
		return nil, apperr.Unauthenticated(errInvalidCredentials)
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		metrics.IncAuthAttempt("login", "invalid_credentials")
		return nil, apperr.Unauthenticated(errInvalidCredentials)
	}
	if !user.IsActive {
		metrics.IncAuthAttempt("login", "deactivated")
		return nil, apperr.Forbidden(errAccountDeactivated)
	}

	token, err := uc.sessions.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	metrics.IncAuthAttempt("login", "success")
	return toAuthUser(user, token), nil
}

// Logout ends the presented session. Deactivated accounts may still log out.
func (uc *AuthUsecase) Logout(ctx context.Context, caller *entity.User, token string) error {
	if caller == nil {
		return apperr.Unauthenticated(errNotAuthenticated)
	}
	return uc.sessions.DeleteSession(ctx, token)
}

func (uc *AuthUsecase) Me(ctx context.Context, caller *entity.User) (*entity.User, error) {
	if err := requireAuthenticated(caller); err != nil {
		return nil, err
	}
	return caller, nil
}

// Authenticate resolves token to the session owner. A session whose user has
// since been deleted resolves to nil as well.
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	session, err := uc.sessions.GetSession(ctx, token)
	if err != nil || session == nil {
		return nil, err
	}
	user, err := uc.userRepo.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, internal(uc.logger, "failed to load session user", err)
	}
	return user, nil
}

func toAuthUser(u *entity.User, token string) *entity.AuthUser {
	return &entity.AuthUser{
		ID:     u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Avatar: u.Avatar,
		Role:   u.Role,
		Token:  token,
	}
}

func (uc *AuthUsecase) decoyHash() string {
	uc.decoyOnce.Do(func() {
		h, err := uc.hasher.HashPassword("carkenya-unknown-account")
		if err != nil {
			uc.logger.Warnf("failed to prepare decoy password hash: %v", err)
			return
		}
		uc.decoy = h
	})
	return uc.decoy
}
