package usecase

import (
	"context"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

const (
	SeedAdminID      = "admin-1"
	SeedDemoUserID   = "user-1"
	seedDemoEmail    = "user@carkenya.com"
	seedDemoPassword = "user123"
)

// SeedUsecase provisions the bootstrap accounts on an empty store.
type SeedUsecase struct {
	userRepo contract.IUserRepository
	hasher   contract.IHasher
	clock    contract.IClock
	config   usecasecontract.IConfigProvider
	logger   usecasecontract.IAppLogger
}

func NewSeedUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	clock contract.IClock,
	cfg usecasecontract.IConfigProvider,
	logger usecasecontract.IAppLogger,
) *SeedUsecase {
	return &SeedUsecase{userRepo: userRepo, hasher: hasher, clock: clock, config: cfg, logger: logger}
}

// Seed creates the administrator and, when demo data is enabled, a regular
// member. Accounts whose email is already taken are left alone.
func (uc *SeedUsecase) Seed(ctx context.Context) error {
	now := uc.clock.Now()
	admin := &entity.User{
		ID:             SeedAdminID,
		Email:          uc.config.GetAdminEmail(),
		Name:           "Ian Kangacha",
		Avatar:         entity.DefaultAvatarURL("admin"),
		Bio:            "Platform Administrator",
		Role:           entity.UserRoleAdmin,
		IsActive:       true,
		FavoriteBrands: []string{"Ferrari", "Lamborghini", "Porsche"},
		CreatedAt:      now,
	}
	if err := uc.seedUser(ctx, admin, uc.config.GetAdminPassword()); err != nil {
		return err
	}
	if !uc.config.GetSeedDemoData() {
		return nil
	}
	demo := &entity.User{
		ID:             SeedDemoUserID,
		Email:          seedDemoEmail,
		Name:           "John Doe",
		Avatar:         entity.DefaultAvatarURL("john"),
		Bio:            "Car enthusiast from Nairobi",
		Role:           entity.UserRoleUser,
		IsActive:       true,
		FavoriteBrands: []string{"Toyota", "Nissan"},
		CreatedAt:      now,
	}
	return uc.seedUser(ctx, demo, seedDemoPassword)
}

func (uc *SeedUsecase) seedUser(ctx context.Context, user *entity.User, password string) error {
	hashed, err := uc.hasher.HashPassword(password)
	if err != nil {
		return internal(uc.logger, "failed to hash seed password", err)
	}
	user.PasswordHash = hashed
	created, err := uc.userRepo.CreateUserIfEmailAbsent(ctx, user)
	if err != nil {
		return internal(uc.logger, "failed to seed user", err)
	}
	if created {
		uc.logger.Infof("seeded %s account %s", user.Role, user.Email)
	}
	return nil
}
