package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/config"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/carkenya/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/carkenya/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/validator"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// testEnv wires every usecase over one in-memory store.
type testEnv struct {
	clock         *testClock
	store         *memory.Store
	users         *memory.UserRepository
	blogRepo      *memory.BlogRepository
	sessionRepo   *memory.SessionRepository
	sessions      *SessionUsecase
	auth          *AuthUsecase
	userUC        *UserUsecase
	blogs         *BlogUseCaseImpl
	posts         *PostUsecase
	analytics     *AnalyticsUsecase
	notifications *NotificationUsecase
	catalog       *CatalogUsecase
	seed          *SeedUsecase
	admin         *entity.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	clk := &testClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	store := memory.NewStore(memory.WithClock(clk))
	log := logger.NewNopLogger()
	hasher := passwordservice.NewHasher(4)
	v := validator.NewValidator()
	ids := uuidgen.NewGenerator()

	env := &testEnv{
		clock:       clk,
		store:       store,
		users:       memory.NewUserRepository(store),
		blogRepo:    memory.NewBlogRepository(store),
		sessionRepo: memory.NewSessionRepository(store),
	}
	env.sessions = NewSessionUsecase(env.sessionRepo, randomgenerator.NewTokenGenerator(), clk, DefaultSessionTTL, log)
	env.auth = NewAuthUsecase(env.users, env.sessions, hasher, v, ids, clk, log)
	env.userUC = NewUserUsecase(env.users, env.sessions, v, log)
	env.notifications = NewNotificationUsecase(memory.NewNotificationRepository(store), ids, clk, log)
	env.blogs = NewBlogUseCase(env.blogRepo, env.notifications, v, ids, clk, log)
	env.posts = NewPostUsecase(memory.NewPostRepository(store), v, ids, clk, log)
	env.analytics = NewAnalyticsUsecase(env.users, env.blogRepo, clk, log)
	env.catalog = NewCatalogUsecase(memory.NewCatalogRepository(store), log)

	cfg := &config.Config{AdminEmail: "admin@carkenya.com", AdminPassword: "admin123", SeedDemoData: true}
	env.seed = NewSeedUsecase(env.users, hasher, clk, cfg, log)
	require.NoError(t, env.seed.Seed(context.Background()))

	admin, err := env.users.GetUserByID(context.Background(), SeedAdminID)
	require.NoError(t, err)
	require.NotNil(t, admin)
	env.admin = admin
	return env
}

// register creates an account and returns the resolved caller and token.
func (e *testEnv) register(t *testing.T, email, name string) (*entity.User, string) {
	t.Helper()
	au, err := e.auth.Register(context.Background(), email, "secret1", name)
	require.NoError(t, err)
	user, err := e.auth.Authenticate(context.Background(), au.Token)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user, au.Token
}

func (e *testEnv) newBlog(t *testing.T, author *entity.User, published bool) *entity.Blog {
	t.Helper()
	b, err := e.blogs.CreateBlog(context.Background(), author, blogInput("Safari Rally notes", published))
	require.NoError(t, err)
	return b
}
