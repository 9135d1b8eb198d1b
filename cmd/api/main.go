package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/carkenya/internal/handler/http"
	redisclient "github.com/mikiasgoitom/carkenya/internal/infrastructure/cache"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/catalog"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/clock"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/config"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/carkenya/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/carkenya/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/scheduler"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/store"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/validator"
	"github.com/mikiasgoitom/carkenya/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewLogrusLogger(appConfig.GetLogLevel(), appConfig.GetLogFormat(), os.Stdout)
	gin.SetMode(appConfig.GetGinMode())

	// Register custom validators
	validator.RegisterCustomValidators()

	ctx := context.Background()
	systemClock := clock.System{}

	// Dependency Injection: Repositories
	memStore := memory.NewStore(
		memory.WithClock(systemClock),
		memory.WithMaxSessions(appConfig.GetMaxSessions()),
	)
	userRepo := memory.NewUserRepository(memStore)
	blogRepo := memory.NewBlogRepository(memStore)
	postRepo := memory.NewPostRepository(memStore)
	notificationRepo := memory.NewNotificationRepository(memStore)
	catalogRepo := memory.NewCatalogRepository(memStore)

	// Optional Dependency Injection: Redis-backed sessions
	var sessionRepo contract.ISessionRepository = memory.NewSessionRepository(memStore)
	if redisURL := appConfig.GetRedisURL(); redisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, redisURL)
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb)
		sessionRepo = store.NewSessionCacheStore(rdb, systemClock)
		appLogger.Infof("sessions stored in redis")
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher(appConfig.GetBcryptCost())
	tokenGenerator := randomgenerator.NewTokenGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	sessionUsecase := usecase.NewSessionUsecase(sessionRepo, tokenGenerator, systemClock, appConfig.GetSessionTTL(), appLogger)
	notificationUsecase := usecase.NewNotificationUsecase(notificationRepo, uuidGenerator, systemClock, appLogger)
	usecases := handlerHttp.Usecases{
		Auth:          usecase.NewAuthUsecase(userRepo, sessionUsecase, hasher, appValidator, uuidGenerator, systemClock, appLogger),
		Users:         usecase.NewUserUsecase(userRepo, sessionUsecase, appValidator, appLogger),
		Blogs:         usecase.NewBlogUseCase(blogRepo, notificationUsecase, appValidator, uuidGenerator, systemClock, appLogger),
		Posts:         usecase.NewPostUsecase(postRepo, appValidator, uuidGenerator, systemClock, appLogger),
		Analytics:     usecase.NewAnalyticsUsecase(userRepo, blogRepo, systemClock, appLogger),
		Notifications: notificationUsecase,
		Catalog:       usecase.NewCatalogUsecase(catalogRepo, appLogger),
	}

	// Bootstrap data
	if err := usecase.NewSeedUsecase(userRepo, hasher, systemClock, appConfig, appLogger).Seed(ctx); err != nil {
		appLogger.Fatalf("Failed to seed accounts: %v", err)
	}
	if path := appConfig.GetCatalogFile(); path != "" {
		cars, news, err := catalog.Seed(ctx, catalogRepo, path)
		if err != nil {
			appLogger.Fatalf("Failed to load catalog: %v", err)
		}
		appLogger.Infof("catalog loaded: %d cars, %d news articles", cars, news)
	}

	// Background jobs
	sweeper := scheduler.NewSessionSweeper(sessionRepo, appLogger)
	if err := sweeper.Start(appConfig.GetSessionSweepSchedule()); err != nil {
		appLogger.Fatalf("Failed to schedule session sweep: %v", err)
	}
	defer sweeper.Stop()

	// Setup API routes
	router := gin.New()
	router.Use(gin.Recovery())
	appRouter := handlerHttp.NewRouter(usecases, appConfig, appLogger)
	appRouter.SetupRoutes(router)

	// Start the server
	srv := &http.Server{
		Addr:              ":" + appConfig.GetPort(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		appLogger.Infof("Server running on port %s", appConfig.GetPort())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("graceful shutdown failed: %v", err)
	}
}
