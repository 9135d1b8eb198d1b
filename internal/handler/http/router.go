package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/mikiasgoitom/carkenya/internal/handler/http/middleware"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// Usecases groups the business services the router exposes.
type Usecases struct {
	Auth          usecasecontract.IAuthUseCase
	Users         usecasecontract.IUserUseCase
	Blogs         usecasecontract.IBlogUseCase
	Posts         usecasecontract.IPostUseCase
	Analytics     usecasecontract.IAnalyticsUseCase
	Notifications usecasecontract.INotificationUseCase
	Catalog       usecasecontract.ICatalogUseCase
}

type Router struct {
	authUsecase      usecasecontract.IAuthUseCase
	authHandler      *AuthHandler
	userHandler      *UserHandler
	blogHandler      *BlogHandler
	postHandler      *PostHandler
	dashboardHandler *DashboardHandler
	config           usecasecontract.IConfigProvider
	log              logrus.FieldLogger
}

func NewRouter(uc Usecases, config usecasecontract.IConfigProvider, log logrus.FieldLogger) *Router {
	return &Router{
		authUsecase:      uc.Auth,
		authHandler:      NewAuthHandler(uc.Auth),
		userHandler:      NewUserHandler(uc.Users),
		blogHandler:      NewBlogHandler(uc.Blogs),
		postHandler:      NewPostHandler(uc.Posts),
		dashboardHandler: NewDashboardHandler(uc.Analytics, uc.Notifications, uc.Catalog),
		config:           config,
		log:              log,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	origins := r.config.GetCORSAllowedOrigins()
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(middleware.RequestLogger(r.log))
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	if rps := r.config.GetRateLimitPerSecond(); rps > 0 {
		lmt := tollbooth.NewLimiter(rps, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
		lmt.SetMessage("Too many requests, please try again later.")
		router.Use(middleware.RateLimiter(lmt))
	}

	router.GET("/", Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleWare(r.authUsecase))

	// Public routes (caller resolved when a token is sent)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
	}
	v1.GET("/blogs", r.blogHandler.GetBlogsHandler)
	v1.GET("/blogs/:id", r.blogHandler.GetBlogDetailHandler)
	v1.GET("/posts", r.postHandler.ListPosts)
	v1.GET("/cars", r.dashboardHandler.ListCars)
	v1.GET("/news", r.dashboardHandler.ListNews)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.RequireAuth())
	{
		protected.POST("/auth/logout", r.authHandler.Logout)
		protected.GET("/auth/me", r.authHandler.Me)

		// Admin checks happen in the usecases
		protected.GET("/users", r.userHandler.ListUsers)
		protected.PUT("/users/:id", r.userHandler.UpdateUser)
		protected.DELETE("/users/:id", r.userHandler.DeleteUser)
		protected.PATCH("/users/:id/active", r.userHandler.ToggleActive)

		protected.POST("/blogs", r.blogHandler.CreateBlogHandler)
		protected.PUT("/blogs/:id", r.blogHandler.UpdateBlogHandler)
		protected.DELETE("/blogs/:id", r.blogHandler.DeleteBlogHandler)
		protected.POST("/blogs/:id/like", r.blogHandler.LikeBlogHandler)
		protected.POST("/blogs/:id/comments", r.blogHandler.CommentBlogHandler)

		protected.POST("/posts", r.postHandler.CreatePost)
		protected.PUT("/posts/:id", r.postHandler.UpdatePost)
		protected.DELETE("/posts/:id", r.postHandler.DeletePost)
		protected.POST("/posts/:id/like", r.postHandler.LikePost)

		protected.GET("/analytics", r.dashboardHandler.GetAnalytics)
		protected.GET("/notifications", r.dashboardHandler.ListNotifications)
		protected.POST("/notifications/:id/read", r.dashboardHandler.MarkNotificationRead)
	}
}
