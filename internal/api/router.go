package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookhaven/bookstore-api/internal/api/handler"
	"github.com/bookhaven/bookstore-api/internal/api/middleware"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/password"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
	"github.com/bookhaven/bookstore-api/internal/core/service"
	"github.com/bookhaven/bookstore-api/internal/core/token"
	"github.com/bookhaven/bookstore-api/internal/infrastructure/config"
	mongodb "github.com/bookhaven/bookstore-api/internal/infrastructure/db/mongo"
	"github.com/bookhaven/bookstore-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb is nil unless the redis session backend is configured; sessions and
// mailer are injected so main can select the backing implementations.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, sessions ports.SessionRegistry, mailer ports.Mailer) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env != "production")

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	hasher := password.NewHasher(cfg.BcryptCost)
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	users := mongodb.NewUserRepository(db)
	blacklist := mongodb.NewBlacklistRepository(db)
	books := mongodb.NewBookRepository(db)
	orders := mongodb.NewOrderRepository(db)

	store := service.NewCredentialStore(users, hasher)
	authService := service.NewAuthService(store, issuer, blacklist, sessions, mailer, log, cfg.FrontendURL, cfg.ResetTokenTTL)
	gate := service.NewAuthGate(issuer, blacklist, sessions, users)
	bookService := service.NewBookService(books)
	orderService := service.NewOrderService(orders, books)

	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL, cfg.Env == "production")
	bookHandler := handler.NewBookHandler(bookService)
	orderHandler := handler.NewOrderHandler(orderService)

	requireAuth := middleware.Auth(gate)
	requireStaff := middleware.RequireRole(domain.RoleAdmin, domain.RoleAuthor)

	// --- Auth routes ---
	auth := e.Group("/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)
	auth.POST("/logout", authHandler.Logout, requireAuth)
	auth.GET("/me", authHandler.Me, requireAuth)
	auth.PUT("/profile", authHandler.UpdateProfile, requireAuth)
	auth.PUT("/password", authHandler.ChangePassword, requireAuth)

	// --- Book catalogue ---
	booksGroup := e.Group("/v1/books", requireAuth)
	booksGroup.GET("", bookHandler.List)
	booksGroup.GET("/:id", bookHandler.Get)
	booksGroup.POST("", bookHandler.Create, requireStaff)
	booksGroup.PUT("/:id", bookHandler.Update, requireStaff)
	booksGroup.DELETE("/:id", bookHandler.Delete, requireStaff)

	// --- Orders ---
	ordersGroup := e.Group("/v1/orders", requireAuth)
	ordersGroup.POST("", orderHandler.Create)
	ordersGroup.GET("", orderHandler.List)
	ordersGroup.GET("/:id", orderHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
