package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/demoforums/forum-api/internal/api/handler"
	"github.com/demoforums/forum-api/internal/api/middleware"
	"github.com/demoforums/forum-api/internal/core/domain"
	"github.com/demoforums/forum-api/internal/core/service"
	"github.com/demoforums/forum-api/internal/infrastructure/db/memory"
)

// RouterConfig carries the HTTP-layer settings the router needs.
type RouterConfig struct {
	// SecureCookies marks session cookies Secure; enable behind TLS.
	SecureCookies bool
	// CORSOrigins are the frontend origins allowed to call the API with
	// credentials.
	CORSOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *memory.Store, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("forum"))

	// --- Dependencies ---
	forumRepo := memory.NewForumRepository(store)
	postRepo := memory.NewPostRepository(store)
	commentRepo := memory.NewCommentRepository(store)
	userRepo := memory.NewUserRepository(store)

	forumService := service.NewForumService(forumRepo, log)
	postService := service.NewPostService(forumRepo, postRepo, log)
	commentService := service.NewCommentService(forumRepo, postRepo, commentRepo, log)
	userService := service.NewUserService(userRepo, log)
	sessionService := service.NewSessionService(userRepo, log)

	authHandler := handler.NewAuthHandler(sessionService, userService, cfg.SecureCookies)
	forumHandler := handler.NewForumHandler(forumService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)
	healthHandler := handler.NewHealthHandler()

	session := middleware.Session(sessionService)
	adminOnly := middleware.RBAC(sessionService, domain.RoleAdmin)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	g := e.Group("/api")
	g.POST("/auth/login", authHandler.Login)

	authed := g.Group("", session)
	authed.POST("/auth/logout", authHandler.Logout)
	authed.GET("/profile", authHandler.Profile)
	authed.POST("/profile/change-password", authHandler.ChangePassword)

	authed.GET("/forums", forumHandler.List)
	authed.POST("/forums", forumHandler.Create, adminOnly)
	authed.GET("/forums/:slug/posts", postHandler.List)
	authed.POST("/forums/:slug/posts", postHandler.Create)
	authed.GET("/forums/:slug/posts/:number", postHandler.Get)
	authed.GET("/forums/:slug/posts/:number/comments", commentHandler.List)
	authed.POST("/forums/:slug/posts/:number/comments", commentHandler.Create)

	authed.GET("/users", userHandler.List)

	return e
}
