package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/amberoven/bakehouse-backend/internal/config"
	"github.com/amberoven/bakehouse-backend/internal/handler"
	"github.com/amberoven/bakehouse-backend/internal/middleware"
	"github.com/amberoven/bakehouse-backend/internal/response"
	"github.com/amberoven/bakehouse-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Homepage *handler.HomepageHandler
	Cron     *handler.CronHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// The route guard runs on every request; it only acts on the
	// /dashboard and /auth page prefixes.
	router.Use(middleware.RouteGuard(authService))

	// ─── Pages ─────────────────────────────────────────────────────────
	// The dashboard SPA and auth pages are served statically behind the
	// route guard, with short-lived asset caching (1 hour).
	dashboardPages := router.Group(middleware.ProtectedPrefix)
	dashboardPages.Use(middleware.StaticCacheControl(3600))
	{
		dashboardPages.Static("/", filepath.Join(cfg.WebDir, "dashboard"))
	}
	authPages := router.Group(middleware.AuthPagePrefix)
	authPages.Use(middleware.StaticCacheControl(3600))
	{
		authPages.Static("/", filepath.Join(cfg.WebDir, "auth"))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 0. Public Group (No Auth, Cacheable) ──────────────────────────
	publicAPI := router.Group("/api/v1/public")
	publicAPI.Use(middleware.CacheControl(cfg.CategoryCacheTTL, cfg.CategoryCacheSWR))
	{
		publicAPI.GET("/categories", handlers.Category.ListPublic)
		publicAPI.GET("/products", handlers.Product.ListPublic)
		publicAPI.GET("/homepage", handlers.Homepage.GetPublic)
	}

	// Rate limiter for sign-in attempts (20 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(20, time.Minute)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/signin", authLimiter.Middleware(), handlers.Auth.SignIn)
		auth.POST("/signout", middleware.RequireAdminJWT(authService), handlers.Auth.SignOut)
		auth.GET("/session", middleware.OptionalJWT(authService), handlers.Auth.GetSession)
	}

	// ─── 2. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		adminAPI.GET("/me", handlers.Auth.Me)

		// Homepage content
		adminAPI.GET("/homepage", handlers.Homepage.Get)
		adminAPI.PUT("/homepage", handlers.Homepage.Update)

		// Category management
		adminAPI.GET("/categories", handlers.Category.List)
		adminAPI.POST("/categories", handlers.Category.Create)
		adminAPI.PUT("/categories/:id", handlers.Category.Update)
		adminAPI.DELETE("/categories/:id", handlers.Category.Delete)

		// Product management
		adminAPI.GET("/products", handlers.Product.List)
		adminAPI.GET("/products/:id", handlers.Product.Get)
		adminAPI.POST("/products", handlers.Product.Create)
		adminAPI.PUT("/products/:id", handlers.Product.Update)
		adminAPI.DELETE("/products/:id", handlers.Product.Delete)
	}

	// ─── 3. Cron Group (Shared Secret) ─────────────────────────────────
	cron := router.Group("/api/v1/cron")
	{
		cron.GET("/cleanup-sessions", handlers.Cron.CleanupSessions)
	}

	return router
}
