// Package httpapi wires the HTTP transport (Gin) to the application
// services, middleware, and route handlers. It centralizes the cross-cutting
// concerns: tracing, correlation IDs, logging with redaction, panic
// recovery, metrics, compression, rate limiting, CORS, security headers, and
// session authentication.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate the correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after the logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and security headers
//
// Session authentication applies per route group, not globally, so the auth
// endpoints stay reachable without a session.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/ai"
	"github.com/voyago/travel-assistant/internal/config"
	"github.com/voyago/travel-assistant/internal/http/handlers"
	"github.com/voyago/travel-assistant/internal/http/middleware"
	"github.com/voyago/travel-assistant/internal/services"
)

// maxChatMessageRunes caps chat input length; oversized messages are
// rejected before any provider call.
const maxChatMessageRunes = 2000

// RegisterRoutes attaches all middleware and endpoints to the Gin engine.
// Providers may be nil when unconfigured; the corresponding endpoints then
// answer 503 with a configuration_error code.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, provider ai.Provider, imageProvider ai.ImageProvider, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))
	r.Use(middleware.Recovery())

	// Global body cap (1 MiB): chat payloads are small, image responses are
	// outbound only.
	r.Use(limitBody(1 << 20))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// CORS: credentials must be allowed for the session cookie, which rules
	// out a wildcard origin whenever an allow-list is configured.
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-Token"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-Token"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← db/providers
	accountSvc := &services.AccountService{
		DB:            db,
		SessionTTL:    cfg.SessionTTL,
		AllowedEmails: cfg.AllowedEmails,
	}
	chatSvc := &services.ChatService{
		DB:              db,
		Provider:        provider,
		Timeout:         cfg.AI.Timeout,
		MaxMessageRunes: maxChatMessageRunes,
	}
	favSvc := &services.FavoriteService{DB: db}
	histSvc := &services.HistoryService{DB: db}
	weatherSvc := &services.WeatherService{DB: db, TTL: cfg.WeatherCacheTTL}

	var imgSvc handlers.ImageService
	if imageProvider != nil {
		imgSvc = imageProvider
	}

	h := handlers.New(chatSvc, accountSvc, favSvc, histSvc, weatherSvc, imgSvc, handlers.Options{
		CookieSecure:  cfg.Security.EnableHSTS,
		SessionMaxAge: int(cfg.SessionTTL.Seconds()),
	})

	api := groupWithPrefix(r, cfg.APIBasePath)

	// Public: account endpoints and the mock travel panels.
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)

	api.GET("/weather/:location", h.GetWeather)
	api.GET("/cultural-info/:location", h.GetCulturalInfo)
	api.GET("/transportation/:location", h.GetTransportation)
	api.POST("/generate-image", h.GenerateImage)

	// Everything else requires a valid session.
	authed := api.Group("", middleware.SessionAuth(accountSvc))
	{
		authed.POST("/chat", h.Chat)

		authed.GET("/favorites", h.ListFavorites)
		authed.POST("/favorites", h.CreateFavorite)
		authed.DELETE("/favorites/:id", h.DeleteFavorite)

		authed.GET("/user/me", h.Me)
		authed.GET("/user/history", h.ListHistory)
	}
}

// limitBody caps the request body at maxBytes via http.MaxBytesReader;
// oversized bodies error on read downstream.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
