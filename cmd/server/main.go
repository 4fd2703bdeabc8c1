// Command server runs the travel assistant API.
//
// Boot sequence: load .env (best effort), configure zerolog, load and
// validate configuration, open SQLite and migrate, construct the AI
// providers, set up OpenTelemetry, register routes, and serve with graceful
// shutdown on SIGINT/SIGTERM.
//
// @title       Travel Assistant API
// @version     1.0
// @description Conversational travel assistant: intent-routed chat, weather, cultural info, transportation, favorites, and search history.
// @BasePath    /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/voyago/travel-assistant/docs"
	"github.com/voyago/travel-assistant/internal/ai"
	"github.com/voyago/travel-assistant/internal/config"
	httpapi "github.com/voyago/travel-assistant/internal/http"
	"github.com/voyago/travel-assistant/internal/observability"
	"github.com/voyago/travel-assistant/internal/repo"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// .env is for local development only; absence is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	setupLogging(cfg)

	gin.SetMode(cfg.GinMode)

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	// Sweep stale sessions left over from previous runs.
	if err := repo.PurgeExpiredSessions(context.Background(), db, time.Now().UTC()); err != nil {
		log.Warn().Err(err).Msg("purge expired sessions")
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.AI.Provider).Msg("configure AI provider")
	}
	imageProvider := buildImageProvider(cfg)

	ctx := context.Background()
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("setup tracing")
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, provider, imageProvider, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("provider", provider.Name()).
			Str("version", version).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
	log.Info().Msg("bye")
}

// setupLogging configures the global zerolog logger from config.
func setupLogging(cfg config.Config) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// buildProvider constructs the configured chat provider.
func buildProvider(cfg config.Config) (ai.Provider, error) {
	switch cfg.AI.Provider {
	case config.ProviderOpenAI:
		return ai.NewOpenAIProvider(cfg.AI.OpenAIKey, cfg.AI.OpenAIModel)
	case config.ProviderMistral:
		return ai.NewMistralProvider(cfg.AI.MistralKey, cfg.AI.MistralModel, cfg.AI.Timeout)
	default:
		return ai.NewMockProvider(), nil
	}
}

// buildImageProvider constructs the configured image provider, or nil when
// the credentials are missing. The image endpoint then reports
// configuration_error instead of the whole server refusing to start.
func buildImageProvider(cfg config.Config) ai.ImageProvider {
	switch cfg.AI.ImageProvider {
	case config.ImageProviderHuggingFace:
		p, err := ai.NewHuggingFaceImageProvider(cfg.AI.HuggingFace, cfg.AI.Timeout)
		if err != nil {
			log.Warn().Msg("Hugging Face image provider not configured; image endpoint disabled")
			return nil
		}
		return p
	default:
		p, err := ai.NewOpenAIImageProvider(cfg.AI.OpenAIKey)
		if err != nil {
			log.Warn().Msg("OpenAI image provider not configured; image endpoint disabled")
			return nil
		}
		return p
	}
}
