// Package handlers implements the HTTP endpoints of the public API.
//
// This file defines the service contracts the handlers consume and the
// Handlers aggregate that binds them. Handlers are transport-thin: they
// validate input, call the application services, and translate results into
// HTTP responses. All contracts are context-aware and must be safe for
// concurrent use.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-assistant/internal/domain"
	"github.com/voyago/travel-assistant/internal/services"
	"github.com/voyago/travel-assistant/internal/travel"
)

// ChatService processes one chat turn for a user.
type ChatService interface {
	Chat(ctx context.Context, userID, message, language string) (*services.ChatResponse, error)
}

// AccountService covers registration and the session lifecycle.
type AccountService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// FavoriteService manages a user's saved locations.
type FavoriteService interface {
	List(ctx context.Context, userID string) ([]domain.Favorite, error)
	Add(ctx context.Context, userID, location string, notes *string) (*domain.Favorite, error)
	Delete(ctx context.Context, userID, id string) error
}

// HistoryService exposes the append-only search history.
type HistoryService interface {
	ListPage(ctx context.Context, userID string, page, perPage int) (*services.HistoryPage, error)
	ETag(ctx context.Context, userID string, page, perPage int) (string, error)
}

// WeatherService serves cache-fronted weather payloads.
type WeatherService interface {
	Get(ctx context.Context, location string) (*travel.Weather, error)
}

// ImageService generates a representative image for a location.
type ImageService interface {
	Generate(ctx context.Context, location string) (string, error)
}

// Handlers groups all endpoint implementations behind their service
// contracts.
type Handlers struct {
	chatSvc    ChatService
	accountSvc AccountService
	favSvc     FavoriteService
	histSvc    HistoryService
	weatherSvc WeatherService
	imageSvc   ImageService

	// cookieSecure marks the session cookie Secure; set when the API is
	// served over HTTPS.
	cookieSecure bool
	// sessionMaxAge is the Max-Age of the session cookie in seconds.
	sessionMaxAge int
}

// Options carries the non-service knobs for New.
type Options struct {
	CookieSecure  bool
	SessionMaxAge int
}

// New constructs a Handlers bound to the given services.
func New(chat ChatService, account AccountService, fav FavoriteService, hist HistoryService, weather WeatherService, image ImageService, opt Options) *Handlers {
	return &Handlers{
		chatSvc:       chat,
		accountSvc:    account,
		favSvc:        fav,
		histSvc:       hist,
		weatherSvc:    weather,
		imageSvc:      image,
		cookieSecure:  opt.CookieSecure,
		sessionMaxAge: opt.SessionMaxAge,
	}
}

// userID extracts the authenticated user id placed in the Gin context by the
// session middleware.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
