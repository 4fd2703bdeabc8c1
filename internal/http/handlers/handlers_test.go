package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-assistant/internal/domain"
	"github.com/voyago/travel-assistant/internal/services"
	"github.com/voyago/travel-assistant/internal/travel"
)

// Function-field stubs for the service contracts. Unset fields return zero
// values.

type stubChatSvc struct {
	chat func(ctx context.Context, userID, message, language string) (*services.ChatResponse, error)
}

func (s stubChatSvc) Chat(ctx context.Context, userID, message, language string) (*services.ChatResponse, error) {
	if s.chat != nil {
		return s.chat(ctx, userID, message, language)
	}
	return &services.ChatResponse{}, nil
}

type stubAccountSvc struct {
	register     func(ctx context.Context, email, password string) (*domain.User, error)
	login        func(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)
	logout       func(ctx context.Context, token string) error
	authenticate func(ctx context.Context, token string) (*domain.User, error)
}

func (s stubAccountSvc) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if s.register != nil {
		return s.register(ctx, email, password)
	}
	return &domain.User{}, nil
}

func (s stubAccountSvc) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	if s.login != nil {
		return s.login(ctx, email, password)
	}
	return &domain.User{}, &domain.Session{}, nil
}

func (s stubAccountSvc) Logout(ctx context.Context, token string) error {
	if s.logout != nil {
		return s.logout(ctx, token)
	}
	return nil
}

func (s stubAccountSvc) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if s.authenticate != nil {
		return s.authenticate(ctx, token)
	}
	return &domain.User{}, nil
}

type stubFavSvc struct {
	list   func(ctx context.Context, userID string) ([]domain.Favorite, error)
	add    func(ctx context.Context, userID, location string, notes *string) (*domain.Favorite, error)
	delete func(ctx context.Context, userID, id string) error
}

func (s stubFavSvc) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	if s.list != nil {
		return s.list(ctx, userID)
	}
	return nil, nil
}

func (s stubFavSvc) Add(ctx context.Context, userID, location string, notes *string) (*domain.Favorite, error) {
	if s.add != nil {
		return s.add(ctx, userID, location, notes)
	}
	return &domain.Favorite{}, nil
}

func (s stubFavSvc) Delete(ctx context.Context, userID, id string) error {
	if s.delete != nil {
		return s.delete(ctx, userID, id)
	}
	return nil
}

type stubHistSvc struct {
	listPage func(ctx context.Context, userID string, page, perPage int) (*services.HistoryPage, error)
	etag     func(ctx context.Context, userID string, page, perPage int) (string, error)
}

func (s stubHistSvc) ListPage(ctx context.Context, userID string, page, perPage int) (*services.HistoryPage, error) {
	if s.listPage != nil {
		return s.listPage(ctx, userID, page, perPage)
	}
	return &services.HistoryPage{}, nil
}

func (s stubHistSvc) ETag(ctx context.Context, userID string, page, perPage int) (string, error) {
	if s.etag != nil {
		return s.etag(ctx, userID, page, perPage)
	}
	return "", nil
}

type stubWeatherSvc struct {
	get func(ctx context.Context, location string) (*travel.Weather, error)
}

func (s stubWeatherSvc) Get(ctx context.Context, location string) (*travel.Weather, error) {
	if s.get != nil {
		return s.get(ctx, location)
	}
	return &travel.Weather{}, nil
}

type stubImageSvc struct {
	generate func(ctx context.Context, location string) (string, error)
}

func (s stubImageSvc) Generate(ctx context.Context, location string) (string, error) {
	if s.generate != nil {
		return s.generate(ctx, location)
	}
	return "", nil
}

// testHandlers bundles a Handlers instance built from the given stubs.
func testHandlers(chat ChatService, account AccountService, fav FavoriteService, hist HistoryService, weather WeatherService, image ImageService) *Handlers {
	if chat == nil {
		chat = stubChatSvc{}
	}
	if account == nil {
		account = stubAccountSvc{}
	}
	if fav == nil {
		fav = stubFavSvc{}
	}
	if hist == nil {
		hist = stubHistSvc{}
	}
	if weather == nil {
		weather = stubWeatherSvc{}
	}
	return New(chat, account, fav, hist, weather, image, Options{SessionMaxAge: 3600})
}

// asUser simulates the session middleware for a single route.
func asUser(uid string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}
