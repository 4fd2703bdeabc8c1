// Package services – FavoriteService
//
// This file implements the saved-locations feature: list, add, and delete.
// Ownership is enforced here rather than in the repository so the HTTP layer
// can distinguish "someone else's favorite" (ErrForbidden) from "already
// gone" (lenient success).
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/domain"
	"github.com/voyago/travel-assistant/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// ErrEmptyLocation is returned when a favorite is added without a location.
var ErrEmptyLocation = errors.New("location is required")

// FavoriteService manages a user's saved locations.
type FavoriteService struct {
	DB *gorm.DB
}

// List returns the user's favorites, newest first. An empty list is not an
// error.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]domain.Favorite, error) {
	tr := otel.Tracer("services/FavoriteService")
	ctx, span := tr.Start(ctx, "List")
	span.SetAttributes(attribute.String("user.id", userID))
	defer span.End()

	return repo.ListFavorites(ctx, s.DB, userID)
}

// Add saves a location for the user. Duplicate locations are permitted; the
// client decides whether to dedupe.
func (s *FavoriteService) Add(ctx context.Context, userID, location string, notes *string) (*domain.Favorite, error) {
	tr := otel.Tracer("services/FavoriteService")
	ctx, span := tr.Start(ctx, "Add")
	span.SetAttributes(attribute.String("user.id", userID))
	defer span.End()

	location = strings.TrimSpace(location)
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if notes != nil {
		trimmed := strings.TrimSpace(*notes)
		if trimmed == "" {
			notes = nil
		} else {
			notes = &trimmed
		}
	}
	return repo.CreateFavorite(ctx, s.DB, userID, location, notes)
}

// Delete removes the favorite with id when it belongs to userID.
//
// A missing favorite succeeds (the desired end state holds); a favorite
// owned by someone else returns ErrForbidden and is left untouched.
func (s *FavoriteService) Delete(ctx context.Context, userID, id string) error {
	tr := otel.Tracer("services/FavoriteService")
	ctx, span := tr.Start(ctx, "Delete")
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("favorite.id", id),
	)
	defer span.End()

	f, err := repo.GetFavorite(ctx, s.DB, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if f.UserID != userID {
		return ErrForbidden
	}
	return repo.DeleteFavorite(ctx, s.DB, id)
}
