// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Favorite
// model.
//
// Functions:
//
//   - CreateFavorite(ctx, db, userID, location, notes) -> *domain.Favorite, error
//     Inserts a favorite; duplicates of (userID, location) are permitted.
//
//   - ListFavorites(ctx, db, userID) -> []domain.Favorite, error
//     Returns all favorites for a user, newest first.
//
//   - GetFavorite(ctx, db, id) -> *domain.Favorite, error
//     Fetches by id regardless of owner; the service layer enforces
//     ownership so it can distinguish 403 from a lenient no-op.
//
//   - DeleteFavorite(ctx, db, id) -> error
//     Removes the row; deleting a missing id is a no-op.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/domain"
)

// CreateFavorite inserts a favorite owned by userID. No dedup is applied.
func CreateFavorite(ctx context.Context, db *gorm.DB, userID, location string, notes *string) (*domain.Favorite, error) {
	f := &domain.Favorite{
		ID:        uuid.NewString(),
		UserID:    userID,
		Location:  location,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	return f, nil
}

// ListFavorites returns all favorites belonging to userID, newest first.
func ListFavorites(ctx context.Context, db *gorm.DB, userID string) ([]domain.Favorite, error) {
	var out []domain.Favorite
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// GetFavorite fetches a favorite by id, or ErrNotFound.
func GetFavorite(ctx context.Context, db *gorm.DB, id string) (*domain.Favorite, error) {
	var f domain.Favorite
	if err := db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteFavorite removes a favorite by id. Missing rows are ignored.
func DeleteFavorite(ctx context.Context, db *gorm.DB, id string) error {
	return db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&domain.Favorite{}).Error
}
