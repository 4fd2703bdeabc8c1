// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// SearchHistory model, plus the aggregate stats query used for ETag
// generation on the history endpoint.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/domain"
)

// CreateSearchHistory appends one history row for userID. History is
// append-only: rows are never mutated or deleted.
func CreateSearchHistory(ctx context.Context, db *gorm.DB, userID, query string, location, category *string) (*domain.SearchHistory, error) {
	h := &domain.SearchHistory{
		ID:          uuid.NewString(),
		UserID:      userID,
		SearchQuery: query,
		Location:    location,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(h).Error; err != nil {
		return nil, err
	}
	return h, nil
}

// ListSearchHistory returns all history rows for userID, newest first.
func ListSearchHistory(ctx context.Context, db *gorm.DB, userID string) ([]domain.SearchHistory, error) {
	var out []domain.SearchHistory
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&out).Error
	return out, err
}

// CountSearchHistory returns the total number of history rows for userID.
func CountSearchHistory(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.SearchHistory{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// ListSearchHistoryPage returns a page of history rows for userID, newest
// first. The caller computes offset and limit.
func ListSearchHistoryPage(ctx context.Context, db *gorm.DB, userID string, offset, limit int) ([]domain.SearchHistory, error) {
	var out []domain.SearchHistory
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// HistoryStats returns aggregate metadata for a user's search history: the
// total number of rows and the maximum CreatedAt timestamp among those rows.
// Used for weak ETag generation in the HTTP layer. When the user has no
// history, the returned count is 0 and maxCreatedAt is nil.
func HistoryStats(ctx context.Context, db *gorm.DB, userID string) (count int64, maxCreatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.SearchHistory{}).Where("user_id = ?", userID)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
