// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the WeatherCache
// model. Rows older than the caller's TTL are treated as absent.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/domain"
)

// GetWeatherCache returns the cached payload for location when it is fresher
// than ttl, or ErrNotFound.
func GetWeatherCache(ctx context.Context, db *gorm.DB, location string, ttl time.Duration, now time.Time) ([]byte, error) {
	var row domain.WeatherCache
	err := db.WithContext(ctx).Where("location = ?", location).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if now.Sub(row.UpdatedAt) >= ttl {
		return nil, ErrNotFound
	}
	return row.Data, nil
}

// PutWeatherCache upserts the payload for location and refreshes its
// timestamp.
func PutWeatherCache(ctx context.Context, db *gorm.DB, location string, data []byte) error {
	now := time.Now().UTC()
	res := db.WithContext(ctx).
		Model(&domain.WeatherCache{}).
		Where("location = ?", location).
		Updates(map[string]any{"data": datatypes.JSON(data), "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&domain.WeatherCache{
		Location:  location,
		Data:      datatypes.JSON(data),
		UpdatedAt: now,
	}).Error
}
