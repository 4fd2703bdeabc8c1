// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the Session
// model backing the cookie-based login flow. Expired rows are ignored on
// lookup and swept opportunistically.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/domain"
)

// CreateSession inserts a session for userID valid for ttl and returns it.
func CreateSession(ctx context.Context, db *gorm.DB, userID string, ttl time.Duration) (*domain.Session, error) {
	now := time.Now().UTC()
	s := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSession returns the non-expired session for token, or ErrNotFound.
func GetSession(ctx context.Context, db *gorm.DB, token string, now time.Time) (*domain.Session, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var s domain.Session
	err := db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSession removes a session by token. Deleting a missing token is a
// no-op.
func DeleteSession(ctx context.Context, db *gorm.DB, token string) error {
	return db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&domain.Session{}).Error
}

// PurgeExpiredSessions removes rows whose expiry has passed. Safe to call
// periodically or on startup.
func PurgeExpiredSessions(ctx context.Context, db *gorm.DB, now time.Time) error {
	return db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&domain.Session{}).Error
}
