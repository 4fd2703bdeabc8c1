// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the Conversation
// model: one JSON-backed message log per user, appended on every chat turn.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/domain"
)

// GetConversation returns the conversation row for userID, or ErrNotFound.
func GetConversation(ctx context.Context, db *gorm.DB, userID string) (*domain.Conversation, error) {
	var c domain.Conversation
	if err := db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// AppendConversation appends msgs to the user's conversation, creating the
// row on first use. The location column tracks the latest extracted location.
func AppendConversation(ctx context.Context, db *gorm.DB, userID string, location *string, msgs ...domain.ChatMessage) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c domain.Conversation
		err := tx.Where("user_id = ?", userID).First(&c).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			raw, merr := json.Marshal(msgs)
			if merr != nil {
				return merr
			}
			c = domain.Conversation{
				ID:        uuid.NewString(),
				UserID:    userID,
				Messages:  datatypes.JSON(raw),
				Location:  location,
				CreatedAt: time.Now().UTC(),
			}
			return tx.Create(&c).Error
		case err != nil:
			return err
		}

		var existing []domain.ChatMessage
		if len(c.Messages) > 0 {
			if uerr := json.Unmarshal(c.Messages, &existing); uerr != nil {
				// Corrupt log: start over rather than fail the chat turn.
				existing = nil
			}
		}
		raw, merr := json.Marshal(append(existing, msgs...))
		if merr != nil {
			return merr
		}

		updates := map[string]any{"messages": datatypes.JSON(raw)}
		if location != nil {
			updates["location"] = *location
		}
		return tx.Model(&domain.Conversation{}).Where("id = ?", c.ID).Updates(updates).Error
	})
}
