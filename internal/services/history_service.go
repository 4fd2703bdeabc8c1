// Package services – HistoryService
//
// This file implements read access to the append-only search history. Writes
// happen inside ChatService as part of a chat turn; this service only lists,
// pages, and summarizes.
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/domain"
	"github.com/voyago/travel-assistant/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// HistoryPage is one page of search history plus paging metadata.
type HistoryPage struct {
	Items      []domain.SearchHistory `json:"items"`
	Page       int                    `json:"page"`
	PerPage    int                    `json:"per_page"`
	Total      int64                  `json:"total"`
	TotalPages int                    `json:"total_pages"`
}

// HistoryService exposes a user's search history.
type HistoryService struct {
	DB *gorm.DB
}

// List returns the user's entire history, newest first.
func (s *HistoryService) List(ctx context.Context, userID string) ([]domain.SearchHistory, error) {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "List")
	span.SetAttributes(attribute.String("user.id", userID))
	defer span.End()

	return repo.ListSearchHistory(ctx, s.DB, userID)
}

// ListPage returns one page of history, newest first. page is 1-based;
// out-of-range values are clamped to sane defaults.
func (s *HistoryService) ListPage(ctx context.Context, userID string, page, perPage int) (*HistoryPage, error) {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "ListPage")
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("page", page),
		attribute.Int("per_page", perPage),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}
	if perPage > 100 {
		perPage = 100
	}

	total, err := repo.CountSearchHistory(ctx, s.DB, userID)
	if err != nil {
		return nil, err
	}

	items, err := repo.ListSearchHistoryPage(ctx, s.DB, userID, (page-1)*perPage, perPage)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return &HistoryPage{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// ETag returns a weak validator covering the user's history: it changes
// whenever a row is appended. Pagination parameters are folded in so each
// page validates independently.
func (s *HistoryService) ETag(ctx context.Context, userID string, page, perPage int) (string, error) {
	count, latest, err := repo.HistoryStats(ctx, s.DB, userID)
	if err != nil {
		return "", err
	}
	var ts int64
	if latest != nil {
		ts = latest.UnixNano()
	}
	return fmt.Sprintf(`W/"h-%d-%d-%d-%d"`, count, ts, page, perPage), nil
}
