package services

import (
	"context"
	"testing"
	"time"

	"github.com/voyago/travel-assistant/internal/repo"
)

func TestHistory_ListPage(t *testing.T) {
	db := newTestDB(t)
	u := seedUserRow(t, db, "ada@example.com")
	svc := &HistoryService{DB: db}
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		h, err := repo.CreateSearchHistory(ctx, db, u.ID, "query", nil, nil)
		if err != nil {
			t.Fatalf("seed #%d: %v", i, err)
		}
		db.Model(h).Update("created_at", base.Add(time.Duration(i)*time.Minute))
	}

	page, err := svc.ListPage(ctx, u.ID, 1, 2)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if page.Total != 5 || page.TotalPages != 3 || len(page.Items) != 2 {
		t.Fatalf("page = %+v", page)
	}

	last, err := svc.ListPage(ctx, u.ID, 3, 2)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if len(last.Items) != 1 {
		t.Fatalf("last page items = %d, want 1", len(last.Items))
	}
}

func TestHistory_ListPageClamps(t *testing.T) {
	db := newTestDB(t)
	u := seedUserRow(t, db, "ada@example.com")
	svc := &HistoryService{DB: db}

	page, err := svc.ListPage(context.Background(), u.ID, -3, 0)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if page.Page != 1 || page.PerPage != 20 {
		t.Fatalf("clamping failed: page=%d per_page=%d", page.Page, page.PerPage)
	}

	page, err = svc.ListPage(context.Background(), u.ID, 1, 10_000)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if page.PerPage != 100 {
		t.Fatalf("per_page = %d, want capped at 100", page.PerPage)
	}
}

func TestHistory_ETagChangesOnAppend(t *testing.T) {
	db := newTestDB(t)
	u := seedUserRow(t, db, "ada@example.com")
	svc := &HistoryService{DB: db}
	ctx := context.Background()

	before, err := svc.ETag(ctx, u.ID, 1, 20)
	if err != nil {
		t.Fatalf("ETag: %v", err)
	}

	again, err := svc.ETag(ctx, u.ID, 1, 20)
	if err != nil {
		t.Fatalf("ETag: %v", err)
	}
	if before != again {
		t.Fatalf("ETag unstable without writes: %q vs %q", before, again)
	}

	if _, err := repo.CreateSearchHistory(ctx, db, u.ID, "new query", nil, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	after, err := svc.ETag(ctx, u.ID, 1, 20)
	if err != nil {
		t.Fatalf("ETag: %v", err)
	}
	if after == before {
		t.Fatalf("ETag did not change after append: %q", after)
	}

	// The validator folds in paging parameters.
	other, err := svc.ETag(ctx, u.ID, 2, 20)
	if err != nil {
		t.Fatalf("ETag: %v", err)
	}
	if other == after {
		t.Fatalf("ETag identical across pages: %q", other)
	}
}
