package repo

import (
	"context"
	"testing"
	"time"
)

func TestSearchHistory_AppendAndOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	uid := seedUser(t, db, "ada@example.com")

	loc := "Paris"
	older, err := CreateSearchHistory(ctx, db, uid, "I want to visit Paris", &loc, nil)
	if err != nil {
		t.Fatalf("CreateSearchHistory: %v", err)
	}
	db.Model(older).Update("created_at", time.Now().UTC().Add(-time.Hour))

	cat := "dining"
	if _, err := CreateSearchHistory(ctx, db, uid, "restaurants nearby", nil, &cat); err != nil {
		t.Fatalf("CreateSearchHistory: %v", err)
	}

	items, err := ListSearchHistory(ctx, db, uid)
	if err != nil {
		t.Fatalf("ListSearchHistory: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[0].SearchQuery != "restaurants nearby" {
		t.Fatalf("order wrong: first = %q, want newest", items[0].SearchQuery)
	}
	if items[0].Category == nil || *items[0].Category != "dining" {
		t.Fatalf("category = %v", items[0].Category)
	}
	if items[1].Location == nil || *items[1].Location != "Paris" {
		t.Fatalf("location = %v", items[1].Location)
	}
}

func TestSearchHistory_Pagination(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	uid := seedUser(t, db, "ada@example.com")

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		h, err := CreateSearchHistory(ctx, db, uid, "query", nil, nil)
		if err != nil {
			t.Fatalf("seed #%d: %v", i, err)
		}
		db.Model(h).Update("created_at", base.Add(time.Duration(i)*time.Minute))
	}

	total, err := CountSearchHistory(ctx, db, uid)
	if err != nil || total != 5 {
		t.Fatalf("count = %d (%v), want 5", total, err)
	}

	page, err := ListSearchHistoryPage(ctx, db, uid, 2, 2)
	if err != nil {
		t.Fatalf("ListSearchHistoryPage: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("page len = %d, want 2", len(page))
	}

	tail, err := ListSearchHistoryPage(ctx, db, uid, 4, 2)
	if err != nil || len(tail) != 1 {
		t.Fatalf("tail len = %d (%v), want 1", len(tail), err)
	}
}

func TestHistoryStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	uid := seedUser(t, db, "ada@example.com")

	count, latest, err := HistoryStats(ctx, db, uid)
	if err != nil {
		t.Fatalf("HistoryStats: %v", err)
	}
	if count != 0 || latest != nil {
		t.Fatalf("empty history: count=%d latest=%v", count, latest)
	}

	if _, err := CreateSearchHistory(ctx, db, uid, "q1", nil, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := CreateSearchHistory(ctx, db, uid, "q2", nil, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	count, latest, err = HistoryStats(ctx, db, uid)
	if err != nil {
		t.Fatalf("HistoryStats: %v", err)
	}
	if count != 2 || latest == nil {
		t.Fatalf("count=%d latest=%v", count, latest)
	}
}
