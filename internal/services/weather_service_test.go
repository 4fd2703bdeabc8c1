package services

import (
	"context"
	"testing"
	"time"

	"github.com/voyago/travel-assistant/internal/repo"
)

func TestWeather_CachedResultIsStable(t *testing.T) {
	db := newTestDB(t)
	svc := &WeatherService{DB: db, TTL: 10 * time.Minute}
	ctx := context.Background()

	first, err := svc.Get(ctx, "Paris")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	// Repeated lookups within the TTL serve the cached payload, so the
	// random values cannot re-roll.
	for i := 0; i < 5; i++ {
		again, err := svc.Get(ctx, "Paris")
		if err != nil {
			t.Fatalf("Get #%d: %v", i, err)
		}
		if again.Temperature != first.Temperature || again.Condition != first.Condition ||
			again.Humidity != first.Humidity || again.WindSpeed != first.WindSpeed ||
			len(again.Activities) != len(first.Activities) {
			t.Fatalf("cached weather changed: %+v vs %+v", again, first)
		}
	}
}

func TestWeather_CacheKeyNormalized(t *testing.T) {
	db := newTestDB(t)
	svc := &WeatherService{DB: db, TTL: 10 * time.Minute}
	ctx := context.Background()

	first, err := svc.Get(ctx, "Paris")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	same, err := svc.Get(ctx, "  paris ")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if same.Temperature != first.Temperature || same.Condition != first.Condition {
		t.Fatalf("case/space variants missed the cache: %+v vs %+v", same, first)
	}
}

func TestWeather_CacheDisabled(t *testing.T) {
	db := newTestDB(t)
	svc := &WeatherService{DB: db, TTL: 0}
	ctx := context.Background()

	if _, err := svc.Get(ctx, "Paris"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	// With caching off, nothing is persisted.
	if _, err := repo.GetWeatherCache(ctx, db, "paris", time.Hour, time.Now().UTC()); err == nil {
		t.Fatal("cache row written despite TTL 0")
	}
}

func TestWeather_NoDB(t *testing.T) {
	svc := &WeatherService{TTL: time.Minute}
	w, err := svc.Get(context.Background(), "Paris")
	if err != nil || w == nil {
		t.Fatalf("Get without DB: %v", err)
	}
}
