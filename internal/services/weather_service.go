// Package services – WeatherService
//
// This file implements the cache-fronted weather lookup. Generated payloads
// are stored per location with a TTL so repeated queries for the same place
// return a stable answer instead of re-rolling random values on every
// request.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/repo"
	"github.com/voyago/travel-assistant/internal/travel"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// WeatherService serves weather payloads with a per-location TTL cache.
type WeatherService struct {
	DB *gorm.DB

	// TTL controls how long a cached payload stays fresh. Zero or negative
	// disables caching.
	TTL time.Duration
}

// Get returns the weather for location, from cache when fresh, otherwise
// freshly generated and written back. Cache failures degrade to generation;
// the endpoint never fails because the cache did.
func (s *WeatherService) Get(ctx context.Context, location string) (*travel.Weather, error) {
	tr := otel.Tracer("services/WeatherService")
	ctx, span := tr.Start(ctx, "Get")
	defer span.End()

	key := cacheKey(location)
	span.SetAttributes(attribute.String("weather.location", key))

	if s.DB != nil && s.TTL > 0 {
		raw, err := repo.GetWeatherCache(ctx, s.DB, key, s.TTL, time.Now().UTC())
		if err == nil {
			var w travel.Weather
			if uerr := json.Unmarshal(raw, &w); uerr == nil {
				span.SetAttributes(attribute.Bool("weather.cache_hit", true))
				return &w, nil
			}
			log.Warn().Str("location", key).Msg("corrupt weather cache entry, regenerating")
		} else if !errors.Is(err, repo.ErrNotFound) {
			log.Warn().Err(err).Str("location", key).Msg("weather cache read failed")
		}
	}

	w := travel.GenerateWeather(location)

	if s.DB != nil && s.TTL > 0 {
		if raw, merr := json.Marshal(w); merr == nil {
			if werr := repo.PutWeatherCache(ctx, s.DB, key, raw); werr != nil {
				log.Warn().Err(werr).Str("location", key).Msg("weather cache write failed")
			}
		}
	}
	return &w, nil
}

// cacheKey normalizes a location for cache lookups so "Paris" and "paris "
// share an entry.
func cacheKey(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}
