package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-assistant/internal/ai"
	"github.com/voyago/travel-assistant/internal/travel"
)

func TestGetWeather(t *testing.T) {
	weather := stubWeatherSvc{
		get: func(_ context.Context, location string) (*travel.Weather, error) {
			if location != "Paris" {
				t.Fatalf("location = %q", location)
			}
			return &travel.Weather{Temperature: 21, Condition: "Clear", Humidity: 40, WindSpeed: 5,
				Activities: []travel.Recommendation{{Activity: "Outdoor Sightseeing"}}}, nil
		},
	}
	h := testHandlers(nil, nil, nil, nil, weather, nil)
	r := gin.New()
	r.GET("/weather/:location", h.GetWeather)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/weather/Paris", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got travel.Weather
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Condition != "Clear" || len(got.Activities) != 1 {
		t.Fatalf("body = %+v", got)
	}
}

func TestTravelEndpoints_BlankLocation(t *testing.T) {
	h := testHandlers(nil, nil, nil, nil, nil, nil)
	r := gin.New()
	r.GET("/weather/:location", h.GetWeather)
	r.GET("/cultural-info/:location", h.GetCulturalInfo)
	r.GET("/transportation/:location", h.GetTransportation)

	for _, path := range []string{"/weather/%20%20", "/cultural-info/%20%20", "/transportation/%20%20"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s status = %d, want 400", path, w.Code)
		}
		var er ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
			t.Fatalf("%s unmarshal: %v", path, err)
		}
		if er.Code != ErrCodeBadRequest {
			t.Fatalf("%s code = %q", path, er.Code)
		}
	}
}

func TestGetCulturalInfo(t *testing.T) {
	h := testHandlers(nil, nil, nil, nil, nil, nil)
	r := gin.New()
	r.GET("/cultural-info/:location", h.GetCulturalInfo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cultural-info/Tokyo", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got travel.CulturalInfo
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Languages) == 0 || len(got.Etiquette) == 0 {
		t.Fatalf("body = %+v", got)
	}
}

func TestGetTransportation(t *testing.T) {
	h := testHandlers(nil, nil, nil, nil, nil, nil)
	r := gin.New()
	r.GET("/transportation/:location", h.GetTransportation)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transportation/Oslo", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got travel.Transportation
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got.Flights) == 0 || len(got.Trains) == 0 {
		t.Fatalf("body = %+v", got)
	}
}

func postImage(r *gin.Engine, payload string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/generate-image", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateImage(t *testing.T) {
	image := stubImageSvc{
		generate: func(_ context.Context, location string) (string, error) {
			return "https://img.example.com/" + location + ".png", nil
		},
	}
	h := testHandlers(nil, nil, nil, nil, nil, image)
	r := gin.New()
	r.POST("/generate-image", h.GenerateImage)

	w := postImage(r, `{"location":"Kyoto"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got ImageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Location != "Kyoto" || got.ImageURL != "https://img.example.com/Kyoto.png" {
		t.Fatalf("body = %+v", got)
	}
}

func TestGenerateImage_BadPayload(t *testing.T) {
	h := testHandlers(nil, nil, nil, nil, nil, stubImageSvc{})
	r := gin.New()
	r.POST("/generate-image", h.GenerateImage)

	for _, payload := range []string{`{}`, `{"location":"   "}`} {
		w := postImage(r, payload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("payload %s status = %d, want 400", payload, w.Code)
		}
	}
}

func TestGenerateImage_Unconfigured(t *testing.T) {
	// No image service wired at all.
	h := testHandlers(nil, nil, nil, nil, nil, nil)
	r := gin.New()
	r.POST("/generate-image", h.GenerateImage)

	w := postImage(r, `{"location":"Kyoto"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}

	// Wired but missing credentials.
	image := stubImageSvc{
		generate: func(context.Context, string) (string, error) { return "", ai.ErrNotConfigured },
	}
	h = testHandlers(nil, nil, nil, nil, nil, image)
	r = gin.New()
	r.POST("/generate-image", h.GenerateImage)

	w = postImage(r, `{"location":"Kyoto"}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestGenerateImage_ProviderFailure(t *testing.T) {
	image := stubImageSvc{
		generate: func(context.Context, string) (string, error) { return "", errors.New("boom") },
	}
	h := testHandlers(nil, nil, nil, nil, nil, image)
	r := gin.New()
	r.POST("/generate-image", h.GenerateImage)

	w := postImage(r, `{"location":"Kyoto"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	var er ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if er.Code != ErrCodeImageFailed {
		t.Fatalf("code = %q", er.Code)
	}
}
