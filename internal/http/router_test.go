package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/voyago/travel-assistant/internal/ai"
	"github.com/voyago/travel-assistant/internal/config"
	"github.com/voyago/travel-assistant/internal/repo"
)

func init() { gin.SetMode(gin.TestMode) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Exec("PRAGMA foreign_keys=ON").Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() config.Config {
	return config.Config{
		GinMode:         gin.TestMode,
		APIBasePath:     "/api",
		SessionTTL:      time.Hour,
		WeatherCacheTTL: 10 * time.Minute,
		AI:              config.AIConfig{Provider: "mock", Timeout: time.Second},
		RateRPS:         1000,
		RateBurst:       1000,
		OTEL:            config.OTELConfig{ServiceName: "travel-assistant-test"},
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	r := gin.New()
	db := newTestDB(t)
	RegisterRoutes(r, db, &ai.MockProvider{}, nil, testConfig())
	return r, db
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestNoRouteEnvelope(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	req.Header.Set("Accept-Encoding", "identity")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v (%s)", err, w.Body.String())
	}
	if body["code"] != "not_found" {
		t.Fatalf("code = %v", body["code"])
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/user/me"},
		{http.MethodPost, "/api/chat"},
		{http.MethodGet, "/api/favorites"},
		{http.MethodGet, "/api/user/history"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		req.Header.Set("Accept-Encoding", "identity")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s status = %d, want 401", tc.method, tc.path, w.Code)
		}
	}
}

func TestTravelEndpointsArePublic(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, path := range []string{
		"/api/weather/Paris",
		"/api/cultural-info/Paris",
		"/api/transportation/Paris",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Accept-Encoding", "identity")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s status = %d, want 200 without a session", path, w.Code)
		}
	}
}

// TestSessionFlow exercises register, login, an authenticated call via the
// session cookie, logout, and the ensuing 401.
func TestSessionFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	post := func(path, payload, token string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Encoding", "identity")
		if token != "" {
			req.Header.Set("X-Session-Token", token)
		}
		r.ServeHTTP(w, req)
		return w
	}

	w := post("/api/register", `{"email":"ada@example.com","password":"correct horse battery"}`, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body = %s", w.Code, w.Body.String())
	}

	w = post("/api/login", `{"email":"ada@example.com","password":"correct horse battery"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", w.Code, w.Body.String())
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("unmarshal login: %v", err)
	}
	if login.Token == "" {
		t.Fatal("empty session token")
	}

	// Token works via the X-Session-Token header.
	me := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("X-Session-Token", login.Token)
	req.Header.Set("Accept-Encoding", "identity")
	r.ServeHTTP(me, req)
	if me.Code != http.StatusOK {
		t.Fatalf("me status = %d, body = %s", me.Code, me.Body.String())
	}

	w = post("/api/logout", "", login.Token)
	if w.Code != http.StatusNoContent {
		t.Fatalf("logout status = %d", w.Code)
	}

	me = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/user/me", nil)
	req.Header.Set("X-Session-Token", login.Token)
	req.Header.Set("Accept-Encoding", "identity")
	r.ServeHTTP(me, req)
	if me.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout status = %d, want 401", me.Code)
	}
}
