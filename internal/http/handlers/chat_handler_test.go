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
	"github.com/voyago/travel-assistant/internal/domain"
	"github.com/voyago/travel-assistant/internal/services"
)

func TestChat_Success(t *testing.T) {
	loc := "Paris"
	chat := stubChatSvc{
		chat: func(_ context.Context, uid, msg, lang string) (*services.ChatResponse, error) {
			if uid != "u1" {
				t.Fatalf("userID = %q", uid)
			}
			if msg != "I want to visit Paris" || lang != "es" {
				t.Fatalf("message = %q, language = %q", msg, lang)
			}
			return &services.ChatResponse{
				Message:  domain.ChatMessage{Role: domain.RoleAssistant, Content: "Paris is lovely.", Timestamp: 1},
				Location: &loc,
			}, nil
		},
	}
	h := testHandlers(chat, nil, nil, nil, nil, nil)
	r := gin.New()
	r.POST("/chat", asUser("u1"), h.Chat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat",
		bytes.NewBufferString(`{"message":"I want to visit Paris","language":" es "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var got services.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Message.Content != "Paris is lovely." || got.Location == nil || *got.Location != "Paris" {
		t.Fatalf("body = %+v", got)
	}
}

func TestChat_MissingMessage(t *testing.T) {
	h := testHandlers(nil, nil, nil, nil, nil, nil)
	r := gin.New()
	r.POST("/chat", asUser("u1"), h.Chat)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChat_ErrorMappings(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"empty message", services.ErrEmptyMessage, http.StatusBadRequest, ErrCodeBadRequest},
		{"too long", services.ErrMessageTooLong, http.StatusBadRequest, ErrCodeBadRequest},
		{"not configured", ai.ErrNotConfigured, http.StatusServiceUnavailable, ErrCodeConfiguration},
		{"provider failure", ai.ErrBadResponse, http.StatusBadGateway, ErrCodeChatFailed},
		{"unknown", errors.New("boom"), http.StatusBadGateway, ErrCodeChatFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chat := stubChatSvc{
				chat: func(context.Context, string, string, string) (*services.ChatResponse, error) {
					return nil, tc.err
				},
			}
			h := testHandlers(chat, nil, nil, nil, nil, nil)
			r := gin.New()
			r.POST("/chat", asUser("u1"), h.Chat)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/chat",
				bytes.NewBufferString(`{"message":"hi there traveler"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			var er ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if er.Code != tc.wantCode {
				t.Fatalf("code = %q, want %q", er.Code, tc.wantCode)
			}
		})
	}
}
