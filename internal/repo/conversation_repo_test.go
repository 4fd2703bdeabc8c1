package repo

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/voyago/travel-assistant/internal/domain"
)

func TestAppendConversation_CreatesThenAppends(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	uid := seedUser(t, db, "ada@example.com")

	loc := "Paris"
	first := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "I want to visit Paris", Timestamp: 1},
		{Role: domain.RoleAssistant, Content: "Paris is lovely.", Timestamp: 2},
	}
	if err := AppendConversation(ctx, db, uid, &loc, first...); err != nil {
		t.Fatalf("AppendConversation: %v", err)
	}

	c, err := GetConversation(ctx, db, uid)
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if c.Location == nil || *c.Location != "Paris" {
		t.Fatalf("location = %v", c.Location)
	}

	var msgs []domain.ChatMessage
	if err := json.Unmarshal(c.Messages, &msgs); err != nil {
		t.Fatalf("unmarshal messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}

	// Second turn appends and updates the location.
	loc2 := "Tokyo"
	second := []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "what about Tokyo", Timestamp: 3},
		{Role: domain.RoleAssistant, Content: "Tokyo is great.", Timestamp: 4},
	}
	if err := AppendConversation(ctx, db, uid, &loc2, second...); err != nil {
		t.Fatalf("second AppendConversation: %v", err)
	}

	c, err = GetConversation(ctx, db, uid)
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if err := json.Unmarshal(c.Messages, &msgs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(msgs) != 4 {
		t.Fatalf("len = %d, want 4", len(msgs))
	}
	if msgs[3].Content != "Tokyo is great." {
		t.Fatalf("last message = %q", msgs[3].Content)
	}
	if c.Location == nil || *c.Location != "Tokyo" {
		t.Fatalf("location = %v, want Tokyo", c.Location)
	}
}

func TestAppendConversation_NilLocationKeepsPrevious(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	uid := seedUser(t, db, "ada@example.com")

	loc := "Rome"
	if err := AppendConversation(ctx, db, uid, &loc,
		domain.ChatMessage{Role: domain.RoleUser, Content: "Rome", Timestamp: 1}); err != nil {
		t.Fatalf("AppendConversation: %v", err)
	}
	if err := AppendConversation(ctx, db, uid, nil,
		domain.ChatMessage{Role: domain.RoleUser, Content: "thanks", Timestamp: 2}); err != nil {
		t.Fatalf("AppendConversation: %v", err)
	}

	c, err := GetConversation(ctx, db, uid)
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if c.Location == nil || *c.Location != "Rome" {
		t.Fatalf("location = %v, want Rome retained", c.Location)
	}
}
