package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/voyago/travel-assistant/internal/domain"
)

func TestMockProvider_NoLocation(t *testing.T) {
	p := NewMockProvider()

	reply, err := p.Chat(context.Background(), "help me plan something fun for my holidays")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.Location != nil {
		t.Fatalf("location = %q, want nil", *reply.Location)
	}
	if !strings.Contains(reply.Message.Content, "Where would you like to travel?") {
		t.Fatalf("unexpected fallback content: %q", reply.Message.Content)
	}
	if reply.Message.Role != domain.RoleAssistant {
		t.Fatalf("role = %q, want assistant", reply.Message.Role)
	}
}

func TestMockProvider_WithLocation(t *testing.T) {
	p := NewMockProvider()

	reply, err := p.Chat(context.Background(), "I want to visit Paris")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.Location == nil || *reply.Location != "Paris" {
		t.Fatalf("location = %v, want Paris", reply.Location)
	}
	if !strings.HasPrefix(reply.Message.Content, "Paris is a wonderful destination!") {
		t.Fatalf("unexpected content: %q", reply.Message.Content)
	}
}

func TestMockProvider_StampsTimestamp(t *testing.T) {
	old := nowMillis
	nowMillis = func() int64 { return 1700000000000 }
	defer func() { nowMillis = old }()

	p := NewMockProvider()
	reply, err := p.Chat(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.Message.Timestamp != 1700000000000 {
		t.Fatalf("timestamp = %d, want stamped value", reply.Message.Timestamp)
	}
}
