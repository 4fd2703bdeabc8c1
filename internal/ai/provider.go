// Package ai wraps chat-completion and image-generation providers behind
// small, swappable interfaces. One implementation exists per vendor (OpenAI,
// Mistral, plus an offline mock); selection is a deploy-time configuration
// choice, not runtime negotiation.
//
// Contract notes:
//   - One synchronous call per invocation, no retries, no backoff. A failed
//     provider call fails the whole chat turn.
//   - Reply timestamps are stamped server-side (epoch millis) on receipt,
//     overriding whatever the model returned.
//   - Missing credentials surface as ErrNotConfigured so operators can tell a
//     misconfigured deployment from a transient provider failure.
package ai

import (
	"context"
	"errors"
	"time"

	"github.com/voyago/travel-assistant/internal/domain"
)

// ErrNotConfigured indicates a missing or rejected provider credential.
// Handlers map it to a configuration-error message distinct from generic
// processing failures.
var ErrNotConfigured = errors.New("ai provider is not configured")

// ErrBadResponse indicates a malformed or unparseable provider response.
var ErrBadResponse = errors.New("failed to process message")

// Reply is the canonical provider result: one assistant message plus the
// location the provider recognized, if any.
type Reply struct {
	Message  domain.ChatMessage `json:"message"`
	Location *string            `json:"location"`
}

// Provider is the uniform chat-completion interface. The prompt is fully
// formed by the caller, including any system-style instructions.
type Provider interface {
	// Chat issues one completion call and returns the parsed reply.
	Chat(ctx context.Context, prompt string) (*Reply, error)
	// Name identifies the provider in logs and traces.
	Name() string
}

// ImageProvider generates a single illustrative image for a location and
// returns a URL the client can render (remote URL or data URL).
type ImageProvider interface {
	Generate(ctx context.Context, location string) (string, error)
}

// nowMillis returns the current time in epoch milliseconds. Overridable for
// deterministic tests.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// stamp builds an assistant ChatMessage with a server-side timestamp.
func stamp(content string) domain.ChatMessage {
	return domain.ChatMessage{
		Role:      domain.RoleAssistant,
		Content:   content,
		Timestamp: nowMillis(),
	}
}
