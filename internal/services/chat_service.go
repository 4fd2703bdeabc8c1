// Package services – ChatService
//
// This file implements ChatService, the application-level component that owns
// one chat turn: classify the message, short-circuit canned intents, build
// the provider prompt, invoke the configured AI provider, and record the
// interaction (search history plus the user's conversation log).
//
// Observability: public methods are OpenTelemetry-instrumented; spans include
// user identifiers and the classified intent.
package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/ai"
	"github.com/voyago/travel-assistant/internal/domain"
	"github.com/voyago/travel-assistant/internal/intent"
	"github.com/voyago/travel-assistant/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Canned responses for short-circuited intents. The English strings are the
// authoritative copy; translations cover the languages the UI ships with.
const (
	greetingReply = "Hello! I'm your travel assistant. I can help you discover places to visit " +
		"and find travel information. Where would you like to explore?"
	thanksReply = "You're welcome! Let me know if you need any other travel information or assistance."
)

// cannedTranslations maps intent -> language tag -> localized canned reply.
var cannedTranslations = map[intent.Intent]map[string]string{
	intent.Greeting: {
		"es": "¡Hola! Soy tu asistente de viajes. Puedo ayudarte a descubrir lugares para visitar y encontrar información de viaje. ¿A dónde te gustaría ir?",
		"fr": "Bonjour ! Je suis votre assistant de voyage. Je peux vous aider à découvrir des destinations et à trouver des informations de voyage. Où souhaitez-vous aller ?",
		"de": "Hallo! Ich bin dein Reiseassistent. Ich helfe dir, Reiseziele zu entdecken und Reiseinformationen zu finden. Wohin möchtest du?",
	},
	intent.Thanks: {
		"es": "¡De nada! Avísame si necesitas más información o ayuda para tu viaje.",
		"fr": "Avec plaisir ! N'hésitez pas si vous avez besoin d'autres informations de voyage.",
		"de": "Gern geschehen! Sag Bescheid, wenn du weitere Reiseinformationen brauchst.",
	},
}

// ChatResponse is the result of one chat turn.
type ChatResponse struct {
	Message      domain.ChatMessage `json:"message"`
	Location     *string            `json:"location,omitempty"`
	Category     *string            `json:"category,omitempty"`
	Translations map[string]string  `json:"translations,omitempty"`
}

// ChatService coordinates intent routing, provider calls, and persistence of
// the interaction record.
type ChatService struct {
	DB       *gorm.DB
	Provider ai.Provider

	// Timeout bounds each outbound provider call. A hung provider should
	// fail the turn rather than hang the request forever.
	Timeout time.Duration

	// MaxMessageRunes caps accepted messages by rune length; 0 disables.
	MaxMessageRunes int
}

// nowMillis is overridable for deterministic tests.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// Chat processes one user message and returns the assistant reply.
//
// Greeting and gratitude messages short-circuit with canned replies and
// never reach the provider. Every turn, canned or not, is appended to the
// user's search history and conversation log; failures there are logged but
// do not fail the turn.
func (s *ChatService) Chat(ctx context.Context, userID, message, language string) (*ChatResponse, error) {
	tr := otel.Tracer("services/ChatService")
	ctx, span := tr.Start(ctx, "Chat",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if s.MaxMessageRunes > 0 && utf8.RuneCountInString(message) > s.MaxMessageRunes {
		return nil, ErrMessageTooLong
	}

	res := intent.Classify(message)
	span.SetAttributes(attribute.String("chat.intent", res.Intent.String()))

	resp, err := s.respond(ctx, res, message, language)
	if err != nil {
		return nil, err
	}

	s.recordTurn(ctx, userID, message, resp)
	return resp, nil
}

// respond builds the reply for a classified message.
func (s *ChatService) respond(ctx context.Context, res intent.Result, message, language string) (*ChatResponse, error) {
	switch res.Intent {
	case intent.Greeting:
		return cannedResponse(intent.Greeting, greetingReply, language), nil
	case intent.Thanks:
		return cannedResponse(intent.Thanks, thanksReply, language), nil
	}

	var prompt string
	switch res.Intent {
	case intent.Nearby:
		prompt = ai.NearbyPrompt(message, *res.Category)
	case intent.Budget:
		prompt = ai.BudgetPrompt(message)
	case intent.Cultural:
		prompt = ai.CulturalPrompt(message)
	default:
		prompt = ai.GeneralPrompt(message)
	}
	prompt = ai.WithLanguage(prompt, language)

	callCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	reply, err := s.Provider.Chat(callCtx, prompt)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return nil, err
		}
		return nil, ai.ErrBadResponse
	}

	resp := &ChatResponse{
		Message:  reply.Message,
		Location: reply.Location,
		Category: res.Category,
	}
	if resp.Location == nil {
		resp.Location = res.Location
	}
	return resp, nil
}

// recordTurn persists the history row and appends the conversation log.
// Best effort: the reply has already been produced.
func (s *ChatService) recordTurn(ctx context.Context, userID, message string, resp *ChatResponse) {
	if s.DB == nil {
		return
	}
	if _, err := repo.CreateSearchHistory(ctx, s.DB, userID, message, resp.Location, resp.Category); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("record search history failed")
	}

	userMsg := domain.ChatMessage{Role: domain.RoleUser, Content: message, Timestamp: nowMillis()}
	if err := repo.AppendConversation(ctx, s.DB, userID, resp.Location, userMsg, resp.Message); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("append conversation failed")
	}
}

// cannedResponse stamps a canned reply and attaches the localized copy when
// one exists for the requested language.
func cannedResponse(it intent.Intent, content, language string) *ChatResponse {
	resp := &ChatResponse{
		Message: domain.ChatMessage{
			Role:      domain.RoleAssistant,
			Content:   content,
			Timestamp: nowMillis(),
		},
	}
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" || lang == "en" {
		return resp
	}
	if translated, ok := cannedTranslations[it][lang]; ok {
		resp.Translations = map[string]string{lang: translated}
	}
	return resp
}
