// Mistral chat provider. Mistral's chat-completions endpoint speaks the
// OpenAI-compatible wire format, so this is a small hand-rolled HTTP client
// with explicit request/response structs. Replies are free text; location
// extraction stays on the caller side.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultMistralEndpoint = "https://api.mistral.ai/v1/chat/completions"

// MistralProvider calls the Mistral chat-completions API.
type MistralProvider struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewMistralProvider constructs the provider. It returns ErrNotConfigured
// when the API key is empty.
func NewMistralProvider(apiKey, model string, timeout time.Duration) (*MistralProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = "mistral-tiny"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &MistralProvider{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultMistralEndpoint,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Name implements Provider.
func (p *MistralProvider) Name() string { return "mistral" }

// chatCompletionRequest is the OpenAI-compatible request body.
type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// chatMessage is a single role/content pair on the wire.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the subset of the response this client reads.
type chatCompletionResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

// Chat implements Provider. One synchronous call, no retries.
func (p *MistralProvider) Chat(ctx context.Context, prompt string) (*Reply, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("provider", p.Name()).Msg("chat completion failed")
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrNotConfigured
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		log.Error().Int("status", resp.StatusCode).Str("body", string(raw)).Msg("mistral api error")
		return nil, fmt.Errorf("%w: mistral api status %d", ErrBadResponse, resp.StatusCode)
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, ErrBadResponse
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return nil, ErrBadResponse
	}

	return &Reply{Message: stamp(parsed.Choices[0].Message.Content)}, nil
}

var _ Provider = (*MistralProvider)(nil)
