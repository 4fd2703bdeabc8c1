// OpenAI chat provider built on the official Go SDK. The model is queried in
// JSON mode and asked to return the canonical {message, location} shape.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"
)

// OpenAIProvider calls the OpenAI chat-completions API.
type OpenAIProvider struct {
	client openai.Client
	model  string
}

// NewOpenAIProvider constructs the provider. It returns ErrNotConfigured when
// the API key is empty so startup can fail loudly on misconfiguration.
func NewOpenAIProvider(apiKey, model string) (*OpenAIProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = "gpt-4o"
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Name implements Provider.
func (p *OpenAIProvider) Name() string { return "openai" }

// openaiReply is the JSON object the model is instructed to produce.
type openaiReply struct {
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	Location string `json:"location"`
}

// Chat implements Provider. One synchronous call, no retries.
func (p *OpenAIProvider) Chat(ctx context.Context, prompt string) (*Reply, error) {
	res, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt + jsonInstruction),
			openai.UserMessage(prompt),
		},
		Model: p.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return nil, ErrNotConfigured
		}
		log.Error().Err(err).Str("provider", p.Name()).Msg("chat completion failed")
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(res.Choices) == 0 {
		return nil, ErrBadResponse
	}

	var parsed openaiReply
	if err := json.Unmarshal([]byte(res.Choices[0].Message.Content), &parsed); err != nil || parsed.Message.Content == "" {
		return nil, ErrBadResponse
	}

	out := &Reply{Message: stamp(parsed.Message.Content)}
	if loc := strings.TrimSpace(parsed.Location); loc != "" && !strings.EqualFold(loc, "null") {
		out.Location = &loc
	}
	return out, nil
}

var _ Provider = (*OpenAIProvider)(nil)
