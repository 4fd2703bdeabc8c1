// Image generation providers. OpenAI returns a hosted URL; Hugging Face
// inference returns raw bytes which are wrapped into a data URL so clients
// can render either transparently.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"
)

// imagePrompt shapes the generation request for a location.
func imagePrompt(location string) string {
	return fmt.Sprintf("A beautiful, high-quality travel photograph of %s. "+
		"Show iconic landmarks and scenery. Photorealistic style.", location)
}

// OpenAIImageProvider generates location imagery with DALL-E 3.
type OpenAIImageProvider struct {
	client openai.Client
}

// NewOpenAIImageProvider constructs the provider, failing fast on a missing key.
func NewOpenAIImageProvider(apiKey string) (*OpenAIImageProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	return &OpenAIImageProvider{client: openai.NewClient(option.WithAPIKey(apiKey))}, nil
}

// Generate implements ImageProvider.
func (p *OpenAIImageProvider) Generate(ctx context.Context, location string) (string, error) {
	res, err := p.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:  imagePrompt(location),
		Model:   openai.ImageModelDallE3,
		N:       openai.Int(1),
		Size:    openai.ImageGenerateParamsSize1024x1024,
		Quality: openai.ImageGenerateParamsQualityStandard,
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return "", ErrNotConfigured
		}
		log.Error().Err(err).Msg("image generation failed")
		return "", fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(res.Data) == 0 || res.Data[0].URL == "" {
		return "", ErrBadResponse
	}
	return res.Data[0].URL, nil
}

// defaultHFModel is a broadly available text-to-image model on the inference API.
const defaultHFModel = "stabilityai/stable-diffusion-xl-base-1.0"

// HuggingFaceImageProvider calls the Hugging Face inference API and returns
// the generated image inline as a data URL.
type HuggingFaceImageProvider struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewHuggingFaceImageProvider constructs the provider, failing fast on a
// missing key.
func NewHuggingFaceImageProvider(apiKey string, timeout time.Duration) (*HuggingFaceImageProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HuggingFaceImageProvider{
		apiKey:   apiKey,
		endpoint: "https://api-inference.huggingface.co/models/" + defaultHFModel,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// Generate implements ImageProvider.
func (p *HuggingFaceImageProvider) Generate(ctx context.Context, location string) (string, error) {
	body, err := json.Marshal(map[string]string{"inputs": imagePrompt(location)})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("image generation failed")
		return "", fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", ErrNotConfigured
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: hugging face status %d", ErrBadResponse, resp.StatusCode)
	}

	img, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil || len(img) == 0 {
		return "", ErrBadResponse
	}

	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img), nil
}

var (
	_ ImageProvider = (*OpenAIImageProvider)(nil)
	_ ImageProvider = (*HuggingFaceImageProvider)(nil)
)
