// Offline mock provider. Produces canned responses in the expected shape
// without any network call; the default in development and tests.
package ai

import (
	"context"
	"fmt"

	"github.com/voyago/travel-assistant/internal/intent"
)

// MockProvider fabricates replies from the location mentioned in the prompt.
type MockProvider struct{}

// NewMockProvider returns a ready-to-use mock.
func NewMockProvider() *MockProvider { return &MockProvider{} }

// Name implements Provider.
func (p *MockProvider) Name() string { return "mock" }

// Chat implements Provider without side effects.
func (p *MockProvider) Chat(_ context.Context, prompt string) (*Reply, error) {
	loc := intent.ExtractLocation(prompt)

	content := "Hello! I'm your travel assistant. Where would you like to travel? " +
		"I can help you find information about different destinations."
	if loc != nil {
		content = fmt.Sprintf("%s is a wonderful destination! You can find direct flights starting from $400. "+
			"Would you like to know more about the weather, cultural aspects, or transportation options?", *loc)
	}

	return &Reply{Message: stamp(content), Location: loc}, nil
}

var _ Provider = (*MockProvider)(nil)
