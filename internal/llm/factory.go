package llm

import (
	"context"
	"fmt"
	"os"
	"time"
)

// ProviderFake selects the offline caller with canned stage outputs. It is
// not part of the public catalog.
const ProviderFake ProviderID = "fake"

// New builds a Caller for a provider/model pair. The API key is read from
// the provider's environment variable; a missing key fails fast, before any
// stage runs. An empty model selects the provider default.
func New(ctx context.Context, provider ProviderID, model string) (Caller, error) {
	if provider == ProviderFake {
		return NewFakeCaller(), nil
	}
	spec, err := Provider(provider)
	if err != nil {
		return nil, err
	}
	m, err := Model(provider, model)
	if err != nil {
		return nil, err
	}
	if provider == ProviderGemini {
		// The genai SDK reads GEMINI_API_KEY on its own.
		return NewGeminiClient(ctx, m)
	}
	if !spec.OpenAICompatible {
		return nil, fmt.Errorf("llm: provider %s is not supported", provider)
	}
	apiKey := os.Getenv(spec.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("llm: provider %s requires %s to be set", provider, spec.APIKeyEnv)
	}
	return NewOpenAIClient(spec, m, apiKey, 300*time.Second), nil
}
