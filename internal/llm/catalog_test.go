package llm

import (
	"strings"
	"testing"

	"archsmith/internal/tester"
)

func TestProviderLookup(t *testing.T) {
	spec, err := Provider(ProviderDeepSeek)
	tester.NoErr(t, err)
	tester.Eq(t, spec.BaseURL, "https://api.deepseek.com/v1")
	tester.Eq(t, spec.APIKeyEnv, "DEEPSEEK_API_KEY")
	tester.True(t, spec.OpenAICompatible)

	_, err = Provider("anthropic")
	tester.Err(t, err)
	tester.Contains(t, err.Error(), "unknown provider")
}

func TestModelDefaultsPerProvider(t *testing.T) {
	m, err := Model(ProviderOpenAI, "")
	tester.NoErr(t, err)
	tester.Eq(t, m.Name, "gpt-4-turbo")

	m, err = Model(ProviderGroq, "")
	tester.NoErr(t, err)
	tester.Eq(t, m.Name, "llama-3.3-70b-versatile")

	m, err = Model(ProviderKimi, "moonshot-v1-8k")
	tester.NoErr(t, err)
	tester.Eq(t, m.MaxTokens, 8192)
}

func TestModelUnknownListsAvailable(t *testing.T) {
	_, err := Model(ProviderOpenAI, "gpt-5")
	tester.Err(t, err)
	tester.Contains(t, err.Error(), "not available")
	tester.Contains(t, err.Error(), "gpt-4-turbo")
	tester.Contains(t, err.Error(), "gpt-4o")
}

func TestEstimateCost(t *testing.T) {
	// gpt-4-turbo: $10 in + $30 out per 1M tokens.
	cost, err := EstimateCost(ProviderOpenAI, "gpt-4-turbo", 1_000_000, 1_000_000)
	tester.NoErr(t, err)
	tester.Eq(t, cost, 40.0)

	cost, err = EstimateCost(ProviderDeepSeek, "deepseek-chat", 500_000, 0)
	tester.NoErr(t, err)
	tester.Eq(t, cost, 0.135)

	// Groq models carry no pricing.
	cost, err = EstimateCost(ProviderGroq, "", 1_000_000, 1_000_000)
	tester.NoErr(t, err)
	tester.Eq(t, cost, 0.0)
}

func TestProvidersStableOrder(t *testing.T) {
	ids := Providers()
	tester.Eq(t, len(ids), 5)
	joined := ""
	for _, id := range ids {
		joined += string(id) + ","
	}
	if !strings.Contains(joined, "openai") || !strings.Contains(joined, "gemini") {
		t.Fatalf("unexpected provider list: %v", ids)
	}
	tester.Eq(t, Providers(), ids)
}
