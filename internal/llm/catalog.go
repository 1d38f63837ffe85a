package llm

import (
	"fmt"
	"sort"
)

// ProviderID identifies a supported model provider.
type ProviderID string

const (
	ProviderOpenAI   ProviderID = "openai"
	ProviderDeepSeek ProviderID = "deepseek"
	ProviderKimi     ProviderID = "kimi"
	ProviderGroq     ProviderID = "groq"
	ProviderGemini   ProviderID = "gemini"
)

// ModelSpec describes one model offered by a provider. Costs are USD per
// one million tokens; zero means cost tracking is not available.
type ModelSpec struct {
	Name                     string  `json:"name"`
	DisplayName              string  `json:"display_name"`
	InputCostPer1M           float64 `json:"input_cost_per_1m"`
	OutputCostPer1M          float64 `json:"output_cost_per_1m"`
	MaxTokens                int     `json:"max_tokens"`
	SupportsStructuredOutput bool    `json:"supports_structured_output"`
	Temperature              float32 `json:"recommended_temperature"`
}

// ProviderSpec describes a provider and the models it offers.
type ProviderSpec struct {
	ID               ProviderID           `json:"id"`
	DisplayName      string               `json:"display_name"`
	BaseURL          string               `json:"base_url,omitempty"`
	APIKeyEnv        string               `json:"api_key_env_var"`
	OpenAICompatible bool                 `json:"is_openai_compatible"`
	DefaultModel     string               `json:"default_model"`
	Models           map[string]ModelSpec `json:"available_models"`
}

var providers = map[ProviderID]ProviderSpec{
	ProviderOpenAI: {
		ID:               ProviderOpenAI,
		DisplayName:      "OpenAI",
		BaseURL:          "https://api.openai.com/v1",
		APIKeyEnv:        "OPENAI_API_KEY",
		OpenAICompatible: true,
		DefaultModel:     "gpt-4-turbo",
		Models: map[string]ModelSpec{
			"gpt-4-turbo": {
				Name:                     "gpt-4-turbo",
				DisplayName:              "GPT-4 Turbo",
				InputCostPer1M:           10.0,
				OutputCostPer1M:          30.0,
				MaxTokens:                4096,
				SupportsStructuredOutput: true,
				Temperature:              0.3,
			},
			"gpt-4o": {
				Name:                     "gpt-4o",
				DisplayName:              "GPT-4o",
				InputCostPer1M:           2.5,
				OutputCostPer1M:          10.0,
				MaxTokens:                4096,
				SupportsStructuredOutput: true,
				Temperature:              0.3,
			},
		},
	},
	ProviderDeepSeek: {
		ID:               ProviderDeepSeek,
		DisplayName:      "DeepSeek",
		BaseURL:          "https://api.deepseek.com/v1",
		APIKeyEnv:        "DEEPSEEK_API_KEY",
		OpenAICompatible: true,
		DefaultModel:     "deepseek-chat",
		Models: map[string]ModelSpec{
			"deepseek-chat": {
				Name:                     "deepseek-chat",
				DisplayName:              "DeepSeek Chat",
				InputCostPer1M:           0.27,
				OutputCostPer1M:          1.10,
				MaxTokens:                4096,
				SupportsStructuredOutput: true,
				Temperature:              0.3,
			},
			"deepseek-reasoner": {
				Name:                     "deepseek-reasoner",
				DisplayName:              "DeepSeek Reasoner",
				InputCostPer1M:           0.55,
				OutputCostPer1M:          2.19,
				MaxTokens:                8192,
				SupportsStructuredOutput: true,
				Temperature:              0.5,
			},
		},
	},
	ProviderKimi: {
		ID:               ProviderKimi,
		DisplayName:      "Kimi (MoonshotAI)",
		BaseURL:          "https://api.moonshot.cn/v1",
		APIKeyEnv:        "MOONSHOT_API_KEY",
		OpenAICompatible: true,
		DefaultModel:     "moonshot-v1-8k",
		Models: map[string]ModelSpec{
			"moonshot-v1-8k": {
				Name:                     "moonshot-v1-8k",
				DisplayName:              "Kimi K2 8K",
				InputCostPer1M:           2.0,
				OutputCostPer1M:          6.0,
				MaxTokens:                8192,
				SupportsStructuredOutput: true,
				Temperature:              0.3,
			},
		},
	},
	ProviderGroq: {
		ID:               ProviderGroq,
		DisplayName:      "Groq",
		BaseURL:          "https://api.groq.com/openai/v1",
		APIKeyEnv:        "GROQ_API_KEY",
		OpenAICompatible: true,
		DefaultModel:     "llama-3.3-70b-versatile",
		Models: map[string]ModelSpec{
			"llama-3.3-70b-versatile": {
				Name:                     "llama-3.3-70b-versatile",
				DisplayName:              "Llama 3.3 70B",
				MaxTokens:                8192,
				SupportsStructuredOutput: true,
				Temperature:              0.3,
			},
			"openai/gpt-oss-120b": {
				Name:                     "openai/gpt-oss-120b",
				DisplayName:              "GPT OSS 120B",
				MaxTokens:                8192,
				SupportsStructuredOutput: true,
				Temperature:              0.3,
			},
			"moonshotai/kimi-k2-instruct-0905": {
				Name:                     "moonshotai/kimi-k2-instruct-0905",
				DisplayName:              "Kimi K2 Instruct",
				MaxTokens:                32768,
				SupportsStructuredOutput: true,
				Temperature:              0.3,
			},
		},
	},
	ProviderGemini: {
		ID:           ProviderGemini,
		DisplayName:  "Google Gemini",
		APIKeyEnv:    "GEMINI_API_KEY",
		DefaultModel: "gemini-2.5-flash",
		Models: map[string]ModelSpec{
			"gemini-2.5-flash": {
				Name:                     "gemini-2.5-flash",
				DisplayName:              "Gemini 2.5 Flash",
				MaxTokens:                8192,
				SupportsStructuredOutput: true,
				Temperature:              0.3,
			},
		},
	},
}

// Providers lists the supported provider IDs in stable order.
func Providers() []ProviderID {
	out := make([]ProviderID, 0, len(providers))
	for id := range providers {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Provider returns the catalog entry for a provider ID.
func Provider(id ProviderID) (ProviderSpec, error) {
	spec, ok := providers[id]
	if !ok {
		return ProviderSpec{}, fmt.Errorf("llm: unknown provider %q, must be one of %v", id, Providers())
	}
	return spec, nil
}

// Model resolves a model within a provider. An empty name selects the
// provider's default model.
func Model(id ProviderID, name string) (ModelSpec, error) {
	spec, err := Provider(id)
	if err != nil {
		return ModelSpec{}, err
	}
	if name == "" {
		name = spec.DefaultModel
	}
	m, ok := spec.Models[name]
	if !ok {
		names := make([]string, 0, len(spec.Models))
		for n := range spec.Models {
			names = append(names, n)
		}
		sort.Strings(names)
		return ModelSpec{}, fmt.Errorf("llm: model %q not available for %s, available models: %v", name, id, names)
	}
	return m, nil
}

// EstimateCost returns the USD cost of a request given token counts.
func EstimateCost(id ProviderID, model string, inputTokens, outputTokens int) (float64, error) {
	m, err := Model(id, model)
	if err != nil {
		return 0, err
	}
	in := float64(inputTokens) / 1_000_000 * m.InputCostPer1M
	out := float64(outputTokens) / 1_000_000 * m.OutputCostPer1M
	return in + out, nil
}
