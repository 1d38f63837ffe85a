package llm

import (
	"context"
	"encoding/json"

	genai "google.golang.org/genai"

	"archsmith/internal/llmtool"
)

// GeminiClient is a thin wrapper around the official genai client. Gemini is
// not OpenAI-compatible, so it gets its own Caller.
type GeminiClient struct {
	cli   *genai.Client
	model ModelSpec
}

// NewGeminiClient creates a Gemini client. The genai SDK reads GEMINI_API_KEY
// from the environment.
func NewGeminiClient(ctx context.Context, model ModelSpec) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model.Name }
func (g *GeminiClient) Close() error { return nil }

// GenerateJSON sends the concatenated prompt/input and requests application/json.
func (g *GeminiClient) GenerateJSON(ctx context.Context, r Request) (json.RawMessage, error) {
	in, _ := json.MarshalIndent(r.Input, "", "  ")
	full := r.Prompt + "\n\n[INPUT JSON]\n" + string(in)

	maxTokens := r.MaxTokens
	if maxTokens <= 0 || maxTokens > g.model.MaxTokens {
		maxTokens = g.model.MaxTokens
	}
	resp, err := g.cli.Models.GenerateContent(ctx, g.model.Name,
		[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			MaxOutputTokens:  int32(maxTokens),
		},
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrInvalidJSON
	}
	raw := json.RawMessage(llmtool.StripFences([]byte(resp.Candidates[0].Content.Parts[0].Text)))
	var scratch any
	if err := json.Unmarshal(raw, &scratch); err != nil {
		return nil, ErrInvalidJSON
	}
	return raw, nil
}
