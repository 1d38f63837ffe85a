package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"archsmith/internal/llmtool"
)

// OpenAIClient calls an OpenAI-compatible Chat Completions API and asks for
// JSON output. It serves every cataloged provider with a compatible API:
// OpenAI, DeepSeek, Kimi, and Groq.
type OpenAIClient struct {
	http     *http.Client
	apiKey   string
	model    ModelSpec
	endpoint string
	label    string
}

// NewOpenAIClient builds a client for one provider/model pair. The endpoint
// is derived from the provider's base URL.
func NewOpenAIClient(spec ProviderSpec, model ModelSpec, apiKey string, timeout time.Duration) *OpenAIClient {
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &OpenAIClient{
		http:     &http.Client{Timeout: timeout},
		apiKey:   apiKey,
		model:    model,
		endpoint: strings.TrimSuffix(spec.BaseURL, "/") + "/chat/completions",
		label:    spec.DisplayName + ":" + model.Name,
	}
}

func (c *OpenAIClient) Name() string { return c.label }
func (c *OpenAIClient) Close() error { return nil }

type chatReq struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float32           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateJSON sends the prompt as the system message and the input as an
// indented JSON user message, then validates that the reply parses.
func (c *OpenAIClient) GenerateJSON(ctx context.Context, r Request) (json.RawMessage, error) {
	in, _ := json.MarshalIndent(r.Input, "", "  ")
	userContent := "[INPUT JSON]\n" + string(in)

	maxTokens := r.MaxTokens
	if maxTokens <= 0 || maxTokens > c.model.MaxTokens {
		maxTokens = c.model.MaxTokens
	}
	reqBody := chatReq{
		Model: c.model.Name,
		Messages: []chatMessage{
			{Role: "system", Content: r.Prompt},
			{Role: "user", Content: userContent},
		},
		Temperature: c.model.Temperature,
		MaxTokens:   maxTokens,
	}
	if c.model.SupportsStructuredOutput {
		reqBody.ResponseFormat = map[string]string{"type": "json_object"}
	}
	b, _ := json.Marshal(reqBody)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		const max = 2048
		if len(body) > max {
			body = body[:max]
		}
		err := fmt.Errorf("llm: %s unexpected status %s: %s", c.label, resp.Status, string(body))
		// Requests that exceed the context window or fail auth will not
		// succeed on retry.
		if resp.StatusCode == 400 && strings.Contains(string(body), `"code":"context_length_exceeded"`) {
			return nil, NewPermanentError(err)
		}
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, NewPermanentError(err)
		}
		return nil, err
	}
	var out chatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return nil, ErrInvalidJSON
	}
	raw := json.RawMessage(llmtool.StripFences([]byte(out.Choices[0].Message.Content)))
	var scratch any
	if err := json.Unmarshal(raw, &scratch); err != nil {
		return nil, ErrInvalidJSON
	}
	return raw, nil
}
