package pipeline

import (
	"context"
	"fmt"

	"archsmith/internal/detail"
	"archsmith/internal/diagram"
	"archsmith/internal/llm"
	"archsmith/internal/llmtool"
	"archsmith/internal/types"
)

// API designs the endpoint surface from the requirements and schema.
type API struct {
	LLM       llm.Caller
	Cfg       detail.APIConfig
	MaxTokens int
}

func (s *API) Run(ctx context.Context, in types.APIIn) (types.APIDesign, error) {
	constraints := []string{
		fmt.Sprintf("Maximum endpoints: %d.", s.Cfg.MaxEndpoints),
		fmt.Sprintf("Include request body schemas: %t.", s.Cfg.IncludeRequestBodySchema),
		fmt.Sprintf("Include error responses: %t.", s.Cfg.IncludeErrorResponses),
		fmt.Sprintf("Parameter coverage: %s.", s.Cfg.IncludeParameters),
	}

	rules := []string{
		"Align endpoints with the database tables and the business logic in the requirements.",
		"Use appropriate HTTP methods and status codes throughout.",
		"Set mermaid_diagram to a valid sequenceDiagram covering the most important flows.",
	}
	if s.Cfg.IncludeRateLimiting {
		rules = append(rules, "Document the rate limiting strategy.")
	}
	if s.Cfg.IncludeCachingStrategy {
		rules = append(rules, "Note caching opportunities per endpoint in the reasoning.")
	}
	if s.Cfg.IncludeVersioning {
		rules = append(rules, "Define an explicit API versioning strategy.")
	}

	prompt, err := buildPrompt(llmtool.StructuredPromptSpec{
		Purpose:      "Design a complete RESTful API specification from the requirements and database schema in the input JSON.",
		Background:   apiPersona,
		Constraints:  constraints,
		Rules:        rules,
		OutputSchema: llmtool.MustSchemaFor(types.APIDesign{}),
	})
	if err != nil {
		return types.APIDesign{}, err
	}

	ctx = llm.WithStage(ctx, StageAPI)
	raw, err := s.LLM.GenerateJSON(ctx, llm.Request{Prompt: prompt, Input: in, MaxTokens: s.MaxTokens})
	if err != nil {
		return types.APIDesign{}, err
	}

	var out types.APIDesign
	if err := decodeStage(StageAPI, raw, &out); err != nil {
		return types.APIDesign{}, err
	}
	if len(out.Endpoints) == 0 {
		return types.APIDesign{}, fmt.Errorf("api design has no endpoints")
	}
	out.MermaidDiagram = diagram.Clean(out.MermaidDiagram)
	return out, nil
}
