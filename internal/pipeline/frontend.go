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

// Frontend designs the component architecture from the requirements and API.
type Frontend struct {
	LLM       llm.Caller
	Cfg       detail.FrontendConfig
	MaxTokens int
}

func (s *Frontend) Run(ctx context.Context, in types.FrontendIn) (types.FrontendDesign, error) {
	constraints := []string{
		fmt.Sprintf("Maximum components: %d.", s.Cfg.MaxComponents),
		fmt.Sprintf("Component detail: %s.", s.Cfg.ComponentDetail),
		fmt.Sprintf("Include props: %t.", s.Cfg.IncludeProps),
		fmt.Sprintf("Include state: %t.", s.Cfg.IncludeState),
		fmt.Sprintf("Include dependencies: %t.", s.Cfg.IncludeDependencies),
	}

	rules := []string{
		"Map components to the API endpoints they call.",
		"Pick one state management approach and name its library when one is needed.",
		"Set mermaid_diagram to a valid graph TD showing the component hierarchy.",
	}
	if s.Cfg.IncludePerformanceOptimization {
		rules = append(rules, "Note performance optimizations (code splitting, memoization, lazy loading) in the reasoning.")
	}
	if s.Cfg.IncludeErrorBoundaries {
		rules = append(rules, "Include error boundary components where failures must be contained.")
	}
	if s.Cfg.IncludeTestingStrategy {
		rules = append(rules, "Describe the component testing strategy in the reasoning.")
	}

	prompt, err := buildPrompt(llmtool.StructuredPromptSpec{
		Purpose:      "Design a complete frontend architecture from the requirements and API design in the input JSON.",
		Background:   frontendPersona,
		Constraints:  constraints,
		Rules:        rules,
		OutputSchema: llmtool.MustSchemaFor(types.FrontendDesign{}),
	})
	if err != nil {
		return types.FrontendDesign{}, err
	}

	ctx = llm.WithStage(ctx, StageFrontend)
	raw, err := s.LLM.GenerateJSON(ctx, llm.Request{Prompt: prompt, Input: in, MaxTokens: s.MaxTokens})
	if err != nil {
		return types.FrontendDesign{}, err
	}

	var out types.FrontendDesign
	if err := decodeStage(StageFrontend, raw, &out); err != nil {
		return types.FrontendDesign{}, err
	}
	if len(out.Components) == 0 {
		return types.FrontendDesign{}, fmt.Errorf("frontend design has no components")
	}
	out.MermaidDiagram = diagram.Clean(out.MermaidDiagram)
	return out, nil
}
