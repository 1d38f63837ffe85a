package pipeline

import (
	"context"
	"fmt"

	"archsmith/internal/detail"
	"archsmith/internal/llm"
	"archsmith/internal/llmtool"
	"archsmith/internal/types"
)

// Requirements turns a raw business idea into the structured analysis every
// later stage builds on.
type Requirements struct {
	LLM       llm.Caller
	Cfg       detail.RequirementsConfig
	MaxTokens int
}

func (s *Requirements) Run(ctx context.Context, in types.RequirementsIn) (types.RequirementsAnalysis, error) {
	prompt, err := buildPrompt(llmtool.StructuredPromptSpec{
		Purpose:    "Analyze the business idea in the input JSON and extract comprehensive technical requirements for a SaaS application.",
		Background: architectPersona,
		Constraints: []string{
			fmt.Sprintf("Detail level: %s (%s analysis).", in.DetailLevel, s.Cfg.Depth),
			s.Cfg.Guidance,
		},
		Rules: []string{
			"Identify ALL core features, user types, and key entities the idea implies.",
			"Set complexity_assessment to exactly one of: low, medium, high.",
			"List concrete technical challenges specific to this idea, not generic ones.",
		},
		OutputSchema: llmtool.MustSchemaFor(types.RequirementsAnalysis{}),
	})
	if err != nil {
		return types.RequirementsAnalysis{}, err
	}

	ctx = llm.WithStage(ctx, StageRequirements)
	raw, err := s.LLM.GenerateJSON(ctx, llm.Request{Prompt: prompt, Input: in, MaxTokens: s.MaxTokens})
	if err != nil {
		return types.RequirementsAnalysis{}, err
	}

	var out types.RequirementsAnalysis
	if err := decodeStage(StageRequirements, raw, &out); err != nil {
		return types.RequirementsAnalysis{}, err
	}
	if len(out.CoreFeatures) == 0 {
		return types.RequirementsAnalysis{}, fmt.Errorf("requirements analysis lists no core features")
	}
	return out, nil
}
