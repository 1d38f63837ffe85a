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

// Database designs a normalized schema from the requirements analysis.
type Database struct {
	LLM       llm.Caller
	Cfg       detail.DatabaseConfig
	MaxTokens int
}

func (s *Database) Run(ctx context.Context, in types.DatabaseIn) (types.DatabaseSchema, error) {
	constraints := []string{
		fmt.Sprintf("Target number of tables: %d (generate as many as needed to comprehensively support ALL features - this is a guideline, NOT a limit).", s.Cfg.MaxTables),
		fmt.Sprintf("Constraint coverage: %s.", s.Cfg.IncludeConstraints),
		fmt.Sprintf("Field descriptions: %s.", s.Cfg.FieldDescriptions),
	}
	if s.Cfg.IncludeIndexes {
		constraints = append(constraints, "Include important indexes for each table.")
	}
	if s.Cfg.IncludePartitioning {
		constraints = append(constraints, "Note partitioning strategy for high-volume tables in the reasoning.")
	}
	if s.Cfg.IncludeReplication {
		constraints = append(constraints, "Note replication considerations in the reasoning.")
	}

	prompt, err := buildPrompt(llmtool.StructuredPromptSpec{
		Purpose:     "Design a complete, normalized database schema for the analyzed requirements in the input JSON.",
		Background:  databasePersona,
		Constraints: constraints,
		Rules: []string{
			"Generate tables for EVERY feature and entity in the requirements; do NOT generate minimal schemas.",
			"Cover user management, the core domain, transactions or interactions, and supporting features (notifications, audit, analytics) where the requirements call for them.",
			"Set mermaid_diagram to a valid erDiagram following the syntax rules above.",
		},
		OutputSchema: llmtool.MustSchemaFor(types.DatabaseSchema{}),
	})
	if err != nil {
		return types.DatabaseSchema{}, err
	}

	ctx = llm.WithStage(ctx, StageDatabase)
	raw, err := s.LLM.GenerateJSON(ctx, llm.Request{Prompt: prompt, Input: in, MaxTokens: s.MaxTokens})
	if err != nil {
		return types.DatabaseSchema{}, err
	}

	var out types.DatabaseSchema
	if err := decodeStage(StageDatabase, raw, &out); err != nil {
		return types.DatabaseSchema{}, err
	}
	if len(out.Tables) == 0 {
		return types.DatabaseSchema{}, fmt.Errorf("database schema has no tables")
	}
	out.MermaidDiagram = diagram.Clean(out.MermaidDiagram)
	return out, nil
}
