package pipeline

import (
	"context"
	"fmt"
	"strings"

	"archsmith/internal/deploy"
	"archsmith/internal/detail"
	"archsmith/internal/diagram"
	"archsmith/internal/llm"
	"archsmith/internal/llmtool"
	"archsmith/internal/types"
)

// Prior stage outputs are clipped before they enter the deployment prompt so
// the final call stays inside the model's context window.
const priorStageLimit = 500

// Deployment produces the infrastructure plan for the chosen platform.
type Deployment struct {
	LLM       llm.Caller
	Cfg       detail.DeploymentConfig
	MaxTokens int
}

// deploymentContext is what the model sees: the full requirements, clipped
// summaries of the middle stages, and the target platform.
type deploymentContext struct {
	Requirements    types.RequirementsAnalysis `json:"requirements"`
	DatabaseSummary string                     `json:"database_schema_summary"`
	APISummary      string                     `json:"api_design_summary"`
	FrontendSummary string                     `json:"frontend_design_summary"`
	Platform        string                     `json:"target_platform"`
}

func (s *Deployment) Run(ctx context.Context, in types.DeploymentIn) (types.DeploymentPlan, error) {
	platform := types.Platform(in.Platform)

	constraints := []string{
		fmt.Sprintf("Target Platform: %s.", strings.ToUpper(in.Platform)),
		fmt.Sprintf("Deployment detail: %s.", s.Cfg.Detail),
		fmt.Sprintf("Security measures: %s.", s.Cfg.SecurityMeasures),
		fmt.Sprintf("Monitoring: %s.", s.Cfg.Monitoring),
	}
	if s.Cfg.IncludeCostEstimate {
		constraints = append(constraints, "Include a monthly cost estimate.")
	}

	rules := []string{
		fmt.Sprintf("Use %s services throughout; name the managed service for each infrastructure component.", deploy.DisplayName(platform)),
		"Cover database hosting, application hosting, CI/CD, monitoring, and security measures.",
		"Set mermaid_diagram to a valid graph TB deployment diagram with subgraphs per layer.",
	}
	if s.Cfg.IncludeDisasterRecovery {
		rules = append(rules, "Include backup and disaster recovery strategy.")
	}
	if s.Cfg.IncludeCompliance {
		rules = append(rules, "Note compliance considerations (data residency, encryption at rest) in the reasoning.")
	}
	if s.Cfg.IncludeScalabilityPlan {
		rules = append(rules, "Describe how the architecture scales from launch traffic to 100x.")
	}
	if s.Cfg.IncludeCICDPipeline {
		rules = append(rules, "Spell out the CI/CD pipeline stages end to end.")
	}

	background := deploymentPersona
	if svc, ok := deploy.Services(platform); ok {
		background += "\n\nServices available on " + svc.Name + ":\n" + serviceMenu(svc)
	}
	if rec, ok := deploy.Recommended(platform); ok {
		background += fmt.Sprintf("\nRecommended defaults: compute %s, database %s, storage %s, CDN %s, monitoring %s.",
			rec.Compute, rec.Database, rec.Storage, rec.CDN, rec.Monitoring)
	}

	prompt, err := buildPrompt(llmtool.StructuredPromptSpec{
		Purpose:      "Create a comprehensive deployment plan for the application described in the input JSON on the target platform.",
		Background:   background,
		Constraints:  constraints,
		Rules:        rules,
		OutputSchema: llmtool.MustSchemaFor(types.DeploymentPlan{}),
	})
	if err != nil {
		return types.DeploymentPlan{}, err
	}

	input := deploymentContext{
		Requirements:    in.Requirements,
		DatabaseSummary: truncateJSON(in.Database, priorStageLimit),
		APISummary:      truncateJSON(in.API, priorStageLimit),
		FrontendSummary: truncateJSON(in.Frontend, priorStageLimit),
		Platform:        strings.ToUpper(in.Platform),
	}

	ctx = llm.WithStage(ctx, StageDeployment)
	raw, err := s.LLM.GenerateJSON(ctx, llm.Request{Prompt: prompt, Input: input, MaxTokens: s.MaxTokens})
	if err != nil {
		return types.DeploymentPlan{}, err
	}

	var out types.DeploymentPlan
	if err := decodeStage(StageDeployment, raw, &out); err != nil {
		return types.DeploymentPlan{}, err
	}
	if out.Platform == "" {
		out.Platform = in.Platform
	}
	out.MermaidDiagram = diagram.Clean(out.MermaidDiagram)
	return out, nil
}

func serviceMenu(svc deploy.PlatformServices) string {
	var b strings.Builder
	line := func(label string, opts []string) {
		if len(opts) == 0 {
			return
		}
		fmt.Fprintf(&b, "- %s: %s\n", label, strings.Join(opts, ", "))
	}
	line("Compute", svc.Compute)
	line("Database", svc.Database)
	line("Storage", svc.Storage)
	line("CDN", svc.CDN)
	line("Load balancing", svc.LoadBalancer)
	line("Cache", svc.Cache)
	line("Monitoring", svc.Monitoring)
	line("CI/CD", svc.CICD)
	line("Secrets", svc.Secrets)
	line("Networking", svc.Networking)
	return strings.TrimRight(b.String(), "\n")
}
