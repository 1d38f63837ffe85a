// Package export renders a finished blueprint into downloadable formats.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"archsmith/internal/blueprint"
)

// JSON renders the blueprint as indented JSON.
func JSON(doc blueprint.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// Filename builds the download name for one export format, keyed by a short
// prefix of the blueprint id.
func Filename(doc blueprint.Document, ext string) string {
	id := doc.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("blueprint_%s.%s", id, strings.TrimPrefix(ext, "."))
}

// Diagrams collects every Mermaid source in the blueprint, keyed by artifact
// path.
func Diagrams(doc blueprint.Document) map[string]string {
	out := make(map[string]string, 5)
	add := func(path, src string) {
		if strings.TrimSpace(src) == "" {
			return
		}
		out[path] = src
	}
	add("diagrams/database.mmd", doc.DatabaseSchema.MermaidDiagram)
	add("diagrams/api.mmd", doc.APIDesign.MermaidDiagram)
	add("diagrams/frontend.mmd", doc.FrontendDesign.MermaidDiagram)
	add("diagrams/deployment.mmd", doc.DeploymentPlan.MermaidDiagram)
	add("diagrams/architecture.mmd", doc.FullArchitectureDiagram)
	return out
}

// Markdown renders the blueprint as one readable document, section per
// stage.
func Markdown(doc blueprint.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Technical Blueprint\n\n")
	fmt.Fprintf(&b, "**Generated**: %s UTC\n", doc.CreatedAt.UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Blueprint ID**: %s\n\n---\n\n", doc.ID)

	fmt.Fprintf(&b, "## Business Idea\n\n%s\n\n", doc.UserInput.BusinessIdea)
	fmt.Fprintf(&b, "**Detail Level**: %s\n", doc.UserInput.DetailLevel)
	fmt.Fprintf(&b, "**Target Platform**: %s\n\n---\n\n", doc.UserInput.Platform)

	fmt.Fprintf(&b, "## Requirements Analysis\n\n")
	section(&b, "### Core Features", doc.Requirements.CoreFeatures)
	section(&b, "### User Types", doc.Requirements.UserTypes)
	section(&b, "### Key Entities", doc.Requirements.KeyEntities)
	fmt.Fprintf(&b, "### Business Model\n%s\n\n", doc.Requirements.BusinessModel)
	fmt.Fprintf(&b, "### Complexity Assessment\n%s\n\n---\n\n", doc.Requirements.ComplexityAssessment)

	fmt.Fprintf(&b, "## Database Schema\n\n")
	fmt.Fprintf(&b, "### Tables (%d total)\n", len(doc.DatabaseSchema.Tables))
	for _, table := range doc.DatabaseSchema.Tables {
		fmt.Fprintf(&b, "\n#### %s\n%s\n\n", table.Name, table.Description)
		fmt.Fprintf(&b, "| Field | Type | Constraints |\n")
		fmt.Fprintf(&b, "|-------|------|-------------|\n")
		for _, field := range table.Fields {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", field.Name, field.DataType, strings.Join(field.Constraints, ", "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n### Database Design Rationale\n%s\n\n---\n\n", doc.DatabaseSchema.Reasoning)

	fmt.Fprintf(&b, "## API Design\n\n")
	fmt.Fprintf(&b, "**Base URL**: %s\n\n", doc.APIDesign.BaseURL)
	fmt.Fprintf(&b, "**Authentication**: %s\n\n", doc.APIDesign.AuthenticationStrategy)
	fmt.Fprintf(&b, "### Endpoints (%d total)\n", len(doc.APIDesign.Endpoints))
	for _, ep := range doc.APIDesign.Endpoints {
		fmt.Fprintf(&b, "\n#### %s %s\n", ep.Method, ep.Path)
		fmt.Fprintf(&b, "**Name**: %s\n\n", ep.Name)
		fmt.Fprintf(&b, "**Description**: %s\n\n", ep.Description)
		fmt.Fprintf(&b, "**Auth Required**: %t\n\n", ep.AuthRequired)
	}
	fmt.Fprintf(&b, "\n### API Design Rationale\n%s\n\n---\n\n", doc.APIDesign.Reasoning)

	fmt.Fprintf(&b, "## Frontend Architecture\n\n")
	fmt.Fprintf(&b, "**Framework**: %s\n\n", doc.FrontendDesign.Framework)
	fmt.Fprintf(&b, "**State Management**: %s\n\n", doc.FrontendDesign.StateManagement)
	fmt.Fprintf(&b, "**Styling**: %s\n\n", doc.FrontendDesign.StylingApproach)
	fmt.Fprintf(&b, "### Components (%d total)\n", len(doc.FrontendDesign.Components))
	for _, c := range doc.FrontendDesign.Components {
		fmt.Fprintf(&b, "\n#### %s\n", c.Name)
		fmt.Fprintf(&b, "**Type**: %s\n\n", c.Type)
		fmt.Fprintf(&b, "**Path**: `%s`\n\n", c.Path)
		fmt.Fprintf(&b, "**Description**: %s\n\n", c.Description)
	}
	fmt.Fprintf(&b, "\n### Frontend Design Rationale\n%s\n\n---\n\n", doc.FrontendDesign.Reasoning)

	fmt.Fprintf(&b, "## Deployment Plan\n\n")
	fmt.Fprintf(&b, "**Platform**: %s\n\n", doc.DeploymentPlan.Platform)
	fmt.Fprintf(&b, "**Database Service**: %s\n\n", doc.DeploymentPlan.DatabaseService)
	fmt.Fprintf(&b, "**Hosting Service**: %s\n\n", doc.DeploymentPlan.HostingService)
	fmt.Fprintf(&b, "**CI/CD Strategy**: %s\n\n", doc.DeploymentPlan.CICDStrategy)
	fmt.Fprintf(&b, "**Monitoring Strategy**: %s\n\n", doc.DeploymentPlan.MonitoringStrategy)
	cost := doc.DeploymentPlan.EstimatedMonthlyCost
	if strings.TrimSpace(cost) == "" {
		cost = "TBD"
	}
	fmt.Fprintf(&b, "**Estimated Monthly Cost**: %s\n\n", cost)
	section(&b, "### Security Measures", doc.DeploymentPlan.SecurityMeasures)
	fmt.Fprintf(&b, "### Deployment Rationale\n%s\n\n---\n\n", doc.DeploymentPlan.Reasoning)

	fmt.Fprintf(&b, "## Technology Stack Summary\n\n")
	for _, key := range stackKeys(doc.TechnologyStackSummary) {
		fmt.Fprintf(&b, "- **%s**: %s\n", titleKey(key), doc.TechnologyStackSummary[key])
	}
	b.WriteString("\n---\n\n")

	fmt.Fprintf(&b, "## Implementation Recommendations\n\n")
	numbered(&b, doc.ImplementationRecommendations)
	b.WriteString("\n---\n\n")

	fmt.Fprintf(&b, "## Next Steps\n\n")
	numbered(&b, doc.NextSteps)
	b.WriteString("\n---\n\n")

	fmt.Fprintf(&b, "## Estimated Timeline\n\n%s\n\n---\n\n", doc.EstimatedTimeline)
	b.WriteString("*Generated with ArchSmith*\n")

	return b.String()
}

func section(b *strings.Builder, heading string, items []string) {
	fmt.Fprintf(b, "%s\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func numbered(b *strings.Builder, items []string) {
	for i, item := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, item)
	}
}

// stackKeys returns the summary keys in a stable order, the well-known ones
// first.
func stackKeys(stack map[string]string) []string {
	known := []string{"frontend", "backend", "database", "hosting", "monitoring"}
	seen := make(map[string]bool, len(known))
	out := make([]string, 0, len(stack))
	for _, k := range known {
		if _, ok := stack[k]; ok {
			out = append(out, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(stack))
	for k := range stack {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// titleKey renders a snake_case key the way the summary headings read:
// each word capitalized, underscores kept.
func titleKey(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "_")
}
