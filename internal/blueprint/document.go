// Package blueprint defines the aggregate document a finished run produces
// and the assembly logic that derives it from the five stage results.
package blueprint

import (
	"time"

	"archsmith/internal/types"
)

// Document is the complete technical blueprint for one business idea.
type Document struct {
	ID                            string                     `json:"id"`
	CreatedAt                     time.Time                  `json:"created_at"`
	UserInput                     types.UserInput            `json:"user_input"`
	Requirements                  types.RequirementsAnalysis `json:"requirements"`
	DatabaseSchema                types.DatabaseSchema       `json:"database_schema"`
	APIDesign                     types.APIDesign            `json:"api_design"`
	FrontendDesign                types.FrontendDesign       `json:"frontend_design"`
	DeploymentPlan                types.DeploymentPlan       `json:"deployment_plan"`
	FullArchitectureDiagram       string                     `json:"full_architecture_diagram"`
	ImplementationRecommendations []string                   `json:"implementation_recommendations"`
	NextSteps                     []string                   `json:"next_steps"`
	EstimatedTimeline             string                     `json:"estimated_timeline,omitempty"`
	TechnologyStackSummary        map[string]string          `json:"technology_stack_summary"`
}
