package blueprint

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"archsmith/internal/diagram"
	"archsmith/internal/types"
)

// Recommendations is the fixed implementation guidance attached to every
// blueprint.
func Recommendations() []string {
	return []string{
		"Start with MVP features to validate core functionality",
		"Implement authentication and user management first",
		"Set up CI/CD pipeline early in the development process",
		"Use feature flags for gradual rollout of new features",
		"Implement comprehensive logging and monitoring from day one",
	}
}

// NextSteps is the fixed implementation order attached to every blueprint.
func NextSteps() []string {
	return []string{
		"Set up development environment and version control",
		"Initialize project with chosen technology stack",
		"Implement database schema and migrations",
		"Build authentication system",
		"Develop core API endpoints",
		"Create basic frontend components",
		"Set up deployment pipeline",
		"Configure monitoring and logging",
	}
}

// EstimateTimeline maps a complexity assessment to a rough MVP timeline.
// Unknown assessments fall back to the medium bucket.
func EstimateTimeline(complexity string) string {
	switch strings.ToLower(strings.TrimSpace(complexity)) {
	case "low":
		return "6-8 weeks for MVP"
	case "high":
		return "4-6 months for MVP"
	default:
		return "3-4 months for MVP"
	}
}

// StackSummary condenses the technology choices into one flat map. The
// backend runtime is not chosen by any stage, so it stays open.
func StackSummary(fe types.FrontendDesign, dep types.DeploymentPlan) map[string]string {
	monitoring := "TBD"
	if len(dep.MonitoringTools) > 0 {
		monitoring = strings.Join(firstN(dep.MonitoringTools, 2), ", ")
	}
	return map[string]string{
		"frontend":   fe.Framework,
		"backend":    "Node.js/Python (to be determined)",
		"database":   dep.DatabaseService,
		"hosting":    dep.Platform,
		"monitoring": monitoring,
	}
}

// Assemble builds the aggregate document from the five stage results.
func Assemble(in types.UserInput, req types.RequirementsAnalysis, db types.DatabaseSchema, api types.APIDesign, fe types.FrontendDesign, dep types.DeploymentPlan) (Document, error) {
	arch, err := diagram.FullArchitecture(db, api, fe, dep)
	if err != nil {
		return Document{}, err
	}
	return Document{
		ID:                            uuid.New().String(),
		CreatedAt:                     time.Now().UTC(),
		UserInput:                     in,
		Requirements:                  req,
		DatabaseSchema:                db,
		APIDesign:                     api,
		FrontendDesign:                fe,
		DeploymentPlan:                dep,
		FullArchitectureDiagram:       arch,
		ImplementationRecommendations: Recommendations(),
		NextSteps:                     NextSteps(),
		EstimatedTimeline:             EstimateTimeline(req.ComplexityAssessment),
		TechnologyStackSummary:        StackSummary(fe, dep),
	}, nil
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
