package blueprint

import (
	"fmt"
	"strings"

	"archsmith/internal/types"
)

// The digests below condense each stage result into the short markdown
// summary carried by its completion event.

func RequirementsDigest(r types.RequirementsAnalysis) string {
	return strings.TrimSpace(fmt.Sprintf(`**Core Features**: %s

**User Types**: %s

**Key Entities**: %s

**Business Model**: %s

**Complexity**: %s`,
		strings.Join(r.CoreFeatures, ", "),
		strings.Join(r.UserTypes, ", "),
		strings.Join(r.KeyEntities, ", "),
		r.BusinessModel,
		r.ComplexityAssessment,
	))
}

func DatabaseDigest(d types.DatabaseSchema) string {
	names := make([]string, 0, 5)
	for _, t := range firstN(d.Tables, 5) {
		names = append(names, t.Name)
	}
	return strings.TrimSpace(fmt.Sprintf(`**Tables**: %d

**Key Tables**: %s

**Design Rationale**: %s`,
		len(d.Tables),
		strings.Join(names, ", "),
		d.Reasoning,
	))
}

func APIDigest(a types.APIDesign) string {
	eps := make([]string, 0, 5)
	for _, e := range firstN(a.Endpoints, 5) {
		eps = append(eps, e.Method+" "+e.Path)
	}
	return strings.TrimSpace(fmt.Sprintf(`**Base URL**: %s

**Endpoints**: %d

**Authentication**: %s

**Key Endpoints**: %s

**Design Rationale**: %s`,
		a.BaseURL,
		len(a.Endpoints),
		a.AuthenticationStrategy,
		strings.Join(eps, ", "),
		a.Reasoning,
	))
}

func FrontendDigest(f types.FrontendDesign) string {
	lib := f.StateManagementLibrary
	if lib == "" {
		lib = "built-in"
	}
	names := make([]string, 0, 5)
	for _, c := range firstN(f.Components, 5) {
		names = append(names, c.Name)
	}
	return strings.TrimSpace(fmt.Sprintf(`**Framework**: %s

**Components**: %d

**State Management**: %s (%s)

**Styling**: %s

**Key Components**: %s

**Design Rationale**: %s`,
		f.Framework,
		len(f.Components),
		f.StateManagement,
		lib,
		f.StylingApproach,
		strings.Join(names, ", "),
		f.Reasoning,
	))
}

func DeploymentDigest(d types.DeploymentPlan) string {
	cost := d.EstimatedMonthlyCost
	if cost == "" {
		cost = "TBD"
	}
	return strings.TrimSpace(fmt.Sprintf(`**Platform**: %s

**Database Service**: %s

**Hosting Service**: %s

**CI/CD**: %s

**Monitoring**: %s

**Estimated Cost**: %s

**Design Rationale**: %s`,
		d.Platform,
		d.DatabaseService,
		d.HostingService,
		d.CICDStrategy,
		d.MonitoringStrategy,
		cost,
		d.Reasoning,
	))
}
