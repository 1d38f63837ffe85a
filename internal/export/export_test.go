package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"archsmith/internal/blueprint"
	"archsmith/internal/tester"
	"archsmith/internal/types"
)

func sampleDoc() blueprint.Document {
	return blueprint.Document{
		ID:        "f8a7c2d1-1234-5678-9abc-def012345678",
		CreatedAt: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		UserInput: types.UserInput{
			BusinessIdea: "A scheduling tool for tattoo studios",
			DetailLevel:  types.DetailDetailed,
			Platform:     types.PlatformGCP,
		},
		Requirements: types.RequirementsAnalysis{
			CoreFeatures:         []string{"Appointment booking", "Artist portfolios"},
			UserTypes:            []string{"Studio owner", "Client"},
			KeyEntities:          []string{"Studio", "Appointment"},
			BusinessModel:        "subscription",
			ComplexityAssessment: "medium",
		},
		DatabaseSchema: types.DatabaseSchema{
			Tables: []types.DatabaseTable{{
				Name:        "appointments",
				Description: "Booked sessions",
				Fields: []types.DatabaseField{
					{Name: "id", DataType: "uuid", Constraints: []string{"primary_key"}},
					{Name: "studio_id", DataType: "uuid", Constraints: []string{"not_null"}},
				},
			}},
			Reasoning: "Normalized around studios.",
		},
		APIDesign: types.APIDesign{
			BaseURL:                "/api/v1",
			AuthenticationStrategy: "JWT",
			Endpoints: []types.APIEndpoint{{
				Path: "/appointments", Method: "POST", Name: "create_appointment",
				Description: "Book a session", AuthRequired: true,
			}},
			Reasoning: "REST fits the CRUD surface.",
		},
		FrontendDesign: types.FrontendDesign{
			Framework:       "React",
			StateManagement: "context",
			StylingApproach: "Tailwind CSS",
			Components: []types.FrontendComponent{{
				Name: "BookingCalendar", Type: "feature",
				Path: "src/components/BookingCalendar.tsx", Description: "Month view",
			}},
			Reasoning: "A small SPA.",
		},
		DeploymentPlan: types.DeploymentPlan{
			Platform:           "gcp",
			DatabaseService:    "Cloud SQL",
			HostingService:     "Cloud Run",
			CICDStrategy:       "Cloud Build",
			MonitoringStrategy: "Cloud Monitoring",
			SecurityMeasures:   []string{"IAM least privilege"},
			Reasoning:          "Managed services.",
			MermaidDiagram:     "graph TB\n    A[Cloud Run]",
		},
		FullArchitectureDiagram:       "graph TB\n    FE --> API",
		ImplementationRecommendations: []string{"Start with auth", "Ship an MVP"},
		NextSteps:                     []string{"Review schema", "Set up repo"},
		EstimatedTimeline:             "3-4 months for MVP",
		TechnologyStackSummary: map[string]string{
			"frontend": "React", "backend": "Node.js/Python (to be determined)",
			"database": "Cloud SQL", "hosting": "gcp", "monitoring": "TBD",
		},
	}
}

func TestJSONRoundTrips(t *testing.T) {
	doc := sampleDoc()
	raw, err := JSON(doc)
	tester.NoErr(t, err)

	var back blueprint.Document
	tester.NoErr(t, json.Unmarshal(raw, &back))
	tester.Eq(t, doc.ID, back.ID)
	tester.Eq(t, doc.UserInput.BusinessIdea, back.UserInput.BusinessIdea)
	tester.Contains(t, string(raw), "\n  \"id\"")
}

func TestFilename(t *testing.T) {
	doc := sampleDoc()
	tester.Eq(t, "blueprint_f8a7c2d1.json", Filename(doc, "json"))
	tester.Eq(t, "blueprint_f8a7c2d1.md", Filename(doc, ".md"))

	short := blueprint.Document{ID: "abc"}
	tester.Eq(t, "blueprint_abc.md", Filename(short, "md"))
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(sampleDoc())

	for _, want := range []string{
		"# Technical Blueprint",
		"**Generated**: 2025-06-01 09:30:00 UTC",
		"**Blueprint ID**: f8a7c2d1-1234-5678-9abc-def012345678",
		"## Business Idea",
		"A scheduling tool for tattoo studios",
		"**Detail Level**: detailed",
		"**Target Platform**: gcp",
		"### Core Features\n- Appointment booking\n- Artist portfolios",
		"### Tables (1 total)",
		"#### appointments",
		"| id | uuid | primary_key |",
		"### Database Design Rationale\nNormalized around studios.",
		"#### POST /appointments",
		"**Auth Required**: true",
		"**Framework**: React",
		"#### BookingCalendar",
		"**Path**: `src/components/BookingCalendar.tsx`",
		"**Estimated Monthly Cost**: TBD",
		"### Security Measures\n- IAM least privilege",
		"- **Frontend**: React",
		"- **Backend**: Node.js/Python (to be determined)",
		"## Implementation Recommendations\n\n1. Start with auth\n2. Ship an MVP",
		"## Next Steps\n\n1. Review schema\n2. Set up repo",
		"## Estimated Timeline\n\n3-4 months for MVP",
		"*Generated with ArchSmith*",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q", want)
		}
	}
}

func TestMarkdownStackOrder(t *testing.T) {
	md := Markdown(sampleDoc())
	fe := strings.Index(md, "- **Frontend**:")
	be := strings.Index(md, "- **Backend**:")
	db := strings.Index(md, "- **Database**:")
	if !(fe < be && be < db) {
		t.Fatalf("stack summary out of order: frontend=%d backend=%d database=%d", fe, be, db)
	}
}

func TestDiagrams(t *testing.T) {
	doc := sampleDoc()
	got := Diagrams(doc)
	tester.Eq(t, 2, len(got))
	tester.Contains(t, got["diagrams/deployment.mmd"], "graph TB")
	tester.Contains(t, got["diagrams/architecture.mmd"], "FE --> API")

	doc.DatabaseSchema.MermaidDiagram = "erDiagram\n    A"
	got = Diagrams(doc)
	tester.Eq(t, 3, len(got))
}

func TestTitleKey(t *testing.T) {
	tester.Eq(t, "Frontend", titleKey("frontend"))
	tester.Eq(t, "State_Management", titleKey("state_management"))
	tester.Eq(t, "Ci_Cd", titleKey("ci_cd"))
}
