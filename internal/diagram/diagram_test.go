package diagram

import (
	"strings"
	"testing"

	"archsmith/internal/tester"
	"archsmith/internal/types"
)

func TestCleanStripsFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"erDiagram\n    A ||--o{ B : has", "erDiagram\n    A ||--o{ B : has"},
		{"```mermaid\nerDiagram\n    A\n```", "erDiagram\n    A"},
		{"```\nflowchart LR\n    X --> Y\n```", "flowchart LR\n    X --> Y"},
		{"flowchart LR\n```\n    X --> Y\n```mermaid\n", "flowchart LR\n    X --> Y"},
		{"   ", ""},
	}
	for _, c := range cases {
		tester.Eq(t, Clean(c.in), c.want, c.in)
	}
}

func TestValid(t *testing.T) {
	tester.True(t, Valid("erDiagram\n    USERS ||--o{ ORDERS : places"))
	tester.True(t, Valid("```mermaid\nsequenceDiagram\n    A->>B: hi\n```"))
	tester.True(t, Valid("graph TB\n    A --> B"))
	tester.True(t, Valid("classDiagram\n    class A"))
	tester.True(t, Valid("stateDiagram-v2\n    [*] --> Idle"))
	tester.False(t, Valid(""))
	tester.False(t, Valid("here is a description of the schema"))
}

func TestWithFallback(t *testing.T) {
	tester.Eq(t, WithFallback("graph LR\n    A --> B", "pending"), "graph LR\n    A --> B")
	tester.Eq(t, WithFallback("not a diagram", "Diagram generation pending..."), "Diagram generation pending...")
}

func TestFullArchitecture(t *testing.T) {
	db := types.DatabaseSchema{Tables: []types.DatabaseTable{{Name: "users"}, {Name: "orders"}}}
	api := types.APIDesign{BaseURL: "/api/v1", AuthenticationStrategy: "JWT bearer tokens with refresh rotation enabled"}
	fe := types.FrontendDesign{Framework: "React", StateManagement: "context"}
	dep := types.DeploymentPlan{Platform: "aws", MonitoringStrategy: "CloudWatch"}

	out, err := FullArchitecture(db, api, fe, dep)
	tester.NoErr(t, err)
	tester.True(t, strings.HasPrefix(out, "graph TB"))
	tester.Contains(t, out, `FE["React"]`)
	tester.Contains(t, out, `API["/api/v1"]`)
	tester.Contains(t, out, `DB["2 tables"]`)
	tester.Contains(t, out, `DEPLOY["AWS"]`)
	tester.Contains(t, out, "JWT bearer tokens with refresh...")
	tester.True(t, Valid(out))
}
