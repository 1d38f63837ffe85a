package llm

import (
	"context"
	"encoding/json"
)

// FakeCall records one GenerateJSON invocation on a FakeCaller.
type FakeCall struct {
	Stage  string
	Prompt string
	Input  any
}

// FakeCaller returns deterministic, minimal JSON payloads per stage for
// offline runs and tests. Responses can be overridden per stage, and a
// failure can be injected for one stage or for every call.
type FakeCaller struct {
	Responses map[string]json.RawMessage
	Err       error
	FailStage string // when set, only this stage returns Err
	Calls     []FakeCall
}

func NewFakeCaller() *FakeCaller {
	return &FakeCaller{Responses: map[string]json.RawMessage{}}
}

func (f *FakeCaller) Name() string { return "FakeLLM" }
func (f *FakeCaller) Close() error { return nil }

func (f *FakeCaller) GenerateJSON(ctx context.Context, r Request) (json.RawMessage, error) {
	stage := StageFrom(ctx)
	f.Calls = append(f.Calls, FakeCall{Stage: stage, Prompt: r.Prompt, Input: r.Input})
	if f.Err != nil && (f.FailStage == "" || f.FailStage == stage) {
		return nil, f.Err
	}
	if raw, ok := f.Responses[stage]; ok {
		return raw, nil
	}
	if raw, ok := cannedStageOutputs[stage]; ok {
		return raw, nil
	}
	return json.RawMessage(`{}`), nil
}

var cannedStageOutputs = map[string]json.RawMessage{
	"requirements": json.RawMessage(`{
  "core_features": ["User accounts", "Booking management", "Payment processing"],
  "user_types": ["Customer", "Administrator"],
  "key_entities": ["User", "Booking", "Payment"],
  "business_model": "subscription",
  "complexity_assessment": "medium",
  "key_technical_challenges": ["Payment provider integration"]
}`),
	"database": json.RawMessage(`{
  "tables": [
    {
      "name": "users",
      "fields": [
        {"name": "id", "data_type": "uuid", "constraints": ["primary_key"], "description": "User identifier"},
        {"name": "email", "data_type": "varchar(255)", "constraints": ["unique", "not_null"], "description": "Login email"}
      ],
      "description": "Registered users",
      "indexes": ["users_email_idx"]
    },
    {
      "name": "bookings",
      "fields": [
        {"name": "id", "data_type": "uuid", "constraints": ["primary_key"], "description": "Booking identifier"},
        {"name": "user_id", "data_type": "uuid", "constraints": ["not_null"], "foreign_key_reference": "users.id", "description": "Owner"}
      ],
      "description": "Bookings placed by users",
      "indexes": []
    }
  ],
  "relationships": ["users has many bookings"],
  "reasoning": "A normalized relational layout keeps ownership explicit.",
  "mermaid_diagram": "erDiagram\n    USERS ||--o{ BOOKINGS : places"
}`),
	"api": json.RawMessage(`{
  "base_url": "/api/v1",
  "endpoints": [
    {
      "path": "/bookings",
      "method": "POST",
      "name": "create_booking",
      "description": "Create a booking",
      "auth_required": true,
      "auth_type": "bearer",
      "parameters": [],
      "responses": [{"status_code": 201, "description": "Created"}],
      "database_operations": ["INSERT INTO bookings"]
    },
    {
      "path": "/bookings/{id}",
      "method": "GET",
      "name": "get_booking",
      "description": "Fetch one booking",
      "auth_required": true,
      "auth_type": "bearer",
      "parameters": [{"name": "id", "param_type": "path", "data_type": "uuid", "required": true, "description": "Booking id"}],
      "responses": [{"status_code": 200, "description": "OK"}],
      "database_operations": ["SELECT FROM bookings"]
    }
  ],
  "authentication_strategy": "JWT bearer tokens",
  "rate_limiting": "100 requests per minute per user",
  "versioning_strategy": "URI versioning",
  "reasoning": "REST keeps the surface predictable for a small team.",
  "mermaid_diagram": "flowchart LR\n    Client --> API --> DB"
}`),
	"frontend": json.RawMessage(`{
  "framework": "React",
  "components": [
    {
      "name": "BookingForm",
      "type": "feature",
      "path": "src/components/BookingForm.tsx",
      "description": "Booking creation form",
      "api_calls": ["POST /bookings"]
    },
    {
      "name": "BookingList",
      "type": "page",
      "path": "src/pages/BookingList.tsx",
      "description": "Lists the user's bookings",
      "api_calls": ["GET /bookings"]
    }
  ],
  "routing_structure": [{"path": "/", "component": "BookingList"}],
  "state_management": "context",
  "state_management_library": "React Context",
  "styling_approach": "Tailwind CSS",
  "key_libraries": ["react-router-dom"],
  "reasoning": "A small SPA with a handful of views.",
  "mermaid_diagram": "flowchart TD\n    App --> BookingList\n    App --> BookingForm"
}`),
	"deployment": json.RawMessage(`{
  "platform": "aws",
  "infrastructure": [
    {"name": "api", "service": "ECS with Fargate", "purpose": "Run the API containers", "estimated_cost": "$30/month"},
    {"name": "db", "service": "RDS PostgreSQL", "purpose": "Primary datastore", "estimated_cost": "$25/month"}
  ],
  "database_service": "RDS PostgreSQL",
  "hosting_service": "ECS with Fargate",
  "ci_cd_strategy": "GitHub Actions building images and deploying to ECS",
  "monitoring_strategy": "CloudWatch dashboards with alarms on error rates",
  "monitoring_tools": ["CloudWatch", "X-Ray"],
  "scaling_strategy": "Horizontal ECS service auto scaling",
  "security_measures": ["TLS everywhere", "IAM least privilege", "Secrets Manager for credentials"],
  "backup_strategy": "Automated RDS snapshots, 7 day retention",
  "estimated_monthly_cost": "$120/month",
  "deployment_steps": ["Provision VPC", "Create RDS instance", "Deploy ECS service", "Attach ALB"],
  "reasoning": "Managed services keep the operational load small.",
  "mermaid_diagram": "flowchart LR\n    ALB --> ECS --> RDS"
}`),
}
