package diagram

import (
	"fmt"
	"strings"

	"github.com/cbroglie/mustache"

	"archsmith/internal/types"
)

// Raw tags keep service names with ampersands intact.
const architectureTemplate = `graph TB
    subgraph "Frontend Layer"
        FE["{{{framework}}}"]
        FE_STATE["{{{state_mgmt}}}"]
    end

    subgraph "API Layer"
        API["{{{api_base}}}"]
        AUTH["{{{auth_strategy}}}"]
    end

    subgraph "Data Layer"
        DB["{{{database}}}"]
    end

    subgraph "Infrastructure"
        DEPLOY["{{{platform}}}"]
        MONITOR["{{{monitoring}}}"]
    end

    FE --> API
    FE_STATE -.manages.-> FE
    API --> AUTH
    API --> DB
    DEPLOY -.hosts.-> API
    DEPLOY -.hosts.-> FE
    DEPLOY -.hosts.-> DB
    MONITOR -.observes.-> API
    MONITOR -.observes.-> DB

    style FE fill:#e1f5ff
    style API fill:#fff3e0
    style DB fill:#f3e5f5
    style DEPLOY fill:#e8f5e9
`

// FullArchitecture composes one diagram spanning all four design layers.
func FullArchitecture(db types.DatabaseSchema, api types.APIDesign, fe types.FrontendDesign, dep types.DeploymentPlan) (string, error) {
	ctx := map[string]string{
		"framework":     fe.Framework,
		"state_mgmt":    fe.StateManagement,
		"api_base":      api.BaseURL,
		"auth_strategy": truncate(api.AuthenticationStrategy, 30),
		"database":      fmt.Sprintf("%d tables", len(db.Tables)),
		"platform":      strings.ToUpper(dep.Platform),
		"monitoring":    truncate(dep.MonitoringStrategy, 30),
	}
	return mustache.Render(architectureTemplate, ctx)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
