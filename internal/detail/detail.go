// Package detail maps a requested detail tier to the per-stage limits used
// when building stage prompts. Resolution is a pure lookup with no side
// effects; unknown tiers fail before any model call is made.
package detail

import (
	"fmt"
	"strings"

	"archsmith/internal/types"
)

// ConfigurationError reports an unrecognized tier or stage-configuration key.
type ConfigurationError struct {
	Key   string
	Valid []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown detail configuration %q, must be one of %v", e.Key, e.Valid)
}

type RequirementsConfig struct {
	Depth    string `json:"depth"` // overview | comprehensive | exhaustive
	Guidance string `json:"guidance"`
}

type DatabaseConfig struct {
	MaxTables           int    `json:"max_tables"`
	IncludeIndexes      bool   `json:"include_indexes"`
	IncludeConstraints  string `json:"include_constraints"` // primary_key_only | all
	FieldDescriptions   string `json:"field_descriptions"`  // brief | detailed | comprehensive
	IncludePartitioning bool   `json:"include_partitioning,omitempty"`
	IncludeReplication  bool   `json:"include_replication,omitempty"`
}

type APIConfig struct {
	MaxEndpoints             int    `json:"max_endpoints"`
	IncludeRequestBodySchema bool   `json:"include_request_body_schema"`
	IncludeErrorResponses    bool   `json:"include_error_responses"`
	IncludeParameters        string `json:"include_parameters"` // path_only | all
	IncludeRateLimiting      bool   `json:"include_rate_limiting,omitempty"`
	IncludeCachingStrategy   bool   `json:"include_caching_strategy,omitempty"`
	IncludeVersioning        bool   `json:"include_versioning,omitempty"`
}

type FrontendConfig struct {
	MaxComponents                  int    `json:"max_components"`
	ComponentDetail                string `json:"component_detail"` // high_level | detailed | comprehensive
	IncludeProps                   bool   `json:"include_props"`
	IncludeState                   bool   `json:"include_state"`
	IncludeDependencies            bool   `json:"include_dependencies"`
	IncludePerformanceOptimization bool   `json:"include_performance_optimization,omitempty"`
	IncludeErrorBoundaries         bool   `json:"include_error_boundaries,omitempty"`
	IncludeTestingStrategy         bool   `json:"include_testing_strategy,omitempty"`
}

type DeploymentConfig struct {
	Detail                  string `json:"detail"`                   // minimal | detailed | production_grade
	IncludeCostEstimate     bool   `json:"include_cost_estimate"`
	SecurityMeasures        string `json:"include_security_measures"` // basic | comprehensive | enterprise
	Monitoring              string `json:"include_monitoring"`        // basic | detailed | comprehensive
	IncludeDisasterRecovery bool   `json:"include_disaster_recovery,omitempty"`
	IncludeCompliance       bool   `json:"include_compliance,omitempty"`
	IncludeScalabilityPlan  bool   `json:"include_scalability_plan,omitempty"`
	IncludeCICDPipeline     bool   `json:"include_ci_cd_pipeline,omitempty"`
}

// Config bundles the limits for all five stages at one detail tier.
type Config struct {
	Tier         types.DetailLevel  `json:"tier"`
	Description  string             `json:"description"`
	Requirements RequirementsConfig `json:"requirements"`
	Database     DatabaseConfig     `json:"database"`
	API          APIConfig          `json:"api"`
	Frontend     FrontendConfig     `json:"frontend"`
	Deployment   DeploymentConfig   `json:"deployment"`
}

var configs = map[types.DetailLevel]Config{
	types.DetailHighLevel: {
		Tier:        types.DetailHighLevel,
		Description: "High-level overview with key components",
		Requirements: RequirementsConfig{
			Depth:    "overview",
			Guidance: "Focus on the main features and primary user types; keep entity lists short.",
		},
		Database: DatabaseConfig{
			MaxTables:          10,
			IncludeIndexes:     false,
			IncludeConstraints: "primary_key_only",
			FieldDescriptions:  "brief",
		},
		API: APIConfig{
			MaxEndpoints:             10,
			IncludeRequestBodySchema: false,
			IncludeErrorResponses:    false,
			IncludeParameters:        "path_only",
		},
		Frontend: FrontendConfig{
			MaxComponents:   8,
			ComponentDetail: "high_level",
		},
		Deployment: DeploymentConfig{
			Detail:           "minimal",
			SecurityMeasures: "basic",
			Monitoring:       "basic",
		},
	},
	types.DetailDetailed: {
		Tier:        types.DetailDetailed,
		Description: "Detailed specification with comprehensive information",
		Requirements: RequirementsConfig{
			Depth:    "comprehensive",
			Guidance: "Cover every feature, user type, and entity the idea implies, including supporting workflows.",
		},
		Database: DatabaseConfig{
			MaxTables:          20,
			IncludeIndexes:     true,
			IncludeConstraints: "all",
			FieldDescriptions:  "detailed",
		},
		API: APIConfig{
			MaxEndpoints:             30,
			IncludeRequestBodySchema: true,
			IncludeErrorResponses:    true,
			IncludeParameters:        "all",
		},
		Frontend: FrontendConfig{
			MaxComponents:       20,
			ComponentDetail:     "detailed",
			IncludeProps:        true,
			IncludeState:        true,
			IncludeDependencies: true,
		},
		Deployment: DeploymentConfig{
			Detail:              "detailed",
			IncludeCostEstimate: true,
			SecurityMeasures:    "comprehensive",
			Monitoring:          "detailed",
		},
	},
	types.DetailProductionReady: {
		Tier:        types.DetailProductionReady,
		Description: "Production-ready with security, monitoring, and scalability",
		Requirements: RequirementsConfig{
			Depth:    "exhaustive",
			Guidance: "Be exhaustive: enumerate every entity, edge case, compliance concern, and operational need.",
		},
		Database: DatabaseConfig{
			MaxTables:           30,
			IncludeIndexes:      true,
			IncludeConstraints:  "all",
			FieldDescriptions:   "comprehensive",
			IncludePartitioning: true,
			IncludeReplication:  true,
		},
		API: APIConfig{
			MaxEndpoints:             50,
			IncludeRequestBodySchema: true,
			IncludeErrorResponses:    true,
			IncludeParameters:        "all",
			IncludeRateLimiting:      true,
			IncludeCachingStrategy:   true,
			IncludeVersioning:        true,
		},
		Frontend: FrontendConfig{
			MaxComponents:                  35,
			ComponentDetail:                "comprehensive",
			IncludeProps:                   true,
			IncludeState:                   true,
			IncludeDependencies:            true,
			IncludePerformanceOptimization: true,
			IncludeErrorBoundaries:         true,
			IncludeTestingStrategy:         true,
		},
		Deployment: DeploymentConfig{
			Detail:                  "production_grade",
			IncludeCostEstimate:     true,
			SecurityMeasures:        "enterprise",
			Monitoring:              "comprehensive",
			IncludeDisasterRecovery: true,
			IncludeCompliance:       true,
			IncludeScalabilityPlan:  true,
			IncludeCICDPipeline:     true,
		},
	},
}

// Tiers lists the valid detail tiers in ascending verbosity.
func Tiers() []types.DetailLevel {
	return []types.DetailLevel{types.DetailHighLevel, types.DetailDetailed, types.DetailProductionReady}
}

func tierNames() []string {
	ts := Tiers()
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}

// Resolve returns the configuration for a tier. The lookup is
// case-insensitive on the tier name.
func Resolve(tier types.DetailLevel) (Config, error) {
	key := types.DetailLevel(strings.ToLower(strings.TrimSpace(string(tier))))
	cfg, ok := configs[key]
	if !ok {
		return Config{}, &ConfigurationError{Key: string(tier), Valid: tierNames()}
	}
	return cfg, nil
}

// Stage returns one stage's slice of the configuration by its wire name.
func (c Config) Stage(name string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "requirements":
		return c.Requirements, nil
	case "database":
		return c.Database, nil
	case "api":
		return c.API, nil
	case "frontend":
		return c.Frontend, nil
	case "deployment":
		return c.Deployment, nil
	}
	return nil, &ConfigurationError{Key: name, Valid: []string{"requirements", "database", "api", "frontend", "deployment"}}
}
