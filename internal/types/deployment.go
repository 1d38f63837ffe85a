package types

// DeploymentIn is the widest stage input: every prior output plus the
// platform choice.
type DeploymentIn struct {
	Requirements RequirementsAnalysis `json:"requirements"`
	Database     DatabaseSchema       `json:"database_schema"`
	API          APIDesign            `json:"api_design"`
	Frontend     FrontendDesign       `json:"frontend_design"`
	Platform     string               `json:"platform"`
}

type InfrastructureComponent struct {
	Name          string         `json:"name"`
	Service       string         `json:"service"`
	Purpose       string         `json:"purpose"`
	Configuration map[string]any `json:"configuration,omitempty"`
	EstimatedCost string         `json:"estimated_cost,omitempty"`
}

// DeploymentPlan is the structured outcome of the deployment stage.
type DeploymentPlan struct {
	Platform              string                    `json:"platform"`
	Infrastructure        []InfrastructureComponent `json:"infrastructure"`
	DatabaseService       string                    `json:"database_service"`
	DatabaseConfiguration map[string]any            `json:"database_configuration,omitempty"`
	HostingService        string                    `json:"hosting_service"`
	HostingConfiguration  map[string]any            `json:"hosting_configuration,omitempty"`
	CICDStrategy          string                    `json:"ci_cd_strategy"`
	MonitoringStrategy    string                    `json:"monitoring_strategy"`
	MonitoringTools       []string                  `json:"monitoring_tools,omitempty"`
	ScalingStrategy       string                    `json:"scaling_strategy"`
	SecurityMeasures      []string                  `json:"security_measures"`
	BackupStrategy        string                    `json:"backup_strategy,omitempty"`
	EstimatedMonthlyCost  string                    `json:"estimated_monthly_cost,omitempty"`
	DeploymentSteps       []string                  `json:"deployment_steps,omitempty"`
	Reasoning             string                    `json:"reasoning"`
	MermaidDiagram        string                    `json:"mermaid_diagram"`
}
