package types

// FrontendIn carries the context the frontend stage designs against.
// The database schema is omitted on purpose: components talk to endpoints,
// not tables.
type FrontendIn struct {
	Requirements RequirementsAnalysis `json:"requirements"`
	API          APIDesign            `json:"api_design"`
}

type ComponentDependency struct {
	ComponentName  string `json:"component_name"`
	DependencyType string `json:"dependency_type"` // uses, contains, calls, imports
}

type FrontendComponent struct {
	Name         string                `json:"name"`
	Type         string                `json:"type"` // page, layout, feature, ui, utility, hook
	Path         string                `json:"path"`
	Description  string                `json:"description"`
	Props        []map[string]string   `json:"props,omitempty"`
	State        []map[string]string   `json:"state,omitempty"`
	APICalls     []string              `json:"api_calls,omitempty"`
	Dependencies []ComponentDependency `json:"dependencies,omitempty"`
}

// FrontendDesign is the structured outcome of the frontend stage.
type FrontendDesign struct {
	Framework              string              `json:"framework"`
	Components             []FrontendComponent `json:"components"`
	RoutingStructure       []map[string]string `json:"routing_structure,omitempty"`
	StateManagement        string              `json:"state_management"` // local, context, global_store, server, props
	StateManagementLibrary string              `json:"state_management_library,omitempty"`
	StylingApproach        string              `json:"styling_approach"`
	KeyLibraries           []string            `json:"key_libraries,omitempty"`
	Reasoning              string              `json:"reasoning"`
	MermaidDiagram         string              `json:"mermaid_diagram"`
}
