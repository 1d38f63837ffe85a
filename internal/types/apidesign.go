package types

// APIIn carries everything the API stage designs against.
type APIIn struct {
	Requirements RequirementsAnalysis `json:"requirements"`
	Database     DatabaseSchema       `json:"database_schema"`
}

type APIParameter struct {
	Name        string `json:"name"`
	ParamType   string `json:"param_type"` // path, query, body, header
	DataType    string `json:"data_type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

type APIResponse struct {
	StatusCode  int            `json:"status_code"`
	Description string         `json:"description"`
	Schema      map[string]any `json:"schema,omitempty"`
}

type APIEndpoint struct {
	Path               string         `json:"path"`
	Method             string         `json:"method"` // GET, POST, PUT, PATCH, DELETE
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	AuthRequired       bool           `json:"auth_required"`
	AuthType           string         `json:"auth_type,omitempty"` // none, jwt, oauth2, api_key, session, basic
	Parameters         []APIParameter `json:"parameters,omitempty"`
	Responses          []APIResponse  `json:"responses"`
	DatabaseOperations []string       `json:"database_operations,omitempty"`
}

// APIDesign is the structured outcome of the API stage.
type APIDesign struct {
	BaseURL                string        `json:"base_url"`
	Endpoints              []APIEndpoint `json:"endpoints"`
	AuthenticationStrategy string        `json:"authentication_strategy"`
	RateLimiting           string        `json:"rate_limiting,omitempty"`
	VersioningStrategy     string        `json:"versioning_strategy"`
	Reasoning              string        `json:"reasoning"`
	MermaidDiagram         string        `json:"mermaid_diagram"`
}
