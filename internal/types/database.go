package types

// DatabaseIn feeds the requirements analysis into the schema stage.
type DatabaseIn struct {
	Requirements RequirementsAnalysis `json:"requirements"`
}

type DatabaseField struct {
	Name                string   `json:"name"`
	DataType            string   `json:"data_type"` // string, integer, float, boolean, date, datetime, text, json, uuid, binary
	Constraints         []string `json:"constraints,omitempty"`
	ForeignKeyReference string   `json:"foreign_key_reference,omitempty"` // "users.id"
	Description         string   `json:"description"`
	DefaultValue        string   `json:"default_value,omitempty"`
}

type DatabaseTable struct {
	Name        string          `json:"name"`
	Fields      []DatabaseField `json:"fields"`
	Description string          `json:"description"`
	Indexes     []string        `json:"indexes,omitempty"`
}

// DatabaseSchema is the structured outcome of the database stage.
type DatabaseSchema struct {
	Tables         []DatabaseTable `json:"tables"`
	Relationships  []string        `json:"relationships,omitempty"`
	Reasoning      string          `json:"reasoning"`
	MermaidDiagram string          `json:"mermaid_diagram"`
}
