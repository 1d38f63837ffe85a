package llmtool

import (
	"encoding/json"

	jsonschema "github.com/swaggest/jsonschema-go"
)

// SchemaFor reflects a JSON Schema from a Go value's type, suitable for the
// OUTPUT_SCHEMA section of a structured prompt. Refs are inlined because
// models follow a flat schema more reliably than one with definitions.
func SchemaFor(v any) (json.RawMessage, error) {
	r := jsonschema.Reflector{}
	schema, err := r.Reflect(v, jsonschema.InlineRefs)
	if err != nil {
		return nil, err
	}
	return json.Marshal(schema)
}

// MustSchemaFor is SchemaFor for static types known at compile time.
func MustSchemaFor(v any) json.RawMessage {
	raw, err := SchemaFor(v)
	if err != nil {
		panic(err)
	}
	return raw
}
