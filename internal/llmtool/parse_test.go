package llmtool

import (
	"encoding/json"
	"testing"

	"archsmith/internal/tester"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  \n```json\n{\"a\":1}\n```\n  ", `{"a":1}`},
	}
	for _, c := range cases {
		tester.Eq(t, string(StripFences([]byte(c.in))), c.want, c.in)
	}
}

func TestDecodeFencedReply(t *testing.T) {
	var out struct {
		Name string `json:"name"`
	}
	raw := json.RawMessage("```json\n{\"name\":\"users\"}\n```")
	tester.NoErr(t, Decode(raw, &out))
	tester.Eq(t, out.Name, "users")
}

func TestDecodeRejectsProse(t *testing.T) {
	var out map[string]any
	err := Decode(json.RawMessage("here is your schema"), &out)
	tester.Err(t, err)
}

func TestSchemaForReflectsStruct(t *testing.T) {
	type table struct {
		Name   string   `json:"name" required:"true"`
		Fields []string `json:"fields"`
	}
	raw, err := SchemaFor(table{})
	tester.NoErr(t, err)

	var schema map[string]any
	tester.NoErr(t, json.Unmarshal(raw, &schema))
	props, ok := schema["properties"].(map[string]any)
	tester.True(t, ok)
	_, ok = props["name"]
	tester.True(t, ok)
	_, ok = props["fields"]
	tester.True(t, ok)
}
