package llmtool

import (
	"strings"
	"testing"

	"archsmith/internal/tester"
)

func TestBuildRendersSections(t *testing.T) {
	spec := StructuredPromptSpec{
		Purpose:      "Design a database schema.",
		Background:   "The schema backs a small web application.",
		OutputFormat: "JSON only.",
		Language:     "English",
		OutputFields: []PromptField{
			{Name: "tables", Type: "[]object", Required: true, Description: "Table definitions."},
			{Name: "relationships", Type: "[]string", Required: false},
		},
		Constraints: []string{"No markdown."},
		Rules:       []string{"Be concise."},
		Assumptions: []string{"PostgreSQL unless stated otherwise."},
		Examples: []PromptExample{
			{InputJSON: `{"idea":"x"}`, OutputJSON: `{"tables":[]}`},
		},
	}

	out, err := Build(spec)
	tester.NoErr(t, err)

	for _, section := range []string{
		"[PURPOSE]", "[BACKGROUND]", "[OUTPUT]", "[CONSTRAINTS]",
		"[RULES]", "[ASSUMPTIONS]", "[EXAMPLES]", "[OUTPUT_FORMAT]", "[LANGUAGE]",
	} {
		tester.Contains(t, out, section)
	}
	tester.Contains(t, out, "- tables ([]object, required): Table definitions.")
	tester.Contains(t, out, "- relationships ([]string, optional)")
	tester.True(t, strings.HasSuffix(out, "\n"))
}

func TestBuildSkipsEmptySections(t *testing.T) {
	spec := StructuredPromptSpec{
		Purpose:      "Do a thing.",
		OutputFields: []PromptField{{Name: "x", Type: "string", Required: true}},
	}
	out, err := Build(spec)
	tester.NoErr(t, err)
	tester.False(t, strings.Contains(out, "[BACKGROUND]"))
	tester.False(t, strings.Contains(out, "[CONSTRAINTS]"))
	tester.False(t, strings.Contains(out, "[EXAMPLES]"))
}

func TestBuildRejectsEmptyPurpose(t *testing.T) {
	_, err := Build(StructuredPromptSpec{OutputFields: []PromptField{{Name: "x"}}})
	tester.Err(t, err)
	tester.Contains(t, err.Error(), "purpose is empty")
}

func TestBuildRejectsMissingOutput(t *testing.T) {
	_, err := Build(StructuredPromptSpec{Purpose: "p"})
	tester.Err(t, err)
	tester.Contains(t, err.Error(), "output fields are empty")
}

func TestBuildIndentsSchema(t *testing.T) {
	spec := StructuredPromptSpec{
		Purpose:      "p",
		OutputSchema: []byte(`{"type":"object","properties":{"name":{"type":"string"}}}`),
	}
	out, err := Build(spec)
	tester.NoErr(t, err)
	tester.Contains(t, out, "[OUTPUT_SCHEMA]")
	tester.Contains(t, out, "\"type\": \"object\"")
}

func TestApplyPresetsPrepends(t *testing.T) {
	spec := StructuredPromptSpec{
		Purpose:      "p",
		OutputFields: []PromptField{{Name: "x", Type: "string"}},
		Constraints:  []string{"Own constraint."},
	}
	spec = ApplyPresets(spec, PresetStrictJSON(), PresetCautious())

	tester.Eq(t, spec.Constraints[0], "Return strict JSON only.")
	tester.Eq(t, spec.Constraints[len(spec.Constraints)-1], "Own constraint.")
	tester.Eq(t, len(spec.Rules), 1)
}
