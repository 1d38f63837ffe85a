// Package diagram cleans and validates the Mermaid diagrams returned by the
// model, and composes the full-architecture diagram for a finished blueprint.
package diagram

import "strings"

// Clean strips markdown code fences from a Mermaid diagram. Models often
// fence their diagrams even when asked for bare Mermaid.
func Clean(diagram string) string {
	diagram = strings.TrimSpace(diagram)
	if diagram == "" {
		return ""
	}
	if strings.HasPrefix(diagram, "```mermaid") {
		diagram = strings.TrimSpace(diagram[len("```mermaid"):])
	} else if strings.HasPrefix(diagram, "```") {
		diagram = strings.TrimSpace(diagram[3:])
	}
	if strings.HasSuffix(diagram, "```") {
		diagram = strings.TrimSpace(diagram[:len(diagram)-3])
	}
	lines := strings.Split(diagram, "\n")
	kept := lines[:0]
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "```" || t == "```mermaid" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

var diagramKinds = []string{
	"graph",
	"erdiagram",
	"sequencediagram",
	"flowchart",
	"classdiagram",
	"statediagram",
}

// Valid reports whether a diagram carries a recognizable Mermaid type.
func Valid(diagram string) bool {
	cleaned := strings.ToLower(Clean(diagram))
	if cleaned == "" {
		return false
	}
	for _, kind := range diagramKinds {
		if strings.Contains(cleaned, kind) {
			return true
		}
	}
	return false
}

// WithFallback returns the cleaned diagram when valid, otherwise the
// fallback text.
func WithFallback(diagram, fallback string) string {
	if Valid(diagram) {
		return Clean(diagram)
	}
	return fallback
}
