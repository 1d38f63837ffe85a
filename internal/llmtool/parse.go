package llmtool

import (
	"bytes"
	"encoding/json"
)

// StripFences removes a wrapping markdown code fence from a model reply.
// Some models fence their JSON even when told not to.
func StripFences(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(trimmed, []byte("```")) {
		return trimmed
	}
	if idx := bytes.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		return trimmed
	}
	if idx := bytes.LastIndex(trimmed, []byte("```")); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return bytes.TrimSpace(trimmed)
}

// Decode unmarshals a model reply into v, tolerating a fence wrapper.
func Decode(raw json.RawMessage, v any) error {
	return json.Unmarshal(StripFences(raw), v)
}
