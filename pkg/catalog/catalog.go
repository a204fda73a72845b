// Package catalog holds the set of known tool descriptors. The set comes
// from the backend when reachable and from a built-in table otherwise, and
// is loaded at most once per process.
package catalog

import "encoding/json"

// Descriptor describes one callable backend tool. Remote-fetched input
// schemas stay raw so they are forwarded to the client verbatim.
type Descriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// InputSchema is the simplified JSON-schema shape used for the built-in
// tool table.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes a single input field.
type Property struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}
