package catalog

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Argument structs for the built-in tools. Every field is required, so none
// carry omitempty.

type analyzeSerpArgs struct {
	Keyword string `json:"keyword"`
}

type researchPerplexityArgs struct {
	Keyword  string `json:"keyword"`
	Patterns string `json:"patterns"`
}

type brainstormOutlineArgs struct {
	Patterns string `json:"patterns"`
	Facts    string `json:"facts"`
}

type gatherDetailsArgs struct {
	Outline string `json:"outline"`
}

type generateArticleArgs struct {
	Outline string `json:"outline"`
	Facts   string `json:"facts"`
	Details string `json:"details"`
}

type embedLinksArgs struct {
	Article  string `json:"article"`
	Research string `json:"research"`
}

// Builtin returns the fallback tool table used when the backend catalog
// cannot be fetched. Order matters: it is the listing order.
func Builtin() []Descriptor {
	return []Descriptor{
		{
			Name:        "analyze_serp",
			Description: "Analyze SERP and derive patterns",
			InputSchema: inputSchema[analyzeSerpArgs](),
		},
		{
			Name:        "research_perplexity",
			Description: "Research using Perplexity API",
			InputSchema: inputSchema[researchPerplexityArgs](),
		},
		{
			Name:        "brainstorm_outline",
			Description: "Generate article outline",
			InputSchema: inputSchema[brainstormOutlineArgs](),
		},
		{
			Name:        "gather_details",
			Description: "Gather details for outline",
			InputSchema: inputSchema[gatherDetailsArgs](),
		},
		{
			Name:        "generate_article",
			Description: "Generate article draft",
			InputSchema: inputSchema[generateArticleArgs](),
		},
		{
			Name:        "embed_links",
			Description: "Embed links in article",
			InputSchema: inputSchema[embedLinksArgs](),
		},
	}
}

// inputSchema reflects a typed argument struct into the simplified
// {type, properties, required} shape and serializes it. Reflection of these
// static structs cannot fail to marshal.
func inputSchema[A any]() json.RawMessage {
	r := &jsonschema.Reflector{
		DoNotReference: true, // inline defs
		ExpandedStruct: true, // put struct at root
	}
	s := r.Reflect(new(A))

	out := InputSchema{Type: "object", Properties: map[string]Property{}}
	if s != nil && s.Properties != nil {
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			out.Properties[el.Key] = Property{
				Type:        el.Value.Type,
				Description: el.Value.Description,
			}
		}
	}
	if s != nil {
		out.Required = append(out.Required, s.Required...)
	}

	raw, _ := json.Marshal(out)
	return raw
}
