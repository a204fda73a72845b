package backend

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/seomcp/seomcp-proxy/pkg/catalog"
)

// decodeCatalog parses a {"tools": {<name>: descriptor, ...}} body. The wire
// shape is an object keyed by tool name; member order is kept so listings
// come out in catalog order, which a plain map unmarshal would scramble.
func decodeCatalog(r io.Reader) ([]catalog.Descriptor, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	tools := []catalog.Descriptor{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if keyTok != "tools" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, err
			}
			continue
		}

		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("tools: %w", err)
		}
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, _ := nameTok.(string)

			var desc catalog.Descriptor
			if err := dec.Decode(&desc); err != nil {
				return nil, fmt.Errorf("tool %q: %w", name, err)
			}
			if desc.Name == "" {
				desc.Name = name
			}
			tools = append(tools, desc)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	}
	return tools, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
