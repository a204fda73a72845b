// Package backend is the HTTP client for the remote tool-execution service.
// It exposes the two calls the proxy needs: fetching the tool catalog and
// invoking a single tool. Both carry the bearer credential; discovery uses a
// short timeout, invocation a long one since tool runs may be slow.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/seomcp/seomcp-proxy/pkg/catalog"
	"github.com/seomcp/seomcp-proxy/pkg/config"
)

// Error is the uniform failure value for a backend call. Status is the HTTP
// status code for non-200 responses and zero for transport faults.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Client talks to the backend's /mcp/tools and /mcp/call endpoints.
type Client struct {
	baseURL    string
	listClient *http.Client
	callClient *http.Client
}

// NewClient builds a Client from a loaded Config.
func NewClient(cfg *config.Config) (*Client, error) {
	return NewClientWithConfig(cfg.BackendURL, cfg.APIKey, cfg.ListTimeout, cfg.CallTimeout)
}

// NewClientWithConfig builds a Client with explicit configuration. The two
// HTTP clients share one bearer-injecting transport but carry independent
// timeouts.
func NewClientWithConfig(baseURL, apiKey string, listTimeout, callTimeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid backend URL: %w", err)
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("backend API key is required")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey})
	authed := oauth2.NewClient(context.Background(), ts)

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		listClient: &http.Client{Transport: authed.Transport, Timeout: listTimeout},
		callClient: &http.Client{Transport: authed.Transport, Timeout: callTimeout},
	}, nil
}

// ListTools fetches the tool catalog from GET /mcp/tools. The returned slice
// preserves the catalog's member order.
func (c *Client) ListTools(ctx context.Context) ([]catalog.Descriptor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/mcp/tools", nil)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}

	resp, err := c.listClient.Do(req)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Status: resp.StatusCode, Message: fmt.Sprintf("Backend error: %d", resp.StatusCode)}
	}

	tools, err := decodeCatalog(resp.Body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("malformed catalog: %v", err)}
	}
	return tools, nil
}

type invokeRequest struct {
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments"`
}

// InvokeTool posts one tool call to POST /mcp/call and returns the backend's
// result text. Arguments are forwarded verbatim; nil means an empty mapping.
// The result is opaque to the proxy.
func (c *Client) InvokeTool(ctx context.Context, name string, arguments json.RawMessage) (string, error) {
	if len(arguments) == 0 {
		arguments = json.RawMessage(`{}`)
	}
	body, err := json.Marshal(invokeRequest{Tool: name, Arguments: arguments})
	if err != nil {
		return "", &Error{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mcp/call", bytes.NewReader(body))
	if err != nil {
		return "", &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.callClient.Do(req)
	if err != nil {
		return "", &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Status: resp.StatusCode, Message: fmt.Sprintf("Backend error: %d", resp.StatusCode)}
	}

	var out struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err != io.EOF {
		return "", &Error{Message: fmt.Sprintf("malformed response: %v", err)}
	}
	return out.Result, nil
}
